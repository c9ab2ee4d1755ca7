package auth

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/PLUB2022/plub-server/pkg/errcode"
)

// SubjectCipher 加密 JWT subject 中的邮箱（XChaCha20-Poly1305，nonce 前置，base64url）
type SubjectCipher struct {
	aead cipher.AEAD
}

func NewSubjectCipher(key string) (*SubjectCipher, error) {
	aead, err := chacha20poly1305.NewX([]byte(key))
	if err != nil {
		return nil, fmt.Errorf("subject cipher: %w", err)
	}
	return &SubjectCipher{aead: aead}, nil
}

func (c *SubjectCipher) Encrypt(plain string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize(), c.aead.NonceSize()+len(plain)+c.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", errcode.Newf(errcode.EncryptionFailure, "%v", err)
	}
	sealed := c.aead.Seal(nonce, nonce, []byte(plain), nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (c *SubjectCipher) Decrypt(encoded string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil || len(raw) < c.aead.NonceSize() {
		return "", errcode.New(errcode.DecryptionFailure)
	}
	nonce, body := raw[:c.aead.NonceSize()], raw[c.aead.NonceSize():]
	plain, err := c.aead.Open(nil, nonce, body, nil)
	if err != nil {
		return "", errcode.New(errcode.DecryptionFailure)
	}
	return string(plain), nil
}
