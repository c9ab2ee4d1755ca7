package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/PLUB2022/plub-server/config"
	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/pkg/errcode"
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
	SignToken    TokenType = "sign"
)

// Claims subject 为加密后的邮箱
type Claims struct {
	Type TokenType  `json:"typ"`
	Role model.Role `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenProvider 签发与校验 HS256 令牌
type TokenProvider struct {
	secret          []byte
	cipher          *SubjectCipher
	accessDuration  time.Duration
	refreshDuration time.Duration
	now             func() time.Time
}

func NewTokenProvider(cfg config.JWTConfig) (*TokenProvider, error) {
	c, err := NewSubjectCipher(cfg.EncryptKey)
	if err != nil {
		return nil, err
	}
	return &TokenProvider{
		secret:          []byte(cfg.Secret),
		cipher:          c,
		accessDuration:  cfg.AccessDuration,
		refreshDuration: cfg.RefreshDuration,
		now:             time.Now,
	}, nil
}

func (p *TokenProvider) RefreshDuration() time.Duration { return p.refreshDuration }

func (p *TokenProvider) sign(typ TokenType, email string, role model.Role, ttl time.Duration) (string, error) {
	sub, err := p.cipher.Encrypt(email)
	if err != nil {
		return "", err
	}
	now := p.now()
	claims := Claims{
		Type: typ,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   sub,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

// Issue 签发 access + refresh
func (p *TokenProvider) Issue(email string, role model.Role) (TokenPair, error) {
	access, err := p.sign(AccessToken, email, role, p.accessDuration)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := p.sign(RefreshToken, email, "", p.refreshDuration)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// IssueSign 未注册用户的注册令牌
func (p *TokenProvider) IssueSign(email string) (string, error) {
	return p.sign(SignToken, email, model.RoleUser, p.accessDuration)
}

// Parse 校验签名、过期与类型，返回解密后的邮箱
func (p *TokenProvider) Parse(raw string, want TokenType) (string, *Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		return "", nil, tokenError(want, err)
	}
	if claims.Type != want {
		return "", nil, tokenError(want, errors.New("unexpected token type"))
	}
	email, err := p.cipher.Decrypt(claims.Subject)
	if err != nil {
		return "", nil, err
	}
	return email, claims, nil
}

func tokenError(want TokenType, err error) error {
	switch want {
	case SignToken:
		return errcode.Newf(errcode.SignupTokenError, "%v", err)
	case RefreshToken:
		return errcode.Newf(errcode.NotFoundRefreshToken, "%v", err)
	default:
		return errcode.Newf(errcode.FilterAccessDenied, "%v", err)
	}
}
