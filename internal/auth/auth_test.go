package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PLUB2022/plub-server/config"
	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/internal/testutil"
	"github.com/PLUB2022/plub-server/pkg/errcode"
)

const testKey = "0123456789abcdef0123456789abcdef"

func newProvider(t *testing.T) *TokenProvider {
	t.Helper()
	p, err := NewTokenProvider(config.JWTConfig{
		Secret:          "secret",
		EncryptKey:      testKey,
		AccessDuration:  time.Hour,
		RefreshDuration: 24 * time.Hour,
	})
	require.NoError(t, err)
	return p
}

func TestSubjectCipherRoundTrip(t *testing.T) {
	c, err := NewSubjectCipher(testKey)
	require.NoError(t, err)

	a, err := c.Encrypt("123@google")
	require.NoError(t, err)
	b, err := c.Encrypt("123@google")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "nonce must differ")

	plain, err := c.Decrypt(a)
	require.NoError(t, err)
	assert.Equal(t, "123@google", plain)

	tampered := []byte(a)
	if tampered[5] == 'A' {
		tampered[5] = 'B'
	} else {
		tampered[5] = 'A'
	}
	_, err = c.Decrypt(string(tampered))
	assert.True(t, errcode.IsKind(err, errcode.DecryptionFailure))

	_, err = NewSubjectCipher("short")
	assert.Error(t, err)
}

func TestTokenIssueAndParse(t *testing.T) {
	p := newProvider(t)
	pair, err := p.Issue("1@kakao", model.RoleUser)
	require.NoError(t, err)

	email, claims, err := p.Parse(pair.AccessToken, AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "1@kakao", email)
	assert.Equal(t, model.RoleUser, claims.Role)

	_, _, err = p.Parse(pair.RefreshToken, AccessToken)
	assert.True(t, errcode.IsKind(err, errcode.FilterAccessDenied))

	_, _, err = p.Parse(pair.AccessToken, RefreshToken)
	assert.True(t, errcode.IsKind(err, errcode.NotFoundRefreshToken))

	sign, err := p.IssueSign("2@google")
	require.NoError(t, err)
	email, _, err = p.Parse(sign, SignToken)
	require.NoError(t, err)
	assert.Equal(t, "2@google", email)
}

func TestTokenExpired(t *testing.T) {
	p := newProvider(t)
	pair, err := p.Issue("1@kakao", model.RoleUser)
	require.NoError(t, err)

	p.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, _, err = p.Parse(pair.AccessToken, AccessToken)
	assert.True(t, errcode.IsKind(err, errcode.FilterAccessDenied))

	_, _, err = p.Parse(pair.RefreshToken, RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshStore(t *testing.T) {
	mr, rdb := testutil.NewRedis(t)
	s := NewRefreshStore(rdb)
	ctx := context.Background()

	v, err := s.Get(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, s.Save(ctx, 7, "tok", time.Minute))
	v, err = s.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "tok", v)
	assert.True(t, mr.Exists("refresh:7"))

	mr.FastForward(2 * time.Minute)
	v, err = s.Get(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, s.Save(ctx, 7, "tok2", time.Minute))
	require.NoError(t, s.Delete(ctx, 7))
	assert.False(t, mr.Exists("refresh:7"))
}

// rewriteTransport 把所有外部请求转发到本地 httptest 服务
type rewriteTransport struct{ target *url.URL }

func (t rewriteTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.URL.Scheme = t.target.Scheme
	r.URL.Host = t.target.Host
	return http.DefaultTransport.RoundTrip(r)
}

type socialFixture struct {
	key *rsa.PrivateKey
	srv *httptest.Server
}

func newSocialFixture(t *testing.T) *socialFixture {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	f := &socialFixture{key: key}

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/v3/certs", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"keys": []map[string]string{{
			"kid": "k1",
			"kty": "RSA",
			"alg": "RS256",
			"use": "sig",
			"n":   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
			"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
		}}})
	})
	mux.HandleFunc("/v1/user/access_token_info", func(w http.ResponseWriter, r *http.Request) {
		switch r.Header.Get("Authorization") {
		case "Bearer ours":
			_, _ = w.Write([]byte(`{"id":42,"app_id":1001,"expires_in":3600}`))
		case "Bearer theirs":
			_, _ = w.Write([]byte(`{"id":42,"app_id":9999,"expires_in":3600}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"code":-401}`))
		}
	})
	mux.HandleFunc("/v1/user/unlink", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "KakaoAK admin", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "42", r.PostForm.Get("target_id"))
		_, _ = w.Write([]byte(`{"id":42}`))
	})
	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *socialFixture) verifier(t *testing.T) SocialVerifier {
	t.Helper()
	target, err := url.Parse(f.srv.URL)
	require.NoError(t, err)
	v, err := NewSocialVerifier(context.Background(), config.OAuthConfig{
		GoogleClientIDs: []string{"plub-ios", "plub-android"},
		KakaoAppID:      1001,
		KakaoAdminKey:   "admin",
	}, DefaultEndpoints, &http.Client{Transport: rewriteTransport{target: target}})
	require.NoError(t, err)
	return v
}

func (f *socialFixture) idToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tok.Header["kid"] = "k1"
	s, err := tok.SignedString(f.key)
	require.NoError(t, err)
	return s
}

func TestSocialVerifier(t *testing.T) {
	f := newSocialFixture(t)
	v := f.verifier(t)
	ctx := context.Background()
	now := time.Now()

	googleClaims := func(aud, iss string, exp time.Time) jwt.MapClaims {
		return jwt.MapClaims{"sub": "g-1", "aud": aud, "iss": iss, "iat": now.Unix(), "exp": exp.Unix()}
	}

	tests := []struct {
		name   string
		social model.SocialType
		token  string
		email  string
		kind   errcode.Kind
	}{
		{"google ios client", model.SocialGoogle, f.idToken(t, googleClaims("plub-ios", "https://accounts.google.com", now.Add(time.Hour))), "g-1@google", errcode.Unknown},
		{"google android client", model.SocialGoogle, f.idToken(t, googleClaims("plub-android", "accounts.google.com", now.Add(time.Hour))), "g-1@google", errcode.Unknown},
		{"google foreign audience", model.SocialGoogle, f.idToken(t, googleClaims("someone-elses-app", "https://accounts.google.com", now.Add(time.Hour))), "", errcode.SocialLoginError},
		{"google foreign issuer", model.SocialGoogle, f.idToken(t, googleClaims("plub-ios", "https://evil.example", now.Add(time.Hour))), "", errcode.SocialLoginError},
		{"google expired", model.SocialGoogle, f.idToken(t, googleClaims("plub-ios", "https://accounts.google.com", now.Add(-time.Hour))), "", errcode.SocialLoginError},
		{"google garbage", model.SocialGoogle, "not-a-jwt", "", errcode.SocialLoginError},
		{"kakao own app", model.SocialKakao, "ours", "42@kakao", errcode.Unknown},
		{"kakao foreign app", model.SocialKakao, "theirs", "", errcode.SocialLoginError},
		{"kakao invalid token", model.SocialKakao, "bad", "", errcode.SocialLoginError},
		{"apple unsupported", model.SocialApple, "x", "", errcode.UnsupportedSocialType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := v.Verify(ctx, tt.social, tt.token)
			if tt.kind != errcode.Unknown {
				assert.Nil(t, p)
				assert.True(t, errcode.IsKind(err, tt.kind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.email, p.Email)
		})
	}

	require.NoError(t, v.Revoke(ctx, model.SocialKakao, RevokeRequest{UserID: "42"}))
}

func TestSocialVerifierRejectsWhenUnconfigured(t *testing.T) {
	f := newSocialFixture(t)
	target, err := url.Parse(f.srv.URL)
	require.NoError(t, err)
	v, err := NewSocialVerifier(context.Background(), config.OAuthConfig{}, DefaultEndpoints,
		&http.Client{Transport: rewriteTransport{target: target}})
	require.NoError(t, err)

	tok := f.idToken(t, jwt.MapClaims{"sub": "g-1", "aud": "plub-ios", "iss": "accounts.google.com", "exp": time.Now().Add(time.Hour).Unix()})
	_, err = v.Verify(context.Background(), model.SocialGoogle, tok)
	assert.True(t, errcode.IsKind(err, errcode.SocialLoginError))

	_, err = v.Verify(context.Background(), model.SocialKakao, "ours")
	assert.True(t, errcode.IsKind(err, errcode.SocialLoginError))
}
