package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
	"google.golang.org/api/option"

	"github.com/PLUB2022/plub-server/config"
	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/pkg/errcode"
)

// SocialProfile 第三方登录校验结果；Email 由 providerID@socialType 组成
type SocialProfile struct {
	ProviderID string
	Email      string
}

type SocialVerifier interface {
	Verify(ctx context.Context, social model.SocialType, token string) (*SocialProfile, error)
	Revoke(ctx context.Context, social model.SocialType, req RevokeRequest) error
}

type RevokeRequest struct {
	AccessToken string `json:"accessToken"`
	UserID      string `json:"userId"`
}

// Endpoints 可替换，测试时指向 httptest。Google 公钥地址由 idtoken 固定
type Endpoints struct {
	GoogleRevoke   string
	KakaoTokenInfo string
	KakaoUnlink    string
}

var DefaultEndpoints = Endpoints{
	GoogleRevoke:   "https://oauth2.googleapis.com/revoke",
	KakaoTokenInfo: "https://kapi.kakao.com/v1/user/access_token_info",
	KakaoUnlink:    "https://kapi.kakao.com/v1/user/unlink",
}

var googleIssuers = []string{"accounts.google.com", "https://accounts.google.com"}

type socialVerifier struct {
	client    *http.Client
	google    *idtoken.Validator
	endpoints Endpoints
	cfg       config.OAuthConfig
}

// NewSocialVerifier client 为空时使用默认超时客户端
func NewSocialVerifier(ctx context.Context, cfg config.OAuthConfig, endpoints Endpoints, client *http.Client) (SocialVerifier, error) {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	validator, err := idtoken.NewValidator(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("google id token validator: %w", err)
	}
	return &socialVerifier{
		client:    client,
		google:    validator,
		endpoints: endpoints,
		cfg:       cfg,
	}, nil
}

func SocialEmail(providerID string, social model.SocialType) string {
	return providerID + "@" + strings.ToLower(string(social))
}

func (v *socialVerifier) Verify(ctx context.Context, social model.SocialType, token string) (*SocialProfile, error) {
	var id string
	var err error
	switch social {
	case model.SocialGoogle:
		id, err = v.verifyGoogle(ctx, token)
	case model.SocialKakao:
		id, err = v.verifyKakao(ctx, token)
	default:
		return nil, errcode.New(errcode.UnsupportedSocialType)
	}
	if err != nil {
		return nil, err
	}
	return &SocialProfile{ProviderID: id, Email: SocialEmail(id, social)}, nil
}

// verifyGoogle 校验签名与过期，aud 必须是本应用登记的 client id 之一
func (v *socialVerifier) verifyGoogle(ctx context.Context, idToken string) (string, error) {
	payload, err := v.google.Validate(ctx, idToken, "")
	if err != nil {
		return "", errcode.Newf(errcode.SocialLoginError, "google: %v", err)
	}
	if !slices.Contains(v.cfg.GoogleClientIDs, payload.Audience) {
		return "", errcode.Newf(errcode.SocialLoginError, "google: foreign audience %q", payload.Audience)
	}
	if !slices.Contains(googleIssuers, payload.Issuer) {
		return "", errcode.Newf(errcode.SocialLoginError, "google: unexpected issuer %q", payload.Issuer)
	}
	if payload.Subject == "" {
		return "", errcode.Newf(errcode.SocialLoginError, "google: empty subject")
	}
	return payload.Subject, nil
}

// verifyKakao access_token_info 返回令牌所属应用，必须与本应用一致
func (v *socialVerifier) verifyKakao(ctx context.Context, accessToken string) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, v.client)
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.endpoints.KakaoTokenInfo, nil)
	if err != nil {
		return "", err
	}
	var body struct {
		ID    int64 `json:"id"`
		AppID int64 `json:"app_id"`
	}
	if err := do(client, req, &body); err != nil {
		return "", err
	}
	if v.cfg.KakaoAppID == 0 || body.AppID != v.cfg.KakaoAppID {
		return "", errcode.Newf(errcode.SocialLoginError, "kakao: foreign app %d", body.AppID)
	}
	if body.ID == 0 {
		return "", errcode.Newf(errcode.SocialLoginError, "kakao: empty id")
	}
	return strconv.FormatInt(body.ID, 10), nil
}

func (v *socialVerifier) Revoke(ctx context.Context, social model.SocialType, r RevokeRequest) error {
	var req *http.Request
	var err error
	switch social {
	case model.SocialGoogle:
		form := url.Values{"token": {r.AccessToken}}
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, v.endpoints.GoogleRevoke, strings.NewReader(form.Encode()))
	case model.SocialKakao:
		form := url.Values{"target_id_type": {"user_id"}, "target_id": {r.UserID}}
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, v.endpoints.KakaoUnlink, strings.NewReader(form.Encode()))
		if err == nil {
			req.Header.Set("Authorization", "KakaoAK "+v.cfg.KakaoAdminKey)
		}
	default:
		return errcode.New(errcode.UnsupportedSocialType)
	}
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return do(v.client, req, nil)
}

func do(client *http.Client, req *http.Request, out any) error {
	resp, err := client.Do(req)
	if err != nil {
		return errcode.Newf(errcode.HTTPClientError, "%v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errcode.Newf(errcode.SocialLoginError, "%s %d: %s", req.URL.Host, resp.StatusCode, b)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", req.URL.Host, err)
	}
	return nil
}
