package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PLUB2022/plub-server/config"
	"github.com/PLUB2022/plub-server/internal/auth"
	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/internal/testutil"
	"github.com/PLUB2022/plub-server/pkg/errcode"
)

// fakeSocial token 即 providerID
type fakeSocial struct {
	revoked []auth.RevokeRequest
}

func (f *fakeSocial) Verify(_ context.Context, social model.SocialType, token string) (*auth.SocialProfile, error) {
	if token == "bad" {
		return nil, errcode.New(errcode.SocialLoginError)
	}
	return &auth.SocialProfile{ProviderID: token, Email: auth.SocialEmail(token, social)}, nil
}

func (f *fakeSocial) Revoke(_ context.Context, _ model.SocialType, req auth.RevokeRequest) error {
	f.revoked = append(f.revoked, req)
	return nil
}

type authEnv struct {
	*fixture
	svc     *authService
	social  *fakeSocial
	refresh *auth.RefreshStore
}

func newAuthEnv(t *testing.T) *authEnv {
	f := newFixture(t)
	_, rdb := testutil.NewRedis(t)
	tokens, err := auth.NewTokenProvider(config.JWTConfig{
		Secret:          "secret",
		EncryptKey:      "0123456789abcdef0123456789abcdef",
		AccessDuration:  time.Hour,
		RefreshDuration: 24 * time.Hour,
	})
	require.NoError(t, err)
	social := &fakeSocial{}
	refresh := auth.NewRefreshStore(rdb)
	return &authEnv{fixture: f, svc: NewAuthService(f.store, tokens, refresh, social).(*authService), social: social, refresh: refresh}
}

func TestLoginSignupFlow(t *testing.T) {
	e := newAuthEnv(t)
	cat := &model.Category{Name: "운동"}
	require.NoError(t, e.store.Categories.CreateCategory(e.ctx, cat))
	sub := &model.SubCategory{CategoryID: cat.ID, Name: "러닝"}
	require.NoError(t, e.store.Categories.CreateSubCategory(e.ctx, sub))

	res, err := e.svc.Login(e.ctx, LoginRequest{SocialType: model.SocialKakao, AccessToken: "42"})
	require.NoError(t, err)
	assert.Equal(t, NeedToSignup, res.Status)
	require.NotEmpty(t, res.SignToken)

	pair, err := e.svc.Signup(e.ctx, SignupRequest{SignToken: res.SignToken, Nickname: "플럽", CategoryList: []int64{sub.ID, sub.ID}})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	a, err := e.store.Accounts.GetByEmail(e.ctx, "42@kakao")
	require.NoError(t, err)
	assert.Equal(t, model.SocialKakao, a.SocialType)
	ids, err := e.store.Accounts.ListCategoryIDs(e.ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{sub.ID}, ids)

	p, err := e.svc.Resolve(e.ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, a.ID, p.AccountID)

	_, err = e.svc.Signup(e.ctx, SignupRequest{SignToken: res.SignToken, Nickname: "다른이름"})
	assert.True(t, errcode.IsKind(err, errcode.EmailDuplication))

	res, err = e.svc.Login(e.ctx, LoginRequest{SocialType: model.SocialKakao, AccessToken: "42"})
	require.NoError(t, err)
	assert.Equal(t, LoginOK, res.Status)
	assert.NotEmpty(t, res.RefreshToken)
}

func TestSignupRejectsBadInput(t *testing.T) {
	e := newAuthEnv(t)
	e.account() // nickname user1

	res, err := e.svc.Login(e.ctx, LoginRequest{SocialType: model.SocialGoogle, AccessToken: "g-1"})
	require.NoError(t, err)

	_, err = e.svc.Signup(e.ctx, SignupRequest{SignToken: res.SignToken, Nickname: "too long name"})
	assert.True(t, errcode.IsKind(err, errcode.NicknameRuleError))
	_, err = e.svc.Signup(e.ctx, SignupRequest{SignToken: res.SignToken, Nickname: "user1"})
	assert.True(t, errcode.IsKind(err, errcode.NicknameDuplication))
	_, err = e.svc.Signup(e.ctx, SignupRequest{SignToken: "garbage", Nickname: "ok"})
	assert.True(t, errcode.IsKind(err, errcode.SignupTokenError))
	_, err = e.svc.Signup(e.ctx, SignupRequest{SignToken: res.SignToken, Nickname: "ok", CategoryList: []int64{99}})
	assert.True(t, errcode.IsKind(err, errcode.NotFoundSubCategory))

	_, err = e.svc.Login(e.ctx, LoginRequest{SocialType: model.SocialApple, AccessToken: "x"})
	assert.True(t, errcode.IsKind(err, errcode.AppleLoginError))
	_, err = e.svc.Login(e.ctx, LoginRequest{SocialType: model.SocialGoogle, AccessToken: "bad"})
	assert.True(t, errcode.IsKind(err, errcode.SocialLoginError))
}

func TestReissueRotates(t *testing.T) {
	e := newAuthEnv(t)
	a := e.account()
	first, err := e.svc.issue(e.ctx, a)
	require.NoError(t, err)

	second, err := e.svc.Reissue(e.ctx, ReissueRequest{RefreshToken: first.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	_, err = e.svc.Reissue(e.ctx, ReissueRequest{RefreshToken: first.RefreshToken})
	assert.True(t, errcode.IsKind(err, errcode.NotFoundRefreshToken))

	require.NoError(t, e.svc.Logout(e.ctx, a.ID))
	_, err = e.svc.Reissue(e.ctx, ReissueRequest{RefreshToken: second.RefreshToken})
	assert.True(t, errcode.IsKind(err, errcode.NotFoundRefreshToken))

	// access token 不能当 refresh 用
	_, err = e.svc.Reissue(e.ctx, ReissueRequest{RefreshToken: second.AccessToken})
	assert.True(t, errcode.IsKind(err, errcode.NotFoundRefreshToken))
}

func TestAdminLogin(t *testing.T) {
	e := newAuthEnv(t)
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	admin := &model.Account{Email: "admin@plub.com", Nickname: "admin", Password: hash, Role: model.RoleAdmin, SocialType: model.SocialAdmin, Status: model.AccountNormal}
	require.NoError(t, e.store.Accounts.Create(e.ctx, admin))

	pair, err := e.svc.AdminLogin(e.ctx, AdminLoginRequest{Email: "admin@plub.com", Password: "s3cret"})
	require.NoError(t, err)
	p, err := e.svc.Resolve(e.ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.True(t, p.IsAdmin())

	_, err = e.svc.AdminLogin(e.ctx, AdminLoginRequest{Email: "admin@plub.com", Password: "wrong"})
	assert.True(t, errcode.IsKind(err, errcode.LoginFail))
	_, err = e.svc.AdminLogin(e.ctx, AdminLoginRequest{Email: "nobody@plub.com", Password: "s3cret"})
	assert.True(t, errcode.IsKind(err, errcode.LoginFail))
}

func TestResolveRejectsSanctionedAccounts(t *testing.T) {
	e := newAuthEnv(t)
	a := e.account()
	pair, err := e.svc.issue(e.ctx, a)
	require.NoError(t, err)

	require.NoError(t, e.store.Accounts.UpdateStatus(e.ctx, a.ID, model.AccountPaused))
	_, err = e.svc.Resolve(e.ctx, pair.AccessToken)
	assert.True(t, errcode.IsKind(err, errcode.PausedAccount))

	require.NoError(t, e.store.Accounts.UpdateStatus(e.ctx, a.ID, model.AccountBanned))
	_, err = e.svc.Resolve(e.ctx, pair.AccessToken)
	assert.True(t, errcode.IsKind(err, errcode.BannedAccount))

	_, err = e.svc.Resolve(e.ctx, pair.RefreshToken)
	assert.True(t, errcode.IsKind(err, errcode.FilterAccessDenied))
}
