package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/pkg/errcode"
)

func TestValidNickname(t *testing.T) {
	for _, ok := range []string{"plub", "플럽2022", "ㅋㅋ", "abcdefgh"} {
		assert.True(t, ValidNickname(ok), ok)
	}
	for _, bad := range []string{"", "abcdefghi", "공 백", "emoji😀", "under_bar"} {
		assert.False(t, ValidNickname(bad), bad)
	}
}

func TestAccountProfile(t *testing.T) {
	e := newAuthEnv(t)
	svc := NewAccountService(e.store, e.social, e.refresh, nil)
	a, b := e.account(), e.account()

	ok, err := svc.CheckNickname(e.ctx, "새이름")
	require.NoError(t, err)
	assert.True(t, ok)
	_, err = svc.CheckNickname(e.ctx, b.Nickname)
	assert.True(t, errcode.IsKind(err, errcode.NicknameDuplication))
	_, err = svc.CheckNickname(e.ctx, "no!")
	assert.True(t, errcode.IsKind(err, errcode.NicknameRuleError))

	_, err = svc.UpdateProfile(e.ctx, a.ID, ProfileRequest{Nickname: b.Nickname})
	assert.True(t, errcode.IsKind(err, errcode.NicknameDuplication))

	v, err := svc.UpdateProfile(e.ctx, a.ID, ProfileRequest{Nickname: "새이름", Introduce: "hi", ProfileImage: "p.png"})
	require.NoError(t, err)
	assert.Equal(t, "새이름", v.Nickname)

	prof, err := svc.GetByNickname(e.ctx, "새이름")
	require.NoError(t, err)
	assert.Equal(t, "p.png", prof.ProfileImage)

	me, err := svc.Me(e.ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "hi", me.Introduce)
}

func TestAccountInterests(t *testing.T) {
	e := newAuthEnv(t)
	svc := NewAccountService(e.store, e.social, e.refresh, nil)
	a := e.account()
	cat := &model.Category{Name: "운동"}
	require.NoError(t, e.store.Categories.CreateCategory(e.ctx, cat))
	s1 := &model.SubCategory{CategoryID: cat.ID, Name: "러닝"}
	s2 := &model.SubCategory{CategoryID: cat.ID, Name: "등산"}
	require.NoError(t, e.store.Categories.CreateSubCategory(e.ctx, s1))
	require.NoError(t, e.store.Categories.CreateSubCategory(e.ctx, s2))

	v, err := svc.UpdateInterests(e.ctx, a.ID, InterestRequest{SubCategoryIDs: []int64{s1.ID, s2.ID}})
	require.NoError(t, err)
	assert.Len(t, v.SubCategories, 2)

	v, err = svc.UpdateInterests(e.ctx, a.ID, InterestRequest{SubCategoryIDs: []int64{s2.ID}})
	require.NoError(t, err)
	require.Len(t, v.SubCategories, 1)
	assert.Equal(t, "등산", v.SubCategories[0].Name)

	_, err = svc.UpdateInterests(e.ctx, a.ID, InterestRequest{SubCategoryIDs: []int64{404}})
	assert.True(t, errcode.IsKind(err, errcode.NotFoundSubCategory))
}

// recordingFiles 记录被删除的文件 URL
type recordingFiles struct{ deleted []string }

func (r *recordingFiles) Delete(url string) error {
	r.deleted = append(r.deleted, url)
	return nil
}

func TestUpdateProfileDiscardsReplacedImage(t *testing.T) {
	e := newAuthEnv(t)
	files := &recordingFiles{}
	svc := NewAccountService(e.store, e.social, e.refresh, files)
	a := e.account()

	_, err := svc.UpdateProfile(e.ctx, a.ID, ProfileRequest{Nickname: a.Nickname, ProfileImage: "/files/profile/old.png"})
	require.NoError(t, err)
	assert.Empty(t, files.deleted)

	// 图片不变不删除
	_, err = svc.UpdateProfile(e.ctx, a.ID, ProfileRequest{Nickname: a.Nickname, ProfileImage: "/files/profile/old.png"})
	require.NoError(t, err)
	assert.Empty(t, files.deleted)

	_, err = svc.UpdateProfile(e.ctx, a.ID, ProfileRequest{Nickname: a.Nickname, ProfileImage: "/files/profile/new.png"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/files/profile/old.png"}, files.deleted)

	// 事务失败时旧图保留
	b := e.account()
	_, err = svc.UpdateProfile(e.ctx, a.ID, ProfileRequest{Nickname: b.Nickname, ProfileImage: "/files/profile/third.png"})
	assert.True(t, errcode.IsKind(err, errcode.NicknameDuplication))
	assert.Len(t, files.deleted, 1)
}

func TestNicknameUniqueIndex(t *testing.T) {
	e := newAuthEnv(t)
	a := e.account()

	dup := &model.Account{Email: "dup@kakao", Nickname: a.Nickname, SocialType: model.SocialKakao, Role: model.RoleUser, Status: model.AccountNormal}
	err := e.store.Accounts.Create(e.ctx, dup)
	assert.True(t, errcode.IsKind(err, errcode.NicknameDuplication), "got %v", err)

	dup = &model.Account{Email: a.Email, Nickname: "다른이름", SocialType: model.SocialKakao, Role: model.RoleUser, Status: model.AccountNormal}
	err = e.store.Accounts.Create(e.ctx, dup)
	assert.True(t, errcode.IsKind(err, errcode.EmailDuplication), "got %v", err)

	b := e.account()
	b.Nickname = a.Nickname
	err = e.store.Accounts.Save(e.ctx, b)
	assert.True(t, errcode.IsKind(err, errcode.NicknameDuplication), "got %v", err)
}

func TestAccountRevoke(t *testing.T) {
	e := newAuthEnv(t)
	svc := NewAccountService(e.store, e.social, e.refresh, nil)
	a := e.account() // email "<n>@kakao"
	host := e.account()
	p := e.plubbing(host, a)
	_, err := e.svc.issue(e.ctx, a)
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(e.ctx, a.ID, "provider-token"))
	require.Len(t, e.social.revoked, 1)
	assert.Equal(t, "1", e.social.revoked[0].UserID)

	got, err := e.store.Accounts.GetByID(e.ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AccountWithdrawn, got.Status)
	assert.NotEqual(t, a.Email, got.Email)
	assert.NotEqual(t, a.Nickname, got.Nickname)

	stored, err := e.refresh.Get(e.ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, stored)

	// 成员关系结束，人数同步减少
	ok, err := NewGuard(e.store.Members).IsMember(e.ctx, a.ID, p.ID)
	require.NoError(t, err)
	assert.False(t, ok)
	gp, err := e.store.Plubbings.GetByID(e.ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, gp.CurAccountNum)

	err = svc.Revoke(e.ctx, a.ID, "provider-token")
	assert.True(t, errcode.IsKind(err, errcode.NotFoundAccount))
}

func TestRevokeThenSignupAgain(t *testing.T) {
	e := newAuthEnv(t)
	svc := NewAccountService(e.store, e.social, e.refresh, nil)

	res, err := e.svc.Login(e.ctx, LoginRequest{SocialType: model.SocialKakao, AccessToken: "42"})
	require.NoError(t, err)
	first, err := e.svc.Signup(e.ctx, SignupRequest{SignToken: res.SignToken, Nickname: "플럽"})
	require.NoError(t, err)
	old, err := e.svc.Resolve(e.ctx, first.AccessToken)
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(e.ctx, old.AccountID, "kakao-token"))

	// 旧令牌失效
	_, err = e.svc.Resolve(e.ctx, first.AccessToken)
	assert.True(t, errcode.IsKind(err, errcode.FilterAccessDenied))

	// 同一社交账号重新登录走注册流程，旧昵称可再次使用
	res, err = e.svc.Login(e.ctx, LoginRequest{SocialType: model.SocialKakao, AccessToken: "42"})
	require.NoError(t, err)
	require.Equal(t, NeedToSignup, res.Status)
	second, err := e.svc.Signup(e.ctx, SignupRequest{SignToken: res.SignToken, Nickname: "플럽"})
	require.NoError(t, err)

	res, err = e.svc.Login(e.ctx, LoginRequest{SocialType: model.SocialKakao, AccessToken: "42"})
	require.NoError(t, err)
	assert.Equal(t, LoginOK, res.Status)

	p, err := e.svc.Resolve(e.ctx, second.AccessToken)
	require.NoError(t, err)
	assert.NotEqual(t, old.AccountID, p.AccountID)
	assert.Equal(t, "42@kakao", p.Email)
}

func TestRevokeRejectedForActiveHost(t *testing.T) {
	e := newAuthEnv(t)
	svc := NewAccountService(e.store, e.social, e.refresh, nil)
	host := e.account()
	p := e.plubbing(host)

	err := svc.Revoke(e.ctx, host.ID, "provider-token")
	var de *errcode.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, errcode.HostCannotLeave, de.Kind)
	assert.Equal(t, HostedPlubbings{PlubbingIDs: []int64{p.ID}}, de.Data)
	assert.Empty(t, e.social.revoked)

	got, err := e.store.Accounts.GetByID(e.ctx, host.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AccountNormal, got.Status)
}
