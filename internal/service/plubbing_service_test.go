package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/pkg/errcode"
	"github.com/PLUB2022/plub-server/pkg/pagination"
)

func createRequest(subID int64) CreatePlubbingRequest {
	return CreatePlubbingRequest{
		SubCategoryIDs: []int64{subID, subID},
		Title:          "같이 뛰어요",
		Name:           "러닝 모임",
		Goal:           "10km",
		Days:           []string{"MON", "WED"},
		OnOff:          model.Off,
		MaxAccountNum:  4,
		Questions:      []string{"자기소개", "러닝 경력"},
	}
}

func TestCreatePlubbing(t *testing.T) {
	f := newFixture(t)
	svc := NewPlubbingService(f.store, nil)
	host, outsider := f.account(), f.account()
	sub := f.subCategory("운동")

	_, err := svc.Create(f.ctx, host.ID, createRequest(404))
	assert.True(t, errcode.IsKind(err, errcode.NotFoundSubCategory))

	id, err := svc.Create(f.ctx, host.ID, createRequest(sub.ID))
	require.NoError(t, err)

	main, err := svc.GetMain(f.ctx, host.ID, id)
	require.NoError(t, err)
	assert.Equal(t, "러닝 모임", main.Name)
	assert.Equal(t, "같이 뛰어요", main.Title)
	assert.Equal(t, []string{"MON", "WED"}, main.Days)
	assert.Equal(t, 3, main.RemainAccountNum)
	assert.True(t, main.IsHost)
	require.Len(t, main.Members, 1)
	assert.Equal(t, host.Nickname, main.Members[0].Nickname)

	subs, err := f.store.Plubbings.ListSubCategoryIDs(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []int64{sub.ID}, subs)

	_, err = svc.GetMain(f.ctx, outsider.ID, id)
	assert.True(t, errcode.IsKind(err, errcode.NotMemberError))
}

func TestUpdatePlubbing(t *testing.T) {
	f := newFixture(t)
	svc := NewPlubbingService(f.store, nil)
	host, member := f.account(), f.account()
	p := f.plubbing(host, member)

	req := UpdatePlubbingRequest{Name: "새 이름", OnOff: model.On, MaxAccountNum: 1}
	err := svc.Update(f.ctx, host.ID, p.ID, req)
	assert.True(t, errcode.IsKind(err, errcode.InvalidInputValue))

	req.MaxAccountNum = 5
	err = svc.Update(f.ctx, member.ID, p.ID, req)
	assert.True(t, errcode.IsKind(err, errcode.NotHostError))

	require.NoError(t, svc.Update(f.ctx, host.ID, p.ID, req))
	got, err := f.store.Plubbings.GetByID(f.ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "새 이름", got.Name)
	assert.Equal(t, model.On, got.OnOff)
	assert.Equal(t, 5, got.MaxAccountNum)
}

func TestUpdatePlubbingDiscardsReplacedImage(t *testing.T) {
	f := newFixture(t)
	files := &recordingFiles{}
	svc := NewPlubbingService(f.store, files)
	host := f.account()
	p := f.plubbing(host)

	req := UpdatePlubbingRequest{Name: "모임", OnOff: model.Off, MaxAccountNum: 5, MainImage: "/files/plubbing/a.png"}
	require.NoError(t, svc.Update(f.ctx, host.ID, p.ID, req))
	require.NoError(t, svc.Update(f.ctx, host.ID, p.ID, req))
	assert.Empty(t, files.deleted)

	req.MainImage = "/files/plubbing/b.png"
	require.NoError(t, svc.Update(f.ctx, host.ID, p.ID, req))
	assert.Equal(t, []string{"/files/plubbing/a.png"}, files.deleted)

	// 校验失败不删除
	req.MainImage, req.MaxAccountNum = "/files/plubbing/c.png", 0
	require.Error(t, svc.Update(f.ctx, host.ID, p.ID, req))
	assert.Equal(t, []string{"/files/plubbing/a.png"}, files.deleted)
}

func TestLeavePlubbing(t *testing.T) {
	f := newFixture(t)
	svc := NewPlubbingService(f.store, nil)
	host, member := f.account(), f.account()
	p := f.plubbing(host, member)

	assert.True(t, errcode.IsKind(svc.Leave(f.ctx, host.ID, p.ID), errcode.HostCannotLeave))
	require.NoError(t, svc.Leave(f.ctx, member.ID, p.ID))
	assert.True(t, errcode.IsKind(svc.Leave(f.ctx, member.ID, p.ID), errcode.NotMemberError))

	got, err := f.store.Plubbings.GetByID(f.ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CurAccountNum)

	mine, err := svc.ListMine(f.ctx, member.ID, nil, "")
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestToggleEndAndSoftDelete(t *testing.T) {
	f := newFixture(t)
	svc := NewPlubbingService(f.store, nil)
	host, member := f.account(), f.account()
	p := f.plubbing(host, member)

	_, err := svc.ToggleEnd(f.ctx, member.ID, p.ID)
	assert.True(t, errcode.IsKind(err, errcode.NotHostError))

	status, err := svc.ToggleEnd(f.ctx, host.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PlubbingEnd, status)
	ended, err := svc.ListMine(f.ctx, member.ID, nil, model.MembershipEnd)
	require.NoError(t, err)
	require.Len(t, ended, 1)
	assert.Equal(t, model.PlubbingEnd, ended[0].Status)

	status, err = svc.ToggleEnd(f.ctx, host.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PlubbingActive, status)

	isHost := true
	hosted, err := svc.ListMine(f.ctx, host.ID, &isHost, "")
	require.NoError(t, err)
	require.Len(t, hosted, 1)
	assert.True(t, hosted[0].IsHost)

	require.NoError(t, svc.SoftDelete(f.ctx, host.ID, p.ID))
	err = svc.SoftDelete(f.ctx, host.ID, p.ID)
	assert.True(t, errcode.IsKind(err, errcode.DeletedStatusPlubbing))
	_, err = svc.GetMain(f.ctx, member.ID, p.ID)
	assert.True(t, errcode.IsKind(err, errcode.DeletedStatusPlubbing))

	mine, err := svc.ListMine(f.ctx, member.ID, nil, model.MembershipEnd)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestListByCategoryAndRecommend(t *testing.T) {
	f := newFixture(t)
	svc := NewPlubbingService(f.store, nil)
	host, viewer := f.account(), f.account()
	run, book := f.subCategory("운동"), f.subCategory("독서")

	for i := 0; i < 3; i++ {
		_, err := svc.Create(f.ctx, host.ID, createRequest(run.ID))
		require.NoError(t, err)
	}
	bookID, err := svc.Create(f.ctx, host.ID, createRequest(book.ID))
	require.NoError(t, err)

	page, err := svc.ListByCategory(f.ctx, viewer.ID, run.CategoryID, pagination.Request{Size: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.TotalElements)
	assert.Len(t, page.Content, 2)
	assert.False(t, page.Last)

	_, err = svc.ListByCategory(f.ctx, viewer.ID, 404, pagination.Request{})
	assert.True(t, errcode.IsKind(err, errcode.NotFoundCategory))

	all, err := svc.Recommend(f.ctx, viewer.ID, pagination.Request{})
	require.NoError(t, err)
	assert.EqualValues(t, 4, all.TotalElements)

	require.NoError(t, f.store.Accounts.ReplaceCategories(f.ctx, viewer.ID, []int64{book.ID}))
	rec, err := svc.Recommend(f.ctx, viewer.ID, pagination.Request{})
	require.NoError(t, err)
	require.Len(t, rec.Content, 1)
	assert.Equal(t, bookID, rec.Content[0].PlubbingID)
}
