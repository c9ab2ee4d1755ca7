package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PLUB2022/plub-server/pkg/errcode"
	"github.com/PLUB2022/plub-server/pkg/pagination"
)

func TestNoticeHostOnly(t *testing.T) {
	f := newFixture(t)
	svc := NewNoticeService(f.store)
	host, member, outsider := f.account(), f.account(), f.account()
	p := f.plubbing(host, member)

	_, err := svc.Create(f.ctx, member.ID, p.ID, NoticeRequest{Title: "공지"})
	assert.True(t, errcode.IsKind(err, errcode.NotHostError))

	id, err := svc.Create(f.ctx, host.ID, p.ID, NoticeRequest{Title: "공지", Content: "내용"})
	require.NoError(t, err)

	_, err = svc.Get(f.ctx, outsider.ID, p.ID, id)
	assert.True(t, errcode.IsKind(err, errcode.NotMemberError))

	_, err = svc.Update(f.ctx, member.ID, p.ID, id, NoticeRequest{Title: "x"})
	assert.True(t, errcode.IsKind(err, errcode.NotHostError))

	v, err := svc.Update(f.ctx, host.ID, p.ID, id, NoticeRequest{Title: "수정", Content: "새 내용"})
	require.NoError(t, err)
	assert.Equal(t, "수정", v.Title)
	assert.Equal(t, host.Nickname, v.Nickname)
	assert.True(t, v.IsHost)

	other := f.plubbing(host)
	_, err = svc.Get(f.ctx, host.ID, other.ID, id)
	assert.True(t, errcode.IsKind(err, errcode.NotFoundNotice))

	require.NoError(t, svc.SoftDelete(f.ctx, host.ID, p.ID, id))
	_, err = svc.Get(f.ctx, member.ID, p.ID, id)
	assert.True(t, errcode.IsKind(err, errcode.DeletedStatusNotice))
}

func TestNoticeListAndLike(t *testing.T) {
	f := newFixture(t)
	svc := NewNoticeService(f.store)
	host, member := f.account(), f.account()
	p := f.plubbing(host, member)

	var last int64
	for i := 0; i < 3; i++ {
		id, err := svc.Create(f.ctx, host.ID, p.ID, NoticeRequest{Title: "공지"})
		require.NoError(t, err)
		last = id
	}

	page, err := svc.List(f.ctx, member.ID, p.ID, pagination.Request{Size: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.TotalElements)
	assert.False(t, page.Last)
	require.Len(t, page.Content, 2)
	assert.Equal(t, last, page.Content[0].NoticeID)

	page, err = svc.List(f.ctx, member.ID, p.ID, pagination.Request{Page: 1, Size: 2})
	require.NoError(t, err)
	assert.True(t, page.Last)
	assert.Len(t, page.Content, 1)

	r, err := svc.Like(f.ctx, member.ID, p.ID, last)
	require.NoError(t, err)
	assert.True(t, r.IsLike)
	v, err := svc.Get(f.ctx, member.ID, p.ID, last)
	require.NoError(t, err)
	assert.Equal(t, 1, v.LikeCount)
	assert.True(t, v.IsLike)

	r, err = svc.Like(f.ctx, member.ID, p.ID, last)
	require.NoError(t, err)
	assert.False(t, r.IsLike)
	v, err = svc.Get(f.ctx, member.ID, p.ID, last)
	require.NoError(t, err)
	assert.Zero(t, v.LikeCount)
}

func TestNoticeComments(t *testing.T) {
	f := newFixture(t)
	svc := NewNoticeService(f.store)
	host, a, b := f.account(), f.account(), f.account()
	p := f.plubbing(host, a, b)
	id, err := svc.Create(f.ctx, host.ID, p.ID, NoticeRequest{Title: "공지"})
	require.NoError(t, err)

	var ids []int64
	for _, who := range []int64{a.ID, b.ID, a.ID} {
		c, err := svc.CreateComment(f.ctx, who, p.ID, id, NoticeCommentRequest{Content: "댓글"})
		require.NoError(t, err)
		ids = append(ids, c.CommentID)
	}

	_, err = svc.UpdateComment(f.ctx, b.ID, p.ID, id, ids[0], NoticeCommentRequest{Content: "x"})
	assert.True(t, errcode.IsKind(err, errcode.NotNoticeAuthorError))
	c, err := svc.UpdateComment(f.ctx, a.ID, p.ID, id, ids[0], NoticeCommentRequest{Content: "수정"})
	require.NoError(t, err)
	assert.Equal(t, "수정", c.Content)
	assert.True(t, c.IsCommentAuthor)

	err = svc.DeleteComment(f.ctx, b.ID, p.ID, id, ids[0])
	assert.True(t, errcode.IsKind(err, errcode.NotNoticeAuthorError))
	// 公告作者可以删别人的评论
	require.NoError(t, svc.DeleteComment(f.ctx, host.ID, p.ID, id, ids[1]))
	err = svc.DeleteComment(f.ctx, host.ID, p.ID, id, ids[1])
	assert.True(t, errcode.IsKind(err, errcode.DeletedStatusNoticeComment))

	page, err := svc.ListComments(f.ctx, b.ID, p.ID, id, pagination.Request{Size: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.TotalElements)
	assert.False(t, page.Last)
	require.Len(t, page.Content, 1)
	assert.Equal(t, ids[0], page.Content[0].CommentID)

	cursor := page.Content[0].CommentID
	page, err = svc.ListComments(f.ctx, b.ID, p.ID, id, pagination.Request{Size: 1, CursorID: &cursor})
	require.NoError(t, err)
	assert.True(t, page.Last)
	assert.Equal(t, ids[2], page.Content[0].CommentID)
}
