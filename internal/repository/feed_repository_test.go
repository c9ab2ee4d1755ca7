package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/internal/testutil"
)

func newFeed(t *testing.T, repo FeedRepository, plubbingID, accountID int64) *model.Feed {
	t.Helper()
	f := &model.Feed{PlubbingID: plubbingID, AccountID: accountID, Title: "t", Content: "c", ViewType: model.ViewNormal, Visibility: true}
	require.NoError(t, repo.Create(context.Background(), f))
	return f
}

func TestFeedToggleLike(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewFeedRepository(db)
	ctx := context.Background()
	f := newFeed(t, repo, 1, 1)

	liked, err := repo.ToggleLike(ctx, 2, f.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	got, err := repo.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.LikeCount)

	liked, err = repo.ToggleLike(ctx, 2, f.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	got, err = repo.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.LikeCount)

	var cnt int64
	require.NoError(t, db.Model(&model.FeedLike{}).Count(&cnt).Error)
	assert.Zero(t, cnt)
}

func TestFeedListByPlubbingCursor(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewFeedRepository(db)
	ctx := context.Background()

	var ids []int64
	for i := 0; i < 5; i++ {
		ids = append(ids, newFeed(t, repo, 1, 1).ID)
	}
	newFeed(t, repo, 2, 1)
	now := time.Now()
	require.NoError(t, repo.SetPin(ctx, ids[4], &now))
	require.NoError(t, repo.SoftDelete(ctx, ids[0]))

	page, err := repo.ListByPlubbing(ctx, 1, nil, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, ids[3], page[0].ID)
	assert.Equal(t, ids[2], page[1].ID)

	cursor := page[1].ID
	page, err = repo.ListByPlubbing(ctx, 1, &cursor, 10)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, ids[1], page[0].ID)

	total, err := repo.CountByPlubbing(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	pinned, err := repo.CountPinned(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, pinned)
}

func TestCommentGroupAndListOrder(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewFeedCommentRepository(db)
	ctx := context.Background()

	root1 := &model.FeedComment{FeedID: 1, AccountID: 1, Content: "r1", Visibility: true}
	require.NoError(t, repo.Create(ctx, root1))
	assert.Equal(t, root1.ID, root1.CommentGroupID)

	child := &model.FeedComment{FeedID: 1, AccountID: 2, Content: "c1", ParentID: &root1.ID, CommentGroupID: root1.CommentGroupID, Visibility: true}
	require.NoError(t, repo.Create(ctx, child))

	root2 := &model.FeedComment{FeedID: 1, AccountID: 1, Content: "r2", Visibility: true}
	require.NoError(t, repo.Create(ctx, root2))

	all, err := repo.List(ctx, 1, nil, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{root2.ID, root1.ID, child.ID}, []int64{all[0].ID, all[1].ID, all[2].ID})

	next, err := repo.List(ctx, 1, all[1], 10)
	require.NoError(t, err)
	require.Len(t, next, 1)
	assert.Equal(t, child.ID, next[0].ID)

	ok, err := repo.SoftDelete(ctx, child.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.SoftDelete(ctx, child.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

// likeState 返回 like_count 与 feed_likes 实际行数
func likeState(t *testing.T, repo FeedRepository, db *gorm.DB, feedID int64) (int, int64) {
	t.Helper()
	got, err := repo.GetByID(context.Background(), feedID)
	require.NoError(t, err)
	var rows int64
	require.NoError(t, db.Model(&model.FeedLike{}).Where("feed_id = ?", feedID).Count(&rows).Error)
	return got.LikeCount, rows
}

func TestFeedToggleLikeConcurrent(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewFeedRepository(db)
	ctx := context.Background()
	f := newFeed(t, repo, 1, 1)

	const n = 7
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.ToggleLike(ctx, 2, f.ID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	count, rows := likeState(t, repo, db, f.ID)
	assert.Equal(t, int64(count), rows)
	assert.Equal(t, int64(1), rows) // 奇数次切换
}

// 删除时没有命中、插入时对方已写入：视为已点赞，计数不变
func TestToggleLikeLostInsertRace(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewFeedRepository(db)
	f := newFeed(t, repo, 1, 1)

	liked, err := repo.ToggleLike(context.Background(), 2, f.ID)
	require.NoError(t, err)
	require.True(t, liked)

	liked, err = toggleLike(db, &model.FeedLike{AccountID: 2, FeedID: f.ID}, "1 = 0", nil, &model.Feed{}, f.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	count, rows := likeState(t, repo, db, f.ID)
	assert.Equal(t, 1, count)
	assert.Equal(t, int64(1), rows)
}

func TestLikePairUniqueIndex(t *testing.T) {
	db := testutil.NewDB(t)

	require.NoError(t, db.Create(&model.FeedLike{AccountID: 2, FeedID: 9}).Error)
	err := db.Create(&model.FeedLike{AccountID: 2, FeedID: 9}).Error
	require.Error(t, err)
	assert.True(t, uniqueViolation(err, "feed_id"), "got %v", err)
	require.NoError(t, db.Create(&model.FeedLike{AccountID: 3, FeedID: 9}).Error)

	require.NoError(t, db.Create(&model.TodoLike{AccountID: 2, TimelineID: 9}).Error)
	err = db.Create(&model.TodoLike{AccountID: 2, TimelineID: 9}).Error
	require.Error(t, err)
	assert.True(t, uniqueViolation(err, "timeline_id"), "got %v", err)
}

func TestTimelineToggleLikeConcurrent(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewTodoTimelineRepository(db)
	ctx := context.Background()
	tl, err := repo.FindOrCreate(ctx, 1, 1, "2023-05-01")
	require.NoError(t, err)

	const n = 6
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.ToggleLike(ctx, 2, tl.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var got model.TodoTimeline
	require.NoError(t, db.First(&got, tl.ID).Error)
	var rows int64
	require.NoError(t, db.Model(&model.TodoLike{}).Where("timeline_id = ?", tl.ID).Count(&rows).Error)
	assert.Equal(t, int64(got.LikeCount), rows)
	assert.Zero(t, rows) // 偶数次切换
}
