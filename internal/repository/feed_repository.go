package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/pkg/errcode"
)

type FeedRepository interface {
	Create(ctx context.Context, f *model.Feed) error
	GetByID(ctx context.Context, id int64) (*model.Feed, error)
	UpdateContent(ctx context.Context, id int64, title, content, image string) error
	SoftDelete(ctx context.Context, id int64) error
	SetPin(ctx context.Context, id int64, pinnedAt *time.Time) error
	CountPinned(ctx context.Context, plubbingID int64) (int64, error)

	// ListByPlubbing 非置顶可见动态，按 id 倒序 keyset 分页，多取一条用于判断 last
	ListByPlubbing(ctx context.Context, plubbingID int64, cursor *int64, limit int) ([]*model.Feed, error)
	CountByPlubbing(ctx context.Context, plubbingID int64) (int64, error)
	ListPinned(ctx context.Context, plubbingID int64) ([]*model.Feed, error)
	ListByAccount(ctx context.Context, plubbingID, accountID int64, cursor *int64, limit int) ([]*model.Feed, error)
	CountByAccount(ctx context.Context, plubbingID, accountID int64) (int64, error)

	// ToggleLike 返回切换后是否已点赞
	ToggleLike(ctx context.Context, accountID, feedID int64) (bool, error)
	LikedFeedIDs(ctx context.Context, accountID int64, feedIDs []int64) (map[int64]bool, error)
	AdjustCommentCount(ctx context.Context, id int64, n int) error
}

type feedRepository struct{ db *gorm.DB }

func NewFeedRepository(db *gorm.DB) FeedRepository { return &feedRepository{db: db} }

func (r *feedRepository) Create(ctx context.Context, f *model.Feed) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *feedRepository) GetByID(ctx context.Context, id int64) (*model.Feed, error) {
	var f model.Feed
	if err := r.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, notFound(err, errcode.NotFoundFeed)
	}
	return &f, nil
}

func (r *feedRepository) UpdateContent(ctx context.Context, id int64, title, content, image string) error {
	return r.db.WithContext(ctx).Model(&model.Feed{}).Where("id = ?", id).
		Updates(map[string]any{"title": title, "content": content, "feed_image": image}).Error
}

func (r *feedRepository) SoftDelete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&model.Feed{}).Where("id = ?", id).
		Updates(map[string]any{"visibility": false, "pin": false, "pinned_at": nil}).Error
}

// SetPin pinnedAt 为 nil 表示取消置顶
func (r *feedRepository) SetPin(ctx context.Context, id int64, pinnedAt *time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Feed{}).Where("id = ?", id).
		Updates(map[string]any{"pin": pinnedAt != nil, "pinned_at": pinnedAt}).Error
}

func (r *feedRepository) CountPinned(ctx context.Context, plubbingID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Feed{}).
		Where("plubbing_id = ? AND pin = ? AND visibility = ?", plubbingID, true, true).
		Count(&cnt).Error
	return cnt, err
}

func (r *feedRepository) ListByPlubbing(ctx context.Context, plubbingID int64, cursor *int64, limit int) ([]*model.Feed, error) {
	var res []*model.Feed
	q := r.db.WithContext(ctx).
		Where("plubbing_id = ? AND pin = ? AND visibility = ?", plubbingID, false, true)
	if cursor != nil {
		q = q.Where("id < ?", *cursor)
	}
	err := q.Order("id DESC").Limit(limit).Find(&res).Error
	return res, err
}

func (r *feedRepository) CountByPlubbing(ctx context.Context, plubbingID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Feed{}).
		Where("plubbing_id = ? AND pin = ? AND visibility = ?", plubbingID, false, true).
		Count(&cnt).Error
	return cnt, err
}

func (r *feedRepository) ListPinned(ctx context.Context, plubbingID int64) ([]*model.Feed, error) {
	var res []*model.Feed
	err := r.db.WithContext(ctx).
		Where("plubbing_id = ? AND pin = ? AND visibility = ?", plubbingID, true, true).
		Order("pinned_at DESC, id DESC").
		Find(&res).Error
	return res, err
}

func (r *feedRepository) ListByAccount(ctx context.Context, plubbingID, accountID int64, cursor *int64, limit int) ([]*model.Feed, error) {
	var res []*model.Feed
	q := r.db.WithContext(ctx).
		Where("plubbing_id = ? AND account_id = ? AND visibility = ?", plubbingID, accountID, true)
	if cursor != nil {
		q = q.Where("id < ?", *cursor)
	}
	err := q.Order("id DESC").Limit(limit).Find(&res).Error
	return res, err
}

func (r *feedRepository) CountByAccount(ctx context.Context, plubbingID, accountID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Feed{}).
		Where("plubbing_id = ? AND account_id = ? AND visibility = ?", plubbingID, accountID, true).
		Count(&cnt).Error
	return cnt, err
}

func (r *feedRepository) ToggleLike(ctx context.Context, accountID, feedID int64) (bool, error) {
	return toggleLike(r.db.WithContext(ctx),
		&model.FeedLike{AccountID: accountID, FeedID: feedID},
		"account_id = ? AND feed_id = ?", []any{accountID, feedID},
		&model.Feed{}, feedID)
}

func (r *feedRepository) LikedFeedIDs(ctx context.Context, accountID int64, feedIDs []int64) (map[int64]bool, error) {
	res := make(map[int64]bool, len(feedIDs))
	if len(feedIDs) == 0 {
		return res, nil
	}
	var ids []int64
	err := r.db.WithContext(ctx).Model(&model.FeedLike{}).
		Where("account_id = ? AND feed_id IN ?", accountID, feedIDs).
		Pluck("feed_id", &ids).Error
	for _, id := range ids {
		res[id] = true
	}
	return res, err
}

func (r *feedRepository) AdjustCommentCount(ctx context.Context, id int64, n int) error {
	if n == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Feed{}).Where("id = ?", id).
		Update("comment_count", delta("comment_count", n)).Error
}

// toggleLike 点赞切换：先删；未删到则 ON CONFLICT DO NOTHING 插入。
// 只有真正删除/插入了一行才调整 like_count。
func toggleLike(db *gorm.DB, like any, where string, args []any, target any, targetID int64) (bool, error) {
	var liked bool
	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where(where, args...).Delete(like)
		if res.Error != nil {
			return res.Error
		}
		n := -1
		if res.RowsAffected == 0 {
			res = tx.Clauses(clause.OnConflict{DoNothing: true}).Create(like)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// 并发下另一请求刚插入，视为已点赞
				liked = true
				return nil
			}
			n = 1
			liked = true
		}
		return tx.Model(target).Where("id = ?", targetID).
			Update("like_count", delta("like_count", n)).Error
	})
	return liked, err
}
