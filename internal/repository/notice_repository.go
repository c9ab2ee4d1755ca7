package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/pkg/errcode"
)

type NoticeRepository interface {
	Create(ctx context.Context, n *model.Notice) error
	GetByID(ctx context.Context, id int64) (*model.Notice, error)
	Update(ctx context.Context, id int64, title, content string) error
	SoftDelete(ctx context.Context, id int64) error
	List(ctx context.Context, plubbingID int64, offset, limit int) ([]*model.Notice, int64, error)
	ToggleLike(ctx context.Context, accountID, noticeID int64) (bool, error)
	IsLiked(ctx context.Context, accountID, noticeID int64) (bool, error)

	CreateComment(ctx context.Context, c *model.NoticeComment) error
	GetComment(ctx context.Context, id int64) (*model.NoticeComment, error)
	UpdateComment(ctx context.Context, id int64, content string) error
	SoftDeleteComment(ctx context.Context, id int64) (bool, error)
	ListComments(ctx context.Context, noticeID int64, cursor *int64, limit int) ([]*model.NoticeComment, error)
	AdjustCommentCount(ctx context.Context, id int64, n int) error
}

type noticeRepository struct{ db *gorm.DB }

func NewNoticeRepository(db *gorm.DB) NoticeRepository { return &noticeRepository{db: db} }

func (r *noticeRepository) Create(ctx context.Context, n *model.Notice) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *noticeRepository) GetByID(ctx context.Context, id int64) (*model.Notice, error) {
	var n model.Notice
	if err := r.db.WithContext(ctx).First(&n, id).Error; err != nil {
		return nil, notFound(err, errcode.NotFoundNotice)
	}
	return &n, nil
}

func (r *noticeRepository) Update(ctx context.Context, id int64, title, content string) error {
	return r.db.WithContext(ctx).Model(&model.Notice{}).Where("id = ?", id).
		Updates(map[string]any{"title": title, "content": content}).Error
}

func (r *noticeRepository) SoftDelete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&model.Notice{}).Where("id = ?", id).Update("visibility", false).Error
}

func (r *noticeRepository) List(ctx context.Context, plubbingID int64, offset, limit int) ([]*model.Notice, int64, error) {
	var res []*model.Notice
	q := r.db.WithContext(ctx).Model(&model.Notice{}).Where("plubbing_id = ? AND visibility = ?", plubbingID, true)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, total, err
}

func (r *noticeRepository) ToggleLike(ctx context.Context, accountID, noticeID int64) (bool, error) {
	return toggleLike(r.db.WithContext(ctx),
		&model.NoticeLike{AccountID: accountID, NoticeID: noticeID},
		"account_id = ? AND notice_id = ?", []any{accountID, noticeID},
		&model.Notice{}, noticeID)
}

func (r *noticeRepository) IsLiked(ctx context.Context, accountID, noticeID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.NoticeLike{}).
		Where("account_id = ? AND notice_id = ?", accountID, noticeID).Count(&cnt).Error
	return cnt > 0, err
}

func (r *noticeRepository) CreateComment(ctx context.Context, c *model.NoticeComment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *noticeRepository) GetComment(ctx context.Context, id int64) (*model.NoticeComment, error) {
	var c model.NoticeComment
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, notFound(err, errcode.NotFoundNoticeComment)
	}
	return &c, nil
}

func (r *noticeRepository) UpdateComment(ctx context.Context, id int64, content string) error {
	return r.db.WithContext(ctx).Model(&model.NoticeComment{}).Where("id = ?", id).Update("content", content).Error
}

func (r *noticeRepository) SoftDeleteComment(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.NoticeComment{}).
		Where("id = ? AND visibility = ?", id, true).
		Update("visibility", false)
	return res.RowsAffected > 0, res.Error
}

func (r *noticeRepository) ListComments(ctx context.Context, noticeID int64, cursor *int64, limit int) ([]*model.NoticeComment, error) {
	var res []*model.NoticeComment
	q := r.db.WithContext(ctx).Where("notice_id = ? AND visibility = ?", noticeID, true)
	if cursor != nil {
		q = q.Where("id > ?", *cursor)
	}
	err := q.Order("id ASC").Limit(limit).Find(&res).Error
	return res, err
}

func (r *noticeRepository) AdjustCommentCount(ctx context.Context, id int64, n int) error {
	if n == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Notice{}).Where("id = ?", id).
		Update("comment_count", delta("comment_count", n)).Error
}
