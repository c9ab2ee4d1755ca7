package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/pkg/errcode"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) error
	List(ctx context.Context, accountID int64, cursor *int64, limit int) ([]*model.Notification, error)
	Count(ctx context.Context, accountID int64) (int64, error)
	// MarkRead 只能标记自己的通知
	MarkRead(ctx context.Context, accountID, id int64) error
}

type notificationRepository struct{ db *gorm.DB }

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *model.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificationRepository) List(ctx context.Context, accountID int64, cursor *int64, limit int) ([]*model.Notification, error) {
	var res []*model.Notification
	q := r.db.WithContext(ctx).Where("account_id = ?", accountID)
	if cursor != nil {
		q = q.Where("id < ?", *cursor)
	}
	err := q.Order("id DESC").Limit(limit).Find(&res).Error
	return res, err
}

func (r *notificationRepository) Count(ctx context.Context, accountID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Notification{}).Where("account_id = ?", accountID).Count(&cnt).Error
	return cnt, err
}

func (r *notificationRepository) MarkRead(ctx context.Context, accountID, id int64) error {
	res := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ? AND account_id = ?", id, accountID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errcode.New(errcode.NotFoundNotification)
	}
	return nil
}
