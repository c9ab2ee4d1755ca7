package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/PLUB2022/plub-server/internal/model"
)

type MembershipRepository interface {
	// Join 创建或重新激活成员关系（退出后再加入）
	Join(ctx context.Context, accountID, plubbingID int64, isHost bool) error
	Find(ctx context.Context, accountID, plubbingID int64) (*model.AccountPlubbing, error)
	ListMembers(ctx context.Context, plubbingID int64) ([]*model.AccountPlubbing, error)
	ListByAccount(ctx context.Context, accountID int64, isHost *bool, status model.MembershipStatus) ([]*model.AccountPlubbing, error)
	UpdateStatus(ctx context.Context, accountID, plubbingID int64, status model.MembershipStatus) error
	UpdateAllStatus(ctx context.Context, plubbingID int64, status model.MembershipStatus) error
	HostOf(ctx context.Context, plubbingID int64) (int64, error)
}

type membershipRepository struct{ db *gorm.DB }

func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) Join(ctx context.Context, accountID, plubbingID int64, isHost bool) error {
	m := &model.AccountPlubbing{AccountID: accountID, PlubbingID: plubbingID, IsHost: isHost, Status: model.MembershipActive}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "account_id"}, {Name: "plubbing_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "is_host", "updated_at"}),
	}).Create(m).Error
}

// Find 未找到时返回 (nil, nil)
func (r *membershipRepository) Find(ctx context.Context, accountID, plubbingID int64) (*model.AccountPlubbing, error) {
	var m model.AccountPlubbing
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND plubbing_id = ?", accountID, plubbingID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *membershipRepository) ListMembers(ctx context.Context, plubbingID int64) ([]*model.AccountPlubbing, error) {
	var res []*model.AccountPlubbing
	err := r.db.WithContext(ctx).
		Where("plubbing_id = ? AND status = ?", plubbingID, model.MembershipActive).
		Order("is_host DESC, id").
		Find(&res).Error
	return res, err
}

func (r *membershipRepository) ListByAccount(ctx context.Context, accountID int64, isHost *bool, status model.MembershipStatus) ([]*model.AccountPlubbing, error) {
	var res []*model.AccountPlubbing
	q := r.db.WithContext(ctx).Where("account_id = ? AND status = ?", accountID, status)
	if isHost != nil {
		q = q.Where("is_host = ?", *isHost)
	}
	err := q.Order("id DESC").Find(&res).Error
	return res, err
}

func (r *membershipRepository) UpdateStatus(ctx context.Context, accountID, plubbingID int64, status model.MembershipStatus) error {
	return r.db.WithContext(ctx).Model(&model.AccountPlubbing{}).
		Where("account_id = ? AND plubbing_id = ?", accountID, plubbingID).
		Update("status", status).Error
}

func (r *membershipRepository) UpdateAllStatus(ctx context.Context, plubbingID int64, status model.MembershipStatus) error {
	return r.db.WithContext(ctx).Model(&model.AccountPlubbing{}).
		Where("plubbing_id = ? AND status <> ?", plubbingID, model.MembershipExit).
		Update("status", status).Error
}

// HostOf 返回组长 id，没有则为 0
func (r *membershipRepository) HostOf(ctx context.Context, plubbingID int64) (int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&model.AccountPlubbing{}).
		Where("plubbing_id = ? AND is_host = ?", plubbingID, true).
		Limit(1).
		Pluck("account_id", &ids).Error
	if err != nil || len(ids) == 0 {
		return 0, err
	}
	return ids[0], nil
}
