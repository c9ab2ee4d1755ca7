package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/pkg/errcode"
)

type ReportRepository interface {
	// Create 同一举报人对同一目标只能举报一次
	Create(ctx context.Context, r *model.Report) error
	CountByTarget(ctx context.Context, target model.ReportTarget, targetID int64) (int64, error)
}

type reportRepository struct{ db *gorm.DB }

func NewReportRepository(db *gorm.DB) ReportRepository { return &reportRepository{db: db} }

func (r *reportRepository) Create(ctx context.Context, rp *model.Report) error {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(rp)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errcode.New(errcode.DuplicateReport)
	}
	return nil
}

func (r *reportRepository) CountByTarget(ctx context.Context, target model.ReportTarget, targetID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Report{}).
		Where("target_type = ? AND target_id = ?", target, targetID).
		Count(&cnt).Error
	return cnt, err
}
