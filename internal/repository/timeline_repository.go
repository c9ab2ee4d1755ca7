package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/pkg/errcode"
)

type TodoTimelineRepository interface {
	// FindOrCreate 唯一键 (account, plubbing, date) 保证并发下只有一条
	FindOrCreate(ctx context.Context, accountID, plubbingID int64, date string) (*model.TodoTimeline, error)
	Find(ctx context.Context, accountID, plubbingID int64, date string) (*model.TodoTimeline, error)
	GetByID(ctx context.Context, id int64) (*model.TodoTimeline, error)
	// Lock 事务内对时间线加行锁（SELECT ... FOR UPDATE），用于串行化“计数后插入”
	Lock(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	// MonthDates 返回某月有时间线的日期（升序）
	MonthDates(ctx context.Context, accountID, plubbingID int64, yearMonth string) ([]string, error)
	// List accountID 为 0 时不按用户过滤；排序 (date DESC, id DESC)，cursor 为上一页最后一条
	List(ctx context.Context, plubbingID, accountID int64, cursor *model.TodoTimeline, limit int) ([]*model.TodoTimeline, error)
	Count(ctx context.Context, plubbingID, accountID int64) (int64, error)
	ToggleLike(ctx context.Context, accountID, timelineID int64) (bool, error)
	LikedTimelineIDs(ctx context.Context, accountID int64, ids []int64) (map[int64]bool, error)
}

type todoTimelineRepository struct{ db *gorm.DB }

func NewTodoTimelineRepository(db *gorm.DB) TodoTimelineRepository {
	return &todoTimelineRepository{db: db}
}

func (r *todoTimelineRepository) FindOrCreate(ctx context.Context, accountID, plubbingID int64, date string) (*model.TodoTimeline, error) {
	db := r.db.WithContext(ctx)
	tl := &model.TodoTimeline{AccountID: accountID, PlubbingID: plubbingID, Date: date}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(tl).Error; err != nil {
		return nil, err
	}
	var out model.TodoTimeline
	err := db.Where("account_id = ? AND plubbing_id = ? AND date = ?", accountID, plubbingID, date).First(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Find 不存在返回 (nil, nil)
func (r *todoTimelineRepository) Find(ctx context.Context, accountID, plubbingID int64, date string) (*model.TodoTimeline, error) {
	var tl model.TodoTimeline
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND plubbing_id = ? AND date = ?", accountID, plubbingID, date).
		First(&tl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tl, nil
}

func (r *todoTimelineRepository) Lock(ctx context.Context, id int64) error {
	var tl model.TodoTimeline
	err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").First(&tl, id).Error
	return notFound(err, errcode.NotFoundTodoTimeline)
}

func (r *todoTimelineRepository) GetByID(ctx context.Context, id int64) (*model.TodoTimeline, error) {
	var tl model.TodoTimeline
	if err := r.db.WithContext(ctx).First(&tl, id).Error; err != nil {
		return nil, notFound(err, errcode.NotFoundTodoTimeline)
	}
	return &tl, nil
}

func (r *todoTimelineRepository) Delete(ctx context.Context, id int64) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("timeline_id = ?", id).Delete(&model.TodoLike{}).Error; err != nil {
		return err
	}
	return db.Delete(&model.TodoTimeline{}, id).Error
}

func (r *todoTimelineRepository) MonthDates(ctx context.Context, accountID, plubbingID int64, yearMonth string) ([]string, error) {
	var dates []string
	err := r.db.WithContext(ctx).Model(&model.TodoTimeline{}).
		Where("account_id = ? AND plubbing_id = ? AND date LIKE ?", accountID, plubbingID, yearMonth+"-%").
		Order("date").
		Pluck("date", &dates).Error
	return dates, err
}

func (r *todoTimelineRepository) scope(db *gorm.DB, plubbingID, accountID int64) *gorm.DB {
	db = db.Where("plubbing_id = ?", plubbingID)
	if accountID != 0 {
		db = db.Where("account_id = ?", accountID)
	}
	return db
}

func (r *todoTimelineRepository) List(ctx context.Context, plubbingID, accountID int64, cursor *model.TodoTimeline, limit int) ([]*model.TodoTimeline, error) {
	var res []*model.TodoTimeline
	q := r.scope(r.db.WithContext(ctx), plubbingID, accountID)
	if cursor != nil {
		q = q.Where("date < ? OR (date = ? AND id < ?)", cursor.Date, cursor.Date, cursor.ID)
	}
	err := q.Order("date DESC, id DESC").Limit(limit).Find(&res).Error
	return res, err
}

func (r *todoTimelineRepository) Count(ctx context.Context, plubbingID, accountID int64) (int64, error) {
	var cnt int64
	err := r.scope(r.db.WithContext(ctx).Model(&model.TodoTimeline{}), plubbingID, accountID).Count(&cnt).Error
	return cnt, err
}

func (r *todoTimelineRepository) ToggleLike(ctx context.Context, accountID, timelineID int64) (bool, error) {
	return toggleLike(r.db.WithContext(ctx),
		&model.TodoLike{AccountID: accountID, TimelineID: timelineID},
		"account_id = ? AND timeline_id = ?", []any{accountID, timelineID},
		&model.TodoTimeline{}, timelineID)
}

func (r *todoTimelineRepository) LikedTimelineIDs(ctx context.Context, accountID int64, ids []int64) (map[int64]bool, error) {
	res := make(map[int64]bool, len(ids))
	if len(ids) == 0 {
		return res, nil
	}
	var liked []int64
	err := r.db.WithContext(ctx).Model(&model.TodoLike{}).
		Where("account_id = ? AND timeline_id IN ?", accountID, ids).
		Pluck("timeline_id", &liked).Error
	for _, id := range liked {
		res[id] = true
	}
	return res, err
}
