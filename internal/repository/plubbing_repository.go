package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/pkg/errcode"
)

// PlubbingRepository 小组仓储
type PlubbingRepository interface {
	Create(ctx context.Context, p *model.Plubbing) error
	Save(ctx context.Context, p *model.Plubbing) error
	GetByID(ctx context.Context, id int64) (*model.Plubbing, error)
	// Lock 事务内对小组加行锁，同组的置顶等计数校验因此串行
	Lock(ctx context.Context, id int64) error
	ListByIDs(ctx context.Context, ids []int64) ([]*model.Plubbing, error)
	// ListBySubCategories 按子分类查询活跃小组（按更新时间倒序）
	ListBySubCategories(ctx context.Context, subCategoryIDs []int64, offset, limit int) ([]*model.Plubbing, int64, error)
	// ListByViews 按浏览量倒序
	ListByViews(ctx context.Context, offset, limit int) ([]*model.Plubbing, int64, error)
	AddSubCategories(ctx context.Context, plubbingID int64, subCategoryIDs []int64) error
	ListSubCategoryIDs(ctx context.Context, plubbingID int64) ([]int64, error)
	AdjustMemberCount(ctx context.Context, id int64, n int) error
	IncreaseViews(ctx context.Context, id int64) error
	UpdateStatus(ctx context.Context, id int64, status model.PlubbingStatus) error
}

type plubbingRepository struct{ db *gorm.DB }

func NewPlubbingRepository(db *gorm.DB) PlubbingRepository { return &plubbingRepository{db: db} }

func (r *plubbingRepository) Create(ctx context.Context, p *model.Plubbing) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *plubbingRepository) Save(ctx context.Context, p *model.Plubbing) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *plubbingRepository) Lock(ctx context.Context, id int64) error {
	var p model.Plubbing
	err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").First(&p, id).Error
	return notFound(err, errcode.NotFoundPlubbing)
}

func (r *plubbingRepository) GetByID(ctx context.Context, id int64) (*model.Plubbing, error) {
	var p model.Plubbing
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, notFound(err, errcode.NotFoundPlubbing)
	}
	return &p, nil
}

func (r *plubbingRepository) ListByIDs(ctx context.Context, ids []int64) ([]*model.Plubbing, error) {
	var res []*model.Plubbing
	if len(ids) == 0 {
		return res, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id DESC").Find(&res).Error
	return res, err
}

func (r *plubbingRepository) activeScope(db *gorm.DB) *gorm.DB {
	return db.Where("plubbings.visibility = ? AND plubbings.status = ?", true, model.PlubbingActive)
}

func (r *plubbingRepository) ListBySubCategories(ctx context.Context, subCategoryIDs []int64, offset, limit int) ([]*model.Plubbing, int64, error) {
	var res []*model.Plubbing
	if len(subCategoryIDs) == 0 {
		return res, 0, nil
	}
	sub := r.db.Model(&model.PlubbingSubCategory{}).
		Select("plubbing_id").
		Where("sub_category_id IN ?", subCategoryIDs)
	q := r.activeScope(r.db.WithContext(ctx).Model(&model.Plubbing{})).Where("id IN (?)", sub)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("updated_at DESC, id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, total, err
}

func (r *plubbingRepository) ListByViews(ctx context.Context, offset, limit int) ([]*model.Plubbing, int64, error) {
	var res []*model.Plubbing
	q := r.activeScope(r.db.WithContext(ctx).Model(&model.Plubbing{}))
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("views DESC, id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, total, err
}

func (r *plubbingRepository) AddSubCategories(ctx context.Context, plubbingID int64, subCategoryIDs []int64) error {
	if len(subCategoryIDs) == 0 {
		return nil
	}
	rows := make([]model.PlubbingSubCategory, len(subCategoryIDs))
	for i, id := range subCategoryIDs {
		rows[i] = model.PlubbingSubCategory{PlubbingID: plubbingID, SubCategoryID: id}
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *plubbingRepository) ListSubCategoryIDs(ctx context.Context, plubbingID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&model.PlubbingSubCategory{}).
		Where("plubbing_id = ?", plubbingID).
		Order("id").
		Pluck("sub_category_id", &ids).Error
	return ids, err
}

func (r *plubbingRepository) AdjustMemberCount(ctx context.Context, id int64, n int) error {
	return r.db.WithContext(ctx).Model(&model.Plubbing{}).
		Where("id = ?", id).
		Update("cur_account_num", delta("cur_account_num", n)).Error
}

func (r *plubbingRepository) IncreaseViews(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&model.Plubbing{}).Where("id = ?", id).
		Update("views", delta("views", 1)).Error
}

func (r *plubbingRepository) UpdateStatus(ctx context.Context, id int64, status model.PlubbingStatus) error {
	return r.db.WithContext(ctx).Model(&model.Plubbing{}).Where("id = ?", id).Update("status", status).Error
}
