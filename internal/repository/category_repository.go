package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/pkg/errcode"
)

type CategoryRepository interface {
	CreateCategory(ctx context.Context, c *model.Category) error
	CreateSubCategory(ctx context.Context, s *model.SubCategory) error
	ListCategories(ctx context.Context) ([]*model.Category, error)
	ListSubCategories(ctx context.Context, categoryID int64) ([]*model.SubCategory, error)
	ListSubCategoriesByIDs(ctx context.Context, ids []int64) ([]*model.SubCategory, error)
	GetCategory(ctx context.Context, id int64) (*model.Category, error)
	CountSubCategories(ctx context.Context, ids []int64) (int64, error)
	// LatestUpdate 最近一次分类变更时间，用作客户端缓存版本
	LatestUpdate(ctx context.Context) (time.Time, error)
}

type categoryRepository struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) CategoryRepository { return &categoryRepository{db: db} }

func (r *categoryRepository) CreateCategory(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepository) CreateSubCategory(ctx context.Context, s *model.SubCategory) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]*model.Category, error) {
	var res []*model.Category
	err := r.db.WithContext(ctx).Order("sequence, id").Find(&res).Error
	return res, err
}

func (r *categoryRepository) ListSubCategories(ctx context.Context, categoryID int64) ([]*model.SubCategory, error) {
	var res []*model.SubCategory
	err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Order("id").Find(&res).Error
	return res, err
}

func (r *categoryRepository) ListSubCategoriesByIDs(ctx context.Context, ids []int64) ([]*model.SubCategory, error) {
	var res []*model.SubCategory
	if len(ids) == 0 {
		return res, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&res).Error
	return res, err
}

func (r *categoryRepository) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, notFound(err, errcode.NotFoundCategory)
	}
	return &c, nil
}

func (r *categoryRepository) CountSubCategories(ctx context.Context, ids []int64) (int64, error) {
	var cnt int64
	if len(ids) == 0 {
		return 0, nil
	}
	err := r.db.WithContext(ctx).Model(&model.SubCategory{}).Where("id IN ?", ids).Count(&cnt).Error
	return cnt, err
}

func (r *categoryRepository) LatestUpdate(ctx context.Context) (time.Time, error) {
	var c model.Category
	var sub model.SubCategory
	db := r.db.WithContext(ctx)
	if err := db.Order("updated_at DESC").Limit(1).Find(&c).Error; err != nil {
		return time.Time{}, err
	}
	if err := db.Order("updated_at DESC").Limit(1).Find(&sub).Error; err != nil {
		return time.Time{}, err
	}
	latest := c.UpdatedAt
	if sub.UpdatedAt.After(latest) {
		latest = sub.UpdatedAt
	}
	return latest, nil
}
