package service

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/internal/readthrough"
	"github.com/PLUB2022/plub-server/internal/repository"
)

const categoryCacheTTL = 30 * time.Minute

type SubCategoryView struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CategoryID int64  `json:"categoryId"`
}

type CategoryView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Sequence int    `json:"sequence"`
}

type CategoryTree struct {
	CategoryView
	SubCategories []SubCategoryView `json:"subCategories"`
}

type CategoryVersion struct {
	LatestDate time.Time `json:"latestDate"`
}

// CategoryService 分类查询，列表走 Redis 读穿缓存
type CategoryService interface {
	ListCategories(ctx context.Context) ([]CategoryView, error)
	ListSubCategories(ctx context.Context, categoryID int64) ([]SubCategoryView, error)
	ListAll(ctx context.Context) ([]CategoryTree, error)
	Version(ctx context.Context) (*CategoryVersion, error)
	Invalidate(ctx context.Context) error
	CacheCounters() readthrough.Counters
}

type categoryService struct {
	store *repository.Store
	cache *readthrough.Cache
}

func NewCategoryService(store *repository.Store, rdb *redis.Client) CategoryService {
	return &categoryService{store: store, cache: readthrough.New(rdb, "category", categoryCacheTTL)}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]CategoryView, error) {
	return readthrough.Fetch(ctx, s.cache, "all", func(ctx context.Context) ([]CategoryView, error) {
		rows, err := s.store.Categories.ListCategories(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]CategoryView, len(rows))
		for i, c := range rows {
			out[i] = CategoryView{ID: c.ID, Name: c.Name, Icon: c.Icon, Sequence: c.Sequence}
		}
		return out, nil
	})
}

func subViews(rows []*model.SubCategory) []SubCategoryView {
	out := make([]SubCategoryView, len(rows))
	for i, sc := range rows {
		out[i] = SubCategoryView{ID: sc.ID, Name: sc.Name, CategoryID: sc.CategoryID}
	}
	return out
}

// ListSubCategories 某个大分类下的子分类
func (s *categoryService) ListSubCategories(ctx context.Context, categoryID int64) ([]SubCategoryView, error) {
	return readthrough.Fetch(ctx, s.cache, "sub:"+strconv.FormatInt(categoryID, 10), func(ctx context.Context) ([]SubCategoryView, error) {
		if _, err := s.store.Categories.GetCategory(ctx, categoryID); err != nil {
			return nil, err
		}
		rows, err := s.store.Categories.ListSubCategories(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		return subViews(rows), nil
	})
}

// ListAll 大分类及其子分类
func (s *categoryService) ListAll(ctx context.Context) ([]CategoryTree, error) {
	return readthrough.Fetch(ctx, s.cache, "tree", func(ctx context.Context) ([]CategoryTree, error) {
		cats, err := s.store.Categories.ListCategories(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]CategoryTree, len(cats))
		for i, c := range cats {
			subs, err := s.store.Categories.ListSubCategories(ctx, c.ID)
			if err != nil {
				return nil, err
			}
			out[i] = CategoryTree{
				CategoryView:  CategoryView{ID: c.ID, Name: c.Name, Icon: c.Icon, Sequence: c.Sequence},
				SubCategories: subViews(subs),
			}
		}
		return out, nil
	})
}

// Version 客户端据此判断是否需要刷新本地分类
func (s *categoryService) Version(ctx context.Context) (*CategoryVersion, error) {
	t, err := s.store.Categories.LatestUpdate(ctx)
	if err != nil {
		return nil, err
	}
	return &CategoryVersion{LatestDate: t}, nil
}

// Invalidate 分类变更后清缓存
func (s *categoryService) Invalidate(ctx context.Context) error {
	return s.cache.Invalidate(ctx)
}

func (s *categoryService) CacheCounters() readthrough.Counters { return s.cache.Counters() }
