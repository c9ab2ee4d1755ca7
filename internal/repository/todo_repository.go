package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/pkg/errcode"
)

type TodoRepository interface {
	Create(ctx context.Context, t *model.Todo) error
	GetByID(ctx context.Context, id int64) (*model.Todo, error)
	Save(ctx context.Context, t *model.Todo) error
	Delete(ctx context.Context, id int64) error
	CountByTimeline(ctx context.Context, timelineID int64) (int64, error)
	ListByTimelines(ctx context.Context, timelineIDs []int64) (map[int64][]*model.Todo, error)
}

type todoRepository struct{ db *gorm.DB }

func NewTodoRepository(db *gorm.DB) TodoRepository { return &todoRepository{db: db} }

func (r *todoRepository) Create(ctx context.Context, t *model.Todo) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *todoRepository) GetByID(ctx context.Context, id int64) (*model.Todo, error) {
	var t model.Todo
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, notFound(err, errcode.NotFoundTodo)
	}
	return &t, nil
}

func (r *todoRepository) Save(ctx context.Context, t *model.Todo) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *todoRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Todo{}, id).Error
}

func (r *todoRepository) CountByTimeline(ctx context.Context, timelineID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Todo{}).Where("timeline_id = ?", timelineID).Count(&cnt).Error
	return cnt, err
}

func (r *todoRepository) ListByTimelines(ctx context.Context, timelineIDs []int64) (map[int64][]*model.Todo, error) {
	res := make(map[int64][]*model.Todo, len(timelineIDs))
	if len(timelineIDs) == 0 {
		return res, nil
	}
	var rows []*model.Todo
	if err := r.db.WithContext(ctx).Where("timeline_id IN ?", timelineIDs).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, t := range rows {
		res[t.TimelineID] = append(res[t.TimelineID], t)
	}
	return res, nil
}
