package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/pkg/errcode"
)

type FeedCommentRepository interface {
	// Create 根评论的 comment_group_id 回填为自身 id
	Create(ctx context.Context, c *model.FeedComment) error
	GetByID(ctx context.Context, id int64) (*model.FeedComment, error)
	UpdateContent(ctx context.Context, id int64, content string) error
	// SoftDelete 仅对仍可见的评论生效，返回是否真的删除
	SoftDelete(ctx context.Context, id int64) (bool, error)
	VisibleChildIDs(ctx context.Context, parentID int64) ([]int64, error)
	// List 按 (comment_group_id DESC, id ASC) 排序；cursor 为上一页最后一条
	List(ctx context.Context, feedID int64, cursor *model.FeedComment, limit int) ([]*model.FeedComment, error)
	CountVisible(ctx context.Context, feedID int64) (int64, error)
}

type feedCommentRepository struct{ db *gorm.DB }

func NewFeedCommentRepository(db *gorm.DB) FeedCommentRepository {
	return &feedCommentRepository{db: db}
}

func (r *feedCommentRepository) Create(ctx context.Context, c *model.FeedComment) error {
	db := r.db.WithContext(ctx)
	if err := db.Create(c).Error; err != nil {
		return err
	}
	if c.ParentID != nil {
		return nil
	}
	c.CommentGroupID = c.ID
	return db.Model(c).Update("comment_group_id", c.ID).Error
}

func (r *feedCommentRepository) GetByID(ctx context.Context, id int64) (*model.FeedComment, error) {
	var c model.FeedComment
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, notFound(err, errcode.NotFoundComment)
	}
	return &c, nil
}

func (r *feedCommentRepository) UpdateContent(ctx context.Context, id int64, content string) error {
	return r.db.WithContext(ctx).Model(&model.FeedComment{}).Where("id = ?", id).Update("content", content).Error
}

func (r *feedCommentRepository) SoftDelete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.FeedComment{}).
		Where("id = ? AND visibility = ?", id, true).
		Update("visibility", false)
	return res.RowsAffected > 0, res.Error
}

func (r *feedCommentRepository) VisibleChildIDs(ctx context.Context, parentID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&model.FeedComment{}).
		Where("parent_id = ? AND visibility = ?", parentID, true).
		Order("id").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *feedCommentRepository) List(ctx context.Context, feedID int64, cursor *model.FeedComment, limit int) ([]*model.FeedComment, error) {
	var res []*model.FeedComment
	q := r.db.WithContext(ctx).Where("feed_id = ? AND visibility = ?", feedID, true)
	if cursor != nil {
		q = q.Where("comment_group_id < ? OR (comment_group_id = ? AND id > ?)",
			cursor.CommentGroupID, cursor.CommentGroupID, cursor.ID)
	}
	err := q.Order("comment_group_id DESC, id ASC").Limit(limit).Find(&res).Error
	return res, err
}

func (r *feedCommentRepository) CountVisible(ctx context.Context, feedID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.FeedComment{}).
		Where("feed_id = ? AND visibility = ?", feedID, true).
		Count(&cnt).Error
	return cnt, err
}
