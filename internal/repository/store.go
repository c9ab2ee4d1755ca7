package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store 聚合全部仓储；Tx 内部以同一个事务句柄重建仓储
type Store struct {
	db *gorm.DB

	Accounts      AccountRepository
	Plubbings     PlubbingRepository
	Members       MembershipRepository
	Recruits      RecruitRepository
	Categories    CategoryRepository
	Feeds         FeedRepository
	Comments      FeedCommentRepository
	Notices       NoticeRepository
	Todos         TodoRepository
	Timelines     TodoTimelineRepository
	Reports       ReportRepository
	Notifications NotificationRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:            db,
		Accounts:      NewAccountRepository(db),
		Plubbings:     NewPlubbingRepository(db),
		Members:       NewMembershipRepository(db),
		Recruits:      NewRecruitRepository(db),
		Categories:    NewCategoryRepository(db),
		Feeds:         NewFeedRepository(db),
		Comments:      NewFeedCommentRepository(db),
		Notices:       NewNoticeRepository(db),
		Todos:         NewTodoRepository(db),
		Timelines:     NewTodoTimelineRepository(db),
		Reports:       NewReportRepository(db),
		Notifications: NewNotificationRepository(db),
	}
}

// DB 原始句柄
func (s *Store) DB() *gorm.DB { return s.db }

// Tx 在一个事务内执行 fn
func (s *Store) Tx(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
