package service

import (
	"context"
	"time"

	"github.com/PLUB2022/plub-server/internal/model"
	"github.com/PLUB2022/plub-server/internal/repository"
	"github.com/PLUB2022/plub-server/pkg/pagination"
)

type NotificationView struct {
	NotificationID int64     `json:"notificationId"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	IsRead         bool      `json:"isRead"`
	CreatedAt      time.Time `json:"createdAt"`
}

type NotificationService interface {
	List(ctx context.Context, actorID int64, req pagination.Request) (pagination.Page[NotificationView], error)
	MarkRead(ctx context.Context, actorID, notificationID int64) error
}

type notificationService struct {
	store *repository.Store
}

func NewNotificationService(store *repository.Store) NotificationService {
	return &notificationService{store: store}
}

// List 我的通知，新的在前
func (s *notificationService) List(ctx context.Context, actorID int64, req pagination.Request) (pagination.Page[NotificationView], error) {
	req = req.Normalize()
	rows, err := s.store.Notifications.List(ctx, actorID, req.CursorID, req.Size+1)
	if err != nil {
		return pagination.Page[NotificationView]{}, err
	}
	total, err := s.store.Notifications.Count(ctx, actorID)
	if err != nil {
		return pagination.Page[NotificationView]{}, err
	}
	return pagination.Map(pagination.OfCursor(rows, req.Size, total), func(n *model.Notification) NotificationView {
		return NotificationView{NotificationID: n.ID, Title: n.Title, Body: n.Body, IsRead: n.IsRead, CreatedAt: n.CreatedAt}
	}), nil
}

func (s *notificationService) MarkRead(ctx context.Context, actorID, notificationID int64) error {
	return s.store.Notifications.MarkRead(ctx, actorID, notificationID)
}
