package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/app/models/dto"
	"github.com/yigit/alumnisphere/internal/client"
)

// NotificationsService defines the interface for notification operations
type NotificationsService interface {
	List(ctx context.Context, unreadOnly bool) ([]dto.NotificationView, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context) error
}

// notificationsServiceImpl implements NotificationsService
type notificationsServiceImpl struct {
	api    *client.Client
	logger zerolog.Logger
	now    func() time.Time
}

// NewNotificationsService creates a new NotificationsService
func NewNotificationsService(api *client.Client, logger zerolog.Logger) NotificationsService {
	return &notificationsServiceImpl{
		api:    api,
		logger: logger,
		now:    defaultNow,
	}
}

// List fetches the caller's notifications, newest first.
func (s *notificationsServiceImpl) List(ctx context.Context, unreadOnly bool) ([]dto.NotificationView, error) {
	var query url.Values
	if unreadOnly {
		query = url.Values{}
		query.Set("unread_only", "true")
	}

	var list []models.Notification
	err := s.api.Get(ctx, "/notifications", query, &list)
	if err != nil {
		return nil, userFacing(err, failureMessages{
			Unauthorized: "You must be logged in to see notifications",
		})
	}
	return dto.ToNotificationViews(list, s.now()), nil
}

// UnreadCount fetches the badge counter.
func (s *notificationsServiceImpl) UnreadCount(ctx context.Context) (int, error) {
	var count models.UnreadCount
	err := s.api.Get(ctx, "/notifications/unread-count", nil, &count)
	if err != nil {
		return 0, userFacing(err, failureMessages{
			Unauthorized: "You must be logged in",
		})
	}
	return count.Count, nil
}

// MarkRead marks one notification as read.
func (s *notificationsServiceImpl) MarkRead(ctx context.Context, id int64) error {
	err := s.api.Patch(ctx, fmt.Sprintf("/notifications/%d/read", id), nil, nil)
	return userFacing(err, failureMessages{
		Unauthorized: "You must be logged in",
		NotFound:     "Notification not found",
	})
}

// MarkAllRead clears the unread badge in one call.
func (s *notificationsServiceImpl) MarkAllRead(ctx context.Context) error {
	err := s.api.Post(ctx, "/notifications/read-all", nil, nil)
	return userFacing(err, failureMessages{
		Unauthorized: "You must be logged in",
	})
}
