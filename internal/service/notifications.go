package service

import (
	"context"
	"fmt"
	"time"

	"github.com/atinyakov/FleetKeeper/internal/logger"
	"github.com/atinyakov/FleetKeeper/internal/models"
	"go.uber.org/zap"
)

// NotificationRepository defines the notification log operations.
type NotificationRepository interface {
	List(ctx context.Context) []models.Notification
	Add(ctx context.Context, typ, message string) models.Notification
	MarkAsRead(ctx context.Context, id string) bool
	MarkAllAsRead(ctx context.Context)
	Delete(ctx context.Context, id string) bool
	ClearAll(ctx context.Context)
	UnreadCount(ctx context.Context) int
	PurgeReadBefore(ctx context.Context, cutoff time.Time) int
}

// Notifier receives job lifecycle events.
type Notifier interface {
	NotifyJobCreated(ctx context.Context, jobType, component, ship string) models.Notification
	NotifyJobUpdated(ctx context.Context, jobType, component, ship string) models.Notification
	NotifyJobCompleted(ctx context.Context, jobType, component, ship string) models.Notification
}

// NotificationList is the log together with its unread count.
type NotificationList struct {
	Items  []models.Notification `json:"notifications"`
	Unread int                   `json:"unreadCount"`
}

// NotificationService exposes the notification log and turns job events
// into log entries.
type NotificationService struct {
	repo NotificationRepository
	log  *zap.Logger
}

// NewNotificationService constructs a NotificationService.
func NewNotificationService(repo NotificationRepository, log *zap.Logger) *NotificationService {
	return &NotificationService{repo: repo, log: logger.OrNop(log)}
}

// List returns the log, newest first.
func (s *NotificationService) List(ctx context.Context, actor *models.User) (NotificationList, error) {
	if actor == nil {
		return NotificationList{}, models.ErrUnauthorized
	}
	return s.snapshot(ctx), nil
}

func (s *NotificationService) snapshot(ctx context.Context) NotificationList {
	return NotificationList{Items: s.repo.List(ctx), Unread: s.repo.UnreadCount(ctx)}
}

// Add appends an unread entry to the log.
func (s *NotificationService) Add(ctx context.Context, typ, message string) models.Notification {
	n := s.repo.Add(ctx, typ, message)
	s.log.Debug("notification added", zap.String("id", n.ID), zap.String("type", typ))
	return n
}

// MarkAsRead flags one entry as read.
func (s *NotificationService) MarkAsRead(ctx context.Context, actor *models.User, id string) (NotificationList, error) {
	if actor == nil {
		return NotificationList{}, models.ErrUnauthorized
	}
	if !s.repo.MarkAsRead(ctx, id) {
		return NotificationList{}, &models.NotFoundError{Entity: "notification", ID: id}
	}
	return s.snapshot(ctx), nil
}

// MarkAllAsRead flags every entry as read.
func (s *NotificationService) MarkAllAsRead(ctx context.Context, actor *models.User) (NotificationList, error) {
	if actor == nil {
		return NotificationList{}, models.ErrUnauthorized
	}
	s.repo.MarkAllAsRead(ctx)
	return s.snapshot(ctx), nil
}

// Delete removes one entry.
func (s *NotificationService) Delete(ctx context.Context, actor *models.User, id string) (NotificationList, error) {
	if actor == nil {
		return NotificationList{}, models.ErrUnauthorized
	}
	if !s.repo.Delete(ctx, id) {
		return NotificationList{}, &models.NotFoundError{Entity: "notification", ID: id}
	}
	return s.snapshot(ctx), nil
}

// ClearAll empties the log.
func (s *NotificationService) ClearAll(ctx context.Context, actor *models.User) (NotificationList, error) {
	if actor == nil {
		return NotificationList{}, models.ErrUnauthorized
	}
	s.repo.ClearAll(ctx)
	return s.snapshot(ctx), nil
}

func (s *NotificationService) NotifyJobCreated(ctx context.Context, jobType, component, ship string) models.Notification {
	return s.Add(ctx, models.NotificationJobCreated,
		fmt.Sprintf("New %s job scheduled for %s on %s", jobType, component, ship))
}

func (s *NotificationService) NotifyJobUpdated(ctx context.Context, jobType, component, ship string) models.Notification {
	return s.Add(ctx, models.NotificationJobUpdated,
		fmt.Sprintf("%s job for %s on %s has been updated", jobType, component, ship))
}

func (s *NotificationService) NotifyJobCompleted(ctx context.Context, jobType, component, ship string) models.Notification {
	return s.Add(ctx, models.NotificationJobCompleted,
		fmt.Sprintf("%s job for %s on %s has been completed", jobType, component, ship))
}
