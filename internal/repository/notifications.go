package repository

import (
	"context"
	"time"

	"github.com/atinyakov/FleetKeeper/internal/kv"
	"github.com/atinyakov/FleetKeeper/internal/models"
)

// NotificationRepository stores the notification log under the
// "notifications" key, newest first.
type NotificationRepository struct {
	c *collection[models.Notification]
}

// NewNotificationRepository loads the log from store, seeding sample entries
// when the key is absent.
func NewNotificationRepository(ctx context.Context, store *kv.Adapter, opts ...Option) *NotificationRepository {
	return &NotificationRepository{c: newCollection(ctx, store, kv.KeyNotifications, seedNotifications, opts)}
}

// List returns the log, newest first.
func (r *NotificationRepository) List(_ context.Context) []models.Notification {
	return r.c.list()
}

// Add prepends an unread notification stamped with the current time.
func (r *NotificationRepository) Add(ctx context.Context, typ, message string) models.Notification {
	n := models.Notification{
		ID:      r.c.newID(),
		Type:    typ,
		Message: message,
		Date:    r.c.now().UTC().Format(time.RFC3339),
	}
	r.c.prependItem(ctx, n)
	return n
}

// MarkAsRead flags the notification as read. It reports whether it exists.
func (r *NotificationRepository) MarkAsRead(ctx context.Context, id string) bool {
	_, found, _ := r.c.update(ctx, func(n models.Notification) bool { return n.ID == id }, func(n models.Notification) (models.Notification, error) {
		n.Read = true
		return n, nil
	})
	return found
}

// MarkAllAsRead flags every notification as read.
func (r *NotificationRepository) MarkAllAsRead(ctx context.Context) {
	r.c.updateAll(ctx, func(n models.Notification) (models.Notification, bool) {
		if n.Read {
			return n, false
		}
		n.Read = true
		return n, true
	})
}

// Delete removes the notification.
func (r *NotificationRepository) Delete(ctx context.Context, id string) bool {
	return r.c.removeWhere(ctx, func(n models.Notification) bool { return n.ID == id }) > 0
}

// ClearAll empties the log.
func (r *NotificationRepository) ClearAll(ctx context.Context) {
	r.c.removeWhere(ctx, func(models.Notification) bool { return true })
}

// UnreadCount returns the number of unread notifications.
func (r *NotificationRepository) UnreadCount(_ context.Context) int {
	return len(r.c.filter(func(n models.Notification) bool { return !n.Read }))
}

// PurgeReadBefore removes read notifications dated before cutoff and returns
// how many were removed. Entries with an unparseable date are kept.
func (r *NotificationRepository) PurgeReadBefore(ctx context.Context, cutoff time.Time) int {
	stale := func(n models.Notification) bool {
		if !n.Read {
			return false
		}
		t, err := time.Parse(time.RFC3339, n.Date)
		return err == nil && t.Before(cutoff)
	}
	if len(r.c.filter(stale)) == 0 {
		return 0
	}
	return r.c.removeWhere(ctx, stale)
}
