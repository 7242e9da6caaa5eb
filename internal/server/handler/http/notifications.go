package http

import (
	"context"
	"net/http"

	"github.com/atinyakov/FleetKeeper/internal/models"
	"github.com/atinyakov/FleetKeeper/internal/service"
	"github.com/go-chi/chi/v5"
)

// NotificationService defines the notification log operations required by
// the handlers.
type NotificationService interface {
	List(ctx context.Context, actor *models.User) (service.NotificationList, error)
	MarkAsRead(ctx context.Context, actor *models.User, id string) (service.NotificationList, error)
	MarkAllAsRead(ctx context.Context, actor *models.User) (service.NotificationList, error)
	Delete(ctx context.Context, actor *models.User, id string) (service.NotificationList, error)
	ClearAll(ctx context.Context, actor *models.User) (service.NotificationList, error)
}

// NotificationHandler serves /api/notifications. Every endpoint answers
// with the resulting log and its unread count.
type NotificationHandler struct {
	Notifications NotificationService
}

func (h *NotificationHandler) respond(w http.ResponseWriter, list service.NotificationList, err error) {
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// List returns the notification log with its unread count.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Notifications.List(r.Context(), actor(r))
	h.respond(w, list, err)
}

// MarkAsRead marks one notification as read.
func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	list, err := h.Notifications.MarkAsRead(r.Context(), actor(r), chi.URLParam(r, "id"))
	h.respond(w, list, err)
}

// MarkAllAsRead marks every notification as read.
func (h *NotificationHandler) MarkAllAsRead(w http.ResponseWriter, r *http.Request) {
	list, err := h.Notifications.MarkAllAsRead(r.Context(), actor(r))
	h.respond(w, list, err)
}

// Delete removes one notification.
func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	list, err := h.Notifications.Delete(r.Context(), actor(r), chi.URLParam(r, "id"))
	h.respond(w, list, err)
}

// ClearAll empties the notification log.
func (h *NotificationHandler) ClearAll(w http.ResponseWriter, r *http.Request) {
	list, err := h.Notifications.ClearAll(r.Context(), actor(r))
	h.respond(w, list, err)
}
