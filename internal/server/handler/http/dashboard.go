package http

import (
	"context"
	"net/http"
	"time"

	"github.com/atinyakov/FleetKeeper/internal/models"
	"github.com/atinyakov/FleetKeeper/internal/views"
)

// DashboardService defines the projections required by the handlers.
type DashboardService interface {
	Dashboard(ctx context.Context, actor *models.User) (views.Dashboard, error)
	Calendar(ctx context.Context, actor *models.User, view views.CalendarView, ref time.Time) (views.Calendar, error)
}

// DashboardHandler serves the dashboard and the calendar.
type DashboardHandler struct {
	Dashboard DashboardService
}

// Stats returns the dashboard statistics and chart series.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	d, err := h.Dashboard.Dashboard(r.Context(), actor(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// Calendar renders ?view=month|week around ?date=YYYY-MM-DD, today when
// absent.
func (h *DashboardHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	view, err := views.ParseCalendarView(q.Get("view"))
	if err != nil {
		writeError(w, models.NewValidationError("view", "View must be month or week"))
		return
	}
	var ref time.Time
	if d := q.Get("date"); d != "" {
		if ref, err = models.ParseDate(d); err != nil {
			writeError(w, models.NewValidationError("date", "Invalid date"))
			return
		}
	}
	cal, err := h.Dashboard.Calendar(r.Context(), actor(r), view, ref)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cal)
}
