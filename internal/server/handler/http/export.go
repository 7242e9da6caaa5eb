package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/atinyakov/FleetKeeper/internal/export"
	"github.com/atinyakov/FleetKeeper/internal/models"
)

// ExportService defines the CSV exports required by the handlers.
type ExportService interface {
	Jobs(ctx context.Context, actor *models.User, f models.JobFilter) (export.File, error)
	Components(ctx context.Context, actor *models.User, shipID, term string) (export.File, error)
}

// ExportHandler streams CSV exports as attachments.
type ExportHandler struct {
	Export ExportService
}

// Jobs downloads the visible maintenance jobs as CSV.
func (h *ExportHandler) Jobs(w http.ResponseWriter, r *http.Request) {
	file, err := h.Export.Jobs(r.Context(), actor(r), jobFilter(r))
	h.attach(w, file, err)
}

// Components downloads the components as CSV.
func (h *ExportHandler) Components(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	file, err := h.Export.Components(r.Context(), actor(r), q.Get("shipId"), q.Get("search"))
	h.attach(w, file, err)
}

func (h *ExportHandler) attach(w http.ResponseWriter, f export.File, err error) {
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv;charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(f.Content)
}
