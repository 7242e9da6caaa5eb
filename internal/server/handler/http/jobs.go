package http

import (
	"context"
	"net/http"

	"github.com/atinyakov/FleetKeeper/internal/models"
	"github.com/atinyakov/FleetKeeper/internal/service"
	"github.com/go-chi/chi/v5"
)

// JobService defines the job workflow required by the handlers.
type JobService interface {
	List(ctx context.Context, actor *models.User, q service.JobQuery) ([]models.Job, error)
	ByShip(ctx context.Context, actor *models.User, shipID string) ([]models.Job, error)
	Get(ctx context.Context, actor *models.User, id string) (models.Job, error)
	Create(ctx context.Context, actor *models.User, in service.JobInput) (models.Job, error)
	Update(ctx context.Context, actor *models.User, id string, patch models.JobPatch) (models.Job, error)
	UpdateStatus(ctx context.Context, actor *models.User, id string, status models.JobStatus) (models.Job, error)
	Complete(ctx context.Context, actor *models.User, id string) (models.Job, error)
	Delete(ctx context.Context, actor *models.User, id string) error
}

// JobHandler serves /api/jobs.
type JobHandler struct {
	Jobs JobService
}

// StatusRequest is the JSON payload of POST /api/jobs/{id}/status.
type StatusRequest struct {
	Status models.JobStatus `json:"status"`
}

// jobFilter reads the job filters shared by the listing and the export.
func jobFilter(r *http.Request) models.JobFilter {
	q := r.URL.Query()
	return models.JobFilter{
		ShipID:      q.Get("shipId"),
		ComponentID: q.Get("componentId"),
		Status:      models.JobStatus(q.Get("status")),
		Priority:    models.Priority(q.Get("priority")),
		Search:      q.Get("search"),
		EngineerID:  q.Get("engineerId"),
	}
}

// List returns the jobs visible to the caller, narrowed by the query filters.
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	q := service.JobQuery{
		JobFilter: jobFilter(r),
		From:      r.URL.Query().Get("from"),
		To:        r.URL.Query().Get("to"),
	}
	jobs, err := h.Jobs.List(r.Context(), actor(r), q)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

// Get returns the job named in the path.
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	job, err := h.Jobs.Get(r.Context(), actor(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// Create schedules a job and responds with 201.
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.JobInput
	if !decode(w, r, &in) {
		return
	}
	job, err := h.Jobs.Create(r.Context(), actor(r), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, job)
}

// Update applies a partial job update.
func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.JobPatch
	if !decode(w, r, &patch) {
		return
	}
	job, err := h.Jobs.Update(r.Context(), actor(r), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// UpdateStatus moves a job through its lifecycle.
func (h *JobHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if !decode(w, r, &req) {
		return
	}
	job, err := h.Jobs.UpdateStatus(r.Context(), actor(r), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// Complete marks the job completed as of today.
func (h *JobHandler) Complete(w http.ResponseWriter, r *http.Request) {
	job, err := h.Jobs.Complete(r.Context(), actor(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// Delete removes a job and responds with 204.
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Jobs.Delete(r.Context(), actor(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
