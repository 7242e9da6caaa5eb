package http

import (
	"context"
	"net/http"

	"github.com/atinyakov/FleetKeeper/internal/models"
	"github.com/atinyakov/FleetKeeper/internal/service"
	"github.com/go-chi/chi/v5"
)

// ShipService defines the ship operations required by the handlers.
type ShipService interface {
	List(ctx context.Context, actor *models.User, term string, status models.ShipStatus) ([]models.Ship, error)
	Get(ctx context.Context, actor *models.User, id string) (models.Ship, error)
	Create(ctx context.Context, actor *models.User, in service.ShipInput) (models.Ship, error)
	Update(ctx context.Context, actor *models.User, id string, patch models.ShipPatch) (models.Ship, error)
	Delete(ctx context.Context, actor *models.User, id string) error
}

// ComponentService defines the component operations required by the
// handlers.
type ComponentService interface {
	List(ctx context.Context, actor *models.User, shipID, term string) ([]models.Component, error)
	ByShip(ctx context.Context, actor *models.User, shipID string) ([]models.Component, error)
	Get(ctx context.Context, actor *models.User, id string) (models.Component, error)
	Create(ctx context.Context, actor *models.User, in service.ComponentInput) (models.Component, error)
	Update(ctx context.Context, actor *models.User, id string, patch models.ComponentPatch) (models.Component, error)
	Delete(ctx context.Context, actor *models.User, id string) error
}

// ShipHandler serves /api/ships.
type ShipHandler struct {
	Ships      ShipService
	Components ComponentService
	Jobs       JobService
}

// List returns ships filtered by the search and status query parameters.
func (h *ShipHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ships, err := h.Ships.List(r.Context(), actor(r), q.Get("search"), models.ShipStatus(q.Get("status")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ships)
}

// Get returns the ship named in the path.
func (h *ShipHandler) Get(w http.ResponseWriter, r *http.Request) {
	ship, err := h.Ships.Get(r.Context(), actor(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ship)
}

// Create adds a ship and responds with 201.
func (h *ShipHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.ShipInput
	if !decode(w, r, &in) {
		return
	}
	ship, err := h.Ships.Create(r.Context(), actor(r), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ship)
}

// Update applies a partial ship update.
func (h *ShipHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.ShipPatch
	if !decode(w, r, &patch) {
		return
	}
	ship, err := h.Ships.Update(r.Context(), actor(r), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ship)
}

// Delete removes a ship and responds with 204.
func (h *ShipHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Ships.Delete(r.Context(), actor(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ComponentsOf lists the components installed on the ship.
func (h *ShipHandler) ComponentsOf(w http.ResponseWriter, r *http.Request) {
	comps, err := h.Components.ByShip(r.Context(), actor(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comps)
}

// JobsOf lists the visible jobs scheduled on the ship.
func (h *ShipHandler) JobsOf(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.Jobs.ByShip(r.Context(), actor(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

// ComponentHandler serves /api/components.
type ComponentHandler struct {
	Components ComponentService
}

// List returns components filtered by the shipId and search query parameters.
func (h *ComponentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	comps, err := h.Components.List(r.Context(), actor(r), q.Get("shipId"), q.Get("search"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comps)
}

// Get returns the component named in the path.
func (h *ComponentHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.Components.Get(r.Context(), actor(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Create installs a component and responds with 201.
func (h *ComponentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.ComponentInput
	if !decode(w, r, &in) {
		return
	}
	c, err := h.Components.Create(r.Context(), actor(r), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// Update applies a partial component update.
func (h *ComponentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.ComponentPatch
	if !decode(w, r, &patch) {
		return
	}
	c, err := h.Components.Update(r.Context(), actor(r), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Delete removes a component and responds with 204.
func (h *ComponentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Components.Delete(r.Context(), actor(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
