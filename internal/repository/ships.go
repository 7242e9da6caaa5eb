package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/atinyakov/FleetKeeper/internal/kv"
	"github.com/atinyakov/FleetKeeper/internal/models"
)

// ShipRepository stores the fleet's ships under the "ships" key.
type ShipRepository struct {
	c *collection[models.Ship]
}

// NewShipRepository loads ships from store, seeding the default fleet when
// the key is absent.
func NewShipRepository(ctx context.Context, store *kv.Adapter, opts ...Option) *ShipRepository {
	return &ShipRepository{c: newCollection(ctx, store, kv.KeyShips, seedShips, opts)}
}

// List returns all ships in stored order.
func (r *ShipRepository) List(_ context.Context) []models.Ship {
	return r.c.list()
}

// Count returns the number of ships.
func (r *ShipRepository) Count(_ context.Context) int {
	return r.c.count()
}

// GetByID returns the ship with the given id.
func (r *ShipRepository) GetByID(_ context.Context, id string) (models.Ship, bool) {
	return r.c.find(func(s models.Ship) bool { return s.ID == id })
}

// Add stores a new ship under a freshly generated id.
func (r *ShipRepository) Add(ctx context.Context, ship models.Ship) (models.Ship, error) {
	ship.ID = r.c.newID()
	r.c.appendItem(ctx, ship)
	return ship, nil
}

// Update merges patch into the ship with the given id.
func (r *ShipRepository) Update(ctx context.Context, id string, patch models.ShipPatch) (models.Ship, bool, error) {
	return r.c.update(ctx, func(s models.Ship) bool { return s.ID == id }, func(s models.Ship) (models.Ship, error) {
		if patch.Name != nil {
			s.Name = *patch.Name
		}
		if patch.IMO != nil {
			s.IMO = *patch.IMO
		}
		if patch.Flag != nil {
			s.Flag = *patch.Flag
		}
		if patch.Status != nil {
			s.Status = *patch.Status
		}
		return s, nil
	})
}

// Delete removes the ship. Its components and jobs are kept.
func (r *ShipRepository) Delete(ctx context.Context, id string) bool {
	return r.c.removeWhere(ctx, func(s models.Ship) bool { return s.ID == id }) > 0
}

// Search returns ships whose name, IMO number or flag contains term
// (case-insensitive) and, when status is set, whose status matches. The
// result is sorted by name.
func (r *ShipRepository) Search(_ context.Context, term string, status models.ShipStatus) []models.Ship {
	term = strings.ToLower(strings.TrimSpace(term))
	out := r.c.filter(func(s models.Ship) bool {
		if status != "" && s.Status != status {
			return false
		}
		if term == "" {
			return true
		}
		return strings.Contains(strings.ToLower(s.Name), term) ||
			strings.Contains(strings.ToLower(s.IMO), term) ||
			strings.Contains(strings.ToLower(s.Flag), term)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
