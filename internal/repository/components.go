package repository

import (
	"context"
	"strings"

	"github.com/atinyakov/FleetKeeper/internal/kv"
	"github.com/atinyakov/FleetKeeper/internal/models"
)

// ComponentRepository stores ship components under the "components" key.
type ComponentRepository struct {
	c *collection[models.Component]
}

// NewComponentRepository loads components from store, seeding the default
// inventory when the key is absent.
func NewComponentRepository(ctx context.Context, store *kv.Adapter, opts ...Option) *ComponentRepository {
	return &ComponentRepository{c: newCollection(ctx, store, kv.KeyComponents, seedComponents, opts)}
}

// List returns all components in stored order.
func (r *ComponentRepository) List(_ context.Context) []models.Component {
	return r.c.list()
}

// Count returns the number of components.
func (r *ComponentRepository) Count(_ context.Context) int {
	return r.c.count()
}

// GetByID returns the component with the given id.
func (r *ComponentRepository) GetByID(_ context.Context, id string) (models.Component, bool) {
	return r.c.find(func(c models.Component) bool { return c.ID == id })
}

// Add stores a new component. Missing dates default to today; present dates
// are normalized to YYYY-MM-DD.
func (r *ComponentRepository) Add(ctx context.Context, comp models.Component) (models.Component, error) {
	var err error
	if comp.InstallDate, err = normalizeOrToday(comp.InstallDate, r.c.today(), "installDate"); err != nil {
		return models.Component{}, err
	}
	if comp.LastMaintenanceDate, err = normalizeOrToday(comp.LastMaintenanceDate, r.c.today(), "lastMaintenanceDate"); err != nil {
		return models.Component{}, err
	}
	comp.ID = r.c.newID()
	r.c.appendItem(ctx, comp)
	return comp, nil
}

// Update merges patch into the component with the given id.
func (r *ComponentRepository) Update(ctx context.Context, id string, patch models.ComponentPatch) (models.Component, bool, error) {
	return r.c.update(ctx, func(c models.Component) bool { return c.ID == id }, func(c models.Component) (models.Component, error) {
		if patch.ShipID != nil {
			c.ShipID = *patch.ShipID
		}
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.SerialNumber != nil {
			c.SerialNumber = *patch.SerialNumber
		}
		if patch.Description != nil {
			c.Description = *patch.Description
		}
		if patch.InstallDate != nil {
			d, err := normalizeField(*patch.InstallDate, "installDate")
			if err != nil {
				return c, err
			}
			c.InstallDate = d
		}
		if patch.LastMaintenanceDate != nil {
			d, err := normalizeField(*patch.LastMaintenanceDate, "lastMaintenanceDate")
			if err != nil {
				return c, err
			}
			c.LastMaintenanceDate = d
		}
		return c, nil
	})
}

// Delete removes the component. Jobs referencing it are kept.
func (r *ComponentRepository) Delete(ctx context.Context, id string) bool {
	return r.c.removeWhere(ctx, func(c models.Component) bool { return c.ID == id }) > 0
}

// ByShip returns the components installed on the given ship.
func (r *ComponentRepository) ByShip(_ context.Context, shipID string) []models.Component {
	return r.c.filter(func(c models.Component) bool { return c.ShipID == shipID })
}

// Search returns components of shipID (any ship when empty) whose name or
// serial number contains term, case-insensitively.
func (r *ComponentRepository) Search(_ context.Context, shipID, term string) []models.Component {
	term = strings.ToLower(strings.TrimSpace(term))
	return r.c.filter(func(c models.Component) bool {
		if shipID != "" && c.ShipID != shipID {
			return false
		}
		return term == "" ||
			strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(strings.ToLower(c.SerialNumber), term)
	})
}

func normalizeField(value, field string) (string, error) {
	d, err := models.NormalizeDate(value)
	if err != nil {
		return "", models.NewValidationError(field, "Invalid date")
	}
	return d, nil
}

func normalizeOrToday(value, today, field string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return today, nil
	}
	return normalizeField(value, field)
}
