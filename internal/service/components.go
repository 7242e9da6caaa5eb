package service

import (
	"context"

	"github.com/atinyakov/FleetKeeper/internal/access"
	"github.com/atinyakov/FleetKeeper/internal/models"
)

// ComponentRepository defines the component persistence used by the
// services.
type ComponentRepository interface {
	List(ctx context.Context) []models.Component
	GetByID(ctx context.Context, id string) (models.Component, bool)
	Add(ctx context.Context, comp models.Component) (models.Component, error)
	Update(ctx context.Context, id string, patch models.ComponentPatch) (models.Component, bool, error)
	Delete(ctx context.Context, id string) bool
	ByShip(ctx context.Context, shipID string) []models.Component
	Search(ctx context.Context, shipID, term string) []models.Component
}

// ComponentService manages ship components.
type ComponentService struct {
	components ComponentRepository
	ships      ShipRepository
}

// NewComponentService constructs a ComponentService.
func NewComponentService(components ComponentRepository, ships ShipRepository) *ComponentService {
	return &ComponentService{components: components, ships: ships}
}

// List returns components of shipID (all ships when empty) matching term.
func (s *ComponentService) List(ctx context.Context, actor *models.User, shipID, term string) ([]models.Component, error) {
	if actor == nil {
		return nil, models.ErrUnauthorized
	}
	return s.components.Search(ctx, shipID, term), nil
}

// ByShip returns the components installed on a ship.
func (s *ComponentService) ByShip(ctx context.Context, actor *models.User, shipID string) ([]models.Component, error) {
	if actor == nil {
		return nil, models.ErrUnauthorized
	}
	if _, ok := s.ships.GetByID(ctx, shipID); !ok {
		return nil, &models.NotFoundError{Entity: "ship", ID: shipID}
	}
	return s.components.ByShip(ctx, shipID), nil
}

// Get returns a single component.
func (s *ComponentService) Get(ctx context.Context, actor *models.User, id string) (models.Component, error) {
	if actor == nil {
		return models.Component{}, models.ErrUnauthorized
	}
	c, ok := s.components.GetByID(ctx, id)
	if !ok {
		return models.Component{}, &models.NotFoundError{Entity: "component", ID: id}
	}
	return c, nil
}

// Create validates in and installs a component on its ship.
func (s *ComponentService) Create(ctx context.Context, actor *models.User, in ComponentInput) (models.Component, error) {
	if err := authorize(actor, access.CanEditComponent); err != nil {
		return models.Component{}, err
	}
	if err := in.Validate(); err != nil {
		return models.Component{}, err
	}
	if _, ok := s.ships.GetByID(ctx, in.ShipID); !ok {
		return models.Component{}, models.NewValidationError("shipId", "Ship is required")
	}
	return s.components.Add(ctx, in.component())
}

// Update applies patch to the component.
func (s *ComponentService) Update(ctx context.Context, actor *models.User, id string, patch models.ComponentPatch) (models.Component, error) {
	if err := authorize(actor, access.CanEditComponent); err != nil {
		return models.Component{}, err
	}
	if err := validateComponentPatch(patch); err != nil {
		return models.Component{}, err
	}
	if patch.ShipID != nil {
		if _, ok := s.ships.GetByID(ctx, *patch.ShipID); !ok {
			return models.Component{}, models.NewValidationError("shipId", "Ship is required")
		}
	}
	c, found, err := s.components.Update(ctx, id, patch)
	if err != nil {
		return models.Component{}, err
	}
	if !found {
		return models.Component{}, &models.NotFoundError{Entity: "component", ID: id}
	}
	return c, nil
}

// Delete removes the component. Jobs against it are left in place.
func (s *ComponentService) Delete(ctx context.Context, actor *models.User, id string) error {
	if err := authorize(actor, access.CanDeleteComponent); err != nil {
		return err
	}
	if !s.components.Delete(ctx, id) {
		return &models.NotFoundError{Entity: "component", ID: id}
	}
	return nil
}
