package service

import (
	"context"

	"github.com/atinyakov/FleetKeeper/internal/access"
	"github.com/atinyakov/FleetKeeper/internal/models"
)

// ShipRepository defines the ship persistence used by the services.
type ShipRepository interface {
	List(ctx context.Context) []models.Ship
	GetByID(ctx context.Context, id string) (models.Ship, bool)
	Add(ctx context.Context, ship models.Ship) (models.Ship, error)
	Update(ctx context.Context, id string, patch models.ShipPatch) (models.Ship, bool, error)
	Delete(ctx context.Context, id string) bool
	Search(ctx context.Context, term string, status models.ShipStatus) []models.Ship
}

// ShipService manages the fleet.
type ShipService struct {
	ships ShipRepository
}

// NewShipService constructs a ShipService.
func NewShipService(ships ShipRepository) *ShipService {
	return &ShipService{ships: ships}
}

// List returns ships matching term and status, sorted by name.
func (s *ShipService) List(ctx context.Context, actor *models.User, term string, status models.ShipStatus) ([]models.Ship, error) {
	if actor == nil {
		return nil, models.ErrUnauthorized
	}
	return s.ships.Search(ctx, term, status), nil
}

// Get returns a single ship.
func (s *ShipService) Get(ctx context.Context, actor *models.User, id string) (models.Ship, error) {
	if actor == nil {
		return models.Ship{}, models.ErrUnauthorized
	}
	ship, ok := s.ships.GetByID(ctx, id)
	if !ok {
		return models.Ship{}, &models.NotFoundError{Entity: "ship", ID: id}
	}
	return ship, nil
}

// Create validates in and adds a ship.
func (s *ShipService) Create(ctx context.Context, actor *models.User, in ShipInput) (models.Ship, error) {
	if err := authorize(actor, access.CanEditShip); err != nil {
		return models.Ship{}, err
	}
	if err := in.Validate(); err != nil {
		return models.Ship{}, err
	}
	return s.ships.Add(ctx, in.ship())
}

// Update applies patch to the ship.
func (s *ShipService) Update(ctx context.Context, actor *models.User, id string, patch models.ShipPatch) (models.Ship, error) {
	if err := authorize(actor, access.CanEditShip); err != nil {
		return models.Ship{}, err
	}
	if err := validateShipPatch(patch); err != nil {
		return models.Ship{}, err
	}
	ship, found, err := s.ships.Update(ctx, id, patch)
	if err != nil {
		return models.Ship{}, err
	}
	if !found {
		return models.Ship{}, &models.NotFoundError{Entity: "ship", ID: id}
	}
	return ship, nil
}

// Delete removes the ship. Components and jobs on it are left in place.
func (s *ShipService) Delete(ctx context.Context, actor *models.User, id string) error {
	if err := authorize(actor, access.CanDeleteShip); err != nil {
		return err
	}
	if !s.ships.Delete(ctx, id) {
		return &models.NotFoundError{Entity: "ship", ID: id}
	}
	return nil
}

// authorize distinguishes a missing session from a missing permission.
func authorize(actor *models.User, allowed func(*models.User) bool) error {
	if actor == nil {
		return models.ErrUnauthorized
	}
	if !allowed(actor) {
		return models.ErrForbidden
	}
	return nil
}
