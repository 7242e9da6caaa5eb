package repository

import (
	"context"

	"github.com/atinyakov/FleetKeeper/internal/kv"
	"github.com/atinyakov/FleetKeeper/internal/models"
)

// UserRepository holds the fixed user list under the "users" key.
type UserRepository struct {
	c *collection[models.User]
}

// NewUserRepository loads users from store, seeding the three default
// accounts when the key is absent.
func NewUserRepository(ctx context.Context, store *kv.Adapter, opts ...Option) *UserRepository {
	return &UserRepository{c: newCollection(ctx, store, kv.KeyUsers, seedUsers, opts)}
}

// List returns all users with their passwords stripped.
func (r *UserRepository) List(_ context.Context) []models.User {
	users := r.c.list()
	for i := range users {
		users[i] = users[i].Public()
	}
	return users
}

// GetByID returns the user with the given id, password stripped.
func (r *UserRepository) GetByID(_ context.Context, id string) (models.User, bool) {
	u, ok := r.c.find(func(u models.User) bool { return u.ID == id })
	return u.Public(), ok
}

// FindByCredentials returns the user whose email and password both match.
func (r *UserRepository) FindByCredentials(_ context.Context, email, password string) (models.User, bool) {
	u, ok := r.c.find(func(u models.User) bool { return u.Email == email && u.Password == password })
	return u.Public(), ok
}

// Engineers returns the users with the Engineer role.
func (r *UserRepository) Engineers(_ context.Context) []models.User {
	users := r.c.filter(func(u models.User) bool { return u.Role == models.RoleEngineer })
	for i := range users {
		users[i] = users[i].Public()
	}
	return users
}
