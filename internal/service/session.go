package service

import (
	"context"
	"sync"

	"github.com/atinyakov/FleetKeeper/internal/kv"
	"github.com/atinyakov/FleetKeeper/internal/models"
)

// Session tracks the logged-in user of a single-user front end and mirrors
// it to the "currentUser" key so it survives restarts.
type Session struct {
	mu      sync.RWMutex
	auth    *AuthService
	store   *kv.Adapter
	current *models.User
}

// NewSession restores the session user persisted in store, if any.
func NewSession(ctx context.Context, auth *AuthService, store *kv.Adapter) *Session {
	s := &Session{auth: auth, store: store}
	var u models.User
	if store.Load(ctx, kv.KeyCurrentUser, &u) && u.ID != "" {
		u = u.Public()
		s.current = &u
	}
	return s
}

// Login authenticates and makes the user current.
func (s *Session) Login(ctx context.Context, email, password string) (models.User, error) {
	u, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return models.User{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &u
	s.store.Save(ctx, kv.KeyCurrentUser, u)
	return u, nil
}

// Logout clears the current user.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.store.Remove(ctx, kv.KeyCurrentUser)
}

// Current returns a copy of the current user, or nil when logged out.
func (s *Session) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// HasRole reports whether the current user holds one of roles.
func (s *Session) HasRole(roles ...models.Role) bool {
	return HasRole(s.Current(), roles...)
}

// HasRole reports whether u holds one of roles. A nil user has none.
func HasRole(u *models.User, roles ...models.Role) bool {
	if u == nil {
		return false
	}
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}
