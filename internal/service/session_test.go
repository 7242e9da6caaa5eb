package service

import (
	"context"
	"testing"
	"time"

	"github.com/atinyakov/FleetKeeper/internal/kv"
	"github.com/atinyakov/FleetKeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_LoginPersists(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	auth := NewAuthService(f.users, "secret", time.Hour)

	s := NewSession(ctx, auth, f.store)
	assert.Nil(t, s.Current())

	u, err := s.Login(ctx, "inspector@test.in", "inspect123")
	require.NoError(t, err)
	assert.Empty(t, u.Password)
	assert.True(t, s.HasRole(models.RoleAdmin, models.RoleInspector))
	assert.False(t, s.HasRole(models.RoleEngineer))

	restored := NewSession(ctx, auth, f.store)
	require.NotNil(t, restored.Current())
	assert.Equal(t, "2", restored.Current().ID)

	var stored models.User
	require.True(t, f.store.Load(ctx, kv.KeyCurrentUser, &stored))
	assert.Empty(t, stored.Password)

	restored.Logout(ctx)
	assert.Nil(t, restored.Current())
	assert.False(t, f.store.Has(ctx, kv.KeyCurrentUser))
}

func TestSession_FailedLoginKeepsState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := NewSession(ctx, NewAuthService(f.users, "secret", time.Hour), f.store)

	_, err := s.Login(ctx, "admin@test.in", "nope")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	assert.Nil(t, s.Current())
	assert.False(t, HasRole(nil, models.RoleAdmin))
}
