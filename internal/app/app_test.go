package app

import (
	"context"
	"testing"
	"time"

	"github.com/atinyakov/FleetKeeper/internal/config"
	"github.com/atinyakov/FleetKeeper/internal/export"
	"github.com/atinyakov/FleetKeeper/internal/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SeedsEmptyStore(t *testing.T) {
	ctx := context.Background()
	store := kv.NewAdapter(kv.NewMemoryStore(), nil)
	a := New(ctx, store, Options{JWTSecret: "s"})

	assert.Equal(t, 6, a.Ships.Count(ctx))
	for _, key := range []string{kv.KeyUsers, kv.KeyShips, kv.KeyComponents, kv.KeyJobs, kv.KeyNotifications} {
		assert.True(t, store.Has(ctx, key), key)
	}

	u, err := a.Auth.Login(ctx, "admin@test.in", "admin123")
	require.NoError(t, err)
	token, err := a.Auth.IssueToken(u)
	require.NoError(t, err)
	got, err := a.Auth.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestNew_ReloadsExistingState(t *testing.T) {
	ctx := context.Background()
	store := kv.NewAdapter(kv.NewMemoryStore(), nil)
	first := New(ctx, store, Options{})
	require.True(t, first.Ships.Delete(ctx, "1"))

	second := New(ctx, store, Options{Clock: func() time.Time { return time.Now() }})
	assert.Equal(t, 5, second.Ships.Count(ctx))
}

func TestOpenArchive(t *testing.T) {
	ctx := context.Background()

	a, err := OpenArchive(ctx, &config.Options{})
	require.NoError(t, err)
	assert.Nil(t, a)

	a, err = OpenArchive(ctx, &config.Options{ExportDriver: config.ExportFS, ExportDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, export.FSArchive{}, a)
}
