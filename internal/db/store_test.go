package db_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/atinyakov/FleetKeeper/internal/config"
	"github.com/atinyakov/FleetKeeper/internal/db"
	"github.com/atinyakov/FleetKeeper/internal/kv"
)

func TestOpenStore_LocalDrivers(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		driver string
		dsn    string
	}{
		{config.StoreMemory, ""},
		{config.StoreFile, filepath.Join(dir, "state")},
		{config.StoreSQLite, filepath.Join(dir, "fleet.db")},
	}

	for _, tc := range cases {
		t.Run(tc.driver, func(t *testing.T) {
			ctx := context.Background()
			store, closeFn, err := db.OpenStore(ctx, tc.driver, tc.dsn, "")
			if err != nil {
				t.Fatalf("OpenStore(%s) failed: %v", tc.driver, err)
			}
			defer closeFn()

			if err := store.Set(ctx, kv.KeyJobs, []byte(`[]`)); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			got, err := store.Get(ctx, kv.KeyJobs)
			if err != nil || string(got) != `[]` {
				t.Errorf("Get = %q, %v; want []", got, err)
			}
		})
	}
}

func TestOpenStore_Errors(t *testing.T) {
	ctx := context.Background()
	if _, _, err := db.OpenStore(ctx, "mongo", "", ""); err == nil {
		t.Error("expected error for unknown driver")
	}
	if _, _, err := db.OpenStore(ctx, config.StoreRedis, "not a url", ""); err == nil {
		t.Error("expected error for malformed redis url")
	}
}
