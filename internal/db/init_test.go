package db_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atinyakov/FleetKeeper/internal/db"
	"github.com/atinyakov/FleetKeeper/internal/kv"
)

func TestInitPostgres_ErrorPaths(t *testing.T) {
	cases := []struct {
		name       string
		dsn        string
		wantSubstr string
	}{
		{"invalid DSN", "some=random", "ping postgres"},
		{"empty DSN", "", "ping postgres"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := db.InitPostgres(tc.dsn)
			if err == nil {
				t.Fatalf("InitPostgres(%q) did not return error", tc.dsn)
			}
			if !strings.Contains(err.Error(), tc.wantSubstr) {
				t.Errorf("InitPostgres(%q) error = %q; want substring %q", tc.dsn, err.Error(), tc.wantSubstr)
			}
		})
	}
}

func TestInitSQLite_RoundTrip(t *testing.T) {
	conn, err := db.InitSQLite(filepath.Join(t.TempDir(), "fleet.db"))
	if err != nil {
		t.Fatalf("InitSQLite failed: %v", err)
	}
	defer conn.Close()

	ctx := context.Background()
	store := kv.NewSQLiteStore(conn)

	if _, err := store.Get(ctx, kv.KeyShips); err != kv.ErrNotFound {
		t.Fatalf("expected ErrNotFound on empty table, got %v", err)
	}
	if err := store.Set(ctx, kv.KeyShips, []byte(`["a"]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set(ctx, kv.KeyShips, []byte(`["b"]`)); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	got, err := store.Get(ctx, kv.KeyShips)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != `["b"]` {
		t.Errorf("expected upserted payload, got %q", got)
	}
}

func TestInitSQLite_Memory(t *testing.T) {
	conn, err := db.InitSQLite(":memory:")
	if err != nil {
		t.Fatalf("InitSQLite failed: %v", err)
	}
	defer conn.Close()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM kv_state`).Scan(&n); err != nil {
		t.Fatalf("kv_state missing: %v", err)
	}
	if n != 0 {
		t.Errorf("expected empty table, got %d rows", n)
	}
}
