package kv

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_MissingKey(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	if _, err := fs.Get(context.Background(), KeyShips); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFileStore_SetGetRemove(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	fs, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	if err := fs.Set(ctx, KeyShips, []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "ships.json")); err != nil {
		t.Fatalf("expected ships.json on disk: %v", err)
	}
	got, err := fs.Get(ctx, KeyShips)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != `[{"id":"1"}]` {
		t.Errorf("unexpected payload %q", got)
	}

	if err := fs.Set(ctx, KeyShips, []byte(`[]`)); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	got, _ = fs.Get(ctx, KeyShips)
	if string(got) != `[]` {
		t.Errorf("expected overwritten payload, got %q", got)
	}

	if err := fs.Remove(ctx, KeyShips); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := fs.Remove(ctx, KeyShips); err != nil {
		t.Errorf("second Remove should be a no-op, got %v", err)
	}
	if _, err := fs.Get(ctx, KeyShips); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after remove, got %v", err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("expected no leftover files, got %d", len(entries))
	}
}

func TestFileStore_RejectsPathKeys(t *testing.T) {
	fs, _ := NewFileStore(t.TempDir())
	for _, key := range []string{"", "../etc", "a/b", ".hidden"} {
		if err := fs.Set(context.Background(), key, []byte("x")); err == nil {
			t.Errorf("expected error for key %q", key)
		}
	}
}
