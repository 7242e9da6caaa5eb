package kv

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/atinyakov/FleetKeeper/internal/logger"
	"go.uber.org/zap"
)

// Observer is notified about every persist attempt.
type Observer interface {
	ObservePersist(key string, ok bool)
}

// Adapter stores JSON-encoded values in a Store. It never reports errors to
// its callers: read failures degrade to "absent" and write failures are
// logged and dropped.
type Adapter struct {
	store    Store
	log      *zap.Logger
	observer Observer
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithObserver registers an observer of persist attempts.
func WithObserver(o Observer) Option {
	return func(a *Adapter) { a.observer = o }
}

// NewAdapter wraps store. A nil log discards failure reports.
func NewAdapter(store Store, log *zap.Logger, opts ...Option) *Adapter {
	a := &Adapter{store: store, log: logger.OrNop(log)}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Load decodes the value stored under key into dst. It returns false when the
// key is absent or its payload cannot be read or decoded.
func (a *Adapter) Load(ctx context.Context, key string, dst any) bool {
	raw, err := a.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			a.log.Error("error getting item from storage", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		a.log.Error("error decoding item from storage", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Has reports whether key holds a readable payload.
func (a *Adapter) Has(ctx context.Context, key string) bool {
	var raw json.RawMessage
	return a.Load(ctx, key, &raw)
}

// Save encodes value and stores it under key.
func (a *Adapter) Save(ctx context.Context, key string, value any) {
	ok := a.save(ctx, key, value)
	if a.observer != nil {
		a.observer.ObservePersist(key, ok)
	}
}

func (a *Adapter) save(ctx context.Context, key string, value any) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		a.log.Error("error encoding item for storage", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := a.store.Set(ctx, key, raw); err != nil {
		a.log.Error("error saving item to storage", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Remove deletes key.
func (a *Adapter) Remove(ctx context.Context, key string) {
	if err := a.store.Remove(ctx, key); err != nil {
		a.log.Error("error removing item from storage", zap.String("key", key), zap.Error(err))
	}
}

// GetOr returns the value stored under key, or def when it is absent or
// unreadable.
func GetOr[T any](ctx context.Context, a *Adapter, key string, def T) T {
	var v T
	if !a.Load(ctx, key, &v) {
		return def
	}
	return v
}
