// Package repository keeps the tracker's entity collections in memory and
// persists each one as a whole under its key of the key-value store.
package repository

import (
	"context"
	"sync"
	"time"

	"github.com/atinyakov/FleetKeeper/internal/kv"
	"github.com/atinyakov/FleetKeeper/internal/models"
	"github.com/google/uuid"
)

// Option configures a repository.
type Option func(*options)

type options struct {
	now   func() time.Time
	newID func() string
}

// WithClock overrides the time source used for default dates and timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator overrides the generator of new record ids.
func WithIDGenerator(gen func() string) Option {
	return func(o *options) { o.newID = gen }
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now, newID: uuid.NewString}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// collection is an ordered, mutex-guarded slice of records mirrored to a
// single store key.
type collection[T any] struct {
	mu    sync.RWMutex
	key   string
	store *kv.Adapter
	items []T
	options
}

// newCollection loads key from store. When the key is absent the seed is
// written back so later loads see the same data.
func newCollection[T any](ctx context.Context, store *kv.Adapter, key string, seed func() []T, opts []Option) *collection[T] {
	c := &collection[T]{key: key, store: store, options: buildOptions(opts)}
	var loaded []T
	if store.Load(ctx, key, &loaded) {
		c.items = loaded
	} else {
		c.items = seed()
		store.Save(ctx, key, c.items)
	}
	if c.items == nil {
		c.items = []T{}
	}
	return c
}

func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[T]) filter(match func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := []T{}
	for _, it := range c.items {
		if match(it) {
			out = append(out, it)
		}
	}
	return out
}

func (c *collection[T]) find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if match(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (c *collection[T]) count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// save must be called with mu held for writing.
func (c *collection[T]) save(ctx context.Context) {
	c.store.Save(ctx, c.key, c.items)
}

func (c *collection[T]) appendItem(ctx context.Context, it T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, it)
	c.save(ctx)
}

func (c *collection[T]) prependItem(ctx context.Context, it T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T{it}, c.items...)
	c.save(ctx)
}

// update applies fn to the first record matching. fn may reject the change by
// returning an error, in which case the collection is left untouched.
func (c *collection[T]) update(ctx context.Context, match func(T) bool, fn func(T) (T, error)) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if !match(it) {
			continue
		}
		next, err := fn(it)
		if err != nil {
			return it, true, err
		}
		c.items[i] = next
		c.save(ctx)
		return next, true, nil
	}
	var zero T
	return zero, false, nil
}

// updateAll applies fn to every record and persists when any record changed.
func (c *collection[T]) updateAll(ctx context.Context, fn func(T) (T, bool)) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	changed := 0
	for i, it := range c.items {
		if next, ok := fn(it); ok {
			c.items[i] = next
			changed++
		}
	}
	if changed > 0 {
		c.save(ctx)
	}
	return changed
}

// removeWhere deletes every matching record and returns how many were removed.
// Nothing is persisted when no record matched.
func (c *collection[T]) removeWhere(ctx context.Context, match func(T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := make([]T, 0, len(c.items))
	for _, it := range c.items {
		if !match(it) {
			kept = append(kept, it)
		}
	}
	removed := len(c.items) - len(kept)
	if removed == 0 {
		return 0
	}
	c.items = kept
	c.save(ctx)
	return removed
}

func (c *collection[T]) today() string {
	return models.FormatDate(c.now())
}
