// Package kv provides the key-value persistence layer. Every entity
// collection is stored whole under a single key; backends only ever see
// opaque byte payloads.
package kv

import (
	"context"
	"errors"
)

// Keys under which the tracker persists its collections.
const (
	KeyUsers         = "users"
	KeyShips         = "ships"
	KeyComponents    = "components"
	KeyJobs          = "jobs"
	KeyNotifications = "notifications"
	KeyCurrentUser   = "currentUser"
)

// ErrNotFound is returned by a Store when the key is absent.
var ErrNotFound = errors.New("kv: key not found")

// Store is a byte-oriented key-value backend.
type Store interface {
	// Get returns the payload stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous payload.
	Set(ctx context.Context, key string, value []byte) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
