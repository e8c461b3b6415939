// Package cache stores computed layout documents between runs.
//
// Entries are opaque byte slices addressed by string keys built with a
// [Keyer]. Three backends are provided:
//   - [FileCache] for the CLI, one JSON file per entry under a directory
//   - [RedisCache] for the HTTP server, shared between replicas
//   - [NullCache] when caching is disabled
//
// A cache failure never fails a layout: callers treat errors as misses.
package cache

import (
	"context"
	"time"
)

// TTLLayout is how long a computed layout document stays cached.
const TTLLayout = 7 * 24 * time.Hour

// Cache is a key/value store with per-entry expiry.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend.
	Close() error
}
