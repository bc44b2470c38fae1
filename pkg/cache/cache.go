package cache

import (
	"context"
	"time"
)

// Cache is the contract for the read-through cache layer.
// Implementations: Redis (production), no-op (tests, cache disabled).
type Cache interface {
	// Get fetches a key and unmarshals it into dest.
	// Returns (found, error): found=false means a miss and dest is untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error
}

// NoOp is a Cache that stores nothing. Used when Redis is unavailable
// so repositories never have to nil-check their cache dependency.
type NoOp struct{}

func (NoOp) Get(ctx context.Context, key string, dest interface{}) (bool, error) { return false, nil }
func (NoOp) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}
func (NoOp) Delete(ctx context.Context, keys ...string) error { return nil }
func (NoOp) Ping(ctx context.Context) error                   { return nil }
