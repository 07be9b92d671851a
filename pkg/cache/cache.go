package cache

import (
	"context"
	"time"
)

// Cache is the contract the repositories program against.
// Allows swapping the implementation (Redis, in-memory) in tests.
type Cache interface {
	// Get loads a cached value into dest.
	// found=false means cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}
