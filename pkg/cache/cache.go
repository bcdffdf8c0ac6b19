// Package cache stores rendered artifacts keyed by their full input hash.
//
// Three implementations cover the deployment modes: FileCache for CLI use,
// RedisCache for the shared HTTP service, and NullCache when caching is
// disabled. Scoped wraps any of them with a key prefix for tenant
// isolation.
package cache

import (
	"context"
	"time"
)

// Cache stores rendered artifact bytes. Implementations must be safe for
// concurrent use; one render request's failure to cache never affects
// another.
type Cache interface {
	// Get returns the stored bytes and whether the key was present. An
	// expired or corrupt entry reads as a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores bytes under the key. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes the key; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any underlying resources.
	Close() error
}

// Scoped prefixes every key with a namespace, isolating tenants that share
// one backing store.
type Scoped struct {
	inner  Cache
	prefix string
}

// NewScoped wraps a cache with a key prefix.
func NewScoped(inner Cache, prefix string) *Scoped {
	return &Scoped{inner: inner, prefix: prefix}
}

func (s *Scoped) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

func (s *Scoped) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return s.inner.Set(ctx, s.prefix+key, data, ttl)
}

func (s *Scoped) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.prefix+key)
}

func (s *Scoped) Close() error { return s.inner.Close() }

var _ Cache = (*Scoped)(nil)
