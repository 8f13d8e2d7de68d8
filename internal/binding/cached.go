// Package binding exposes the cache, cart and change notifications to
// consumers through small stateful wrappers: a typed read-through
// binding per resource, a cart binding with a busy flag, and key-change
// subscriptions.
package binding

import (
	"context"
	"sync"
	"time"

	"soltana-store-api/internal/cache"
)

// FetchFunc loads a resource from its authoritative source.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Cached binds one cache key to a fetch function. Get serves straight
// from the cache when the key is present, with no loading phase;
// otherwise it flags loading, fetches, populates the cache and returns
// the result. Refresh always fetches and overwrites whatever the cache
// holds.
type Cached[T any] struct {
	cache *cache.Manager
	key   string
	ttl   time.Duration
	fetch FetchFunc[T]

	mu      sync.Mutex
	loading bool
	lastErr error
}

// NewCached creates a binding for key. A zero ttl uses the manager's
// default TTL.
func NewCached[T any](c *cache.Manager, key string, ttl time.Duration, fetch FetchFunc[T]) *Cached[T] {
	if ttl == 0 {
		ttl = -1 // manager default
	}
	return &Cached[T]{cache: c, key: key, ttl: ttl, fetch: fetch}
}

// Get returns the bound value, from the cache when possible.
func (b *Cached[T]) Get(ctx context.Context) (T, error) {
	if v, err := cache.GetAs[T](ctx, b.cache, b.key); err == nil {
		return v, nil
	}
	return b.load(ctx)
}

// Refresh re-fetches the value and overwrites the cache entry
// regardless of its current state.
func (b *Cached[T]) Refresh(ctx context.Context) (T, error) {
	return b.load(ctx)
}

// Loading reports whether a fetch is in flight.
func (b *Cached[T]) Loading() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loading
}

// Err returns the error of the most recent fetch, nil after a success.
func (b *Cached[T]) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastErr
}

func (b *Cached[T]) load(ctx context.Context) (T, error) {
	b.mu.Lock()
	b.loading = true
	b.mu.Unlock()

	value, err := b.fetch(ctx)

	b.mu.Lock()
	b.loading = false
	b.lastErr = err
	b.mu.Unlock()

	if err != nil {
		var zero T
		return zero, err
	}
	cache.SetValue(ctx, b.cache, b.key, value, b.ttl)
	return value, nil
}
