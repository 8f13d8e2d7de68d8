package cache

import (
	"context"
	"errors"
)

// Store is the durable cold-tier adapter behind the cache manager.
// Implementations persist opaque byte values under namespaced keys so
// cached data survives process restarts. All methods must be safe for
// concurrent use. A failing Store never breaks the cache: the manager
// logs the error and keeps serving from memory.
type Store interface {
	// Read returns the stored value for key, or ErrNotFound.
	Read(ctx context.Context, key string) ([]byte, error)

	// Write stores value under key, replacing any previous value.
	Write(ctx context.Context, key string, value []byte) error

	// Remove deletes the value for key. Missing keys are not an error.
	Remove(ctx context.Context, key string) error

	// Keys lists every stored key beginning with prefix.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Close releases the underlying storage handle.
	Close() error
}

var (
	// ErrCacheMiss indicates the key is absent or expired in both tiers.
	ErrCacheMiss = errors.New("cache miss")

	// ErrNotFound indicates the key is absent from a durable store.
	ErrNotFound = errors.New("key not found")
)
