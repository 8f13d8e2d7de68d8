package service

import (
	"context"
	"log"
	"strings"

	"soltana-store-api/internal/cache"
)

// CleanupService bulk-removes cache entries from the durable store,
// optionally narrowed to keys containing one of the given fragments.
// Used by the admin surface to reclaim storage without touching
// durable keys owned by other subsystems.
type CleanupService struct {
	store cache.Store
}

// NewCleanupService creates a cleanup service. Returns nil if store is
// nil (nothing durable to clean).
func NewCleanupService(store cache.Store) *CleanupService {
	if store == nil {
		return nil
	}
	return &CleanupService{store: store}
}

// Cleanup removes every durable key under the cache namespace whose
// logical key contains one of the fragments. With no fragments, every
// cache-owned key is removed. Returns the number of keys removed.
func (s *CleanupService) Cleanup(ctx context.Context, fragments []string) (int, error) {
	keys, err := s.store.Keys(ctx, cache.Namespace)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, key := range keys {
		if !matchesAny(key, fragments) {
			continue
		}
		if err := s.store.Remove(ctx, key); err != nil {
			log.Printf("[CleanupService] Failed to remove %q: %v", key, err)
			continue
		}
		removed++
	}

	log.Printf("[CleanupService] Cleaned up %d cache entries", removed)
	return removed, nil
}

func matchesAny(key string, fragments []string) bool {
	if len(fragments) == 0 {
		return true
	}
	for _, f := range fragments {
		if strings.Contains(key, f) {
			return true
		}
	}
	return false
}
