package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"
)

// Namespace prefixes every durable key owned by the cache, so Clear can
// enumerate and remove cache entries without touching foreign data that
// happens to share the same store.
const Namespace = "cache:"

// envelope is the stored form of a cache entry. The same JSON shape is
// written to the durable tier, with timestamp and ttl in epoch/interval
// milliseconds.
type envelope struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
	TTL       int64           `json:"ttl"`
}

// validAt reports whether the entry is still fresh at the given instant.
// An entry is valid iff now < timestamp + ttl, so a zero TTL is expired
// the moment it is written.
func (e *envelope) validAt(now time.Time) bool {
	return now.UnixMilli() < e.Timestamp+e.TTL
}

// Options configures a Manager.
type Options struct {
	// UseStore enables the durable cold tier. Ignored when no Store is
	// supplied.
	UseStore bool

	// DefaultTTL applies to Set calls with a negative ttl.
	DefaultTTL time.Duration
}

// DefaultOptions returns the standard manager configuration: durable
// tier on, five minute default TTL.
func DefaultOptions() Options {
	return Options{UseStore: true, DefaultTTL: 5 * time.Minute}
}

// Manager is a two-tier cache: a process-memory hot tier in front of an
// optional durable Store. Expiry is discovered lazily on reads; there is
// no background sweep. Durable-tier failures are logged and absorbed, so
// the hot tier keeps working for the rest of the session even when
// persistence is degraded.
type Manager struct {
	mu  sync.RWMutex
	hot map[string]*envelope

	store      Store
	useStore   bool
	defaultTTL time.Duration
	events     *Notifier

	now func() time.Time // overridable in tests
}

// New creates a cache manager over the given durable store. Pass a nil
// store (or Options.UseStore=false) for a memory-only cache.
func New(store Store, opts Options) *Manager {
	if opts.DefaultTTL <= 0 {
		opts.DefaultTTL = DefaultOptions().DefaultTTL
	}
	useStore := opts.UseStore && store != nil
	if opts.UseStore && store == nil {
		log.Printf("[CacheManager] No durable store configured, running memory-only")
	}
	return &Manager{
		hot:        make(map[string]*envelope),
		store:      store,
		useStore:   useStore,
		defaultTTL: opts.DefaultTTL,
		events:     NewNotifier(),
		now:        time.Now,
	}
}

// Events exposes the change notifier fed by this manager. Subscribers
// receive the fresh payload after every Set and a nil payload after
// every Delete of their key.
func (m *Manager) Events() *Notifier {
	return m.events
}

// Get returns the cached payload for key, or ErrCacheMiss. The hot tier
// is consulted first; on a hot miss the durable tier is read and, when
// still valid, promoted back into memory. Expired or corrupt entries
// are evicted as they are discovered. Get never returns store errors.
func (m *Manager) Get(ctx context.Context, key string) (json.RawMessage, error) {
	now := m.now()

	m.mu.RLock()
	entry, ok := m.hot[key]
	m.mu.RUnlock()

	if ok && entry.validAt(now) {
		return entry.Data, nil
	}
	if ok {
		m.mu.Lock()
		delete(m.hot, key)
		m.mu.Unlock()
	}

	if m.useStore {
		raw, err := m.store.Read(ctx, Namespace+key)
		switch {
		case err == nil:
			var env envelope
			if uerr := json.Unmarshal(raw, &env); uerr != nil {
				log.Printf("[CacheManager] Evicting corrupt entry %q: %v", key, uerr)
				m.removeDurable(ctx, key)
				break
			}
			if !env.validAt(now) {
				m.removeDurable(ctx, key)
				break
			}
			m.mu.Lock()
			m.hot[key] = &env
			m.mu.Unlock()
			return env.Data, nil
		case !errors.Is(err, ErrNotFound):
			log.Printf("[CacheManager] Store read failed for %q: %v", key, err)
		}
	}

	return nil, ErrCacheMiss
}

// Set stores data under key with the given ttl. A negative ttl falls
// back to the manager default; a zero ttl produces an entry that is
// already expired on the next Get. The hot tier is written
// unconditionally; a durable write failure is logged and never rolls
// back the hot write nor surfaces to the caller.
func (m *Manager) Set(ctx context.Context, key string, data json.RawMessage, ttl time.Duration) {
	if ttl < 0 {
		ttl = m.defaultTTL
	}
	entry := &envelope{
		Data:      data,
		Timestamp: m.now().UnixMilli(),
		TTL:       ttl.Milliseconds(),
	}

	m.mu.Lock()
	m.hot[key] = entry
	m.mu.Unlock()

	if m.useStore {
		raw, err := json.Marshal(entry)
		if err != nil {
			log.Printf("[CacheManager] Failed to serialize entry %q: %v", key, err)
		} else if werr := m.store.Write(ctx, Namespace+key, raw); werr != nil {
			log.Printf("[CacheManager] Durable write failed for %q, memory tier still current: %v", key, werr)
		}
	}

	m.events.Publish(key, data)
}

// Delete removes key from both tiers. Deleting an absent key is a no-op.
func (m *Manager) Delete(ctx context.Context, key string) {
	m.mu.Lock()
	delete(m.hot, key)
	m.mu.Unlock()

	if m.useStore {
		m.removeDurable(ctx, key)
	}

	m.events.Publish(key, nil)
}

// Clear empties the hot tier and removes every durable key under the
// cache namespace. Durable keys outside the namespace are left alone.
func (m *Manager) Clear(ctx context.Context) {
	m.mu.Lock()
	m.hot = make(map[string]*envelope)
	m.mu.Unlock()

	if !m.useStore {
		return
	}
	keys, err := m.store.Keys(ctx, Namespace)
	if err != nil {
		log.Printf("[CacheManager] Failed to enumerate durable keys: %v", err)
		return
	}
	for _, k := range keys {
		if err := m.store.Remove(ctx, k); err != nil {
			log.Printf("[CacheManager] Failed to remove durable key %q: %v", k, err)
		}
	}
}

// Refresh re-stamps the current value of key with a renewed timestamp
// and the given ttl, without changing the payload. Returns false, and
// creates nothing, when the key is currently a miss.
func (m *Manager) Refresh(ctx context.Context, key string, ttl time.Duration) bool {
	data, err := m.Get(ctx, key)
	if err != nil {
		return false
	}
	m.Set(ctx, key, data, ttl)
	return true
}

// Stats describes the manager's current configuration and hot-tier
// occupancy. Introspection only.
type Stats struct {
	HotEntries int           `json:"hot_entries"`
	UseStore   bool          `json:"use_store"`
	DefaultTTL time.Duration `json:"default_ttl"`
}

// Stats returns a snapshot of the manager state.
func (m *Manager) Stats() Stats {
	m.mu.RLock()
	n := len(m.hot)
	m.mu.RUnlock()
	return Stats{
		HotEntries: n,
		UseStore:   m.useStore,
		DefaultTTL: m.defaultTTL,
	}
}

// DefaultTTL returns the TTL applied when Set is called with a negative
// ttl.
func (m *Manager) DefaultTTL() time.Duration {
	return m.defaultTTL
}

func (m *Manager) removeDurable(ctx context.Context, key string) {
	if err := m.store.Remove(ctx, Namespace+key); err != nil {
		log.Printf("[CacheManager] Failed to remove durable entry %q: %v", key, err)
	}
}

// GetAs reads key and unmarshals the payload into T. A payload that no
// longer unmarshals into T is evicted and reported as a miss.
func GetAs[T any](ctx context.Context, m *Manager, key string) (T, error) {
	var value T
	raw, err := m.Get(ctx, key)
	if err != nil {
		return value, err
	}
	if uerr := json.Unmarshal(raw, &value); uerr != nil {
		log.Printf("[CacheManager] Evicting entry %q with unreadable payload: %v", key, uerr)
		m.Delete(ctx, key)
		var zero T
		return zero, ErrCacheMiss
	}
	return value, nil
}

// SetValue marshals value and stores it under key. Serialization
// failure is logged and swallowed; the previous entry, if any, is left
// in place.
func SetValue[T any](ctx context.Context, m *Manager, key string, value T, ttl time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("[CacheManager] Failed to marshal value for %q: %v", key, err)
		return
	}
	m.Set(ctx, key, raw, ttl)
}
