package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStore is an in-memory Store with switchable failure modes.
type stubStore struct {
	mu         sync.Mutex
	data       map[string][]byte
	failReads  bool
	failWrites bool
}

func newStubStore() *stubStore {
	return &stubStore{data: make(map[string][]byte)}
}

func (s *stubStore) Read(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failReads {
		return nil, errors.New("stub read failure")
	}
	v, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func (s *stubStore) Write(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites {
		return errors.New("stub write failure")
	}
	s.data[key] = value
	return nil
}

func (s *stubStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *stubStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var keys []string
	for k := range s.data {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (s *stubStore) Close() error { return nil }

func (s *stubStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

func TestSetGetRoundTrip(t *testing.T) {
	m := New(newStubStore(), DefaultOptions())
	ctx := context.Background()

	SetValue(ctx, m, "greeting", "hello", time.Minute)

	got, err := GetAs[string](ctx, m, "greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestGetMissOnUnknownKey(t *testing.T) {
	m := New(newStubStore(), DefaultOptions())

	_, err := m.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestEntryExpiresAfterTTL(t *testing.T) {
	m := New(newStubStore(), DefaultOptions())
	ctx := context.Background()

	base := time.Now()
	m.now = func() time.Time { return base }
	SetValue(ctx, m, "k", 42, 100*time.Millisecond)

	m.now = func() time.Time { return base.Add(50 * time.Millisecond) }
	got, err := GetAs[int](ctx, m, "k")
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	m.now = func() time.Time { return base.Add(150 * time.Millisecond) }
	_, err = m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestZeroTTLIsImmediateMiss(t *testing.T) {
	m := New(newStubStore(), DefaultOptions())
	ctx := context.Background()

	SetValue(ctx, m, "flash", "gone", 0)

	_, err := m.Get(ctx, "flash")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestNegativeTTLUsesDefault(t *testing.T) {
	m := New(newStubStore(), Options{UseStore: true, DefaultTTL: time.Hour})
	ctx := context.Background()

	SetValue(ctx, m, "k", "v", -1)

	got, err := GetAs[string](ctx, m, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestColdTierPromotion(t *testing.T) {
	store := newStubStore()
	ctx := context.Background()

	first := New(store, DefaultOptions())
	SetValue(ctx, first, "products", []string{"a", "b"}, time.Hour)

	// A fresh manager over the same store simulates a process restart:
	// the hot tier is empty, the durable tier is not.
	second := New(store, DefaultOptions())
	assert.Equal(t, 0, second.Stats().HotEntries)

	got, err := GetAs[[]string](ctx, second, "products")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 1, second.Stats().HotEntries, "valid cold entry should be promoted")
}

func TestExpiredColdEntryRemoved(t *testing.T) {
	store := newStubStore()
	ctx := context.Background()

	first := New(store, DefaultOptions())
	base := time.Now()
	first.now = func() time.Time { return base }
	SetValue(ctx, first, "k", "v", time.Second)

	second := New(store, DefaultOptions())
	second.now = func() time.Time { return base.Add(time.Minute) }

	_, err := second.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Equal(t, 0, store.len(), "expired cold entry should be deleted on discovery")
}

func TestDurableWriteFailureKeepsHotTier(t *testing.T) {
	store := newStubStore()
	store.failWrites = true
	m := New(store, DefaultOptions())
	ctx := context.Background()

	SetValue(ctx, m, "k", "still here", time.Minute)

	got, err := GetAs[string](ctx, m, "k")
	require.NoError(t, err)
	assert.Equal(t, "still here", got)
	assert.Equal(t, 0, store.len())
}

func TestStoreReadFailureIsAMiss(t *testing.T) {
	store := newStubStore()
	m := New(store, DefaultOptions())
	ctx := context.Background()

	store.failReads = true
	_, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCorruptColdEntryEvicted(t *testing.T) {
	store := newStubStore()
	store.data[Namespace+"bad"] = []byte("{not json")
	m := New(store, DefaultOptions())

	_, err := m.Get(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Equal(t, 0, store.len(), "corrupt entry should not survive to fail again")
}

func TestGetAsMismatchedPayloadEvicts(t *testing.T) {
	m := New(newStubStore(), DefaultOptions())
	ctx := context.Background()

	SetValue(ctx, m, "k", "not a number", time.Minute)

	_, err := GetAs[int](ctx, m, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)

	_, err = m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss, "unreadable entry should be evicted")
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := newStubStore()
	m := New(store, DefaultOptions())
	ctx := context.Background()

	SetValue(ctx, m, "k", "v", time.Minute)
	m.Delete(ctx, "k")
	m.Delete(ctx, "k")

	_, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Equal(t, 0, store.len())
}

func TestClearOnlyTouchesNamespace(t *testing.T) {
	store := newStubStore()
	store.data["session:user1"] = []byte("foreign data")
	m := New(store, DefaultOptions())
	ctx := context.Background()

	SetValue(ctx, m, "a", 1, time.Minute)
	SetValue(ctx, m, "b", 2, time.Minute)
	m.Clear(ctx)

	assert.Equal(t, 0, m.Stats().HotEntries)
	assert.Equal(t, 1, store.len())
	_, ok := store.data["session:user1"]
	assert.True(t, ok, "clear must not touch keys outside the cache namespace")
}

func TestRefreshRenewsTimestampKeepsData(t *testing.T) {
	store := newStubStore()
	m := New(store, DefaultOptions())
	ctx := context.Background()

	base := time.Now()
	m.now = func() time.Time { return base }
	SetValue(ctx, m, "k", "payload", time.Minute)

	m.now = func() time.Time { return base.Add(30 * time.Second) }
	require.True(t, m.Refresh(ctx, "k", time.Minute))

	var env envelope
	require.NoError(t, json.Unmarshal(store.data[Namespace+"k"], &env))
	assert.Equal(t, base.Add(30*time.Second).UnixMilli(), env.Timestamp)

	got, err := GetAs[string](ctx, m, "k")
	require.NoError(t, err)
	assert.Equal(t, "payload", got)
}

func TestRefreshMissReturnsFalse(t *testing.T) {
	store := newStubStore()
	m := New(store, DefaultOptions())

	assert.False(t, m.Refresh(context.Background(), "ghost", time.Minute))
	assert.Equal(t, 0, m.Stats().HotEntries, "refresh must not create entries")
	assert.Equal(t, 0, store.len())
}

func TestStats(t *testing.T) {
	m := New(newStubStore(), Options{UseStore: true, DefaultTTL: 2 * time.Minute})
	ctx := context.Background()

	SetValue(ctx, m, "a", 1, time.Minute)
	SetValue(ctx, m, "b", 2, time.Minute)

	stats := m.Stats()
	assert.Equal(t, 2, stats.HotEntries)
	assert.True(t, stats.UseStore)
	assert.Equal(t, 2*time.Minute, stats.DefaultTTL)
}

func TestMemoryOnlyManager(t *testing.T) {
	m := New(nil, Options{UseStore: true, DefaultTTL: time.Minute})
	ctx := context.Background()

	SetValue(ctx, m, "k", "v", time.Minute)

	got, err := GetAs[string](ctx, m, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
	assert.False(t, m.Stats().UseStore)
}
