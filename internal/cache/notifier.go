package cache

import (
	"encoding/json"
	"sync"
)

// Notifier is a small pub/sub channel keyed by cache key. The manager
// publishes after every Set and Delete so other parts of the process
// can react to a key changing under them. In a single-process
// deployment this replaces the cross-tab storage event of a browser
// client: same "another writer changed this key" semantics, local bus
// instead of the storage layer.
type Notifier struct {
	mu   sync.RWMutex
	subs map[string]map[int]func(json.RawMessage)
	next int
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[string]map[int]func(json.RawMessage))}
}

// Subscribe registers fn for changes to key and returns an unsubscribe
// function. fn receives the fresh payload on Set and nil on Delete.
// Callbacks run synchronously on the publishing goroutine.
func (n *Notifier) Subscribe(key string, fn func(json.RawMessage)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.subs[key] == nil {
		n.subs[key] = make(map[int]func(json.RawMessage))
	}
	id := n.next
	n.next++
	n.subs[key][id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs[key], id)
		if len(n.subs[key]) == 0 {
			delete(n.subs, key)
		}
	}
}

// Publish delivers data to every subscriber of key.
func (n *Notifier) Publish(key string, data json.RawMessage) {
	n.mu.RLock()
	fns := make([]func(json.RawMessage), 0, len(n.subs[key]))
	for _, fn := range n.subs[key] {
		fns = append(fns, fn)
	}
	n.mu.RUnlock()

	for _, fn := range fns {
		fn(data)
	}
}
