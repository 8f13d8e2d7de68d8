package binding

import (
	"encoding/json"
	"log"

	"soltana-store-api/internal/cache"
)

// OnKeyChange subscribes fn to changes of key made by other writers
// sharing the cache manager. fn receives the decoded fresh value and
// present=true after a Set, or the zero value and present=false after
// a Delete. Payloads that fail to decode into T are dropped with a
// warning. Returns an unsubscribe function.
func OnKeyChange[T any](m *cache.Manager, key string, fn func(value T, present bool)) func() {
	return m.Events().Subscribe(key, func(raw json.RawMessage) {
		if raw == nil {
			var zero T
			fn(zero, false)
			return
		}
		var value T
		if err := json.Unmarshal(raw, &value); err != nil {
			log.Printf("[Binding] Dropping unreadable change for %q: %v", key, err)
			return
		}
		fn(value, true)
	})
}
