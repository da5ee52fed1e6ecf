package telemetry

import (
	"sync"

	"go.opentelemetry.io/otel/trace"
)

// EntityTracker remembers the span context of the most recent operation per
// entity key, so successive operations on the same article can be link-chained
// across otherwise unrelated requests. Entries are overwritten last-write-wins
// and never expire.
type EntityTracker struct {
	mu   sync.Mutex
	last map[string]trace.SpanContext
}

func NewEntityTracker() *EntityTracker {
	return &EntityTracker{last: make(map[string]trace.SpanContext)}
}

// Last returns the span context most recently recorded for a key.
func (t *EntityTracker) Last(key string) (trace.SpanContext, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	sc, ok := t.last[key]
	return sc, ok
}

// Record stores the span context for a key, replacing any previous entry.
func (t *EntityTracker) Record(key string, sc trace.SpanContext) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last[key] = sc
}

// Len reports the number of tracked keys.
func (t *EntityTracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.last)
}
