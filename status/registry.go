package status

import (
	"sync"
	"sync/atomic"
)

// Registry holds named counters shared across goroutines
// Writers cache the pointer once and update the atomic directly
type Registry struct {
	mu       sync.RWMutex
	counters map[string]*atomic.Int64
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		counters: make(map[string]*atomic.Int64),
	}
}

// Counter returns the counter for key, creating it at zero
func (r *Registry) Counter(key string) *atomic.Int64 {
	r.mu.RLock()
	c, ok := r.counters[key]
	r.mu.RUnlock()
	if ok {
		return c
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Another writer may have registered it between the locks
	if c, ok := r.counters[key]; ok {
		return c
	}
	c = new(atomic.Int64)
	r.counters[key] = c
	return c
}

// Snapshot copies every counter value
func (r *Registry) Snapshot() map[string]int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]int64, len(r.counters))
	for k, c := range r.counters {
		out[k] = c.Load()
	}
	return out
}
