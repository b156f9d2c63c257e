package wizard

import (
	"sync"
	"time"
)

// Registry hands out one machine per session. A session that never submits
// simply ages out: the draft is discarded, never persisted.
type Registry struct {
	mu       sync.Mutex
	machines map[string]*registryEntry
	ttl      time.Duration
	now      func() time.Time
}

type registryEntry struct {
	machine  *Machine
	lastSeen time.Time
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		machines: make(map[string]*registryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns the machine for sessionID, creating a fresh one on first use.
func (r *Registry) Get(sessionID string) *Machine {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry, ok := r.machines[sessionID]; ok {
		entry.lastSeen = r.now()
		return entry.machine
	}
	m := NewMachine()
	r.machines[sessionID] = &registryEntry{machine: m, lastSeen: r.now()}
	return m
}

// Discard drops the session's machine, abandoning its draft.
func (r *Registry) Discard(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.machines, sessionID)
}

// Sweep drops machines idle longer than the TTL.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ttl <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.ttl)
	evicted := 0
	for id, entry := range r.machines {
		if entry.lastSeen.Before(cutoff) {
			delete(r.machines, id)
			evicted++
		}
	}
	return evicted
}
