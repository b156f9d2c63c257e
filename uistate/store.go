package uistate

import (
	"sync"
	"time"
)

// Store owns the state of one session. All reads return value snapshots;
// all writes go through Update, which applies a pure State→State function
// under the lock.
type Store struct {
	mu           sync.RWMutex
	state        State
	persistTheme func(Theme)
}

// NewStore starts a store at initial. persistTheme, when non-nil, is called
// with the new theme every time it changes; it is the hook that writes the
// preference to durable storage.
func NewStore(initial State, persistTheme func(Theme)) *Store {
	return &Store{state: initial, persistTheme: persistTheme}
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Update applies fn to the current state and returns the new snapshot.
func (s *Store) Update(fn func(State) State) State {
	s.mu.Lock()
	before := s.state
	s.state = fn(before)
	after := s.state
	s.mu.Unlock()

	if s.persistTheme != nil && after.Theme != before.Theme {
		s.persistTheme(after.Theme)
	}
	return after
}

// Registry hands out one Store per session id, creating stores lazily and
// evicting sessions idle past the TTL.
type Registry struct {
	mu           sync.Mutex
	sessions     map[string]*registryEntry
	ttl          time.Duration
	initial      func() State
	persistTheme func(Theme)
	now          func() time.Time
}

type registryEntry struct {
	store    *Store
	lastSeen time.Time
}

// NewRegistry builds a registry. initial produces the starting state for
// new sessions (it is consulted per session so the persisted theme applies
// to sessions created after a theme change).
func NewRegistry(ttl time.Duration, initial func() State, persistTheme func(Theme)) *Registry {
	if initial == nil {
		initial = Default
	}
	return &Registry{
		sessions:     make(map[string]*registryEntry),
		ttl:          ttl,
		initial:      initial,
		persistTheme: persistTheme,
		now:          time.Now,
	}
}

// Get returns the store for sessionID, creating it on first use.
func (r *Registry) Get(sessionID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry, ok := r.sessions[sessionID]; ok {
		entry.lastSeen = r.now()
		return entry.store
	}
	store := NewStore(r.initial(), r.persistTheme)
	r.sessions[sessionID] = &registryEntry{store: store, lastSeen: r.now()}
	return store
}

// Sweep drops sessions idle longer than the TTL and reports how many were
// evicted.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ttl <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.ttl)
	evicted := 0
	for id, entry := range r.sessions {
		if entry.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			evicted++
		}
	}
	return evicted
}
