package form

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long an untouched session survives before the sweep
// discards it.
const DefaultTTL = 30 * time.Minute

// Store keeps live form sessions in memory. Sessions are transient by
// contract, so process restarts losing them is acceptable.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	searchFn SearchFunc
	ttl      time.Duration
}

func NewStore(searchFn SearchFunc, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: make(map[string]*Session),
		searchFn: searchFn,
		ttl:      ttl,
	}
}

func (st *Store) Create() *Session {
	s := newSession(uuid.NewString(), st.searchFn)
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

func (st *Store) Get(id string) *Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sessions[id]
}

// Drop removes a session, cancelling any pending timers. Called after a
// successful submission and by the sweep.
func (st *Store) Drop(id string) {
	st.mu.Lock()
	s := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()

	if s != nil {
		s.autoAdvance.Cancel()
		s.search.Cancel()
	}
}

// Sweep discards sessions idle longer than the store TTL and returns how
// many were dropped. Scheduled from the cron package.
func (st *Store) Sweep() int {
	cutoff := time.Now().Add(-st.ttl)

	st.mu.Lock()
	var stale []*Session
	for id, s := range st.sessions {
		s.mu.Lock()
		idle := s.touchedAt.Before(cutoff)
		s.mu.Unlock()
		if idle {
			stale = append(stale, s)
			delete(st.sessions, id)
		}
	}
	st.mu.Unlock()

	for _, s := range stale {
		s.autoAdvance.Cancel()
		s.search.Cancel()
	}
	return len(stale)
}

// Len reports the live session count.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
