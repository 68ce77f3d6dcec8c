// pkg/ratelimit/cooldown.go
//
// Fixed-window submission cooldown. The client side runs its own dwell and
// throttle heuristics, but those are advisory; this store is the authority
// and its retry-after answer is what a 429 response carries.
package ratelimit

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Store counts submission attempts per client key within a rolling window.
type Store interface {
	// Hit records an attempt and reports whether it is allowed. When blocked,
	// retryAfter is the remaining cooldown the client must honor.
	Hit(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}

type entry struct {
	count       int
	windowStart time.Time
}

// MemoryStore is the in-process fallback used when Redis is not configured.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*entry
	window  time.Duration
	max     int
	now     func() time.Time
}

func NewMemoryStore(window time.Duration, max int) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]*entry),
		window:  window,
		max:     max,
		now:     time.Now,
	}
	// Evict stale windows to prevent memory growth.
	go s.cleanup()
	return s
}

func (s *MemoryStore) Hit(_ context.Context, key string) (bool, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, ok := s.entries[key]
	if !ok || now.Sub(e.windowStart) >= s.window {
		// Copy the key before retaining it: callers may pass strings that
		// alias fasthttp's reusable request buffer.
		s.entries[strings.Clone(key)] = &entry{count: 1, windowStart: now}
		return true, 0, nil
	}

	e.count++
	if e.count > s.max {
		return false, s.window - now.Sub(e.windowStart), nil
	}
	return true, 0, nil
}

func (s *MemoryStore) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		s.mu.Lock()
		cutoff := s.now().Add(-2 * s.window)
		for key, e := range s.entries {
			if e.windowStart.Before(cutoff) {
				delete(s.entries, key)
			}
		}
		s.mu.Unlock()
	}
}
