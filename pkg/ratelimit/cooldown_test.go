package ratelimit

import (
	"context"
	"testing"
	"time"
)

func newTestMemoryStore(window time.Duration, max int) (*MemoryStore, *time.Time) {
	now := time.Now()
	s := &MemoryStore{
		entries: make(map[string]*entry),
		window:  window,
		max:     max,
	}
	s.now = func() time.Time { return now }
	return s, &now
}

func TestMemoryStoreAllowsUpToMax(t *testing.T) {
	s, _ := newTestMemoryStore(time.Minute, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, _, err := s.Hit(ctx, "1.2.3.4")
		if err != nil {
			t.Fatalf("Hit: %v", err)
		}
		if !allowed {
			t.Fatalf("hit %d should be allowed", i+1)
		}
	}

	allowed, retryAfter, _ := s.Hit(ctx, "1.2.3.4")
	if allowed {
		t.Fatal("fourth hit should be blocked")
	}
	if retryAfter <= 0 || retryAfter > time.Minute {
		t.Errorf("retryAfter = %v, want within the window", retryAfter)
	}
}

func TestMemoryStoreKeysAreIndependent(t *testing.T) {
	s, _ := newTestMemoryStore(time.Minute, 1)
	ctx := context.Background()

	s.Hit(ctx, "1.2.3.4")
	if allowed, _, _ := s.Hit(ctx, "1.2.3.4"); allowed {
		t.Fatal("second hit for same key should be blocked")
	}
	if allowed, _, _ := s.Hit(ctx, "5.6.7.8"); !allowed {
		t.Fatal("other keys must not share the window")
	}
}

func TestMemoryStoreWindowResets(t *testing.T) {
	s, now := newTestMemoryStore(time.Minute, 1)
	ctx := context.Background()

	s.Hit(ctx, "1.2.3.4")
	if allowed, _, _ := s.Hit(ctx, "1.2.3.4"); allowed {
		t.Fatal("inside the window should block")
	}

	*now = now.Add(61 * time.Second)
	if allowed, _, _ := s.Hit(ctx, "1.2.3.4"); !allowed {
		t.Fatal("a fresh window should allow again")
	}
}
