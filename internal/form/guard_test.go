package form

import (
	"testing"
	"time"
)

// guardSession builds a session whose clock is pinned to a mutable instant so
// dwell and throttle windows can be traversed without sleeping.
func guardSession() (*Session, *time.Time) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := base
	s := newSession("g", nil)
	s.now = func() time.Time { return now }
	s.startedAt = base
	s.touchedAt = base
	return s, &now
}

func TestGuardHoneypotWinsOverEverything(t *testing.T) {
	s, _ := guardSession()
	s.Apply(FieldPatch{Honeypot: strPtr("http://spam.example")})

	// Dwell has not elapsed either; the honeypot verdict must come first.
	if got := s.CheckSubmit().Verdict; got != VerdictSilentAccept {
		t.Errorf("verdict = %d, want VerdictSilentAccept", got)
	}
}

func TestGuardDwell(t *testing.T) {
	s, now := guardSession()

	if got := s.CheckSubmit().Verdict; got != VerdictTooFast {
		t.Errorf("instant submit verdict = %d, want VerdictTooFast", got)
	}

	*now = now.Add(MinDwell - time.Millisecond)
	if got := s.CheckSubmit().Verdict; got != VerdictTooFast {
		t.Errorf("verdict just under the dwell = %d, want VerdictTooFast", got)
	}

	*now = now.Add(time.Millisecond)
	if got := s.CheckSubmit().Verdict; got != VerdictAllow {
		t.Errorf("verdict at the dwell boundary = %d, want VerdictAllow", got)
	}
}

func TestGuardThrottle(t *testing.T) {
	s, now := guardSession()
	*now = now.Add(MinDwell)

	s.MarkSubmitAttempt()
	*now = now.Add(ResubmitGap / 2)
	if got := s.CheckSubmit().Verdict; got != VerdictThrottled {
		t.Errorf("verdict inside the gap = %d, want VerdictThrottled", got)
	}

	*now = now.Add(ResubmitGap)
	if got := s.CheckSubmit().Verdict; got != VerdictAllow {
		t.Errorf("verdict after the gap = %d, want VerdictAllow", got)
	}
}

func TestGuardCooldown(t *testing.T) {
	s, now := guardSession()
	*now = now.Add(MinDwell)

	s.StartCooldown(10 * time.Second)
	res := s.CheckSubmit()
	if res.Verdict != VerdictCooldown {
		t.Fatalf("verdict = %d, want VerdictCooldown", res.Verdict)
	}
	if res.RetryAfter != 10*time.Second {
		t.Errorf("RetryAfter = %v, want 10s", res.RetryAfter)
	}

	// A shorter cooldown issued later must not shrink the open window.
	s.StartCooldown(2 * time.Second)
	if got := s.CheckSubmit().RetryAfter; got != 10*time.Second {
		t.Errorf("RetryAfter after shorter reissue = %v, want 10s", got)
	}

	*now = now.Add(11 * time.Second)
	if got := s.CheckSubmit().Verdict; got != VerdictAllow {
		t.Errorf("verdict after expiry = %d, want VerdictAllow", got)
	}
}
