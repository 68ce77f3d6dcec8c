package form

import (
	"strings"
	"time"
)

const (
	// MinDwell is the minimum time between form start and submission; faster
	// than this is bot speed.
	MinDwell = 1500 * time.Millisecond

	// ResubmitGap throttles back-to-back submissions from one session.
	ResubmitGap = 5000 * time.Millisecond
)

// Verdict is the outcome of the pre-submission guard chain.
type Verdict int

const (
	// VerdictAllow lets the submission through to the intake pipeline.
	VerdictAllow Verdict = iota
	// VerdictSilentAccept reports success to the caller without persisting
	// anything: the honeypot field was filled.
	VerdictSilentAccept
	// VerdictTooFast rejects a submission attempted before MinDwell elapsed.
	VerdictTooFast
	// VerdictThrottled rejects a resubmission inside ResubmitGap.
	VerdictThrottled
	// VerdictCooldown rejects while a server-issued cooldown is running.
	VerdictCooldown
)

// GuardResult carries the verdict plus the remaining cooldown when the
// server-issued window is still open.
type GuardResult struct {
	Verdict    Verdict
	RetryAfter time.Duration
}

// CheckSubmit runs the guard chain in order, short-circuiting on the first
// failing layer: honeypot, dwell time, client throttle, server cooldown.
// These heuristics stay advisory; the authoritative limit lives server side
// on the intake route.
func (s *Session) CheckSubmit() GuardResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	if strings.TrimSpace(s.fields.Honeypot) != "" {
		return GuardResult{Verdict: VerdictSilentAccept}
	}
	if now.Sub(s.startedAt) < MinDwell {
		return GuardResult{Verdict: VerdictTooFast}
	}
	if !s.lastSubmit.IsZero() && now.Sub(s.lastSubmit) < ResubmitGap {
		return GuardResult{Verdict: VerdictThrottled}
	}
	if remaining := s.cooldownUntil.Sub(now); remaining > 0 {
		return GuardResult{Verdict: VerdictCooldown, RetryAfter: remaining}
	}
	return GuardResult{Verdict: VerdictAllow}
}
