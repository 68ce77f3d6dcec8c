package form

import (
	"context"
	"sync"
	"time"

	"premiumartisan_backend/pkg/geocode"
	"premiumartisan_backend/pkg/utils/format"
)

const (
	// searchDebounce is the quiescence window for address lookups: a newer
	// keystroke supersedes the pending lookup.
	searchDebounce = 220 * time.Millisecond

	// autoAdvanceDelay is the pause before the budget step advances on its
	// own once a value is chosen.
	autoAdvanceDelay = 220 * time.Millisecond

	maxPhotos = 4
)

// Fields holds the in-progress values of one form session.
type Fields struct {
	Categories  []string `json:"categories"`
	Name        string   `json:"name"`
	Phone       string   `json:"phone"` // display form, space separated pairs
	Postal      string   `json:"postal"`
	Surface     string   `json:"surface"`
	CpQuery     string   `json:"cp_query"`
	Location    string   `json:"location"`
	Budget      string   `json:"budget"`
	Description string   `json:"description"`
	PhotoNames  []string `json:"photo_names"`
	Honeypot    string   `json:"-"`
}

// PhoneDigits is the validated/submitted view of the phone field.
func (f *Fields) PhoneDigits() string {
	return format.PhoneDigits(f.Phone)
}

// FieldPatch carries a partial update; nil members leave the field untouched.
type FieldPatch struct {
	Categories  *[]string `json:"categories"`
	Name        *string   `json:"name"`
	Phone       *string   `json:"phone"`
	Postal      *string   `json:"postal"`
	Surface     *string   `json:"surface"`
	CpQuery     *string   `json:"cp_query"`
	Location    *string   `json:"location"`
	Budget      *string   `json:"budget"`
	Description *string   `json:"description"`
	PhotoNames  *[]string `json:"photo_names"`
	Honeypot    *string   `json:"website"` // hidden field a human never fills
}

// singleTimer is a single-slot cancellable timer. Scheduling always
// supersedes a pending run; two runs never race for the same slot.
type singleTimer struct {
	mu sync.Mutex
	t  *time.Timer
}

func (st *singleTimer) Schedule(d time.Duration, fn func()) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.t != nil {
		st.t.Stop()
	}
	st.t = time.AfterFunc(d, fn)
}

func (st *singleTimer) Cancel() {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.t != nil {
		st.t.Stop()
		st.t = nil
	}
}

// SearchFunc resolves a free-text address query into candidates.
type SearchFunc func(ctx context.Context, query string) []geocode.Result

// Session is one visitor's in-progress form. It lives only until submission
// or expiry and is never persisted.
type Session struct {
	ID string

	mu            sync.Mutex
	fields        Fields
	stepIndex     int
	startedAt     time.Time
	touchedAt     time.Time
	lastSubmit    time.Time
	cooldownUntil time.Time
	results       []geocode.Result

	autoAdvance singleTimer
	search      singleTimer
	searchFn    SearchFunc
	now         func() time.Time
}

func newSession(id string, searchFn SearchFunc) *Session {
	now := time.Now
	return &Session{
		ID:        id,
		startedAt: now(),
		touchedAt: now(),
		searchFn:  searchFn,
		now:       now,
	}
}

// Snapshot is the JSON view returned to the client after every operation.
type Snapshot struct {
	ID            string           `json:"id"`
	Step          Step             `json:"step"`
	StepIndex     int              `json:"step_index"`
	StepCount     int              `json:"step_count"`
	Ready         bool             `json:"ready"`
	Fields        Fields           `json:"fields"`
	CategoryLabel string           `json:"category_label,omitempty"`
	AddressHits   []geocode.Result `json:"address_hits"`
	RetryAfterSec int              `json:"retry_after,omitempty"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:            s.ID,
		Step:          Steps[s.stepIndex],
		StepIndex:     s.stepIndex,
		StepCount:     len(Steps),
		Ready:         ready(Steps[s.stepIndex].Key, &s.fields),
		Fields:        s.fields,
		CategoryLabel: format.PaintCategoryDisplay(s.fields.Categories),
		AddressHits:   s.results,
	}
	if remaining := s.cooldownUntil.Sub(s.now()); remaining > 0 {
		snap.RetryAfterSec = int(remaining.Seconds() + 0.999)
	}
	return snap
}

// Apply merges a patch, normalizing every incoming value. Setting the budget
// while the budget step is active schedules the timed auto-advance; a change
// of address query schedules the debounced lookup.
func (s *Session) Apply(patch FieldPatch) Snapshot {
	s.mu.Lock()

	if patch.Categories != nil {
		s.fields.Categories = *patch.Categories
	}
	if patch.Name != nil {
		s.fields.Name = format.NameCase(*patch.Name)
	}
	if patch.Phone != nil {
		s.fields.Phone = format.PhoneDisplay(*patch.Phone)
	}
	if patch.Postal != nil {
		s.fields.Postal = format.OnlyDigitsMax(*patch.Postal, 5)
	}
	if patch.Surface != nil {
		s.fields.Surface = format.OnlyDigitsMax(*patch.Surface, 4)
	}
	if patch.Location != nil {
		s.fields.Location = *patch.Location
	}
	if patch.Description != nil {
		s.fields.Description = *patch.Description
	}
	if patch.Honeypot != nil {
		s.fields.Honeypot = *patch.Honeypot
	}
	if patch.PhotoNames != nil {
		names := *patch.PhotoNames
		if len(names) > maxPhotos {
			names = names[:maxPhotos]
		}
		s.fields.PhotoNames = names
	}

	if patch.Budget != nil {
		s.fields.Budget = *patch.Budget
		if Steps[s.stepIndex].Key == StepBudget && ready(StepBudget, &s.fields) {
			s.autoAdvance.Schedule(autoAdvanceDelay, s.fireAutoAdvance)
		}
	}

	if patch.CpQuery != nil {
		s.fields.CpQuery = *patch.CpQuery
		s.scheduleSearchLocked(*patch.CpQuery)
	}

	s.touchedAt = s.now()
	snap := s.snapshotLocked()
	s.mu.Unlock()
	return snap
}

// fireAutoAdvance runs when the budget auto-advance delay elapses. The step
// may have changed in the meantime; the pending advance must not fire then.
func (s *Session) fireAutoAdvance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if Steps[s.stepIndex].Key != StepBudget {
		return
	}
	if !ready(StepBudget, &s.fields) {
		return
	}
	if s.stepIndex < len(Steps)-1 {
		s.stepIndex++
	}
}

func (s *Session) scheduleSearchLocked(query string) {
	if s.searchFn == nil {
		return
	}
	if len([]rune(query)) < geocode.MinQueryLen {
		s.search.Cancel()
		s.results = nil
		return
	}
	s.search.Schedule(searchDebounce, func() {
		hits := s.searchFn(context.Background(), query)
		s.mu.Lock()
		// A newer query may have superseded this lookup while it ran.
		if s.fields.CpQuery == query {
			s.results = hits
		}
		s.mu.Unlock()
	})
}

// ApplyAddress copies a chosen (or reverse-geocoded) candidate into the
// localisation fields, mirroring how a suggestion click fills the form.
func (s *Session) ApplyAddress(r geocode.Result) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.Postcode != "" {
		s.fields.Postal = format.OnlyDigitsMax(r.Postcode, 5)
	}
	switch {
	case r.City != "" && r.Context != "":
		s.fields.Location = r.City + " — " + r.Context
	case r.City != "":
		s.fields.Location = r.City
	default:
		s.fields.Location = r.Label
	}

	query := r.Postcode
	if r.City != "" {
		if query != "" {
			query += " "
		}
		query += r.City
	}
	s.fields.CpQuery = query
	s.results = nil
	s.search.Cancel()
	s.touchedAt = s.now()
	return s.snapshotLocked()
}

// Next advances one step when the active step is ready; otherwise the index
// is unchanged and ok is false. The index clamps at the final step.
func (s *Session) Next() (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.autoAdvance.Cancel()
	if !ready(Steps[s.stepIndex].Key, &s.fields) {
		return s.snapshotLocked(), false
	}
	if s.stepIndex < len(Steps)-1 {
		s.stepIndex++
	}
	s.touchedAt = s.now()
	return s.snapshotLocked(), true
}

// Prev always succeeds, clamped at the first step. No validation applies on
// the way back.
func (s *Session) Prev() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.autoAdvance.Cancel()
	if s.stepIndex > 0 {
		s.stepIndex--
	}
	s.touchedAt = s.now()
	return s.snapshotLocked()
}

// FieldValues returns a copy of the current field values.
func (s *Session) FieldValues() Fields {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fields
}

// OnReviewStep reports whether the session reached the terminal step.
func (s *Session) OnReviewStep() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Steps[s.stepIndex].Key == StepReview
}

// StartCooldown records a server-issued retry-after so later submit attempts
// are blocked until it elapses.
func (s *Session) StartCooldown(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	until := s.now().Add(d)
	if until.After(s.cooldownUntil) {
		s.cooldownUntil = until
	}
}

// MarkSubmitAttempt records the moment a submission passed the dwell gate, so
// an immediate retry lands in the throttle window.
func (s *Session) MarkSubmitAttempt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSubmit = s.now()
}
