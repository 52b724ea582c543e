package domain

import (
	"math"
	"time"
)

const (
	// DefaultEaseFactor is the ease factor of a word that was never answered.
	DefaultEaseFactor = 2.5
	// MinEaseFactor is the floor the ease factor never drops below.
	MinEaseFactor = 1.3
	// MinQuality and MaxQuality bound the recall-quality scale.
	MinQuality = 0
	MaxQuality = 5
	// PassingQuality is the lowest quality that counts as a qualifying answer.
	PassingQuality = 3
)

// ReviewState is the scheduling record of one word in one direction.
//
// Interval is measured in days and may be fractional (0.021 ≈ 30 minutes).
// A nil NextReview means the word is due immediately.
type ReviewState struct {
	EaseFactor  float64
	Interval    float64
	Repetitions int
	NextReview  *time.Time
	LastReview  *time.Time
}

// DefaultReviewState returns the state of a word never answered in a direction.
func DefaultReviewState() ReviewState {
	return ReviewState{
		EaseFactor:  DefaultEaseFactor,
		Interval:    0,
		Repetitions: 0,
	}
}

// IsDue reports whether the word should be presented at the given time.
func (s ReviewState) IsDue(now time.Time) bool {
	if s.NextReview == nil {
		return true
	}
	return !s.NextReview.After(now)
}

// Normalize validates a state obtained from outside the algorithm and clamps
// the ease factor up to MinEaseFactor. Negative or non-finite values are rejected.
func (s ReviewState) Normalize() (ReviewState, error) {
	var errs []FieldError

	if math.IsNaN(s.EaseFactor) || math.IsInf(s.EaseFactor, 0) {
		errs = append(errs, FieldError{Field: "ease_factor", Message: "must be a finite number"})
	}
	if math.IsNaN(s.Interval) || math.IsInf(s.Interval, 0) || s.Interval < 0 {
		errs = append(errs, FieldError{Field: "interval", Message: "must be a finite number >= 0"})
	}
	if s.Repetitions < 0 {
		errs = append(errs, FieldError{Field: "repetitions", Message: "must be >= 0"})
	}
	if len(errs) > 0 {
		return ReviewState{}, NewValidationErrors(errs)
	}

	if s.EaseFactor < MinEaseFactor {
		s.EaseFactor = MinEaseFactor
	}
	return s, nil
}

// Clone returns a deep copy; the timestamps are not shared with the receiver.
func (s ReviewState) Clone() ReviewState {
	if s.NextReview != nil {
		t := *s.NextReview
		s.NextReview = &t
	}
	if s.LastReview != nil {
		t := *s.LastReview
		s.LastReview = &t
	}
	return s
}

// ReviewStates holds the per-direction states of a word.
// A missing key means the word was never answered in that direction.
type ReviewStates map[Direction]ReviewState

// For returns the state for a direction, falling back to the defaults.
func (rs ReviewStates) For(dir Direction) ReviewState {
	if s, ok := rs[dir]; ok {
		return s
	}
	return DefaultReviewState()
}

// Clone returns a deep copy of the map.
func (rs ReviewStates) Clone() ReviewStates {
	if rs == nil {
		return nil
	}
	out := make(ReviewStates, len(rs))
	for dir, s := range rs {
		out[dir] = s.Clone()
	}
	return out
}
