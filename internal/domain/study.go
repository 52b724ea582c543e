package domain

import "time"

// SRSConfig holds the scheduling constants of the interval algorithm (pure domain type).
//
// FirstStepIntervals and SecondStepIntervals are day fractions indexed by
// quality tier: [0] for quality 3, [1] for quality 4, [2] for quality 5.
type SRSConfig struct {
	FailedRetryDelay    time.Duration
	FirstStepIntervals  [3]float64
	SecondStepIntervals [3]float64
}

// DefaultSRSConfig returns the stock scheduling constants.
func DefaultSRSConfig() SRSConfig {
	return SRSConfig{
		FailedRetryDelay:    time.Minute,
		FirstStepIntervals:  [3]float64{0.021, 0.042, 0.083},
		SecondStepIntervals: [3]float64{0.25, 0.5, 1.0},
	}
}

// SessionProgress is a read-only view of a practice session's position.
type SessionProgress struct {
	Status    SessionStatus
	Direction Direction
	Total     int
	Position  int
	Answered  int
	Remaining int
}
