package domain

// Direction is the quiz orientation a review applies to.
// Each direction carries its own independent ReviewState.
type Direction string

const (
	DirectionSourceToTarget Direction = "SOURCE_TO_TARGET"
	DirectionTargetToSource Direction = "TARGET_TO_SOURCE"
)

// Directions lists every supported direction in a stable order.
var Directions = []Direction{DirectionSourceToTarget, DirectionTargetToSource}

func (d Direction) String() string { return string(d) }

func (d Direction) IsValid() bool {
	switch d {
	case DirectionSourceToTarget, DirectionTargetToSource:
		return true
	}
	return false
}

// Opposite returns the other quiz orientation.
func (d Direction) Opposite() Direction {
	if d == DirectionSourceToTarget {
		return DirectionTargetToSource
	}
	return DirectionSourceToTarget
}

// Difficulty is the learner's self-assessed recall difficulty.
type Difficulty string

const (
	DifficultyHard    Difficulty = "HARD"
	DifficultyOK      Difficulty = "OK"
	DifficultyGood    Difficulty = "GOOD"
	DifficultyPerfect Difficulty = "PERFECT"
)

// Difficulties lists every difficulty from most to least severe.
var Difficulties = []Difficulty{DifficultyHard, DifficultyOK, DifficultyGood, DifficultyPerfect}

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyHard, DifficultyOK, DifficultyGood, DifficultyPerfect:
		return true
	}
	return false
}

// Quality maps the difficulty onto the 0..5 recall-quality scale.
// Unknown values map to 0 (complete blackout).
func (d Difficulty) Quality() int {
	switch d {
	case DifficultyHard:
		return 1
	case DifficultyOK:
		return 3
	case DifficultyGood:
		return 4
	case DifficultyPerfect:
		return 5
	}
	return 0
}

// SessionStatus is the life-cycle state of a practice session.
type SessionStatus string

const (
	SessionStatusUninitialized SessionStatus = "UNINITIALIZED"
	SessionStatusActive        SessionStatus = "ACTIVE"
	SessionStatusComplete      SessionStatus = "COMPLETE"
)

func (s SessionStatus) String() string { return string(s) }

func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionStatusUninitialized, SessionStatusActive, SessionStatusComplete:
		return true
	}
	return false
}
