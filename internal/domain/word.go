package domain

import (
	"time"

	"github.com/google/uuid"
)

// List is a user's named collection of vocabulary pairs.
type List struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	WordCount int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Word is one vocabulary pair inside a list.
type Word struct {
	ID             uuid.UUID
	ListID         uuid.UUID
	Text           string
	TextNormalized string
	Translation    string
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	States ReviewStates
}

// IsDue reports whether the word is due in the given direction.
//   - No state for the direction: due.
//   - State without NextReview: due.
//   - Otherwise due when NextReview <= now.
func (w *Word) IsDue(dir Direction, now time.Time) bool {
	s, ok := w.States[dir]
	if !ok {
		return true
	}
	return s.IsDue(now)
}

// PracticeItem is a word captured into a practice snapshot, tagged with the
// list it was drawn from.
type PracticeItem struct {
	Word         Word
	SourceListID uuid.UUID
}

// Clone returns a copy whose review states are not shared with the receiver.
func (p PracticeItem) Clone() PracticeItem {
	p.Word.States = p.Word.States.Clone()
	return p
}

// ReviewStateRecord is the persisted form of a ReviewState.
type ReviewStateRecord struct {
	WordID    uuid.UUID
	Direction Direction
	State     ReviewState
	UpdatedAt time.Time
}
