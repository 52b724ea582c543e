package practice

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-practice/internal/domain"
	"github.com/heartmarshall/myenglish-practice/internal/service/study"
)

// AnswerResult describes the outcome of one answer.
type AnswerResult struct {
	WordID     uuid.UUID
	Direction  domain.Direction
	Difficulty domain.Difficulty
	State      domain.ReviewState
	Interval   time.Duration
	Label      string
}

// Session walks a learner through a fixed snapshot of due words.
//
// The snapshot is captured once by Start and is never re-filtered against
// live due-ness; only explicit removals shrink it. A Session is safe for
// concurrent use, but it is meant to be driven by one learner.
type Session struct {
	id     uuid.UUID
	userID uuid.UUID

	source  ItemSource
	store   stateWriter
	clock   Clock
	shuffle Shuffler
	srs     domain.SRSConfig
	log     *slog.Logger

	mu        sync.Mutex
	status    domain.SessionStatus
	direction domain.Direction
	items     []domain.PracticeItem
	cursor    int
	answered  bool
	answers   int
}

// SessionConfig carries the collaborators of a Session.
type SessionConfig struct {
	UserID  uuid.UUID
	Source  ItemSource
	Store   stateWriter
	Clock   Clock
	Shuffle Shuffler
	SRS     domain.SRSConfig
	Log     *slog.Logger
}

// NewSession creates an uninitialized session.
func NewSession(cfg SessionConfig) *Session {
	clock := cfg.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}

	id := uuid.New()
	return &Session{
		id:      id,
		userID:  cfg.UserID,
		source:  cfg.Source,
		store:   cfg.Store,
		clock:   clock,
		shuffle: cfg.Shuffle,
		srs:     cfg.SRS,
		log:     log.With(slog.String("session_id", id.String())),
		status:  domain.SessionStatusUninitialized,
	}
}

func (s *Session) ID() uuid.UUID     { return s.id }
func (s *Session) UserID() uuid.UUID { return s.userID }

// Start captures the snapshot of due items for the direction.
func (s *Session) Start(ctx context.Context, dir domain.Direction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != domain.SessionStatusUninitialized {
		return fmt.Errorf("start session: %w", domain.ErrConflict)
	}
	return s.start(ctx, dir)
}

// Restart discards the snapshot and captures a fresh one in the current
// direction. Already persisted answers are kept.
func (s *Session) Restart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == domain.SessionStatusUninitialized {
		return fmt.Errorf("restart session: %w", domain.ErrConflict)
	}
	return s.start(ctx, s.direction)
}

// ChangeDirection restarts the session in another direction.
func (s *Session) ChangeDirection(ctx context.Context, dir domain.Direction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == domain.SessionStatusUninitialized {
		return fmt.Errorf("change direction: %w", domain.ErrConflict)
	}
	return s.start(ctx, dir)
}

// start must be called with s.mu held. On failure the previous snapshot is kept.
func (s *Session) start(ctx context.Context, dir domain.Direction) error {
	if !dir.IsValid() {
		return domain.NewValidationError("direction", "must be SOURCE_TO_TARGET or TARGET_TO_SOURCE")
	}

	items, err := s.source.Items(ctx)
	if err != nil {
		return fmt.Errorf("load practice items: %w", err)
	}

	s.items = SelectDue(items, dir, s.clock.Now(), s.shuffle)
	s.direction = dir
	s.cursor = 0
	s.answers = 0
	s.answered = false
	s.status = domain.SessionStatusActive
	if len(s.items) == 0 {
		s.status = domain.SessionStatusComplete
	}

	s.log.InfoContext(ctx, "practice session started",
		slog.String("direction", dir.String()),
		slog.Int("candidates", len(items)),
		slog.Int("due", len(s.items)),
	)
	return nil
}

// Current returns the item under the cursor.
func (s *Session) Current() (domain.PracticeItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != domain.SessionStatusActive {
		return domain.PracticeItem{}, false
	}
	return s.items[s.cursor].Clone(), true
}

// Answer schedules the current item with the given difficulty, updates the
// snapshot and persists the new state. The cursor does not move.
//
// The snapshot is updated before the store is called and the session lock is
// not held during the write. If persisting fails the local update stands and
// a *PersistError is returned together with the result.
func (s *Session) Answer(ctx context.Context, difficulty domain.Difficulty) (AnswerResult, error) {
	result, err := s.answer(difficulty)
	if err != nil {
		return AnswerResult{}, err
	}

	if err := s.store.Put(ctx, result.WordID, result.Direction, result.State.Clone()); err != nil {
		s.log.ErrorContext(ctx, "persist review state",
			slog.String("word_id", result.WordID.String()),
			slog.String("direction", result.Direction.String()),
			slog.String("error", err.Error()),
		)
		return result, &PersistError{WordID: result.WordID, Direction: result.Direction, Err: err}
	}
	return result, nil
}

func (s *Session) answer(difficulty domain.Difficulty) (AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != domain.SessionStatusActive || s.answered {
		return AnswerResult{}, fmt.Errorf("answer: %w", domain.ErrConflict)
	}

	item := &s.items[s.cursor]
	out, err := study.Schedule(s.srs, item.Word.States.For(s.direction), difficulty, s.clock.Now())
	if err != nil {
		return AnswerResult{}, fmt.Errorf("answer: %w", err)
	}

	if item.Word.States == nil {
		item.Word.States = make(domain.ReviewStates, len(domain.Directions))
	}
	item.Word.States[s.direction] = out.State
	s.answered = true
	s.answers++

	return AnswerResult{
		WordID:     item.Word.ID,
		Direction:  s.direction,
		Difficulty: difficulty,
		State:      out.State.Clone(),
		Interval:   out.Interval,
		Label:      study.FormatInterval(out.Interval),
	}, nil
}

// Advance moves to the next item. Without skip the current item must have
// been answered.
func (s *Session) Advance(skip bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != domain.SessionStatusActive {
		return fmt.Errorf("advance: %w", domain.ErrConflict)
	}
	if !s.answered && !skip {
		return fmt.Errorf("advance: current word not answered: %w", domain.ErrConflict)
	}

	s.cursor++
	s.answered = false
	if s.cursor >= len(s.items) {
		s.status = domain.SessionStatusComplete
	}
	return nil
}

// Remove drops a word from the snapshot, keeping the current item current.
// It reports whether the word was present.
func (s *Session) Remove(wordID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.items {
		if s.items[i].Word.ID == wordID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	s.items = append(s.items[:idx], s.items[idx+1:]...)
	switch {
	case idx < s.cursor:
		s.cursor--
	case idx == s.cursor:
		s.answered = false
	}

	if s.status == domain.SessionStatusActive && s.cursor >= len(s.items) {
		s.status = domain.SessionStatusComplete
	}
	return true
}

// Progress returns a snapshot of the session position.
//
// Position is the 1-based index of the current item (0 before start,
// Total once complete). Remaining counts items not yet answered or skipped.
func (s *Session) Progress() domain.SessionProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress()
}

// View returns the progress and the current item read under one lock.
func (s *Session) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := SessionView{ID: s.id, Progress: s.progress()}
	if s.status == domain.SessionStatusActive {
		item := s.items[s.cursor].Clone()
		v.Current = &item
	}
	return v
}

// progress must be called with s.mu held.
func (s *Session) progress() domain.SessionProgress {
	p := domain.SessionProgress{
		Status:    s.status,
		Direction: s.direction,
		Total:     len(s.items),
		Answered:  s.answers,
	}

	switch s.status {
	case domain.SessionStatusActive:
		p.Position = s.cursor + 1
		p.Remaining = len(s.items) - s.cursor
		if s.answered {
			p.Remaining--
		}
	case domain.SessionStatusComplete:
		p.Position = len(s.items)
	}
	return p
}

// Preview estimates every difficulty for the current item.
func (s *Session) Preview() ([]study.Estimate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != domain.SessionStatusActive {
		return nil, fmt.Errorf("preview: %w", domain.ErrConflict)
	}
	return study.PreviewAll(s.srs, s.items[s.cursor].Word.States.For(s.direction))
}
