package practice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-practice/internal/domain"
	"github.com/heartmarshall/myenglish-practice/internal/service/study"
	"github.com/heartmarshall/myenglish-practice/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type listRepo interface {
	GetList(ctx context.Context, userID, listID uuid.UUID) (*domain.List, error)
	ListLists(ctx context.Context, userID uuid.UUID) ([]domain.List, error)
	ListWords(ctx context.Context, listID uuid.UUID) ([]domain.Word, error)
}

type stateReader interface {
	GetByWordIDs(ctx context.Context, wordIDs []uuid.UUID) ([]domain.ReviewStateRecord, error)
}

type stateWriter interface {
	Put(ctx context.Context, wordID uuid.UUID, dir domain.Direction, state domain.ReviewState) error
}

type stateRepo interface {
	stateReader
	stateWriter
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// SessionView is the read model of a session returned to callers.
type SessionView struct {
	ID       uuid.UUID
	Progress domain.SessionProgress
	Current  *domain.PracticeItem
}

// Service manages practice sessions.
type Service struct {
	log      *slog.Logger
	lists    listRepo
	states   stateRepo
	registry *Registry
	clock    Clock
	shuffle  Shuffler
	srs      domain.SRSConfig
}

// NewService creates a new practice service.
func NewService(
	log *slog.Logger,
	lists listRepo,
	states stateRepo,
	registry *Registry,
	srsConfig domain.SRSConfig,
	clock Clock,
	shuffle Shuffler,
) *Service {
	if clock == nil {
		clock = SystemClock{}
	}
	if shuffle == nil {
		shuffle = RandomShuffle
	}
	return &Service{
		log:      log.With("service", "practice"),
		lists:    lists,
		states:   states,
		registry: registry,
		clock:    clock,
		shuffle:  shuffle,
		srs:      srsConfig,
	}
}

// StartSession creates a session over one list or all lists of the user and
// captures its snapshot.
func (s *Service) StartSession(ctx context.Context, input StartSessionInput) (SessionView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return SessionView{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return SessionView{}, err
	}

	var source ItemSource
	if input.AllLists {
		source = NewAllListsSource(s.lists, s.states, userID)
	} else {
		source = NewListSource(s.lists, s.states, userID, *input.ListID)
	}

	session := NewSession(SessionConfig{
		UserID:  userID,
		Source:  source,
		Store:   s.states,
		Clock:   s.clock,
		Shuffle: s.shuffle,
		SRS:     s.srs,
		Log:     s.log,
	})
	if err := session.Start(ctx, input.Direction); err != nil {
		return SessionView{}, fmt.Errorf("start session: %w", err)
	}
	s.registry.Add(session)

	s.log.InfoContext(ctx, "session created",
		slog.String("user_id", userID.String()),
		slog.String("session_id", session.ID().String()),
		slog.Bool("all_lists", input.AllLists),
	)
	return session.View(), nil
}

// GetSession returns the current view of a session.
func (s *Service) GetSession(ctx context.Context, sessionID uuid.UUID) (SessionView, error) {
	session, err := s.session(ctx, sessionID)
	if err != nil {
		return SessionView{}, err
	}
	return session.View(), nil
}

// Answer scores the current word. A *PersistError is returned together with a
// valid result when the new state could not be stored.
func (s *Service) Answer(ctx context.Context, input AnswerInput) (AnswerResult, SessionView, error) {
	if err := input.Validate(); err != nil {
		return AnswerResult{}, SessionView{}, err
	}
	session, err := s.session(ctx, input.SessionID)
	if err != nil {
		return AnswerResult{}, SessionView{}, err
	}

	result, err := session.Answer(ctx, input.Difficulty)
	if err != nil && !errors.Is(err, ErrPersistFailed) {
		return AnswerResult{}, SessionView{}, err
	}
	return result, session.View(), err
}

// Advance moves the session to its next word; skip allows leaving the
// current word unanswered.
func (s *Service) Advance(ctx context.Context, sessionID uuid.UUID, skip bool) (SessionView, error) {
	session, err := s.session(ctx, sessionID)
	if err != nil {
		return SessionView{}, err
	}
	if err := session.Advance(skip); err != nil {
		return SessionView{}, err
	}
	return session.View(), nil
}

// RemoveWord drops a word from one session.
func (s *Service) RemoveWord(ctx context.Context, sessionID, wordID uuid.UUID) (SessionView, error) {
	session, err := s.session(ctx, sessionID)
	if err != nil {
		return SessionView{}, err
	}
	if !session.Remove(wordID) {
		return SessionView{}, fmt.Errorf("remove word %s: %w", wordID, domain.ErrNotFound)
	}
	return session.View(), nil
}

// Restart re-captures the snapshot in the current direction.
func (s *Service) Restart(ctx context.Context, sessionID uuid.UUID) (SessionView, error) {
	session, err := s.session(ctx, sessionID)
	if err != nil {
		return SessionView{}, err
	}
	if err := session.Restart(ctx); err != nil {
		return SessionView{}, fmt.Errorf("restart session: %w", err)
	}
	return session.View(), nil
}

// ChangeDirection restarts the session in another direction.
func (s *Service) ChangeDirection(ctx context.Context, input ChangeDirectionInput) (SessionView, error) {
	if err := input.Validate(); err != nil {
		return SessionView{}, err
	}
	session, err := s.session(ctx, input.SessionID)
	if err != nil {
		return SessionView{}, err
	}
	if err := session.ChangeDirection(ctx, input.Direction); err != nil {
		return SessionView{}, fmt.Errorf("change direction: %w", err)
	}
	return session.View(), nil
}

// Preview estimates the reschedule interval of every difficulty for the
// current word.
func (s *Service) Preview(ctx context.Context, sessionID uuid.UUID) ([]study.Estimate, error) {
	session, err := s.session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return session.Preview()
}

// CloseSession drops a session.
func (s *Service) CloseSession(ctx context.Context, sessionID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := s.registry.Remove(userID, sessionID); err != nil {
		return fmt.Errorf("close session %s: %w", sessionID, err)
	}
	return nil
}

// WordDeleted removes a deleted word from every live session of the user.
func (s *Service) WordDeleted(ctx context.Context, userID, wordID uuid.UUID) {
	if n := s.registry.NotifyWordDeleted(userID, wordID); n > 0 {
		s.log.InfoContext(ctx, "word removed from live sessions",
			slog.String("word_id", wordID.String()),
			slog.Int("sessions", n),
		)
	}
}

func (s *Service) session(ctx context.Context, sessionID uuid.UUID) (*Session, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	session, err := s.registry.Get(userID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", sessionID, err)
	}
	return session, nil
}
