// Package wordlist manages a user's vocabulary lists and the words in them.
package wordlist

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-practice/internal/domain"
)

// DefaultMaxWordsPerList is used when the service is built with a non-positive cap.
const DefaultMaxWordsPerList = 5000

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type listRepo interface {
	CreateList(ctx context.Context, list domain.List) (*domain.List, error)
	GetList(ctx context.Context, userID, listID uuid.UUID) (*domain.List, error)
	ListLists(ctx context.Context, userID uuid.UUID) ([]domain.List, error)
	DeleteList(ctx context.Context, userID, listID uuid.UUID) error
	CreateWord(ctx context.Context, word domain.Word) (*domain.Word, error)
	GetWord(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error)
	ListWords(ctx context.Context, listID uuid.UUID) ([]domain.Word, error)
	CountWords(ctx context.Context, listID uuid.UUID) (int, error)
	DeleteWord(ctx context.Context, userID, wordID uuid.UUID) error
}

type stateReader interface {
	GetByWordIDs(ctx context.Context, wordIDs []uuid.UUID) ([]domain.ReviewStateRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// deleteNotifier is told about every deleted word so live practice
// sessions can drop it.
type deleteNotifier interface {
	WordDeleted(ctx context.Context, userID, wordID uuid.UUID)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service provides word list management operations.
type Service struct {
	log      *slog.Logger
	lists    listRepo
	states   stateReader
	tx       txManager
	notifier deleteNotifier
	maxWords int
}

// NewService creates a new word list service. notifier may be nil.
func NewService(
	log *slog.Logger,
	lists listRepo,
	states stateReader,
	tx txManager,
	notifier deleteNotifier,
	maxWordsPerList int,
) *Service {
	if maxWordsPerList <= 0 {
		maxWordsPerList = DefaultMaxWordsPerList
	}
	return &Service{
		log:      log.With("service", "wordlist"),
		lists:    lists,
		states:   states,
		tx:       tx,
		notifier: notifier,
		maxWords: maxWordsPerList,
	}
}

func (s *Service) notifyDeleted(ctx context.Context, userID uuid.UUID, wordIDs ...uuid.UUID) {
	if s.notifier == nil {
		return
	}
	for _, id := range wordIDs {
		s.notifier.WordDeleted(ctx, userID, id)
	}
}
