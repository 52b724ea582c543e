package wordlist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-practice/internal/domain"
	"github.com/heartmarshall/myenglish-practice/internal/loader"
	"github.com/heartmarshall/myenglish-practice/pkg/ctxutil"
)

// AddWord adds a word to a list owned by the current user.
// A word whose normalized text is already in the list returns ErrAlreadyExists.
func (s *Service) AddWord(ctx context.Context, input AddWordInput) (*domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(input.Text)
	word := domain.Word{
		ID:             uuid.New(),
		ListID:         input.ListID,
		Text:           text,
		TextNormalized: domain.NormalizeText(text),
		Translation:    strings.TrimSpace(input.Translation),
		Notes:          trimOrNil(input.Notes),
	}

	var created *domain.Word
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.lists.GetList(ctx, userID, input.ListID); err != nil {
			return fmt.Errorf("get list: %w", err)
		}

		count, err := s.lists.CountWords(ctx, input.ListID)
		if err != nil {
			return fmt.Errorf("count words: %w", err)
		}
		if count >= s.maxWords {
			return domain.NewValidationError("list_id", fmt.Sprintf("list is full (max %d words)", s.maxWords))
		}

		created, err = s.lists.CreateWord(ctx, word)
		if err != nil {
			return fmt.Errorf("create word: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "word added",
		slog.String("user_id", userID.String()),
		slog.String("list_id", input.ListID.String()),
		slog.String("word_id", created.ID.String()),
	)

	return created, nil
}

// ListWords returns the words of a list with their review states attached.
func (s *Service) ListWords(ctx context.Context, listID uuid.UUID) ([]domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.lists.GetList(ctx, userID, listID); err != nil {
		return nil, fmt.Errorf("get list: %w", err)
	}

	words, err := s.lists.ListWords(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}

	ids := make([]uuid.UUID, len(words))
	for i, w := range words {
		ids[i] = w.ID
	}

	states, err := loader.NewLoaders(s.states).ReviewStates(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range words {
		words[i].States = states[words[i].ID]
	}

	return words, nil
}

// DeleteWord deletes a word and removes it from the user's live sessions.
func (s *Service) DeleteWord(ctx context.Context, wordID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.lists.DeleteWord(ctx, userID, wordID); err != nil {
		return fmt.Errorf("delete word: %w", err)
	}

	s.notifyDeleted(ctx, userID, wordID)

	s.log.InfoContext(ctx, "word deleted",
		slog.String("user_id", userID.String()),
		slog.String("word_id", wordID.String()),
	)

	return nil
}
