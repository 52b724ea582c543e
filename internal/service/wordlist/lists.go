package wordlist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-practice/internal/domain"
	"github.com/heartmarshall/myenglish-practice/pkg/ctxutil"
)

// CreateList creates a new list for the current user.
func (s *Service) CreateList(ctx context.Context, input CreateListInput) (*domain.List, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	list, err := s.lists.CreateList(ctx, domain.List{
		ID:     uuid.New(),
		UserID: userID,
		Name:   strings.TrimSpace(input.Name),
	})
	if err != nil {
		return nil, fmt.Errorf("create list: %w", err)
	}

	s.log.InfoContext(ctx, "list created",
		slog.String("user_id", userID.String()),
		slog.String("list_id", list.ID.String()),
	)

	return list, nil
}

// ListLists returns all lists of the current user with their word counts.
func (s *Service) ListLists(ctx context.Context) ([]domain.List, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	lists, err := s.lists.ListLists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}

	return lists, nil
}

// DeleteList deletes a list with all its words and their review states.
// Live practice sessions are told about every removed word.
func (s *Service) DeleteList(ctx context.Context, listID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	var removed []uuid.UUID
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.lists.GetList(ctx, userID, listID); err != nil {
			return fmt.Errorf("get list: %w", err)
		}

		words, err := s.lists.ListWords(ctx, listID)
		if err != nil {
			return fmt.Errorf("list words: %w", err)
		}

		if err := s.lists.DeleteList(ctx, userID, listID); err != nil {
			return fmt.Errorf("delete list: %w", err)
		}

		removed = make([]uuid.UUID, len(words))
		for i, w := range words {
			removed[i] = w.ID
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notifyDeleted(ctx, userID, removed...)

	s.log.InfoContext(ctx, "list deleted",
		slog.String("user_id", userID.String()),
		slog.String("list_id", listID.String()),
		slog.Int("words", len(removed)),
	)

	return nil
}
