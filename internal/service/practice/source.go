package practice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/myenglish-practice/internal/domain"
	"github.com/heartmarshall/myenglish-practice/internal/loader"
)

// maxConcurrentLists bounds the number of lists read in parallel by AllListsSource.
const maxConcurrentLists = 4

// ItemSource produces the candidate items of a practice session.
type ItemSource interface {
	Items(ctx context.Context) ([]domain.PracticeItem, error)
}

// ListSource yields the words of a single list.
type ListSource struct {
	lists  listRepo
	states stateReader
	userID uuid.UUID
	listID uuid.UUID
}

// NewListSource creates a source over one list owned by userID.
func NewListSource(lists listRepo, states stateReader, userID, listID uuid.UUID) *ListSource {
	return &ListSource{lists: lists, states: states, userID: userID, listID: listID}
}

func (s *ListSource) Items(ctx context.Context) ([]domain.PracticeItem, error) {
	list, err := s.lists.GetList(ctx, s.userID, s.listID)
	if err != nil {
		return nil, fmt.Errorf("get list: %w", err)
	}

	return loadListItems(ctx, s.lists, loader.NewLoaders(s.states), list.ID)
}

// AllListsSource yields the words of every list of a user, each tagged with
// the list it belongs to.
type AllListsSource struct {
	lists  listRepo
	states stateReader
	userID uuid.UUID
}

// NewAllListsSource creates a source over all lists owned by userID.
func NewAllListsSource(lists listRepo, states stateReader, userID uuid.UUID) *AllListsSource {
	return &AllListsSource{lists: lists, states: states, userID: userID}
}

func (s *AllListsSource) Items(ctx context.Context) ([]domain.PracticeItem, error) {
	lists, err := s.lists.ListLists(ctx, s.userID)
	if err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}

	// One loader for all lists so review-state reads are batched together.
	loaders := loader.NewLoaders(s.states)
	perList := make([][]domain.PracticeItem, len(lists))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLists)
	for i, l := range lists {
		g.Go(func() error {
			items, err := loadListItems(gctx, s.lists, loaders, l.ID)
			if err != nil {
				return err
			}
			perList[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var total int
	for _, items := range perList {
		total += len(items)
	}
	out := make([]domain.PracticeItem, 0, total)
	for _, items := range perList {
		out = append(out, items...)
	}
	return out, nil
}

func loadListItems(ctx context.Context, lists listRepo, loaders *loader.Loaders, listID uuid.UUID) ([]domain.PracticeItem, error) {
	words, err := lists.ListWords(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("list words of %s: %w", listID, err)
	}
	if len(words) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, len(words))
	for i, w := range words {
		ids[i] = w.ID
	}
	states, err := loaders.ReviewStates(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]domain.PracticeItem, len(words))
	for i, w := range words {
		w.States = states[w.ID]
		items[i] = domain.PracticeItem{Word: w, SourceListID: listID}
	}
	return items, nil
}
