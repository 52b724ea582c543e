// Package loader batches review-state reads. Practice item sources resolve
// the states of many words (possibly from several lists loaded in parallel)
// through one loader, which coalesces them into a single repository call.
package loader

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/myenglish-practice/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type reviewStateRepo interface {
	GetByWordIDs(ctx context.Context, wordIDs []uuid.UUID) ([]domain.ReviewStateRecord, error)
}

// Loaders holds the DataLoader instances. Loaders cache results, so a new
// set must be created for every read that needs fresh states.
type Loaders struct {
	StatesByWordID *dataloader.Loader[uuid.UUID, domain.ReviewStates]
}

// NewLoaders creates loaders backed by the given repository.
func NewLoaders(states reviewStateRepo) *Loaders {
	return &Loaders{
		StatesByWordID: newLoader(newStatesBatchFn(states)),
	}
}

// ReviewStates resolves the states of the given words, keyed by word id.
// Words without any stored state map to an empty, non-nil ReviewStates.
func (l *Loaders) ReviewStates(ctx context.Context, wordIDs []uuid.UUID) (map[uuid.UUID]domain.ReviewStates, error) {
	if len(wordIDs) == 0 {
		return map[uuid.UUID]domain.ReviewStates{}, nil
	}

	states, errs := l.StatesByWordID.LoadMany(ctx, wordIDs)()
	out := make(map[uuid.UUID]domain.ReviewStates, len(wordIDs))
	for i, id := range wordIDs {
		if len(errs) > i && errs[i] != nil {
			return nil, fmt.Errorf("load review states: %w", errs[i])
		}
		out[id] = states[i]
	}
	return out, nil
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

func newStatesBatchFn(repo reviewStateRepo) dataloader.BatchFunc[uuid.UUID, domain.ReviewStates] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[domain.ReviewStates] {
		records, err := repo.GetByWordIDs(ctx, keys)
		if err != nil {
			return errorResults[domain.ReviewStates](len(keys), err)
		}

		grouped := make(map[uuid.UUID]domain.ReviewStates, len(keys))
		for _, r := range records {
			if grouped[r.WordID] == nil {
				grouped[r.WordID] = make(domain.ReviewStates, len(domain.Directions))
			}
			grouped[r.WordID][r.Direction] = r.State
		}

		return mapResults(keys, grouped, emptyStates)
	}
}

// errorResults returns n results all carrying the same error.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func emptyStates() domain.ReviewStates {
	return domain.ReviewStates{}
}
