// Package reviewstate implements per-direction review state persistence
// using PostgreSQL.
package reviewstate

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/myenglish-practice/internal/adapter/postgres"
	"github.com/heartmarshall/myenglish-practice/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const upsertSuffix = `ON CONFLICT (word_id, direction) DO UPDATE SET
	ease_factor    = EXCLUDED.ease_factor,
	interval_days  = EXCLUDED.interval_days,
	repetitions    = EXCLUDED.repetitions,
	next_review_at = EXCLUDED.next_review_at,
	last_review_at = EXCLUDED.last_review_at,
	updated_at     = now()`

// Repo provides review state persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review state repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByWordIDs returns every stored state of the given words.
// Words never answered have no rows; an empty input returns an empty slice.
func (r *Repo) GetByWordIDs(ctx context.Context, wordIDs []uuid.UUID) ([]domain.ReviewStateRecord, error) {
	if len(wordIDs) == 0 {
		return []domain.ReviewStateRecord{}, nil
	}

	query := psql.Select(
		"word_id", "direction", "ease_factor", "interval_days", "repetitions",
		"next_review_at", "last_review_at", "updated_at",
	).
		From("review_states").
		Where(squirrel.Eq{"word_id": wordIDs}).
		OrderBy("word_id", "direction")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get review states: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("get review states: %w", err)
	}
	defer rows.Close()

	records := make([]domain.ReviewStateRecord, 0, len(wordIDs))
	for rows.Next() {
		var (
			rec domain.ReviewStateRecord
			dir string
		)
		if err := rows.Scan(
			&rec.WordID, &dir, &rec.State.EaseFactor, &rec.State.Interval, &rec.State.Repetitions,
			&rec.State.NextReview, &rec.State.LastReview, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan review state: %w", err)
		}
		rec.Direction = domain.Direction(dir)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get review states: %w", err)
	}

	return records, nil
}

// Put stores the state of a word in one direction, replacing any previous
// value. Writing the same state twice leaves the same row.
// Returns domain.ErrNotFound if the word no longer exists.
func (r *Repo) Put(ctx context.Context, wordID uuid.UUID, dir domain.Direction, state domain.ReviewState) error {
	query := psql.Insert("review_states").
		Columns("word_id", "direction", "ease_factor", "interval_days", "repetitions", "next_review_at", "last_review_at").
		Values(wordID, string(dir), state.EaseFactor, state.Interval, state.Repetitions, state.NextReview, state.LastReview).
		Suffix(upsertSuffix)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build put review state: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "review_state", wordID)
	}

	return nil
}
