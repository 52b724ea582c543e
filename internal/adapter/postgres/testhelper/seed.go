package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/myenglish-practice/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedList creates a word list for a fresh user id.
func SeedList(t *testing.T, pool *pgxpool.Pool) domain.List {
	t.Helper()
	return SeedListForUser(t, pool, uuid.New())
}

// SeedListForUser creates a word list owned by userID.
func SeedListForUser(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.List {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	list := domain.List{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "list-" + uniqueSuffix(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO word_lists (id, user_id, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		list.ID, list.UserID, list.Name, list.CreatedAt, list.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedList insert: %v", err)
	}

	return list
}

// SeedWord creates a word in the given list.
func SeedWord(t *testing.T, pool *pgxpool.Pool, listID uuid.UUID) domain.Word {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	word := domain.Word{
		ID:          uuid.New(),
		ListID:      listID,
		Text:        "Word " + suffix,
		Translation: "translation " + suffix,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	word.TextNormalized = domain.NormalizeText(word.Text)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO words (id, list_id, text, text_normalized, translation, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		word.ID, word.ListID, word.Text, word.TextNormalized, word.Translation, word.CreatedAt, word.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert: %v", err)
	}

	return word
}
