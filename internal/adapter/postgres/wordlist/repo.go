// Package wordlist implements the word list and word repository using
// PostgreSQL. Every read and delete is scoped by the owning user.
package wordlist

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/myenglish-practice/internal/adapter/postgres"
	"github.com/heartmarshall/myenglish-practice/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var listColumns = []string{
	"l.id", "l.user_id", "l.name", "l.created_at", "l.updated_at",
	"(SELECT count(*) FROM words w WHERE w.list_id = l.id) AS word_count",
}

var wordColumns = []string{
	"id", "list_id", "text", "text_normalized", "translation", "notes", "created_at", "updated_at",
}

// Repo provides word list persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new word list repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Lists
// ---------------------------------------------------------------------------

// CreateList inserts a list and returns it with server-side timestamps.
// Returns domain.ErrAlreadyExists if the user already has a list with that name.
func (r *Repo) CreateList(ctx context.Context, list domain.List) (*domain.List, error) {
	query := psql.Insert("word_lists").
		Columns("id", "user_id", "name").
		Values(list.ID, list.UserID, list.Name).
		Suffix("RETURNING created_at, updated_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create list: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	if err := q.QueryRow(ctx, sql, args...).Scan(&list.CreatedAt, &list.UpdatedAt); err != nil {
		return nil, postgres.MapError(err, "word_list", list.ID)
	}

	return &list, nil
}

// GetList returns a list owned by userID, with its word count.
// Returns domain.ErrNotFound if the list does not exist or belongs to another user.
func (r *Repo) GetList(ctx context.Context, userID, listID uuid.UUID) (*domain.List, error) {
	query := psql.Select(listColumns...).
		From("word_lists l").
		Where(squirrel.Eq{"l.id": listID, "l.user_id": userID})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get list: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	list, err := scanList(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "word_list", listID)
	}

	return &list, nil
}

// ListLists returns all lists of a user ordered by name.
// Returns an empty slice (not nil) when the user has no lists.
func (r *Repo) ListLists(ctx context.Context, userID uuid.UUID) ([]domain.List, error) {
	query := psql.Select(listColumns...).
		From("word_lists l").
		Where(squirrel.Eq{"l.user_id": userID}).
		OrderBy("l.name ASC", "l.id ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list lists: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}
	defer rows.Close()

	lists := make([]domain.List, 0)
	for rows.Next() {
		l, err := scanList(rows)
		if err != nil {
			return nil, fmt.Errorf("scan list: %w", err)
		}
		lists = append(lists, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}

	return lists, nil
}

// DeleteList removes a list owned by userID. Its words and review states
// are removed by cascade.
func (r *Repo) DeleteList(ctx context.Context, userID, listID uuid.UUID) error {
	query := psql.Delete("word_lists").
		Where(squirrel.Eq{"id": listID, "user_id": userID})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build delete list: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "word_list", listID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word_list %s: %w", listID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Words
// ---------------------------------------------------------------------------

// CreateWord inserts a word. Returns domain.ErrAlreadyExists when the list
// already holds the same normalized text.
func (r *Repo) CreateWord(ctx context.Context, word domain.Word) (*domain.Word, error) {
	query := psql.Insert("words").
		Columns("id", "list_id", "text", "text_normalized", "translation", "notes").
		Values(word.ID, word.ListID, word.Text, word.TextNormalized, word.Translation, word.Notes).
		Suffix("RETURNING created_at, updated_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create word: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	if err := q.QueryRow(ctx, sql, args...).Scan(&word.CreatedAt, &word.UpdatedAt); err != nil {
		return nil, postgres.MapError(err, "word", word.ID)
	}

	return &word, nil
}

// GetWord returns a word whose list is owned by userID.
func (r *Repo) GetWord(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error) {
	query := psql.Select(wordColumns...).
		From("words").
		Where(squirrel.Eq{"id": wordID}).
		Where("list_id IN (SELECT id FROM word_lists WHERE user_id = ?)", userID)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get word: %w", err)
	}

	w, err := scanWord(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "word", wordID)
	}

	return &w, nil
}

// ListWords returns the words of a list in insertion order.
// Returns an empty slice (not nil) when the list is empty.
func (r *Repo) ListWords(ctx context.Context, listID uuid.UUID) ([]domain.Word, error) {
	query := psql.Select(wordColumns...).
		From("words").
		Where(squirrel.Eq{"list_id": listID}).
		OrderBy("created_at ASC", "id ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list words: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	defer rows.Close()

	words := make([]domain.Word, 0)
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}

	return words, nil
}

// CountWords returns the number of words in a list.
func (r *Repo) CountWords(ctx context.Context, listID uuid.UUID) (int, error) {
	query := psql.Select("count(*)").
		From("words").
		Where(squirrel.Eq{"list_id": listID})

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count words: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}

	return n, nil
}

// DeleteWord removes a word whose list is owned by userID.
func (r *Repo) DeleteWord(ctx context.Context, userID, wordID uuid.UUID) error {
	query := psql.Delete("words").
		Where(squirrel.Eq{"id": wordID}).
		Where("list_id IN (SELECT id FROM word_lists WHERE user_id = ?)", userID)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build delete word: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "word", wordID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", wordID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanList(row pgx.Row) (domain.List, error) {
	var l domain.List
	err := row.Scan(&l.ID, &l.UserID, &l.Name, &l.CreatedAt, &l.UpdatedAt, &l.WordCount)
	return l, err
}

func scanWord(row pgx.Row) (domain.Word, error) {
	var w domain.Word
	err := row.Scan(&w.ID, &w.ListID, &w.Text, &w.TextNormalized, &w.Translation, &w.Notes, &w.CreatedAt, &w.UpdatedAt)
	return w, err
}
