// Package postgres provides Postgres-backed implementations of the repositories.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/snipbin/snipbin/internal/domain"
	"github.com/snipbin/snipbin/internal/repository"
	"github.com/snipbin/snipbin/pkg/logger"
)

// SnippetRepository implements repository.SnippetRepository using Postgres.
type SnippetRepository struct {
	pool *pgxpool.Pool
}

// NewSnippetRepository creates a new Postgres-backed snippet repository.
func NewSnippetRepository(pool *pgxpool.Pool) *SnippetRepository {
	return &SnippetRepository{pool: pool}
}

// EnsureSchema creates required tables if they don't exist.
func (r *SnippetRepository) EnsureSchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS snippets (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL DEFAULT '',
    code TEXT NOT NULL,
    language TEXT NOT NULL,
    style TEXT NOT NULL,
    linenos BOOLEAN NOT NULL DEFAULT FALSE,
    owner_id TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_snippets_created_at ON snippets (created_at DESC);
CREATE INDEX IF NOT EXISTS idx_snippets_owner ON snippets (owner_id);
CREATE INDEX IF NOT EXISTS idx_snippets_language ON snippets (language);
`
	_, err := r.pool.Exec(ctx, schema)
	if err != nil {
		return err
	}
	logger.Info(ctx, "postgres snippet schema ensured")
	return nil
}

// Insert adds a new snippet to Postgres.
func (r *SnippetRepository) Insert(ctx context.Context, s domain.Snippet) error {
	const q = `
INSERT INTO snippets (id, title, code, language, style, linenos, owner_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO NOTHING
`
	_, err := r.pool.Exec(ctx, q, s.ID, s.Title, s.Code, s.Language, s.Style, s.Linenos, s.Owner, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert snippet: %w", err)
	}
	return nil
}

// FindByID retrieves a snippet by its ID from Postgres.
func (r *SnippetRepository) FindByID(ctx context.Context, id string) (domain.Snippet, error) {
	const q = `
SELECT id, title, code, language, style, linenos, owner_id, created_at
FROM snippets
WHERE id = $1
`
	var s domain.Snippet
	err := r.pool.QueryRow(ctx, q, id).Scan(&s.ID, &s.Title, &s.Code, &s.Language, &s.Style, &s.Linenos, &s.Owner, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Snippet{}, repository.ErrNotFound
		}
		return domain.Snippet{}, fmt.Errorf("query snippet: %w", err)
	}
	return s, nil
}

// Update rewrites the mutable content fields of an existing snippet. Owner
// and created_at are deliberately not part of the statement.
func (r *SnippetRepository) Update(ctx context.Context, s domain.Snippet) error {
	const q = `
UPDATE snippets
SET title = $2, code = $3, language = $4, style = $5, linenos = $6
WHERE id = $1
`
	ct, err := r.pool.Exec(ctx, q, s.ID, s.Title, s.Code, s.Language, s.Style, s.Linenos)
	if err != nil {
		return fmt.Errorf("update snippet: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a snippet by ID.
func (r *SnippetRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM snippets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete snippet: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// List returns a paginated list of snippets, newest first, optionally
// filtered by language and owner.
func (r *SnippetRepository) List(ctx context.Context, page, limit int, filter repository.SnippetFilter) ([]domain.Snippet, error) {
	offset := (page - 1) * limit
	q := `
SELECT id, title, code, language, style, linenos, owner_id, created_at
FROM snippets
WHERE 1=1
`
	args := make([]any, 0, 4)
	if filter.Language != "" {
		args = append(args, filter.Language)
		q += fmt.Sprintf(" AND language = $%d", len(args))
	}
	if filter.Owner != "" {
		args = append(args, filter.Owner)
		q += fmt.Sprintf(" AND owner_id = $%d", len(args))
	}
	args = append(args, limit)
	q += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))
	args = append(args, offset)
	q += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list snippets: %w", err)
	}
	defer rows.Close()
	res := make([]domain.Snippet, 0, limit)
	for rows.Next() {
		var s domain.Snippet
		if err := rows.Scan(&s.ID, &s.Title, &s.Code, &s.Language, &s.Style, &s.Linenos, &s.Owner, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan snippet: %w", err)
		}
		res = append(res, s)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return res, nil
}

// IDsByOwner returns the IDs of all snippets owned by the given user, newest first.
func (r *SnippetRepository) IDsByOwner(ctx context.Context, owner string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM snippets WHERE owner_id = $1 ORDER BY created_at DESC`, owner)
	if err != nil {
		return nil, fmt.Errorf("snippet ids by owner: %w", err)
	}
	defer rows.Close()
	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id: %w", err)
		}
		ids = append(ids, id)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return ids, nil
}

var _ repository.SnippetRepository = (*SnippetRepository)(nil)
