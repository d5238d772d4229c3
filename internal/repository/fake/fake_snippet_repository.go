// Package fake provides in-memory fakes for repository interfaces for testing.
package fake

import (
	"context"
	"sort"

	"github.com/snipbin/snipbin/internal/domain"
	"github.com/snipbin/snipbin/internal/repository"
)

// SnippetRepository is an in-memory fake implementing repository.SnippetRepository.
// It's intentionally simple and not concurrency-safe (tests typically run single-threaded).
type SnippetRepository struct {
	byID map[string]domain.Snippet
}

// SnippetOption configures the fake repository.
type SnippetOption func(*SnippetRepository)

// WithSnippets seeds the repository with the provided snippets (by ID).
func WithSnippets(items ...domain.Snippet) SnippetOption {
	return func(r *SnippetRepository) {
		for _, s := range items {
			r.byID[s.ID] = s
		}
	}
}

// NewSnippetRepository creates a new in-memory fake repo.
func NewSnippetRepository(opts ...SnippetOption) *SnippetRepository {
	r := &SnippetRepository{byID: make(map[string]domain.Snippet)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *SnippetRepository) Insert(_ context.Context, s domain.Snippet) error {
	r.byID[s.ID] = s
	return nil
}

func (r *SnippetRepository) FindByID(_ context.Context, id string) (domain.Snippet, error) {
	if s, ok := r.byID[id]; ok {
		return s, nil
	}
	return domain.Snippet{}, repository.ErrNotFound
}

func (r *SnippetRepository) Update(_ context.Context, s domain.Snippet) error {
	if _, ok := r.byID[s.ID]; !ok {
		return repository.ErrNotFound
	}
	r.byID[s.ID] = s
	return nil
}

func (r *SnippetRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *SnippetRepository) List(_ context.Context, page, limit int, filter repository.SnippetFilter) ([]domain.Snippet, error) {
	items := make([]domain.Snippet, 0, len(r.byID))
	for _, s := range r.byID {
		if filter.Language != "" && s.Language != filter.Language {
			continue
		}
		if filter.Owner != "" && s.Owner != filter.Owner {
			continue
		}
		items = append(items, s)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []domain.Snippet{}, nil
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], nil
}

func (r *SnippetRepository) IDsByOwner(_ context.Context, owner string) ([]string, error) {
	items := make([]domain.Snippet, 0, len(r.byID))
	for _, s := range r.byID {
		if s.Owner == owner {
			items = append(items, s)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	ids := make([]string, 0, len(items))
	for _, s := range items {
		ids = append(ids, s.ID)
	}
	return ids, nil
}

var _ repository.SnippetRepository = (*SnippetRepository)(nil)
