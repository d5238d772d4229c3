// Package repository defines data access contracts for the application.
package repository

import (
	"context"
	"errors"

	"github.com/snipbin/snipbin/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// SnippetFilter narrows List results. Zero values mean no filtering.
type SnippetFilter struct {
	Language string
	Owner    string
}

// SnippetRepository defines methods for snippet data access.
type SnippetRepository interface {
	Insert(ctx context.Context, s domain.Snippet) error
	FindByID(ctx context.Context, id string) (domain.Snippet, error)
	Update(ctx context.Context, s domain.Snippet) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page, limit int, filter SnippetFilter) ([]domain.Snippet, error)
	IDsByOwner(ctx context.Context, owner string) ([]string, error)
}
