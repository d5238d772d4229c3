package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/snipbin/snipbin/internal/auth"
	"github.com/snipbin/snipbin/internal/domain"
	"github.com/snipbin/snipbin/internal/repository"
)

// Error variables
var (
	ErrSnippetNotFound = errors.New("snippet not found")
	// ErrUnauthorized means the operation needs an authenticated requester.
	ErrUnauthorized = errors.New("authentication required")
	// ErrForbidden means the requester is authenticated but is not the owner.
	ErrForbidden = errors.New("not the owner")
)

// Pagination bounds shared by handlers and the service.
const (
	ServiceDefaultPage  = 1
	ServiceDefaultLimit = 20
	ServiceMaxLimit     = 100
)

// Service provides snippet-related business logic.
type Service struct {
	repo  repository.SnippetRepository
	clock Clock
	newID func() string
}

// Option configures a Service.
type Option func(*Service)

// WithIDGenerator overrides the snippet ID source. Useful in tests.
func WithIDGenerator(f func() string) Option {
	return func(s *Service) { s.newID = f }
}

// NewService creates a new Service with the given SnippetRepository and Clock.
func NewService(repo repository.SnippetRepository, clock Clock, opts ...Option) *Service {
	s := &Service{repo: repo, clock: clock, newID: func() string { return uuid.New().String() }}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateSnippet creates a new snippet owned by the requester. Any
// authenticated requester may create; anonymous requests are rejected.
func (s *Service) CreateSnippet(ctx context.Context, requester string, req domain.CreateSnippetRequestDTO) (domain.Snippet, error) {
	if !auth.Authenticated(auth.AccessWrite, requester) {
		return domain.Snippet{}, ErrUnauthorized
	}
	// No pre-existing owner at creation; the requester becomes it.
	if !auth.Authorize(auth.AccessWrite, requester, "") {
		return domain.Snippet{}, ErrUnauthorized
	}
	snippet := domain.Snippet{
		ID:        s.newID(),
		Title:     req.Title,
		Code:      req.Code,
		Language:  req.Language,
		Style:     req.Style,
		Linenos:   req.Linenos,
		Owner:     requester,
		CreatedAt: s.clock.Now(),
	}
	if snippet.Language == "" {
		snippet.Language = domain.DefaultLanguage
	}
	if snippet.Style == "" {
		snippet.Style = domain.DefaultStyle
	}
	if err := s.repo.Insert(ctx, snippet); err != nil {
		return domain.Snippet{}, fmt.Errorf("insert: %w", err)
	}
	return snippet, nil
}

// ListSnippets returns a paginated list of snippets, optionally filtered by
// language and owner. Read access is public.
func (s *Service) ListSnippets(ctx context.Context, page, limit int, filter repository.SnippetFilter) ([]domain.Snippet, error) {
	if limit > ServiceMaxLimit {
		limit = ServiceMaxLimit
	}
	if limit < 1 {
		limit = ServiceDefaultLimit
	}
	if page < 1 {
		page = ServiceDefaultPage
	}
	return s.repo.List(ctx, page, limit, filter)
}

// CacheStatus is a typed cache status string.
type CacheStatus string

const (
	CacheMiss CacheStatus = "MISS"
	CacheHit  CacheStatus = "HIT"
)

// SnippetMeta holds metadata about a snippet fetch.
type SnippetMeta struct {
	CacheStatus CacheStatus
}

// GetSnippetByID fetches a snippet by ID. Read access is public.
func (s *Service) GetSnippetByID(ctx context.Context, id string) (domain.Snippet, SnippetMeta, error) {
	meta := SnippetMeta{CacheStatus: CacheMiss}
	snippet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Snippet{}, meta, fmt.Errorf("%w", ErrSnippetNotFound)
		}
		return domain.Snippet{}, meta, fmt.Errorf("find by id: %w", err)
	}
	return snippet, meta, nil
}

// UpdateSnippet replaces the mutable content fields of an existing snippet.
// Only the owner may update; the owner and creation time never change.
func (s *Service) UpdateSnippet(ctx context.Context, id, requester string, req domain.UpdateSnippetRequestDTO) (domain.Snippet, error) {
	snippet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Snippet{}, fmt.Errorf("%w", ErrSnippetNotFound)
		}
		return domain.Snippet{}, fmt.Errorf("find by id: %w", err)
	}
	if err := s.authorizeWrite(requester, snippet.Owner); err != nil {
		return domain.Snippet{}, err
	}
	snippet.Title = req.Title
	snippet.Code = req.Code
	snippet.Language = req.Language
	snippet.Style = req.Style
	snippet.Linenos = req.Linenos
	if snippet.Language == "" {
		snippet.Language = domain.DefaultLanguage
	}
	if snippet.Style == "" {
		snippet.Style = domain.DefaultStyle
	}
	if err := s.repo.Update(ctx, snippet); err != nil {
		return domain.Snippet{}, fmt.Errorf("update: %w", err)
	}
	return snippet, nil
}

// DeleteSnippet removes a snippet. Only the owner may delete.
func (s *Service) DeleteSnippet(ctx context.Context, id, requester string) error {
	snippet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w", ErrSnippetNotFound)
		}
		return fmt.Errorf("find by id: %w", err)
	}
	if err := s.authorizeWrite(requester, snippet.Owner); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	return nil
}

// authorizeWrite evaluates the two gates in sequence: the coarse
// authentication check, then the ownership rule. Either may deny.
func (s *Service) authorizeWrite(requester, owner string) error {
	if !auth.Authenticated(auth.AccessWrite, requester) {
		return ErrUnauthorized
	}
	if !auth.Authorize(auth.AccessWrite, requester, owner) {
		return ErrForbidden
	}
	return nil
}
