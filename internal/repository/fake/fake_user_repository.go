package fake

import (
	"context"
	"sort"

	"github.com/snipbin/snipbin/internal/domain"
	"github.com/snipbin/snipbin/internal/repository"
)

// UserRepository is an in-memory fake implementing repository.UserRepository.
type UserRepository struct {
	byID map[string]domain.User
}

// UserOption configures the fake user repository.
type UserOption func(*UserRepository)

// WithUsers seeds the repository with the provided users (by ID).
func WithUsers(users ...domain.User) UserOption {
	return func(r *UserRepository) {
		for _, u := range users {
			r.byID[u.ID] = u
		}
	}
}

// NewUserRepository creates a new in-memory fake user repo.
func NewUserRepository(opts ...UserOption) *UserRepository {
	r := &UserRepository{byID: make(map[string]domain.User)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *UserRepository) Insert(_ context.Context, u domain.User) error {
	for _, existing := range r.byID {
		if existing.Username == u.Username {
			return repository.ErrUsernameTaken
		}
	}
	r.byID[u.ID] = u
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (domain.User, error) {
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return domain.User{}, repository.ErrNotFound
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (domain.User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, repository.ErrNotFound
}

func (r *UserRepository) List(_ context.Context, page, limit int) ([]domain.User, error) {
	items := make([]domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		items = append(items, u)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []domain.User{}, nil
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
