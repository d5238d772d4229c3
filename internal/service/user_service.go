package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/snipbin/snipbin/internal/auth"
	"github.com/snipbin/snipbin/internal/domain"
	"github.com/snipbin/snipbin/internal/repository"
	"github.com/snipbin/snipbin/pkg/logger"
)

// Error variables for user operations.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUsernameTaken     = errors.New("username already taken")
	ErrInvalidCredential = errors.New("invalid username or password")
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID, username string) (string, error)
}

// UserService provides registration, login, and user lookups.
type UserService struct {
	users    repository.UserRepository
	snippets repository.SnippetRepository
	tokens   TokenIssuer
	clock    Clock
	newID    func() string
}

// UserOption configures a UserService.
type UserOption func(*UserService)

// WithUserIDGenerator overrides the user ID source. Useful in tests.
func WithUserIDGenerator(f func() string) UserOption {
	return func(s *UserService) { s.newID = f }
}

// NewUserService creates a UserService.
func NewUserService(users repository.UserRepository, snippets repository.SnippetRepository, tokens TokenIssuer, clock Clock, opts ...UserOption) *UserService {
	s := &UserService{
		users:    users,
		snippets: snippets,
		tokens:   tokens,
		clock:    clock,
		newID:    func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates a new user with a bcrypt-hashed password.
func (s *UserService) Register(ctx context.Context, username, password string) (domain.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}
	user := domain.User{
		ID:           s.newID(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}
	logger.With(ctx, map[string]any{"user_id": user.ID}).Info("user registered")
	return user, nil
}

// Login verifies credentials and issues an access token. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredential
		}
		return "", fmt.Errorf("find user: %w", err)
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", ErrInvalidCredential
	}
	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	logger.With(ctx, map[string]any{"user_id": user.ID}).Info("user logged in")
	return token, nil
}

// GetUserByID returns a user together with the IDs of the snippets they own.
func (s *UserService) GetUserByID(ctx context.Context, id string) (domain.User, []string, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.User{}, nil, ErrUserNotFound
		}
		return domain.User{}, nil, fmt.Errorf("find user: %w", err)
	}
	ids, err := s.snippets.IDsByOwner(ctx, id)
	if err != nil {
		return domain.User{}, nil, fmt.Errorf("snippet ids: %w", err)
	}
	return user, ids, nil
}

// ListUsers returns a paginated list of users with their owned snippet IDs.
func (s *UserService) ListUsers(ctx context.Context, page, limit int) ([]domain.User, map[string][]string, error) {
	if limit > ServiceMaxLimit {
		limit = ServiceMaxLimit
	}
	if limit < 1 {
		limit = ServiceDefaultLimit
	}
	if page < 1 {
		page = ServiceDefaultPage
	}
	users, err := s.users.List(ctx, page, limit)
	if err != nil {
		return nil, nil, fmt.Errorf("list users: %w", err)
	}
	owned := make(map[string][]string, len(users))
	for _, u := range users {
		ids, err := s.snippets.IDsByOwner(ctx, u.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("snippet ids: %w", err)
		}
		owned[u.ID] = ids
	}
	return users, owned, nil
}
