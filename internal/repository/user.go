package repository

import (
	"context"
	"errors"

	"github.com/snipbin/snipbin/internal/domain"
)

// ErrUsernameTaken is returned when inserting a user whose username already exists.
var ErrUsernameTaken = errors.New("username already taken")

// UserRepository defines methods for user data access.
type UserRepository interface {
	Insert(ctx context.Context, u domain.User) error
	FindByID(ctx context.Context, id string) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	List(ctx context.Context, page, limit int) ([]domain.User, error)
}
