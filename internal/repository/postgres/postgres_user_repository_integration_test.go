//go:build integration

package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/snipbin/snipbin/internal/domain"
	"github.com/snipbin/snipbin/internal/repository"
)

func TestPostgresUserRepository_InsertAndFind(t *testing.T) {
	ctx := context.Background()
	pool, cleanup := startPostgres(ctx, t)
	defer cleanup()

	repo := NewUserRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	u := domain.User{ID: "u1", Username: "alice", PasswordHash: "$2a$10$fake", CreatedAt: now}
	if err := repo.Insert(ctx, u); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := repo.FindByID(ctx, "u1")
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if got.Username != "alice" || got.PasswordHash != "$2a$10$fake" {
		t.Fatalf("unexpected user: %+v", got)
	}

	got, err = repo.FindByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("find by username: %v", err)
	}
	if got.ID != "u1" {
		t.Fatalf("unexpected user: %+v", got)
	}

	if _, err := repo.FindByID(ctx, "ghost"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresUserRepository_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	pool, cleanup := startPostgres(ctx, t)
	defer cleanup()

	repo := NewUserRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}

	now := time.Now().UTC()
	if err := repo.Insert(ctx, domain.User{ID: "u1", Username: "alice", PasswordHash: "h", CreatedAt: now}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	err := repo.Insert(ctx, domain.User{ID: "u2", Username: "alice", PasswordHash: "h", CreatedAt: now})
	if !errors.Is(err, repository.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestPostgresUserRepository_List(t *testing.T) {
	ctx := context.Background()
	pool, cleanup := startPostgres(ctx, t)
	defer cleanup()

	repo := NewUserRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	for i, name := range []string{"alice", "bob", "carol"} {
		u := domain.User{ID: name, Username: name, PasswordHash: "h", CreatedAt: now.Add(time.Duration(i) * time.Second)}
		if err := repo.Insert(ctx, u); err != nil {
			t.Fatalf("insert %s: %v", name, err)
		}
	}

	users, err := repo.List(ctx, 1, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 2 || users[0].Username != "alice" {
		t.Fatalf("unexpected page 1: %+v", users)
	}
	users, err = repo.List(ctx, 2, 2)
	if err != nil {
		t.Fatalf("list page 2: %v", err)
	}
	if len(users) != 1 || users[0].Username != "carol" {
		t.Fatalf("unexpected page 2: %+v", users)
	}
}
