package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/snipbin/snipbin/internal/domain"
	"github.com/snipbin/snipbin/internal/repository/fake"
)

type stubIssuer struct {
	token string
	err   error
	// records
	userID string
}

func (s *stubIssuer) Issue(userID, _ string) (string, error) {
	s.userID = userID
	return s.token, s.err
}

func newUserService(users *fake.UserRepository, snippets *fake.SnippetRepository, issuer *stubIssuer) *UserService {
	if snippets == nil {
		snippets = fake.NewSnippetRepository()
	}
	return NewUserService(users, snippets, issuer, stubClock{t: time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)},
		WithUserIDGenerator(func() string { return "user-1" }))
}

func TestRegister_HashesPassword(t *testing.T) {
	users := fake.NewUserRepository()
	s := newUserService(users, nil, &stubIssuer{})

	u, err := s.Register(context.Background(), "alice", "correct horse")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.ID != "user-1" || u.Username != "alice" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if u.PasswordHash == "" || u.PasswordHash == "correct horse" {
		t.Fatalf("password must be stored hashed")
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	users := fake.NewUserRepository(fake.WithUsers(domain.User{ID: "u0", Username: "alice"}))
	s := newUserService(users, nil, &stubIssuer{})

	_, err := s.Register(context.Background(), "alice", "password123")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestLogin_Succeeds(t *testing.T) {
	users := fake.NewUserRepository()
	issuer := &stubIssuer{token: "signed-token"}
	s := newUserService(users, nil, issuer)

	if _, err := s.Register(context.Background(), "alice", "password123"); err != nil {
		t.Fatalf("register: %v", err)
	}
	token, err := s.Login(context.Background(), "alice", "password123")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if token != "signed-token" {
		t.Fatalf("want issued token, got %q", token)
	}
	if issuer.userID != "user-1" {
		t.Fatalf("token issued for wrong user: %s", issuer.userID)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	users := fake.NewUserRepository()
	s := newUserService(users, nil, &stubIssuer{token: "signed-token"})

	if _, err := s.Register(context.Background(), "alice", "password123"); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := s.Login(context.Background(), "alice", "wrong")
	if !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
}

func TestLogin_UnknownUserIndistinguishable(t *testing.T) {
	s := newUserService(fake.NewUserRepository(), nil, &stubIssuer{})
	_, err := s.Login(context.Background(), "ghost", "whatever")
	if !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
}

func TestGetUserByID_IncludesOwnedSnippets(t *testing.T) {
	now := time.Now()
	snippets := fake.NewSnippetRepository(fake.WithSnippets(
		domain.Snippet{ID: "s1", Owner: "user-1", CreatedAt: now},
		domain.Snippet{ID: "s2", Owner: "user-1", CreatedAt: now.Add(time.Second)},
		domain.Snippet{ID: "s3", Owner: "someone-else", CreatedAt: now},
	))
	users := fake.NewUserRepository(fake.WithUsers(domain.User{ID: "user-1", Username: "alice"}))
	s := newUserService(users, snippets, &stubIssuer{})

	u, ids, err := s.GetUserByID(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Username != "alice" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if len(ids) != 2 {
		t.Fatalf("want 2 owned snippet ids, got %v", ids)
	}
}

func TestGetUserByID_NotFound(t *testing.T) {
	s := newUserService(fake.NewUserRepository(), nil, &stubIssuer{})
	_, _, err := s.GetUserByID(context.Background(), "nope")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestListUsers_MapsOwnedSnippets(t *testing.T) {
	now := time.Now()
	users := fake.NewUserRepository(fake.WithUsers(
		domain.User{ID: "u1", Username: "alice", CreatedAt: now},
		domain.User{ID: "u2", Username: "bob", CreatedAt: now.Add(time.Second)},
	))
	snippets := fake.NewSnippetRepository(fake.WithSnippets(
		domain.Snippet{ID: "s1", Owner: "u1", CreatedAt: now},
	))
	s := newUserService(users, snippets, &stubIssuer{})

	got, owned, err := s.ListUsers(context.Background(), 1, 20)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 users, got %d", len(got))
	}
	if len(owned["u1"]) != 1 || len(owned["u2"]) != 0 {
		t.Fatalf("unexpected ownership map: %v", owned)
	}
}
