package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/sellora/todone/internal/todo/domain"
	"github.com/sellora/todone/internal/todo/store"
	"github.com/sellora/todone/pkg/cryptox"
)

// MinPasswordLength is the registration floor; existing hashes are never
// re-checked against it.
const MinPasswordLength = 8

// AuthService handles credential registration and verification.
type AuthService struct {
	Store store.Store
}

// Register validates the triple, checks uniqueness and persists a new user
// with an Argon2id-hashed password. It returns the new user id.
func (s *AuthService) Register(ctx context.Context, email, username, password string) (int64, error) {
	email = strings.TrimSpace(email)
	username = strings.TrimSpace(username)

	if email == "" || username == "" || password == "" {
		return 0, &ValidationError{Reason: "Email, username, and password are required."}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return 0, &ValidationError{Reason: "Invalid email format."}
	}
	if len(password) < MinPasswordLength {
		return 0, &ValidationError{Reason: "Password must be at least 8 characters long."}
	}

	taken, err := s.Store.Users().UsernameOrEmailTaken(ctx, username, email)
	if err != nil {
		return 0, storageErr("register", err)
	}
	if taken {
		return 0, &ConflictError{Reason: "A user with that username or email already exists."}
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return 0, storageErr("register", err)
	}

	id, err := s.Store.Users().CreateUser(ctx, email, username, hash)
	if err != nil {
		// Two registrations can race past the pre-check; the UNIQUE
		// constraint is the authority.
		if errors.Is(err, store.ErrAlreadyExists) {
			return 0, &ConflictError{Reason: "A user with that username or email already exists."}
		}
		return 0, storageErr("register", err)
	}
	return id, nil
}

// Login verifies the credentials and returns the identity a session should
// bind. Unknown usernames and wrong passwords yield the identical error.
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.Identity, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.Identity{}, ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Identity{}, ErrInvalidCredentials
		}
		return domain.Identity{}, storageErr("login", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return domain.Identity{}, ErrInvalidCredentials
	}

	return domain.Identity{UserID: user.ID, Username: user.Username}, nil
}
