package service_test

import (
	"context"
	"testing"

	"github.com/sellora/todone/internal/todo/service"
	"github.com/sellora/todone/internal/todo/store"
	"github.com/stretchr/testify/require"
)

func TestRegisterThenLogin(t *testing.T) {
	st := newTestStore(t)
	auth := &service.AuthService{Store: st}
	ctx := context.Background()

	id, err := auth.Register(ctx, "alice@example.com", "alice", "hunter2hunter2")
	require.NoError(t, err)
	require.Positive(t, id)

	identity, err := auth.Login(ctx, "alice", "hunter2hunter2")
	require.NoError(t, err)
	require.Equal(t, id, identity.UserID)
	require.Equal(t, "alice", identity.Username)

	// The stored hash is Argon2id, never the plaintext
	user, err := st.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
	require.NotContains(t, user.PasswordHash, "hunter2hunter2")
	require.Contains(t, user.PasswordHash, "$argon2id$")
}

func TestRegisterValidation(t *testing.T) {
	st := newTestStore(t)
	auth := &service.AuthService{Store: st}
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		username string
		password string
		wantMsg  string
	}{
		{"empty email", "", "alice", "longenough", "Email, username, and password are required."},
		{"empty username", "a@example.com", "", "longenough", "Email, username, and password are required."},
		{"empty password", "a@example.com", "alice", "", "Email, username, and password are required."},
		{"whitespace username", "a@example.com", "   ", "longenough", "Email, username, and password are required."},
		{"malformed email", "not-an-email", "alice", "longenough", "Invalid email format."},
		{"short password", "a@example.com", "alice", "seven77", "Password must be at least 8 characters long."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Register(ctx, tt.email, tt.username, tt.password)

			var validationErr *service.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.wantMsg, validationErr.Reason)
		})
	}

	// No user rows were created by any failed attempt
	_, err := st.Users().GetUserByUsername(ctx, "alice")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestRegisterConflict(t *testing.T) {
	st := newTestStore(t)
	auth := &service.AuthService{Store: st}
	ctx := context.Background()

	_, err := auth.Register(ctx, "alice@example.com", "alice", "longenough")
	require.NoError(t, err)

	t.Run("same username different email", func(t *testing.T) {
		_, err := auth.Register(ctx, "other@example.com", "alice", "longenough")

		var conflictErr *service.ConflictError
		require.ErrorAs(t, err, &conflictErr)
	})

	t.Run("same email different username", func(t *testing.T) {
		_, err := auth.Register(ctx, "alice@example.com", "alicia", "longenough")

		var conflictErr *service.ConflictError
		require.ErrorAs(t, err, &conflictErr)

		_, err = st.Users().GetUserByUsername(ctx, "alicia")
		require.ErrorIs(t, err, store.ErrNotFound, "conflicting registration must not create a row")
	})
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	st := newTestStore(t)
	auth := &service.AuthService{Store: st}
	ctx := context.Background()

	_, err := auth.Register(ctx, "alice@example.com", "alice", "longenough")
	require.NoError(t, err)

	wrongPassword := func() error {
		_, err := auth.Login(ctx, "alice", "wrong password")
		return err
	}
	unknownUser := func() error {
		_, err := auth.Login(ctx, "nobody", "longenough")
		return err
	}

	errA, errB := wrongPassword(), unknownUser()
	require.ErrorIs(t, errA, service.ErrInvalidCredentials)
	require.ErrorIs(t, errB, service.ErrInvalidCredentials)
	require.Equal(t, errA.Error(), errB.Error(),
		"wrong password and unknown user must be indistinguishable")
}

func TestLoginEmptyCredentials(t *testing.T) {
	st := newTestStore(t)
	auth := &service.AuthService{Store: st}
	ctx := context.Background()

	for _, tc := range []struct{ username, password string }{
		{"", ""},
		{"alice", ""},
		{"", "longenough"},
	} {
		_, err := auth.Login(ctx, tc.username, tc.password)
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	}
}
