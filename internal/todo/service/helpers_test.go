package service_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/sellora/todone/internal/todo/domain"
	"github.com/sellora/todone/internal/todo/service"
	"github.com/sellora/todone/internal/todo/store"
	"github.com/sellora/todone/internal/todo/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

// newTestStore opens a migrated store on a throwaway database file. A file
// DSN is deliberate: with :memory: every pooled connection gets its own
// database.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", filepath.Join(t.TempDir(), "test.db"))
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// registerTestUser registers via the real service so the stored hash is a
// verifiable Argon2id hash.
func registerTestUser(t *testing.T, st store.Store, username string) domain.Identity {
	t.Helper()

	auth := &service.AuthService{Store: st}
	id, err := auth.Register(context.Background(), username+"@example.com", username, "sufficiently long")
	require.NoError(t, err)
	return domain.Identity{UserID: id, Username: username}
}
