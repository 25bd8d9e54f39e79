package store

import (
	"context"
	"errors"
	"time"

	"github.com/sellora/todone/internal/todo/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Tasks() Tasks
	Sessions() Sessions

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run multi-step operations that must be atomic
	// (e.g., status toggles and flash drains).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user and returns the assigned id. A username
	// or email collision surfaces as ErrAlreadyExists.
	CreateUser(ctx context.Context, email, username, passwordHash string) (int64, error)

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByUsername is used during login.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// UsernameOrEmailTaken reports whether any user already holds the given
	// username or email.
	UsernameOrEmailTaken(ctx context.Context, username, email string) (bool, error)

	// DeleteUser cascades to tasks and sessions (per schema).
	DeleteUser(ctx context.Context, id int64) error
}

type Tasks interface {
	// CreateTask inserts a task for its owner and returns the assigned id.
	CreateTask(ctx context.Context, t domain.Task) (int64, error)

	// GetTask returns the task matching (id, owner). A missing or foreign
	// row is ErrNotFound.
	GetTask(ctx context.Context, ownerID, taskID int64) (domain.Task, error)

	// SetTaskDone persists the status for the (id, owner) pair. A miss is
	// silently ignored.
	SetTaskDone(ctx context.Context, ownerID, taskID int64, done bool) error

	// UpdateTask rewrites name and due date for the (id, owner) pair. A miss
	// is silently ignored.
	UpdateTask(ctx context.Context, ownerID, taskID int64, name string, due *time.Time) error

	// DeleteTask removes the (id, owner) pair. A miss is silently ignored.
	DeleteTask(ctx context.Context, ownerID, taskID int64) error

	// ListTasksByOwner returns the owner's tasks ordered pending-first, then
	// newest-first within each group (status ASC, id DESC).
	ListTasksByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error)
}

type Sessions interface {
	// CreateSession stores a new session record.
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSessionByTokenHash returns the session by the fingerprint of its
	// cookie token.
	GetSessionByTokenHash(ctx context.Context, tokenHash string) (domain.Session, error)

	// SetFlash queues a one-shot notification on the session.
	SetFlash(ctx context.Context, sessionID string, f domain.Flash) error

	// ClearFlash discards any queued notification.
	ClearFlash(ctx context.Context, sessionID string) error

	// DeleteSession removes a session by id; deleting a missing session is
	// not an error.
	DeleteSession(ctx context.Context, sessionID string) error

	// DeleteExpiredSessions is housekeeping for abandoned rows.
	DeleteExpiredSessions(ctx context.Context, now time.Time) error
}
