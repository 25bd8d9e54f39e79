package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sellora/todone/internal/todo/domain"
)

type sessionsRepo struct {
	db dbtx
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, token_hash, user_id, username, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.TokenHash, s.UserID, s.Username, fmtTime(s.CreatedAt), fmtTime(s.ExpiresAt),
	)
	return mapConstraint(err)
}

func (r *sessionsRepo) GetSessionByTokenHash(ctx context.Context, tokenHash string) (domain.Session, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, token_hash, user_id, username, flash_kind, flash_message, created_at, expires_at
		   FROM sessions WHERE token_hash = ?`,
		tokenHash,
	)

	var (
		s                    domain.Session
		flashKind, flashMsg  sql.NullString
		createdAt, expiresAt string
	)
	err := row.Scan(&s.ID, &s.TokenHash, &s.UserID, &s.Username,
		&flashKind, &flashMsg, &createdAt, &expiresAt)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}

	if flashKind.Valid {
		s.Flash = &domain.Flash{
			Kind:    domain.FlashKind(flashKind.String),
			Message: flashMsg.String,
		}
	}
	if s.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.Session{}, err
	}
	if s.ExpiresAt, err = parseTime(expiresAt); err != nil {
		return domain.Session{}, err
	}
	return s, nil
}

func (r *sessionsRepo) SetFlash(ctx context.Context, sessionID string, f domain.Flash) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET flash_kind = ?, flash_message = ? WHERE id = ?`,
		string(f.Kind), f.Message, sessionID,
	)
	return err
}

func (r *sessionsRepo) ClearFlash(ctx context.Context, sessionID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET flash_kind = NULL, flash_message = NULL WHERE id = ?`,
		sessionID,
	)
	return err
}

func (r *sessionsRepo) DeleteSession(ctx context.Context, sessionID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, sessionID)
	return err
}

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) error {
	// RFC3339 UTC text compares lexicographically in time order.
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < ?`, fmtTime(now))
	return err
}
