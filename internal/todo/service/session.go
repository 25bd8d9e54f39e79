package service

import (
	"context"
	"errors"
	"time"

	"github.com/sellora/todone/internal/todo/domain"
	"github.com/sellora/todone/internal/todo/store"
	"github.com/sellora/todone/pkg/cryptox"
	"github.com/sellora/todone/pkg/idx"
)

// DefaultSessionTTL bounds abandoned session rows server-side. The cookie
// itself is a browser-session cookie and usually dies first.
const DefaultSessionTTL = 7 * 24 * time.Hour

// SessionService issues and resolves opaque session tokens and carries the
// one-shot flash outbox. It is transport-free: cookie handling lives in the
// HTTP layer, which makes ownership scoping testable without a request
// pipeline.
type SessionService struct {
	Store store.Store
	TTL   time.Duration
}

func (s *SessionService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return DefaultSessionTTL
}

// Issue mints a fresh random token bound to the identity and stores only its
// fingerprint. The returned token is what goes into the cookie.
func (s *SessionService) Issue(ctx context.Context, identity domain.Identity) (string, error) {
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", storageErr("issue session", err)
	}

	now := time.Now()
	sess := domain.Session{
		ID:        idx.New().String(),
		TokenHash: cryptox.FingerprintToken(token),
		UserID:    identity.UserID,
		Username:  identity.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl()),
	}
	if err := s.Store.Sessions().CreateSession(ctx, sess); err != nil {
		return "", storageErr("issue session", err)
	}
	return token, nil
}

// Resolve maps a cookie token to the session it binds. Missing, invalid and
// expired tokens all resolve to ok=false; expired rows are removed on the
// way out.
func (s *SessionService) Resolve(ctx context.Context, token string) (domain.Session, bool, error) {
	if token == "" {
		return domain.Session{}, false, nil
	}

	sess, err := s.Store.Sessions().GetSessionByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, false, nil
		}
		return domain.Session{}, false, storageErr("resolve session", err)
	}

	if sess.Expired(time.Now()) {
		_ = s.Store.Sessions().DeleteSession(ctx, sess.ID)
		return domain.Session{}, false, nil
	}
	return sess, true, nil
}

// Destroy invalidates the session behind the token. Destroying a token with
// no session is fine; logout is idempotent.
func (s *SessionService) Destroy(ctx context.Context, token string) error {
	sess, ok, err := s.Resolve(ctx, token)
	if err != nil || !ok {
		return err
	}
	if err := s.Store.Sessions().DeleteSession(ctx, sess.ID); err != nil {
		return storageErr("destroy session", err)
	}
	return nil
}

// PushFlash queues a one-shot notification on the token's session. Pushing
// onto an unknown token is a no-op.
func (s *SessionService) PushFlash(ctx context.Context, token string, f domain.Flash) error {
	sess, ok, err := s.Resolve(ctx, token)
	if err != nil || !ok {
		return err
	}
	if err := s.Store.Sessions().SetFlash(ctx, sess.ID, f); err != nil {
		return storageErr("push flash", err)
	}
	return nil
}

// PopFlash drains the queued notification, if any: read and clear happen in
// one transaction so a message renders exactly once.
func (s *SessionService) PopFlash(ctx context.Context, token string) (domain.Flash, bool, error) {
	if token == "" {
		return domain.Flash{}, false, nil
	}

	var (
		flash domain.Flash
		found bool
	)
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		sess, err := tx.Sessions().GetSessionByTokenHash(ctx, cryptox.FingerprintToken(token))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			return err
		}
		if sess.Flash == nil {
			return nil
		}
		flash = *sess.Flash
		found = true
		return tx.Sessions().ClearFlash(ctx, sess.ID)
	})
	if err != nil {
		return domain.Flash{}, false, storageErr("pop flash", err)
	}
	return flash, found, nil
}

// Sweep is housekeeping: it deletes sessions past their server-side expiry.
func (s *SessionService) Sweep(ctx context.Context) error {
	if err := s.Store.Sessions().DeleteExpiredSessions(ctx, time.Now()); err != nil {
		return storageErr("sweep sessions", err)
	}
	return nil
}
