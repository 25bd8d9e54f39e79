package domain

import "time"

// FlashKind classifies a one-shot notification for the next rendered page.
type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
)

// Flash is a message queued for exactly one subsequent render, then discarded.
type Flash struct {
	Kind    FlashKind
	Message string
}

// Session is the server-side record behind the session cookie. Only the
// SHA-256 fingerprint of the cookie token is stored, never the token itself.
type Session struct {
	ID        string // ULID
	TokenHash string
	UserID    int64
	Username  string
	Flash     *Flash
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session has passed its server-side expiry.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Identity returns the owner identity the session binds.
func (s Session) Identity() Identity {
	return Identity{UserID: s.UserID, Username: s.Username}
}
