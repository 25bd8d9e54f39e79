package domain

import "time"

type User struct {
	ID           int64
	Email        string
	Username     string
	PasswordHash string // argon2id, PHC encoded
	CreatedAt    time.Time
}

// Identity is the resolved owner of a request. It carries exactly what the
// session binds: the user id and the display username, never credentials.
type Identity struct {
	UserID   int64
	Username string
}
