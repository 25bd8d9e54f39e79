package service

import "fmt"

// The error taxonomy every operation boundary maps into. Handlers decide
// presentation from the type alone; nothing below the service layer reaches
// them raw.

// ValidationError reports malformed or missing user input. The message is
// safe to show to the user.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// ConflictError reports a uniqueness violation on registration.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

// AuthError reports a credential mismatch at login. The message is identical
// for unknown usernames and wrong passwords so callers cannot probe which
// accounts exist.
type AuthError struct{}

func (e *AuthError) Error() string { return "invalid username or password" }

// ErrInvalidCredentials is the only AuthError ever returned.
var ErrInvalidCredentials = &AuthError{}

// StorageError wraps an underlying store fault. Its message is generic; the
// wrapped cause is for logs only.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("%s: storage failure", e.Op) }
func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
