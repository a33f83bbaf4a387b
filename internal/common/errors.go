// Package common defines sentinel errors and small helpers shared across the
// storefront client. Callers should use errors.Is to match the sentinels.
package common

import "errors"

var (
	// Lookup misses, e.g. a booking that references a removed car.
	ErrNotFound = errors.New("not found")

	// Input failed email, password or date checks.
	ErrValidation = errors.New("validation error")

	// No user matched the supplied email/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Registration with an email that is already taken.
	ErrConflict = errors.New("already exists")

	// Operation requires a (possibly admin) session.
	ErrUnauthorized = errors.New("unauthorized")

	// A slot holds bytes that do not decode into valid records.
	ErrStorageCorrupted = errors.New("storage corrupted")
)

// Error is a user-facing failure. Error returns the human-readable message,
// Unwrap returns the sentinel describing its kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// NewError returns an *Error of the given kind.
func NewError(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Message extracts the user-facing message from err. Errors that are not
// *Error are returned as-is via err.Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
