package errors

import (
	"errors"
	"fmt"
)

// Kind is the closed set of failure categories the application
// distinguishes. Handlers branch on the kind; the detail string is
// only ever shown to the user.
type Kind string

const (
	// Registration / login
	KindDuplicateEmail     Kind = "DUPLICATE_EMAIL"
	KindInvalidCredentials Kind = "INVALID_CREDENTIALS"

	// Authorization gate
	KindNoToken      Kind = "NO_TOKEN"
	KindInvalidToken Kind = "INVALID_TOKEN"
	KindUserGone     Kind = "USER_GONE"

	// Todos
	KindNotFound   Kind = "NOT_FOUND"
	KindValidation Kind = "VALIDATION_ERROR"

	// Persistence
	KindStorage Kind = "STORAGE_ERROR"
)

// Error carries a Kind plus a human-readable detail.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

// Is makes two *Error values match under errors.Is when their kinds
// agree, regardless of detail text.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// E builds an *Error of the given kind with a formatted detail.
func E(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind from err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Predefined errors for the cases where the detail never varies.
var (
	ErrDuplicateEmail = E(KindDuplicateEmail, "the email is already in use.")

	// The same value is returned for an unknown email and for a wrong
	// password so a caller cannot tell which factor failed.
	ErrInvalidCredentials = E(KindInvalidCredentials, "invalid email or password.")

	ErrNoToken      = E(KindNoToken, "You are not logged in, please provide token")
	ErrInvalidToken = E(KindInvalidToken, "Invalid token")
	ErrUserGone     = E(KindUserGone, "The user belonging to this token no longer exists")
)
