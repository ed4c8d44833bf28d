// Package apperrors defines the error taxonomy shared by all services.
// Every failure a handler can surface to a caller is one of these kinds;
// anything else is treated as an internal error.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an application error.
type Kind int

const (
	// Validation covers malformed or empty input.
	Validation Kind = iota + 1
	// Conflict covers duplicate writes: username/email/club name already
	// taken, duplicate friend request, duplicate like, second admin.
	Conflict
	// Authorization covers role mismatches and non-owner mutations.
	Authorization
	// NotFound covers absent users, posts and pending friend requests.
	NotFound
)

// Error carries a kind plus a caller-facing message. It optionally wraps
// an underlying cause for logging.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Validationf builds a Validation error.
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: Validation, Msg: fmt.Sprintf(format, args...)}
}

// Conflictf builds a Conflict error.
func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: Conflict, Msg: fmt.Sprintf(format, args...)}
}

// Authorizationf builds an Authorization error.
func Authorizationf(format string, args ...any) *Error {
	return &Error{Kind: Authorization, Msg: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a NotFound error.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: NotFound, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause to a taxonomy error.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf returns the kind of err, or 0 when err is not an application error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return 0
}

// IsValidation reports whether err is a Validation error.
func IsValidation(err error) bool { return KindOf(err) == Validation }

// IsConflict reports whether err is a Conflict error.
func IsConflict(err error) bool { return KindOf(err) == Conflict }

// IsAuthorization reports whether err is an Authorization error.
func IsAuthorization(err error) bool { return KindOf(err) == Authorization }

// IsNotFound reports whether err is a NotFound error.
func IsNotFound(err error) bool { return KindOf(err) == NotFound }
