// Package apperr defines the application error taxonomy and its mapping
// to HTTP status codes.
//
// Services return *apperr.Error; controllers translate it into the JSON
// error body with response.AppError. Anything that is not an *apperr.Error
// is treated as Internal.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	// Validation is missing or malformed input (400).
	Validation Kind = iota
	// Auth is a failed or missing credential (401).
	Auth
	// NotFound is a missing entity (404).
	NotFound
	// Conflict is a duplicate-resource condition. Served as 400 to match
	// the existing API contract, though 409 would be more precise.
	Conflict
	// Internal is any unexpected failure (500).
	Internal
)

// Error is a classified application error with a client-safe message.
type Error struct {
	Kind    Kind
	Message string
	Err     error // wrapped cause, never exposed to clients
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Status returns the HTTP status code for the error kind.
func (e *Error) Status() int {
	switch e.Kind {
	case Validation, Conflict:
		return http.StatusBadRequest
	case Auth:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause to a classified error. The message is what the
// client sees; err stays server-side.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// From extracts the *Error from err, or wraps err as Internal with the
// given fallback message.
func From(err error, fallback string) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(Internal, fallback, err)
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
