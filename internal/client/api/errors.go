package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for the backend error taxonomy. Callers match with
// errors.Is; the wrapped *Error keeps the backend detail text.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrExpired      = errors.New("expired")
	ErrValidation   = errors.New("validation error")
	ErrUnavailable  = errors.New("server unavailable")
)

// Error is a backend failure with the user-facing detail message the server
// returned. It unwraps to one of the sentinel errors above.
type Error struct {
	Status int
	Detail string
	kind   error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

func (e *Error) Unwrap() error { return e.kind }

// newStatusError maps an HTTP status to the error taxonomy.
func newStatusError(status int, detail string) *Error {
	var kind error
	switch {
	case status == 401 || status == 403:
		kind = ErrUnauthorized
	case status == 404:
		kind = ErrNotFound
	case status == 410:
		kind = ErrExpired
	case status == 400 || status == 422:
		kind = ErrValidation
	default:
		kind = ErrUnavailable
	}
	return &Error{Status: status, Detail: detail, kind: kind}
}

// Detail extracts the backend message from err, falling back to err.Error().
// Used by views to surface the error text unmodified.
func Detail(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return err.Error()
}
