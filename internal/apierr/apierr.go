package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// Validation is a 400: a required field is missing or malformed.
func Validation(message string) *Error {
	return New(http.StatusBadRequest, "validation", errors.New(message))
}

// NotFound is a 404. It covers both "does not exist" and "exists but is not
// owned by the caller" so that existence is never leaked.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, "not_found", errors.New(message))
}

// Unauthorized is a 401: missing or unresolvable bearer token.
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, "unauthorized", errors.New(message))
}

// Internal is a 500. The message is what the caller sees; the underlying
// cause must be logged by the service, never serialized.
func Internal(message string) *Error {
	return New(http.StatusInternalServerError, "internal", errors.New(message))
}

// Status extracts the HTTP status for err, defaulting to 500.
func Status(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Status != 0 {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}
