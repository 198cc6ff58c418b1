// Package whynoterrors provides a tiny HTTP error value for Go
// web services: a status code paired with a message, constructors
// for the common statuses, and helpers that render the value
// straight into an HTTP response. A separate SetupError covers
// failures during process bootstrap, before any request exists.
package whynoterrors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the error type for in-request failures. Use it in
// basically all scenarios where a handler needs to fail.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Code: %d; %s;", e.Status, e.Message)
}

// New creates an AppError with an explicit status and message.
func New(status int, v any) *AppError {
	return &AppError{
		Status:  status,
		Message: display(v),
	}
}

// Newf creates an AppError with an explicit status and a formatted message.
func Newf(status int, format string, args ...any) *AppError {
	return New(status, fmt.Sprintf(format, args...))
}

// NotFound creates a 404 error with the fixed message "Not Found".
func NotFound() *AppError {
	return New(http.StatusNotFound, "Not Found")
}

// BadRequest creates a 400 error from any displayable value.
func BadRequest(v any) *AppError {
	return New(http.StatusBadRequest, v)
}

// BadRequestf creates a 400 error with a formatted message.
func BadRequestf(format string, args ...any) *AppError {
	return BadRequest(fmt.Sprintf(format, args...))
}

// ServerError creates a 500 error from any displayable value.
func ServerError(v any) *AppError {
	return New(http.StatusInternalServerError, v)
}

// ServerErrorf creates a 500 error with a formatted message.
func ServerErrorf(format string, args ...any) *AppError {
	return ServerError(fmt.Sprintf(format, args...))
}

// From is the catch-all conversion for when a lower layer fails
// generically and no more specific status applies. An *AppError
// passes through unchanged, including one buried in a wrapped error
// chain; anything else becomes a 500 with the value's display string.
// To pick the status, use Mapper instead.
func From(v any) *AppError {
	if e, ok := v.(*AppError); ok {
		return e
	}
	if err, ok := v.(error); ok {
		var e *AppError
		if errors.As(err, &e) {
			return e
		}
	}
	return ServerError(v)
}

// Mapper returns a reusable function that wraps any displayable
// value into an AppError with the given status. It adapts generic
// failures from sub-operations without repeating the status:
//
//	user, err := store.Lookup(id)
//	if err != nil {
//		return whynoterrors.Mapper(http.StatusBadGateway)(err)
//	}
func Mapper(status int) func(v any) *AppError {
	return func(v any) *AppError {
		return New(status, v)
	}
}

// display renders a message argument. Strings pass through so the
// message is exactly what the caller supplied, byte for byte.
func display(v any) string {
	switch m := v.(type) {
	case string:
		return m
	case error:
		return m.Error()
	case fmt.Stringer:
		return m.String()
	default:
		return fmt.Sprint(v)
	}
}
