// Package apperrors provides typed domain errors shared across the API.
//
// Services and repositories return *Error values so that handlers can map
// failures to transport responses without string matching:
//
//	if apperrors.Is(err, apperrors.ErrNotFound) { ... }
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Re-exported for callers that only import this package.
var (
	Is = errors.Is
	As = errors.As
)

// Kind is a machine-readable error classification.
type Kind string

const (
	KindNotFound         Kind = "NOT_FOUND"
	KindUnauthorized     Kind = "UNAUTHORIZED"
	KindInvalidArgument  Kind = "INVALID_ARGUMENT"
	KindStoreUnavailable Kind = "STORE_UNAVAILABLE"
	KindInternal         Kind = "INTERNAL"
)

// HTTPStatus maps an error kind to its transport status code.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindInvalidArgument:
		return http.StatusBadRequest
	case KindStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error is a domain error with a kind, a message, and an optional cause.
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// HTTPStatus returns the transport status code for this error.
func (e *Error) HTTPStatus() int {
	return e.Kind.HTTPStatus()
}

// Sentinels for use with errors.Is.
var (
	ErrNotFound         = &Error{Kind: KindNotFound, Message: "not found"}
	ErrUnauthorized     = &Error{Kind: KindUnauthorized, Message: "unauthorized"}
	ErrInvalidArgument  = &Error{Kind: KindInvalidArgument, Message: "invalid argument"}
	ErrStoreUnavailable = &Error{Kind: KindStoreUnavailable, Message: "store unavailable"}
	ErrInternal         = &Error{Kind: KindInternal, Message: "internal error"}
)

// NotFound creates a not-found error.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Unauthorized creates an unauthorized error.
func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

// InvalidArgument creates an invalid-argument error.
func InvalidArgument(msg string) *Error {
	return &Error{Kind: KindInvalidArgument, Message: msg}
}

// InvalidArgumentf creates an invalid-argument error with a formatted message.
func InvalidArgumentf(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// StoreUnavailable wraps a store-layer failure.
func StoreUnavailable(msg string, cause error) *Error {
	return &Error{Kind: KindStoreUnavailable, Message: msg, cause: cause}
}

// Internal wraps an unexpected failure.
func Internal(msg string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: msg, cause: cause}
}
