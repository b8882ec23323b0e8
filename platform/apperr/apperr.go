// Package apperr provides standardized domain error types for the application.
// Domain services return these typed errors, and the callable layer maps them
// to a wire status code and an HTTP status.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind represents the category of error.
type Kind int

const (
	// KindUnknown is used for upstream failures that carry no better category.
	KindUnknown Kind = iota
	// KindInvalidArgument indicates malformed or missing caller input.
	KindInvalidArgument
	// KindFailedPrecondition indicates the server is not in a state to serve the call.
	KindFailedPrecondition
	// KindInternal indicates an unexpected internal error.
	KindInternal
	// KindDeadlineExceeded indicates an outbound call did not finish in time.
	KindDeadlineExceeded
	// KindUnauthenticated indicates a missing or invalid caller token.
	KindUnauthenticated
	// KindNotFound indicates a resource was not found.
	KindNotFound
	// KindResourceExhausted indicates the caller hit a rate limit.
	KindResourceExhausted
)

var kindStatus = map[Kind]string{
	KindUnknown:            "UNKNOWN",
	KindInvalidArgument:    "INVALID_ARGUMENT",
	KindFailedPrecondition: "FAILED_PRECONDITION",
	KindInternal:           "INTERNAL",
	KindDeadlineExceeded:   "DEADLINE_EXCEEDED",
	KindUnauthenticated:    "UNAUTHENTICATED",
	KindNotFound:           "NOT_FOUND",
	KindResourceExhausted:  "RESOURCE_EXHAUSTED",
}

// String returns the wire status code for the kind, e.g. "INVALID_ARGUMENT".
func (k Kind) String() string {
	if s, ok := kindStatus[k]; ok {
		return s
	}
	return kindStatus[KindUnknown]
}

// ParseKind maps a wire status code back to a Kind.
// Unrecognized codes map to KindUnknown.
func ParseKind(status string) Kind {
	for kind, s := range kindStatus {
		if s == status {
			return kind
		}
	}
	return KindUnknown
}

// Error is a domain error with a typed Kind.
type Error struct {
	Kind    Kind
	Message string
	Op      string      // Operation that failed (optional)
	Err     error       // Underlying error (optional)
	Details interface{} // Additional details for response (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the appropriate HTTP status code for this error kind.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindInvalidArgument, KindFailedPrecondition:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindResourceExhausted:
		return http.StatusTooManyRequests
	case KindDeadlineExceeded:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// New creates a new domain error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithOp returns the error with the operation set.
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

// WithDetails returns the error with additional details.
func (e *Error) WithDetails(details interface{}) *Error {
	e.Details = details
	return e
}

// Convenience constructors for common error types.

// InvalidArgument creates an invalid argument error.
func InvalidArgument(message string) *Error {
	return New(KindInvalidArgument, message)
}

// FailedPrecondition creates a failed precondition error.
func FailedPrecondition(message string) *Error {
	return New(KindFailedPrecondition, message)
}

// Internal creates an internal error.
func Internal(message string) *Error {
	return New(KindInternal, message)
}

// Unknown creates an unknown error.
func Unknown(message string) *Error {
	return New(KindUnknown, message)
}

// DeadlineExceeded creates a deadline exceeded error.
func DeadlineExceeded(message string) *Error {
	return New(KindDeadlineExceeded, message)
}

// Unauthenticated creates an unauthenticated error.
func Unauthenticated(message string) *Error {
	return New(KindUnauthenticated, message)
}

// NotFound creates a not found error.
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// ResourceExhausted creates a rate limit error.
func ResourceExhausted(message string) *Error {
	return New(KindResourceExhausted, message)
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr, true
	}
	return nil, false
}

// GetKind extracts the error kind from an error.
// Returns KindInternal if the error is not an *Error.
func GetKind(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return KindInternal
}

// Is checks if err is an *Error with the given kind.
func Is(err error, kind Kind) bool {
	_, ok := As(err)
	return ok && GetKind(err) == kind
}
