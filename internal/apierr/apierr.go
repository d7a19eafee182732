// Package apierr defines the closed set of failure kinds the API can return
// and their mapping to wire-level status codes and client-visible messages.
//
// Every externally observable failure is represented by exactly one *Error.
// The HTTP status is a pure function of the kind, never of message content.
// Internal causes (driver errors, binding errors) are kept as an opaque
// string for logging and are never serialized: clients of a Database or
// Framework failure only ever see a fixed generic message.
//
// Conventions:
//   - Codes are lowercase snake_case and stable; clients branch on them.
//   - NotFound and Validation messages derive from request shape and are
//     safe to echo. Database and Framework messages are fixed strings.
package apierr

import (
	"net/http"
)

// Kind enumerates the failure taxonomy. The set is closed: handlers must
// translate every error into one of these before responding.
type Kind int

const (
	// KindDatabase is any failure originating from the persistence layer:
	// connectivity, query failure, constraint violation.
	KindDatabase Kind = iota
	// KindFramework is any failure surfaced by the request-handling
	// infrastructure itself, e.g. a body-extraction failure.
	KindFramework
	// KindNotFound means the requested resource does not exist.
	KindNotFound
	// KindValidation means one or more field-level constraints failed.
	KindValidation
)

// Stable machine-readable codes, one per kind.
const (
	CodeDatabase   = "database_error"
	CodeFramework  = "internal_error"
	CodeNotFound   = "not_found"
	CodeValidation = "validation_failed"
)

// Error is the single error type crossing the handler boundary. It carries
// the kind, a client-safe message, an opaque internal cause (logged, never
// serialized) and, for validation failures, the ordered detail list.
type Error struct {
	kind     Kind
	message  string
	internal string
	details  []string
}

// Database wraps a persistence-layer failure. The cause is retained for
// logging only; the client sees the fixed "Database error" message.
func Database(cause error) *Error {
	e := &Error{kind: KindDatabase, message: "Database error"}
	if cause != nil {
		e.internal = cause.Error()
	}
	return e
}

// Framework wraps an infrastructure failure (extraction, serialization).
// The cause is retained for logging only; the client sees the fixed
// "Internal server error" message.
func Framework(cause error) *Error {
	e := &Error{kind: KindFramework, message: "Internal server error"}
	if cause != nil {
		e.internal = cause.Error()
	}
	return e
}

// NotFound reports a missing resource with a caller-supplied description,
// e.g. "Course not found". The message passes through to the client.
func NotFound(msg string) *Error {
	return &Error{kind: KindNotFound, message: msg}
}

// Validation reports field-level constraint violations. details is the
// ordered list produced by the validation aggregator and is serialized
// verbatim; ordering must already be deterministic.
func Validation(msg string, details []string) *Error {
	return &Error{kind: KindValidation, message: msg, details: details}
}

// Error implements the error interface. It returns the client-safe message;
// the internal cause is available separately via Internal.
func (e *Error) Error() string { return e.message }

// Kind returns the taxonomy variant.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the client-visible top-level message.
func (e *Error) Message() string { return e.message }

// Internal returns the opaque internal cause for logging, or "" when the
// failure has no hidden cause (NotFound, Validation).
func (e *Error) Internal() string { return e.internal }

// Details returns the ordered per-field detail strings. Nil for every kind
// except KindValidation.
func (e *Error) Details() []string { return e.details }

// Code returns the stable machine-readable code for the kind.
func (e *Error) Code() string {
	switch e.kind {
	case KindDatabase:
		return CodeDatabase
	case KindFramework:
		return CodeFramework
	case KindNotFound:
		return CodeNotFound
	default:
		return CodeValidation
	}
}

// Status maps the kind to its HTTP status code. The mapping depends only on
// the kind.
func (e *Error) Status() int {
	switch e.kind {
	case KindDatabase, KindFramework:
		return http.StatusInternalServerError
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// ErrorBody is the JSON envelope for Database, Framework and NotFound
// failures.
type ErrorBody struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code
	Code string `json:"code" example:"not_found"`
	// Human-readable message (safe to show to users)
	ErrorMessage string `json:"error_message" example:"Course not found"`
}

// ValidationBody is the JSON envelope for Validation failures. Errors holds
// one "path: message" line per violated constraint, in deterministic order.
type ValidationBody struct {
	RequestID     string   `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	CustomMessage string   `json:"custom_message" example:"Validation error"`
	Errors        []string `json:"errors"`
}

// Body produces the serializable response body for this error, tagged with
// the given request correlation id. Together with Status it forms the full
// wire representation: every kind yields (status, body) and nothing else.
func (e *Error) Body(requestID string) any {
	if e.kind == KindValidation {
		details := e.details
		if details == nil {
			details = []string{}
		}
		return ValidationBody{
			RequestID:     requestID,
			CustomMessage: e.message,
			Errors:        details,
		}
	}
	return ErrorBody{
		RequestID:    requestID,
		Code:         e.Code(),
		ErrorMessage: e.message,
	}
}
