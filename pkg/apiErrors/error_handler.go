// Package apiErrors defines the typed error taxonomy of the API and the
// single place where an error becomes the standard error envelope.
package apiErrors

import (
	"encoding/json"
	"net/http"
	"time"
)

// Kind classifies an error at the point of failure. Handlers and the
// repository never inspect message text to decide a status code; they attach
// the kind where the failure happens.
type Kind int

const (
	// KindValidation is bad input shape or range, rejected at the boundary.
	KindValidation Kind = iota
	// KindNotFound is an unknown resource, e.g. a category absent from the store.
	KindNotFound
	// KindUnavailable is a store connectivity failure.
	KindUnavailable
	// KindStore is a query failure on a reachable store.
	KindStore
	// KindInternal is anything uncategorized.
	KindInternal
)

// Client-facing error codes.
const (
	CodeInvalidLimit     = "INVALID_LIMIT"
	CodeInvalidCategory  = "INVALID_CATEGORY"
	CodeCategoryNotFound = "CATEGORY_NOT_FOUND"
	CodeDatabaseError    = "DATABASE_ERROR"
	CodeNotFound         = "NOT_FOUND"
	CodeInternalError    = "INTERNAL_ERROR"
)

var httpStatusByKind = map[Kind]int{
	KindValidation:  http.StatusBadRequest,
	KindNotFound:    http.StatusNotFound,
	KindUnavailable: http.StatusServiceUnavailable,
	KindStore:       http.StatusInternalServerError,
	KindInternal:    http.StatusInternalServerError,
}

// Error is the standardized API error. Message is what the client sees; the
// wrapped cause stays server-side for logging and is never serialized.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// HTTPStatus returns the status mapped from the error kind.
func (e *Error) HTTPStatus() int {
	if status, ok := httpStatusByKind[e.Kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func Validation(code string, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

func NotFound(code string, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

// Store wraps a query failure with a generic client message. Raw driver
// errors must never leak to the client.
func Store(cause error, message string) *Error {
	return &Error{Kind: KindStore, Code: CodeDatabaseError, Message: message, cause: cause}
}

// Unavailable wraps a connectivity failure.
func Unavailable(cause error, message string) *Error {
	return &Error{Kind: KindUnavailable, Code: CodeDatabaseError, Message: message, cause: cause}
}

func Internal(cause error, message string) *Error {
	return &Error{Kind: KindInternal, Code: CodeInternalError, Message: message, cause: cause}
}

// From normalizes any error into an *Error, defaulting to KindInternal with
// a generic message so uncategorized failures never leak details.
func From(err error) *Error {
	if apiErr, ok := err.(*Error); ok {
		return apiErr
	}
	return Internal(err, "Internal server error")
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Success   bool      `json:"success"`
	Error     errorBody `json:"error"`
	Timestamp string    `json:"timestamp"`
}

// WriteError converts any error into the standard error envelope. Handlers
// never write error responses directly.
func WriteError(w http.ResponseWriter, err error) {
	apiErr := From(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.HTTPStatus())
	_ = json.NewEncoder(w).Encode(errorEnvelope{
		Success: false,
		Error: errorBody{
			Code:    apiErr.Code,
			Message: apiErr.Message,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
