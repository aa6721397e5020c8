package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrValidation     = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrNoFile         = New("NO_FILE", http.StatusBadRequest, "No file provided")
	ErrInvalidFile    = New("INVALID_FILE", http.StatusBadRequest, "invalid file")
	ErrInsertFailed   = New("SQL_INSERT_FAILED", http.StatusInternalServerError, "Failed to save event. Please try again.")
	ErrStorageTimeout = New("STORAGE_TIMEOUT", http.StatusServiceUnavailable, "Upload failed. Please try again.")
	ErrNotFound       = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrInternal       = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
	ErrCacheMiss      = New("CACHE_MISS", http.StatusNotFound, "cache miss")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// FieldErrors collects every violated field of a submission payload,
// keyed by the wire field name, so a client can highlight all of them
// in one round trip.
type FieldErrors struct {
	Fields map[string][]string `json:"fieldErrors"`
}

// NewFieldErrors returns an empty collector.
func NewFieldErrors() *FieldErrors {
	return &FieldErrors{Fields: make(map[string][]string)}
}

// Add appends a message for the given field.
func (f *FieldErrors) Add(field, message string) {
	if f.Fields == nil {
		f.Fields = make(map[string][]string)
	}
	f.Fields[field] = append(f.Fields[field], message)
}

// Empty reports whether no violations were recorded.
func (f *FieldErrors) Empty() bool {
	return f == nil || len(f.Fields) == 0
}

// Error implements the error interface.
func (f *FieldErrors) Error() string {
	if f.Empty() {
		return "no field errors"
	}
	return fmt.Sprintf("validation failed on %d field(s)", len(f.Fields))
}
