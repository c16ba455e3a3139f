// Package apperror provides the structured error type every layer of
// the platform returns. Handlers render an AppError into a single JSON
// problem body; repositories and services map infrastructure failures
// into the closest code.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes exposed to API clients.
const (
	CodeInternal = "INTERNAL_ERROR"

	CodeValidation = "VALIDATION_ERROR"

	CodeBusinessRule           = "BUSINESS_RULE_VIOLATION"
	CodeDocumentPosted         = "DOCUMENT_ALREADY_POSTED"
	CodePeriodClosed           = "PERIOD_CLOSED"
	CodeConcurrentModification = "CONCURRENT_MODIFICATION"

	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"

	CodeNotFound = "NOT_FOUND"

	CodeConflict    = "CONFLICT"
	CodeIdempotency = "IDEMPOTENCY_CONFLICT"
)

// AppError carries a machine-readable code, a human message and
// structured details. It wraps the underlying cause for errors.Is/As.
type AppError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`

	// HTTPStatus is the status the handler should respond with
	HTTPStatus int `json:"-"`

	// Err is the underlying cause, never rendered to clients
	Err error `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a key-value pair to error details.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying error.
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

func newError(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// NewValidation creates a validation error (400).
func NewValidation(message string) *AppError {
	return newError(CodeValidation, message, http.StatusBadRequest)
}

// NewNotFound creates a not found error (404).
func NewNotFound(entity string, id any) *AppError {
	return newError(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound).
		WithDetail("entity", entity).
		WithDetail("id", id)
}

// NewBusinessRule creates a business rule violation (422) with a
// caller-chosen code such as CodeDocumentPosted.
func NewBusinessRule(code, message string) *AppError {
	return newError(code, message, http.StatusUnprocessableEntity)
}

// NewConcurrentModification signals an optimistic locking failure.
func NewConcurrentModification(entity string, id any) *AppError {
	return newError(CodeConcurrentModification,
		"Record was modified by another user. Please refresh and try again.",
		http.StatusConflict).
		WithDetail("entity", entity).
		WithDetail("id", id)
}

// NewInternal wraps an unexpected error; the cause stays server-side.
func NewInternal(err error) *AppError {
	e := newError(CodeInternal, "Internal server error", http.StatusInternalServerError)
	e.Err = err
	return e
}

// NewUnauthorized creates an authentication error (401).
func NewUnauthorized(message string) *AppError {
	return newError(CodeUnauthorized, message, http.StatusUnauthorized)
}

// NewForbidden creates an authorization error (403).
func NewForbidden(message string) *AppError {
	return newError(CodeForbidden, message, http.StatusForbidden)
}

// NewIdempotencyConflict is returned when the keyed operation is
// already in progress or completed.
func NewIdempotencyConflict(key string) *AppError {
	return newError(CodeIdempotency,
		"Operation already in progress or completed", http.StatusConflict).
		WithDetail("idempotency_key", key)
}

// NewIdempotencyMismatch is returned when the same idempotency key is
// reused for a different request.
func NewIdempotencyMismatch(key string) *AppError {
	return newError(CodeIdempotency, "Idempotency key mismatch", http.StatusConflict).
		WithDetail("idempotency_key", key)
}

// NewPeriodClosed rejects document changes in a closed period.
func NewPeriodClosed(period string) *AppError {
	return newError(CodePeriodClosed,
		fmt.Sprintf("Period %s is closed for modifications", period),
		http.StatusUnprocessableEntity).
		WithDetail("period", period)
}

// NewConflict creates a conflict error (409).
func NewConflict(message string) *AppError {
	return newError(CodeConflict, message, http.StatusConflict)
}

// IsAppError checks if error is AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError extracts AppError from error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsNotFound checks if error is CodeNotFound.
func IsNotFound(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == CodeNotFound
	}
	return false
}
