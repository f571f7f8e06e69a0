package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrStore indicates that the underlying persistence layer failed (open, migrate or query).
var ErrStore = errors.New("store error")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError builds an AppError. Codes >= 500 are treated as store failures.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewStoreError is shorthand for a 500 AppError that matches ErrStore.
func NewStoreError(message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, message, err)
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrStore) succeed for server-side failures.
func (e *AppError) Is(target error) bool {
	return target == ErrStore && e.Code >= http.StatusInternalServerError
}

// NonCriticalWarning describes a side-effect step that failed after the
// primary write already succeeded. It is logged, never returned to callers.
type NonCriticalWarning struct {
	Step string
	Err  error
}

func NewNonCriticalWarning(step string, err error) *NonCriticalWarning {
	return &NonCriticalWarning{Step: step, Err: err}
}

func (w *NonCriticalWarning) Error() string {
	return fmt.Sprintf("non-critical step %q failed: %v", w.Step, w.Err)
}

func (w *NonCriticalWarning) Unwrap() error {
	return w.Err
}

// UserMessage maps an error to the message shown to the person at the counter.
// Every surfaced failure is phrased so the action can simply be retried.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return "Some details look wrong. Please check the entry and try again."
	case errors.Is(err, ErrNotFound):
		return "That record could not be found. Please refresh and try again."
	case errors.Is(err, ErrDuplicate):
		return "That entry already exists. Please use a different name and try again."
	default:
		return "Something went wrong while saving. Please try again."
	}
}

// StatusCode maps an error category to an HTTP status.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
