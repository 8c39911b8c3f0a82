package util

import (
	"ClinicDesk/validation"
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindConflict
	KindAuth
	KindDependency
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindAuth:
		return "auth"
	case KindDependency:
		return "dependency"
	default:
		return "unknown"
	}
}

// AppError carries the client-facing message separately from the wrapped
// cause. Only Message and Details ever reach a response body.
type AppError struct {
	Kind    Kind
	Message string
	Details []validation.FieldError
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) StatusCode() int {
	switch e.Kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func NewValidationError(message string, details []validation.FieldError) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Details: details}
}

func NewConflictError(message string, err error) *AppError {
	return &AppError{Kind: KindConflict, Message: message, Err: err}
}

func NewAuthError(err error) *AppError {
	return &AppError{Kind: KindAuth, Message: INVALID_CREDENTIALS, Err: err}
}

func NewDependencyError(message string, err error) *AppError {
	return &AppError{Kind: KindDependency, Message: message, Err: err}
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func IsKind(err error, kind Kind) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Kind == kind
}

// StatusFor maps any error to the HTTP status it should produce. Errors
// outside the taxonomy are treated as dependency failures.
func StatusFor(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.StatusCode()
	}
	return http.StatusInternalServerError
}
