package apperrors

import (
	"errors"
	"fmt"
)

// Resource errors. The per-resource variants wrap ErrResourceNotFound so
// callers can match either the specific or the generic sentinel.
var (
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	ErrCourseNotFound       = fmt.Errorf("%w: course", ErrResourceNotFound)
	ErrRegistrationNotFound = fmt.Errorf("%w: registration", ErrResourceNotFound)
	ErrFaqNotFound          = fmt.Errorf("%w: faq", ErrResourceNotFound)
	ErrAnnouncementNotFound = fmt.Errorf("%w: announcement", ErrResourceNotFound)
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")
	ErrPermissionDenied   = errors.New("permission denied")
)

// Workflow errors. These map the failure kinds of the registration flow:
// validation blocks advancement only, submission failures keep the draft for
// a retry, and downstream notification failures never roll anything back.
var (
	ErrValidationFailed   = errors.New("validation failed")
	ErrBadRequest         = errors.New("bad request")
	ErrSubmissionFailed   = errors.New("submission failed")
	ErrRegistrationClosed = errors.New("registration is closed for this course")
	ErrSessionNotFound    = errors.New("registration session not found")
	ErrSessionClosed      = errors.New("registration session already closed")
	ErrSubmitInProgress   = errors.New("submission already in progress")
)

// NewResourceNotFoundError creates a not-found error with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewBadRequestError creates a bad-request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}

// NewValidationError creates a validation error carrying the user-facing message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewSubmissionError wraps a store failure so callers can treat it as retryable
func NewSubmissionError(cause error, message string) error {
	return &CustomError{Err: ErrSubmissionFailed, Cause: cause, Message: message}
}

// CustomError carries a sentinel for classification plus a user-facing message.
type CustomError struct {
	Err     error
	Cause   error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes the sentinel to errors.Is
func (e *CustomError) Unwrap() error {
	return e.Err
}
