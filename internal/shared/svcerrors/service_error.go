package svcerrors

import (
	"errors"
	"fmt"
)

const (
	categoryInvalidArgument = "invalid_argument"
	categoryInternal        = "internal"
	categoryUnavailable     = "unavailable"
)

const (
	errorCodeInternalPanic     = "SYS_9000"
	errorCodeInternalUndefined = "SYS_9001"
)

// NewInvalidArgumentError creates a new ServiceError with category invalid_argument.
func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInvalidArgument,
		Code:     code,
		Message:  message,
		Cause:    cause,
	}
}

// NewInternalError creates a new ServiceError with category internal.
func NewInternalError(code string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInternal,
		Code:     code,
		Message:  "internal error",
		Cause:    cause,
	}
}

// NewUnavailableError creates a new ServiceError with category unavailable.
// Used for dependencies (broker, aggregate store) that cannot be reached.
func NewUnavailableError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryUnavailable,
		Code:     code,
		Message:  message,
		Cause:    cause,
	}
}

// NewInternalErrorUndefined creates a new ServiceError with category internal and code SYS_9001.
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

func NewInternalErrorPanic(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalPanic, cause)
}

func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// ServiceError represents a service-level error with category, code, message, and cause.
// It implements the error interface and supports error wrapping.
type ServiceError struct {
	Category string // invalid_argument, internal, or unavailable
	Code     string // service-owned stable code (e.g. EVT_1000)
	Message  string // human-readable, safe to ship on the logs topic
	Cause    error  // wrapped underlying error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}

func (e *ServiceError) IsInvalidArgument() bool {
	return e.Category == categoryInvalidArgument
}
