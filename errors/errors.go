// Package errors provides standardized error handling patterns for the Olympe
// entity construction layer. It includes error classification, standard error
// variables for the registry/schema taxonomy, and helper functions for
// consistent error wrapping across the system.
package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorInvalid represents errors due to invalid input, content, or configuration.
	// These are reported to the loader and never retried.
	ErrorInvalid ErrorClass = iota
	// ErrorFatal represents programming errors that should stop the bootstrap
	ErrorFatal
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorInvalid:
		return "invalid"
	case ErrorFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// Registry errors
	ErrDuplicateType        = errors.New("component type already registered")
	ErrUnknownComponentType = errors.New("unknown component type")

	// Schema store errors
	ErrSchemaTypeMismatch = errors.New("schema default value type mismatch")
	ErrAliasConflict      = errors.New("alias conflicts with existing mapping")

	// Validation errors
	ErrParameterTypeMismatch    = errors.New("parameter type mismatch")
	ErrMissingRequiredParameter = errors.New("missing required parameter")

	// Loader errors
	ErrUnrecognizedParameterType = errors.New("unrecognized parameter type")
	ErrMalformedDocument         = errors.New("malformed blueprint document")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrNotFound      = errors.New("not found")
)

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsFatal checks if an error is fatal and should stop the bootstrap
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorFatal
	}

	return false
}

// IsInvalid checks if an error is due to invalid input or content
func IsInvalid(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorInvalid
	}

	// Check for known invalid errors
	if errors.Is(err, ErrDuplicateType) ||
		errors.Is(err, ErrUnknownComponentType) ||
		errors.Is(err, ErrSchemaTypeMismatch) ||
		errors.Is(err, ErrAliasConflict) ||
		errors.Is(err, ErrParameterTypeMismatch) ||
		errors.Is(err, ErrMissingRequiredParameter) ||
		errors.Is(err, ErrUnrecognizedParameterType) ||
		errors.Is(err, ErrMalformedDocument) ||
		errors.Is(err, ErrInvalidConfig) {
		return true
	}

	return false
}

// Classify returns the error class for an error.
// Unknown errors default to invalid: everything in this layer is deterministic
// and in-memory, so there is no transient class to fall back to.
func Classify(err error) ErrorClass {
	if IsFatal(err) {
		return ErrorFatal
	}
	return ErrorInvalid
}

// newClassified creates a new classified error
// This is an internal helper - use WrapInvalid() or WrapFatal() instead.
func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapInvalid wraps an error as invalid with context
func WrapInvalid(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorInvalid, wrappedErr, component, method, wrappedErr.Error())
}

// WrapFatal wraps an error as fatal with context
func WrapFatal(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorFatal, wrappedErr, component, method, wrappedErr.Error())
}
