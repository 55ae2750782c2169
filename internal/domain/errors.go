package domain

import (
	"errors"
	"fmt"
)

// Common error types
type ErrNotFound struct {
	Entity string
	ID     string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found with ID: %s", e.Entity, e.ID)
}

// ValidationError represents an error that occurs due to invalid input or parameters
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error with the given message
func NewValidationError(message string) error {
	return ValidationError{
		Message: message,
	}
}

// FieldError is a validation failure tied to one form field. Key is a message
// catalog key, not display text.
type FieldError struct {
	Field string
	Key   string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Key)
}

// RequestError is a non-2xx answer from the template store. Message is the
// server-provided message and may be empty.
type RequestError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// LegacyConversionError is returned when a legacy core message cannot be
// turned into a design document
type LegacyConversionError struct {
	Err error
}

func (e *LegacyConversionError) Error() string {
	return fmt.Sprintf("legacy message conversion failed: %v", e.Err)
}

func (e *LegacyConversionError) Unwrap() error {
	return e.Err
}

var (
	ErrEditorNotReady    = errors.New("editor is not ready")
	ErrSaveInProgress    = errors.New("a save is already in progress")
	ErrTemplateNotLoaded = errors.New("template is not loaded")
	ErrUnauthorized      = errors.New("unauthorized")
)

// IsValidationError reports whether err is or wraps a ValidationError or FieldError
func IsValidationError(err error) bool {
	var ve ValidationError
	var fe *FieldError
	return errors.As(err, &ve) || errors.As(err, &fe)
}
