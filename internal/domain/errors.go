package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Civic-data specific errors
	ErrInvalidLevel       ErrorCode = "INVALID_LEVEL"
	ErrCandidateNotFound  ErrorCode = "CANDIDATE_NOT_FOUND"
	ErrQuestionNotFound   ErrorCode = "QUESTION_NOT_FOUND"
	ErrDatasetUnavailable ErrorCode = "DATASET_UNAVAILABLE"
	ErrSessionRequired    ErrorCode = "SESSION_REQUIRED"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(ErrNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewInvalidLevelError(level string) *DomainError {
	return NewError(ErrInvalidLevel, fmt.Sprintf("Invalid election level: %s", level), nil)
}

func NewCandidateNotFoundError(candidateID string) *DomainError {
	return NewError(ErrCandidateNotFound, fmt.Sprintf("Candidate not found with ID: %s", candidateID), nil)
}

func NewDatasetUnavailableError(err error) *DomainError {
	return NewError(ErrDatasetUnavailable, "Candidate dataset could not be loaded", err)
}

func NewSessionRequiredError() *DomainError {
	return NewError(ErrSessionRequired, "A session ID is required for this operation", nil)
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates field-level validation failures so a request can
// report all of them at once.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", e[0].Error())
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "is required"}
}

func NewInvalidFormatError(field, value string) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("has invalid format: %s", value)}
}
