package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// Configuration
	CodeConfiguration ErrorCode = "CONFIGURATION_ERROR"

	// Extraction errors (per-material, non-fatal to a generation batch)
	CodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	CodeEmptyContent      ErrorCode = "EMPTY_CONTENT"
	CodeExtractionFailed  ErrorCode = "EXTRACTION_FAILED"
	CodeNoUsableContent   ErrorCode = "NO_USABLE_CONTENT"

	// Generation errors
	CodeGenerationService ErrorCode = "GENERATION_SERVICE_ERROR"
	CodeEmptyResponse     ErrorCode = "EMPTY_RESPONSE"
	CodeMalformedResponse ErrorCode = "MALFORMED_RESPONSE"

	// Persistence
	CodePersistence ErrorCode = "PERSISTENCE_ERROR"
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

// Helper constructors for the error taxonomy

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewValidationError(message string) *DomainError {
	return NewError(CodeValidation, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

// NewConfigurationError reports a missing or invalid process-level setting.
// It is raised before any network attempt is made.
func NewConfigurationError(message string) *DomainError {
	return NewError(CodeConfiguration, message, nil)
}

func NewUnsupportedFormatError(message string) *DomainError {
	return NewError(CodeUnsupportedFormat, message, nil)
}

func NewEmptyContentError(message string) *DomainError {
	return NewError(CodeEmptyContent, message, nil)
}

func NewExtractionError(message string, err error) *DomainError {
	return NewError(CodeExtractionFailed, message, err)
}

func NewNoUsableContentError(message string) *DomainError {
	return NewError(CodeNoUsableContent, message, nil)
}

func NewGenerationServiceError(message string, err error) *DomainError {
	return NewError(CodeGenerationService, message, err)
}

func NewEmptyResponseError() *DomainError {
	return NewError(CodeEmptyResponse, "No response content from AI", nil)
}

func NewMalformedResponseError(err error) *DomainError {
	return NewError(CodeMalformedResponse, fmt.Sprintf("Failed to parse AI response: %v", err), err)
}

func NewPersistenceError(message string, err error) *DomainError {
	return NewError(CodePersistence, message, err)
}
