package domain

import "fmt"

// DomainError represents a domain-specific error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new DomainError
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     nil,
	}
}

// NewDomainErrorWithCause creates a new DomainError with an underlying cause
func NewDomainErrorWithCause(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain error codes
const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeRateLimited   = "RATE_LIMITED"
	ErrCodeConfiguration = "CONFIGURATION_ERROR"
	ErrCodeProvider      = "PROVIDER_ERROR"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// Validation errors
var (
	ErrMissingSessionID = NewDomainError(ErrCodeValidation, "missing session id")
	ErrMissingQuestion  = NewDomainError(ErrCodeValidation, "missing question")
)

// Rate limiting errors
var (
	ErrSessionLimitReached = NewDomainError(ErrCodeRateLimited, "session message limit reached")
)

// Configuration errors
var (
	ErrKnowledgeBaseMissing = NewDomainError(ErrCodeConfiguration, "knowledge base is not available")
)

// Provider errors
var (
	ErrEmbeddingFailed  = NewDomainError(ErrCodeProvider, "embedding generation failed")
	ErrCompletionFailed = NewDomainError(ErrCodeProvider, "completion generation failed")
)

// Not found errors
var (
	ErrProjectNotFound = NewDomainError(ErrCodeNotFound, "project not found")
)
