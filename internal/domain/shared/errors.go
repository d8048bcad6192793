package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors.
//
// ErrNotFound covers both "row does not exist" and "row exists but is owned
// by a different tenant". The two causes are deliberately indistinguishable
// outside the storage layer so that a caller cannot probe for the existence
// of another tenant's data.
var (
	ErrNotFound       = NewDomainError("NOT_FOUND", "Resource not found")
	ErrTenantRequired = NewDomainError("TENANT_REQUIRED", "A tenant ID is required for this entity")
	ErrDuplicateKey   = NewDomainError("DUPLICATE_KEY", "A resource with the same unique key already exists")
	ErrForeignKey     = NewDomainError("FOREIGN_KEY_VIOLATION", "A referenced resource does not exist")
	ErrInvalidInput   = NewDomainError("INVALID_INPUT", "Invalid input provided")
)

// NewValidationError creates a validation error for a failed precondition
// detected before any store round-trip.
func NewValidationError(message string) *DomainError {
	return NewDomainError("VALIDATION_ERROR", message)
}

// NewConflictError reports an operation refused because of the current
// state of the data, such as deleting a quote that already has invoices.
func NewConflictError(message string) *DomainError {
	return NewDomainError("CONFLICT", message)
}

// NewStorageError wraps an I/O, timeout or connection failure from the
// underlying store. Always retryable at the caller's discretion.
func NewStorageError(err error) *DomainError {
	return NewDomainError("STORAGE_ERROR", fmt.Sprintf("storage operation failed: %v", err))
}
