package shared

import "errors"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target carries the same code, so errors.Is(err, ErrNotFound)
// matches any NOT_FOUND error regardless of its message.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Ledger error codes
const (
	CodeValidation             = "VALIDATION_ERROR"
	CodeNotFound               = "NOT_FOUND"
	CodeDuplicateCode          = "DUPLICATE_CODE"
	CodeDuplicateObligation    = "DUPLICATE_OBLIGATION"
	CodeInvalidAccountBinding  = "INVALID_ACCOUNT_BINDING"
	CodeInvalidState           = "INVALID_STATE"
	CodeOverApplication        = "OVER_APPLICATION"
	CodeAlreadyDeposited       = "ALREADY_DEPOSITED"
	CodeSameInstrument         = "SAME_INSTRUMENT"
	CodeLimitExceeded          = "LIMIT_EXCEEDED"
	CodeHasDependents          = "HAS_DEPENDENTS"
	CodeEmptySelection         = "EMPTY_SELECTION"
	CodeInvalidAmount          = "INVALID_AMOUNT"
	CodeConcurrentModification = "CONCURRENT_MODIFICATION"
)

// Common domain errors
var (
	ErrNotFound            = NewDomainError(CodeNotFound, "Resource not found")
	ErrInvalidState        = NewDomainError(CodeInvalidState, "Operation not allowed in current state")
	ErrConcurrencyConflict = NewDomainError(CodeConcurrentModification, "Resource was modified by another process")
	ErrAlreadyDeposited    = NewDomainError(CodeAlreadyDeposited, "Cash transaction already belongs to a deposit")
	ErrSameInstrument      = NewDomainError(CodeSameInstrument, "Source and destination instruments must differ")
	ErrEmptySelection      = NewDomainError(CodeEmptySelection, "At least one transaction must be selected")
)

// NewValidationError creates a VALIDATION_ERROR domain error
func NewValidationError(message string) *DomainError {
	return NewDomainError(CodeValidation, message)
}

// NewNotFoundError creates a NOT_FOUND domain error for the named resource
func NewNotFoundError(resource string) *DomainError {
	return NewDomainError(CodeNotFound, resource+" not found")
}

// ErrorCode returns the domain code carried by err, or "" if err is not a DomainError
func ErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
