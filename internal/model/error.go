package model

import (
	"errors"
	"fmt"
)

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for domain and API errors
const (
	ErrCodeTypeMismatch     = "TYPE_MISMATCH"
	ErrCodeValueViolation   = "VALUE_VIOLATION"
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeMissingField     = "MISSING_FIELD"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeReceiptNotFound  = "RECEIPT_NOT_FOUND"
	ErrCodeOfferNotFound    = "OFFER_NOT_FOUND"
	ErrCodeUnauthorised     = "UNAUTHORIZED"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeInvalidID        = "INVALID_ID"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

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

// NewTypeError reports a value of the wrong kind, e.g. a non-finite quantity.
func NewTypeError(format string, args ...any) *DomainError {
	return NewDomainError(ErrCodeTypeMismatch, fmt.Sprintf(format, args...))
}

// NewValueError reports a value of the right kind that breaks an invariant.
func NewValueError(format string, args ...any) *DomainError {
	return NewDomainError(ErrCodeValueViolation, fmt.Sprintf(format, args...))
}

// IsTypeMismatch reports whether err carries a TYPE_MISMATCH domain error.
func IsTypeMismatch(err error) bool {
	return hasCode(err, ErrCodeTypeMismatch)
}

// IsValueViolation reports whether err carries a VALUE_VIOLATION domain error.
func IsValueViolation(err error) bool {
	return hasCode(err, ErrCodeValueViolation)
}

func hasCode(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// Common domain errors
var (
	ErrReceiptNotFound = NewDomainError(ErrCodeReceiptNotFound, "receipt not found")
	ErrOfferNotFound   = NewDomainError(ErrCodeOfferNotFound, "offer not found")
)
