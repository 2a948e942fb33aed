// Package error defines domain-specific errors for the PG Manager application.
package error

import "errors"

// Tenant domain errors.
var (
	// ErrTenantNotFound is returned when a tenant is not found in the system.
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrTenantFlatNotFound is returned when the flat referenced by a tenant does not exist.
	ErrTenantFlatNotFound = errors.New("flat not found")

	// ErrNegativeTenantRent is returned when a tenant rent amount is negative.
	ErrNegativeTenantRent = errors.New("rent amount must not be negative")

	// ErrMissingTenantName is returned when a tenant name is empty.
	ErrMissingTenantName = errors.New("tenant name is required")
)

// TenantErrorCode defines error codes for tenant errors.
// Format: TNT-XXYYYY where XX is category and YYYY is specific error.
type TenantErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTenantNotFound     TenantErrorCode = "TNT-010001"
	ErrCodeTenantFlatNotFound TenantErrorCode = "TNT-010002"
	ErrCodeNegativeTenantRent TenantErrorCode = "TNT-010003"
	ErrCodeMissingTenantName  TenantErrorCode = "TNT-010004"
)

// TenantError represents a tenant error with code and message.
type TenantError struct {
	Code    TenantErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TenantError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TenantError) Unwrap() error {
	return e.Err
}

// NewTenantError creates a new TenantError with the given code and message.
func NewTenantError(code TenantErrorCode, message string, err error) *TenantError {
	return &TenantError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
