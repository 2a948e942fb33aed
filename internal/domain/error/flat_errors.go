// Package error defines domain-specific errors for the PG Manager application.
package error

import "errors"

// Flat domain errors.
var (
	// ErrFlatNotFound is returned when a flat is not found in the system.
	ErrFlatNotFound = errors.New("flat not found")

	// ErrFlatDoesNotBelongToUser is returned when the flat does not belong to the user.
	ErrFlatDoesNotBelongToUser = errors.New("flat does not belong to user")

	// ErrNegativeRentAmount is returned when a rent amount is negative.
	ErrNegativeRentAmount = errors.New("rent amount must not be negative")

	// ErrMissingFlatName is returned when a flat name is empty.
	ErrMissingFlatName = errors.New("flat name is required")
)

// FlatErrorCode defines error codes for flat errors.
// Format: FLT-XXYYYY where XX is category and YYYY is specific error.
type FlatErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeFlatNotFound            FlatErrorCode = "FLT-010001"
	ErrCodeFlatDoesNotBelongToUser FlatErrorCode = "FLT-010002"
	ErrCodeNegativeRentAmount      FlatErrorCode = "FLT-010003"
	ErrCodeMissingFlatName         FlatErrorCode = "FLT-010004"
)

// FlatError represents a flat error with code and message.
type FlatError struct {
	Code    FlatErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FlatError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FlatError) Unwrap() error {
	return e.Err
}

// NewFlatError creates a new FlatError with the given code and message.
func NewFlatError(code FlatErrorCode, message string, err error) *FlatError {
	return &FlatError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
