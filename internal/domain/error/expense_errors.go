// Package error defines domain-specific errors for the PG Manager application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrExpenseFlatNotFound is returned when the flat referenced by an expense does not exist.
	ErrExpenseFlatNotFound = errors.New("flat not found")

	// ErrNegativeExpenseAmount is returned when an expense amount is negative.
	ErrNegativeExpenseAmount = errors.New("expense amount must not be negative")

	// ErrInvalidExpenseCategory is returned when the expense category is not a known one.
	ErrInvalidExpenseCategory = errors.New("invalid expense category")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeExpenseNotFound        ExpenseErrorCode = "EXP-010001"
	ErrCodeExpenseFlatNotFound    ExpenseErrorCode = "EXP-010002"
	ErrCodeNegativeExpenseAmount  ExpenseErrorCode = "EXP-010003"
	ErrCodeInvalidExpenseCategory ExpenseErrorCode = "EXP-010004"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
