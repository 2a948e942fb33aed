// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory represents the category of an expense.
type ExpenseCategory string

const (
	ExpenseCategoryRent        ExpenseCategory = "rent"
	ExpenseCategoryMaintenance ExpenseCategory = "maintenance"
	ExpenseCategoryMaid        ExpenseCategory = "maid"
	ExpenseCategoryFood        ExpenseCategory = "food"
	ExpenseCategoryCleaning    ExpenseCategory = "cleaning"
	ExpenseCategoryRepairs     ExpenseCategory = "repairs"
	ExpenseCategoryOther       ExpenseCategory = "other"
)

// ValidExpenseCategory reports whether the given category is a known one.
func ValidExpenseCategory(category ExpenseCategory) bool {
	switch category {
	case ExpenseCategoryRent, ExpenseCategoryMaintenance, ExpenseCategoryMaid,
		ExpenseCategoryFood, ExpenseCategoryCleaning, ExpenseCategoryRepairs,
		ExpenseCategoryOther:
		return true
	default:
		return false
	}
}

// Expense represents a dated, categorized cost attributed to a Flat.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	FlatID      uuid.UUID
	Category    ExpenseCategory
	Description string
	Amount      decimal.Decimal // Non-negative
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	userID, flatID uuid.UUID,
	category ExpenseCategory,
	description string,
	amount decimal.Decimal,
	date time.Time,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:          uuid.New(),
		UserID:      userID,
		FlatID:      flatID,
		Category:    category,
		Description: description,
		Amount:      amount,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
