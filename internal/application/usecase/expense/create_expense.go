// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mother-homes/backend/internal/application/adapter"
	"github.com/mother-homes/backend/internal/domain/entity"
	domainerror "github.com/mother-homes/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID      uuid.UUID
	FlatID      uuid.UUID
	Category    entity.ExpenseCategory
	Description string
	Amount      decimal.Decimal
	Date        time.Time // Zero value defaults to now
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	flatRepo    adapter.FlatRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository, flatRepo adapter.FlatRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		flatRepo:    flatRepo,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	// Validate category
	if !entity.ValidExpenseCategory(input.Category) {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseCategory,
			"invalid expense category",
			domainerror.ErrInvalidExpenseCategory,
		)
	}

	// Validate amount
	if input.Amount.IsNegative() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeNegativeExpenseAmount,
			"expense amount must not be negative",
			domainerror.ErrNegativeExpenseAmount,
		)
	}

	// Validate flat exists and belongs to user
	flat, err := uc.flatRepo.FindByID(ctx, input.FlatID)
	if err != nil {
		if errors.Is(err, domainerror.ErrFlatNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseFlatNotFound,
				"flat not found",
				domainerror.ErrExpenseFlatNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find flat: %w", err)
	}
	if flat.UserID != input.UserID {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseFlatNotFound,
			"flat not found",
			domainerror.ErrExpenseFlatNotFound,
		)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	// Create expense entity
	expense := entity.NewExpense(
		input.UserID,
		input.FlatID,
		input.Category,
		strings.TrimSpace(input.Description),
		input.Amount,
		date,
	)

	// Save expense to database
	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{
		Expense: expense,
	}, nil
}
