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

// UpdateExpenseInput represents the input for expense update.
type UpdateExpenseInput struct {
	ExpenseID   uuid.UUID
	UserID      uuid.UUID
	Category    *entity.ExpenseCategory // Optional
	Description *string                 // Optional
	Amount      *decimal.Decimal        // Optional
	Date        *time.Time              // Optional
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	// Find the existing expense
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}

	// Check if user is authorized to modify this expense
	if expense.UserID != input.UserID {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	// Update category if provided
	if input.Category != nil {
		if !entity.ValidExpenseCategory(*input.Category) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseCategory,
				"invalid expense category",
				domainerror.ErrInvalidExpenseCategory,
			)
		}
		expense.Category = *input.Category
	}

	// Update description if provided
	if input.Description != nil {
		expense.Description = strings.TrimSpace(*input.Description)
	}

	// Update amount if provided
	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeNegativeExpenseAmount,
				"expense amount must not be negative",
				domainerror.ErrNegativeExpenseAmount,
			)
		}
		expense.Amount = *input.Amount
	}

	// Update date if provided
	if input.Date != nil {
		expense.Date = input.Date.UTC()
	}

	// Update timestamp
	expense.UpdatedAt = time.Now().UTC()

	// Save updated expense
	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &UpdateExpenseOutput{
		Expense: expense,
	}, nil
}
