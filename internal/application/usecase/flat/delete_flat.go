// Package flat contains flat-related use cases.
package flat

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mother-homes/backend/internal/application/adapter"
	domainerror "github.com/mother-homes/backend/internal/domain/error"
)

// DeleteFlatInput represents the input for flat deletion.
type DeleteFlatInput struct {
	FlatID uuid.UUID
	UserID uuid.UUID
}

// DeleteFlatOutput represents the output of flat deletion.
type DeleteFlatOutput struct {
	Success bool
}

// DeleteFlatUseCase handles flat deletion logic. Deleting a flat cascades
// to its tenants and expenses so no orphan records survive.
type DeleteFlatUseCase struct {
	flatRepo    adapter.FlatRepository
	tenantRepo  adapter.TenantRepository
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteFlatUseCase creates a new DeleteFlatUseCase instance.
func NewDeleteFlatUseCase(
	flatRepo adapter.FlatRepository,
	tenantRepo adapter.TenantRepository,
	expenseRepo adapter.ExpenseRepository,
) *DeleteFlatUseCase {
	return &DeleteFlatUseCase{
		flatRepo:    flatRepo,
		tenantRepo:  tenantRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute performs the flat deletion together with its dependent records.
func (uc *DeleteFlatUseCase) Execute(ctx context.Context, input DeleteFlatInput) (*DeleteFlatOutput, error) {
	// Find the existing flat
	flat, err := uc.flatRepo.FindByID(ctx, input.FlatID)
	if err != nil {
		if errors.Is(err, domainerror.ErrFlatNotFound) {
			return nil, domainerror.NewFlatError(
				domainerror.ErrCodeFlatNotFound,
				"flat not found",
				domainerror.ErrFlatNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find flat: %w", err)
	}

	// Check if user is authorized to delete this flat
	if flat.UserID != input.UserID {
		return nil, domainerror.NewFlatError(
			domainerror.ErrCodeFlatDoesNotBelongToUser,
			"flat does not belong to user",
			domainerror.ErrFlatDoesNotBelongToUser,
		)
	}

	// Remove dependent records first
	if err := uc.tenantRepo.DeleteByFlatID(ctx, input.FlatID); err != nil {
		return nil, fmt.Errorf("failed to delete flat tenants: %w", err)
	}
	if err := uc.expenseRepo.DeleteByFlatID(ctx, input.FlatID); err != nil {
		return nil, fmt.Errorf("failed to delete flat expenses: %w", err)
	}

	// Delete the flat
	if err := uc.flatRepo.Delete(ctx, input.FlatID); err != nil {
		return nil, fmt.Errorf("failed to delete flat: %w", err)
	}

	return &DeleteFlatOutput{
		Success: true,
	}, nil
}
