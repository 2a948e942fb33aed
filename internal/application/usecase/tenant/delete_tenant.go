// Package tenant contains tenant-related use cases.
package tenant

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mother-homes/backend/internal/application/adapter"
	domainerror "github.com/mother-homes/backend/internal/domain/error"
)

// DeleteTenantInput represents the input for tenant deletion.
type DeleteTenantInput struct {
	TenantID uuid.UUID
	UserID   uuid.UUID
}

// DeleteTenantOutput represents the output of tenant deletion.
type DeleteTenantOutput struct {
	Success bool
}

// DeleteTenantUseCase handles tenant deletion logic.
type DeleteTenantUseCase struct {
	tenantRepo adapter.TenantRepository
}

// NewDeleteTenantUseCase creates a new DeleteTenantUseCase instance.
func NewDeleteTenantUseCase(tenantRepo adapter.TenantRepository) *DeleteTenantUseCase {
	return &DeleteTenantUseCase{
		tenantRepo: tenantRepo,
	}
}

// Execute performs the tenant deletion.
func (uc *DeleteTenantUseCase) Execute(ctx context.Context, input DeleteTenantInput) (*DeleteTenantOutput, error) {
	// Find the existing tenant
	tenant, err := uc.tenantRepo.FindByID(ctx, input.TenantID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTenantNotFound) {
			return nil, domainerror.NewTenantError(
				domainerror.ErrCodeTenantNotFound,
				"tenant not found",
				domainerror.ErrTenantNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find tenant: %w", err)
	}

	// Check if user is authorized to delete this tenant
	if tenant.UserID != input.UserID {
		return nil, domainerror.NewTenantError(
			domainerror.ErrCodeTenantNotFound,
			"tenant not found",
			domainerror.ErrTenantNotFound,
		)
	}

	// Delete the tenant
	if err := uc.tenantRepo.Delete(ctx, input.TenantID); err != nil {
		return nil, fmt.Errorf("failed to delete tenant: %w", err)
	}

	return &DeleteTenantOutput{
		Success: true,
	}, nil
}
