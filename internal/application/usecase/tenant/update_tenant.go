// Package tenant contains tenant-related use cases.
package tenant

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

// UpdateTenantInput represents the input for tenant update.
type UpdateTenantInput struct {
	TenantID   uuid.UUID
	UserID     uuid.UUID
	Name       *string          // Optional
	FlatID     *uuid.UUID       // Optional, moves the tenant to another flat
	RentAmount *decimal.Decimal // Optional
}

// UpdateTenantOutput represents the output of tenant update.
type UpdateTenantOutput struct {
	Tenant *entity.Tenant
}

// UpdateTenantUseCase handles tenant update logic.
type UpdateTenantUseCase struct {
	tenantRepo adapter.TenantRepository
	flatRepo   adapter.FlatRepository
}

// NewUpdateTenantUseCase creates a new UpdateTenantUseCase instance.
func NewUpdateTenantUseCase(tenantRepo adapter.TenantRepository, flatRepo adapter.FlatRepository) *UpdateTenantUseCase {
	return &UpdateTenantUseCase{
		tenantRepo: tenantRepo,
		flatRepo:   flatRepo,
	}
}

// Execute performs the tenant update.
func (uc *UpdateTenantUseCase) Execute(ctx context.Context, input UpdateTenantInput) (*UpdateTenantOutput, error) {
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

	// Check if user is authorized to modify this tenant
	if tenant.UserID != input.UserID {
		return nil, domainerror.NewTenantError(
			domainerror.ErrCodeTenantNotFound,
			"tenant not found",
			domainerror.ErrTenantNotFound,
		)
	}

	// Update name if provided
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewTenantError(
				domainerror.ErrCodeMissingTenantName,
				"tenant name is required",
				domainerror.ErrMissingTenantName,
			)
		}
		tenant.Name = name
	}

	// Update flat if provided
	if input.FlatID != nil {
		flat, err := uc.flatRepo.FindByID(ctx, *input.FlatID)
		if err != nil {
			if errors.Is(err, domainerror.ErrFlatNotFound) {
				return nil, domainerror.NewTenantError(
					domainerror.ErrCodeTenantFlatNotFound,
					"flat not found",
					domainerror.ErrTenantFlatNotFound,
				)
			}
			return nil, fmt.Errorf("failed to find flat: %w", err)
		}
		if flat.UserID != input.UserID {
			return nil, domainerror.NewTenantError(
				domainerror.ErrCodeTenantFlatNotFound,
				"flat not found",
				domainerror.ErrTenantFlatNotFound,
			)
		}
		tenant.FlatID = *input.FlatID
	}

	// Update rent amount if provided
	if input.RentAmount != nil {
		if input.RentAmount.IsNegative() {
			return nil, domainerror.NewTenantError(
				domainerror.ErrCodeNegativeTenantRent,
				"rent amount must not be negative",
				domainerror.ErrNegativeTenantRent,
			)
		}
		tenant.RentAmount = *input.RentAmount
	}

	// Update timestamp
	tenant.UpdatedAt = time.Now().UTC()

	// Save updated tenant
	if err := uc.tenantRepo.Update(ctx, tenant); err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	return &UpdateTenantOutput{
		Tenant: tenant,
	}, nil
}
