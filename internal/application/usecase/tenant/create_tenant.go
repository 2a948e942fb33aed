// Package tenant contains tenant-related use cases.
package tenant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mother-homes/backend/internal/application/adapter"
	"github.com/mother-homes/backend/internal/domain/entity"
	domainerror "github.com/mother-homes/backend/internal/domain/error"
)

// CreateTenantInput represents the input for tenant creation.
type CreateTenantInput struct {
	UserID     uuid.UUID
	FlatID     uuid.UUID
	Name       string
	RentAmount decimal.Decimal
}

// CreateTenantOutput represents the output of tenant creation.
type CreateTenantOutput struct {
	Tenant *entity.Tenant
}

// CreateTenantUseCase handles tenant creation logic.
type CreateTenantUseCase struct {
	tenantRepo adapter.TenantRepository
	flatRepo   adapter.FlatRepository
}

// NewCreateTenantUseCase creates a new CreateTenantUseCase instance.
func NewCreateTenantUseCase(tenantRepo adapter.TenantRepository, flatRepo adapter.FlatRepository) *CreateTenantUseCase {
	return &CreateTenantUseCase{
		tenantRepo: tenantRepo,
		flatRepo:   flatRepo,
	}
}

// Execute performs the tenant creation.
func (uc *CreateTenantUseCase) Execute(ctx context.Context, input CreateTenantInput) (*CreateTenantOutput, error) {
	// Validate name
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewTenantError(
			domainerror.ErrCodeMissingTenantName,
			"tenant name is required",
			domainerror.ErrMissingTenantName,
		)
	}

	// Validate rent amount
	if input.RentAmount.IsNegative() {
		return nil, domainerror.NewTenantError(
			domainerror.ErrCodeNegativeTenantRent,
			"rent amount must not be negative",
			domainerror.ErrNegativeTenantRent,
		)
	}

	// Validate flat exists and belongs to user
	flat, err := uc.flatRepo.FindByID(ctx, input.FlatID)
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

	// Create tenant entity
	tenant := entity.NewTenant(input.UserID, input.FlatID, name, input.RentAmount)

	// Save tenant to database
	if err := uc.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	return &CreateTenantOutput{
		Tenant: tenant,
	}, nil
}
