// Package tenant contains tenant-related use cases.
package tenant

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mother-homes/backend/internal/application/adapter"
	"github.com/mother-homes/backend/internal/domain/entity"
)

// ListTenantsInput represents the input for listing tenants. FlatID is an
// optional filter; the nil value lists the whole portfolio.
type ListTenantsInput struct {
	UserID uuid.UUID
	FlatID *uuid.UUID
}

// ListTenantsOutput represents the output of listing tenants.
type ListTenantsOutput struct {
	Tenants []*entity.Tenant
}

// ListTenantsUseCase handles tenant listing logic.
type ListTenantsUseCase struct {
	tenantRepo adapter.TenantRepository
}

// NewListTenantsUseCase creates a new ListTenantsUseCase instance.
func NewListTenantsUseCase(tenantRepo adapter.TenantRepository) *ListTenantsUseCase {
	return &ListTenantsUseCase{
		tenantRepo: tenantRepo,
	}
}

// Execute lists the user's tenants, optionally scoped to one flat.
func (uc *ListTenantsUseCase) Execute(ctx context.Context, input ListTenantsInput) (*ListTenantsOutput, error) {
	tenants, err := uc.tenantRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	if input.FlatID != nil {
		filtered := make([]*entity.Tenant, 0, len(tenants))
		for _, tenant := range tenants {
			if tenant.FlatID == *input.FlatID {
				filtered = append(filtered, tenant)
			}
		}
		tenants = filtered
	}

	return &ListTenantsOutput{
		Tenants: tenants,
	}, nil
}
