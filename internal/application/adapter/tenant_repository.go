// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/mother-homes/backend/internal/domain/entity"
)

// TenantRepository defines the interface for tenant persistence operations.
type TenantRepository interface {
	// Create creates a new tenant in the database.
	Create(ctx context.Context, tenant *entity.Tenant) error

	// FindByID retrieves a tenant by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error)

	// FindByUserID retrieves all tenants for a given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Tenant, error)

	// FindByFlatID retrieves all tenants for a given flat.
	FindByFlatID(ctx context.Context, flatID uuid.UUID) ([]*entity.Tenant, error)

	// Update updates an existing tenant in the database.
	Update(ctx context.Context, tenant *entity.Tenant) error

	// Delete removes a tenant from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByFlatID removes all tenants belonging to a flat.
	DeleteByFlatID(ctx context.Context, flatID uuid.UUID) error
}
