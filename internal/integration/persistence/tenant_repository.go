// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mother-homes/backend/internal/application/adapter"
	"github.com/mother-homes/backend/internal/domain/entity"
	domainerror "github.com/mother-homes/backend/internal/domain/error"
	"github.com/mother-homes/backend/internal/integration/persistence/model"
)

// tenantRepository implements the adapter.TenantRepository interface.
type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new tenant repository instance.
func NewTenantRepository(db *gorm.DB) adapter.TenantRepository {
	return &tenantRepository{
		db: db,
	}
}

// Create creates a new tenant in the database.
func (r *tenantRepository) Create(ctx context.Context, tenant *entity.Tenant) error {
	tenantModel := model.TenantFromEntity(tenant)
	result := r.db.WithContext(ctx).Create(tenantModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a tenant by its ID.
func (r *tenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error) {
	var tenantModel model.TenantModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&tenantModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTenantNotFound
		}
		return nil, result.Error
	}
	return tenantModel.ToEntity(), nil
}

// FindByUserID retrieves all tenants for a given user.
func (r *tenantRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Tenant, error) {
	var tenantModels []model.TenantModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&tenantModels)
	if result.Error != nil {
		return nil, result.Error
	}

	tenants := make([]*entity.Tenant, len(tenantModels))
	for i, tm := range tenantModels {
		tenants[i] = tm.ToEntity()
	}
	return tenants, nil
}

// FindByFlatID retrieves all tenants for a given flat.
func (r *tenantRepository) FindByFlatID(ctx context.Context, flatID uuid.UUID) ([]*entity.Tenant, error) {
	var tenantModels []model.TenantModel
	result := r.db.WithContext(ctx).
		Where("flat_id = ?", flatID).
		Order("created_at ASC").
		Find(&tenantModels)
	if result.Error != nil {
		return nil, result.Error
	}

	tenants := make([]*entity.Tenant, len(tenantModels))
	for i, tm := range tenantModels {
		tenants[i] = tm.ToEntity()
	}
	return tenants, nil
}

// Update updates an existing tenant in the database.
func (r *tenantRepository) Update(ctx context.Context, tenant *entity.Tenant) error {
	tenantModel := model.TenantFromEntity(tenant)
	result := r.db.WithContext(ctx).Save(tenantModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a tenant from the database.
func (r *tenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TenantModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteByFlatID removes all tenants belonging to a flat.
func (r *tenantRepository) DeleteByFlatID(ctx context.Context, flatID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TenantModel{}, "flat_id = ?", flatID)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
