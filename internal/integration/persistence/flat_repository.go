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

// flatRepository implements the adapter.FlatRepository interface.
type flatRepository struct {
	db *gorm.DB
}

// NewFlatRepository creates a new flat repository instance.
func NewFlatRepository(db *gorm.DB) adapter.FlatRepository {
	return &flatRepository{
		db: db,
	}
}

// Create creates a new flat in the database.
func (r *flatRepository) Create(ctx context.Context, flat *entity.Flat) error {
	flatModel := model.FlatFromEntity(flat)
	result := r.db.WithContext(ctx).Create(flatModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a flat by its ID.
func (r *flatRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Flat, error) {
	var flatModel model.FlatModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&flatModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrFlatNotFound
		}
		return nil, result.Error
	}
	return flatModel.ToEntity(), nil
}

// FindByUserID retrieves all flats for a given user in insertion order.
// Reports rely on this ordering to render rows stably across runs.
func (r *flatRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Flat, error) {
	var flatModels []model.FlatModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&flatModels)
	if result.Error != nil {
		return nil, result.Error
	}

	flats := make([]*entity.Flat, len(flatModels))
	for i, fm := range flatModels {
		flats[i] = fm.ToEntity()
	}
	return flats, nil
}

// Update updates an existing flat in the database.
func (r *flatRepository) Update(ctx context.Context, flat *entity.Flat) error {
	flatModel := model.FlatFromEntity(flat)
	result := r.db.WithContext(ctx).Save(flatModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a flat from the database.
func (r *flatRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.FlatModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
