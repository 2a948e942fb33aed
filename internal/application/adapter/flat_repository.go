// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/mother-homes/backend/internal/domain/entity"
)

// FlatRepository defines the interface for flat persistence operations.
type FlatRepository interface {
	// Create creates a new flat in the database.
	Create(ctx context.Context, flat *entity.Flat) error

	// FindByID retrieves a flat by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Flat, error)

	// FindByUserID retrieves all flats for a given user in insertion order.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Flat, error)

	// Update updates an existing flat in the database.
	Update(ctx context.Context, flat *entity.Flat) error

	// Delete removes a flat from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
