// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mother-homes/backend/internal/domain/entity"
)

// ExpenseFilter narrows an expense listing. Zero values mean "no filter";
// the date bounds follow the half-open [Start, End) window convention.
type ExpenseFilter struct {
	FlatID *uuid.UUID
	Start  *time.Time
	End    *time.Time
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByUserID retrieves all expenses for a given user matching the filter.
	FindByUserID(ctx context.Context, userID uuid.UUID, filter ExpenseFilter) ([]*entity.Expense, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByFlatID removes all expenses belonging to a flat.
	DeleteByFlatID(ctx context.Context, flatID uuid.UUID) error
}
