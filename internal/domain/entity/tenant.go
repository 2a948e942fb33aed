// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tenant represents a current occupant of a Flat.
// RentAmount is a recurring monthly income figure, not a dated transaction,
// so tenants are never filtered by report date windows.
type Tenant struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	FlatID     uuid.UUID
	Name       string
	RentAmount decimal.Decimal // Non-negative
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewTenant creates a new Tenant entity.
func NewTenant(userID, flatID uuid.UUID, name string, rentAmount decimal.Decimal) *Tenant {
	now := time.Now().UTC()

	return &Tenant{
		ID:         uuid.New(),
		UserID:     userID,
		FlatID:     flatID,
		Name:       name,
		RentAmount: rentAmount,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
