// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Flat represents a managed rental property unit.
// A flat owns its tenants and expenses: deleting a flat removes them too.
type Flat struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	Address    string
	RentAmount decimal.Decimal // Base monthly rent, non-negative
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewFlat creates a new Flat entity.
func NewFlat(userID uuid.UUID, name, address string, rentAmount decimal.Decimal) *Flat {
	now := time.Now().UTC()

	return &Flat{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		Address:    address,
		RentAmount: rentAmount,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
