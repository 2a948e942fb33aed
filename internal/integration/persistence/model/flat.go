// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mother-homes/backend/internal/domain/entity"
)

// FlatModel represents the flats table in the database.
type FlatModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name       string          `gorm:"type:varchar(100);not null"`
	Address    string          `gorm:"type:varchar(255)"`
	RentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the FlatModel.
func (FlatModel) TableName() string {
	return "flats"
}

// ToEntity converts a FlatModel to a domain Flat entity.
func (m *FlatModel) ToEntity() *entity.Flat {
	return &entity.Flat{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		Address:    m.Address,
		RentAmount: m.RentAmount,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// FlatFromEntity creates a FlatModel from a domain Flat entity.
func FlatFromEntity(flat *entity.Flat) *FlatModel {
	return &FlatModel{
		ID:         flat.ID,
		UserID:     flat.UserID,
		Name:       flat.Name,
		Address:    flat.Address,
		RentAmount: flat.RentAmount,
		CreatedAt:  flat.CreatedAt,
		UpdatedAt:  flat.UpdatedAt,
	}
}
