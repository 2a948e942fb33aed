// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mother-homes/backend/internal/domain/entity"
)

// TenantModel represents the tenants table in the database.
type TenantModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	FlatID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name       string          `gorm:"type:varchar(100);not null"`
	RentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TenantModel.
func (TenantModel) TableName() string {
	return "tenants"
}

// ToEntity converts a TenantModel to a domain Tenant entity.
func (m *TenantModel) ToEntity() *entity.Tenant {
	return &entity.Tenant{
		ID:         m.ID,
		UserID:     m.UserID,
		FlatID:     m.FlatID,
		Name:       m.Name,
		RentAmount: m.RentAmount,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// TenantFromEntity creates a TenantModel from a domain Tenant entity.
func TenantFromEntity(tenant *entity.Tenant) *TenantModel {
	return &TenantModel{
		ID:         tenant.ID,
		UserID:     tenant.UserID,
		FlatID:     tenant.FlatID,
		Name:       tenant.Name,
		RentAmount: tenant.RentAmount,
		CreatedAt:  tenant.CreatedAt,
		UpdatedAt:  tenant.UpdatedAt,
	}
}
