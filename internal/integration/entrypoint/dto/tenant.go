// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mother-homes/backend/internal/domain/entity"
)

// CreateTenantRequest represents the request body for tenant creation.
type CreateTenantRequest struct {
	FlatID     string          `json:"flat_id" binding:"required,uuid"`
	Name       string          `json:"name" binding:"required,min=1,max=100"`
	RentAmount decimal.Decimal `json:"rent_amount"`
}

// UpdateTenantRequest represents the request body for tenant update.
type UpdateTenantRequest struct {
	FlatID     *string          `json:"flat_id,omitempty" binding:"omitempty,uuid"`
	Name       *string          `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	RentAmount *decimal.Decimal `json:"rent_amount,omitempty"`
}

// TenantResponse represents a single tenant in API responses.
type TenantResponse struct {
	ID         string          `json:"id"`
	FlatID     string          `json:"flat_id"`
	Name       string          `json:"name"`
	RentAmount decimal.Decimal `json:"rent_amount"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// TenantListResponse represents the response for listing tenants.
type TenantListResponse struct {
	Tenants []TenantResponse `json:"tenants"`
}

// ToTenantResponse converts a domain Tenant entity to a TenantResponse DTO.
func ToTenantResponse(t *entity.Tenant) TenantResponse {
	return TenantResponse{
		ID:         t.ID.String(),
		FlatID:     t.FlatID.String(),
		Name:       t.Name,
		RentAmount: t.RentAmount,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

// ToTenantListResponse converts a list of Tenant entities to TenantListResponse.
func ToTenantListResponse(tenants []*entity.Tenant) TenantListResponse {
	responses := make([]TenantResponse, len(tenants))
	for i, t := range tenants {
		responses[i] = ToTenantResponse(t)
	}
	return TenantListResponse{
		Tenants: responses,
	}
}
