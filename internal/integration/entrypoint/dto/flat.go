// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mother-homes/backend/internal/domain/entity"
)

// CreateFlatRequest represents the request body for flat creation.
type CreateFlatRequest struct {
	Name       string          `json:"name" binding:"required,min=1,max=100"`
	Address    string          `json:"address" binding:"max=255"`
	RentAmount decimal.Decimal `json:"rent_amount"`
}

// UpdateFlatRequest represents the request body for flat update.
type UpdateFlatRequest struct {
	Name       *string          `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Address    *string          `json:"address,omitempty" binding:"omitempty,max=255"`
	RentAmount *decimal.Decimal `json:"rent_amount,omitempty"`
}

// FlatResponse represents a single flat in API responses.
type FlatResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Address    string          `json:"address"`
	RentAmount decimal.Decimal `json:"rent_amount"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// FlatListResponse represents the response for listing flats.
type FlatListResponse struct {
	Flats []FlatResponse `json:"flats"`
}

// ToFlatResponse converts a domain Flat entity to a FlatResponse DTO.
func ToFlatResponse(f *entity.Flat) FlatResponse {
	return FlatResponse{
		ID:         f.ID.String(),
		Name:       f.Name,
		Address:    f.Address,
		RentAmount: f.RentAmount,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
}

// ToFlatListResponse converts a list of Flat entities to FlatListResponse.
func ToFlatListResponse(flats []*entity.Flat) FlatListResponse {
	responses := make([]FlatResponse, len(flats))
	for i, f := range flats {
		responses[i] = ToFlatResponse(f)
	}
	return FlatListResponse{
		Flats: responses,
	}
}
