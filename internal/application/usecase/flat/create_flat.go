// Package flat contains flat-related use cases.
package flat

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mother-homes/backend/internal/application/adapter"
	"github.com/mother-homes/backend/internal/domain/entity"
	domainerror "github.com/mother-homes/backend/internal/domain/error"
)

// CreateFlatInput represents the input for flat creation.
type CreateFlatInput struct {
	UserID     uuid.UUID
	Name       string
	Address    string
	RentAmount decimal.Decimal
}

// CreateFlatOutput represents the output of flat creation.
type CreateFlatOutput struct {
	Flat *entity.Flat
}

// CreateFlatUseCase handles flat creation logic.
type CreateFlatUseCase struct {
	flatRepo adapter.FlatRepository
}

// NewCreateFlatUseCase creates a new CreateFlatUseCase instance.
func NewCreateFlatUseCase(flatRepo adapter.FlatRepository) *CreateFlatUseCase {
	return &CreateFlatUseCase{
		flatRepo: flatRepo,
	}
}

// Execute performs the flat creation.
func (uc *CreateFlatUseCase) Execute(ctx context.Context, input CreateFlatInput) (*CreateFlatOutput, error) {
	// Validate name
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewFlatError(
			domainerror.ErrCodeMissingFlatName,
			"flat name is required",
			domainerror.ErrMissingFlatName,
		)
	}

	// Validate rent amount
	if input.RentAmount.IsNegative() {
		return nil, domainerror.NewFlatError(
			domainerror.ErrCodeNegativeRentAmount,
			"rent amount must not be negative",
			domainerror.ErrNegativeRentAmount,
		)
	}

	// Create flat entity
	flat := entity.NewFlat(input.UserID, name, strings.TrimSpace(input.Address), input.RentAmount)

	// Save flat to database
	if err := uc.flatRepo.Create(ctx, flat); err != nil {
		return nil, fmt.Errorf("failed to create flat: %w", err)
	}

	return &CreateFlatOutput{
		Flat: flat,
	}, nil
}
