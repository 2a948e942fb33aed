// Package flat contains flat-related use cases.
package flat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mother-homes/backend/internal/application/adapter"
	"github.com/mother-homes/backend/internal/domain/entity"
	domainerror "github.com/mother-homes/backend/internal/domain/error"
)

// UpdateFlatInput represents the input for flat update.
type UpdateFlatInput struct {
	FlatID     uuid.UUID
	UserID     uuid.UUID
	Name       *string          // Optional
	Address    *string          // Optional
	RentAmount *decimal.Decimal // Optional
}

// UpdateFlatOutput represents the output of flat update.
type UpdateFlatOutput struct {
	Flat *entity.Flat
}

// UpdateFlatUseCase handles flat update logic.
type UpdateFlatUseCase struct {
	flatRepo adapter.FlatRepository
}

// NewUpdateFlatUseCase creates a new UpdateFlatUseCase instance.
func NewUpdateFlatUseCase(flatRepo adapter.FlatRepository) *UpdateFlatUseCase {
	return &UpdateFlatUseCase{
		flatRepo: flatRepo,
	}
}

// Execute performs the flat update.
func (uc *UpdateFlatUseCase) Execute(ctx context.Context, input UpdateFlatInput) (*UpdateFlatOutput, error) {
	// Find the existing flat
	flat, err := uc.flatRepo.FindByID(ctx, input.FlatID)
	if err != nil {
		if errors.Is(err, domainerror.ErrFlatNotFound) {
			return nil, domainerror.NewFlatError(
				domainerror.ErrCodeFlatNotFound,
				"flat not found",
				domainerror.ErrFlatNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find flat: %w", err)
	}

	// Check if user is authorized to modify this flat
	if flat.UserID != input.UserID {
		return nil, domainerror.NewFlatError(
			domainerror.ErrCodeFlatDoesNotBelongToUser,
			"flat does not belong to user",
			domainerror.ErrFlatDoesNotBelongToUser,
		)
	}

	// Update name if provided
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewFlatError(
				domainerror.ErrCodeMissingFlatName,
				"flat name is required",
				domainerror.ErrMissingFlatName,
			)
		}
		flat.Name = name
	}

	// Update address if provided
	if input.Address != nil {
		flat.Address = strings.TrimSpace(*input.Address)
	}

	// Update rent amount if provided
	if input.RentAmount != nil {
		if input.RentAmount.IsNegative() {
			return nil, domainerror.NewFlatError(
				domainerror.ErrCodeNegativeRentAmount,
				"rent amount must not be negative",
				domainerror.ErrNegativeRentAmount,
			)
		}
		flat.RentAmount = *input.RentAmount
	}

	// Update timestamp
	flat.UpdatedAt = time.Now().UTC()

	// Save updated flat
	if err := uc.flatRepo.Update(ctx, flat); err != nil {
		return nil, fmt.Errorf("failed to update flat: %w", err)
	}

	return &UpdateFlatOutput{
		Flat: flat,
	}, nil
}
