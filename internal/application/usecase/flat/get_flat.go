// Package flat contains flat-related use cases.
package flat

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mother-homes/backend/internal/application/adapter"
	"github.com/mother-homes/backend/internal/domain/entity"
	domainerror "github.com/mother-homes/backend/internal/domain/error"
)

// GetFlatInput represents the input for fetching a single flat.
type GetFlatInput struct {
	FlatID uuid.UUID
	UserID uuid.UUID
}

// GetFlatOutput represents the output of fetching a single flat.
type GetFlatOutput struct {
	Flat *entity.Flat
}

// GetFlatUseCase handles fetching a single flat.
type GetFlatUseCase struct {
	flatRepo adapter.FlatRepository
}

// NewGetFlatUseCase creates a new GetFlatUseCase instance.
func NewGetFlatUseCase(flatRepo adapter.FlatRepository) *GetFlatUseCase {
	return &GetFlatUseCase{
		flatRepo: flatRepo,
	}
}

// Execute fetches the flat and checks ownership.
func (uc *GetFlatUseCase) Execute(ctx context.Context, input GetFlatInput) (*GetFlatOutput, error) {
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

	if flat.UserID != input.UserID {
		return nil, domainerror.NewFlatError(
			domainerror.ErrCodeFlatDoesNotBelongToUser,
			"flat does not belong to user",
			domainerror.ErrFlatDoesNotBelongToUser,
		)
	}

	return &GetFlatOutput{
		Flat: flat,
	}, nil
}
