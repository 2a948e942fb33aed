// Package flat contains flat-related use cases.
package flat

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mother-homes/backend/internal/application/adapter"
	"github.com/mother-homes/backend/internal/domain/entity"
)

// ListFlatsInput represents the input for listing flats.
type ListFlatsInput struct {
	UserID uuid.UUID
}

// ListFlatsOutput represents the output of listing flats.
type ListFlatsOutput struct {
	Flats []*entity.Flat
}

// ListFlatsUseCase handles flat listing logic.
type ListFlatsUseCase struct {
	flatRepo adapter.FlatRepository
}

// NewListFlatsUseCase creates a new ListFlatsUseCase instance.
func NewListFlatsUseCase(flatRepo adapter.FlatRepository) *ListFlatsUseCase {
	return &ListFlatsUseCase{
		flatRepo: flatRepo,
	}
}

// Execute lists the user's flats in insertion order.
func (uc *ListFlatsUseCase) Execute(ctx context.Context, input ListFlatsInput) (*ListFlatsOutput, error) {
	flats, err := uc.flatRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list flats: %w", err)
	}

	return &ListFlatsOutput{
		Flats: flats,
	}, nil
}
