// Package report contains the financial aggregation and reporting use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mother-homes/backend/internal/application/adapter"
	"github.com/mother-homes/backend/internal/domain/entity"
)

// GetSummaryInput represents the input for computing a financial summary.
// StartDate and EndDate are raw query values; malformed values fall back to
// the window defaults. Now is the request clock; the zero value means
// time.Now.
type GetSummaryInput struct {
	UserID    uuid.UUID
	Period    Period
	StartDate string
	EndDate   string
	Now       time.Time
}

// GetSummaryOutput represents the output of computing a financial summary.
type GetSummaryOutput struct {
	Summary *entity.FinancialSummary
	Window  Window
}

// GetSummaryUseCase computes the financial summary for a user's portfolio.
type GetSummaryUseCase struct {
	flatRepo    adapter.FlatRepository
	tenantRepo  adapter.TenantRepository
	expenseRepo adapter.ExpenseRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	flatRepo adapter.FlatRepository,
	tenantRepo adapter.TenantRepository,
	expenseRepo adapter.ExpenseRepository,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		flatRepo:    flatRepo,
		tenantRepo:  tenantRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute fetches the user's records and aggregates them over the resolved
// window. The summary is recomputed on every call and never stored.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	window := ResolveWindow(input.Period, input.StartDate, input.EndDate, now)

	flats, err := uc.flatRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list flats: %w", err)
	}

	tenants, err := uc.tenantRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	expenses, err := uc.expenseRepo.FindByUserID(ctx, input.UserID, adapter.ExpenseFilter{
		Start: window.Start,
		End:   &window.End,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return &GetSummaryOutput{
		Summary: Summarize(flats, tenants, expenses, window),
		Window:  window,
	}, nil
}
