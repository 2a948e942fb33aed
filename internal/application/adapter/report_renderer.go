// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"time"

	"github.com/mother-homes/backend/internal/domain/entity"
)

// ReportRenderer defines the interface for serializing a financial summary
// into a self-contained, fixed-layout document.
type ReportRenderer interface {
	// Render produces the report document bytes for the given summary.
	Render(summary *entity.FinancialSummary, generatedAt time.Time) ([]byte, error)
}
