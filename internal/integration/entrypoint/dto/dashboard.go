// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/mother-homes/backend/internal/domain/entity"
)

// FlatSummaryResponse represents the derived metrics for one flat in the
// dashboard response.
type FlatSummaryResponse struct {
	Flat             FlatResponse    `json:"flat"`
	TenantCount      int             `json:"tenant_count"`
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	Profit           decimal.Decimal `json:"profit"`
	ProfitPercentage decimal.Decimal `json:"profit_percentage"`
}

// DashboardResponse represents the financial summary returned by the
// dashboard endpoint.
type DashboardResponse struct {
	TotalFlats              int                   `json:"total_flats"`
	TotalTenants            int                   `json:"total_tenants"`
	TotalIncome             decimal.Decimal       `json:"total_income"`
	TotalExpenses           decimal.Decimal       `json:"total_expenses"`
	TotalProfit             decimal.Decimal       `json:"total_profit"`
	AverageProfitPercentage decimal.Decimal       `json:"average_profit_percentage"`
	FlatsSummary            []FlatSummaryResponse `json:"flats_summary"`
}

// ToDashboardResponse converts a FinancialSummary entity to a DashboardResponse DTO.
func ToDashboardResponse(summary *entity.FinancialSummary) DashboardResponse {
	flatsSummary := make([]FlatSummaryResponse, len(summary.FlatsSummary))
	for i, fs := range summary.FlatsSummary {
		flatsSummary[i] = FlatSummaryResponse{
			Flat:             ToFlatResponse(fs.Flat),
			TenantCount:      fs.TenantCount,
			TotalIncome:      fs.TotalIncome,
			TotalExpenses:    fs.TotalExpenses,
			Profit:           fs.Profit,
			ProfitPercentage: fs.ProfitPercentage.Round(2),
		}
	}

	return DashboardResponse{
		TotalFlats:              summary.TotalFlats,
		TotalTenants:            summary.TotalTenants,
		TotalIncome:             summary.TotalIncome,
		TotalExpenses:           summary.TotalExpenses,
		TotalProfit:             summary.TotalProfit,
		// Percentages are rounded for presentation; raw values keep full
		// precision inside the summary.
		AverageProfitPercentage: summary.AverageProfitPercentage.Round(2),
		FlatsSummary:            flatsSummary,
	}
}
