// Package report contains the financial aggregation and reporting use cases.
package report

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mother-homes/backend/internal/domain/entity"
)

var oneHundred = decimal.NewFromInt(100)

// Summarize computes the financial summary for the given record snapshot.
//
// Expenses are filtered to the half-open window; tenants are not, since a
// tenant's rent is a recurring monthly figure rather than a dated
// transaction. Every flat appears in the result in input order, zero-filled
// when it has no tenants or in-window expenses. The function is pure and
// total: empty inputs yield an all-zero summary.
func Summarize(
	flats []*entity.Flat,
	tenants []*entity.Tenant,
	expenses []*entity.Expense,
	window Window,
) *entity.FinancialSummary {
	tenantsByFlat := make(map[uuid.UUID][]*entity.Tenant)
	for _, tenant := range tenants {
		tenantsByFlat[tenant.FlatID] = append(tenantsByFlat[tenant.FlatID], tenant)
	}

	expensesByFlat := make(map[uuid.UUID]decimal.Decimal)
	for _, expense := range expenses {
		if !window.Contains(expense.Date) {
			continue
		}
		expensesByFlat[expense.FlatID] = expensesByFlat[expense.FlatID].Add(expense.Amount)
	}

	summary := &entity.FinancialSummary{
		TotalFlats:   len(flats),
		FlatsSummary: make([]entity.FlatSummary, 0, len(flats)),
	}

	percentageSum := decimal.Zero
	for _, flat := range flats {
		flatTenants := tenantsByFlat[flat.ID]

		income := decimal.Zero
		for _, tenant := range flatTenants {
			income = income.Add(tenant.RentAmount)
		}

		expenseTotal := expensesByFlat[flat.ID]
		profit := income.Sub(expenseTotal)

		// Guard against division by zero: a flat without income has a
		// profit percentage of exactly zero, never NaN or an error.
		profitPercentage := decimal.Zero
		if income.IsPositive() {
			profitPercentage = profit.Div(income).Mul(oneHundred)
		}

		summary.FlatsSummary = append(summary.FlatsSummary, entity.FlatSummary{
			Flat:             flat,
			TenantCount:      len(flatTenants),
			TotalIncome:      income,
			TotalExpenses:    expenseTotal,
			Profit:           profit,
			ProfitPercentage: profitPercentage,
		})

		summary.TotalTenants += len(flatTenants)
		summary.TotalIncome = summary.TotalIncome.Add(income)
		summary.TotalExpenses = summary.TotalExpenses.Add(expenseTotal)
		summary.TotalProfit = summary.TotalProfit.Add(profit)
		percentageSum = percentageSum.Add(profitPercentage)
	}

	// Portfolio average is the unweighted arithmetic mean of the per-flat
	// percentages, kept as-is for compatibility with existing consumers.
	if len(flats) > 0 {
		summary.AverageProfitPercentage = percentageSum.Div(decimal.NewFromInt(int64(len(flats))))
	} else {
		summary.AverageProfitPercentage = decimal.Zero
	}

	return summary
}
