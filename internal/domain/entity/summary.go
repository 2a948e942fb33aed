// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// FlatSummary holds the derived financial metrics for a single flat.
type FlatSummary struct {
	Flat             *Flat
	TenantCount      int
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	Profit           decimal.Decimal // TotalIncome - TotalExpenses, may be negative
	ProfitPercentage decimal.Decimal // Exactly zero when TotalIncome is zero
}

// FinancialSummary is the derived aggregate of income, expenses and profit
// across all of a user's flats for a given date window. It is recomputed on
// every request and never persisted.
type FinancialSummary struct {
	TotalFlats              int
	TotalTenants            int
	TotalIncome             decimal.Decimal
	TotalExpenses           decimal.Decimal
	TotalProfit             decimal.Decimal
	AverageProfitPercentage decimal.Decimal // Unweighted mean of per-flat percentages
	FlatsSummary            []FlatSummary   // Preserves flat insertion order
}
