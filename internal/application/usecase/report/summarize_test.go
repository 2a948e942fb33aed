package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mother-homes/backend/internal/domain/entity"
)

func TestSummarize_Portfolio(t *testing.T) {
	userID := uuid.New()
	flatA := &entity.Flat{ID: uuid.New(), UserID: userID, Name: "Flat A"}
	flatB := &entity.Flat{ID: uuid.New(), UserID: userID, Name: "Flat B"}

	inWindow := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	window := Window{End: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)}

	tenants := []*entity.Tenant{
		{ID: uuid.New(), FlatID: flatA.ID, RentAmount: decimal.NewFromInt(12000)},
	}
	expenses := []*entity.Expense{
		{ID: uuid.New(), FlatID: flatA.ID, Amount: decimal.NewFromInt(4000), Date: inWindow},
		{ID: uuid.New(), FlatID: flatB.ID, Amount: decimal.NewFromInt(500), Date: inWindow},
	}

	summary := Summarize([]*entity.Flat{flatA, flatB}, tenants, expenses, window)

	if summary.TotalFlats != 2 {
		t.Errorf("expected 2 flats, got %d", summary.TotalFlats)
	}
	if summary.TotalTenants != 1 {
		t.Errorf("expected 1 tenant, got %d", summary.TotalTenants)
	}
	assertDecimal(t, "total income", summary.TotalIncome, "12000.00")
	assertDecimal(t, "total expenses", summary.TotalExpenses, "4500.00")
	assertDecimal(t, "total profit", summary.TotalProfit, "7500.00")
	assertDecimal(t, "average profit percentage", summary.AverageProfitPercentage, "33.33")

	if len(summary.FlatsSummary) != 2 {
		t.Fatalf("expected 2 flat summaries, got %d", len(summary.FlatsSummary))
	}

	first := summary.FlatsSummary[0]
	if first.Flat.ID != flatA.ID {
		t.Error("flat summaries must keep input order")
	}
	if first.TenantCount != 1 {
		t.Errorf("expected 1 tenant on flat A, got %d", first.TenantCount)
	}
	assertDecimal(t, "flat A income", first.TotalIncome, "12000.00")
	assertDecimal(t, "flat A expenses", first.TotalExpenses, "4000.00")
	assertDecimal(t, "flat A profit", first.Profit, "8000.00")
	assertDecimal(t, "flat A profit percentage", first.ProfitPercentage, "66.67")

	second := summary.FlatsSummary[1]
	if second.Flat.ID != flatB.ID {
		t.Error("flat summaries must keep input order")
	}
	if second.TenantCount != 0 {
		t.Errorf("expected 0 tenants on flat B, got %d", second.TenantCount)
	}
	assertDecimal(t, "flat B income", second.TotalIncome, "0.00")
	assertDecimal(t, "flat B expenses", second.TotalExpenses, "500.00")
	assertDecimal(t, "flat B profit", second.Profit, "-500.00")
	assertDecimal(t, "flat B profit percentage", second.ProfitPercentage, "0.00")
}

func TestSummarize_EmptyInputs(t *testing.T) {
	window := Window{End: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)}

	summary := Summarize(nil, nil, nil, window)

	if summary.TotalFlats != 0 || summary.TotalTenants != 0 {
		t.Errorf("expected empty counts, got flats=%d tenants=%d", summary.TotalFlats, summary.TotalTenants)
	}
	assertDecimal(t, "total income", summary.TotalIncome, "0.00")
	assertDecimal(t, "total expenses", summary.TotalExpenses, "0.00")
	assertDecimal(t, "total profit", summary.TotalProfit, "0.00")
	assertDecimal(t, "average profit percentage", summary.AverageProfitPercentage, "0.00")
	if len(summary.FlatsSummary) != 0 {
		t.Errorf("expected no flat summaries, got %d", len(summary.FlatsSummary))
	}
}

func TestSummarize_WindowFiltersExpensesOnly(t *testing.T) {
	userID := uuid.New()
	flat := &entity.Flat{ID: uuid.New(), UserID: userID, Name: "Flat A"}

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	window := Window{Start: &start, End: end}

	tenants := []*entity.Tenant{
		{ID: uuid.New(), FlatID: flat.ID, RentAmount: decimal.NewFromInt(10000)},
	}
	expenses := []*entity.Expense{
		// Before the window, excluded.
		{ID: uuid.New(), FlatID: flat.ID, Amount: decimal.NewFromInt(900), Date: start.Add(-time.Hour)},
		// On the start bound, included.
		{ID: uuid.New(), FlatID: flat.ID, Amount: decimal.NewFromInt(100), Date: start},
		// On the end bound, excluded.
		{ID: uuid.New(), FlatID: flat.ID, Amount: decimal.NewFromInt(700), Date: end},
	}

	summary := Summarize([]*entity.Flat{flat}, tenants, expenses, window)

	// Tenant rent is never window-filtered.
	assertDecimal(t, "total income", summary.TotalIncome, "10000.00")
	assertDecimal(t, "total expenses", summary.TotalExpenses, "100.00")
	assertDecimal(t, "total profit", summary.TotalProfit, "9900.00")
}

func TestSummarize_AverageIsUnweighted(t *testing.T) {
	userID := uuid.New()
	big := &entity.Flat{ID: uuid.New(), UserID: userID, Name: "Big"}
	small := &entity.Flat{ID: uuid.New(), UserID: userID, Name: "Small"}

	inWindow := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	window := Window{End: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)}

	tenants := []*entity.Tenant{
		{ID: uuid.New(), FlatID: big.ID, RentAmount: decimal.NewFromInt(100000)},
		{ID: uuid.New(), FlatID: small.ID, RentAmount: decimal.NewFromInt(10)},
	}
	expenses := []*entity.Expense{
		// Big: 50% margin on a large income. Small: 100% margin on a tiny one.
		{ID: uuid.New(), FlatID: big.ID, Amount: decimal.NewFromInt(50000), Date: inWindow},
	}

	summary := Summarize([]*entity.Flat{big, small}, tenants, expenses, window)

	// (50 + 100) / 2, not the income-weighted figure.
	assertDecimal(t, "average profit percentage", summary.AverageProfitPercentage, "75.00")
}

func TestSummarize_Idempotent(t *testing.T) {
	userID := uuid.New()
	flat := &entity.Flat{ID: uuid.New(), UserID: userID, Name: "Flat A"}

	window := Window{End: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)}
	tenants := []*entity.Tenant{
		{ID: uuid.New(), FlatID: flat.ID, RentAmount: decimal.NewFromInt(8000)},
	}
	expenses := []*entity.Expense{
		{ID: uuid.New(), FlatID: flat.ID, Amount: decimal.NewFromInt(3000), Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
	}
	flats := []*entity.Flat{flat}

	first := Summarize(flats, tenants, expenses, window)
	second := Summarize(flats, tenants, expenses, window)

	if !first.TotalProfit.Equal(second.TotalProfit) ||
		!first.AverageProfitPercentage.Equal(second.AverageProfitPercentage) {
		t.Error("summarizing the same snapshot twice must yield identical results")
	}
}

func assertDecimal(t *testing.T, field string, got decimal.Decimal, expected string) {
	t.Helper()
	if got.StringFixed(2) != expected {
		t.Errorf("expected %s %s, got %s", field, expected, got.StringFixed(2))
	}
}
