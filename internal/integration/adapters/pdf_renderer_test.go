package adapters

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mother-homes/backend/internal/domain/entity"
)

func TestPDFRenderer_Render(t *testing.T) {
	renderer := NewPDFRenderer()

	summary := &entity.FinancialSummary{
		TotalFlats:              2,
		TotalTenants:            1,
		TotalIncome:             decimal.NewFromInt(12000),
		TotalExpenses:           decimal.NewFromInt(4500),
		TotalProfit:             decimal.NewFromInt(7500),
		AverageProfitPercentage: decimal.NewFromFloat(33.33),
		FlatsSummary: []entity.FlatSummary{
			{
				Flat:             &entity.Flat{ID: uuid.New(), Name: "Flat A", Address: "12 MG Road"},
				TenantCount:      1,
				TotalIncome:      decimal.NewFromInt(12000),
				TotalExpenses:    decimal.NewFromInt(4000),
				Profit:           decimal.NewFromInt(8000),
				ProfitPercentage: decimal.NewFromFloat(66.67),
			},
			{
				Flat:             &entity.Flat{ID: uuid.New(), Name: "Flat B", Address: "7 Park Street"},
				TenantCount:      0,
				TotalIncome:      decimal.Zero,
				TotalExpenses:    decimal.NewFromInt(500),
				Profit:           decimal.NewFromInt(-500),
				ProfitPercentage: decimal.Zero,
			},
		},
	}

	document, err := renderer.Render(summary, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(document) == 0 {
		t.Fatal("expected non-empty document")
	}
	if !bytes.HasPrefix(document, []byte("%PDF")) {
		t.Error("expected document to start with the PDF magic number")
	}
}

func TestPDFRenderer_Render_EmptyPortfolio(t *testing.T) {
	renderer := NewPDFRenderer()

	summary := &entity.FinancialSummary{
		TotalIncome:             decimal.Zero,
		TotalExpenses:           decimal.Zero,
		TotalProfit:             decimal.Zero,
		AverageProfitPercentage: decimal.Zero,
	}

	document, err := renderer.Render(summary, time.Now().UTC())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !bytes.HasPrefix(document, []byte("%PDF")) {
		t.Error("expected document to start with the PDF magic number")
	}
}

func TestCurrencyFormat(t *testing.T) {
	tests := []struct {
		amount   decimal.Decimal
		expected string
	}{
		{decimal.NewFromInt(12000), "Rs. 12000.00"},
		{decimal.NewFromFloat(7500.5), "Rs. 7500.50"},
		{decimal.NewFromInt(-500), "Rs. -500.00"},
		{decimal.Zero, "Rs. 0.00"},
	}

	for _, tt := range tests {
		if got := currency(tt.amount); got != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, got)
		}
	}
}
