// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/mother-homes/backend/internal/application/adapter"
	"github.com/mother-homes/backend/internal/domain/entity"
)

const (
	reportTitle = "Mother Homes PG Report"

	// Core PDF fonts are cp1252-only, so the rupee glyph is spelled out.
	currencyPrefix = "Rs. "
)

// tableColumn describes one column of the per-flat table.
type tableColumn struct {
	header string
	width  float64
	align  string
}

var tableColumns = []tableColumn{
	{header: "Flat Name", width: 32, align: "L"},
	{header: "Address", width: 40, align: "L"},
	{header: "Tenants", width: 16, align: "R"},
	{header: "Income", width: 26, align: "R"},
	{header: "Expenses", width: 26, align: "R"},
	{header: "Profit", width: 26, align: "R"},
	{header: "Profit %", width: 20, align: "R"},
}

// pdfRenderer implements the adapter.ReportRenderer interface using fpdf.
type pdfRenderer struct{}

// NewPDFRenderer creates a new PDF report renderer instance.
func NewPDFRenderer() adapter.ReportRenderer {
	return &pdfRenderer{}
}

// Render produces the fixed-layout PDF report for the given summary.
func (r *pdfRenderer) Render(summary *entity.FinancialSummary, generatedAt time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(reportTitle, false)
	pdf.AddPage()

	// Title and generation timestamp
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, reportTitle, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Generated on "+generatedAt.Format("02 Jan 2006 15:04 MST"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Summary block
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	summaryLines := []struct {
		label string
		value string
	}{
		{"Total Flats", fmt.Sprintf("%d", summary.TotalFlats)},
		{"Total Tenants", fmt.Sprintf("%d", summary.TotalTenants)},
		{"Total Income", currency(summary.TotalIncome)},
		{"Total Expenses", currency(summary.TotalExpenses)},
		{"Total Profit", currency(summary.TotalProfit)},
		{"Average Profit %", summary.AverageProfitPercentage.StringFixed(2) + "%"},
	}
	for _, line := range summaryLines {
		pdf.CellFormat(50, 7, line.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, line.value, "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// Per-flat table
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Flat Details", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range tableColumns {
		pdf.CellFormat(col.width, 8, col.header, "1", 0, col.align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, fs := range summary.FlatsSummary {
		cells := []string{
			fs.Flat.Name,
			fs.Flat.Address,
			fmt.Sprintf("%d", fs.TenantCount),
			currency(fs.TotalIncome),
			currency(fs.TotalExpenses),
			currency(fs.Profit),
			fs.ProfitPercentage.StringFixed(2) + "%",
		}
		for i, col := range tableColumns {
			pdf.CellFormat(col.width, 7, cells[i], "1", 0, col.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// currency formats a monetary amount with the currency prefix and two decimals.
func currency(amount decimal.Decimal) string {
	return currencyPrefix + amount.StringFixed(2)
}
