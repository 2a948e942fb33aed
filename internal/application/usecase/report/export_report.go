// Package report contains the financial aggregation and reporting use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/mother-homes/backend/internal/application/adapter"
	domainerror "github.com/mother-homes/backend/internal/domain/error"
)

// ExportReportInput represents the input for exporting a report document.
type ExportReportInput struct {
	GetSummaryInput
}

// ExportReportOutput represents the output of exporting a report document.
type ExportReportOutput struct {
	Document    []byte
	Filename    string
	ContentType string
}

// ExportReportUseCase produces the downloadable report artifact for a
// user's financial summary.
type ExportReportUseCase struct {
	getSummary *GetSummaryUseCase
	renderer   adapter.ReportRenderer
}

// NewExportReportUseCase creates a new ExportReportUseCase instance.
func NewExportReportUseCase(getSummary *GetSummaryUseCase, renderer adapter.ReportRenderer) *ExportReportUseCase {
	return &ExportReportUseCase{
		getSummary: getSummary,
		renderer:   renderer,
	}
}

// Execute computes the summary and renders it into the report document.
// Rendering either succeeds fully or fails with a single report-generation
// error; a partial document is never returned.
func (uc *ExportReportUseCase) Execute(ctx context.Context, input ExportReportInput) (*ExportReportOutput, error) {
	output, err := uc.getSummary.Execute(ctx, input.GetSummaryInput)
	if err != nil {
		return nil, err
	}

	generatedAt := input.Now
	if generatedAt.IsZero() {
		generatedAt = time.Now().UTC()
	}

	document, err := uc.renderer.Render(output.Summary, generatedAt)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportGenerationFailed,
			"report generation failed",
			err,
		)
	}

	return &ExportReportOutput{
		Document:    document,
		Filename:    fmt.Sprintf("mother-homes-report-%s.pdf", generatedAt.Format("2006-01-02")),
		ContentType: "application/pdf",
	}, nil
}
