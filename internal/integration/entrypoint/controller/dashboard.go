// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mother-homes/backend/internal/application/usecase/report"
	domainerror "github.com/mother-homes/backend/internal/domain/error"
	"github.com/mother-homes/backend/internal/integration/entrypoint/dto"
	"github.com/mother-homes/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles the financial summary and report export
// endpoints.
type DashboardController struct {
	getSummaryUseCase   *report.GetSummaryUseCase
	exportReportUseCase *report.ExportReportUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	getSummaryUseCase *report.GetSummaryUseCase,
	exportReportUseCase *report.ExportReportUseCase,
) *DashboardController {
	return &DashboardController{
		getSummaryUseCase:   getSummaryUseCase,
		exportReportUseCase: exportReportUseCase,
	}
}

// Summary handles GET /dashboard requests. Query parameters: period (all,
// week, month, 3months, year, custom), start_date, end_date.
func (c *DashboardController) Summary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := report.GetSummaryInput{
		UserID:    userID,
		Period:    report.Period(ctx.Query("period")),
		StartDate: ctx.Query("start_date"),
		EndDate:   ctx.Query("end_date"),
	}

	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute financial summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output.Summary))
}

// ExportReport handles GET /reports/export requests. It streams the PDF
// report for the same window parameters the dashboard accepts.
func (c *DashboardController) ExportReport(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := report.ExportReportInput{
		GetSummaryInput: report.GetSummaryInput{
			UserID:    userID,
			Period:    report.Period(ctx.Query("period")),
			StartDate: ctx.Query("start_date"),
			EndDate:   ctx.Query("end_date"),
		},
	}

	output, err := c.exportReportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		var reportErr *domainerror.ReportError
		if errors.As(err, &reportErr) {
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: reportErr.Message,
				Code:  string(reportErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	ctx.Data(http.StatusOK, output.ContentType, output.Document)
}
