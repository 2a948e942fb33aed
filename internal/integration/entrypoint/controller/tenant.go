// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mother-homes/backend/internal/application/usecase/tenant"
	domainerror "github.com/mother-homes/backend/internal/domain/error"
	"github.com/mother-homes/backend/internal/integration/entrypoint/dto"
	"github.com/mother-homes/backend/internal/integration/entrypoint/middleware"
)

// TenantController handles tenant endpoints.
type TenantController struct {
	listUseCase   *tenant.ListTenantsUseCase
	createUseCase *tenant.CreateTenantUseCase
	updateUseCase *tenant.UpdateTenantUseCase
	deleteUseCase *tenant.DeleteTenantUseCase
}

// NewTenantController creates a new tenant controller instance.
func NewTenantController(
	listUseCase *tenant.ListTenantsUseCase,
	createUseCase *tenant.CreateTenantUseCase,
	updateUseCase *tenant.UpdateTenantUseCase,
	deleteUseCase *tenant.DeleteTenantUseCase,
) *TenantController {
	return &TenantController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /tenants requests. An optional flat_id query parameter
// scopes the listing to one flat.
func (c *TenantController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := tenant.ListTenantsInput{
		UserID: userID,
	}

	if flatIDStr := ctx.Query("flat_id"); flatIDStr != "" {
		flatID, err := uuid.Parse(flatIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid flat_id format",
			})
			return
		}
		input.FlatID = &flatID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve tenants",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTenantListResponse(output.Tenants))
}

// Create handles POST /tenants requests.
func (c *TenantController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateTenantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTenantName),
		})
		return
	}

	flatID, err := uuid.Parse(req.FlatID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid flat_id format",
		})
		return
	}

	input := tenant.CreateTenantInput{
		UserID:     userID,
		FlatID:     flatID,
		Name:       req.Name,
		RentAmount: req.RentAmount,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTenantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTenantResponse(output.Tenant))
}

// Update handles PUT /tenants/:id requests.
func (c *TenantController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	tenantID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid tenant ID format",
		})
		return
	}

	var req dto.UpdateTenantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := tenant.UpdateTenantInput{
		TenantID:   tenantID,
		UserID:     userID,
		Name:       req.Name,
		RentAmount: req.RentAmount,
	}

	if req.FlatID != nil {
		flatID, err := uuid.Parse(*req.FlatID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid flat_id format",
			})
			return
		}
		input.FlatID = &flatID
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTenantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTenantResponse(output.Tenant))
}

// Delete handles DELETE /tenants/:id requests.
func (c *TenantController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	tenantID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid tenant ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), tenant.DeleteTenantInput{
		TenantID: tenantID,
		UserID:   userID,
	})
	if err != nil {
		c.handleTenantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Tenant deleted successfully",
	})
}

// handleTenantError maps tenant domain errors to HTTP responses.
func (c *TenantController) handleTenantError(ctx *gin.Context, err error) {
	var tenantErr *domainerror.TenantError
	if errors.As(err, &tenantErr) {
		statusCode := c.getStatusCodeForTenantError(tenantErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: tenantErr.Message,
			Code:  string(tenantErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTenantError maps tenant error codes to HTTP status codes.
func (c *TenantController) getStatusCodeForTenantError(code domainerror.TenantErrorCode) int {
	switch code {
	case domainerror.ErrCodeTenantNotFound, domainerror.ErrCodeTenantFlatNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNegativeTenantRent, domainerror.ErrCodeMissingTenantName:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
