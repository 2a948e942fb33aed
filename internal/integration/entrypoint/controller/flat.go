// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mother-homes/backend/internal/application/usecase/flat"
	domainerror "github.com/mother-homes/backend/internal/domain/error"
	"github.com/mother-homes/backend/internal/integration/entrypoint/dto"
	"github.com/mother-homes/backend/internal/integration/entrypoint/middleware"
)

// FlatController handles flat endpoints.
type FlatController struct {
	listUseCase   *flat.ListFlatsUseCase
	createUseCase *flat.CreateFlatUseCase
	getUseCase    *flat.GetFlatUseCase
	updateUseCase *flat.UpdateFlatUseCase
	deleteUseCase *flat.DeleteFlatUseCase
}

// NewFlatController creates a new flat controller instance.
func NewFlatController(
	listUseCase *flat.ListFlatsUseCase,
	createUseCase *flat.CreateFlatUseCase,
	getUseCase *flat.GetFlatUseCase,
	updateUseCase *flat.UpdateFlatUseCase,
	deleteUseCase *flat.DeleteFlatUseCase,
) *FlatController {
	return &FlatController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /flats requests.
func (c *FlatController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), flat.ListFlatsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve flats",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFlatListResponse(output.Flats))
}

// Create handles POST /flats requests.
func (c *FlatController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateFlatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFlatName),
		})
		return
	}

	input := flat.CreateFlatInput{
		UserID:     userID,
		Name:       req.Name,
		Address:    req.Address,
		RentAmount: req.RentAmount,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFlatError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFlatResponse(output.Flat))
}

// Get handles GET /flats/:id requests.
func (c *FlatController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	flatID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid flat ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), flat.GetFlatInput{
		FlatID: flatID,
		UserID: userID,
	})
	if err != nil {
		c.handleFlatError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFlatResponse(output.Flat))
}

// Update handles PUT /flats/:id requests.
func (c *FlatController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	flatID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid flat ID format",
		})
		return
	}

	var req dto.UpdateFlatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := flat.UpdateFlatInput{
		FlatID:     flatID,
		UserID:     userID,
		Name:       req.Name,
		Address:    req.Address,
		RentAmount: req.RentAmount,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFlatError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFlatResponse(output.Flat))
}

// Delete handles DELETE /flats/:id requests.
func (c *FlatController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	flatID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid flat ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), flat.DeleteFlatInput{
		FlatID: flatID,
		UserID: userID,
	})
	if err != nil {
		c.handleFlatError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Flat deleted successfully",
	})
}

// handleFlatError maps flat domain errors to HTTP responses.
func (c *FlatController) handleFlatError(ctx *gin.Context, err error) {
	var flatErr *domainerror.FlatError
	if errors.As(err, &flatErr) {
		statusCode := c.getStatusCodeForFlatError(flatErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: flatErr.Message,
			Code:  string(flatErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForFlatError maps flat error codes to HTTP status codes.
func (c *FlatController) getStatusCodeForFlatError(code domainerror.FlatErrorCode) int {
	switch code {
	case domainerror.ErrCodeFlatNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeFlatDoesNotBelongToUser:
		return http.StatusForbidden
	case domainerror.ErrCodeNegativeRentAmount, domainerror.ErrCodeMissingFlatName:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
