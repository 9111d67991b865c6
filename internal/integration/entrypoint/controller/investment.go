// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/factoring-simulator/backend/internal/application/usecase/investment"
	domainerror "github.com/factoring-simulator/backend/internal/domain/error"
	"github.com/factoring-simulator/backend/internal/integration/entrypoint/dto"
)

// InvestmentController handles investment projection endpoints.
type InvestmentController struct {
	projectUseCase *investment.ProjectInvestmentUseCase
	compareUseCase *investment.CompareInvestmentsUseCase
}

// NewInvestmentController creates a new investment controller instance.
func NewInvestmentController(
	projectUseCase *investment.ProjectInvestmentUseCase,
	compareUseCase *investment.CompareInvestmentsUseCase,
) *InvestmentController {
	return &InvestmentController{
		projectUseCase: projectUseCase,
		compareUseCase: compareUseCase,
	}
}

// Project handles POST /investments/projection requests.
func (c *InvestmentController) Project(ctx *gin.Context) {
	// Parse request body
	var req dto.ProjectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	// Build input
	input := investment.ProjectInvestmentInput{
		Amount:       decimal.NewFromFloat(req.Amount),
		Months:       req.Months,
		AutoReinvest: req.AutoReinvest,
	}
	if req.MonthlyRate != nil {
		rate := decimal.NewFromFloat(*req.MonthlyRate)
		input.MonthlyRate = &rate
	}

	// Execute use case
	output, err := c.projectUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	// Build response
	response := dto.ToProjectionResponse(output)
	ctx.JSON(http.StatusOK, response)
}

// Compare handles POST /investments/comparison requests.
func (c *InvestmentController) Compare(ctx *gin.Context) {
	// Parse request body
	var req dto.ComparisonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	// Build input
	input := investment.CompareInvestmentsInput{
		Amount: decimal.NewFromFloat(req.Amount),
		Months: req.Months,
	}

	// Execute use case
	output, err := c.compareUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	// Build response
	response := dto.ToComparisonResponse(output)
	ctx.JSON(http.StatusOK, response)
}

// handleInvestmentError handles investment errors and returns appropriate HTTP responses.
func (c *InvestmentController) handleInvestmentError(ctx *gin.Context, err error) {
	var invErr *domainerror.InvestmentError
	if errors.As(err, &invErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: invErr.Message,
			Code:  string(invErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
