// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/factoring-simulator/backend/internal/application/usecase/simulation"
	"github.com/factoring-simulator/backend/internal/domain/entity"
	domainerror "github.com/factoring-simulator/backend/internal/domain/error"
	"github.com/factoring-simulator/backend/internal/integration/entrypoint/dto"
)

// SimulationController handles factoring simulation endpoints.
type SimulationController struct {
	simulateUseCase *simulation.SimulateFactoringUseCase
	getUseCase      *simulation.GetSimulationUseCase
	listUseCase     *simulation.ListSimulationsUseCase
}

// NewSimulationController creates a new simulation controller instance.
func NewSimulationController(
	simulateUseCase *simulation.SimulateFactoringUseCase,
	getUseCase *simulation.GetSimulationUseCase,
	listUseCase *simulation.ListSimulationsUseCase,
) *SimulationController {
	return &SimulationController{
		simulateUseCase: simulateUseCase,
		getUseCase:      getUseCase,
		listUseCase:     listUseCase,
	}
}

// Simulate handles POST /simulations requests.
func (c *SimulationController) Simulate(ctx *gin.Context) {
	// Parse request body
	var req dto.SimulateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	// Build input
	input := simulation.SimulateFactoringInput{
		DuplicataNumber:    req.DuplicataNumber,
		IssueDate:          req.IssueDate,
		DueDate:            req.DueDate,
		FaceValue:          decimal.NewFromFloat(req.FaceValue),
		DebtorName:         req.DebtorName,
		DebtorDocument:     req.DebtorDocument,
		DebtorCreditRating: entity.CreditRating(req.DebtorCreditRating),
		CreditorName:       req.CreditorName,
		CreditorDocument:   req.CreditorDocument,
		EconomicSector:     entity.EconomicSector(req.EconomicSector),
		Modality:           entity.FactoringModality(req.Modality),
		ClientRiskProfile:  entity.RiskProfile(req.ClientRiskProfile),
		TaxRegime:          entity.TaxRegime(req.TaxRegime),
		MunicipalityCode:   req.MunicipalityCode,
		MunicipalityName:   req.MunicipalityName,
	}

	// Execute use case
	output, err := c.simulateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSimulationError(ctx, err)
		return
	}

	// Build response
	response := dto.ToSimulateResponse(output)
	ctx.JSON(http.StatusOK, response)
}

// Get handles GET /simulations/:id requests.
func (c *SimulationController) Get(ctx *gin.Context) {
	// Parse simulation ID from URL
	simulationIDStr := ctx.Param("id")
	simulationID, err := uuid.Parse(simulationIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid simulation ID format",
		})
		return
	}

	// Build input
	input := simulation.GetSimulationInput{
		SimulationID: simulationID,
	}

	// Execute use case
	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSimulationError(ctx, err)
		return
	}

	// Build response
	response := dto.ToSimulationSummaryResponse(output.Simulation)
	ctx.JSON(http.StatusOK, response)
}

// List handles GET /simulations requests.
func (c *SimulationController) List(ctx *gin.Context) {
	// Parse optional limit query parameter
	limit := 0
	if limitStr := ctx.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid limit parameter",
			})
			return
		}
		limit = parsed
	}

	// Build input
	input := simulation.ListSimulationsInput{
		Limit: limit,
	}

	// Execute use case
	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve simulations",
		})
		return
	}

	// Build response
	response := dto.ToSimulationListResponse(output.Simulations)
	ctx.JSON(http.StatusOK, response)
}

// handleSimulationError handles simulation errors and returns appropriate HTTP responses.
func (c *SimulationController) handleSimulationError(ctx *gin.Context, err error) {
	var simErr *domainerror.SimulationError
	if errors.As(err, &simErr) {
		statusCode := c.getStatusCodeForSimulationError(simErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: simErr.Message,
			Code:  string(simErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrSimulationNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Simulation not found",
			Code:  string(domainerror.ErrCodeSimulationNotFound),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSimulationError maps simulation error codes to HTTP status codes.
func (c *SimulationController) getStatusCodeForSimulationError(code domainerror.SimulationErrorCode) int {
	switch code {
	case domainerror.ErrCodeNonPositiveFaceValue,
		domainerror.ErrCodeMissingDueDate,
		domainerror.ErrCodeInvalidDateFormat,
		domainerror.ErrCodeInvalidTaxRegime,
		domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeDueDateNotInFuture,
		domainerror.ErrCodeDueDateBeforeIssueDate,
		domainerror.ErrCodeNonViableOperation:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeSimulationNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
