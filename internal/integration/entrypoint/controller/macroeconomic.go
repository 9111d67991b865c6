// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/factoring-simulator/backend/internal/application/usecase/macroeconomic"
	"github.com/factoring-simulator/backend/internal/integration/entrypoint/dto"
)

// MacroeconomicController handles macroeconomic indicator endpoints.
type MacroeconomicController struct {
	indicatorsUseCase *macroeconomic.GetIndicatorsUseCase
	scenariosUseCase  *macroeconomic.GetScenariosUseCase
}

// NewMacroeconomicController creates a new macroeconomic controller instance.
func NewMacroeconomicController(
	indicatorsUseCase *macroeconomic.GetIndicatorsUseCase,
	scenariosUseCase *macroeconomic.GetScenariosUseCase,
) *MacroeconomicController {
	return &MacroeconomicController{
		indicatorsUseCase: indicatorsUseCase,
		scenariosUseCase:  scenariosUseCase,
	}
}

// GetIndicators handles GET /macroeconomics/indicators requests.
func (c *MacroeconomicController) GetIndicators(ctx *gin.Context) {
	output, err := c.indicatorsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve macroeconomic indicators",
		})
		return
	}

	response := dto.ToIndicatorsResponse(output.Indicators)
	ctx.JSON(http.StatusOK, response)
}

// GetScenarios handles GET /macroeconomics/scenarios requests.
func (c *MacroeconomicController) GetScenarios(ctx *gin.Context) {
	output, err := c.scenariosUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve inflation scenarios",
		})
		return
	}

	response := dto.ToScenarioListResponse(output.Scenarios)
	ctx.JSON(http.StatusOK, response)
}
