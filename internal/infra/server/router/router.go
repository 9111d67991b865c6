// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/factoring-simulator/backend/internal/integration/entrypoint/controller"
	"github.com/factoring-simulator/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                  *gin.Engine
	healthController        *controller.HealthController
	simulationController    *controller.SimulationController
	investmentController    *controller.InvestmentController
	macroeconomicController *controller.MacroeconomicController
	simulationRateLimiter   *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	simulationController *controller.SimulationController,
	investmentController *controller.InvestmentController,
	macroeconomicController *controller.MacroeconomicController,
	simulationRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:        healthController,
		simulationController:    simulationController,
		investmentController:    investmentController,
		macroeconomicController: macroeconomicController,
		simulationRateLimiter:   simulationRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Simulation routes
		if r.simulationController != nil {
			simulations := v1.Group("/simulations")
			{
				if r.simulationRateLimiter != nil {
					simulations.POST("", r.simulationRateLimiter.Middleware(), r.simulationController.Simulate)
				} else {
					simulations.POST("", r.simulationController.Simulate)
				}
				simulations.GET("", r.simulationController.List)
				simulations.GET("/:id", r.simulationController.Get)
			}
		}

		// Investment routes
		if r.investmentController != nil {
			investments := v1.Group("/investments")
			{
				investments.POST("/projection", r.investmentController.Project)
				investments.POST("/comparison", r.investmentController.Compare)
			}
		}

		// Macroeconomic routes
		if r.macroeconomicController != nil {
			macro := v1.Group("/macroeconomics")
			{
				macro.GET("/indicators", r.macroeconomicController.GetIndicators)
				macro.GET("/scenarios", r.macroeconomicController.GetScenarios)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
