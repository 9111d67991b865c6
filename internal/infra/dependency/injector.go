// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/factoring-simulator/backend/config"
	"github.com/factoring-simulator/backend/internal/application/adapter"
	"github.com/factoring-simulator/backend/internal/application/usecase/investment"
	"github.com/factoring-simulator/backend/internal/application/usecase/macroeconomic"
	"github.com/factoring-simulator/backend/internal/application/usecase/simulation"
	"github.com/factoring-simulator/backend/internal/infra/cache"
	"github.com/factoring-simulator/backend/internal/infra/server/router"
	"github.com/factoring-simulator/backend/internal/integration/entrypoint/controller"
	"github.com/factoring-simulator/backend/internal/integration/entrypoint/middleware"
	"github.com/factoring-simulator/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// Both db and redis are optional: without a database the simulation runs as a
// pure calculation with no history, without Redis the indicator cache is skipped.
func NewInjector(cfg *config.Config, db *gorm.DB, redis *cache.Redis) *Injector {
	// Create repositories (nil-safe: the use cases treat missing repos as no-ops)
	var simulationRepo adapter.SimulationRepository
	var municipalityRepo adapter.MunicipalityRepository
	if db != nil {
		simulationRepo = persistence.NewSimulationRepository(db)
		municipalityRepo = persistence.NewMunicipalityRepository(db)
	}

	var indicatorCache adapter.IndicatorCache
	if redis != nil {
		indicatorCache = cache.NewIndicatorCache(redis)
	}

	// Create simulation use cases
	simulateUseCase := simulation.NewSimulateFactoringUseCase(simulationRepo, municipalityRepo)
	getSimulationUseCase := simulation.NewGetSimulationUseCase(simulationRepo)
	listSimulationsUseCase := simulation.NewListSimulationsUseCase(simulationRepo)

	// Create investment use cases
	projectInvestmentUseCase := investment.NewProjectInvestmentUseCase()
	compareInvestmentsUseCase := investment.NewCompareInvestmentsUseCase()

	// Create macroeconomic use cases
	getIndicatorsUseCase := macroeconomic.NewGetIndicatorsUseCase(indicatorCache)
	getScenariosUseCase := macroeconomic.NewGetScenariosUseCase()

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			if db == nil {
				return false
			}
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			if redis == nil {
				return false
			}
			return redis.HealthCheck()
		},
	)

	simulationController := controller.NewSimulationController(
		simulateUseCase,
		getSimulationUseCase,
		listSimulationsUseCase,
	)

	investmentController := controller.NewInvestmentController(
		projectInvestmentUseCase,
		compareInvestmentsUseCase,
	)

	macroeconomicController := controller.NewMacroeconomicController(
		getIndicatorsUseCase,
		getScenariosUseCase,
	)

	// Create middleware
	simulationRateLimiter := middleware.NewRateLimiterWithConfig(
		cfg.Simulation.RateLimitMaxAttempts,
		cfg.Simulation.RateLimitWindow,
	)

	// Create router
	r := router.NewRouter(
		healthController,
		simulationController,
		investmentController,
		macroeconomicController,
		simulationRateLimiter,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
