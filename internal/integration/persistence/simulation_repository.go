// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/factoring-simulator/backend/internal/application/adapter"
	"github.com/factoring-simulator/backend/internal/domain/entity"
	domainerror "github.com/factoring-simulator/backend/internal/domain/error"
	"github.com/factoring-simulator/backend/internal/integration/persistence/model"
)

// simulationRepository implements the adapter.SimulationRepository interface.
type simulationRepository struct {
	db *gorm.DB
}

// NewSimulationRepository creates a new simulation repository instance.
func NewSimulationRepository(db *gorm.DB) adapter.SimulationRepository {
	return &simulationRepository{
		db: db,
	}
}

// Create stores a simulation snapshot in the database.
func (r *simulationRepository) Create(ctx context.Context, simulation *entity.Simulation) error {
	simulationModel := model.SimulationFromEntity(simulation)
	result := r.db.WithContext(ctx).Create(simulationModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a simulation by its ID.
func (r *simulationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Simulation, error) {
	var simulationModel model.SimulationModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&simulationModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSimulationNotFound
		}
		return nil, result.Error
	}
	return simulationModel.ToEntity(), nil
}

// FindRecent retrieves the most recent simulations, newest first.
func (r *simulationRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Simulation, error) {
	var simulationModels []model.SimulationModel
	result := r.db.WithContext(ctx).
		Order("simulated_at DESC").
		Limit(limit).
		Find(&simulationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	simulations := make([]*entity.Simulation, len(simulationModels))
	for i, sm := range simulationModels {
		simulations[i] = sm.ToEntity()
	}
	return simulations, nil
}
