// Package adapter defines the interfaces (ports) used by the application layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/factoring-simulator/backend/internal/domain/entity"
)

// SimulationRepository defines the interface for simulation persistence operations.
type SimulationRepository interface {
	// Create stores a simulation snapshot.
	Create(ctx context.Context, simulation *entity.Simulation) error

	// FindByID retrieves a simulation by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Simulation, error)

	// FindRecent retrieves the most recent simulations, newest first.
	FindRecent(ctx context.Context, limit int) ([]*entity.Simulation, error)
}
