// Package simulation contains factoring-simulation use cases.
package simulation

import (
	"context"

	"github.com/factoring-simulator/backend/internal/application/adapter"
)

const (
	// DefaultListLimit is the number of simulations returned when no limit is given.
	DefaultListLimit = 20
	// MaxListLimit caps the number of simulations a single listing can return.
	MaxListLimit = 100
)

// ListSimulationsInput represents the input for listing recent simulations.
type ListSimulationsInput struct {
	Limit int
}

// ListSimulationsOutput represents the output of a simulation listing.
type ListSimulationsOutput struct {
	Simulations []*SimulationSummary
}

// ListSimulationsUseCase handles listing of recent simulation snapshots.
type ListSimulationsUseCase struct {
	simulationRepo adapter.SimulationRepository
}

// NewListSimulationsUseCase creates a new ListSimulationsUseCase instance.
func NewListSimulationsUseCase(simulationRepo adapter.SimulationRepository) *ListSimulationsUseCase {
	return &ListSimulationsUseCase{
		simulationRepo: simulationRepo,
	}
}

// Execute lists the most recent simulations, newest first.
func (uc *ListSimulationsUseCase) Execute(ctx context.Context, input ListSimulationsInput) (*ListSimulationsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	records, err := uc.simulationRepo.FindRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	summaries := make([]*SimulationSummary, len(records))
	for i, record := range records {
		summaries[i] = toSimulationSummary(record)
	}

	return &ListSimulationsOutput{
		Simulations: summaries,
	}, nil
}
