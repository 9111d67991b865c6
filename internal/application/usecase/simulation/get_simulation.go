// Package simulation contains factoring-simulation use cases.
package simulation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/factoring-simulator/backend/internal/application/adapter"
	"github.com/factoring-simulator/backend/internal/domain/entity"
)

// GetSimulationInput represents the input for retrieving a stored simulation.
type GetSimulationInput struct {
	SimulationID uuid.UUID
}

// SimulationSummary is the stored snapshot of a simulation run.
type SimulationSummary struct {
	ID                string
	DuplicataNumber   string
	IssueDate         string
	DueDate           string
	FaceValue         float64
	DebtorName        string
	DebtorDocument    string
	CreditorName      string
	EconomicSector    string
	Modality          string
	ClientRiskProfile string
	DebtorRating      string
	OperationVolume   string
	MunicipalityCode  string
	MunicipalityName  string
	DaysToMaturity    int
	TermInMonths      float64
	FinalMonthlyRate  float64 // percent notation
	DesagioPercentage float64 // percent notation
	DesagioAmount     float64
	TotalTaxes        float64
	NetAmount         float64
	EffectiveDiscount float64 // percent notation
	SimulatedAt       time.Time
}

// GetSimulationOutput represents the output of a simulation retrieval.
type GetSimulationOutput struct {
	Simulation *SimulationSummary
}

// GetSimulationUseCase handles retrieval of a stored simulation snapshot.
type GetSimulationUseCase struct {
	simulationRepo adapter.SimulationRepository
}

// NewGetSimulationUseCase creates a new GetSimulationUseCase instance.
func NewGetSimulationUseCase(simulationRepo adapter.SimulationRepository) *GetSimulationUseCase {
	return &GetSimulationUseCase{
		simulationRepo: simulationRepo,
	}
}

// Execute retrieves the simulation with the given ID.
func (uc *GetSimulationUseCase) Execute(ctx context.Context, input GetSimulationInput) (*GetSimulationOutput, error) {
	record, err := uc.simulationRepo.FindByID(ctx, input.SimulationID)
	if err != nil {
		return nil, err
	}

	return &GetSimulationOutput{
		Simulation: toSimulationSummary(record),
	}, nil
}

// hundred converts stored fractions to percent notation for display.
var hundred = decimal.NewFromInt(100)

func toSimulationSummary(record *entity.Simulation) *SimulationSummary {
	return &SimulationSummary{
		ID:                record.ID.String(),
		DuplicataNumber:   record.DuplicataNumber,
		IssueDate:         record.IssueDate.Format(dateLayout),
		DueDate:           record.DueDate.Format(dateLayout),
		FaceValue:         record.FaceValue.InexactFloat64(),
		DebtorName:        record.DebtorName,
		DebtorDocument:    record.DebtorDocument,
		CreditorName:      record.CreditorName,
		EconomicSector:    string(record.EconomicSector),
		Modality:          string(record.Modality),
		ClientRiskProfile: string(record.ClientRiskProfile),
		DebtorRating:      string(record.DebtorRating),
		OperationVolume:   string(record.OperationVolume),
		MunicipalityCode:  record.MunicipalityCode,
		MunicipalityName:  record.MunicipalityName,
		DaysToMaturity:    record.DaysToMaturity,
		TermInMonths:      record.TermInMonths.InexactFloat64(),
		FinalMonthlyRate:  record.FinalMonthlyRate.Mul(hundred).InexactFloat64(),
		DesagioPercentage: record.DesagioPercentage.Mul(hundred).InexactFloat64(),
		DesagioAmount:     record.DesagioAmount.InexactFloat64(),
		TotalTaxes:        record.TotalTaxes.InexactFloat64(),
		NetAmount:         record.NetAmount.InexactFloat64(),
		EffectiveDiscount: record.EffectiveDiscount.Mul(hundred).InexactFloat64(),
		SimulatedAt:       record.SimulatedAt,
	}
}
