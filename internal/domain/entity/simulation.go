// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Simulation represents a stored factoring simulation result.
// It is a snapshot of the figures produced by one simulation run; the calculation
// itself is pure and never reads these records back.
type Simulation struct {
	ID uuid.UUID

	// Duplicata
	DuplicataNumber string
	IssueDate       time.Time
	DueDate         time.Time
	FaceValue       decimal.Decimal

	// Parties
	DebtorName     string
	DebtorDocument string
	DebtorRating   CreditRating
	CreditorName   string
	CreditorDoc    string

	// Operation parameters
	EconomicSector    EconomicSector
	Modality          FactoringModality
	ClientRiskProfile RiskProfile
	OperationVolume   OperationVolume
	TaxRegime         TaxRegime
	MunicipalityCode  string
	MunicipalityName  string

	// Derived figures
	DaysToMaturity    int
	TermInMonths      decimal.Decimal
	FinalMonthlyRate  decimal.Decimal // fraction, e.g. 0.0475
	DesagioPercentage decimal.Decimal // fraction
	DesagioAmount     decimal.Decimal
	TotalTaxes        decimal.Decimal
	NetAmount         decimal.Decimal
	EffectiveDiscount decimal.Decimal // fraction

	SimulatedAt time.Time
	CreatedAt   time.Time
}

// NewSimulation creates a new Simulation entity with a fresh ID and timestamps.
func NewSimulation() *Simulation {
	now := time.Now().UTC()

	return &Simulation{
		ID:          uuid.New(),
		SimulatedAt: now,
		CreatedAt:   now,
	}
}
