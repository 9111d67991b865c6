// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/factoring-simulator/backend/internal/domain/entity"
)

// SimulationModel represents the simulations table in the database.
type SimulationModel struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	DuplicataNumber string          `gorm:"type:varchar(50);not null;index"`
	IssueDate       time.Time       `gorm:"type:date;not null"`
	DueDate         time.Time       `gorm:"type:date;not null"`
	FaceValue       decimal.Decimal `gorm:"type:decimal(15,2);not null"`

	DebtorName     string `gorm:"type:varchar(255);not null"`
	DebtorDocument string `gorm:"type:varchar(18);not null"`
	DebtorRating   string `gorm:"type:varchar(4);not null"`
	CreditorName   string `gorm:"type:varchar(255)"`
	CreditorDoc    string `gorm:"type:varchar(18)"`

	EconomicSector    string `gorm:"type:varchar(20);not null"`
	Modality          string `gorm:"type:varchar(20);not null"`
	ClientRiskProfile string `gorm:"type:varchar(1);not null"`
	OperationVolume   string `gorm:"type:varchar(10);not null"`
	TaxRegime         string `gorm:"type:varchar(20);not null"`
	MunicipalityCode  string `gorm:"type:varchar(10)"`
	MunicipalityName  string `gorm:"type:varchar(100)"`

	DaysToMaturity    int             `gorm:"not null"`
	TermInMonths      decimal.Decimal `gorm:"type:decimal(10,6);not null"`
	FinalMonthlyRate  decimal.Decimal `gorm:"type:decimal(12,8);not null"`
	DesagioPercentage decimal.Decimal `gorm:"type:decimal(12,8);not null"`
	DesagioAmount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalTaxes        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	NetAmount         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	EffectiveDiscount decimal.Decimal `gorm:"type:decimal(12,8);not null"`

	SimulatedAt time.Time `gorm:"type:timestamp;not null;index"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the SimulationModel.
func (SimulationModel) TableName() string {
	return "simulations"
}

// ToEntity converts a SimulationModel to a domain Simulation entity.
func (m *SimulationModel) ToEntity() *entity.Simulation {
	return &entity.Simulation{
		ID:                m.ID,
		DuplicataNumber:   m.DuplicataNumber,
		IssueDate:         m.IssueDate,
		DueDate:           m.DueDate,
		FaceValue:         m.FaceValue,
		DebtorName:        m.DebtorName,
		DebtorDocument:    m.DebtorDocument,
		DebtorRating:      entity.CreditRating(m.DebtorRating),
		CreditorName:      m.CreditorName,
		CreditorDoc:       m.CreditorDoc,
		EconomicSector:    entity.EconomicSector(m.EconomicSector),
		Modality:          entity.FactoringModality(m.Modality),
		ClientRiskProfile: entity.RiskProfile(m.ClientRiskProfile),
		OperationVolume:   entity.OperationVolume(m.OperationVolume),
		TaxRegime:         entity.TaxRegime(m.TaxRegime),
		MunicipalityCode:  m.MunicipalityCode,
		MunicipalityName:  m.MunicipalityName,
		DaysToMaturity:    m.DaysToMaturity,
		TermInMonths:      m.TermInMonths,
		FinalMonthlyRate:  m.FinalMonthlyRate,
		DesagioPercentage: m.DesagioPercentage,
		DesagioAmount:     m.DesagioAmount,
		TotalTaxes:        m.TotalTaxes,
		NetAmount:         m.NetAmount,
		EffectiveDiscount: m.EffectiveDiscount,
		SimulatedAt:       m.SimulatedAt,
		CreatedAt:         m.CreatedAt,
	}
}

// SimulationFromEntity creates a SimulationModel from a domain Simulation entity.
func SimulationFromEntity(simulation *entity.Simulation) *SimulationModel {
	return &SimulationModel{
		ID:                simulation.ID,
		DuplicataNumber:   simulation.DuplicataNumber,
		IssueDate:         simulation.IssueDate,
		DueDate:           simulation.DueDate,
		FaceValue:         simulation.FaceValue,
		DebtorName:        simulation.DebtorName,
		DebtorDocument:    simulation.DebtorDocument,
		DebtorRating:      string(simulation.DebtorRating),
		CreditorName:      simulation.CreditorName,
		CreditorDoc:       simulation.CreditorDoc,
		EconomicSector:    string(simulation.EconomicSector),
		Modality:          string(simulation.Modality),
		ClientRiskProfile: string(simulation.ClientRiskProfile),
		OperationVolume:   string(simulation.OperationVolume),
		TaxRegime:         string(simulation.TaxRegime),
		MunicipalityCode:  simulation.MunicipalityCode,
		MunicipalityName:  simulation.MunicipalityName,
		DaysToMaturity:    simulation.DaysToMaturity,
		TermInMonths:      simulation.TermInMonths,
		FinalMonthlyRate:  simulation.FinalMonthlyRate,
		DesagioPercentage: simulation.DesagioPercentage,
		DesagioAmount:     simulation.DesagioAmount,
		TotalTaxes:        simulation.TotalTaxes,
		NetAmount:         simulation.NetAmount,
		EffectiveDiscount: simulation.EffectiveDiscount,
		SimulatedAt:       simulation.SimulatedAt,
		CreatedAt:         simulation.CreatedAt,
	}
}
