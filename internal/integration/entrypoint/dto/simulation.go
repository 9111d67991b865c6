// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/factoring-simulator/backend/internal/application/usecase/simulation"
)

// SimulateRequest represents the request body for a factoring simulation.
type SimulateRequest struct {
	DuplicataNumber    string  `json:"duplicata_number"`
	IssueDate          string  `json:"issue_date,omitempty"`
	DueDate            string  `json:"due_date" binding:"required"`
	FaceValue          float64 `json:"face_value" binding:"required,gt=0"`
	DebtorName         string  `json:"debtor_name"`
	DebtorDocument     string  `json:"debtor_document"`
	DebtorCreditRating string  `json:"debtor_credit_rating" binding:"required"`
	CreditorName       string  `json:"creditor_name"`
	CreditorDocument   string  `json:"creditor_document"`
	EconomicSector     string  `json:"economic_sector" binding:"required"`
	Modality           string  `json:"modality" binding:"required"`
	ClientRiskProfile  string  `json:"client_risk_profile" binding:"required"`
	TaxRegime          string  `json:"tax_regime,omitempty"`
	MunicipalityCode   string  `json:"municipality_code,omitempty"`
	MunicipalityName   string  `json:"municipality_name,omitempty"`
}

// RateCalculationResponse carries the rate composition, rates in percent notation.
type RateCalculationResponse struct {
	BaseMonthlyRate     float64 `json:"base_monthly_rate"`
	RiskAdjustment      float64 `json:"risk_adjustment"`
	ModalityAdjustment  float64 `json:"modality_adjustment"`
	VolumeDiscount      float64 `json:"volume_discount"`
	FinalMonthlyRate    float64 `json:"final_monthly_rate"`
	EffectiveAnnualRate float64 `json:"effective_annual_rate"`
	DesagioPercentage   float64 `json:"desagio_percentage"`
	DesagioAmount       float64 `json:"desagio_amount"`
}

// TaxDetailResponse carries one tax computation.
type TaxDetailResponse struct {
	TaxBase float64 `json:"tax_base"`
	Rate    float64 `json:"rate"`
	Amount  float64 `json:"amount"`
}

// IOFDetailResponse carries the IOF breakdown.
type IOFDetailResponse struct {
	TaxBase           float64 `json:"tax_base"`
	DailyRate         float64 `json:"daily_rate"`
	FixedRate         float64 `json:"fixed_rate"`
	DailyIOF          float64 `json:"daily_iof"`
	FixedIOF          float64 `json:"fixed_iof"`
	Amount            float64 `json:"amount"`
	DaysUntilMaturity int     `json:"days_until_maturity"`
}

// TaxCalculationsResponse aggregates the six tax computations.
type TaxCalculationsResponse struct {
	ISS              TaxDetailResponse `json:"iss"`
	PIS              TaxDetailResponse `json:"pis"`
	COFINS           TaxDetailResponse `json:"cofins"`
	IRPJ             TaxDetailResponse `json:"irpj"`
	CSLL             TaxDetailResponse `json:"csll"`
	IOF              IOFDetailResponse `json:"iof"`
	TotalTaxAmount   float64           `json:"total_tax_amount"`
	EffectiveTaxRate float64           `json:"effective_tax_rate"`
}

// NetCalculationResponse carries the final settlement figures.
type NetCalculationResponse struct {
	DuplicataFaceValue float64 `json:"duplicata_face_value"`
	TotalDesagio       float64 `json:"total_desagio"`
	TotalTaxes         float64 `json:"total_taxes"`
	NetAmount          float64 `json:"net_amount"`
	EffectiveDiscount  float64 `json:"effective_discount"`
}

// SimulateResponse represents the full simulation breakdown.
type SimulateResponse struct {
	SimulationID    string                  `json:"simulation_id"`
	DuplicataNumber string                  `json:"duplicata_number"`
	FaceValue       float64                 `json:"face_value"`
	DueDate         string                  `json:"due_date"`
	DaysToMaturity  int                     `json:"days_to_maturity"`
	TermInMonths    float64                 `json:"term_in_months"`
	DebtorName      string                  `json:"debtor_name"`
	DebtorDocument  string                  `json:"debtor_document"`
	RateCalculation RateCalculationResponse `json:"rate_calculation"`
	TaxCalculations TaxCalculationsResponse `json:"tax_calculations"`
	NetCalculation  NetCalculationResponse  `json:"net_calculation"`
	SimulatedAt     time.Time               `json:"simulated_at"`
}

// SimulationSummaryResponse represents a stored simulation snapshot.
type SimulationSummaryResponse struct {
	ID                string    `json:"id"`
	DuplicataNumber   string    `json:"duplicata_number"`
	IssueDate         string    `json:"issue_date"`
	DueDate           string    `json:"due_date"`
	FaceValue         float64   `json:"face_value"`
	DebtorName        string    `json:"debtor_name"`
	DebtorDocument    string    `json:"debtor_document"`
	CreditorName      string    `json:"creditor_name"`
	EconomicSector    string    `json:"economic_sector"`
	Modality          string    `json:"modality"`
	ClientRiskProfile string    `json:"client_risk_profile"`
	DebtorRating      string    `json:"debtor_rating"`
	OperationVolume   string    `json:"operation_volume"`
	MunicipalityCode  string    `json:"municipality_code,omitempty"`
	MunicipalityName  string    `json:"municipality_name,omitempty"`
	DaysToMaturity    int       `json:"days_to_maturity"`
	TermInMonths      float64   `json:"term_in_months"`
	FinalMonthlyRate  float64   `json:"final_monthly_rate"`
	DesagioPercentage float64   `json:"desagio_percentage"`
	DesagioAmount     float64   `json:"desagio_amount"`
	TotalTaxes        float64   `json:"total_taxes"`
	NetAmount         float64   `json:"net_amount"`
	EffectiveDiscount float64   `json:"effective_discount"`
	SimulatedAt       time.Time `json:"simulated_at"`
}

// SimulationListResponse represents the response for listing simulations.
type SimulationListResponse struct {
	Simulations []SimulationSummaryResponse `json:"simulations"`
}

// ToSimulateResponse converts a simulation use case output to a SimulateResponse DTO.
func ToSimulateResponse(output *simulation.SimulateFactoringOutput) SimulateResponse {
	return SimulateResponse{
		SimulationID:    output.SimulationID,
		DuplicataNumber: output.DuplicataNumber,
		FaceValue:       output.FaceValue,
		DueDate:         output.DueDate,
		DaysToMaturity:  output.DaysToMaturity,
		TermInMonths:    output.TermInMonths,
		DebtorName:      output.DebtorName,
		DebtorDocument:  output.DebtorDocument,
		RateCalculation: RateCalculationResponse{
			BaseMonthlyRate:     output.RateCalculation.BaseMonthlyRate,
			RiskAdjustment:      output.RateCalculation.RiskAdjustment,
			ModalityAdjustment:  output.RateCalculation.ModalityAdjustment,
			VolumeDiscount:      output.RateCalculation.VolumeDiscount,
			FinalMonthlyRate:    output.RateCalculation.FinalMonthlyRate,
			EffectiveAnnualRate: output.RateCalculation.EffectiveAnnualRate,
			DesagioPercentage:   output.RateCalculation.DesagioPercentage,
			DesagioAmount:       output.RateCalculation.DesagioAmount,
		},
		TaxCalculations: TaxCalculationsResponse{
			ISS:    toTaxDetailResponse(output.TaxCalculations.ISS),
			PIS:    toTaxDetailResponse(output.TaxCalculations.PIS),
			COFINS: toTaxDetailResponse(output.TaxCalculations.COFINS),
			IRPJ:   toTaxDetailResponse(output.TaxCalculations.IRPJ),
			CSLL:   toTaxDetailResponse(output.TaxCalculations.CSLL),
			IOF: IOFDetailResponse{
				TaxBase:           output.TaxCalculations.IOF.TaxBase,
				DailyRate:         output.TaxCalculations.IOF.DailyRate,
				FixedRate:         output.TaxCalculations.IOF.FixedRate,
				DailyIOF:          output.TaxCalculations.IOF.DailyIOF,
				FixedIOF:          output.TaxCalculations.IOF.FixedIOF,
				Amount:            output.TaxCalculations.IOF.Amount,
				DaysUntilMaturity: output.TaxCalculations.IOF.DaysUntilMaturity,
			},
			TotalTaxAmount:   output.TaxCalculations.TotalTaxAmount,
			EffectiveTaxRate: output.TaxCalculations.EffectiveTaxRate,
		},
		NetCalculation: NetCalculationResponse{
			DuplicataFaceValue: output.NetCalculation.DuplicataFaceValue,
			TotalDesagio:       output.NetCalculation.TotalDesagio,
			TotalTaxes:         output.NetCalculation.TotalTaxes,
			NetAmount:          output.NetCalculation.NetAmount,
			EffectiveDiscount:  output.NetCalculation.EffectiveDiscount,
		},
		SimulatedAt: output.SimulatedAt,
	}
}

func toTaxDetailResponse(detail simulation.TaxDetailOutput) TaxDetailResponse {
	return TaxDetailResponse{
		TaxBase: detail.TaxBase,
		Rate:    detail.Rate,
		Amount:  detail.Amount,
	}
}

// ToSimulationSummaryResponse converts a stored simulation summary to its DTO.
func ToSimulationSummaryResponse(summary *simulation.SimulationSummary) SimulationSummaryResponse {
	return SimulationSummaryResponse{
		ID:                summary.ID,
		DuplicataNumber:   summary.DuplicataNumber,
		IssueDate:         summary.IssueDate,
		DueDate:           summary.DueDate,
		FaceValue:         summary.FaceValue,
		DebtorName:        summary.DebtorName,
		DebtorDocument:    summary.DebtorDocument,
		CreditorName:      summary.CreditorName,
		EconomicSector:    summary.EconomicSector,
		Modality:          summary.Modality,
		ClientRiskProfile: summary.ClientRiskProfile,
		DebtorRating:      summary.DebtorRating,
		OperationVolume:   summary.OperationVolume,
		MunicipalityCode:  summary.MunicipalityCode,
		MunicipalityName:  summary.MunicipalityName,
		DaysToMaturity:    summary.DaysToMaturity,
		TermInMonths:      summary.TermInMonths,
		FinalMonthlyRate:  summary.FinalMonthlyRate,
		DesagioPercentage: summary.DesagioPercentage,
		DesagioAmount:     summary.DesagioAmount,
		TotalTaxes:        summary.TotalTaxes,
		NetAmount:         summary.NetAmount,
		EffectiveDiscount: summary.EffectiveDiscount,
		SimulatedAt:       summary.SimulatedAt,
	}
}

// ToSimulationListResponse converts stored summaries to a list response DTO.
func ToSimulationListResponse(summaries []*simulation.SimulationSummary) SimulationListResponse {
	responses := make([]SimulationSummaryResponse, len(summaries))
	for i, summary := range summaries {
		responses[i] = ToSimulationSummaryResponse(summary)
	}
	return SimulationListResponse{Simulations: responses}
}
