// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/factoring-simulator/backend/internal/application/usecase/investment"
)

// ProjectionRequest represents the request body for an investment projection.
type ProjectionRequest struct {
	Amount       float64  `json:"amount" binding:"required,gt=0"`
	Months       int      `json:"months" binding:"required,gt=0"`
	AutoReinvest bool     `json:"auto_reinvest"`
	MonthlyRate  *float64 `json:"monthly_rate,omitempty"`
}

// MonthlyProjectionResponse is the state of the investment at the end of one month.
type MonthlyProjectionResponse struct {
	Month          int     `json:"month"`
	Capital        float64 `json:"capital"`
	Interest       float64 `json:"interest"`
	CumulativeGain float64 `json:"cumulative_gain"`
}

// ProjectionResponse represents the projected investment figures.
type ProjectionResponse struct {
	InitialAmount     float64                     `json:"initial_amount"`
	FinalAmount       float64                     `json:"final_amount"`
	TotalGain         float64                     `json:"total_gain"`
	MonthlyAverage    float64                     `json:"monthly_average"`
	ROIPercentage     float64                     `json:"roi_percentage"`
	EffectiveRate     float64                     `json:"effective_rate"`
	MonthlyProjection []MonthlyProjectionResponse `json:"monthly_projection"`
}

// ComparisonRequest represents the request body for a benchmark comparison.
type ComparisonRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Months int     `json:"months" binding:"required,gt=0"`
}

// ComparisonRowResponse is one row of the benchmark comparison table.
type ComparisonRowResponse struct {
	Name          string  `json:"name"`
	InitialAmount float64 `json:"initial_amount"`
	FinalAmount   float64 `json:"final_amount"`
	TotalGain     float64 `json:"total_gain"`
	AnnualRate    float64 `json:"annual_rate"`
}

// ComparisonResponse represents the benchmark comparison table.
type ComparisonResponse struct {
	Comparisons []ComparisonRowResponse `json:"comparisons"`
}

// ToProjectionResponse converts a projection use case output to its DTO.
func ToProjectionResponse(output *investment.ProjectInvestmentOutput) ProjectionResponse {
	projection := make([]MonthlyProjectionResponse, len(output.MonthlyProjection))
	for i, month := range output.MonthlyProjection {
		projection[i] = MonthlyProjectionResponse{
			Month:          month.Month,
			Capital:        month.Capital,
			Interest:       month.Interest,
			CumulativeGain: month.CumulativeGain,
		}
	}

	return ProjectionResponse{
		InitialAmount:     output.InitialAmount,
		FinalAmount:       output.FinalAmount,
		TotalGain:         output.TotalGain,
		MonthlyAverage:    output.MonthlyAverage,
		ROIPercentage:     output.ROIPercentage,
		EffectiveRate:     output.EffectiveRate,
		MonthlyProjection: projection,
	}
}

// ToComparisonResponse converts a comparison use case output to its DTO.
func ToComparisonResponse(output *investment.CompareInvestmentsOutput) ComparisonResponse {
	rows := make([]ComparisonRowResponse, len(output.Comparisons))
	for i, comparison := range output.Comparisons {
		rows[i] = ComparisonRowResponse{
			Name:          comparison.Name,
			InitialAmount: comparison.InitialAmount,
			FinalAmount:   comparison.FinalAmount,
			TotalGain:     comparison.TotalGain,
			AnnualRate:    comparison.AnnualRate,
		}
	}
	return ComparisonResponse{Comparisons: rows}
}
