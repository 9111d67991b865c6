// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/factoring-simulator/backend/internal/application/usecase/macroeconomic"
)

// IndicatorsResponse represents the macroeconomic indicator snapshot.
type IndicatorsResponse struct {
	IPCA                 float64 `json:"ipca"`
	IPCAExpected12M      float64 `json:"ipca_expected_12m"`
	Selic                float64 `json:"selic"`
	RealRate             float64 `json:"real_rate"`
	InflationTarget      float64 `json:"inflation_target"`
	InflationTargetUpper float64 `json:"inflation_target_upper"`
	InflationTargetLower float64 `json:"inflation_target_lower"`
	LastUpdate           string  `json:"last_update"`
}

// ScenarioResponse is one inflation scenario.
type ScenarioResponse struct {
	Name        string  `json:"name"`
	IPCA        float64 `json:"ipca"`
	Selic       float64 `json:"selic"`
	Description string  `json:"description"`
}

// ScenarioListResponse represents the response for listing inflation scenarios.
type ScenarioListResponse struct {
	Scenarios []ScenarioResponse `json:"scenarios"`
}

// ToIndicatorsResponse converts the indicator snapshot to its DTO.
func ToIndicatorsResponse(indicators macroeconomic.Indicators) IndicatorsResponse {
	return IndicatorsResponse{
		IPCA:                 indicators.IPCA,
		IPCAExpected12M:      indicators.IPCAExpected12M,
		Selic:                indicators.Selic,
		RealRate:             indicators.RealRate,
		InflationTarget:      indicators.InflationTarget,
		InflationTargetUpper: indicators.InflationTargetUpper,
		InflationTargetLower: indicators.InflationTargetLower,
		LastUpdate:           indicators.LastUpdate,
	}
}

// ToScenarioListResponse converts the inflation scenarios to a list response DTO.
func ToScenarioListResponse(scenarios []macroeconomic.InflationScenario) ScenarioListResponse {
	responses := make([]ScenarioResponse, len(scenarios))
	for i, scenario := range scenarios {
		responses[i] = ScenarioResponse{
			Name:        scenario.Name,
			IPCA:        scenario.IPCA,
			Selic:       scenario.Selic,
			Description: scenario.Description,
		}
	}
	return ScenarioListResponse{Scenarios: responses}
}
