// Package macroeconomic contains macroeconomic-indicator use cases.
package macroeconomic

import "context"

// InflationScenario is a named IPCA/Selic path used to stress rate assumptions.
type InflationScenario struct {
	Name        string  `json:"name"`
	IPCA        float64 `json:"ipca"`
	Selic       float64 `json:"selic"`
	Description string  `json:"description"`
}

// inflationScenarios are the three standard scenarios from the inflation report.
var inflationScenarios = []InflationScenario{
	{
		Name:        "Base (Focus consensus)",
		IPCA:        4.8,
		Selic:       15.0,
		Description: "Gradual convergence towards the inflation target",
	},
	{
		Name:        "Upside (inflation risk)",
		IPCA:        6.0,
		Selic:       15.25,
		Description: "Persistent inflation, no Selic cuts",
	},
	{
		Name:        "Downside (disinflation)",
		IPCA:        4.0,
		Selic:       13.0,
		Description: "Accelerated disinflation, cuts starting in 2026",
	},
}

// GetScenariosOutput represents the output of a scenario listing.
type GetScenariosOutput struct {
	Scenarios []InflationScenario
}

// GetScenariosUseCase serves the inflation scenarios.
type GetScenariosUseCase struct{}

// NewGetScenariosUseCase creates a new GetScenariosUseCase instance.
func NewGetScenariosUseCase() *GetScenariosUseCase {
	return &GetScenariosUseCase{}
}

// Execute returns the inflation scenarios.
func (uc *GetScenariosUseCase) Execute(_ context.Context) (*GetScenariosOutput, error) {
	return &GetScenariosOutput{Scenarios: inflationScenarios}, nil
}
