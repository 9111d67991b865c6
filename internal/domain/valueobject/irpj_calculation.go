// Package valueobject contains domain value objects for the Factoring Simulator system.
package valueobject

import "github.com/factoring-simulator/backend/internal/domain/entity"

var (
	// presumedProfitPercentage is the presumed-profit share of revenue used to
	// estimate the IRPJ/CSLL base in the simulation.
	presumedProfitPercentage = mustPercent("32")

	// irpjRate is the corporate income tax rate on the presumed profit.
	irpjRate = mustPercent("15")
)

// IRPJCalculation computes the corporate income tax estimate on the deságio.
type IRPJCalculation struct {
	TaxBase                  Money
	PresumedProfitPercentage Percentage
	TaxableProfit            Money
	TaxRate                  Percentage
	TaxAmount                Money
}

// NewIRPJCalculation estimates IRPJ over the deságio amount using the presumed-profit
// method: 32% of the revenue is treated as taxable profit, taxed at 15%.
func NewIRPJCalculation(desagioAmount Money, _ entity.TaxRegime) IRPJCalculation {
	taxableProfit := desagioAmount.MultiplyPercentage(presumedProfitPercentage)

	return IRPJCalculation{
		TaxBase:                  desagioAmount,
		PresumedProfitPercentage: presumedProfitPercentage,
		TaxableProfit:            taxableProfit,
		TaxRate:                  irpjRate,
		TaxAmount:                taxableProfit.MultiplyPercentage(irpjRate).RoundToTaxStandard(),
	}
}
