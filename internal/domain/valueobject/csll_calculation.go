// Package valueobject contains domain value objects for the Factoring Simulator system.
package valueobject

import "github.com/factoring-simulator/backend/internal/domain/entity"

// csllRate is the social contribution rate on the presumed profit.
var csllRate = mustPercent("9")

// CSLLCalculation computes the social-contribution-on-profit estimate on the deságio.
type CSLLCalculation struct {
	TaxBase                  Money
	PresumedProfitPercentage Percentage
	TaxableProfit            Money
	TaxRate                  Percentage
	TaxAmount                Money
}

// NewCSLLCalculation estimates CSLL over the deságio amount using the same 32%
// presumed-profit base as IRPJ, taxed at 9%.
func NewCSLLCalculation(desagioAmount Money, _ entity.TaxRegime) CSLLCalculation {
	taxableProfit := desagioAmount.MultiplyPercentage(presumedProfitPercentage)

	return CSLLCalculation{
		TaxBase:                  desagioAmount,
		PresumedProfitPercentage: presumedProfitPercentage,
		TaxableProfit:            taxableProfit,
		TaxRate:                  csllRate,
		TaxAmount:                taxableProfit.MultiplyPercentage(csllRate).RoundToTaxStandard(),
	}
}
