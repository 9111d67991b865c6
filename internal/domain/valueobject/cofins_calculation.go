// Package valueobject contains domain value objects for the Factoring Simulator system.
package valueobject

import "github.com/factoring-simulator/backend/internal/domain/entity"

// cofinsNonCumulativeRate is the COFINS rate under the non-cumulative regime.
var cofinsNonCumulativeRate = mustPercent("7.6")

// COFINSCalculation computes the COFINS federal contribution on the deságio.
type COFINSCalculation struct {
	TaxBase   Money
	TaxRate   Percentage
	TaxAmount Money
	Regime    ContributionRegime
}

// NewCOFINSCalculation computes COFINS over the deságio amount. As with PIS, the
// non-cumulative 7.6% rate always applies because factoring companies are restricted
// to Lucro Real; the regime parameter is accepted for interface symmetry only.
func NewCOFINSCalculation(desagioAmount Money, _ entity.TaxRegime) COFINSCalculation {
	return COFINSCalculation{
		TaxBase:   desagioAmount,
		TaxRate:   cofinsNonCumulativeRate,
		TaxAmount: desagioAmount.MultiplyPercentage(cofinsNonCumulativeRate).RoundToTaxStandard(),
		Regime:    ContributionRegimeNonCumulative,
	}
}
