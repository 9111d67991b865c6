// Package valueobject contains domain value objects for the Factoring Simulator system.
package valueobject

import "github.com/factoring-simulator/backend/internal/domain/entity"

// ContributionRegime is the PIS/COFINS assessment regime applied to a calculation.
type ContributionRegime string

const (
	ContributionRegimeCumulative    ContributionRegime = "cumulative"
	ContributionRegimeNonCumulative ContributionRegime = "non_cumulative"
)

// pisNonCumulativeRate is the PIS rate under the non-cumulative regime.
var pisNonCumulativeRate = mustPercent("1.65")

// PISCalculation computes the PIS federal contribution on the deságio (gross revenue).
type PISCalculation struct {
	TaxBase   Money
	TaxRate   Percentage
	TaxAmount Money
	Regime    ContributionRegime
}

// NewPISCalculation computes PIS over the deságio amount. Factoring companies must
// use Lucro Real (Lei 9.718/98), so the non-cumulative 1.65% rate always applies;
// the regime parameter is accepted for interface symmetry and has no branching effect.
func NewPISCalculation(desagioAmount Money, _ entity.TaxRegime) PISCalculation {
	return PISCalculation{
		TaxBase:   desagioAmount,
		TaxRate:   pisNonCumulativeRate,
		TaxAmount: desagioAmount.MultiplyPercentage(pisNonCumulativeRate).RoundToTaxStandard(),
		Regime:    ContributionRegimeNonCumulative,
	}
}
