// Package valueobject contains domain value objects for the Factoring Simulator system.
package valueobject

// defaultISSRate applies when the municipality has no configured factoring ISS rate.
var defaultISSRate = mustPercent("3.0")

// ISSCalculation computes the municipal services tax on the deságio.
// ISS is levied on the factoring service fee, not on the gross receivable.
type ISSCalculation struct {
	TaxBase      Money
	TaxRate      Percentage
	TaxAmount    Money
	Municipality Municipality
}

// NewISSCalculation computes ISS over the deságio amount using the municipality's
// factoring rate, defaulting to 3% when the municipality has none configured.
func NewISSCalculation(desagioAmount Money, municipality Municipality) ISSCalculation {
	rate := municipality.ISSRateForFactoring
	if rate.IsZero() {
		rate = defaultISSRate
	}

	return ISSCalculation{
		TaxBase:      desagioAmount,
		TaxRate:      rate,
		TaxAmount:    desagioAmount.MultiplyPercentage(rate).RoundToTaxStandard(),
		Municipality: municipality,
	}
}
