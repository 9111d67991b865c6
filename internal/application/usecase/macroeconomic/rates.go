// Package macroeconomic contains macroeconomic-indicator use cases.
package macroeconomic

// RealRate computes the ex-ante real rate from a nominal rate and expected inflation,
// both in percent notation: ((1 + nominal) / (1 + inflation) - 1) × 100.
func RealRate(nominalRate, expectedInflation float64) float64 {
	return ((1+nominalRate/100)/(1+expectedInflation/100) - 1) * 100
}

// InflationAdjustment returns the percentage-point add-on applied to nominal rates
// when expected inflation runs above the target: 0.3 per excess point, capped at 1.0.
func InflationAdjustment(expectedInflation float64) float64 {
	differential := expectedInflation - currentIndicators.InflationTarget
	if differential <= 0 {
		return 0
	}
	adjustment := differential * 0.3
	if adjustment > 1.0 {
		return 1.0
	}
	return adjustment
}

// AdjustedNominalRate composes Selic, a credit spread and the inflation adjustment
// into a nominal rate, all in percent notation. A zero expectedInflation uses the
// Focus 12-month consensus.
func AdjustedNominalRate(creditSpread, expectedInflation float64) float64 {
	inflation := expectedInflation
	if inflation == 0 {
		inflation = currentIndicators.IPCAExpected12M
	}
	return currentIndicators.Selic + creditSpread + InflationAdjustment(inflation)
}
