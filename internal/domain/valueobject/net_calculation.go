// Package valueobject contains domain value objects for the Factoring Simulator system.
package valueobject

// NetCalculation nets the duplicata face value against deságio and taxes to yield the
// final amount paid to the client. Viability (netAmount > 0) is checked by the caller.
type NetCalculation struct {
	DuplicataFaceValue Money
	TotalDesagio       Money
	TotalTaxes         Money
	NetAmount          Money
	EffectiveDiscount  Percentage
}

// NewNetCalculation computes netAmount = faceValue − deságio − taxes and the
// effective discount (faceValue − netAmount) / faceValue.
func NewNetCalculation(faceValue, desagioAmount, taxAmount Money) (NetCalculation, error) {
	netAmount, err := faceValue.Subtract(desagioAmount)
	if err != nil {
		return NetCalculation{}, err
	}
	netAmount, err = netAmount.Subtract(taxAmount)
	if err != nil {
		return NetCalculation{}, err
	}

	totalDiscount, err := faceValue.Subtract(netAmount)
	if err != nil {
		return NetCalculation{}, err
	}
	effectiveDiscount, err := NewPercentageFromDecimal(totalDiscount.Amount().Div(faceValue.Amount()))
	if err != nil {
		return NetCalculation{}, err
	}

	return NetCalculation{
		DuplicataFaceValue: faceValue,
		TotalDesagio:       desagioAmount,
		TotalTaxes:         taxAmount,
		NetAmount:          netAmount,
		EffectiveDiscount:  effectiveDiscount,
	}, nil
}

// TotalDeductions returns deságio plus taxes.
func (n NetCalculation) TotalDeductions() (Money, error) {
	return n.TotalDesagio.Add(n.TotalTaxes)
}
