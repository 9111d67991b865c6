// Package valueobject contains domain value objects for the Factoring Simulator system.
package valueobject

import "github.com/factoring-simulator/backend/internal/domain/entity"

// TaxCalculations aggregates the six tax computations of a factoring operation.
// ISS, PIS, COFINS, IRPJ and CSLL are levied on the deságio (the service-fee
// revenue); IOF on the net amount paid to the client before IOF itself.
type TaxCalculations struct {
	ISS              ISSCalculation
	PIS              PISCalculation
	COFINS           COFINSCalculation
	IRPJ             IRPJCalculation
	CSLL             CSLLCalculation
	IOF              IOFCalculation
	TotalTaxAmount   Money
	EffectiveTaxRate Percentage
}

// NewTaxCalculations runs the six tax computations. netAmount is the preliminary net
// (face value minus deságio, before taxes): IOF needs the deságio already resolved but
// must itself be known before the final net amount can be settled.
//
// Each tax amount is rounded individually; the total is the sum of the rounded
// components, rounded once more.
func NewTaxCalculations(
	desagioAmount Money,
	faceValue Money,
	netAmount Money,
	daysUntilMaturity int,
	taxRegime entity.TaxRegime,
	municipality Municipality,
) (TaxCalculations, error) {
	iss := NewISSCalculation(desagioAmount, municipality)
	pis := NewPISCalculation(desagioAmount, taxRegime)
	cofins := NewCOFINSCalculation(desagioAmount, taxRegime)
	irpj := NewIRPJCalculation(desagioAmount, taxRegime)
	csll := NewCSLLCalculation(desagioAmount, taxRegime)

	// Pessoa jurídica is the default taxpayer classification for the IOF substitute.
	iof, err := NewIOFCalculation(netAmount, daysUntilMaturity, entity.IOFEntityLegalEntity)
	if err != nil {
		return TaxCalculations{}, err
	}

	total := iss.TaxAmount
	for _, amount := range []Money{pis.TaxAmount, cofins.TaxAmount, irpj.TaxAmount, csll.TaxAmount, iof.TotalIOFAmount} {
		total, err = total.Add(amount)
		if err != nil {
			return TaxCalculations{}, err
		}
	}
	total = total.RoundToTaxStandard()

	effectiveRate, err := NewPercentageFromDecimal(total.Amount().Div(faceValue.Amount()))
	if err != nil {
		return TaxCalculations{}, err
	}

	return TaxCalculations{
		ISS:              iss,
		PIS:              pis,
		COFINS:           cofins,
		IRPJ:             irpj,
		CSLL:             csll,
		IOF:              iof,
		TotalTaxAmount:   total,
		EffectiveTaxRate: effectiveRate,
	}, nil
}
