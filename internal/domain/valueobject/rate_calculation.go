// Package valueobject contains domain value objects for the Factoring Simulator system.
package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/factoring-simulator/backend/internal/domain/entity"
)

// sectorBaseRates holds the base monthly rate per economic sector, aligned with the
// ANFAC Fator de Compra range (4.0-4.8% with Selic at 15%), 4.3% mid-point.
var sectorBaseRates = map[entity.EconomicSector]Percentage{
	entity.SectorRetail:       mustPercent("4.0"),
	entity.SectorServices:     mustPercent("4.3"),
	entity.SectorIndustry:     mustPercent("4.1"),
	entity.SectorConstruction: mustPercent("4.8"),
	entity.SectorHealthcare:   mustPercent("3.8"),
	entity.SectorAgriculture:  mustPercent("4.5"),
	entity.SectorTechnology:   mustPercent("4.2"),
	entity.SectorOther:        mustPercent("4.5"),
}

// clientRiskPremiums holds the premium added for the client's internal risk profile.
var clientRiskPremiums = map[entity.RiskProfile]Percentage{
	entity.RiskProfileA: mustPercent("0.0"),
	entity.RiskProfileB: mustPercent("0.3"),
	entity.RiskProfileC: mustPercent("0.7"),
	entity.RiskProfileD: mustPercent("1.2"),
	entity.RiskProfileE: mustPercent("2.0"),
}

// debtorRiskPremiums holds the premium added for the debtor's credit rating.
var debtorRiskPremiums = map[entity.CreditRating]Percentage{
	entity.CreditRatingAAA: mustPercent("0.0"),
	entity.CreditRatingAA:  mustPercent("0.2"),
	entity.CreditRatingA:   mustPercent("0.4"),
	entity.CreditRatingBBB: mustPercent("0.7"),
	entity.CreditRatingBB:  mustPercent("1.0"),
	entity.CreditRatingB:   mustPercent("1.5"),
	entity.CreditRatingCCC: mustPercent("2.5"),
}

// modalityAdjustments holds the rate adjustment per factoring modality. Maturity
// factoring subtracts: no funds are advanced, so it prices below the baseline.
var modalityAdjustments = map[entity.FactoringModality]struct {
	adjustment Percentage
	subtracts  bool
}{
	entity.ModalityWithRecourse:    {adjustment: mustPercent("0.0")},
	entity.ModalityWithoutRecourse: {adjustment: mustPercent("2.0")},
	entity.ModalityMaturity:        {adjustment: mustPercent("2.5"), subtracts: true},
	entity.ModalityTrustee:         {adjustment: mustPercent("1.0")},
	entity.ModalityInternational:   {adjustment: mustPercent("3.0")},
	entity.ModalityRawMaterial:     {adjustment: mustPercent("0.5")},
}

// volumeDiscounts holds the multiplicative discount per operation volume tier.
var volumeDiscounts = map[entity.OperationVolume]Percentage{
	entity.VolumeSmall:  mustPercent("0.0"),
	entity.VolumeMedium: mustPercent("5.0"),
	entity.VolumeLarge:  mustPercent("10.0"),
}

// simpleInterestTermLimit is the term, in months, up to which deságio uses simple
// interest. Longer terms use the compound formula.
var simpleInterestTermLimit = decimal.NewFromInt(3)

// powPrecision is the decimal precision used for fractional exponentiation.
const powPrecision = 16

// RateCalculation composes the risk-adjusted discount rate of a factoring operation
// and derives the deságio it implies. Computed once at construction; immutable.
type RateCalculation struct {
	BaseMonthlyRate     Percentage
	RiskAdjustment      Percentage
	ModalityAdjustment  Percentage
	VolumeDiscount      Percentage
	FinalMonthlyRate    Percentage
	EffectiveAnnualRate Percentage
	DesagioPercentage   Percentage
	DesagioAmount       Money
}

// NewRateCalculation derives the full rate composition:
//
//	finalMonthlyRate = (base + riskAdjustment ± modalityAdjustment) × (1 − volumeDiscount)
//
// and the deságio percentage by simple interest for terms up to 3 months, or by
// 1 − 1/(1+r)^t for longer terms. termInMonths is continuous (days/30), so the
// compound branch uses fractional exponentiation.
func NewRateCalculation(
	faceValue Money,
	termInMonths decimal.Decimal,
	economicSector entity.EconomicSector,
	clientRiskProfile entity.RiskProfile,
	debtorCreditRating entity.CreditRating,
	modality entity.FactoringModality,
	operationVolume entity.OperationVolume,
) (RateCalculation, error) {
	baseRate, ok := sectorBaseRates[economicSector]
	if !ok {
		return RateCalculation{}, fmt.Errorf("unknown economic sector %q", economicSector)
	}

	clientPremium, ok := clientRiskPremiums[clientRiskProfile]
	if !ok {
		return RateCalculation{}, fmt.Errorf("unknown risk profile %q", clientRiskProfile)
	}
	debtorPremium, ok := debtorRiskPremiums[debtorCreditRating]
	if !ok {
		return RateCalculation{}, fmt.Errorf("unknown credit rating %q", debtorCreditRating)
	}
	riskAdjustment, err := clientPremium.Add(debtorPremium)
	if err != nil {
		return RateCalculation{}, err
	}

	modalityData, ok := modalityAdjustments[modality]
	if !ok {
		return RateCalculation{}, fmt.Errorf("unknown factoring modality %q", modality)
	}

	volumeDiscount, ok := volumeDiscounts[operationVolume]
	if !ok {
		return RateCalculation{}, fmt.Errorf("unknown operation volume %q", operationVolume)
	}

	baseWithAdjustments, err := baseRate.Add(riskAdjustment)
	if err != nil {
		return RateCalculation{}, err
	}
	if modalityData.subtracts {
		baseWithAdjustments, err = baseWithAdjustments.Subtract(modalityData.adjustment)
	} else {
		baseWithAdjustments, err = baseWithAdjustments.Add(modalityData.adjustment)
	}
	if err != nil {
		return RateCalculation{}, err
	}

	discountFactor := decimal.NewFromInt(1).Sub(volumeDiscount.ToDecimal())
	finalMonthlyRate, err := baseWithAdjustments.Multiply(discountFactor)
	if err != nil {
		return RateCalculation{}, err
	}

	// Effective annual rate: (1 + r)^12 - 1
	annualFactor, err := finalMonthlyRate.ToDecimal().Add(decimal.NewFromInt(1)).PowInt32(12)
	if err != nil {
		return RateCalculation{}, err
	}
	effectiveAnnualRate, err := NewPercentageFromDecimal(annualFactor.Sub(decimal.NewFromInt(1)))
	if err != nil {
		return RateCalculation{}, err
	}

	desagioPercentage, err := calculateDesagio(finalMonthlyRate, termInMonths)
	if err != nil {
		return RateCalculation{}, err
	}

	desagioAmount := faceValue.MultiplyPercentage(desagioPercentage).RoundToTaxStandard()

	return RateCalculation{
		BaseMonthlyRate:     baseRate,
		RiskAdjustment:      riskAdjustment,
		ModalityAdjustment:  modalityData.adjustment,
		VolumeDiscount:      volumeDiscount,
		FinalMonthlyRate:    finalMonthlyRate,
		EffectiveAnnualRate: effectiveAnnualRate,
		DesagioPercentage:   desagioPercentage,
		DesagioAmount:       desagioAmount,
	}, nil
}

// calculateDesagio derives the deságio percentage from the monthly rate and term.
// Terms up to 3 months use simple interest; longer terms use D = 1 - 1/(1+r)^t.
func calculateDesagio(monthlyRate Percentage, termInMonths decimal.Decimal) (Percentage, error) {
	if termInMonths.LessThanOrEqual(simpleInterestTermLimit) {
		return monthlyRate.Multiply(termInMonths)
	}

	one := decimal.NewFromInt(1)
	compoundFactor, err := monthlyRate.ToDecimal().Add(one).PowWithPrecision(termInMonths, powPrecision)
	if err != nil {
		return Percentage{}, err
	}
	return NewPercentageFromDecimal(one.Sub(one.Div(compoundFactor)))
}
