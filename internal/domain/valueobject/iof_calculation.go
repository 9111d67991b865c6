// Package valueobject contains domain value objects for the Factoring Simulator system.
package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/factoring-simulator/backend/internal/domain/entity"
)

// maxIOFDays caps the daily IOF accrual period at one year.
const maxIOFDays = 365

// iofRates holds the daily and fixed IOF rates per taxpayer classification
// (Instrução Normativa RFB 1.543/2015).
var iofRates = map[entity.IOFEntityType]struct {
	daily Percentage
	fixed Percentage
}{
	entity.IOFEntityIndividual:   {daily: mustPercent("0.0082"), fixed: mustPercent("0.38")},
	entity.IOFEntityLegalEntity:  {daily: mustPercent("0.0041"), fixed: mustPercent("0.38")},
	entity.IOFEntitySimplesSmall: {daily: mustPercent("0.00137"), fixed: mustPercent("0.38")},
}

// IOFCalculation computes the financial-operations tax on the net amount paid to the
// client. IOF applies to factoring despite the company not being a financial
// institution, because the legislation defines factoring as credit activity; the
// factoring company withholds and remits as tax substitute.
type IOFCalculation struct {
	TaxBase           Money
	EntityType        entity.IOFEntityType
	DailyRate         Percentage
	FixedRate         Percentage
	DaysUntilMaturity int
	DailyIOF          Money
	FixedIOF          Money
	TotalIOFAmount    Money
	EffectiveIOFRate  Percentage
}

// NewIOFCalculation computes IOF over the net amount paid, blending a daily accrual
// capped at 365 days with a fixed component. The daily component is computed in full
// precision before rounding so the per-day product does not accumulate rounding error.
func NewIOFCalculation(netAmountPaid Money, daysUntilMaturity int, entityType entity.IOFEntityType) (IOFCalculation, error) {
	days := daysUntilMaturity
	if days > maxIOFDays {
		days = maxIOFDays
	}

	rates, ok := iofRates[entityType]
	if !ok {
		return IOFCalculation{}, fmt.Errorf("unknown IOF entity type %q", entityType)
	}

	dailyAmount := netAmountPaid.Amount().
		Mul(rates.daily.ToDecimal()).
		Mul(decimal.NewFromInt(int64(days)))
	dailyIOF := NewMoneyWithCurrency(dailyAmount, netAmountPaid.Currency()).RoundToTaxStandard()

	fixedIOF := netAmountPaid.MultiplyPercentage(rates.fixed).RoundToTaxStandard()

	total, err := dailyIOF.Add(fixedIOF)
	if err != nil {
		return IOFCalculation{}, err
	}
	total = total.RoundToTaxStandard()

	effectiveRate, err := NewPercentageFromDecimal(total.Amount().Div(netAmountPaid.Amount()))
	if err != nil {
		return IOFCalculation{}, err
	}

	return IOFCalculation{
		TaxBase:           netAmountPaid,
		EntityType:        entityType,
		DailyRate:         rates.daily,
		FixedRate:         rates.fixed,
		DaysUntilMaturity: days,
		DailyIOF:          dailyIOF,
		FixedIOF:          fixedIOF,
		TotalIOFAmount:    total,
		EffectiveIOFRate:  effectiveRate,
	}, nil
}
