// Package investment contains investment-projection use cases.
package investment

import "github.com/shopspring/decimal"

// MonthlyToAnnualRate converts a monthly fraction to the effective annual rate in
// percent notation: ((1 + r)^12 - 1) × 100, rounded to 2 decimal places.
func MonthlyToAnnualRate(monthlyRate decimal.Decimal) (decimal.Decimal, error) {
	one := decimal.NewFromInt(1)
	annualFactor, err := monthlyRate.Add(one).PowInt32(12)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return annualFactor.Sub(one).Mul(decimal.NewFromInt(100)).Round(2), nil
}

// AnnualToMonthlyRate converts an annual fraction to the effective monthly rate in
// percent notation: ((1 + r)^(1/12) - 1) × 100, rounded to 2 decimal places.
func AnnualToMonthlyRate(annualRate decimal.Decimal) (decimal.Decimal, error) {
	one := decimal.NewFromInt(1)
	twelfth := one.Div(decimal.NewFromInt(12))
	monthlyFactor, err := annualRate.Add(one).PowWithPrecision(twelfth, 16)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return monthlyFactor.Sub(one).Mul(decimal.NewFromInt(100)).Round(2), nil
}
