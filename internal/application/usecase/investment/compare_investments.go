// Package investment contains investment-projection use cases.
package investment

import (
	"context"

	"github.com/shopspring/decimal"
)

// Benchmark annual rates used by the comparison table.
var (
	// poupancaAnnualRate is the traditional Brazilian savings account, simple interest.
	poupancaAnnualRate = decimal.NewFromFloat(0.06)
	// cdiAnnualRate is the interbank deposit certificate benchmark, compounded yearly.
	cdiAnnualRate = decimal.NewFromFloat(0.13)
)

// CompareInvestmentsInput represents the input for a benchmark comparison.
type CompareInvestmentsInput struct {
	Amount decimal.Decimal
	Months int
}

// InvestmentComparison is one row of the comparison table.
type InvestmentComparison struct {
	Name          string
	InitialAmount float64
	FinalAmount   float64
	TotalGain     float64
	AnnualRate    float64 // percent notation
}

// CompareInvestmentsOutput represents the benchmark comparison table.
type CompareInvestmentsOutput struct {
	Comparisons []InvestmentComparison
}

// CompareInvestmentsUseCase compares the platform return against market benchmarks.
type CompareInvestmentsUseCase struct{}

// NewCompareInvestmentsUseCase creates a new CompareInvestmentsUseCase instance.
func NewCompareInvestmentsUseCase() *CompareInvestmentsUseCase {
	return &CompareInvestmentsUseCase{}
}

// Execute computes the same principal and term under poupança (simple annual), CDI
// (compound annual) and the platform monthly compound rate.
func (uc *CompareInvestmentsUseCase) Execute(_ context.Context, input CompareInvestmentsInput) (*CompareInvestmentsOutput, error) {
	if err := validateProjectionInput(ProjectInvestmentInput{Amount: input.Amount, Months: input.Months}); err != nil {
		return nil, err
	}

	principal := input.Amount
	years := decimal.NewFromInt(int64(input.Months)).Div(decimal.NewFromInt(12))
	one := decimal.NewFromInt(1)

	// Poupança: simple interest over the period.
	poupancaGain := principal.Mul(poupancaAnnualRate).Mul(years)
	poupancaFinal := principal.Add(poupancaGain)

	// CDI: annual compounding over a possibly fractional number of years.
	cdiFactor, err := cdiAnnualRate.Add(one).PowWithPrecision(years, 16)
	if err != nil {
		return nil, err
	}
	cdiFinal := principal.Mul(cdiFactor)
	cdiGain := cdiFinal.Sub(principal)

	// Platform: monthly compounding at the standard rate.
	platformFactor, err := StandardMonthlyRate.Add(one).PowInt32(int32(input.Months))
	if err != nil {
		return nil, err
	}
	platformFinal := principal.Mul(platformFactor)
	platformGain := platformFinal.Sub(principal)

	platformAnnual, err := MonthlyToAnnualRate(StandardMonthlyRate)
	if err != nil {
		return nil, err
	}

	return &CompareInvestmentsOutput{
		Comparisons: []InvestmentComparison{
			{
				Name:          "Poupança",
				InitialAmount: principal.InexactFloat64(),
				FinalAmount:   poupancaFinal.Round(2).InexactFloat64(),
				TotalGain:     poupancaGain.Round(2).InexactFloat64(),
				AnnualRate:    poupancaAnnualRate.Mul(decimal.NewFromInt(100)).InexactFloat64(),
			},
			{
				Name:          "CDI",
				InitialAmount: principal.InexactFloat64(),
				FinalAmount:   cdiFinal.Round(2).InexactFloat64(),
				TotalGain:     cdiGain.Round(2).InexactFloat64(),
				AnnualRate:    cdiAnnualRate.Mul(decimal.NewFromInt(100)).InexactFloat64(),
			},
			{
				Name:          "Factoring",
				InitialAmount: principal.InexactFloat64(),
				FinalAmount:   platformFinal.Round(2).InexactFloat64(),
				TotalGain:     platformGain.Round(2).InexactFloat64(),
				AnnualRate:    platformAnnual.InexactFloat64(),
			},
		},
	}, nil
}
