// Package investment contains investment-projection use cases.
package investment

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	domainerror "github.com/factoring-simulator/backend/internal/domain/error"
)

// Investment limits accepted by the projection.
var (
	// MinInvestmentAmount is the minimum accepted investment, in BRL.
	MinInvestmentAmount = decimal.NewFromInt(10000)
	// MaxInvestmentAmount is the maximum accepted investment, in BRL.
	MaxInvestmentAmount = decimal.NewFromInt(1000000)
)

const (
	// MinInvestmentMonths is the minimum accepted investment term.
	MinInvestmentMonths = 1
	// MaxInvestmentMonths is the maximum accepted investment term.
	MaxInvestmentMonths = 60
)

// StandardMonthlyRate is the default monthly return rate (3.8%) used when the caller
// supplies none.
var StandardMonthlyRate = decimal.NewFromFloat(0.038)

// ProjectInvestmentInput represents the input for an investment projection.
type ProjectInvestmentInput struct {
	Amount       decimal.Decimal
	Months       int
	AutoReinvest bool
	MonthlyRate  *decimal.Decimal // fraction, e.g. 0.038; nil uses the standard rate
}

// MonthlyProjection is the state of the investment at the end of one month.
type MonthlyProjection struct {
	Month          int
	Capital        float64
	Interest       float64
	CumulativeGain float64
}

// ProjectInvestmentOutput represents the projected investment figures.
type ProjectInvestmentOutput struct {
	InitialAmount     float64
	FinalAmount       float64
	TotalGain         float64
	MonthlyAverage    float64
	ROIPercentage     float64
	EffectiveRate     float64 // monthly fraction applied
	MonthlyProjection []MonthlyProjection
}

// ProjectInvestmentUseCase projects the growth of an invested amount.
type ProjectInvestmentUseCase struct{}

// NewProjectInvestmentUseCase creates a new ProjectInvestmentUseCase instance.
func NewProjectInvestmentUseCase() *ProjectInvestmentUseCase {
	return &ProjectInvestmentUseCase{}
}

// Execute projects the investment over the term. With auto-reinvest the projection
// compounds monthly (A = P(1+r)^n); without it, interest accrues simple on the
// principal (A = P + P·r·n). A per-month series is produced either way.
func (uc *ProjectInvestmentUseCase) Execute(_ context.Context, input ProjectInvestmentInput) (*ProjectInvestmentOutput, error) {
	if err := validateProjectionInput(input); err != nil {
		return nil, err
	}

	rate := StandardMonthlyRate
	if input.MonthlyRate != nil {
		rate = *input.MonthlyRate
	}

	principal := input.Amount
	projection := make([]MonthlyProjection, 0, input.Months)
	var finalAmount decimal.Decimal

	if input.AutoReinvest {
		currentCapital := principal
		cumulative := decimal.Zero
		for month := 1; month <= input.Months; month++ {
			interest := currentCapital.Mul(rate)
			currentCapital = currentCapital.Add(interest)
			cumulative = currentCapital.Sub(principal)

			projection = append(projection, MonthlyProjection{
				Month:          month,
				Capital:        currentCapital.Round(2).InexactFloat64(),
				Interest:       interest.Round(2).InexactFloat64(),
				CumulativeGain: cumulative.Round(2).InexactFloat64(),
			})
		}
		finalAmount = currentCapital
	} else {
		monthlyInterest := principal.Mul(rate)
		for month := 1; month <= input.Months; month++ {
			projection = append(projection, MonthlyProjection{
				Month:          month,
				Capital:        principal.InexactFloat64(),
				Interest:       monthlyInterest.Round(2).InexactFloat64(),
				CumulativeGain: monthlyInterest.Mul(decimal.NewFromInt(int64(month))).Round(2).InexactFloat64(),
			})
		}
		finalAmount = principal.Add(monthlyInterest.Mul(decimal.NewFromInt(int64(input.Months))))
	}

	term := decimal.NewFromInt(int64(input.Months))
	totalGain := finalAmount.Sub(principal)
	monthlyAverage := totalGain.Div(term)
	roiPercentage := totalGain.Div(principal).Mul(decimal.NewFromInt(100))

	return &ProjectInvestmentOutput{
		InitialAmount:     principal.Round(2).InexactFloat64(),
		FinalAmount:       finalAmount.Round(2).InexactFloat64(),
		TotalGain:         totalGain.Round(2).InexactFloat64(),
		MonthlyAverage:    monthlyAverage.Round(2).InexactFloat64(),
		ROIPercentage:     roiPercentage.Round(2).InexactFloat64(),
		EffectiveRate:     rate.InexactFloat64(),
		MonthlyProjection: projection,
	}, nil
}

func validateProjectionInput(input ProjectInvestmentInput) error {
	if input.Amount.LessThan(MinInvestmentAmount) || input.Amount.GreaterThan(MaxInvestmentAmount) {
		return domainerror.NewInvestmentError(
			domainerror.ErrCodeInvestmentAmountOutOfRange,
			fmt.Sprintf("amount must be between %s and %s", MinInvestmentAmount, MaxInvestmentAmount),
			domainerror.ErrInvestmentAmountOutOfRange,
		)
	}
	if input.Months < MinInvestmentMonths || input.Months > MaxInvestmentMonths {
		return domainerror.NewInvestmentError(
			domainerror.ErrCodeInvestmentTermOutOfRange,
			fmt.Sprintf("term must be between %d and %d months", MinInvestmentMonths, MaxInvestmentMonths),
			domainerror.ErrInvestmentTermOutOfRange,
		)
	}
	if input.MonthlyRate != nil && (input.MonthlyRate.IsNegative() || input.MonthlyRate.GreaterThan(decimal.NewFromInt(1))) {
		return domainerror.NewInvestmentError(
			domainerror.ErrCodeInvalidMonthlyRate,
			"monthly rate must be a fraction between 0 and 1",
			domainerror.ErrInvalidMonthlyRate,
		)
	}
	return nil
}
