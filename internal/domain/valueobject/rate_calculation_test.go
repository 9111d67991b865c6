// Package valueobject contains domain value objects for the Factoring Simulator system.
package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/factoring-simulator/backend/internal/domain/entity"
)

func TestNewRateCalculation(t *testing.T) {
	faceValue := NewMoney(decimal.NewFromInt(100000))

	t.Run("composes the final monthly rate", func(t *testing.T) {
		// services 4.3 + client B 0.3 + debtor A 0.4 = 5.0, medium volume -5% => 4.75
		calc, err := NewRateCalculation(
			faceValue,
			decimal.NewFromInt(2),
			entity.SectorServices,
			entity.RiskProfileB,
			entity.CreditRatingA,
			entity.ModalityWithRecourse,
			entity.VolumeMedium,
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !calc.BaseMonthlyRate.ToPercentageValue().Equal(decimal.RequireFromString("4.3")) {
			t.Errorf("base rate: expected 4.3, got %s", calc.BaseMonthlyRate.ToPercentageValue())
		}
		if !calc.RiskAdjustment.ToPercentageValue().Equal(decimal.RequireFromString("0.7")) {
			t.Errorf("risk adjustment: expected 0.7, got %s", calc.RiskAdjustment.ToPercentageValue())
		}
		if !calc.FinalMonthlyRate.ToPercentageValue().Equal(decimal.RequireFromString("4.75")) {
			t.Errorf("final rate: expected 4.75, got %s", calc.FinalMonthlyRate.ToPercentageValue())
		}
		if !calc.EffectiveAnnualRate.ToPercentageValue().Round(2).Equal(decimal.RequireFromString("74.52")) {
			t.Errorf("annual rate: expected 74.52, got %s", calc.EffectiveAnnualRate.ToPercentageValue().Round(2))
		}
	})

	t.Run("short terms use simple interest for the desagio", func(t *testing.T) {
		calc, err := NewRateCalculation(
			faceValue,
			decimal.NewFromInt(2),
			entity.SectorServices,
			entity.RiskProfileB,
			entity.CreditRatingA,
			entity.ModalityWithRecourse,
			entity.VolumeMedium,
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// 4.75% x 2 months
		if !calc.DesagioPercentage.ToPercentageValue().Equal(decimal.RequireFromString("9.5")) {
			t.Errorf("desagio: expected 9.5, got %s", calc.DesagioPercentage.ToPercentageValue())
		}
		if !calc.DesagioAmount.Amount().Equal(decimal.NewFromInt(9500)) {
			t.Errorf("desagio amount: expected 9500, got %s", calc.DesagioAmount.Amount())
		}
	})

	t.Run("the three month term is the last simple interest term", func(t *testing.T) {
		calc, err := NewRateCalculation(
			faceValue,
			decimal.NewFromInt(3),
			entity.SectorServices,
			entity.RiskProfileB,
			entity.CreditRatingA,
			entity.ModalityWithRecourse,
			entity.VolumeMedium,
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !calc.DesagioPercentage.ToPercentageValue().Equal(decimal.RequireFromString("14.25")) {
			t.Errorf("desagio: expected 14.25, got %s", calc.DesagioPercentage.ToPercentageValue())
		}
	})

	t.Run("a fractional term just above three months switches to compound", func(t *testing.T) {
		calc, err := NewRateCalculation(
			faceValue,
			decimal.RequireFromString("3.0001"),
			entity.SectorServices,
			entity.RiskProfileB,
			entity.CreditRatingA,
			entity.ModalityWithRecourse,
			entity.VolumeMedium,
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// 1 - 1/(1.0475)^3.0001 = 12.996667% (6dp), not simple interest's 14.25
		got := calc.DesagioPercentage.ToPercentageValue().Round(6)
		if !got.Equal(decimal.RequireFromString("12.996667")) {
			t.Errorf("desagio: expected 12.996667, got %s", got)
		}
		if !calc.DesagioAmount.Amount().Equal(decimal.RequireFromString("12996.67")) {
			t.Errorf("desagio amount: expected 12996.67, got %s", calc.DesagioAmount.Amount())
		}
	})

	t.Run("longer terms use the compound present value formula", func(t *testing.T) {
		calc, err := NewRateCalculation(
			faceValue,
			decimal.NewFromInt(4),
			entity.SectorServices,
			entity.RiskProfileB,
			entity.CreditRatingA,
			entity.ModalityWithRecourse,
			entity.VolumeMedium,
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// 1 - 1/(1.0475)^4 = 16.94154021% (8dp)
		got := calc.DesagioPercentage.ToPercentageValue().Round(8)
		if !got.Equal(decimal.RequireFromString("16.94154021")) {
			t.Errorf("desagio: expected 16.94154021, got %s", got)
		}
		if !calc.DesagioAmount.Amount().Equal(decimal.RequireFromString("16941.54")) {
			t.Errorf("desagio amount: expected 16941.54, got %s", calc.DesagioAmount.Amount())
		}
	})

	t.Run("maturity factoring subtracts its adjustment", func(t *testing.T) {
		calc, err := NewRateCalculation(
			faceValue,
			decimal.NewFromInt(1),
			entity.SectorServices,
			entity.RiskProfileA,
			entity.CreditRatingAAA,
			entity.ModalityMaturity,
			entity.VolumeSmall,
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 4.3 + 0.0 - 2.5 = 1.8
		if !calc.FinalMonthlyRate.ToPercentageValue().Equal(decimal.RequireFromString("1.8")) {
			t.Errorf("final rate: expected 1.8, got %s", calc.FinalMonthlyRate.ToPercentageValue())
		}
	})

	t.Run("large volume earns the ten percent discount", func(t *testing.T) {
		calc, err := NewRateCalculation(
			NewMoney(decimal.NewFromInt(600000)),
			decimal.NewFromInt(1),
			entity.SectorRetail,
			entity.RiskProfileA,
			entity.CreditRatingAAA,
			entity.ModalityWithRecourse,
			entity.VolumeLarge,
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 4.0 x 0.90 = 3.6
		if !calc.FinalMonthlyRate.ToPercentageValue().Equal(decimal.RequireFromString("3.6")) {
			t.Errorf("final rate: expected 3.6, got %s", calc.FinalMonthlyRate.ToPercentageValue())
		}
	})

	t.Run("unknown enum values are rejected", func(t *testing.T) {
		_, err := NewRateCalculation(
			faceValue,
			decimal.NewFromInt(1),
			entity.EconomicSector("fishing"),
			entity.RiskProfileA,
			entity.CreditRatingAAA,
			entity.ModalityWithRecourse,
			entity.VolumeSmall,
		)
		if err == nil {
			t.Fatal("expected error for unknown sector")
		}

		_, err = NewRateCalculation(
			faceValue,
			decimal.NewFromInt(1),
			entity.SectorRetail,
			entity.RiskProfile("F"),
			entity.CreditRatingAAA,
			entity.ModalityWithRecourse,
			entity.VolumeSmall,
		)
		if err == nil {
			t.Fatal("expected error for unknown risk profile")
		}
	})
}
