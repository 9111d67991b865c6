// Package valueobject contains domain value objects for the Factoring Simulator system.
package valueobject

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/factoring-simulator/backend/internal/domain/error"
)

func TestNewMoney(t *testing.T) {
	t.Run("keeps amounts with two decimal places untouched", func(t *testing.T) {
		m := NewMoney(decimal.RequireFromString("100.55"))
		if !m.Amount().Equal(decimal.RequireFromString("100.55")) {
			t.Errorf("expected 100.55, got %s", m.Amount())
		}
		if m.Currency() != CurrencyBRL {
			t.Errorf("expected BRL, got %s", m.Currency())
		}
	})

	t.Run("rounds half-up when more precision is supplied", func(t *testing.T) {
		m := NewMoney(decimal.RequireFromString("100.555"))
		if !m.Amount().Equal(decimal.RequireFromString("100.56")) {
			t.Errorf("expected 100.56, got %s", m.Amount())
		}

		m = NewMoney(decimal.RequireFromString("100.554"))
		if !m.Amount().Equal(decimal.RequireFromString("100.55")) {
			t.Errorf("expected 100.55, got %s", m.Amount())
		}
	})
}

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoney(decimal.RequireFromString("100.00"))
	b := NewMoney(decimal.RequireFromString("40.50"))

	t.Run("Add", func(t *testing.T) {
		sum, err := a.Add(b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sum.Amount().Equal(decimal.RequireFromString("140.50")) {
			t.Errorf("expected 140.50, got %s", sum.Amount())
		}
	})

	t.Run("Subtract", func(t *testing.T) {
		diff, err := a.Subtract(b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !diff.Amount().Equal(decimal.RequireFromString("59.50")) {
			t.Errorf("expected 59.50, got %s", diff.Amount())
		}
	})

	t.Run("MultiplyPercentage uses the fraction form", func(t *testing.T) {
		rate, err := NewPercentageFromPercent(decimal.RequireFromString("3"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		product := a.MultiplyPercentage(rate)
		if !product.Amount().Equal(decimal.RequireFromString("3")) {
			t.Errorf("expected 3, got %s", product.Amount())
		}
	})

	t.Run("Divide rejects zero", func(t *testing.T) {
		_, err := a.Divide(decimal.Zero)
		if !errors.Is(err, domainerror.ErrDivisionByZero) {
			t.Errorf("expected ErrDivisionByZero, got %v", err)
		}
	})

	t.Run("mismatched currencies are rejected", func(t *testing.T) {
		usd := NewMoneyWithCurrency(decimal.NewFromInt(10), "USD")
		_, err := a.Add(usd)
		if !errors.Is(err, domainerror.ErrCurrencyMismatch) {
			t.Errorf("expected ErrCurrencyMismatch, got %v", err)
		}
	})
}

func TestMoneyComparisons(t *testing.T) {
	a := NewMoney(decimal.NewFromInt(100))
	b := NewMoney(decimal.NewFromInt(50))

	gt, err := a.GreaterThan(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gt {
		t.Error("expected 100 > 50")
	}

	if !a.IsPositive() {
		t.Error("expected 100 to be positive")
	}
	if NewMoney(decimal.NewFromInt(-5)).IsPositive() {
		t.Error("expected -5 to not be positive")
	}

	if !a.Equal(NewMoney(decimal.RequireFromString("100.00"))) {
		t.Error("expected 100 to equal 100.00")
	}
}

func TestMoneyRoundToTaxStandard(t *testing.T) {
	m := Money{amount: decimal.RequireFromString("566.525"), currency: CurrencyBRL}
	rounded := m.RoundToTaxStandard()
	if !rounded.Amount().Equal(decimal.RequireFromString("566.53")) {
		t.Errorf("expected 566.53, got %s", rounded.Amount())
	}
}
