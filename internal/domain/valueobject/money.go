// Package valueobject contains domain value objects for the Factoring Simulator system.
package valueobject

import (
	"github.com/shopspring/decimal"

	domainerror "github.com/factoring-simulator/backend/internal/domain/error"
)

// Currency identifies the currency a Money value is denominated in.
type Currency string

// CurrencyBRL is the Brazilian real, the only currency the simulator operates in.
const CurrencyBRL Currency = "BRL"

// Money is an immutable decimal-exact currency amount. Amounts are stored with at
// most 2 decimal places: construction rounds half-up when more precision is supplied.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney creates a Money value in BRL.
func NewMoney(amount decimal.Decimal) Money {
	return NewMoneyWithCurrency(amount, CurrencyBRL)
}

// NewMoneyWithCurrency creates a Money value in the given currency.
func NewMoneyWithCurrency(amount decimal.Decimal, currency Currency) Money {
	if amount.Exponent() < -2 {
		amount = amount.Round(2) // half-up for the non-negative amounts handled here
	}
	return Money{amount: amount, currency: currency}
}

// Amount returns the underlying decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code.
func (m Money) Currency() Currency {
	return m.currency
}

// Add returns the sum of two Money values of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return Money{}, err
	}
	return NewMoneyWithCurrency(m.amount.Add(other.amount), m.currency), nil
}

// Subtract returns the difference of two Money values of the same currency.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return Money{}, err
	}
	return NewMoneyWithCurrency(m.amount.Sub(other.amount), m.currency), nil
}

// Multiply returns the amount scaled by a plain numeric factor.
func (m Money) Multiply(factor decimal.Decimal) Money {
	return NewMoneyWithCurrency(m.amount.Mul(factor), m.currency)
}

// MultiplyPercentage returns the amount scaled by a Percentage, using its fraction form.
func (m Money) MultiplyPercentage(p Percentage) Money {
	return m.Multiply(p.ToDecimal())
}

// Divide returns the amount divided by a plain numeric divisor.
func (m Money) Divide(divisor decimal.Decimal) (Money, error) {
	if divisor.IsZero() {
		return Money{}, domainerror.ErrDivisionByZero
	}
	return NewMoneyWithCurrency(m.amount.Div(divisor), m.currency), nil
}

// RoundToTaxStandard rounds half-up to 2 decimal places, the Brazilian fiscal
// rounding convention applied after every tax and fee computation step.
func (m Money) RoundToTaxStandard() Money {
	return Money{amount: m.amount.Round(2), currency: m.currency}
}

// GreaterThan reports whether m is greater than other.
func (m Money) GreaterThan(other Money) (bool, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.GreaterThan(other.amount), nil
}

// LessThan reports whether m is less than other.
func (m Money) LessThan(other Money) (bool, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.LessThan(other.amount), nil
}

// GreaterThanOrEqual reports whether m is greater than or equal to other.
func (m Money) GreaterThanOrEqual(other Money) (bool, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.GreaterThanOrEqual(other.amount), nil
}

// LessThanOrEqual reports whether m is less than or equal to other.
func (m Money) LessThanOrEqual(other Money) (bool, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.LessThanOrEqual(other.amount), nil
}

// Equal reports whether m and other hold the same amount in the same currency.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) ensureSameCurrency(other Money) error {
	if m.currency != other.currency {
		return domainerror.ErrCurrencyMismatch
	}
	return nil
}

// String formats the value as "BRL 10.00".
func (m Money) String() string {
	return string(m.currency) + " " + m.amount.StringFixed(2)
}
