// Package valueobject contains domain value objects for the Factoring Simulator system.
package valueobject

import (
	"github.com/shopspring/decimal"

	domainerror "github.com/factoring-simulator/backend/internal/domain/error"
)

// maxPercentageFraction is the sanity upper bound for a percentage: 10.0 = 1000%.
var maxPercentageFraction = decimal.NewFromInt(10)

// Percentage is an immutable decimal-exact percentage, stored as a fraction
// (0.05 means 5%). Every operation returns a new instance.
type Percentage struct {
	value decimal.Decimal
}

// NewPercentageFromDecimal creates a Percentage from a raw fraction (0.05 = 5%).
func NewPercentageFromDecimal(value decimal.Decimal) (Percentage, error) {
	p := Percentage{value: value}
	if err := p.validate(); err != nil {
		return Percentage{}, err
	}
	return p, nil
}

// NewPercentageFromPercent creates a Percentage from percent notation (5 = 5%).
func NewPercentageFromPercent(value decimal.Decimal) (Percentage, error) {
	return NewPercentageFromDecimal(value.Div(decimal.NewFromInt(100)))
}

func (p Percentage) validate() error {
	if p.value.IsNegative() {
		return domainerror.ErrNegativePercentage
	}
	if p.value.GreaterThan(maxPercentageFraction) {
		return domainerror.ErrPercentageOutOfRange
	}
	return nil
}

// mustPercent builds a Percentage from percent notation for in-package rate tables.
// The argument is a compile-time constant, so construction cannot fail.
func mustPercent(percent string) Percentage {
	p, err := NewPercentageFromPercent(decimal.RequireFromString(percent))
	if err != nil {
		panic(err)
	}
	return p
}

// ToDecimal returns the raw fraction (0.05 for 5%).
func (p Percentage) ToDecimal() decimal.Decimal {
	return p.value
}

// ToPercentageValue returns the percent notation value (5 for 5%), for display.
func (p Percentage) ToPercentageValue() decimal.Decimal {
	return p.value.Mul(decimal.NewFromInt(100))
}

// Add returns a new Percentage holding the sum.
func (p Percentage) Add(other Percentage) (Percentage, error) {
	return NewPercentageFromDecimal(p.value.Add(other.value))
}

// Subtract returns a new Percentage holding the difference.
func (p Percentage) Subtract(other Percentage) (Percentage, error) {
	return NewPercentageFromDecimal(p.value.Sub(other.value))
}

// Multiply returns a new Percentage scaled by a plain numeric factor.
func (p Percentage) Multiply(factor decimal.Decimal) (Percentage, error) {
	return NewPercentageFromDecimal(p.value.Mul(factor))
}

// GreaterThan reports whether p is greater than other.
func (p Percentage) GreaterThan(other Percentage) bool {
	return p.value.GreaterThan(other.value)
}

// Equal reports whether p and other hold the same fraction.
func (p Percentage) Equal(other Percentage) bool {
	return p.value.Equal(other.value)
}

// IsZero reports whether the percentage is zero.
func (p Percentage) IsZero() bool {
	return p.value.IsZero()
}

// String formats the percentage in percent notation, e.g. "4.75%".
func (p Percentage) String() string {
	return p.ToPercentageValue().StringFixed(2) + "%"
}
