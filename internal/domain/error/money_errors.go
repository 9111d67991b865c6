// Package error defines domain-specific errors for the Factoring Simulator application.
package error

import "errors"

// Money and Percentage domain errors.
var (
	// ErrCurrencyMismatch is returned when arithmetic is attempted between Money values
	// of different currencies. The system operates in a single currency, so this
	// indicates a programming error rather than bad user input.
	ErrCurrencyMismatch = errors.New("cannot operate on money values of different currencies")

	// ErrNegativePercentage is returned when a Percentage is constructed from a negative value.
	ErrNegativePercentage = errors.New("percentage cannot be negative")

	// ErrPercentageOutOfRange is returned when a Percentage exceeds the 1000% upper bound.
	ErrPercentageOutOfRange = errors.New("percentage value exceeds the supported range")

	// ErrDivisionByZero is returned when a Money value is divided by zero.
	ErrDivisionByZero = errors.New("cannot divide money by zero")
)
