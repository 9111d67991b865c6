// Package error defines domain-specific errors for the Factoring Simulator application.
package error

import "errors"

// Investment projection domain errors.
var (
	// ErrInvestmentAmountOutOfRange is returned when the investment amount is outside
	// the accepted limits.
	ErrInvestmentAmountOutOfRange = errors.New("investment amount out of range")

	// ErrInvestmentTermOutOfRange is returned when the investment term is outside the
	// accepted limits.
	ErrInvestmentTermOutOfRange = errors.New("investment term out of range")

	// ErrInvalidMonthlyRate is returned when the supplied monthly rate is not a valid
	// percentage.
	ErrInvalidMonthlyRate = errors.New("invalid monthly rate")
)

// InvestmentErrorCode defines error codes for investment errors.
// Format: INV-XXYYYY where XX is category and YYYY is specific error.
type InvestmentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvestmentAmountOutOfRange InvestmentErrorCode = "INV-010001"
	ErrCodeInvestmentTermOutOfRange   InvestmentErrorCode = "INV-010002"
	ErrCodeInvalidMonthlyRate         InvestmentErrorCode = "INV-010003"
)

// InvestmentError represents an investment error with code and message.
type InvestmentError struct {
	Code    InvestmentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InvestmentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InvestmentError) Unwrap() error {
	return e.Err
}

// NewInvestmentError creates a new InvestmentError with the given code and message.
func NewInvestmentError(code InvestmentErrorCode, message string, err error) *InvestmentError {
	return &InvestmentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
