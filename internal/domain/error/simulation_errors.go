// Package error defines domain-specific errors for the Factoring Simulator application.
package error

import "errors"

// Simulation domain errors.
var (
	// ErrNonPositiveFaceValue is returned when the duplicata face value is zero or negative.
	ErrNonPositiveFaceValue = errors.New("face value must be greater than zero")

	// ErrMissingDueDate is returned when the due date is not provided.
	ErrMissingDueDate = errors.New("due date is required")

	// ErrInvalidDateFormat is returned when a date field cannot be parsed as ISO-8601.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrDueDateNotInFuture is returned when the due date is today or in the past.
	ErrDueDateNotInFuture = errors.New("due date must be after today")

	// ErrDueDateBeforeIssueDate is returned when the due date does not follow the issue date.
	ErrDueDateBeforeIssueDate = errors.New("due date must be after the issue date")

	// ErrInvalidTaxRegime is returned when a tax regime other than Lucro Real is requested.
	// Factoring companies must use Lucro Real per Lei 9.718/98 art. 14.
	ErrInvalidTaxRegime = errors.New("tax regime must be lucro real")

	// ErrNonViableOperation is returned when the simulation produces a zero or negative
	// net amount.
	ErrNonViableOperation = errors.New("simulation parameters produce a non-viable operation")

	// ErrSimulationNotFound is returned when a stored simulation is not found.
	ErrSimulationNotFound = errors.New("simulation not found")

	// ErrSimulationFailed wraps unexpected failures during the simulation pipeline.
	ErrSimulationFailed = errors.New("simulation failed")

	// ErrRateLimited is returned when a client exceeds the simulation rate limit.
	ErrRateLimited = errors.New("too many requests")
)

// SimulationErrorCode defines error codes for simulation errors.
// Format: SIM-XXYYYY where XX is category and YYYY is specific error.
type SimulationErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNonPositiveFaceValue SimulationErrorCode = "SIM-010001"
	ErrCodeMissingDueDate       SimulationErrorCode = "SIM-010002"
	ErrCodeInvalidDateFormat    SimulationErrorCode = "SIM-010003"
	ErrCodeInvalidTaxRegime     SimulationErrorCode = "SIM-010004"
	ErrCodeMissingFields        SimulationErrorCode = "SIM-010005"

	// Business rule errors (02XXXX)
	ErrCodeDueDateNotInFuture     SimulationErrorCode = "SIM-020001"
	ErrCodeDueDateBeforeIssueDate SimulationErrorCode = "SIM-020002"
	ErrCodeNonViableOperation     SimulationErrorCode = "SIM-020003"

	// Lookup errors (03XXXX)
	ErrCodeSimulationNotFound SimulationErrorCode = "SIM-030001"

	// Infrastructure errors (04XXXX)
	ErrCodeRateLimited      SimulationErrorCode = "SIM-040001"
	ErrCodeSimulationFailed SimulationErrorCode = "SIM-040002"
)

// SimulationError represents a simulation error with code and message.
type SimulationError struct {
	Code    SimulationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SimulationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SimulationError) Unwrap() error {
	return e.Err
}

// NewSimulationError creates a new SimulationError with the given code and message.
func NewSimulationError(code SimulationErrorCode, message string, err error) *SimulationError {
	return &SimulationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
