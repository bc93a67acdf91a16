package error

import "errors"

// Commission domain errors.
var (
	// ErrCommissionNotFound is returned when a commission is not found in the system.
	ErrCommissionNotFound = errors.New("commission not found")

	// ErrCommissionPaymentNotFound is returned when a settlement record is not found.
	ErrCommissionPaymentNotFound = errors.New("commission payment not found")

	// ErrCommissionAlreadySettled is returned when recording a settlement against a fully paid commission.
	ErrCommissionAlreadySettled = errors.New("commission already settled")

	// ErrInvalidSettlementAmount is returned when a settlement amount is not a positive number.
	ErrInvalidSettlementAmount = errors.New("invalid settlement amount")

	// ErrInvalidCommissionStatus is returned when a status filter value is unknown.
	ErrInvalidCommissionStatus = errors.New("invalid commission status")

	// ErrBalanceNotFound is returned when a driver has no account balance record.
	ErrBalanceNotFound = errors.New("driver account balance not found")
)

// CommissionErrorCode defines error codes for commission errors.
// Format: COM-XXYYYY where XX is category and YYYY is specific error.
type CommissionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCommissionNotFound        CommissionErrorCode = "COM-010001"
	ErrCodeCommissionAlreadySettled  CommissionErrorCode = "COM-010002"
	ErrCodeInvalidSettlementAmount   CommissionErrorCode = "COM-010003"
	ErrCodeInvalidCommissionStatus   CommissionErrorCode = "COM-010004"
	ErrCodeBalanceNotFound           CommissionErrorCode = "COM-010005"
	ErrCodeCommissionPaymentNotFound CommissionErrorCode = "COM-010006"
)

// CommissionError represents a commission error with code and message.
type CommissionError struct {
	Code    CommissionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CommissionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CommissionError) Unwrap() error {
	return e.Err
}

// NewCommissionError creates a new CommissionError with the given code and message.
func NewCommissionError(code CommissionErrorCode, message string, err error) *CommissionError {
	return &CommissionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
