package error

import "errors"

// Receipt domain errors.
var (
	// ErrReceiptNotFound is returned when no receipt has been issued for a payment.
	ErrReceiptNotFound = errors.New("receipt not found")

	// ErrReceiptAlreadyIssued is returned when a receipt already exists for the payment.
	ErrReceiptAlreadyIssued = errors.New("receipt already issued for payment")

	// ErrReceiptSequenceUnavailable is returned when the numbering sequence cannot be advanced.
	ErrReceiptSequenceUnavailable = errors.New("receipt sequence unavailable")
)

// ReceiptErrorCode defines error codes for receipt errors.
// Format: RCP-XXYYYY where XX is category and YYYY is specific error.
type ReceiptErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeReceiptNotFound      ReceiptErrorCode = "RCP-010001"
	ErrCodeReceiptAlreadyIssued ReceiptErrorCode = "RCP-010002"

	// Infrastructure errors (02XXXX)
	ErrCodeReceiptSequenceUnavailable ReceiptErrorCode = "RCP-020001"
)

// ReceiptError represents a receipt error with code and message.
type ReceiptError struct {
	Code    ReceiptErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReceiptError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReceiptError) Unwrap() error {
	return e.Err
}

// NewReceiptError creates a new ReceiptError with the given code and message.
func NewReceiptError(code ReceiptErrorCode, message string, err error) *ReceiptError {
	return &ReceiptError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
