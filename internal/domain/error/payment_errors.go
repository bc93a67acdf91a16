// Package error defines domain-specific errors for the FletePay billing backend.
package error

import "errors"

// Payment domain errors.
var (
	// ErrPaymentNotFound is returned when a payment is not found in the system.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrInvalidPaymentAmount is returned when the payment amount is not a positive number.
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")

	// ErrInvalidReceiptTypeCode is returned when the declared receipt type code is unknown.
	ErrInvalidReceiptTypeCode = errors.New("invalid receipt type code")

	// ErrInvalidCurrency is returned when the currency is not a 3-letter code.
	ErrInvalidCurrency = errors.New("invalid currency code")

	// ErrPaymentMethodNotFound is returned when the referenced payment method does not exist.
	ErrPaymentMethodNotFound = errors.New("payment method not found")
)

// PaymentErrorCode defines error codes for payment errors.
// Format: PAY-XXYYYY where XX is category and YYYY is specific error.
type PaymentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodePaymentNotFound        PaymentErrorCode = "PAY-010001"
	ErrCodeInvalidPaymentAmount   PaymentErrorCode = "PAY-010002"
	ErrCodeInvalidReceiptTypeCode PaymentErrorCode = "PAY-010003"
	ErrCodeInvalidCurrency        PaymentErrorCode = "PAY-010004"
	ErrCodePaymentMethodNotFound  PaymentErrorCode = "PAY-010005"
)

// PaymentError represents a payment error with code and message.
type PaymentError struct {
	Code    PaymentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PaymentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PaymentError) Unwrap() error {
	return e.Err
}

// NewPaymentError creates a new PaymentError with the given code and message.
func NewPaymentError(code PaymentErrorCode, message string, err error) *PaymentError {
	return &PaymentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
