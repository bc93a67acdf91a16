// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency assigned to payments that do not declare one.
const DefaultCurrency = "PEN"

// InconsistencyInvoiceRequiresAppMethod marks a payment that requested an
// invoice-type receipt against a payment method that is not collected in-app.
// The marker is durable and queryable for downstream review; the receipt is
// never issued for such a payment.
const InconsistencyInvoiceRequiresAppMethod = "INVOICE_REQUIRES_APP_METHOD"

// Payment represents money received for a completed transport service.
// A payment is immutable after creation except for the Inconsistency marker.
type Payment struct {
	ID                 uuid.UUID
	PaymentMethodID    *uuid.UUID
	AssignmentID       *uuid.UUID
	TotalAmount        decimal.Decimal
	IssueReceipt       bool
	ReceiptTypeCode    string // Normalized to upper case; empty means RECEIPT.
	IssuerFiscalID     string
	ReceivingCompanyID *uuid.UUID
	ReceivingUserID    *uuid.UUID
	Currency           string
	Inconsistency      string
	CreatedAt          time.Time
}

// NewPayment creates a new Payment entity, normalizing the receipt type code
// and defaulting the currency.
func NewPayment(
	paymentMethodID *uuid.UUID,
	assignmentID *uuid.UUID,
	totalAmount decimal.Decimal,
	issueReceipt bool,
	receiptTypeCode string,
	issuerFiscalID string,
	receivingCompanyID *uuid.UUID,
	receivingUserID *uuid.UUID,
	currency string,
) *Payment {
	if currency == "" {
		currency = DefaultCurrency
	}

	return &Payment{
		ID:                 uuid.New(),
		PaymentMethodID:    paymentMethodID,
		AssignmentID:       assignmentID,
		TotalAmount:        totalAmount,
		IssueReceipt:       issueReceipt,
		ReceiptTypeCode:    strings.ToUpper(strings.TrimSpace(receiptTypeCode)),
		IssuerFiscalID:     issuerFiscalID,
		ReceivingCompanyID: receivingCompanyID,
		ReceivingUserID:    receivingUserID,
		Currency:           currency,
		CreatedAt:          time.Now().UTC(),
	}
}

// DeclaredReceiptType resolves the receipt type requested by the payment,
// defaulting to RECEIPT when no type was declared.
func (p *Payment) DeclaredReceiptType() ReceiptType {
	code := strings.ToUpper(strings.TrimSpace(p.ReceiptTypeCode))
	if code == string(ReceiptTypeInvoice) {
		return ReceiptTypeInvoice
	}
	return ReceiptTypeReceipt
}

// HasInconsistency reports whether the payment carries an inconsistency marker.
func (p *Payment) HasInconsistency() bool {
	return p.Inconsistency != ""
}
