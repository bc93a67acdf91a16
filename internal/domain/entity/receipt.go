package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiptType represents the fiscal document type issued against a payment.
type ReceiptType string

const (
	// ReceiptTypeReceipt is an individual-type fiscal document (boleta).
	ReceiptTypeReceipt ReceiptType = "RECEIPT"
	// ReceiptTypeInvoice is a company-type fiscal document (factura).
	// Only payments collected through an in-app method may carry an invoice.
	ReceiptTypeInvoice ReceiptType = "INVOICE"
)

// Fiscal numbering series per receipt type.
const (
	SeriesInvoice = "F001"
	SeriesReceipt = "B001"
)

// Receipt is a fiscal document issued at most once per qualifying payment.
// Receipts are never mutated after issuance.
type Receipt struct {
	ID                 uuid.UUID
	PaymentID          uuid.UUID
	ReceiptType        ReceiptType
	Series             string
	Number             int64
	IssuerFiscalID     string
	ReceivingCompanyID *uuid.UUID
	ReceivingUserID    *uuid.UUID
	Total              decimal.Decimal
	Currency           string
	IssuedAt           time.Time
}

// SeriesFor returns the fiscal numbering series used for the given type.
func SeriesFor(receiptType ReceiptType) string {
	if receiptType == ReceiptTypeInvoice {
		return SeriesInvoice
	}
	return SeriesReceipt
}

// NewReceipt builds a receipt for a payment. The receiving-party fields are
// populated only for the matching type: company for invoices, individual for
// receipts. The sequence number comes from the per-series counter.
func NewReceipt(
	payment *Payment,
	receiptType ReceiptType,
	number int64,
	issuerFiscalID string,
) *Receipt {
	var companyID, userID *uuid.UUID
	if receiptType == ReceiptTypeInvoice {
		companyID = payment.ReceivingCompanyID
	} else {
		userID = payment.ReceivingUserID
	}

	currency := payment.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	return &Receipt{
		ID:                 uuid.New(),
		PaymentID:          payment.ID,
		ReceiptType:        receiptType,
		Series:             SeriesFor(receiptType),
		Number:             number,
		IssuerFiscalID:     issuerFiscalID,
		ReceivingCompanyID: companyID,
		ReceivingUserID:    userID,
		Total:              payment.TotalAmount,
		Currency:           currency,
		IssuedAt:           time.Now().UTC(),
	}
}
