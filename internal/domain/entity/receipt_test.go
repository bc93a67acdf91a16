package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestSeriesFor(t *testing.T) {
	if got := SeriesFor(ReceiptTypeInvoice); got != SeriesInvoice {
		t.Errorf("SeriesFor(INVOICE) = %s, want %s", got, SeriesInvoice)
	}
	if got := SeriesFor(ReceiptTypeReceipt); got != SeriesReceipt {
		t.Errorf("SeriesFor(RECEIPT) = %s, want %s", got, SeriesReceipt)
	}
}

func TestNewReceipt(t *testing.T) {
	companyID := uuid.New()
	userID := uuid.New()

	newPayment := func() *Payment {
		return NewPayment(nil, nil, decimal.RequireFromString("120.50"), true, "", "10450001001", &companyID, &userID, "PEN")
	}

	t.Run("invoice carries only the receiving company", func(t *testing.T) {
		p := newPayment()
		r := NewReceipt(p, ReceiptTypeInvoice, 7, "20600000001")

		if r.Series != SeriesInvoice {
			t.Errorf("expected series %s, got %s", SeriesInvoice, r.Series)
		}
		if r.ReceivingCompanyID == nil || *r.ReceivingCompanyID != companyID {
			t.Error("expected receiving company to be set on an invoice")
		}
		if r.ReceivingUserID != nil {
			t.Error("expected receiving user to be empty on an invoice")
		}
	})

	t.Run("receipt carries only the receiving user", func(t *testing.T) {
		p := newPayment()
		r := NewReceipt(p, ReceiptTypeReceipt, 3, "20600000001")

		if r.Series != SeriesReceipt {
			t.Errorf("expected series %s, got %s", SeriesReceipt, r.Series)
		}
		if r.ReceivingUserID == nil || *r.ReceivingUserID != userID {
			t.Error("expected receiving user to be set on a receipt")
		}
		if r.ReceivingCompanyID != nil {
			t.Error("expected receiving company to be empty on a receipt")
		}
	})

	t.Run("copies total, currency and number", func(t *testing.T) {
		p := newPayment()
		r := NewReceipt(p, ReceiptTypeReceipt, 42, "20600000001")

		if !r.Total.Equal(p.TotalAmount) {
			t.Errorf("expected total %s, got %s", p.TotalAmount, r.Total)
		}
		if r.Currency != "PEN" {
			t.Errorf("expected currency PEN, got %s", r.Currency)
		}
		if r.Number != 42 {
			t.Errorf("expected number 42, got %d", r.Number)
		}
		if r.IssuerFiscalID != "20600000001" {
			t.Errorf("unexpected issuer fiscal ID %s", r.IssuerFiscalID)
		}
	})
}

func TestDeclaredReceiptType(t *testing.T) {
	cases := []struct {
		name string
		code string
		want ReceiptType
	}{
		{"empty defaults to receipt", "", ReceiptTypeReceipt},
		{"explicit receipt", "RECEIPT", ReceiptTypeReceipt},
		{"explicit invoice", "INVOICE", ReceiptTypeInvoice},
		{"lower case invoice", "invoice", ReceiptTypeInvoice},
		{"padded invoice", "  INVOICE ", ReceiptTypeInvoice},
		{"unknown code defaults to receipt", "FACTURA", ReceiptTypeReceipt},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &Payment{ReceiptTypeCode: tc.code}
			if got := p.DeclaredReceiptType(); got != tc.want {
				t.Errorf("DeclaredReceiptType(%q) = %s, want %s", tc.code, got, tc.want)
			}
		})
	}
}

func TestNewPaymentDefaults(t *testing.T) {
	p := NewPayment(nil, nil, decimal.RequireFromString("10.00"), false, "invoice", "", nil, nil, "")

	if p.Currency != DefaultCurrency {
		t.Errorf("expected default currency %s, got %s", DefaultCurrency, p.Currency)
	}
	if p.ReceiptTypeCode != "INVOICE" {
		t.Errorf("expected normalized receipt type code INVOICE, got %s", p.ReceiptTypeCode)
	}
	if p.HasInconsistency() {
		t.Error("expected a new payment to carry no inconsistency marker")
	}
}
