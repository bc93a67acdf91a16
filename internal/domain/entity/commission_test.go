package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestCommissionAmount(t *testing.T) {
	cases := []struct {
		name string
		base string
		want string
	}{
		{"whole amount", "100.00", "15"},
		{"rounds half up", "33.33", "5"},
		{"cent precision kept", "10.10", "1.52"},
		{"rounds up on midpoint", "0.10", "0.02"},
		{"zero base", "0", "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			base := decimal.RequireFromString(tc.base)
			got := CommissionAmount(base)
			want := decimal.RequireFromString(tc.want)
			if !got.Equal(want) {
				t.Errorf("CommissionAmount(%s) = %s, want %s", tc.base, got, want)
			}
		})
	}
}

func TestNewCommission(t *testing.T) {
	paymentID := uuid.New()
	assignmentID := uuid.New()
	driverID := uuid.New()

	c := NewCommission(paymentID, assignmentID, driverID, decimal.RequireFromString("100.00"))

	if c.Status != CommissionStatusGenerated {
		t.Errorf("expected status GENERATED, got %s", c.Status)
	}
	if !c.Percentage.Equal(CommissionPercentage) {
		t.Errorf("expected percentage %s, got %s", CommissionPercentage, c.Percentage)
	}
	if !c.Amount.Equal(decimal.RequireFromString("15")) {
		t.Errorf("expected amount 15, got %s", c.Amount)
	}
	if c.PaymentID != paymentID || c.AssignmentID != assignmentID || c.DriverID != driverID {
		t.Error("expected reference IDs to be carried through")
	}
}

func TestStatusForSettled(t *testing.T) {
	c := NewCommission(uuid.New(), uuid.New(), uuid.New(), decimal.RequireFromString("100.00"))
	// Amount is 15.00.

	cases := []struct {
		name    string
		settled string
		want    CommissionStatus
	}{
		{"nothing settled", "0", CommissionStatusGenerated},
		{"partial settlement", "10.00", CommissionStatusPartial},
		{"one cent short", "14.99", CommissionStatusPartial},
		{"exact settlement", "15.00", CommissionStatusPaid},
		{"overpayment", "20.00", CommissionStatusPaid},
		{"negative sum treated as unsettled", "-1.00", CommissionStatusGenerated},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.StatusForSettled(decimal.RequireFromString(tc.settled))
			if got != tc.want {
				t.Errorf("StatusForSettled(%s) = %s, want %s", tc.settled, got, tc.want)
			}
		})
	}
}

func TestIsSettled(t *testing.T) {
	c := NewCommission(uuid.New(), uuid.New(), uuid.New(), decimal.RequireFromString("50.00"))

	if c.IsSettled() {
		t.Error("expected a freshly generated commission not to be settled")
	}

	c.Status = CommissionStatusPaid
	if !c.IsSettled() {
		t.Error("expected a PAID commission to be settled")
	}
}

func TestNewCommissionPayment(t *testing.T) {
	commissionID := uuid.New()

	t.Run("zero paidAt defaults to now", func(t *testing.T) {
		p := NewCommissionPayment(commissionID, decimal.RequireFromString("5.00"), time.Time{})
		if p.PaidAt.IsZero() {
			t.Error("expected PaidAt to be defaulted")
		}
	})

	t.Run("carries commission reference and amount", func(t *testing.T) {
		p := NewCommissionPayment(commissionID, decimal.RequireFromString("5.00"), time.Time{})
		if p.CommissionID != commissionID {
			t.Error("expected commission ID to be carried through")
		}
		if !p.Amount.Equal(decimal.RequireFromString("5.00")) {
			t.Errorf("expected amount 5.00, got %s", p.Amount)
		}
	})
}
