package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommissionStatus represents the settlement state of a commission.
type CommissionStatus string

const (
	CommissionStatusGenerated CommissionStatus = "GENERATED"
	CommissionStatusPartial   CommissionStatus = "PARTIAL"
	CommissionStatusPaid      CommissionStatus = "PAID"
)

// CommissionPercentage is the platform's share of a directly-collected
// payment. A business rule, not configuration.
var CommissionPercentage = decimal.NewFromFloat(15.0)

// Commission is the platform's earned share of a directly-collected payment,
// owed by the driver who collected it. At most one commission exists per
// payment; Status is driven exclusively by the sum of its settlements.
type Commission struct {
	ID           uuid.UUID
	PaymentID    uuid.UUID
	AssignmentID uuid.UUID
	DriverID     uuid.UUID
	BaseAmount   decimal.Decimal
	Percentage   decimal.Decimal
	Amount       decimal.Decimal
	Status       CommissionStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewCommission creates a commission charge for a payment. The amount is
// baseAmount x percentage / 100, rounded half-up on the cent boundary.
func NewCommission(paymentID, assignmentID, driverID uuid.UUID, baseAmount decimal.Decimal) *Commission {
	now := time.Now().UTC()

	return &Commission{
		ID:           uuid.New(),
		PaymentID:    paymentID,
		AssignmentID: assignmentID,
		DriverID:     driverID,
		BaseAmount:   baseAmount,
		Percentage:   CommissionPercentage,
		Amount:       CommissionAmount(baseAmount),
		Status:       CommissionStatusGenerated,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// CommissionAmount computes the commission charge for a base amount,
// rounded to 2 decimal places (half-up).
func CommissionAmount(baseAmount decimal.Decimal) decimal.Decimal {
	return baseAmount.Mul(CommissionPercentage).Div(decimal.NewFromInt(100)).Round(2)
}

// StatusForSettled resolves the status implied by the total settled so far.
// Pure function of the sum vs the commission amount: the full settled sum is
// recomputed on every settlement, never patched incrementally.
func (c *Commission) StatusForSettled(settled decimal.Decimal) CommissionStatus {
	switch {
	case settled.GreaterThanOrEqual(c.Amount):
		return CommissionStatusPaid
	case settled.GreaterThan(decimal.Zero):
		return CommissionStatusPartial
	default:
		return CommissionStatusGenerated
	}
}

// IsSettled reports whether the commission is fully paid.
func (c *Commission) IsSettled() bool {
	return c.Status == CommissionStatusPaid
}

// CommissionPayment is an immutable partial or full settlement record against
// one commission. Append-only.
type CommissionPayment struct {
	ID           uuid.UUID
	CommissionID uuid.UUID
	Amount       decimal.Decimal
	PaidAt       time.Time
	CreatedAt    time.Time
}

// NewCommissionPayment creates a settlement record against a commission.
func NewCommissionPayment(commissionID uuid.UUID, amount decimal.Decimal, paidAt time.Time) *CommissionPayment {
	if paidAt.IsZero() {
		paidAt = time.Now().UTC()
	}

	return &CommissionPayment{
		ID:           uuid.New(),
		CommissionID: commissionID,
		Amount:       amount,
		PaidAt:       paidAt,
		CreatedAt:    time.Now().UTC(),
	}
}
