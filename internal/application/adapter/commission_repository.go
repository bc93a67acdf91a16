package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fletepay/backend/internal/domain/entity"
)

// CommissionFilter defines filter options for listing commissions.
type CommissionFilter struct {
	DriverID *uuid.UUID
	Status   *entity.CommissionStatus
}

// StatusRecomputation is the result of atomically recomputing a commission's
// settlement state.
type StatusRecomputation struct {
	Commission *entity.Commission
	Settled    decimal.Decimal
	Status     entity.CommissionStatus
}

// CommissionRepository defines the interface for commission persistence operations.
type CommissionRepository interface {
	// CreateIfAbsent inserts the commission unless one already exists for the
	// same payment. Returns false when the insert was skipped.
	CreateIfAbsent(ctx context.Context, commission *entity.Commission) (bool, error)

	// FindByID retrieves a commission by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Commission, error)

	// FindByPaymentID retrieves the commission generated for a payment.
	FindByPaymentID(ctx context.Context, paymentID uuid.UUID) (*entity.Commission, error)

	// FindByFilter retrieves commissions matching the filter, newest first.
	FindByFilter(ctx context.Context, filter CommissionFilter) ([]*entity.Commission, error)

	// RecomputeStatus locks the commission row, sums all settlements
	// referencing it and writes the implied status unconditionally, all
	// within one transaction. Returns domainerror.ErrCommissionNotFound when
	// the commission does not exist.
	RecomputeStatus(ctx context.Context, commissionID uuid.UUID) (*StatusRecomputation, error)
}

// CommissionPaymentRepository defines the interface for settlement records.
// Settlements are append-only.
type CommissionPaymentRepository interface {
	// Create stores a new settlement record.
	Create(ctx context.Context, payment *entity.CommissionPayment) error

	// FindByID retrieves a settlement record by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CommissionPayment, error)

	// ListByCommission retrieves all settlements against a commission.
	ListByCommission(ctx context.Context, commissionID uuid.UUID) ([]*entity.CommissionPayment, error)
}

// DriverBalanceRepository defines the interface for driver account balances.
type DriverBalanceRepository interface {
	// RecomputeForDriver sums the amounts of the driver's unsettled
	// commissions and upserts the balance record, all within one
	// transaction. Returns the resulting balance.
	RecomputeForDriver(ctx context.Context, driverID uuid.UUID) (*entity.DriverAccountBalance, error)

	// FindByDriver retrieves the balance record for a driver. Returns
	// domainerror.ErrBalanceNotFound when none exists yet.
	FindByDriver(ctx context.Context, driverID uuid.UUID) (*entity.DriverAccountBalance, error)
}
