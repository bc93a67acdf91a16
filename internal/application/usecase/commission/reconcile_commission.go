package commission

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fletepay/backend/internal/application/adapter"
	"github.com/fletepay/backend/internal/domain/entity"
	domainerror "github.com/fletepay/backend/internal/domain/error"
)

// ReconcileCommissionOutcome classifies the terminal result of processing a
// commission_payment.created event.
type ReconcileCommissionOutcome string

const (
	// OutcomeReconciled means the commission status and the driver balance
	// were recomputed.
	OutcomeReconciled ReconcileCommissionOutcome = "reconciled"
	// OutcomeSkippedReconciliation means the event was not applicable.
	OutcomeSkippedReconciliation ReconcileCommissionOutcome = "skipped"
)

// Skip reasons reported when reconciliation is not applicable.
const (
	SkipSettlementNotFound = "commission_payment_not_found"
	SkipCommissionNotFound = "commission_not_found"
)

// ReconcileCommissionInput represents the input for reconciliation.
type ReconcileCommissionInput struct {
	CommissionPaymentID uuid.UUID
}

// ReconcileCommissionOutput represents the result of reconciliation.
type ReconcileCommissionOutput struct {
	Outcome    ReconcileCommissionOutcome
	SkipReason string
	Status     entity.CommissionStatus
	Settled    decimal.Decimal
	Balance    decimal.Decimal
}

// ReconcileCommissionUseCase recomputes a commission's settlement state and
// the owning driver's outstanding balance when a settlement record lands.
// Both recomputations are full rescans, not incremental patches: the status
// is a pure function of the settled sum, and the balance equals the sum over
// the driver's unsettled commissions. Each recomputation runs in its own
// database transaction; the composition of the two is not atomic, which is
// safe because the balance rescan reads the status already committed.
type ReconcileCommissionUseCase struct {
	commissionPaymentRepo adapter.CommissionPaymentRepository
	commissionRepo        adapter.CommissionRepository
	balanceRepo           adapter.DriverBalanceRepository
}

// NewReconcileCommissionUseCase creates a new ReconcileCommissionUseCase instance.
func NewReconcileCommissionUseCase(
	commissionPaymentRepo adapter.CommissionPaymentRepository,
	commissionRepo adapter.CommissionRepository,
	balanceRepo adapter.DriverBalanceRepository,
) *ReconcileCommissionUseCase {
	return &ReconcileCommissionUseCase{
		commissionPaymentRepo: commissionPaymentRepo,
		commissionRepo:        commissionRepo,
		balanceRepo:           balanceRepo,
	}
}

// Execute processes a commission_payment.created event.
func (uc *ReconcileCommissionUseCase) Execute(ctx context.Context, input ReconcileCommissionInput) (*ReconcileCommissionOutput, error) {
	settlement, err := uc.commissionPaymentRepo.FindByID(ctx, input.CommissionPaymentID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCommissionPaymentNotFound) {
			return skippedReconciliation(SkipSettlementNotFound), nil
		}
		return nil, fmt.Errorf("failed to load commission payment: %w", err)
	}

	recomputation, err := uc.commissionRepo.RecomputeStatus(ctx, settlement.CommissionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCommissionNotFound) {
			return skippedReconciliation(SkipCommissionNotFound), nil
		}
		return nil, fmt.Errorf("failed to recompute commission status: %w", err)
	}

	balance, err := uc.balanceRepo.RecomputeForDriver(ctx, recomputation.Commission.DriverID)
	if err != nil {
		return nil, fmt.Errorf("failed to recompute driver balance: %w", err)
	}

	return &ReconcileCommissionOutput{
		Outcome: OutcomeReconciled,
		Status:  recomputation.Status,
		Settled: recomputation.Settled,
		Balance: balance.Balance,
	}, nil
}

func skippedReconciliation(reason string) *ReconcileCommissionOutput {
	return &ReconcileCommissionOutput{Outcome: OutcomeSkippedReconciliation, SkipReason: reason}
}
