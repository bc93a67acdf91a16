package commission

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fletepay/backend/internal/application/adapter"
	"github.com/fletepay/backend/internal/domain/entity"
	domainerror "github.com/fletepay/backend/internal/domain/error"
)

// RecordCommissionPaymentInput represents the input for recording a settlement.
type RecordCommissionPaymentInput struct {
	CommissionID uuid.UUID
	Amount       decimal.Decimal
	PaidAt       time.Time // Optional; zero means now.
}

// RecordCommissionPaymentOutput represents the result of recording a settlement.
type RecordCommissionPaymentOutput struct {
	CommissionPayment *entity.CommissionPayment
}

// RecordCommissionPaymentUseCase appends a settlement record against a
// commission and enqueues the commission_payment.created trigger that drives
// reconciliation.
type RecordCommissionPaymentUseCase struct {
	commissionRepo        adapter.CommissionRepository
	commissionPaymentRepo adapter.CommissionPaymentRepository
	triggerQueue          adapter.TriggerQueueRepository
}

// NewRecordCommissionPaymentUseCase creates a new RecordCommissionPaymentUseCase instance.
func NewRecordCommissionPaymentUseCase(
	commissionRepo adapter.CommissionRepository,
	commissionPaymentRepo adapter.CommissionPaymentRepository,
	triggerQueue adapter.TriggerQueueRepository,
) *RecordCommissionPaymentUseCase {
	return &RecordCommissionPaymentUseCase{
		commissionRepo:        commissionRepo,
		commissionPaymentRepo: commissionPaymentRepo,
		triggerQueue:          triggerQueue,
	}
}

// Execute records the settlement.
func (uc *RecordCommissionPaymentUseCase) Execute(ctx context.Context, input RecordCommissionPaymentInput) (*RecordCommissionPaymentOutput, error) {
	if !input.Amount.GreaterThan(decimal.Zero) {
		return nil, domainerror.NewCommissionError(
			domainerror.ErrCodeInvalidSettlementAmount,
			"settlement amount must be greater than zero",
			domainerror.ErrInvalidSettlementAmount,
		)
	}

	commission, err := uc.commissionRepo.FindByID(ctx, input.CommissionID)
	if err != nil {
		return nil, err
	}
	if commission.IsSettled() {
		return nil, domainerror.NewCommissionError(
			domainerror.ErrCodeCommissionAlreadySettled,
			"commission is already fully settled",
			domainerror.ErrCommissionAlreadySettled,
		)
	}

	settlement := entity.NewCommissionPayment(commission.ID, input.Amount, input.PaidAt)
	if err := uc.commissionPaymentRepo.Create(ctx, settlement); err != nil {
		return nil, fmt.Errorf("failed to store commission payment: %w", err)
	}

	event := entity.NewTriggerEvent(entity.TriggerCommissionPaymentCreated, settlement.ID)
	if err := uc.triggerQueue.Enqueue(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to enqueue reconciliation trigger: %w", err)
	}

	return &RecordCommissionPaymentOutput{CommissionPayment: settlement}, nil
}
