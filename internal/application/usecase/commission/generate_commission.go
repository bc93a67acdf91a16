// Package commission contains commission generation and settlement use cases.
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

// GenerateCommissionOutcome classifies the terminal result of processing a
// payment.created event.
type GenerateCommissionOutcome string

const (
	// OutcomeGenerated means exactly one commission was inserted.
	OutcomeGenerated GenerateCommissionOutcome = "generated"
	// OutcomeSkipped means the event was not applicable; nothing was written.
	OutcomeSkipped GenerateCommissionOutcome = "skipped"
)

// Skip reasons reported when commission generation is not applicable. A
// broken reference chain suppresses generation rather than raising an error.
const (
	SkipPaymentNotFound    = "payment_not_found"
	SkipNoPaymentMethod    = "no_payment_method_reference"
	SkipNoAssignment       = "no_assignment_reference"
	SkipMethodNotDirect    = "payment_method_not_direct"
	SkipMethodNotFound     = "payment_method_not_found"
	SkipAssignmentNotFound = "assignment_not_found"
	SkipLinkNotFound       = "driver_vehicle_link_not_found"
	SkipDriverUnresolved   = "driver_unresolved"
	SkipAlreadyGenerated   = "commission_already_generated"
)

// GenerateCommissionInput represents the input for commission generation.
type GenerateCommissionInput struct {
	PaymentID uuid.UUID
}

// GenerateCommissionOutput represents the result of commission generation.
type GenerateCommissionOutput struct {
	Outcome    GenerateCommissionOutcome
	SkipReason string
	Commission *entity.Commission
}

// GenerateCommissionUseCase decides whether a commission charge must be
// generated against the driver assigned to a newly created payment. Only
// directly-collected payments generate a commission; in-app payments are
// absorbed by the platform.
type GenerateCommissionUseCase struct {
	paymentRepo       adapter.PaymentRepository
	paymentMethodRepo adapter.PaymentMethodRepository
	assignmentRepo    adapter.AssignmentRepository
	linkRepo          adapter.DriverVehicleLinkRepository
	commissionRepo    adapter.CommissionRepository
}

// NewGenerateCommissionUseCase creates a new GenerateCommissionUseCase instance.
func NewGenerateCommissionUseCase(
	paymentRepo adapter.PaymentRepository,
	paymentMethodRepo adapter.PaymentMethodRepository,
	assignmentRepo adapter.AssignmentRepository,
	linkRepo adapter.DriverVehicleLinkRepository,
	commissionRepo adapter.CommissionRepository,
) *GenerateCommissionUseCase {
	return &GenerateCommissionUseCase{
		paymentRepo:       paymentRepo,
		paymentMethodRepo: paymentMethodRepo,
		assignmentRepo:    assignmentRepo,
		linkRepo:          linkRepo,
		commissionRepo:    commissionRepo,
	}
}

// Execute processes a payment.created event.
func (uc *GenerateCommissionUseCase) Execute(ctx context.Context, input GenerateCommissionInput) (*GenerateCommissionOutput, error) {
	payment, err := uc.paymentRepo.FindByID(ctx, input.PaymentID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPaymentNotFound) {
			return skippedGeneration(SkipPaymentNotFound), nil
		}
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}

	if payment.PaymentMethodID == nil {
		return skippedGeneration(SkipNoPaymentMethod), nil
	}
	if payment.AssignmentID == nil {
		return skippedGeneration(SkipNoAssignment), nil
	}

	method, err := uc.paymentMethodRepo.FindByID(ctx, *payment.PaymentMethodID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPaymentMethodNotFound) {
			return skippedGeneration(SkipMethodNotFound), nil
		}
		return nil, fmt.Errorf("failed to load payment method: %w", err)
	}
	if !method.IsDirect() {
		return skippedGeneration(SkipMethodNotDirect), nil
	}

	// Resolve the driver through assignment -> driver-vehicle link. Any
	// missing link in the chain suppresses generation.
	assignment, err := uc.assignmentRepo.FindByID(ctx, *payment.AssignmentID)
	if err != nil {
		return skippedGeneration(SkipAssignmentNotFound), nil
	}
	if assignment.DriverVehicleLinkID == nil {
		return skippedGeneration(SkipLinkNotFound), nil
	}

	link, err := uc.linkRepo.FindByID(ctx, *assignment.DriverVehicleLinkID)
	if err != nil {
		return skippedGeneration(SkipLinkNotFound), nil
	}
	if link.DriverID == nil {
		return skippedGeneration(SkipDriverUnresolved), nil
	}

	baseAmount := payment.TotalAmount
	if baseAmount.IsNegative() {
		baseAmount = decimal.Zero
	}

	c := entity.NewCommission(payment.ID, assignment.ID, *link.DriverID, baseAmount)
	created, err := uc.commissionRepo.CreateIfAbsent(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to store commission: %w", err)
	}
	if !created {
		return skippedGeneration(SkipAlreadyGenerated), nil
	}

	return &GenerateCommissionOutput{Outcome: OutcomeGenerated, Commission: c}, nil
}

func skippedGeneration(reason string) *GenerateCommissionOutput {
	return &GenerateCommissionOutput{Outcome: OutcomeSkipped, SkipReason: reason}
}
