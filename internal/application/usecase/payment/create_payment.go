// Package payment contains payment-related use cases.
package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fletepay/backend/internal/application/adapter"
	"github.com/fletepay/backend/internal/domain/entity"
	domainerror "github.com/fletepay/backend/internal/domain/error"
)

// CreatePaymentInput represents the input for payment creation.
type CreatePaymentInput struct {
	PaymentMethodID    *uuid.UUID
	AssignmentID       *uuid.UUID
	TotalAmount        decimal.Decimal
	IssueReceipt       bool
	ReceiptTypeCode    string // Optional; RECEIPT or INVOICE, any case.
	IssuerFiscalID     string // Optional; defaults to the platform issuer.
	ReceivingCompanyID *uuid.UUID
	ReceivingUserID    *uuid.UUID
	Currency           string // Optional; defaults to PEN.
}

// CreatePaymentOutput represents the output of payment creation.
type CreatePaymentOutput struct {
	Payment *entity.Payment
}

// CreatePaymentUseCase stores a payment and enqueues the payment.created
// trigger that drives receipt issuance and commission generation.
type CreatePaymentUseCase struct {
	paymentRepo  adapter.PaymentRepository
	triggerQueue adapter.TriggerQueueRepository
}

// NewCreatePaymentUseCase creates a new CreatePaymentUseCase instance.
func NewCreatePaymentUseCase(
	paymentRepo adapter.PaymentRepository,
	triggerQueue adapter.TriggerQueueRepository,
) *CreatePaymentUseCase {
	return &CreatePaymentUseCase{
		paymentRepo:  paymentRepo,
		triggerQueue: triggerQueue,
	}
}

// Execute performs the payment creation.
func (uc *CreatePaymentUseCase) Execute(ctx context.Context, input CreatePaymentInput) (*CreatePaymentOutput, error) {
	if !input.TotalAmount.GreaterThan(decimal.Zero) {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidPaymentAmount,
			"total amount must be greater than zero",
			domainerror.ErrInvalidPaymentAmount,
		)
	}

	if !isValidReceiptTypeCode(input.ReceiptTypeCode) {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidReceiptTypeCode,
			"receipt type code must be RECEIPT or INVOICE",
			domainerror.ErrInvalidReceiptTypeCode,
		)
	}

	if input.Currency != "" && len(input.Currency) != 3 {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidCurrency,
			"currency must be a 3-letter code",
			domainerror.ErrInvalidCurrency,
		)
	}

	p := entity.NewPayment(
		input.PaymentMethodID,
		input.AssignmentID,
		input.TotalAmount,
		input.IssueReceipt,
		input.ReceiptTypeCode,
		input.IssuerFiscalID,
		input.ReceivingCompanyID,
		input.ReceivingUserID,
		input.Currency,
	)

	if err := uc.paymentRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	event := entity.NewTriggerEvent(entity.TriggerPaymentCreated, p.ID)
	if err := uc.triggerQueue.Enqueue(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to enqueue payment trigger: %w", err)
	}

	return &CreatePaymentOutput{Payment: p}, nil
}

// isValidReceiptTypeCode accepts an empty code (defaults to RECEIPT) or one
// of the two known types in any case.
func isValidReceiptTypeCode(code string) bool {
	switch normalizeReceiptTypeCode(code) {
	case "", string(entity.ReceiptTypeReceipt), string(entity.ReceiptTypeInvoice):
		return true
	}
	return false
}
