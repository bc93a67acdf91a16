package payment

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/fletepay/backend/internal/application/adapter"
	"github.com/fletepay/backend/internal/domain/entity"
)

// GetPaymentInput represents the input for fetching a payment.
type GetPaymentInput struct {
	PaymentID uuid.UUID
}

// GetPaymentOutput represents the fetched payment.
type GetPaymentOutput struct {
	Payment *entity.Payment
}

// GetPaymentUseCase fetches a payment, including any inconsistency marker
// written by the receipt issuer.
type GetPaymentUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewGetPaymentUseCase creates a new GetPaymentUseCase instance.
func NewGetPaymentUseCase(paymentRepo adapter.PaymentRepository) *GetPaymentUseCase {
	return &GetPaymentUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute fetches the payment.
func (uc *GetPaymentUseCase) Execute(ctx context.Context, input GetPaymentInput) (*GetPaymentOutput, error) {
	p, err := uc.paymentRepo.FindByID(ctx, input.PaymentID)
	if err != nil {
		return nil, err
	}
	return &GetPaymentOutput{Payment: p}, nil
}

// normalizeReceiptTypeCode trims and upper-cases a declared receipt type code.
func normalizeReceiptTypeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
