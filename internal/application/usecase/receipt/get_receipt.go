package receipt

import (
	"context"

	"github.com/google/uuid"

	"github.com/fletepay/backend/internal/application/adapter"
	"github.com/fletepay/backend/internal/domain/entity"
)

// GetReceiptInput represents the input for fetching a payment's receipt.
type GetReceiptInput struct {
	PaymentID uuid.UUID
}

// GetReceiptOutput represents the fetched receipt.
type GetReceiptOutput struct {
	Receipt *entity.Receipt
}

// GetReceiptUseCase fetches the receipt issued for a payment, if any.
type GetReceiptUseCase struct {
	receiptRepo adapter.ReceiptRepository
}

// NewGetReceiptUseCase creates a new GetReceiptUseCase instance.
func NewGetReceiptUseCase(receiptRepo adapter.ReceiptRepository) *GetReceiptUseCase {
	return &GetReceiptUseCase{
		receiptRepo: receiptRepo,
	}
}

// Execute fetches the receipt.
func (uc *GetReceiptUseCase) Execute(ctx context.Context, input GetReceiptInput) (*GetReceiptOutput, error) {
	r, err := uc.receiptRepo.FindByPaymentID(ctx, input.PaymentID)
	if err != nil {
		return nil, err
	}
	return &GetReceiptOutput{Receipt: r}, nil
}
