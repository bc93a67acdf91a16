package payment

import (
	"context"
	"fmt"

	"github.com/fletepay/backend/internal/application/adapter"
	"github.com/fletepay/backend/internal/domain/entity"
)

// ListPaymentMethodsOutput represents the active payment method reference data.
type ListPaymentMethodsOutput struct {
	PaymentMethods []*entity.PaymentMethod
}

// ListPaymentMethodsUseCase lists active payment methods.
type ListPaymentMethodsUseCase struct {
	paymentMethodRepo adapter.PaymentMethodRepository
}

// NewListPaymentMethodsUseCase creates a new ListPaymentMethodsUseCase instance.
func NewListPaymentMethodsUseCase(paymentMethodRepo adapter.PaymentMethodRepository) *ListPaymentMethodsUseCase {
	return &ListPaymentMethodsUseCase{
		paymentMethodRepo: paymentMethodRepo,
	}
}

// Execute lists active payment methods.
func (uc *ListPaymentMethodsUseCase) Execute(ctx context.Context) (*ListPaymentMethodsOutput, error) {
	methods, err := uc.paymentMethodRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	return &ListPaymentMethodsOutput{PaymentMethods: methods}, nil
}
