package commission

import (
	"context"

	"github.com/google/uuid"

	"github.com/fletepay/backend/internal/application/adapter"
	"github.com/fletepay/backend/internal/domain/entity"
)

// GetCommissionInput represents the input for fetching a commission.
type GetCommissionInput struct {
	CommissionID uuid.UUID
}

// GetCommissionOutput represents a commission with its settlement records.
type GetCommissionOutput struct {
	Commission  *entity.Commission
	Settlements []*entity.CommissionPayment
}

// GetCommissionUseCase fetches one commission with its settlements.
type GetCommissionUseCase struct {
	commissionRepo        adapter.CommissionRepository
	commissionPaymentRepo adapter.CommissionPaymentRepository
}

// NewGetCommissionUseCase creates a new GetCommissionUseCase instance.
func NewGetCommissionUseCase(
	commissionRepo adapter.CommissionRepository,
	commissionPaymentRepo adapter.CommissionPaymentRepository,
) *GetCommissionUseCase {
	return &GetCommissionUseCase{
		commissionRepo:        commissionRepo,
		commissionPaymentRepo: commissionPaymentRepo,
	}
}

// Execute fetches the commission.
func (uc *GetCommissionUseCase) Execute(ctx context.Context, input GetCommissionInput) (*GetCommissionOutput, error) {
	commission, err := uc.commissionRepo.FindByID(ctx, input.CommissionID)
	if err != nil {
		return nil, err
	}

	settlements, err := uc.commissionPaymentRepo.ListByCommission(ctx, commission.ID)
	if err != nil {
		return nil, err
	}

	return &GetCommissionOutput{
		Commission:  commission,
		Settlements: settlements,
	}, nil
}
