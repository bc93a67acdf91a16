// Package balance contains driver account balance use cases.
package balance

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fletepay/backend/internal/application/adapter"
	domainerror "github.com/fletepay/backend/internal/domain/error"
)

// GetBalanceInput represents the input for fetching a driver's balance.
type GetBalanceInput struct {
	DriverID uuid.UUID
}

// GetBalanceOutput represents a driver's estado de cuenta.
type GetBalanceOutput struct {
	DriverID  uuid.UUID
	Balance   decimal.Decimal
	UpdatedAt *time.Time
}

// GetBalanceUseCase fetches the running total a driver owes in unsettled
// commissions. A driver with no balance record owes zero.
type GetBalanceUseCase struct {
	balanceRepo adapter.DriverBalanceRepository
}

// NewGetBalanceUseCase creates a new GetBalanceUseCase instance.
func NewGetBalanceUseCase(balanceRepo adapter.DriverBalanceRepository) *GetBalanceUseCase {
	return &GetBalanceUseCase{
		balanceRepo: balanceRepo,
	}
}

// Execute fetches the balance.
func (uc *GetBalanceUseCase) Execute(ctx context.Context, input GetBalanceInput) (*GetBalanceOutput, error) {
	record, err := uc.balanceRepo.FindByDriver(ctx, input.DriverID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBalanceNotFound) {
			return &GetBalanceOutput{
				DriverID: input.DriverID,
				Balance:  decimal.Zero,
			}, nil
		}
		return nil, err
	}

	return &GetBalanceOutput{
		DriverID:  record.DriverID,
		Balance:   record.Balance,
		UpdatedAt: &record.UpdatedAt,
	}, nil
}
