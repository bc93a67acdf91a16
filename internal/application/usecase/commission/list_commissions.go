package commission

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fletepay/backend/internal/application/adapter"
	"github.com/fletepay/backend/internal/domain/entity"
	domainerror "github.com/fletepay/backend/internal/domain/error"
)

// ListCommissionsInput represents the filter for listing commissions.
type ListCommissionsInput struct {
	DriverID *uuid.UUID
	Status   *entity.CommissionStatus
}

// ListCommissionsOutput represents the result of listing commissions.
type ListCommissionsOutput struct {
	Commissions []*entity.Commission
}

// ListCommissionsUseCase lists commissions, optionally filtered by driver
// and settlement status.
type ListCommissionsUseCase struct {
	commissionRepo adapter.CommissionRepository
}

// NewListCommissionsUseCase creates a new ListCommissionsUseCase instance.
func NewListCommissionsUseCase(commissionRepo adapter.CommissionRepository) *ListCommissionsUseCase {
	return &ListCommissionsUseCase{
		commissionRepo: commissionRepo,
	}
}

// Execute lists commissions matching the filter.
func (uc *ListCommissionsUseCase) Execute(ctx context.Context, input ListCommissionsInput) (*ListCommissionsOutput, error) {
	if input.Status != nil && !isValidStatus(*input.Status) {
		return nil, domainerror.NewCommissionError(
			domainerror.ErrCodeInvalidCommissionStatus,
			"status must be GENERATED, PARTIAL or PAID",
			domainerror.ErrInvalidCommissionStatus,
		)
	}

	commissions, err := uc.commissionRepo.FindByFilter(ctx, adapter.CommissionFilter{
		DriverID: input.DriverID,
		Status:   input.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list commissions: %w", err)
	}

	return &ListCommissionsOutput{Commissions: commissions}, nil
}

// isValidStatus validates the commission status.
func isValidStatus(status entity.CommissionStatus) bool {
	return status == entity.CommissionStatusGenerated ||
		status == entity.CommissionStatusPartial ||
		status == entity.CommissionStatusPaid
}
