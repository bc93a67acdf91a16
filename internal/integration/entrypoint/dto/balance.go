package dto

import (
	"time"

	"github.com/fletepay/backend/internal/application/usecase/balance"
)

// DriverBalanceResponse represents a driver's outstanding commission balance.
// UpdatedAt is null for a driver who has never owed a commission.
type DriverBalanceResponse struct {
	DriverID  string     `json:"driver_id"`
	Balance   string     `json:"balance"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// ToDriverBalanceResponse converts a balance output to its DTO.
func ToDriverBalanceResponse(output *balance.GetBalanceOutput) DriverBalanceResponse {
	return DriverBalanceResponse{
		DriverID:  output.DriverID.String(),
		Balance:   output.Balance.String(),
		UpdatedAt: output.UpdatedAt,
	}
}
