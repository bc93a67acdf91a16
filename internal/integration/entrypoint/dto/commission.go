package dto

import (
	"time"

	"github.com/fletepay/backend/internal/domain/entity"
)

// RecordCommissionPaymentRequest represents the request body for recording a
// settlement against a commission.
type RecordCommissionPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required"`
	PaidAt *string `json:"paid_at,omitempty"`
}

// CommissionResponse represents a single commission in API responses.
type CommissionResponse struct {
	ID           string    `json:"id"`
	PaymentID    string    `json:"payment_id"`
	AssignmentID string    `json:"assignment_id"`
	DriverID     string    `json:"driver_id"`
	BaseAmount   string    `json:"base_amount"`
	Percentage   string    `json:"percentage"`
	Amount       string    `json:"amount"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CommissionPaymentResponse represents a settlement record in API responses.
type CommissionPaymentResponse struct {
	ID           string    `json:"id"`
	CommissionID string    `json:"commission_id"`
	Amount       string    `json:"amount"`
	PaidAt       time.Time `json:"paid_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// CommissionDetailResponse represents a commission with its settlements.
type CommissionDetailResponse struct {
	Commission  CommissionResponse          `json:"commission"`
	Settlements []CommissionPaymentResponse `json:"settlements"`
}

// CommissionListResponse represents the response for listing commissions.
type CommissionListResponse struct {
	Commissions []CommissionResponse `json:"commissions"`
}

// ToCommissionResponse converts a domain Commission entity to a CommissionResponse DTO.
func ToCommissionResponse(c *entity.Commission) CommissionResponse {
	return CommissionResponse{
		ID:           c.ID.String(),
		PaymentID:    c.PaymentID.String(),
		AssignmentID: c.AssignmentID.String(),
		DriverID:     c.DriverID.String(),
		BaseAmount:   c.BaseAmount.String(),
		Percentage:   c.Percentage.String(),
		Amount:       c.Amount.String(),
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// ToCommissionPaymentResponse converts a settlement entity to its DTO.
func ToCommissionPaymentResponse(p *entity.CommissionPayment) CommissionPaymentResponse {
	return CommissionPaymentResponse{
		ID:           p.ID.String(),
		CommissionID: p.CommissionID.String(),
		Amount:       p.Amount.String(),
		PaidAt:       p.PaidAt,
		CreatedAt:    p.CreatedAt,
	}
}

// ToCommissionDetailResponse converts a commission and its settlements to a detail DTO.
func ToCommissionDetailResponse(c *entity.Commission, settlements []*entity.CommissionPayment) CommissionDetailResponse {
	settlementResponses := make([]CommissionPaymentResponse, len(settlements))
	for i, s := range settlements {
		settlementResponses[i] = ToCommissionPaymentResponse(s)
	}
	return CommissionDetailResponse{
		Commission:  ToCommissionResponse(c),
		Settlements: settlementResponses,
	}
}

// ToCommissionListResponse converts commission entities to a list DTO.
func ToCommissionListResponse(commissions []*entity.Commission) CommissionListResponse {
	responses := make([]CommissionResponse, len(commissions))
	for i, c := range commissions {
		responses[i] = ToCommissionResponse(c)
	}
	return CommissionListResponse{Commissions: responses}
}
