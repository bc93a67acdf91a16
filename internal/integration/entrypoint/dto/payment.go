package dto

import (
	"time"

	"github.com/fletepay/backend/internal/domain/entity"
)

// CreatePaymentRequest represents the request body for payment creation.
type CreatePaymentRequest struct {
	PaymentMethodID    *string `json:"payment_method_id,omitempty"`
	AssignmentID       *string `json:"assignment_id,omitempty"`
	TotalAmount        float64 `json:"total_amount" binding:"required"`
	IssueReceipt       bool    `json:"issue_receipt"`
	ReceiptTypeCode    string  `json:"receipt_type_code,omitempty"`
	IssuerFiscalID     string  `json:"issuer_fiscal_id,omitempty"`
	ReceivingCompanyID *string `json:"receiving_company_id,omitempty"`
	ReceivingUserID    *string `json:"receiving_user_id,omitempty"`
	Currency           string  `json:"currency,omitempty" binding:"omitempty,len=3"`
}

// PaymentResponse represents a single payment in API responses.
type PaymentResponse struct {
	ID                 string    `json:"id"`
	PaymentMethodID    *string   `json:"payment_method_id,omitempty"`
	AssignmentID       *string   `json:"assignment_id,omitempty"`
	TotalAmount        string    `json:"total_amount"`
	IssueReceipt       bool      `json:"issue_receipt"`
	ReceiptTypeCode    string    `json:"receipt_type_code,omitempty"`
	IssuerFiscalID     string    `json:"issuer_fiscal_id,omitempty"`
	ReceivingCompanyID *string   `json:"receiving_company_id,omitempty"`
	ReceivingUserID    *string   `json:"receiving_user_id,omitempty"`
	Currency           string    `json:"currency"`
	Inconsistency      string    `json:"inconsistency,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// ReceiptResponse represents an issued fiscal document in API responses.
type ReceiptResponse struct {
	ID                 string    `json:"id"`
	PaymentID          string    `json:"payment_id"`
	ReceiptType        string    `json:"receipt_type"`
	Series             string    `json:"series"`
	Number             int64     `json:"number"`
	IssuerFiscalID     string    `json:"issuer_fiscal_id"`
	ReceivingCompanyID *string   `json:"receiving_company_id,omitempty"`
	ReceivingUserID    *string   `json:"receiving_user_id,omitempty"`
	Total              string    `json:"total"`
	Currency           string    `json:"currency"`
	IssuedAt           time.Time `json:"issued_at"`
}

// PaymentMethodResponse represents a payment method in API responses.
type PaymentMethodResponse struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// PaymentMethodListResponse represents the response for listing payment methods.
type PaymentMethodListResponse struct {
	PaymentMethods []PaymentMethodResponse `json:"payment_methods"`
}

// ToPaymentResponse converts a domain Payment entity to a PaymentResponse DTO.
func ToPaymentResponse(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID.String(),
		PaymentMethodID:    uuidPtrToString(p.PaymentMethodID),
		AssignmentID:       uuidPtrToString(p.AssignmentID),
		TotalAmount:        p.TotalAmount.String(),
		IssueReceipt:       p.IssueReceipt,
		ReceiptTypeCode:    p.ReceiptTypeCode,
		IssuerFiscalID:     p.IssuerFiscalID,
		ReceivingCompanyID: uuidPtrToString(p.ReceivingCompanyID),
		ReceivingUserID:    uuidPtrToString(p.ReceivingUserID),
		Currency:           p.Currency,
		Inconsistency:      p.Inconsistency,
		CreatedAt:          p.CreatedAt,
	}
}

// ToReceiptResponse converts a domain Receipt entity to a ReceiptResponse DTO.
func ToReceiptResponse(r *entity.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ID:                 r.ID.String(),
		PaymentID:          r.PaymentID.String(),
		ReceiptType:        string(r.ReceiptType),
		Series:             r.Series,
		Number:             r.Number,
		IssuerFiscalID:     r.IssuerFiscalID,
		ReceivingCompanyID: uuidPtrToString(r.ReceivingCompanyID),
		ReceivingUserID:    uuidPtrToString(r.ReceivingUserID),
		Total:              r.Total.String(),
		Currency:           r.Currency,
		IssuedAt:           r.IssuedAt,
	}
}

// ToPaymentMethodListResponse converts payment method entities to a list DTO.
func ToPaymentMethodListResponse(methods []*entity.PaymentMethod) PaymentMethodListResponse {
	responses := make([]PaymentMethodResponse, len(methods))
	for i, m := range methods {
		responses[i] = PaymentMethodResponse{
			ID:     m.ID.String(),
			Code:   m.Code,
			Name:   m.Name,
			Active: m.Active,
		}
	}
	return PaymentMethodListResponse{PaymentMethods: responses}
}
