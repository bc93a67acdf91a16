// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fletepay/backend/internal/domain/entity"
)

// PaymentModel represents the payments table in the database.
type PaymentModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PaymentMethodID    *uuid.UUID      `gorm:"type:uuid;index"`
	AssignmentID       *uuid.UUID      `gorm:"type:uuid;index"`
	TotalAmount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	IssueReceipt       bool            `gorm:"default:false"`
	ReceiptTypeCode    string          `gorm:"type:varchar(10)"`
	IssuerFiscalID     string          `gorm:"type:varchar(20)"`
	ReceivingCompanyID *uuid.UUID      `gorm:"type:uuid"`
	ReceivingUserID    *uuid.UUID      `gorm:"type:uuid"`
	Currency           string          `gorm:"type:varchar(3);not null"`
	Inconsistency      string          `gorm:"type:varchar(64)"`
	CreatedAt          time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	PaymentMethod *PaymentMethodModel `gorm:"foreignKey:PaymentMethodID;references:ID"`
	Assignment    *AssignmentModel    `gorm:"foreignKey:AssignmentID;references:ID"`
}

// TableName returns the table name for the PaymentModel.
func (PaymentModel) TableName() string {
	return "payments"
}

// ToEntity converts a PaymentModel to a domain Payment entity.
func (m *PaymentModel) ToEntity() *entity.Payment {
	return &entity.Payment{
		ID:                 m.ID,
		PaymentMethodID:    m.PaymentMethodID,
		AssignmentID:       m.AssignmentID,
		TotalAmount:        m.TotalAmount,
		IssueReceipt:       m.IssueReceipt,
		ReceiptTypeCode:    m.ReceiptTypeCode,
		IssuerFiscalID:     m.IssuerFiscalID,
		ReceivingCompanyID: m.ReceivingCompanyID,
		ReceivingUserID:    m.ReceivingUserID,
		Currency:           m.Currency,
		Inconsistency:      m.Inconsistency,
		CreatedAt:          m.CreatedAt,
	}
}

// PaymentFromEntity creates a PaymentModel from a domain Payment entity.
func PaymentFromEntity(payment *entity.Payment) *PaymentModel {
	return &PaymentModel{
		ID:                 payment.ID,
		PaymentMethodID:    payment.PaymentMethodID,
		AssignmentID:       payment.AssignmentID,
		TotalAmount:        payment.TotalAmount,
		IssueReceipt:       payment.IssueReceipt,
		ReceiptTypeCode:    payment.ReceiptTypeCode,
		IssuerFiscalID:     payment.IssuerFiscalID,
		ReceivingCompanyID: payment.ReceivingCompanyID,
		ReceivingUserID:    payment.ReceivingUserID,
		Currency:           payment.Currency,
		Inconsistency:      payment.Inconsistency,
		CreatedAt:          payment.CreatedAt,
	}
}
