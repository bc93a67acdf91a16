package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fletepay/backend/internal/domain/entity"
)

// ReceiptModel represents the receipts table in the database. The unique
// index on payment_id is the idempotency key: a redelivered payment.created
// trigger cannot issue a second receipt.
type ReceiptModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PaymentID          uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	ReceiptType        string          `gorm:"type:varchar(10);not null"`
	Series             string          `gorm:"type:varchar(8);not null"`
	Number             int64           `gorm:"not null"`
	IssuerFiscalID     string          `gorm:"type:varchar(20);not null"`
	ReceivingCompanyID *uuid.UUID      `gorm:"type:uuid"`
	ReceivingUserID    *uuid.UUID      `gorm:"type:uuid"`
	Total              decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency           string          `gorm:"type:varchar(3);not null"`
	IssuedAt           time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ReceiptModel.
func (ReceiptModel) TableName() string {
	return "receipts"
}

// ToEntity converts a ReceiptModel to a domain Receipt entity.
func (m *ReceiptModel) ToEntity() *entity.Receipt {
	return &entity.Receipt{
		ID:                 m.ID,
		PaymentID:          m.PaymentID,
		ReceiptType:        entity.ReceiptType(m.ReceiptType),
		Series:             m.Series,
		Number:             m.Number,
		IssuerFiscalID:     m.IssuerFiscalID,
		ReceivingCompanyID: m.ReceivingCompanyID,
		ReceivingUserID:    m.ReceivingUserID,
		Total:              m.Total,
		Currency:           m.Currency,
		IssuedAt:           m.IssuedAt,
	}
}

// ReceiptFromEntity creates a ReceiptModel from a domain Receipt entity.
func ReceiptFromEntity(receipt *entity.Receipt) *ReceiptModel {
	return &ReceiptModel{
		ID:                 receipt.ID,
		PaymentID:          receipt.PaymentID,
		ReceiptType:        string(receipt.ReceiptType),
		Series:             receipt.Series,
		Number:             receipt.Number,
		IssuerFiscalID:     receipt.IssuerFiscalID,
		ReceivingCompanyID: receipt.ReceivingCompanyID,
		ReceivingUserID:    receipt.ReceivingUserID,
		Total:              receipt.Total,
		Currency:           receipt.Currency,
		IssuedAt:           receipt.IssuedAt,
	}
}
