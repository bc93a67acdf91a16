package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fletepay/backend/internal/domain/entity"
)

// CommissionModel represents the commissions table in the database. The
// unique index on payment_id keys a commission 1:1 to its source payment.
type CommissionModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PaymentID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	AssignmentID uuid.UUID       `gorm:"type:uuid;not null;index"`
	DriverID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	BaseAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Percentage   decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	Amount       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status       string          `gorm:"type:varchar(10);not null;index"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CommissionModel.
func (CommissionModel) TableName() string {
	return "commissions"
}

// ToEntity converts a CommissionModel to a domain Commission entity. An
// absent status defaults to GENERATED.
func (m *CommissionModel) ToEntity() *entity.Commission {
	status := entity.CommissionStatus(m.Status)
	if status == "" {
		status = entity.CommissionStatusGenerated
	}

	return &entity.Commission{
		ID:           m.ID,
		PaymentID:    m.PaymentID,
		AssignmentID: m.AssignmentID,
		DriverID:     m.DriverID,
		BaseAmount:   m.BaseAmount,
		Percentage:   m.Percentage,
		Amount:       m.Amount,
		Status:       status,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// CommissionFromEntity creates a CommissionModel from a domain Commission entity.
func CommissionFromEntity(commission *entity.Commission) *CommissionModel {
	return &CommissionModel{
		ID:           commission.ID,
		PaymentID:    commission.PaymentID,
		AssignmentID: commission.AssignmentID,
		DriverID:     commission.DriverID,
		BaseAmount:   commission.BaseAmount,
		Percentage:   commission.Percentage,
		Amount:       commission.Amount,
		Status:       string(commission.Status),
		CreatedAt:    commission.CreatedAt,
		UpdatedAt:    commission.UpdatedAt,
	}
}

// CommissionPaymentModel represents the commission_payments table. Rows are
// append-only settlement records.
type CommissionPaymentModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CommissionID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaidAt       time.Time       `gorm:"not null"`
	CreatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CommissionPaymentModel.
func (CommissionPaymentModel) TableName() string {
	return "commission_payments"
}

// ToEntity converts a CommissionPaymentModel to a domain entity.
func (m *CommissionPaymentModel) ToEntity() *entity.CommissionPayment {
	return &entity.CommissionPayment{
		ID:           m.ID,
		CommissionID: m.CommissionID,
		Amount:       m.Amount,
		PaidAt:       m.PaidAt,
		CreatedAt:    m.CreatedAt,
	}
}

// CommissionPaymentFromEntity creates a CommissionPaymentModel from a domain entity.
func CommissionPaymentFromEntity(payment *entity.CommissionPayment) *CommissionPaymentModel {
	return &CommissionPaymentModel{
		ID:           payment.ID,
		CommissionID: payment.CommissionID,
		Amount:       payment.Amount,
		PaidAt:       payment.PaidAt,
		CreatedAt:    payment.CreatedAt,
	}
}
