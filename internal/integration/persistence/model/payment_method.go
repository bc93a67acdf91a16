package model

import (
	"github.com/google/uuid"

	"github.com/fletepay/backend/internal/domain/entity"
)

// PaymentMethodModel represents the payment_methods table in the database.
type PaymentMethodModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code   string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Name   string    `gorm:"type:varchar(64);not null"`
	Active bool      `gorm:"default:true"`
}

// TableName returns the table name for the PaymentMethodModel.
func (PaymentMethodModel) TableName() string {
	return "payment_methods"
}

// ToEntity converts a PaymentMethodModel to a domain PaymentMethod entity.
func (m *PaymentMethodModel) ToEntity() *entity.PaymentMethod {
	return &entity.PaymentMethod{
		ID:     m.ID,
		Code:   m.Code,
		Name:   m.Name,
		Active: m.Active,
	}
}

// PaymentMethodFromEntity creates a PaymentMethodModel from a domain entity.
func PaymentMethodFromEntity(method *entity.PaymentMethod) *PaymentMethodModel {
	return &PaymentMethodModel{
		ID:     method.ID,
		Code:   method.Code,
		Name:   method.Name,
		Active: method.Active,
	}
}
