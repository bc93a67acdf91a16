package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fletepay/backend/internal/domain/entity"
)

// DriverAccountBalanceModel represents the driver_account_balances table.
// The unique index on driver_id enforces one balance record per driver.
type DriverAccountBalanceModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DriverID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Balance   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the DriverAccountBalanceModel.
func (DriverAccountBalanceModel) TableName() string {
	return "driver_account_balances"
}

// ToEntity converts a DriverAccountBalanceModel to a domain entity.
func (m *DriverAccountBalanceModel) ToEntity() *entity.DriverAccountBalance {
	return &entity.DriverAccountBalance{
		ID:        m.ID,
		DriverID:  m.DriverID,
		Balance:   m.Balance,
		UpdatedAt: m.UpdatedAt,
	}
}

// DriverAccountBalanceFromEntity creates a model from a domain entity.
func DriverAccountBalanceFromEntity(balance *entity.DriverAccountBalance) *DriverAccountBalanceModel {
	return &DriverAccountBalanceModel{
		ID:        balance.ID,
		DriverID:  balance.DriverID,
		Balance:   balance.Balance,
		UpdatedAt: balance.UpdatedAt,
	}
}
