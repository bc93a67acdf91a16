package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DriverAccountBalance is the running total a driver currently owes in
// unsettled commissions. One logical record per driver, fully recomputed and
// upserted whenever a commission settlement lands: the balance always equals
// the sum of amounts over the driver's commissions whose status is not PAID.
type DriverAccountBalance struct {
	ID        uuid.UUID
	DriverID  uuid.UUID
	Balance   decimal.Decimal
	UpdatedAt time.Time
}

// NewDriverAccountBalance creates a balance record for a driver.
func NewDriverAccountBalance(driverID uuid.UUID, balance decimal.Decimal) *DriverAccountBalance {
	return &DriverAccountBalance{
		ID:        uuid.New(),
		DriverID:  driverID,
		Balance:   balance,
		UpdatedAt: time.Now().UTC(),
	}
}
