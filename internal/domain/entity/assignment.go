package entity

import (
	"time"

	"github.com/google/uuid"
)

// Assignment links a payment to the driver/vehicle pairing that performed the
// service, along with the route it covered.
type Assignment struct {
	ID                  uuid.UUID
	DriverVehicleLinkID *uuid.UUID
	Origin              string
	Destination         string
	Stops               []string
	CreatedAt           time.Time
}

// DriverVehicleLink resolves an assignment to the driver behind the wheel.
type DriverVehicleLink struct {
	ID        uuid.UUID
	DriverID  *uuid.UUID
	VehicleID uuid.UUID
	Active    bool
}
