package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fletepay/backend/internal/domain/entity"
)

// AssignmentRepository defines read access to service assignments.
type AssignmentRepository interface {
	// FindByID retrieves an assignment by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Assignment, error)

	// Create stores a new assignment (used by seeding and tests).
	Create(ctx context.Context, assignment *entity.Assignment) error
}

// DriverVehicleLinkRepository defines read access to driver/vehicle pairings.
type DriverVehicleLinkRepository interface {
	// FindByID retrieves a driver-vehicle link by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DriverVehicleLink, error)

	// Create stores a new driver-vehicle link (used by seeding and tests).
	Create(ctx context.Context, link *entity.DriverVehicleLink) error
}
