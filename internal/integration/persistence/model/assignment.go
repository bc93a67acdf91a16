package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/fletepay/backend/internal/domain/entity"
)

// AssignmentModel represents the assignments table in the database.
type AssignmentModel struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey"`
	DriverVehicleLinkID *uuid.UUID     `gorm:"type:uuid;index"`
	Origin              string         `gorm:"type:varchar(128)"`
	Destination         string         `gorm:"type:varchar(128)"`
	Stops               pq.StringArray `gorm:"type:text[]"`
	CreatedAt           time.Time      `gorm:"not null"`

	// Relationship (not loaded by default, use Preload)
	DriverVehicleLink *DriverVehicleLinkModel `gorm:"foreignKey:DriverVehicleLinkID;references:ID"`
}

// TableName returns the table name for the AssignmentModel.
func (AssignmentModel) TableName() string {
	return "assignments"
}

// ToEntity converts an AssignmentModel to a domain Assignment entity.
func (m *AssignmentModel) ToEntity() *entity.Assignment {
	return &entity.Assignment{
		ID:                  m.ID,
		DriverVehicleLinkID: m.DriverVehicleLinkID,
		Origin:              m.Origin,
		Destination:         m.Destination,
		Stops:               m.Stops,
		CreatedAt:           m.CreatedAt,
	}
}

// AssignmentFromEntity creates an AssignmentModel from a domain entity.
func AssignmentFromEntity(assignment *entity.Assignment) *AssignmentModel {
	return &AssignmentModel{
		ID:                  assignment.ID,
		DriverVehicleLinkID: assignment.DriverVehicleLinkID,
		Origin:              assignment.Origin,
		Destination:         assignment.Destination,
		Stops:               assignment.Stops,
		CreatedAt:           assignment.CreatedAt,
	}
}

// DriverVehicleLinkModel represents the driver_vehicle_links table.
type DriverVehicleLinkModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DriverID  *uuid.UUID `gorm:"type:uuid;index"`
	VehicleID uuid.UUID  `gorm:"type:uuid"`
	Active    bool       `gorm:"default:true"`
}

// TableName returns the table name for the DriverVehicleLinkModel.
func (DriverVehicleLinkModel) TableName() string {
	return "driver_vehicle_links"
}

// ToEntity converts a DriverVehicleLinkModel to a domain entity.
func (m *DriverVehicleLinkModel) ToEntity() *entity.DriverVehicleLink {
	return &entity.DriverVehicleLink{
		ID:        m.ID,
		DriverID:  m.DriverID,
		VehicleID: m.VehicleID,
		Active:    m.Active,
	}
}

// DriverVehicleLinkFromEntity creates a DriverVehicleLinkModel from a domain entity.
func DriverVehicleLinkFromEntity(link *entity.DriverVehicleLink) *DriverVehicleLinkModel {
	return &DriverVehicleLinkModel{
		ID:        link.ID,
		DriverID:  link.DriverID,
		VehicleID: link.VehicleID,
		Active:    link.Active,
	}
}
