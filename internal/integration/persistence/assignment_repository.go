package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fletepay/backend/internal/application/adapter"
	"github.com/fletepay/backend/internal/domain/entity"
	"github.com/fletepay/backend/internal/integration/persistence/model"
)

// Assignment reference errors are treated as not-found sentinels so handlers
// can apply their best-effort chain semantics.
var (
	// ErrAssignmentNotFound is returned when an assignment does not exist.
	ErrAssignmentNotFound = errors.New("assignment not found")

	// ErrDriverVehicleLinkNotFound is returned when a link does not exist.
	ErrDriverVehicleLinkNotFound = errors.New("driver vehicle link not found")
)

// assignmentRepository implements the adapter.AssignmentRepository interface.
type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository instance.
func NewAssignmentRepository(db *gorm.DB) adapter.AssignmentRepository {
	return &assignmentRepository{
		db: db,
	}
}

// FindByID retrieves an assignment by its ID.
func (r *assignmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Assignment, error) {
	var assignmentModel model.AssignmentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&assignmentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, result.Error
	}
	return assignmentModel.ToEntity(), nil
}

// Create stores a new assignment.
func (r *assignmentRepository) Create(ctx context.Context, assignment *entity.Assignment) error {
	assignmentModel := model.AssignmentFromEntity(assignment)
	return r.db.WithContext(ctx).Create(assignmentModel).Error
}

// driverVehicleLinkRepository implements adapter.DriverVehicleLinkRepository.
type driverVehicleLinkRepository struct {
	db *gorm.DB
}

// NewDriverVehicleLinkRepository creates a new driver-vehicle link repository instance.
func NewDriverVehicleLinkRepository(db *gorm.DB) adapter.DriverVehicleLinkRepository {
	return &driverVehicleLinkRepository{
		db: db,
	}
}

// FindByID retrieves a driver-vehicle link by its ID.
func (r *driverVehicleLinkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DriverVehicleLink, error) {
	var linkModel model.DriverVehicleLinkModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&linkModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrDriverVehicleLinkNotFound
		}
		return nil, result.Error
	}
	return linkModel.ToEntity(), nil
}

// Create stores a new driver-vehicle link.
func (r *driverVehicleLinkRepository) Create(ctx context.Context, link *entity.DriverVehicleLink) error {
	linkModel := model.DriverVehicleLinkFromEntity(link)
	return r.db.WithContext(ctx).Create(linkModel).Error
}
