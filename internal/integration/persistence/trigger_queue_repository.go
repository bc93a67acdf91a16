package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fletepay/backend/internal/application/adapter"
	"github.com/fletepay/backend/internal/domain/entity"
	domainerror "github.com/fletepay/backend/internal/domain/error"
	"github.com/fletepay/backend/internal/integration/persistence/model"
)

// triggerQueueRepository implements the adapter.TriggerQueueRepository interface.
type triggerQueueRepository struct {
	db *gorm.DB
}

// NewTriggerQueueRepository creates a new trigger queue repository instance.
func NewTriggerQueueRepository(db *gorm.DB) adapter.TriggerQueueRepository {
	return &triggerQueueRepository{
		db: db,
	}
}

// Enqueue adds a new trigger event to the queue.
func (r *triggerQueueRepository) Enqueue(ctx context.Context, event *entity.TriggerEvent) error {
	eventModel := model.TriggerEventFromEntity(event)
	return r.db.WithContext(ctx).Create(eventModel).Error
}

// GetPendingEvents retrieves events ready to be dispatched.
func (r *triggerQueueRepository) GetPendingEvents(ctx context.Context, limit int) ([]*entity.TriggerEvent, error) {
	var models []model.TriggerEventModel

	result := r.db.WithContext(ctx).
		Where("status = ?", entity.TriggerStatusPending).
		Where("scheduled_at <= ?", time.Now().UTC()).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&models)

	if result.Error != nil {
		return nil, result.Error
	}

	events := make([]*entity.TriggerEvent, len(models))
	for i, m := range models {
		events[i] = m.ToEntity()
	}

	return events, nil
}

// Update saves changes to a trigger event.
func (r *triggerQueueRepository) Update(ctx context.Context, event *entity.TriggerEvent) error {
	eventModel := model.TriggerEventFromEntity(event)
	result := r.db.WithContext(ctx).Save(eventModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// GetByID retrieves a specific event by its ID.
func (r *triggerQueueRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.TriggerEvent, error) {
	var eventModel model.TriggerEventModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&eventModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTriggerEventNotFound
		}
		return nil, result.Error
	}
	return eventModel.ToEntity(), nil
}

// CountByStatus counts queued events per status.
func (r *triggerQueueRepository) CountByStatus(ctx context.Context, status entity.TriggerEventStatus) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TriggerEventModel{}).
		Where("status = ?", status).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
