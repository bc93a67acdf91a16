package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fletepay/backend/internal/domain/entity"
)

// TriggerQueueRepository defines the interface for the document-creation
// trigger queue.
type TriggerQueueRepository interface {
	// Enqueue adds a new trigger event to the queue.
	Enqueue(ctx context.Context, event *entity.TriggerEvent) error

	// GetPendingEvents retrieves events ready to be dispatched, ordered by
	// scheduled_at.
	GetPendingEvents(ctx context.Context, limit int) ([]*entity.TriggerEvent, error)

	// Update saves changes to a trigger event.
	Update(ctx context.Context, event *entity.TriggerEvent) error

	// GetByID retrieves a specific event by its ID.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.TriggerEvent, error)

	// CountByStatus counts queued events per status (for health/debugging).
	CountByStatus(ctx context.Context, status entity.TriggerEventStatus) (int64, error)
}
