package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/fletepay/backend/internal/domain/entity"
)

// TriggerEventModel represents the trigger_events table in the database.
type TriggerEventModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EventType   string     `gorm:"type:varchar(40);not null;index"`
	DocumentID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status      string     `gorm:"type:varchar(12);not null;index"`
	Attempts    int        `gorm:"default:0"`
	MaxAttempts int        `gorm:"default:3"`
	LastError   string     `gorm:"type:text"`
	CreatedAt   time.Time  `gorm:"not null"`
	ScheduledAt time.Time  `gorm:"not null;index"`
	ProcessedAt *time.Time `gorm:"type:timestamp"`
}

// TableName returns the table name for the TriggerEventModel.
func (TriggerEventModel) TableName() string {
	return "trigger_events"
}

// ToEntity converts a TriggerEventModel to a domain TriggerEvent entity.
func (m *TriggerEventModel) ToEntity() *entity.TriggerEvent {
	return &entity.TriggerEvent{
		ID:          m.ID,
		EventType:   entity.TriggerEventType(m.EventType),
		DocumentID:  m.DocumentID,
		Status:      entity.TriggerEventStatus(m.Status),
		Attempts:    m.Attempts,
		MaxAttempts: m.MaxAttempts,
		LastError:   m.LastError,
		CreatedAt:   m.CreatedAt,
		ScheduledAt: m.ScheduledAt,
		ProcessedAt: m.ProcessedAt,
	}
}

// TriggerEventFromEntity creates a TriggerEventModel from a domain entity.
func TriggerEventFromEntity(event *entity.TriggerEvent) *TriggerEventModel {
	return &TriggerEventModel{
		ID:          event.ID,
		EventType:   string(event.EventType),
		DocumentID:  event.DocumentID,
		Status:      string(event.Status),
		Attempts:    event.Attempts,
		MaxAttempts: event.MaxAttempts,
		LastError:   event.LastError,
		CreatedAt:   event.CreatedAt,
		ScheduledAt: event.ScheduledAt,
		ProcessedAt: event.ProcessedAt,
	}
}
