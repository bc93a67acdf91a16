package entity

import (
	"time"

	"github.com/google/uuid"
)

// TriggerEventType identifies which document-creation event a queue row
// represents.
type TriggerEventType string

const (
	// TriggerPaymentCreated fires the receipt issuer and the commission
	// generator for a newly created payment.
	TriggerPaymentCreated TriggerEventType = "payment.created"
	// TriggerCommissionPaymentCreated fires the commission reconciler for a
	// newly recorded settlement.
	TriggerCommissionPaymentCreated TriggerEventType = "commission_payment.created"
)

// TriggerEventStatus represents the delivery state of a trigger event.
type TriggerEventStatus string

const (
	TriggerStatusPending    TriggerEventStatus = "pending"
	TriggerStatusProcessing TriggerEventStatus = "processing"
	TriggerStatusDone       TriggerEventStatus = "done"
	TriggerStatusFailed     TriggerEventStatus = "failed"
)

// TriggerEvent is a queued document-creation event awaiting dispatch to its
// handlers. Delivery is at-least-once; handlers must tolerate redelivery.
type TriggerEvent struct {
	ID          uuid.UUID
	EventType   TriggerEventType
	DocumentID  uuid.UUID
	Status      TriggerEventStatus
	Attempts    int
	MaxAttempts int
	LastError   string
	CreatedAt   time.Time
	ScheduledAt time.Time
	ProcessedAt *time.Time
}

// NewTriggerEvent creates a pending trigger event for a document.
func NewTriggerEvent(eventType TriggerEventType, documentID uuid.UUID) *TriggerEvent {
	now := time.Now().UTC()
	return &TriggerEvent{
		ID:          uuid.New(),
		EventType:   eventType,
		DocumentID:  documentID,
		Status:      TriggerStatusPending,
		Attempts:    0,
		MaxAttempts: 3,
		CreatedAt:   now,
		ScheduledAt: now,
	}
}

// MarkProcessing marks the event as currently being dispatched.
func (e *TriggerEvent) MarkProcessing() {
	e.Status = TriggerStatusProcessing
}

// MarkDone marks the event as successfully handled.
func (e *TriggerEvent) MarkDone() {
	e.Status = TriggerStatusDone
	now := time.Now().UTC()
	e.ProcessedAt = &now
}

// MarkFailed records a handler failure and schedules a retry if attempts
// remain.
func (e *TriggerEvent) MarkFailed(err error) {
	e.Attempts++
	e.LastError = err.Error()

	if e.Attempts >= e.MaxAttempts {
		e.Status = TriggerStatusFailed
		now := time.Now().UTC()
		e.ProcessedAt = &now
	} else {
		e.Status = TriggerStatusPending
		e.ScheduledAt = e.calculateNextRetry()
	}
}

// calculateNextRetry computes the next delivery time using exponential
// backoff. Retry delays: 0s (immediate), 1min, 5min.
func (e *TriggerEvent) calculateNextRetry() time.Time {
	delays := []time.Duration{0, 1 * time.Minute, 5 * time.Minute}
	if e.Attempts < len(delays) {
		return time.Now().UTC().Add(delays[e.Attempts])
	}
	return time.Now().UTC().Add(5 * time.Minute)
}

// IsReadyToProcess reports whether the event is due for dispatch.
func (e *TriggerEvent) IsReadyToProcess() bool {
	return e.Status == TriggerStatusPending && time.Now().UTC().After(e.ScheduledAt)
}
