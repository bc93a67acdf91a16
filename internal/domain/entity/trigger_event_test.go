package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewTriggerEvent(t *testing.T) {
	documentID := uuid.New()
	event := NewTriggerEvent(TriggerPaymentCreated, documentID)

	if event.Status != TriggerStatusPending {
		t.Errorf("expected status pending, got %s", event.Status)
	}
	if event.Attempts != 0 {
		t.Errorf("expected 0 attempts, got %d", event.Attempts)
	}
	if event.MaxAttempts != 3 {
		t.Errorf("expected max attempts 3, got %d", event.MaxAttempts)
	}
	if event.DocumentID != documentID {
		t.Error("expected document ID to be carried through")
	}
}

func TestTriggerEventStateMachine(t *testing.T) {
	t.Run("MarkDone records processed time", func(t *testing.T) {
		event := NewTriggerEvent(TriggerPaymentCreated, uuid.New())
		event.MarkProcessing()
		event.MarkDone()

		if event.Status != TriggerStatusDone {
			t.Errorf("expected status done, got %s", event.Status)
		}
		if event.ProcessedAt == nil {
			t.Error("expected ProcessedAt to be set")
		}
	})

	t.Run("failure before max attempts reschedules", func(t *testing.T) {
		event := NewTriggerEvent(TriggerCommissionPaymentCreated, uuid.New())
		event.MarkProcessing()
		event.MarkFailed(errors.New("handler failed"))

		if event.Status != TriggerStatusPending {
			t.Errorf("expected status pending for retry, got %s", event.Status)
		}
		if event.Attempts != 1 {
			t.Errorf("expected 1 attempt, got %d", event.Attempts)
		}
		if event.LastError != "handler failed" {
			t.Errorf("unexpected last error %q", event.LastError)
		}
	})

	t.Run("failure at max attempts is terminal", func(t *testing.T) {
		event := NewTriggerEvent(TriggerPaymentCreated, uuid.New())
		for i := 0; i < event.MaxAttempts; i++ {
			event.MarkProcessing()
			event.MarkFailed(errors.New("still broken"))
		}

		if event.Status != TriggerStatusFailed {
			t.Errorf("expected status failed, got %s", event.Status)
		}
		if event.ProcessedAt == nil {
			t.Error("expected ProcessedAt to be set on terminal failure")
		}
	})

	t.Run("retry backoff grows", func(t *testing.T) {
		event := NewTriggerEvent(TriggerPaymentCreated, uuid.New())

		event.MarkFailed(errors.New("first"))
		firstDelay := time.Until(event.ScheduledAt)

		event.MarkFailed(errors.New("second"))
		secondDelay := time.Until(event.ScheduledAt)

		if secondDelay <= firstDelay {
			t.Errorf("expected backoff to grow, got %s then %s", firstDelay, secondDelay)
		}
	})
}

func TestIsReadyToProcess(t *testing.T) {
	event := NewTriggerEvent(TriggerPaymentCreated, uuid.New())
	event.ScheduledAt = time.Now().UTC().Add(-time.Second)

	if !event.IsReadyToProcess() {
		t.Error("expected a past-due pending event to be ready")
	}

	event.ScheduledAt = time.Now().UTC().Add(time.Hour)
	if event.IsReadyToProcess() {
		t.Error("expected a future-scheduled event not to be ready")
	}

	event.ScheduledAt = time.Now().UTC().Add(-time.Second)
	event.MarkProcessing()
	if event.IsReadyToProcess() {
		t.Error("expected a processing event not to be ready")
	}
}
