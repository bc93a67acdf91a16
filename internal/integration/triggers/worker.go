package triggers

import (
	"context"
	"log/slog"
	"time"

	"github.com/fletepay/backend/internal/application/adapter"
	"github.com/fletepay/backend/internal/domain/entity"
)

// Worker polls the trigger queue and dispatches due events.
type Worker struct {
	queue        adapter.TriggerQueueRepository
	dispatcher   *Dispatcher
	pollInterval time.Duration
	batchSize    int
}

// WorkerConfig holds configuration for the trigger worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 2 * time.Second,
		BatchSize:    20,
	}
}

// NewWorker creates a new trigger worker.
func NewWorker(queue adapter.TriggerQueueRepository, dispatcher *Dispatcher, config WorkerConfig) *Worker {
	return &Worker{
		queue:        queue,
		dispatcher:   dispatcher,
		pollInterval: config.PollInterval,
		batchSize:    config.BatchSize,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Trigger worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Process immediately on start, then on ticker
	w.processBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Trigger worker shutting down")
			return
		case <-ticker.C:
			w.processBatch(ctx)
		}
	}
}

// processBatch fetches and processes a batch of due events.
func (w *Worker) processBatch(ctx context.Context) {
	events, err := w.queue.GetPendingEvents(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to get pending trigger events", "error", err)
		return
	}

	if len(events) == 0 {
		return
	}

	slog.Debug("Processing trigger batch", "count", len(events))

	for _, event := range events {
		select {
		case <-ctx.Done():
			return
		default:
			w.processEvent(ctx, event)
		}
	}
}

// processEvent dispatches a single event and records the delivery result.
func (w *Worker) processEvent(ctx context.Context, event *entity.TriggerEvent) {
	logger := slog.With(
		"event_id", event.ID,
		"event_type", event.EventType,
		"document_id", event.DocumentID,
	)

	event.MarkProcessing()
	if err := w.queue.Update(ctx, event); err != nil {
		logger.Error("Failed to mark event as processing", "error", err)
		return
	}

	if err := w.dispatcher.Dispatch(ctx, event); err != nil {
		w.handleFailure(ctx, event, err)
		return
	}

	event.MarkDone()
	if err := w.queue.Update(ctx, event); err != nil {
		logger.Error("Failed to mark event as done", "error", err)
		return
	}

	logger.Debug("Trigger event handled")
}

// handleFailure records a handler failure and schedules a retry if attempts
// remain.
func (w *Worker) handleFailure(ctx context.Context, event *entity.TriggerEvent, err error) {
	event.MarkFailed(err)

	if updateErr := w.queue.Update(ctx, event); updateErr != nil {
		slog.Error("Failed to update event after failure",
			"event_id", event.ID,
			"error", updateErr,
		)
	}

	if event.Status == entity.TriggerStatusFailed {
		slog.Warn("Trigger event permanently failed",
			"event_id", event.ID,
			"attempts", event.Attempts,
			"last_error", event.LastError,
		)
	} else {
		slog.Info("Trigger event scheduled for retry",
			"event_id", event.ID,
			"attempts", event.Attempts,
			"scheduled_at", event.ScheduledAt,
		)
	}
}

// ProcessNow processes all due events immediately (useful for testing).
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processBatch(ctx)
}
