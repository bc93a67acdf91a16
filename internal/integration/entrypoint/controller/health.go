package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fletepay/backend/internal/application/adapter"
	"github.com/fletepay/backend/internal/domain/entity"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker func() bool
	triggerQueue    adapter.TriggerQueueRepository
}

// HealthResponse represents the health check response. The trigger counters
// expose queue backpressure and permanently failed events.
type HealthResponse struct {
	Status          string `json:"status"`
	Database        string `json:"database"`
	PendingTriggers int64  `json:"pending_triggers"`
	FailedTriggers  int64  `json:"failed_triggers"`
	Timestamp       string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthChecker func() bool, triggerQueue adapter.TriggerQueueRepository) *HealthController {
	return &HealthController{
		dbHealthChecker: dbHealthChecker,
		triggerQueue:    triggerQueue,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its dependencies.
func (h *HealthController) Check(c *gin.Context) {
	dbStatus := "disconnected"
	if h.dbHealthChecker != nil && h.dbHealthChecker() {
		dbStatus = "connected"
	}

	var pending, failed int64
	if h.triggerQueue != nil {
		pending, _ = h.triggerQueue.CountByStatus(c.Request.Context(), entity.TriggerStatusPending)
		failed, _ = h.triggerQueue.CountByStatus(c.Request.Context(), entity.TriggerStatusFailed)
	}

	response := HealthResponse{
		Status:          "ok",
		Database:        dbStatus,
		PendingTriggers: pending,
		FailedTriggers:  failed,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, response)
}
