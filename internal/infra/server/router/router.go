// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/fletepay/backend/internal/integration/entrypoint/controller"
	"github.com/fletepay/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	paymentController    *controller.PaymentController
	commissionController *controller.CommissionController
	balanceController    *controller.BalanceController
	writeRateLimiter     *middleware.RateLimiter
	apiKey               string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	paymentController *controller.PaymentController,
	commissionController *controller.CommissionController,
	balanceController *controller.BalanceController,
	writeRateLimiter *middleware.RateLimiter,
	apiKey string,
) *Router {
	return &Router{
		healthController:     healthController,
		paymentController:    paymentController,
		commissionController: commissionController,
		balanceController:    balanceController,
		writeRateLimiter:     writeRateLimiter,
		apiKey:               apiKey,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints. Health is outside the
// API key boundary so load balancers can probe it.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group, authenticated by API key
	v1 := r.engine.Group("/api/v1")
	v1.Use(middleware.APIKeyAuth(r.apiKey))
	{
		if r.paymentController != nil {
			payments := v1.Group("/payments")
			{
				if r.writeRateLimiter != nil {
					payments.POST("", r.writeRateLimiter.Middleware(), r.paymentController.Create)
				} else {
					payments.POST("", r.paymentController.Create)
				}
				payments.GET("/:id", r.paymentController.Get)
				payments.GET("/:id/receipt", r.paymentController.GetReceipt)
			}

			v1.GET("/payment-methods", r.paymentController.ListMethods)
		}

		if r.commissionController != nil {
			commissions := v1.Group("/commissions")
			{
				commissions.GET("", r.commissionController.List)
				commissions.GET("/:id", r.commissionController.Get)
				commissions.POST("/:id/payments", r.commissionController.RecordPayment)
			}
		}

		if r.balanceController != nil {
			v1.GET("/drivers/:id/balance", r.balanceController.Get)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
