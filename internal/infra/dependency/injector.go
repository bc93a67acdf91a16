// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/redis/go-redis/v9"

	"github.com/fletepay/backend/config"
	"github.com/fletepay/backend/internal/application/usecase/balance"
	"github.com/fletepay/backend/internal/application/usecase/commission"
	"github.com/fletepay/backend/internal/application/usecase/payment"
	"github.com/fletepay/backend/internal/application/usecase/receipt"
	"github.com/fletepay/backend/internal/infra/server/router"
	"github.com/fletepay/backend/internal/integration/adapters"
	"github.com/fletepay/backend/internal/integration/entrypoint/controller"
	"github.com/fletepay/backend/internal/integration/entrypoint/middleware"
	"github.com/fletepay/backend/internal/integration/persistence"
	"github.com/fletepay/backend/internal/integration/triggers"
)

// Injector holds all application dependencies.
type Injector struct {
	Config        *config.Config
	DB            *gorm.DB
	Router        *router.Router
	TriggerWorker *triggers.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	paymentRepo := persistence.NewPaymentRepository(db)
	paymentMethodRepo := persistence.NewPaymentMethodRepository(db)
	assignmentRepo := persistence.NewAssignmentRepository(db)
	linkRepo := persistence.NewDriverVehicleLinkRepository(db)
	receiptRepo := persistence.NewReceiptRepository(db)
	commissionRepo := persistence.NewCommissionRepository(db)
	commissionPaymentRepo := persistence.NewCommissionPaymentRepository(db)
	balanceRepo := persistence.NewDriverBalanceRepository(db)
	triggerQueue := persistence.NewTriggerQueueRepository(db)

	// Create adapters
	receiptSequence := adapters.NewRedisReceiptSequence(redisClient)

	// Create API use cases
	createPaymentUseCase := payment.NewCreatePaymentUseCase(paymentRepo, triggerQueue)
	getPaymentUseCase := payment.NewGetPaymentUseCase(paymentRepo)
	listMethodsUseCase := payment.NewListPaymentMethodsUseCase(paymentMethodRepo)
	getReceiptUseCase := receipt.NewGetReceiptUseCase(receiptRepo)
	listCommissionsUseCase := commission.NewListCommissionsUseCase(commissionRepo)
	getCommissionUseCase := commission.NewGetCommissionUseCase(commissionRepo, commissionPaymentRepo)
	recordPaymentUseCase := commission.NewRecordCommissionPaymentUseCase(commissionRepo, commissionPaymentRepo, triggerQueue)
	getBalanceUseCase := balance.NewGetBalanceUseCase(balanceRepo)

	// Create trigger handlers
	issueReceiptUseCase := receipt.NewIssueReceiptUseCase(
		paymentRepo,
		paymentMethodRepo,
		receiptRepo,
		receiptSequence,
		cfg.Billing.DefaultIssuerFiscalID,
	)
	generateCommissionUseCase := commission.NewGenerateCommissionUseCase(
		paymentRepo,
		paymentMethodRepo,
		assignmentRepo,
		linkRepo,
		commissionRepo,
	)
	reconcileUseCase := commission.NewReconcileCommissionUseCase(
		commissionPaymentRepo,
		commissionRepo,
		balanceRepo,
	)

	// Create trigger dispatcher and worker
	dispatcher := triggers.NewDispatcher(issueReceiptUseCase, generateCommissionUseCase, reconcileUseCase)
	worker := triggers.NewWorker(triggerQueue, dispatcher, triggers.WorkerConfig{
		PollInterval: cfg.Worker.PollInterval,
		BatchSize:    cfg.Worker.BatchSize,
	})

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, triggerQueue)

	paymentController := controller.NewPaymentController(
		createPaymentUseCase,
		getPaymentUseCase,
		getReceiptUseCase,
		listMethodsUseCase,
	)

	commissionController := controller.NewCommissionController(
		listCommissionsUseCase,
		getCommissionUseCase,
		recordPaymentUseCase,
	)

	balanceController := controller.NewBalanceController(getBalanceUseCase)

	// Create middleware
	writeRateLimiter := middleware.NewRateLimiterWithConfig(
		cfg.API.RateLimitMaxRequests,
		cfg.API.RateLimitWindow,
	)

	// Create router
	r := router.NewRouter(
		healthController,
		paymentController,
		commissionController,
		balanceController,
		writeRateLimiter,
		cfg.API.Key,
	)

	return &Injector{
		Config:        cfg,
		DB:            db,
		Router:        r,
		TriggerWorker: worker,
	}
}
