// Package triggers dispatches document-creation events to their billing
// handlers.
package triggers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fletepay/backend/internal/application/usecase/commission"
	"github.com/fletepay/backend/internal/application/usecase/receipt"
	"github.com/fletepay/backend/internal/domain/entity"
)

// Dispatcher routes a trigger event to the use cases registered for its type.
// Handlers are idempotent, so a redelivered event converges to the same state
// it produced the first time.
type Dispatcher struct {
	issueReceipt       *receipt.IssueReceiptUseCase
	generateCommission *commission.GenerateCommissionUseCase
	reconcile          *commission.ReconcileCommissionUseCase
}

// NewDispatcher creates a dispatcher over the three billing handlers.
func NewDispatcher(
	issueReceipt *receipt.IssueReceiptUseCase,
	generateCommission *commission.GenerateCommissionUseCase,
	reconcile *commission.ReconcileCommissionUseCase,
) *Dispatcher {
	return &Dispatcher{
		issueReceipt:       issueReceipt,
		generateCommission: generateCommission,
		reconcile:          reconcile,
	}
}

// Dispatch runs every handler registered for the event's type. A handler
// error fails the whole event so the queue retries it; skipped outcomes are
// logged, never errors.
func (d *Dispatcher) Dispatch(ctx context.Context, event *entity.TriggerEvent) error {
	switch event.EventType {
	case entity.TriggerPaymentCreated:
		return d.dispatchPaymentCreated(ctx, event)
	case entity.TriggerCommissionPaymentCreated:
		return d.dispatchCommissionPaymentCreated(ctx, event)
	default:
		return fmt.Errorf("unknown trigger event type %q", event.EventType)
	}
}

// dispatchPaymentCreated runs the receipt issuer and the commission generator.
// The two handlers are independent; both run even when one fails, and their
// errors are joined so a retry re-runs both (each is idempotent).
func (d *Dispatcher) dispatchPaymentCreated(ctx context.Context, event *entity.TriggerEvent) error {
	logger := slog.With("event_id", event.ID, "payment_id", event.DocumentID)

	var errs []error

	receiptOut, err := d.issueReceipt.Execute(ctx, receipt.IssueReceiptInput{PaymentID: event.DocumentID})
	if err != nil {
		logger.Error("Receipt issuance failed", "error", err)
		errs = append(errs, fmt.Errorf("issue receipt: %w", err))
	} else {
		logReceiptOutcome(logger, receiptOut)
	}

	commissionOut, err := d.generateCommission.Execute(ctx, commission.GenerateCommissionInput{PaymentID: event.DocumentID})
	if err != nil {
		logger.Error("Commission generation failed", "error", err)
		errs = append(errs, fmt.Errorf("generate commission: %w", err))
	} else {
		logCommissionOutcome(logger, commissionOut)
	}

	return errors.Join(errs...)
}

// dispatchCommissionPaymentCreated runs the commission reconciler.
func (d *Dispatcher) dispatchCommissionPaymentCreated(ctx context.Context, event *entity.TriggerEvent) error {
	logger := slog.With("event_id", event.ID, "commission_payment_id", event.DocumentID)

	out, err := d.reconcile.Execute(ctx, commission.ReconcileCommissionInput{CommissionPaymentID: event.DocumentID})
	if err != nil {
		logger.Error("Commission reconciliation failed", "error", err)
		return fmt.Errorf("reconcile commission: %w", err)
	}

	if out.Outcome == commission.OutcomeSkippedReconciliation {
		logger.Info("Commission reconciliation skipped", "skip_reason", out.SkipReason)
		return nil
	}

	logger.Info("Commission reconciled",
		"status", out.Status,
		"settled", out.Settled,
		"driver_balance", out.Balance,
	)
	return nil
}

func logReceiptOutcome(logger *slog.Logger, out *receipt.IssueReceiptOutput) {
	switch out.Outcome {
	case receipt.OutcomeIssued:
		logger.Info("Receipt issued",
			"receipt_id", out.Receipt.ID,
			"series", out.Receipt.Series,
			"number", out.Receipt.Number,
			"receipt_type", out.Receipt.ReceiptType,
		)
	case receipt.OutcomeFlagged:
		logger.Warn("Payment flagged inconsistent",
			"inconsistency", entity.InconsistencyInvoiceRequiresAppMethod,
		)
	default:
		logger.Info("Receipt issuance skipped", "skip_reason", out.SkipReason)
	}
}

func logCommissionOutcome(logger *slog.Logger, out *commission.GenerateCommissionOutput) {
	if out.Outcome == commission.OutcomeGenerated {
		logger.Info("Commission generated",
			"commission_id", out.Commission.ID,
			"driver_id", out.Commission.DriverID,
			"amount", out.Commission.Amount,
		)
		return
	}
	logger.Info("Commission generation skipped", "skip_reason", out.SkipReason)
}
