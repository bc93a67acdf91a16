package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fletepay/backend/internal/domain/entity"
)

// ReceiptRepository defines the interface for receipt persistence operations.
// Receipts are insert-only.
type ReceiptRepository interface {
	// CreateIfAbsent inserts the receipt unless one already exists for the
	// same payment. Returns false when the insert was skipped, so a
	// redelivered trigger cannot issue a duplicate.
	CreateIfAbsent(ctx context.Context, receipt *entity.Receipt) (bool, error)

	// FindByPaymentID retrieves the receipt issued for a payment.
	FindByPaymentID(ctx context.Context, paymentID uuid.UUID) (*entity.Receipt, error)
}

// ReceiptSequence hands out monotonically increasing numbers per fiscal
// series. Next must be safe under concurrent issuance.
type ReceiptSequence interface {
	// Next atomically advances and returns the counter for the series.
	Next(ctx context.Context, series string) (int64, error)
}
