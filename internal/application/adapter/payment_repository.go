// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fletepay/backend/internal/domain/entity"
)

// PaymentRepository defines the interface for payment persistence operations.
type PaymentRepository interface {
	// Create stores a new payment.
	Create(ctx context.Context, payment *entity.Payment) error

	// FindByID retrieves a payment by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// SetInconsistency writes the inconsistency marker on a payment. The
	// marker is the only field a handler may mutate on a payment.
	SetInconsistency(ctx context.Context, id uuid.UUID, marker string) error
}

// PaymentMethodRepository defines read access to payment method reference data.
type PaymentMethodRepository interface {
	// FindByID retrieves a payment method by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentMethod, error)

	// FindByCode retrieves a payment method by its code.
	FindByCode(ctx context.Context, code string) (*entity.PaymentMethod, error)

	// ListActive retrieves all active payment methods.
	ListActive(ctx context.Context) ([]*entity.PaymentMethod, error)

	// Seed inserts reference methods that do not exist yet, matching by code.
	Seed(ctx context.Context, methods []*entity.PaymentMethod) error
}
