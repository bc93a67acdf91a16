package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fletepay/backend/internal/application/adapter"
	"github.com/fletepay/backend/internal/domain/entity"
	domainerror "github.com/fletepay/backend/internal/domain/error"
	"github.com/fletepay/backend/internal/integration/persistence/model"
)

// commissionPaymentRepository implements adapter.CommissionPaymentRepository.
type commissionPaymentRepository struct {
	db *gorm.DB
}

// NewCommissionPaymentRepository creates a new settlement repository instance.
func NewCommissionPaymentRepository(db *gorm.DB) adapter.CommissionPaymentRepository {
	return &commissionPaymentRepository{
		db: db,
	}
}

// Create stores a new settlement record. Settlements are append-only.
func (r *commissionPaymentRepository) Create(ctx context.Context, payment *entity.CommissionPayment) error {
	paymentModel := model.CommissionPaymentFromEntity(payment)
	return r.db.WithContext(ctx).Create(paymentModel).Error
}

// FindByID retrieves a settlement record by its ID.
func (r *commissionPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CommissionPayment, error) {
	var paymentModel model.CommissionPaymentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&paymentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCommissionPaymentNotFound
		}
		return nil, result.Error
	}
	return paymentModel.ToEntity(), nil
}

// ListByCommission retrieves all settlements against a commission, oldest first.
func (r *commissionPaymentRepository) ListByCommission(ctx context.Context, commissionID uuid.UUID) ([]*entity.CommissionPayment, error) {
	var models []model.CommissionPaymentModel
	result := r.db.WithContext(ctx).
		Where("commission_id = ?", commissionID).
		Order("paid_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]*entity.CommissionPayment, len(models))
	for i := range models {
		payments[i] = models[i].ToEntity()
	}
	return payments, nil
}
