package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fletepay/backend/internal/application/adapter"
	"github.com/fletepay/backend/internal/domain/entity"
	domainerror "github.com/fletepay/backend/internal/domain/error"
	"github.com/fletepay/backend/internal/integration/persistence/model"
)

// receiptRepository implements the adapter.ReceiptRepository interface.
type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new receipt repository instance.
func NewReceiptRepository(db *gorm.DB) adapter.ReceiptRepository {
	return &receiptRepository{
		db: db,
	}
}

// CreateIfAbsent inserts the receipt unless one already exists for the same
// payment. The unique index on payment_id makes the insert idempotent under
// trigger redelivery.
func (r *receiptRepository) CreateIfAbsent(ctx context.Context, receipt *entity.Receipt) (bool, error) {
	receiptModel := model.ReceiptFromEntity(receipt)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "payment_id"}},
			DoNothing: true,
		}).
		Create(receiptModel)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// FindByPaymentID retrieves the receipt issued for a payment.
func (r *receiptRepository) FindByPaymentID(ctx context.Context, paymentID uuid.UUID) (*entity.Receipt, error) {
	var receiptModel model.ReceiptModel
	result := r.db.WithContext(ctx).Where("payment_id = ?", paymentID).First(&receiptModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrReceiptNotFound
		}
		return nil, result.Error
	}
	return receiptModel.ToEntity(), nil
}
