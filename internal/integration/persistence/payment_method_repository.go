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

// paymentMethodRepository implements the adapter.PaymentMethodRepository interface.
type paymentMethodRepository struct {
	db *gorm.DB
}

// NewPaymentMethodRepository creates a new payment method repository instance.
func NewPaymentMethodRepository(db *gorm.DB) adapter.PaymentMethodRepository {
	return &paymentMethodRepository{
		db: db,
	}
}

// FindByID retrieves a payment method by its ID.
func (r *paymentMethodRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentMethod, error) {
	var methodModel model.PaymentMethodModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&methodModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPaymentMethodNotFound
		}
		return nil, result.Error
	}
	return methodModel.ToEntity(), nil
}

// FindByCode retrieves a payment method by its code.
func (r *paymentMethodRepository) FindByCode(ctx context.Context, code string) (*entity.PaymentMethod, error) {
	var methodModel model.PaymentMethodModel
	result := r.db.WithContext(ctx).Where("code = ?", code).First(&methodModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPaymentMethodNotFound
		}
		return nil, result.Error
	}
	return methodModel.ToEntity(), nil
}

// ListActive retrieves all active payment methods ordered by code.
func (r *paymentMethodRepository) ListActive(ctx context.Context) ([]*entity.PaymentMethod, error) {
	var models []model.PaymentMethodModel
	result := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("code ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	methods := make([]*entity.PaymentMethod, len(models))
	for i, m := range models {
		methods[i] = m.ToEntity()
	}
	return methods, nil
}

// Seed inserts reference methods that do not exist yet, matching by code.
func (r *paymentMethodRepository) Seed(ctx context.Context, methods []*entity.PaymentMethod) error {
	if len(methods) == 0 {
		return nil
	}

	models := make([]*model.PaymentMethodModel, len(methods))
	for i, m := range methods {
		models[i] = model.PaymentMethodFromEntity(m)
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoNothing: true,
		}).
		Create(models)
	return result.Error
}
