package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fletepay/backend/internal/application/adapter"
	"github.com/fletepay/backend/internal/domain/entity"
	domainerror "github.com/fletepay/backend/internal/domain/error"
	"github.com/fletepay/backend/internal/integration/persistence/model"
)

// commissionRepository implements the adapter.CommissionRepository interface.
type commissionRepository struct {
	db *gorm.DB
}

// NewCommissionRepository creates a new commission repository instance.
func NewCommissionRepository(db *gorm.DB) adapter.CommissionRepository {
	return &commissionRepository{
		db: db,
	}
}

// CreateIfAbsent inserts the commission unless one already exists for the
// same payment. The unique index on payment_id keys a commission 1:1 to its
// payment, so a redelivered trigger cannot double-insert.
func (r *commissionRepository) CreateIfAbsent(ctx context.Context, commission *entity.Commission) (bool, error) {
	commissionModel := model.CommissionFromEntity(commission)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "payment_id"}},
			DoNothing: true,
		}).
		Create(commissionModel)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// FindByID retrieves a commission by its ID.
func (r *commissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Commission, error) {
	var commissionModel model.CommissionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&commissionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCommissionNotFound
		}
		return nil, result.Error
	}
	return commissionModel.ToEntity(), nil
}

// FindByPaymentID retrieves the commission generated for a payment.
func (r *commissionRepository) FindByPaymentID(ctx context.Context, paymentID uuid.UUID) (*entity.Commission, error) {
	var commissionModel model.CommissionModel
	result := r.db.WithContext(ctx).Where("payment_id = ?", paymentID).First(&commissionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCommissionNotFound
		}
		return nil, result.Error
	}
	return commissionModel.ToEntity(), nil
}

// FindByFilter retrieves commissions matching the filter, newest first.
func (r *commissionRepository) FindByFilter(ctx context.Context, filter adapter.CommissionFilter) ([]*entity.Commission, error) {
	query := r.db.WithContext(ctx).Model(&model.CommissionModel{})

	if filter.DriverID != nil {
		query = query.Where("driver_id = ?", *filter.DriverID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var models []model.CommissionModel
	result := query.Order("created_at DESC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	commissions := make([]*entity.Commission, len(models))
	for i := range models {
		commissions[i] = models[i].ToEntity()
	}
	return commissions, nil
}

// RecomputeStatus sums all settlements against the commission and writes the
// implied status unconditionally, inside one transaction. The full rescan is
// deliberate: commission volume per driver stays small, and a rescan cannot
// drift the way incremental patching can.
func (r *commissionRepository) RecomputeStatus(ctx context.Context, commissionID uuid.UUID) (*adapter.StatusRecomputation, error) {
	var recomputation *adapter.StatusRecomputation

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var commissionModel model.CommissionModel
		if err := tx.Where("id = ?", commissionID).First(&commissionModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrCommissionNotFound
			}
			return err
		}
		commission := commissionModel.ToEntity()

		var settled decimal.Decimal
		row := tx.Model(&model.CommissionPaymentModel{}).
			Where("commission_id = ?", commissionID).
			Select("COALESCE(SUM(amount), 0)").
			Row()
		if err := row.Scan(&settled); err != nil {
			return err
		}

		status := commission.StatusForSettled(settled)
		now := time.Now().UTC()

		if err := tx.Model(&model.CommissionModel{}).
			Where("id = ?", commissionID).
			Updates(map[string]interface{}{
				"status":     string(status),
				"updated_at": now,
			}).Error; err != nil {
			return err
		}

		commission.Status = status
		commission.UpdatedAt = now
		recomputation = &adapter.StatusRecomputation{
			Commission: commission,
			Settled:    settled,
			Status:     status,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return recomputation, nil
}
