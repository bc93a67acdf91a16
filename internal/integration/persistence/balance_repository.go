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

// driverBalanceRepository implements adapter.DriverBalanceRepository.
type driverBalanceRepository struct {
	db *gorm.DB
}

// NewDriverBalanceRepository creates a new driver balance repository instance.
func NewDriverBalanceRepository(db *gorm.DB) adapter.DriverBalanceRepository {
	return &driverBalanceRepository{
		db: db,
	}
}

// RecomputeForDriver sums the amounts of the driver's commissions that are
// not fully paid and upserts the balance record, inside one transaction. The
// balance is always a full recomputation, never an incremental patch.
func (r *driverBalanceRepository) RecomputeForDriver(ctx context.Context, driverID uuid.UUID) (*entity.DriverAccountBalance, error) {
	var balance *entity.DriverAccountBalance

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owed decimal.Decimal
		row := tx.Model(&model.CommissionModel{}).
			Where("driver_id = ? AND status <> ?", driverID, string(entity.CommissionStatusPaid)).
			Select("COALESCE(SUM(amount), 0)").
			Row()
		if err := row.Scan(&owed); err != nil {
			return err
		}

		now := time.Now().UTC()
		balanceModel := &model.DriverAccountBalanceModel{
			ID:        uuid.New(),
			DriverID:  driverID,
			Balance:   owed,
			UpdatedAt: now,
		}

		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "driver_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"balance", "updated_at"}),
		}).Create(balanceModel)
		if result.Error != nil {
			return result.Error
		}

		// Re-read so the caller sees the stored record, including the ID of a
		// pre-existing row the upsert updated.
		var stored model.DriverAccountBalanceModel
		if err := tx.Where("driver_id = ?", driverID).First(&stored).Error; err != nil {
			return err
		}
		balance = stored.ToEntity()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return balance, nil
}

// FindByDriver retrieves the balance record for a driver.
func (r *driverBalanceRepository) FindByDriver(ctx context.Context, driverID uuid.UUID) (*entity.DriverAccountBalance, error) {
	var balanceModel model.DriverAccountBalanceModel
	result := r.db.WithContext(ctx).Where("driver_id = ?", driverID).First(&balanceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBalanceNotFound
		}
		return nil, result.Error
	}
	return balanceModel.ToEntity(), nil
}
