package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/propledger/backend/internal/domain/treasury"
	"github.com/propledger/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCashTransactionRepository implements CashTransactionRepository using GORM
type GormCashTransactionRepository struct {
	db *gorm.DB
}

// NewGormCashTransactionRepository creates a new GormCashTransactionRepository
func NewGormCashTransactionRepository(db *gorm.DB) *GormCashTransactionRepository {
	return &GormCashTransactionRepository{db: db}
}

func preloadAllocations(db *gorm.DB) *gorm.DB {
	return db.Order("seq ASC")
}

// FindByID loads a receipt with its allocations
func (r *GormCashTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*treasury.CashTransaction, error) {
	var model models.CashTransactionModel
	if err := r.db.WithContext(ctx).
		Preload("Allocations", preloadAllocations).
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDs loads receipts with their allocations
func (r *GormCashTransactionRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]treasury.CashTransaction, error) {
	if len(ids) == 0 {
		return []treasury.CashTransaction{}, nil
	}
	var rows []models.CashTransactionModel
	if err := r.db.WithContext(ctx).
		Preload("Allocations", preloadAllocations).
		Where("id IN ?", ids).
		Order("recorded_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return cashToDomain(rows), nil
}

// FindAll lists receipts newest first with the total count
func (r *GormCashTransactionRepository) FindAll(ctx context.Context, filter treasury.CashTransactionFilter) ([]treasury.CashTransaction, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.CashTransactionModel{}).
		Scopes(r.filterScope(filter)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Filter
	if page.OrderBy == "" {
		page.OrderBy = "timestamp"
	}
	var rows []models.CashTransactionModel
	query := r.db.WithContext(ctx).Scopes(r.filterScope(filter))
	if err := applyPage(query, page, CashTransactionSortFields, "recorded_at").
		Preload("Allocations", preloadAllocations).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return cashToDomain(rows), total, nil
}

// filterScope applies the filter. ToDate is an exclusive upper bound.
func (r *GormCashTransactionRepository) filterScope(filter treasury.CashTransactionFilter) func(*gorm.DB) *gorm.DB {
	return func(query *gorm.DB) *gorm.DB {
		if filter.UnitID != nil {
			query = query.Where("unit_id = ?", *filter.UnitID)
		}
		if filter.PayerPersonID != nil {
			query = query.Where("payer_person_id = ?", *filter.PayerPersonID)
		}
		if filter.InstrumentID != nil {
			query = query.Where("instrument_id = ?", *filter.InstrumentID)
		}
		if filter.InstrumentKind != nil {
			query = query.Where("instrument_id IN (?)", r.db.Model(&models.PaymentInstrumentModel{}).
				Select("id").
				Where("kind = ?", *filter.InstrumentKind))
		}
		if filter.DepositID != nil {
			query = query.Where("deposit_id = ?", *filter.DepositID)
		}
		if filter.Cancelled != nil {
			query = query.Where("cancelled = ?", *filter.Cancelled)
		}
		if filter.Undeposited {
			query = query.Where("deposit_id IS NULL")
		}
		if filter.FromDate != nil {
			query = query.Where("recorded_at >= ?", *filter.FromDate)
		}
		if filter.ToDate != nil {
			query = query.Where("recorded_at < ?", *filter.ToDate)
		}
		return query
	}
}

// Create inserts a receipt and its allocations
func (r *GormCashTransactionRepository) Create(ctx context.Context, tx *treasury.CashTransaction) error {
	err := r.db.WithContext(ctx).Create(models.CashTransactionModelFromDomain(tx)).Error
	return translateWriteError(err, nil)
}

// SaveWithLock saves header changes with optimistic locking. Allocations
// are written once at creation and never rewritten.
func (r *GormCashTransactionRepository) SaveWithLock(ctx context.Context, tx *treasury.CashTransaction) error {
	model := models.CashTransactionModelFromDomain(tx)
	model.Allocations = nil
	result := r.db.WithContext(ctx).
		Model(&models.CashTransactionModel{}).
		Where("id = ? AND version = ?", tx.ID, tx.Version-1).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(model)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// StampDeposit links undeposited, active receipts to a deposit. The caller
// compares the returned count with len(ids) to detect a lost race.
func (r *GormCashTransactionRepository) StampDeposit(ctx context.Context, depositID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Model(&models.CashTransactionModel{}).
		Where("id IN ? AND deposit_id IS NULL AND cancelled = ?", ids, false).
		Updates(map[string]any{
			"deposit_id": depositID,
			"updated_at": time.Now(),
			"version":    gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func cashToDomain(rows []models.CashTransactionModel) []treasury.CashTransaction {
	out := make([]treasury.CashTransaction, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out
}

// Ensure GormCashTransactionRepository implements CashTransactionRepository
var _ treasury.CashTransactionRepository = (*GormCashTransactionRepository)(nil)
