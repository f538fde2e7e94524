package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/propledger/backend/internal/domain/treasury"
	"github.com/propledger/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTransferRepository implements TransferRepository using GORM
type GormTransferRepository struct {
	db *gorm.DB
}

// NewGormTransferRepository creates a new GormTransferRepository
func NewGormTransferRepository(db *gorm.DB) *GormTransferRepository {
	return &GormTransferRepository{db: db}
}

// FindByID finds a transfer by ID
func (r *GormTransferRepository) FindByID(ctx context.Context, id uuid.UUID) (*treasury.Transfer, error) {
	var model models.TransferModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists transfers newest first with the total count
func (r *GormTransferRepository) FindAll(ctx context.Context, filter shared.Filter) ([]treasury.Transfer, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.TransferModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []models.TransferModel
	if err := applyPage(r.db.WithContext(ctx), filter, MovementSortFields, "created_at").
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	out := make([]treasury.Transfer, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, total, nil
}

// Create inserts a transfer
func (r *GormTransferRepository) Create(ctx context.Context, transfer *treasury.Transfer) error {
	return r.db.WithContext(ctx).Create(models.TransferModelFromDomain(transfer)).Error
}

// GormExpenseRepository implements ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// FindByID finds an expense by ID
func (r *GormExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*treasury.Expense, error) {
	var model models.ExpenseModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists expenses newest first with the total count
func (r *GormExpenseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]treasury.Expense, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.ExpenseModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []models.ExpenseModel
	if err := applyPage(r.db.WithContext(ctx), filter, MovementSortFields, "created_at").
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	out := make([]treasury.Expense, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, total, nil
}

// Create inserts an expense
func (r *GormExpenseRepository) Create(ctx context.Context, expense *treasury.Expense) error {
	return r.db.WithContext(ctx).Create(models.ExpenseModelFromDomain(expense)).Error
}

var (
	_ treasury.TransferRepository = (*GormTransferRepository)(nil)
	_ treasury.ExpenseRepository  = (*GormExpenseRepository)(nil)
)
