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

// GormDepositRepository implements DepositRepository using GORM. Member ids
// are read back from cash_transactions.deposit_id.
type GormDepositRepository struct {
	db *gorm.DB
}

// NewGormDepositRepository creates a new GormDepositRepository
func NewGormDepositRepository(db *gorm.DB) *GormDepositRepository {
	return &GormDepositRepository{db: db}
}

// FindByID loads a deposit with its member receipt ids
func (r *GormDepositRepository) FindByID(ctx context.Context, id uuid.UUID) (*treasury.Deposit, error) {
	var model models.DepositModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	members, err := r.memberIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	return model.ToDomain(members[id]), nil
}

// FindAll lists deposits newest first with the total count
func (r *GormDepositRepository) FindAll(ctx context.Context, filter shared.Filter) ([]treasury.Deposit, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.DepositModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.DepositModel
	if err := applyPage(r.db.WithContext(ctx), filter, MovementSortFields, "created_at").
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	ids := make([]uuid.UUID, len(rows))
	for i := range rows {
		ids[i] = rows[i].ID
	}
	members, err := r.memberIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	deposits := make([]treasury.Deposit, len(rows))
	for i := range rows {
		deposits[i] = *rows[i].ToDomain(members[rows[i].ID])
	}
	return deposits, total, nil
}

// Create inserts the deposit header. Members are linked by StampDeposit.
func (r *GormDepositRepository) Create(ctx context.Context, deposit *treasury.Deposit) error {
	return r.db.WithContext(ctx).Create(models.DepositModelFromDomain(deposit)).Error
}

type depositMember struct {
	ID        uuid.UUID
	DepositID uuid.UUID
}

func (r *GormDepositRepository) memberIDs(ctx context.Context, depositIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	out := make(map[uuid.UUID][]uuid.UUID, len(depositIDs))
	if len(depositIDs) == 0 {
		return out, nil
	}
	var rows []depositMember
	if err := r.db.WithContext(ctx).
		Model(&models.CashTransactionModel{}).
		Select("id", "deposit_id").
		Where("deposit_id IN ?", depositIDs).
		Order("recorded_at ASC").
		Order("id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.DepositID] = append(out[row.DepositID], row.ID)
	}
	return out, nil
}

// Ensure GormDepositRepository implements DepositRepository
var _ treasury.DepositRepository = (*GormDepositRepository)(nil)
