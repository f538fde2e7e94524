package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/accounting"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/propledger/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GormAccountRepository
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// FindByID finds an account by ID
func (r *GormAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*accounting.Account, error) {
	var model models.AccountModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode finds an account by its exact code
func (r *GormAccountRepository) FindByCode(ctx context.Context, code string) (*accounting.Account, error) {
	var model models.AccountModel
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCodes loads every account whose code is in codes
func (r *GormAccountRepository) FindByCodes(ctx context.Context, codes []string) ([]accounting.Account, error) {
	if len(codes) == 0 {
		return []accounting.Account{}, nil
	}
	var rows []models.AccountModel
	if err := r.db.WithContext(ctx).Where("code IN ?", codes).Find(&rows).Error; err != nil {
		return nil, err
	}
	return accountsToDomain(rows), nil
}

// FindByIDs loads every account whose id is in ids
func (r *GormAccountRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]accounting.Account, error) {
	if len(ids) == 0 {
		return []accounting.Account{}, nil
	}
	var rows []models.AccountModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	return accountsToDomain(rows), nil
}

// FindAll lists accounts ordered by code. Codes sort segment by segment as
// numbers, which SQL string ordering cannot express, so the page is cut
// after sorting in memory. A chart of accounts stays small.
func (r *GormAccountRepository) FindAll(ctx context.Context, filter accounting.AccountFilter) ([]accounting.Account, error) {
	query := r.db.WithContext(ctx).Model(&models.AccountModel{})
	if filter.Type != nil {
		query = query.Where("account_type = ?", *filter.Type)
	}
	if filter.IsGroup != nil {
		query = query.Where("is_group = ?", *filter.IsGroup)
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("code LIKE ? OR name LIKE ?", pattern, pattern)
	}

	var rows []models.AccountModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	accounts := accountsToDomain(rows)
	accounting.SortByCode(accounts)

	offset := filter.Offset()
	if offset >= len(accounts) {
		return []accounting.Account{}, nil
	}
	end := min(offset+filter.Limit(), len(accounts))
	return accounts[offset:end], nil
}

// ExistsByCode checks whether a code is taken
func (r *GormAccountRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AccountModel{}).
		Where("code = ?", code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindDescendants loads every account below code in the hierarchy
func (r *GormAccountRepository) FindDescendants(ctx context.Context, code string) ([]accounting.Account, error) {
	var rows []models.AccountModel
	if err := r.db.WithContext(ctx).Where("code LIKE ?", code+".%").Find(&rows).Error; err != nil {
		return nil, err
	}
	return accountsToDomain(rows), nil
}

// CountActiveChildren counts active accounts whose parent is id
func (r *GormAccountRepository) CountActiveChildren(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AccountModel{}).
		Where("parent_id = ? AND active = ?", id, true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an account
func (r *GormAccountRepository) Save(ctx context.Context, account *accounting.Account) error {
	model := models.AccountModelFromDomain(account)
	err := r.db.WithContext(ctx).Save(model).Error
	return translateWriteError(err, shared.NewDomainError(shared.CodeDuplicateCode,
		fmt.Sprintf("Account code %s already exists", account.Code)))
}

// SaveWithLock saves with optimistic locking
func (r *GormAccountRepository) SaveWithLock(ctx context.Context, account *accounting.Account) error {
	model := models.AccountModelFromDomain(account)
	result := r.db.WithContext(ctx).
		Model(&models.AccountModel{}).
		Where("id = ? AND version = ?", account.ID, account.Version-1).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

func accountsToDomain(rows []models.AccountModel) []accounting.Account {
	accounts := make([]accounting.Account, len(rows))
	for i := range rows {
		accounts[i] = *rows[i].ToDomain()
	}
	return accounts
}

// Ensure GormAccountRepository implements AccountRepository
var _ accounting.AccountRepository = (*GormAccountRepository)(nil)
