package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/property"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/propledger/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// UnitSortFields contains allowed sort fields for units
var UnitSortFields = map[string]string{
	"created_at": "created_at",
	"code":       "code",
	"unit_type":  "unit_type",
}

// GormUnitRepository implements UnitRepository using GORM
type GormUnitRepository struct {
	db *gorm.DB
}

// NewGormUnitRepository creates a new GormUnitRepository
func NewGormUnitRepository(db *gorm.DB) *GormUnitRepository {
	return &GormUnitRepository{db: db}
}

// FindByID finds a unit by ID
func (r *GormUnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Unit, error) {
	var model models.UnitModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists units, by code unless the filter says otherwise
func (r *GormUnitRepository) FindAll(ctx context.Context, filter property.UnitFilter) ([]property.Unit, error) {
	query := r.db.WithContext(ctx)
	if filter.UnitType != nil {
		query = query.Where("unit_type = ?", *filter.UnitType)
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("code LIKE ? OR description LIKE ?", pattern, pattern)
	}
	page := filter.Filter
	if page.OrderBy == "" {
		page.OrderBy, page.OrderDir = "code", "asc"
	}

	var rows []models.UnitModel
	if err := applyPage(query, page, UnitSortFields, "code").Find(&rows).Error; err != nil {
		return nil, err
	}
	units := make([]property.Unit, len(rows))
	for i := range rows {
		units[i] = *rows[i].ToDomain()
	}
	return units, nil
}

// ExistsByCode checks whether a unit code is taken
func (r *GormUnitRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.UnitModel{}).
		Where("code = ?", code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a unit
func (r *GormUnitRepository) Save(ctx context.Context, unit *property.Unit) error {
	err := r.db.WithContext(ctx).Save(models.UnitModelFromDomain(unit)).Error
	return translateWriteError(err, shared.NewDomainError(shared.CodeDuplicateCode,
		fmt.Sprintf("Unit code %s already exists", unit.Code)))
}

// GormContractRepository implements ContractRepository using GORM
type GormContractRepository struct {
	db *gorm.DB
}

// NewGormContractRepository creates a new GormContractRepository
func NewGormContractRepository(db *gorm.DB) *GormContractRepository {
	return &GormContractRepository{db: db}
}

// FindByID finds a contract by ID
func (r *GormContractRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Contract, error) {
	var model models.ContractModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUnit returns every contract of a unit, newest start first
func (r *GormContractRepository) FindByUnit(ctx context.Context, unitID uuid.UUID) ([]property.Contract, error) {
	var rows []models.ContractModel
	if err := r.db.WithContext(ctx).
		Where("unit_id = ?", unitID).
		Order("start_date DESC").
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return contractsToDomain(rows), nil
}

// FindActiveByUnits returns active contracts for the given units. Period
// overlap is decided by the caller.
func (r *GormContractRepository) FindActiveByUnits(ctx context.Context, unitIDs []uuid.UUID) ([]property.Contract, error) {
	if len(unitIDs) == 0 {
		return []property.Contract{}, nil
	}
	var rows []models.ContractModel
	if err := r.db.WithContext(ctx).
		Where("unit_id IN ? AND active = ?", unitIDs, true).
		Order("start_date DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return contractsToDomain(rows), nil
}

// Save creates or updates a contract
func (r *GormContractRepository) Save(ctx context.Context, contract *property.Contract) error {
	return r.db.WithContext(ctx).Save(models.ContractModelFromDomain(contract)).Error
}

func contractsToDomain(rows []models.ContractModel) []property.Contract {
	out := make([]property.Contract, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out
}

var (
	_ property.UnitRepository     = (*GormUnitRepository)(nil)
	_ property.ContractRepository = (*GormContractRepository)(nil)
)
