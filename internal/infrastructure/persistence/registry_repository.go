package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/accounting"
	"github.com/propledger/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormConceptRepository implements ConceptRepository using GORM
type GormConceptRepository struct {
	db *gorm.DB
}

// NewGormConceptRepository creates a new GormConceptRepository
func NewGormConceptRepository(db *gorm.DB) *GormConceptRepository {
	return &GormConceptRepository{db: db}
}

// FindByID finds a concept by ID
func (r *GormConceptRepository) FindByID(ctx context.Context, id uuid.UUID) (*accounting.Concept, error) {
	var model models.ConceptModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDs loads the given concepts
func (r *GormConceptRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]accounting.Concept, error) {
	if len(ids) == 0 {
		return []accounting.Concept{}, nil
	}
	var rows []models.ConceptModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	return conceptsToDomain(rows), nil
}

// FindAll lists concepts by name
func (r *GormConceptRepository) FindAll(ctx context.Context, activeOnly bool) ([]accounting.Concept, error) {
	query := r.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	var rows []models.ConceptModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return conceptsToDomain(rows), nil
}

// CountByIncomeAccount counts concepts bound to an income account
func (r *GormConceptRepository) CountByIncomeAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ConceptModel{}).
		Where("income_account_id = ?", accountID).
		Count(&count).Error
	return count, err
}

// Save creates or updates a concept
func (r *GormConceptRepository) Save(ctx context.Context, concept *accounting.Concept) error {
	return r.db.WithContext(ctx).Save(models.ConceptModelFromDomain(concept)).Error
}

func conceptsToDomain(rows []models.ConceptModel) []accounting.Concept {
	out := make([]accounting.Concept, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out
}

// GormExpenseTypeRepository implements ExpenseTypeRepository using GORM
type GormExpenseTypeRepository struct {
	db *gorm.DB
}

// NewGormExpenseTypeRepository creates a new GormExpenseTypeRepository
func NewGormExpenseTypeRepository(db *gorm.DB) *GormExpenseTypeRepository {
	return &GormExpenseTypeRepository{db: db}
}

// FindByID finds an expense type by ID
func (r *GormExpenseTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*accounting.ExpenseType, error) {
	var model models.ExpenseTypeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists expense types by name
func (r *GormExpenseTypeRepository) FindAll(ctx context.Context, activeOnly bool) ([]accounting.ExpenseType, error) {
	query := r.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	var rows []models.ExpenseTypeModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]accounting.ExpenseType, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// CountByGroupAccount counts expense types bound to a group account
func (r *GormExpenseTypeRepository) CountByGroupAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ExpenseTypeModel{}).
		Where("expense_group_account_id = ?", accountID).
		Count(&count).Error
	return count, err
}

// Save creates or updates an expense type
func (r *GormExpenseTypeRepository) Save(ctx context.Context, expenseType *accounting.ExpenseType) error {
	return r.db.WithContext(ctx).Save(models.ExpenseTypeModelFromDomain(expenseType)).Error
}

// GormInstrumentRepository implements InstrumentRepository using GORM
type GormInstrumentRepository struct {
	db *gorm.DB
}

// NewGormInstrumentRepository creates a new GormInstrumentRepository
func NewGormInstrumentRepository(db *gorm.DB) *GormInstrumentRepository {
	return &GormInstrumentRepository{db: db}
}

// FindByID finds a payment instrument by ID
func (r *GormInstrumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*accounting.PaymentInstrument, error) {
	var model models.PaymentInstrumentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDs loads the given instruments
func (r *GormInstrumentRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]accounting.PaymentInstrument, error) {
	if len(ids) == 0 {
		return []accounting.PaymentInstrument{}, nil
	}
	var rows []models.PaymentInstrumentModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	return instrumentsToDomain(rows), nil
}

// FindAll lists instruments by name, optionally of one kind
func (r *GormInstrumentRepository) FindAll(ctx context.Context, kind *accounting.InstrumentKind, activeOnly bool) ([]accounting.PaymentInstrument, error) {
	query := r.db.WithContext(ctx).Order("name ASC")
	if kind != nil {
		query = query.Where("kind = ?", *kind)
	}
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	var rows []models.PaymentInstrumentModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return instrumentsToDomain(rows), nil
}

// CountByLinkedAccount counts instruments bound to an asset account
func (r *GormInstrumentRepository) CountByLinkedAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PaymentInstrumentModel{}).
		Where("linked_account_id = ?", accountID).
		Count(&count).Error
	return count, err
}

// Save creates or updates an instrument
func (r *GormInstrumentRepository) Save(ctx context.Context, instrument *accounting.PaymentInstrument) error {
	return r.db.WithContext(ctx).Save(models.PaymentInstrumentModelFromDomain(instrument)).Error
}

func instrumentsToDomain(rows []models.PaymentInstrumentModel) []accounting.PaymentInstrument {
	out := make([]accounting.PaymentInstrument, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out
}

var (
	_ accounting.ConceptRepository     = (*GormConceptRepository)(nil)
	_ accounting.ExpenseTypeRepository = (*GormExpenseTypeRepository)(nil)
	_ accounting.InstrumentRepository  = (*GormInstrumentRepository)(nil)
)
