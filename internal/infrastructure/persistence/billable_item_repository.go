package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/billing"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/propledger/backend/internal/domain/shared/valueobject"
	"github.com/propledger/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormBillableItemRepository implements BillableItemRepository using GORM
type GormBillableItemRepository struct {
	db *gorm.DB
}

// NewGormBillableItemRepository creates a new GormBillableItemRepository
func NewGormBillableItemRepository(db *gorm.DB) *GormBillableItemRepository {
	return &GormBillableItemRepository{db: db}
}

// FindByID finds a billable item by ID
func (r *GormBillableItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.BillableItem, error) {
	var model models.BillableItemModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDs loads the given items
func (r *GormBillableItemRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]billing.BillableItem, error) {
	if len(ids) == 0 {
		return []billing.BillableItem{}, nil
	}
	var rows []models.BillableItemModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	return itemsToDomain(rows), nil
}

// FindAll lists items with filtering and returns the total count
func (r *GormBillableItemRepository) FindAll(ctx context.Context, filter billing.BillableItemFilter) ([]billing.BillableItem, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.BillableItemModel{}).
		Scopes(itemFilterScope(filter)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.BillableItemModel
	query := r.db.WithContext(ctx).Scopes(itemFilterScope(filter))
	if err := applyPage(query, filter.Filter, BillableItemSortFields, "created_at").
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return itemsToDomain(rows), total, nil
}

// itemFilterScope applies the filter. OVERDUE is never stored, so the
// PENDING and OVERDUE filters split stored PENDING rows on the due date.
func itemFilterScope(filter billing.BillableItemFilter) func(*gorm.DB) *gorm.DB {
	return func(query *gorm.DB) *gorm.DB {
		if filter.UnitID != nil {
			query = query.Where("unit_id = ?", *filter.UnitID)
		}
		if filter.PersonID != nil {
			query = query.Where("person_id = ?", *filter.PersonID)
		}
		if filter.ConceptID != nil {
			query = query.Where("concept_id = ?", *filter.ConceptID)
		}
		if filter.Period != nil {
			query = query.Where("period = ?", filter.Period.String())
		}
		if filter.Status == nil {
			return query
		}

		now := filter.Now
		if now.IsZero() {
			now = time.Now()
		}
		today := billing.StartOfDay(now)
		switch *filter.Status {
		case billing.ItemStatusOverdue:
			query = query.Where("status = ? AND balance_pending > 0 AND due_date < ?", billing.ItemStatusPending, today)
		case billing.ItemStatusPending:
			query = query.Where("status = ? AND (balance_pending = 0 OR due_date >= ?)", billing.ItemStatusPending, today)
		default:
			query = query.Where("status = ?", *filter.Status)
		}
		return query
	}
}

// FindOutstandingByUnit returns PENDING items with a positive balance,
// oldest obligation first
func (r *GormBillableItemRepository) FindOutstandingByUnit(ctx context.Context, unitID uuid.UUID) ([]billing.BillableItem, error) {
	var rows []models.BillableItemModel
	if err := r.db.WithContext(ctx).
		Where("unit_id = ? AND status = ? AND balance_pending > 0", unitID, billing.ItemStatusPending).
		Order("due_date ASC").
		Order("period ASC").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return itemsToDomain(rows), nil
}

// ExistsActive checks for a non-cancelled item with the same tuple
func (r *GormBillableItemRepository) ExistsActive(ctx context.Context, unitID, conceptID uuid.UUID, period valueobject.Period) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.BillableItemModel{}).
		Where("unit_id = ? AND concept_id = ? AND period = ? AND status <> ?",
			unitID, conceptID, period.String(), billing.ItemStatusCancelled).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a new item. The partial unique index turns a tuple race
// into DUPLICATE_OBLIGATION.
func (r *GormBillableItemRepository) Create(ctx context.Context, item *billing.BillableItem) error {
	err := r.db.WithContext(ctx).Create(models.BillableItemModelFromDomain(item)).Error
	return translateWriteError(err, shared.NewDomainError(shared.CodeDuplicateObligation,
		fmt.Sprintf("An active item already exists for this unit and concept in %s", item.Period)))
}

// SaveWithLock saves with optimistic locking
func (r *GormBillableItemRepository) SaveWithLock(ctx context.Context, item *billing.BillableItem) error {
	model := models.BillableItemModelFromDomain(item)
	result := r.db.WithContext(ctx).
		Model(&models.BillableItemModel{}).
		Where("id = ? AND version = ?", item.ID, item.Version-1).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return translateWriteError(result.Error, nil)
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// CancelPendingBulk cancels the PENDING items of one generation run in a
// single statement, partly paid ones included. PAID items keep their state.
func (r *GormBillableItemRepository) CancelPendingBulk(ctx context.Context, criteria billing.BulkCancelCriteria, reason string, at time.Time) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.BillableItemModel{}).
		Where("period = ? AND concept_id = ? AND status = ?",
			criteria.Period.String(), criteria.ConceptID, billing.ItemStatusPending)
	if criteria.UnitType != "" {
		query = query.Where("unit_id IN (?)", r.db.Model(&models.UnitModel{}).
			Select("id").
			Where("unit_type = ?", criteria.UnitType))
	}

	result := query.Updates(map[string]any{
		"status":          billing.ItemStatusCancelled,
		"balance_pending": decimal.Zero,
		"cancel_reason":   reason,
		"cancelled_at":    at,
		"updated_at":      at,
		"version":         gorm.Expr("version + 1"),
	})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func itemsToDomain(rows []models.BillableItemModel) []billing.BillableItem {
	items := make([]billing.BillableItem, len(rows))
	for i := range rows {
		items[i] = *rows[i].ToDomain()
	}
	return items
}

// Ensure GormBillableItemRepository implements BillableItemRepository
var _ billing.BillableItemRepository = (*GormBillableItemRepository)(nil)
