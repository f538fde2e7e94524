package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/accounting"
	"github.com/propledger/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormJournalRepository implements JournalRepository using GORM
type GormJournalRepository struct {
	db *gorm.DB
}

// NewGormJournalRepository creates a new GormJournalRepository
func NewGormJournalRepository(db *gorm.DB) *GormJournalRepository {
	return &GormJournalRepository{db: db}
}

func preloadPostings(db *gorm.DB) *gorm.DB {
	return db.Order("line_no ASC")
}

// FindByID loads an entry with its postings
func (r *GormJournalRepository) FindByID(ctx context.Context, id uuid.UUID) (*accounting.JournalEntry, error) {
	var model models.JournalEntryModel
	if err := r.db.WithContext(ctx).
		Preload("Postings", preloadPostings).
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists entries newest first with the total count
func (r *GormJournalRepository) FindAll(ctx context.Context, filter accounting.JournalFilter) ([]accounting.JournalEntry, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.JournalEntryModel{}).
		Scopes(r.filterScope(filter)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.JournalEntryModel
	query := r.db.WithContext(ctx).Scopes(r.filterScope(filter))
	if err := applyPage(query, filter.Filter, JournalSortFields, "created_at").
		Preload("Postings", preloadPostings).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	entries := make([]accounting.JournalEntry, len(rows))
	for i := range rows {
		entries[i] = *rows[i].ToDomain()
	}
	return entries, total, nil
}

func (r *GormJournalRepository) filterScope(filter accounting.JournalFilter) func(*gorm.DB) *gorm.DB {
	return func(query *gorm.DB) *gorm.DB {
		if filter.SourceType != nil {
			query = query.Where("source_type = ?", *filter.SourceType)
		}
		if filter.SourceID != nil {
			query = query.Where("source_id = ?", *filter.SourceID)
		}
		if filter.AccountID != nil {
			query = query.Where("id IN (?)", r.db.Model(&models.PostingModel{}).
				Select("entry_id").
				Where("account_id = ?", *filter.AccountID))
		}
		return query
	}
}

// CountPostingsByAccount counts postings that target an account
func (r *GormJournalRepository) CountPostingsByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PostingModel{}).
		Where("account_id = ?", accountID).
		Count(&count).Error
	return count, err
}

// Create inserts an entry and its postings
func (r *GormJournalRepository) Create(ctx context.Context, entry *accounting.JournalEntry) error {
	return r.db.WithContext(ctx).Create(models.JournalEntryModelFromDomain(entry)).Error
}

// Ensure GormJournalRepository implements JournalRepository
var _ accounting.JournalRepository = (*GormJournalRepository)(nil)
