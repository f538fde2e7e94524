package accounting

import (
	"context"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/shared"
)

// AccountFilter defines filtering options for chart-of-accounts queries
type AccountFilter struct {
	shared.Filter
	Type    *AccountType // Filter by account type
	IsGroup *bool        // Filter by group flag
	Active  *bool        // Filter by active flag
}

// AccountRepository defines persistence for the chart of accounts
type AccountRepository interface {
	// FindByID finds an account by ID, returning nil when absent
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)

	// FindByCode finds an account by its exact code
	FindByCode(ctx context.Context, code string) (*Account, error)

	// FindByCodes loads every account whose code is in codes
	FindByCodes(ctx context.Context, codes []string) ([]Account, error)

	// FindByIDs loads every account whose id is in ids
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Account, error)

	// FindAll lists accounts ordered by code (numeric-aware)
	FindAll(ctx context.Context, filter AccountFilter) ([]Account, error)

	// ExistsByCode checks whether a code is taken
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// FindDescendants loads every account whose code has code as a proper
	// segment prefix
	FindDescendants(ctx context.Context, code string) ([]Account, error)

	// CountActiveChildren counts active accounts whose parent is id
	CountActiveChildren(ctx context.Context, id uuid.UUID) (int64, error)

	// Save creates or updates an account
	Save(ctx context.Context, account *Account) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, account *Account) error
}

// ConceptRepository defines persistence for billing concepts
type ConceptRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Concept, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Concept, error)
	FindAll(ctx context.Context, activeOnly bool) ([]Concept, error)
	CountByIncomeAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
	Save(ctx context.Context, concept *Concept) error
}

// ExpenseTypeRepository defines persistence for expense types
type ExpenseTypeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ExpenseType, error)
	FindAll(ctx context.Context, activeOnly bool) ([]ExpenseType, error)
	CountByGroupAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
	Save(ctx context.Context, expenseType *ExpenseType) error
}

// InstrumentRepository defines persistence for payment instruments
type InstrumentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentInstrument, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]PaymentInstrument, error)
	FindAll(ctx context.Context, kind *InstrumentKind, activeOnly bool) ([]PaymentInstrument, error)
	CountByLinkedAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
	Save(ctx context.Context, instrument *PaymentInstrument) error
}

// JournalFilter defines filtering options for journal queries
type JournalFilter struct {
	shared.Filter
	SourceType *SourceType
	SourceID   *uuid.UUID
	AccountID  *uuid.UUID
}

// JournalRepository persists journal entries with their postings
type JournalRepository interface {
	// FindByID loads an entry with its postings
	FindByID(ctx context.Context, id uuid.UUID) (*JournalEntry, error)

	// FindAll lists entries newest first
	FindAll(ctx context.Context, filter JournalFilter) ([]JournalEntry, int64, error)

	// CountPostingsByAccount counts postings that target an account
	CountPostingsByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)

	// Create inserts an entry and its postings. Entries are never updated.
	Create(ctx context.Context, entry *JournalEntry) error
}
