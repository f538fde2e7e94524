package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/propledger/backend/internal/domain/shared/valueobject"
)

// BillableItemFilter defines filtering options for billable item queries
type BillableItemFilter struct {
	shared.Filter
	UnitID    *uuid.UUID
	PersonID  *uuid.UUID
	ConceptID *uuid.UUID
	Period    *valueobject.Period
	Status    *ItemStatus // OVERDUE and PENDING are resolved against Now
	Now       time.Time
}

// BulkCancelCriteria selects the items a bulk rollback may cancel
type BulkCancelCriteria struct {
	Period    valueobject.Period
	ConceptID uuid.UUID
	UnitType  string // empty matches every unit type
}

// BillableItemRepository defines persistence for billable items
type BillableItemRepository interface {
	// FindByID finds an item by ID, returning nil when absent
	FindByID(ctx context.Context, id uuid.UUID) (*BillableItem, error)

	// FindByIDs loads the given items in no particular order
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]BillableItem, error)

	// FindAll lists items with filtering and returns the total count
	FindAll(ctx context.Context, filter BillableItemFilter) ([]BillableItem, int64, error)

	// FindOutstandingByUnit returns PENDING items with a positive balance for
	// a unit ordered by due date, then period, then id
	FindOutstandingByUnit(ctx context.Context, unitID uuid.UUID) ([]BillableItem, error)

	// ExistsActive checks for a non-cancelled item with the same tuple
	ExistsActive(ctx context.Context, unitID, conceptID uuid.UUID, period valueobject.Period) (bool, error)

	// Create inserts a new item. A tuple collision returns DUPLICATE_OBLIGATION.
	Create(ctx context.Context, item *BillableItem) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, item *BillableItem) error

	// CancelPendingBulk cancels PENDING items matching the criteria, partly
	// paid ones included, and returns how many rows changed
	CancelPendingBulk(ctx context.Context, criteria BulkCancelCriteria, reason string, at time.Time) (int64, error)
}
