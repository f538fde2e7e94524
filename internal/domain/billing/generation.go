package billing

import (
	"github.com/google/uuid"
)

// SkipReason explains why generation did not create an item for a unit
type SkipReason string

const (
	SkipDuplicate        SkipReason = "DUPLICATE"
	SkipNoActiveContract SkipReason = "NO_ACTIVE_CONTRACT"
)

// SkippedUnit records a unit left out of a generation run
type SkippedUnit struct {
	UnitID uuid.UUID  `json:"unit_id"`
	Period string     `json:"period"`
	Reason SkipReason `json:"reason"`
}

// GenerationResult is the aggregate outcome of a bulk generation run
type GenerationResult struct {
	Created      int            `json:"created"`
	Skipped      int            `json:"skipped"`
	CreatedItems []BillableItem `json:"-"`
	SkippedUnits []SkippedUnit  `json:"skipped_units"`
}

// AddCreated records a created item
func (r *GenerationResult) AddCreated(item BillableItem) {
	r.Created++
	r.CreatedItems = append(r.CreatedItems, item)
}

// AddSkipped records a skipped unit
func (r *GenerationResult) AddSkipped(unitID uuid.UUID, period string, reason SkipReason) {
	r.Skipped++
	r.SkippedUnits = append(r.SkippedUnits, SkippedUnit{UnitID: unitID, Period: period, Reason: reason})
}

// MinRollbackReasonLength is the default minimum audit reason for bulk rollback
const MinRollbackReasonLength = 5

// MaxRetroactiveMonths is the default cap on back-billing runs
const MaxRetroactiveMonths = 24
