package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Event types raised by the billing context
const (
	EventTypeBillableItemCreated   = "BillableItemCreated"
	EventTypeBillableItemPaid      = "BillableItemPaid"
	EventTypeBillableItemCancelled = "BillableItemCancelled"
	EventTypeBillablesGenerated    = "BillablesGenerated"
	EventTypeBillablesRolledBack   = "BillablesRolledBack"
)

// BillableItemCreatedEvent is raised when an obligation is created
type BillableItemCreatedEvent struct {
	shared.BaseDomainEvent
	UnitID     uuid.UUID       `json:"unit_id"`
	ConceptID  uuid.UUID       `json:"concept_id"`
	Period     string          `json:"period"`
	BaseAmount decimal.Decimal `json:"base_amount"`
}

// EventType returns the event type name
func (e *BillableItemCreatedEvent) EventType() string { return EventTypeBillableItemCreated }

// NewBillableItemCreatedEvent creates a new BillableItemCreatedEvent
func NewBillableItemCreatedEvent(b *BillableItem) *BillableItemCreatedEvent {
	return &BillableItemCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBillableItemCreated, "BillableItem", b.ID),
		UnitID:          b.UnitID,
		ConceptID:       b.ConceptID,
		Period:          b.Period.String(),
		BaseAmount:      b.BaseAmount,
	}
}

// BillableItemPaidEvent is raised when an item's balance reaches zero
type BillableItemPaidEvent struct {
	shared.BaseDomainEvent
	UnitID     uuid.UUID       `json:"unit_id"`
	BaseAmount decimal.Decimal `json:"base_amount"`
}

// EventType returns the event type name
func (e *BillableItemPaidEvent) EventType() string { return EventTypeBillableItemPaid }

// NewBillableItemPaidEvent creates a new BillableItemPaidEvent
func NewBillableItemPaidEvent(b *BillableItem) *BillableItemPaidEvent {
	return &BillableItemPaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBillableItemPaid, "BillableItem", b.ID),
		UnitID:          b.UnitID,
		BaseAmount:      b.BaseAmount,
	}
}

// BillableItemCancelledEvent is raised when an item is cancelled individually
type BillableItemCancelledEvent struct {
	shared.BaseDomainEvent
	Reason      string    `json:"reason"`
	CancelledAt time.Time `json:"cancelled_at"`
}

// EventType returns the event type name
func (e *BillableItemCancelledEvent) EventType() string { return EventTypeBillableItemCancelled }

// NewBillableItemCancelledEvent creates a new BillableItemCancelledEvent
func NewBillableItemCancelledEvent(b *BillableItem) *BillableItemCancelledEvent {
	at := time.Now()
	if b.CancelledAt != nil {
		at = *b.CancelledAt
	}
	return &BillableItemCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBillableItemCancelled, "BillableItem", b.ID),
		Reason:          b.CancelReason,
		CancelledAt:     at,
	}
}

// BillablesGeneratedEvent summarizes a bulk generation run
type BillablesGeneratedEvent struct {
	shared.BaseDomainEvent
	Period  string `json:"period"`
	Created int    `json:"created"`
	Skipped int    `json:"skipped"`
}

// EventType returns the event type name
func (e *BillablesGeneratedEvent) EventType() string { return EventTypeBillablesGenerated }

// NewBillablesGeneratedEvent creates a new BillablesGeneratedEvent keyed by concept
func NewBillablesGeneratedEvent(conceptID uuid.UUID, period string, result *GenerationResult) *BillablesGeneratedEvent {
	return &BillablesGeneratedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBillablesGenerated, "Concept", conceptID),
		Period:          period,
		Created:         result.Created,
		Skipped:         result.Skipped,
	}
}

// BillablesRolledBackEvent summarizes a bulk rollback
type BillablesRolledBackEvent struct {
	shared.BaseDomainEvent
	Period         string `json:"period"`
	UnitType       string `json:"unit_type,omitempty"`
	Reason         string `json:"reason"`
	CancelledCount int64  `json:"cancelled_count"`
}

// EventType returns the event type name
func (e *BillablesRolledBackEvent) EventType() string { return EventTypeBillablesRolledBack }

// NewBillablesRolledBackEvent creates a new BillablesRolledBackEvent keyed by concept
func NewBillablesRolledBackEvent(conceptID uuid.UUID, period, unitType, reason string, count int64) *BillablesRolledBackEvent {
	return &BillablesRolledBackEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBillablesRolledBack, "Concept", conceptID),
		Period:          period,
		UnitType:        unitType,
		Reason:          reason,
		CancelledCount:  count,
	}
}
