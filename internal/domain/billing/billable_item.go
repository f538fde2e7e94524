package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/propledger/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// ItemStatus is the lifecycle state of a billable item. OVERDUE is never
// stored; it is derived from PENDING at read time.
type ItemStatus string

const (
	ItemStatusPending   ItemStatus = "PENDING"
	ItemStatusOverdue   ItemStatus = "OVERDUE"
	ItemStatusPaid      ItemStatus = "PAID"
	ItemStatusCancelled ItemStatus = "CANCELLED"
)

// IsValid checks if the status is a valid ItemStatus
func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusPending, ItemStatusOverdue, ItemStatusPaid, ItemStatusCancelled:
		return true
	}
	return false
}

// IsStorable reports whether the status may be persisted
func (s ItemStatus) IsStorable() bool {
	return s == ItemStatusPending || s == ItemStatusPaid || s == ItemStatusCancelled
}

// String returns the string representation of ItemStatus
func (s ItemStatus) String() string {
	return string(s)
}

// IsTerminal returns true if no further transitions are possible
func (s ItemStatus) IsTerminal() bool {
	return s == ItemStatusCancelled
}

// BillableItem is one obligation: one unit, one concept, one period.
// 0 <= BalancePending <= BaseAmount holds after every mutation.
type BillableItem struct {
	shared.BaseAggregateRoot
	PersonID       *uuid.UUID         `json:"person_id,omitempty"`
	UnitID         uuid.UUID          `json:"unit_id"`
	ConceptID      uuid.UUID          `json:"concept_id"`
	Period         valueobject.Period `json:"period"`
	DueDate        time.Time          `json:"due_date"`
	BaseAmount     decimal.Decimal    `json:"base_amount"`
	BalancePending decimal.Decimal    `json:"balance_pending"`
	Status         ItemStatus         `json:"status"`
	AutoPayBlocked bool               `json:"auto_pay_blocked"`
	CancelReason   string             `json:"cancel_reason,omitempty"`
	CancelledAt    *time.Time         `json:"cancelled_at,omitempty"`
}

// NewBillableItem creates a PENDING item whose balance equals its base amount
func NewBillableItem(unitID uuid.UUID, personID *uuid.UUID, conceptID uuid.UUID, period valueobject.Period, baseAmount decimal.Decimal, dueDate time.Time) (*BillableItem, error) {
	if unitID == uuid.Nil {
		return nil, shared.NewValidationError("Unit is required")
	}
	if conceptID == uuid.Nil {
		return nil, shared.NewValidationError("Concept is required")
	}
	if period.IsZero() {
		return nil, shared.NewValidationError("Period is required")
	}
	if !baseAmount.IsPositive() {
		return nil, shared.NewValidationError("Base amount must be positive")
	}
	if dueDate.IsZero() {
		return nil, shared.NewValidationError("Due date is required")
	}
	if personID != nil && *personID == uuid.Nil {
		personID = nil
	}

	item := &BillableItem{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PersonID:          personID,
		UnitID:            unitID,
		ConceptID:         conceptID,
		Period:            period,
		DueDate:           dueDate,
		BaseAmount:        baseAmount,
		BalancePending:    baseAmount,
		Status:            ItemStatusPending,
	}
	item.AddDomainEvent(NewBillableItemCreatedEvent(item))
	return item, nil
}

// EffectiveStatus returns the status as seen at now, deriving OVERDUE
func (b *BillableItem) EffectiveStatus(now time.Time) ItemStatus {
	if b.Status == ItemStatusPending && b.BalancePending.IsPositive() && IsPastDue(b.DueDate, now) {
		return ItemStatusOverdue
	}
	return b.Status
}

// IsPastDue reports whether dueDate falls on a day before now's day
func IsPastDue(dueDate, now time.Time) bool {
	return dueDate.Before(StartOfDay(now))
}

// StartOfDay truncates t to midnight UTC
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsOutstanding reports whether the item still owes money
func (b *BillableItem) IsOutstanding() bool {
	return b.Status == ItemStatusPending && b.BalancePending.IsPositive()
}

// IsAutoPayable reports whether automatic receipt allocation may pick the item
func (b *BillableItem) IsAutoPayable() bool {
	return b.IsOutstanding() && !b.AutoPayBlocked
}

// HasPayments reports whether any amount has been applied
func (b *BillableItem) HasPayments() bool {
	return b.BalancePending.LessThan(b.BaseAmount)
}

// ApplyPayment decrements the pending balance, flipping to PAID at zero
func (b *BillableItem) ApplyPayment(amount decimal.Decimal) error {
	if !b.IsOutstanding() {
		return shared.NewDomainError(shared.CodeInvalidState,
			fmt.Sprintf("Cannot apply payment to item in %s status", b.Status))
	}
	if !amount.IsPositive() {
		return shared.NewValidationError("Applied amount must be positive")
	}
	if amount.GreaterThan(b.BalancePending) {
		return shared.NewDomainError(shared.CodeOverApplication,
			fmt.Sprintf("Applied amount %s exceeds pending balance %s", amount.StringFixed(2), b.BalancePending.StringFixed(2)))
	}

	b.BalancePending = b.BalancePending.Sub(amount)
	if b.BalancePending.IsZero() {
		b.Status = ItemStatusPaid
		b.AddDomainEvent(NewBillableItemPaidEvent(b))
	}
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
	return nil
}

// ReversePayment restores a previously applied amount. PAID items return to PENDING.
func (b *BillableItem) ReversePayment(amount decimal.Decimal) error {
	if b.Status == ItemStatusCancelled {
		return shared.NewDomainError(shared.CodeInvalidState, "Cannot reverse payment on a cancelled item")
	}
	if !amount.IsPositive() {
		return shared.NewValidationError("Reversed amount must be positive")
	}
	restored := b.BalancePending.Add(amount)
	if restored.GreaterThan(b.BaseAmount) {
		return shared.NewValidationError(
			fmt.Sprintf("Reversal of %s would exceed base amount %s", amount.StringFixed(2), b.BaseAmount.StringFixed(2)))
	}

	b.BalancePending = restored
	b.Status = ItemStatusPending
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
	return nil
}

// CanCancel reports whether the item may be cancelled: PENDING or OVERDUE,
// with or without partial payments
func (b *BillableItem) CanCancel() bool {
	return b.Status == ItemStatusPending
}

// Cancel zeroes the balance and moves the item to the terminal CANCELLED state.
// Amounts already received stay with their receipts.
func (b *BillableItem) Cancel(reason string) error {
	if !b.CanCancel() {
		return shared.NewDomainError(shared.CodeInvalidState,
			fmt.Sprintf("Cannot cancel item in %s status", b.Status))
	}

	now := time.Now()
	b.BalancePending = decimal.Zero
	b.Status = ItemStatusCancelled
	b.CancelReason = strings.TrimSpace(reason)
	b.CancelledAt = &now
	b.UpdatedAt = now
	b.IncrementVersion()
	b.AddDomainEvent(NewBillableItemCancelledEvent(b))
	return nil
}

// UpdateDueDate changes the due date of a non-cancelled item
func (b *BillableItem) UpdateDueDate(dueDate time.Time) error {
	if b.Status.IsTerminal() {
		return shared.NewDomainError(shared.CodeInvalidState, "Cannot modify a cancelled item")
	}
	if dueDate.IsZero() {
		return shared.NewValidationError("Due date is required")
	}
	b.DueDate = dueDate
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
	return nil
}

// SetAutoPayBlocked toggles exclusion from automatic receipt allocation
func (b *BillableItem) SetAutoPayBlocked(blocked bool) error {
	if b.Status.IsTerminal() {
		return shared.NewDomainError(shared.CodeInvalidState, "Cannot modify a cancelled item")
	}
	if b.AutoPayBlocked == blocked {
		return nil
	}
	b.AutoPayBlocked = blocked
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
	return nil
}
