package treasury

import (
	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Event types raised by the treasury context
const (
	EventTypeCashTransactionRecorded  = "CashTransactionRecorded"
	EventTypeCashTransactionCancelled = "CashTransactionCancelled"
	EventTypeDepositCreated           = "DepositCreated"
	EventTypeTransferCompleted        = "TransferCompleted"
	EventTypeExpenseRecorded          = "ExpenseRecorded"
)

// CashTransactionRecordedEvent is raised when a receipt is applied
type CashTransactionRecordedEvent struct {
	shared.BaseDomainEvent
	UnitID       uuid.UUID       `json:"unit_id"`
	InstrumentID uuid.UUID       `json:"instrument_id"`
	Amount       decimal.Decimal `json:"amount"`
	ItemCount    int             `json:"item_count"`
}

// EventType returns the event type name
func (e *CashTransactionRecordedEvent) EventType() string { return EventTypeCashTransactionRecorded }

// NewCashTransactionRecordedEvent creates a new CashTransactionRecordedEvent
func NewCashTransactionRecordedEvent(tx *CashTransaction) *CashTransactionRecordedEvent {
	return &CashTransactionRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCashTransactionRecorded, "CashTransaction", tx.ID),
		UnitID:          tx.UnitID,
		InstrumentID:    tx.InstrumentID,
		Amount:          tx.Amount,
		ItemCount:       len(tx.Allocations),
	}
}

// CashTransactionCancelledEvent is raised when a receipt is cancelled
type CashTransactionCancelledEvent struct {
	shared.BaseDomainEvent
	Amount decimal.Decimal `json:"amount"`
}

// EventType returns the event type name
func (e *CashTransactionCancelledEvent) EventType() string {
	return EventTypeCashTransactionCancelled
}

// NewCashTransactionCancelledEvent creates a new CashTransactionCancelledEvent
func NewCashTransactionCancelledEvent(tx *CashTransaction) *CashTransactionCancelledEvent {
	return &CashTransactionCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCashTransactionCancelled, "CashTransaction", tx.ID),
		Amount:          tx.Amount,
	}
}

// DepositCreatedEvent is raised when a deposit is closed
type DepositCreatedEvent struct {
	shared.BaseDomainEvent
	Amount      decimal.Decimal `json:"amount"`
	MemberCount int             `json:"member_count"`
	CreatedBy   uuid.UUID       `json:"created_by"`
}

// EventType returns the event type name
func (e *DepositCreatedEvent) EventType() string { return EventTypeDepositCreated }

// NewDepositCreatedEvent creates a new DepositCreatedEvent
func NewDepositCreatedEvent(d *Deposit) *DepositCreatedEvent {
	return &DepositCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDepositCreated, "Deposit", d.ID),
		Amount:          d.Amount,
		MemberCount:     len(d.MemberTransactionIDs),
		CreatedBy:       d.CreatedBy,
	}
}

// TransferCompletedEvent is raised when a transfer is posted
type TransferCompletedEvent struct {
	shared.BaseDomainEvent
	SourceInstrumentID      uuid.UUID       `json:"source_instrument_id"`
	DestinationInstrumentID uuid.UUID       `json:"destination_instrument_id"`
	Amount                  decimal.Decimal `json:"amount"`
}

// EventType returns the event type name
func (e *TransferCompletedEvent) EventType() string { return EventTypeTransferCompleted }

// NewTransferCompletedEvent creates a new TransferCompletedEvent
func NewTransferCompletedEvent(t *Transfer) *TransferCompletedEvent {
	return &TransferCompletedEvent{
		BaseDomainEvent:         shared.NewBaseDomainEvent(EventTypeTransferCompleted, "Transfer", t.ID),
		SourceInstrumentID:      t.SourceInstrumentID,
		DestinationInstrumentID: t.DestinationInstrumentID,
		Amount:                  t.Amount,
	}
}

// ExpenseRecordedEvent is raised when an expense is paid
type ExpenseRecordedEvent struct {
	shared.BaseDomainEvent
	ExpenseTypeID uuid.UUID       `json:"expense_type_id"`
	Amount        decimal.Decimal `json:"amount"`
}

// EventType returns the event type name
func (e *ExpenseRecordedEvent) EventType() string { return EventTypeExpenseRecorded }

// NewExpenseRecordedEvent creates a new ExpenseRecordedEvent
func NewExpenseRecordedEvent(e *Expense) *ExpenseRecordedEvent {
	return &ExpenseRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeExpenseRecorded, "Expense", e.ID),
		ExpenseTypeID:   e.ExpenseTypeID,
		Amount:          e.Amount,
	}
}
