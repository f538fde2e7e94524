package treasury

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Allocation is one (billable item, applied amount) pair of a receipt
type Allocation struct {
	ID                uuid.UUID       `json:"id"`
	CashTransactionID uuid.UUID       `json:"cash_transaction_id"`
	BillableItemID    uuid.UUID       `json:"billable_item_id"`
	ConceptID         uuid.UUID       `json:"concept_id"`
	Amount            decimal.Decimal `json:"amount"`
	Seq               int             `json:"seq"`
}

// CashTransaction is a receipt applied against billable items. The ordered
// allocations always sum to Amount.
type CashTransaction struct {
	shared.BaseAggregateRoot
	PayerPersonID  uuid.UUID       `json:"payer_person_id"`
	UnitID         uuid.UUID       `json:"unit_id"`
	InstrumentID   uuid.UUID       `json:"instrument_id"`
	Amount         decimal.Decimal `json:"amount"`
	Reference      string          `json:"reference,omitempty"`
	Allocations    []Allocation    `json:"allocations"`
	Timestamp      time.Time       `json:"timestamp"`
	Cancelled      bool            `json:"cancelled"`
	CancelledAt    *time.Time      `json:"cancelled_at,omitempty"`
	DepositID      *uuid.UUID      `json:"deposit_id,omitempty"`
	JournalEntryID *uuid.UUID      `json:"journal_entry_id,omitempty"`
}

// NewCashTransaction creates a receipt with no allocations yet
func NewCashTransaction(payerPersonID, unitID, instrumentID uuid.UUID, amount decimal.Decimal, reference string, timestamp time.Time) (*CashTransaction, error) {
	if payerPersonID == uuid.Nil {
		return nil, shared.NewValidationError("Payer is required")
	}
	if unitID == uuid.Nil {
		return nil, shared.NewValidationError("Unit is required")
	}
	if instrumentID == uuid.Nil {
		return nil, shared.NewValidationError("Instrument is required")
	}
	if !amount.IsPositive() {
		return nil, shared.NewValidationError("Receipt amount must be positive")
	}
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	return &CashTransaction{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PayerPersonID:     payerPersonID,
		UnitID:            unitID,
		InstrumentID:      instrumentID,
		Amount:            amount,
		Reference:         strings.TrimSpace(reference),
		Allocations:       make([]Allocation, 0),
		Timestamp:         timestamp,
	}, nil
}

// AllocatedTotal returns the sum of all allocations
func (tx *CashTransaction) AllocatedTotal() decimal.Decimal {
	total := decimal.Zero
	for _, a := range tx.Allocations {
		total = total.Add(a.Amount)
	}
	return total
}

// AddAllocation appends an allocation, refusing to exceed the receipt amount
func (tx *CashTransaction) AddAllocation(billableItemID, conceptID uuid.UUID, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return shared.NewValidationError("Allocation amount must be positive")
	}
	for _, a := range tx.Allocations {
		if a.BillableItemID == billableItemID {
			return shared.NewValidationError(fmt.Sprintf("Item %s is allocated twice", billableItemID))
		}
	}
	if tx.AllocatedTotal().Add(amount).GreaterThan(tx.Amount) {
		return shared.NewDomainError(shared.CodeOverApplication,
			fmt.Sprintf("Allocations would exceed the receipt amount %s", tx.Amount.StringFixed(2)))
	}
	tx.Allocations = append(tx.Allocations, Allocation{
		ID:                uuid.New(),
		CashTransactionID: tx.ID,
		BillableItemID:    billableItemID,
		ConceptID:         conceptID,
		Amount:            amount,
		Seq:               len(tx.Allocations) + 1,
	})
	return nil
}

// Seal checks that the allocations account for the full amount and raises
// the receipt event. It must be called once, after the last allocation.
func (tx *CashTransaction) Seal() error {
	if len(tx.Allocations) == 0 {
		return shared.NewValidationError("Receipt does not apply to any outstanding item")
	}
	allocated := tx.AllocatedTotal()
	if !allocated.Equal(tx.Amount) {
		return shared.NewDomainError(shared.CodeOverApplication,
			fmt.Sprintf("Receipt amount %s exceeds the applicable balance %s",
				tx.Amount.StringFixed(2), allocated.StringFixed(2)))
	}
	tx.AddDomainEvent(NewCashTransactionRecordedEvent(tx))
	return nil
}

// Cancel marks the receipt cancelled. Deposited receipts are immutable.
func (tx *CashTransaction) Cancel() error {
	if tx.DepositID != nil {
		return shared.NewDomainError(shared.CodeAlreadyDeposited,
			"Cash transaction belongs to a closed deposit and cannot be cancelled")
	}
	if tx.Cancelled {
		return shared.NewDomainError(shared.CodeInvalidState, "Cash transaction is already cancelled")
	}
	now := time.Now()
	tx.Cancelled = true
	tx.CancelledAt = &now
	tx.UpdatedAt = now
	tx.IncrementVersion()
	tx.AddDomainEvent(NewCashTransactionCancelledEvent(tx))
	return nil
}

// IsDepositable reports whether the receipt may join a deposit
func (tx *CashTransaction) IsDepositable() bool {
	return tx.DepositID == nil && !tx.Cancelled
}

// AttachJournalEntry links the receipt to its accounting entry
func (tx *CashTransaction) AttachJournalEntry(entryID uuid.UUID) {
	tx.JournalEntryID = &entryID
}
