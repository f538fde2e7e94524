package treasury

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DepositStatus is the state of a deposit. Deposits are created closed.
type DepositStatus string

const DepositStatusClosed DepositStatus = "CLOSED"

// Deposit batches un-deposited receipts into one bank deposit. Amount is
// always the exact sum of the member receipts.
type Deposit struct {
	shared.BaseAggregateRoot
	Bank                    string          `json:"bank"`
	DestinationAccount      string          `json:"destination_account"`
	ReferenceNumber         string          `json:"reference_number"`
	Date                    time.Time       `json:"date"`
	Amount                  decimal.Decimal `json:"amount"`
	MemberTransactionIDs    []uuid.UUID     `json:"member_transaction_ids"`
	Status                  DepositStatus   `json:"status"`
	CreatedBy               uuid.UUID       `json:"created_by"`
	DestinationInstrumentID *uuid.UUID      `json:"destination_instrument_id,omitempty"` // BANK instrument receiving the cash
	JournalEntryID          *uuid.UUID      `json:"journal_entry_id,omitempty"`
}

// DepositDetails carries the caller-supplied fields of a deposit
type DepositDetails struct {
	Bank                    string
	DestinationAccount      string
	ReferenceNumber         string
	Date                    time.Time
	DestinationInstrumentID *uuid.UUID
}

// NewDeposit closes a deposit over members, computing its amount. Every
// member must be depositable.
func NewDeposit(actorID uuid.UUID, details DepositDetails, members []CashTransaction) (*Deposit, error) {
	if actorID == uuid.Nil {
		return nil, shared.NewValidationError("Acting user is required to create a deposit")
	}
	if len(members) == 0 {
		return nil, shared.NewDomainError(shared.CodeEmptySelection, "At least one transaction must be selected")
	}
	if strings.TrimSpace(details.Bank) == "" {
		return nil, shared.NewValidationError("Bank is required")
	}
	if strings.TrimSpace(details.DestinationAccount) == "" {
		return nil, shared.NewValidationError("Destination account is required")
	}
	if details.Date.IsZero() {
		return nil, shared.NewValidationError("Deposit date is required")
	}

	d := &Deposit{
		BaseAggregateRoot:    shared.NewBaseAggregateRoot(),
		Bank:                 strings.TrimSpace(details.Bank),
		DestinationAccount:   strings.TrimSpace(details.DestinationAccount),
		ReferenceNumber:      strings.TrimSpace(details.ReferenceNumber),
		Date:                 details.Date,
		Amount:               decimal.Zero,
		MemberTransactionIDs: make([]uuid.UUID, 0, len(members)),
		Status:               DepositStatusClosed,
		CreatedBy:            actorID,
	}
	d.DestinationInstrumentID = details.DestinationInstrumentID

	seen := make(map[uuid.UUID]bool, len(members))
	for i := range members {
		m := &members[i]
		if seen[m.ID] {
			return nil, shared.NewValidationError(fmt.Sprintf("Transaction %s selected twice", m.ID))
		}
		seen[m.ID] = true
		if !m.IsDepositable() {
			return nil, shared.NewDomainError(shared.CodeAlreadyDeposited,
				fmt.Sprintf("Transaction %s is already deposited or cancelled", m.ID))
		}
		d.Amount = d.Amount.Add(m.Amount)
		d.MemberTransactionIDs = append(d.MemberTransactionIDs, m.ID)
	}

	d.AddDomainEvent(NewDepositCreatedEvent(d))
	return d, nil
}

// AttachJournalEntry links the deposit to its accounting entry
func (d *Deposit) AttachJournalEntry(entryID uuid.UUID) {
	d.JournalEntryID = &entryID
}
