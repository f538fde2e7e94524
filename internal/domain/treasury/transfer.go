package treasury

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/accounting"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Transfer moves money between two payment instruments
type Transfer struct {
	shared.BaseAggregateRoot
	Amount                  decimal.Decimal `json:"amount"`
	SourceInstrumentID      uuid.UUID       `json:"source_instrument_id"`
	DestinationInstrumentID uuid.UUID       `json:"destination_instrument_id"`
	Date                    time.Time       `json:"date"`
	Description             string          `json:"description"`
	JournalEntryID          *uuid.UUID      `json:"journal_entry_id,omitempty"`
}

// ValidateTransferRequest runs the checks that need no instrument lookups.
// SAME_INSTRUMENT wins over every other failure.
func ValidateTransferRequest(sourceID, destID uuid.UUID, amount decimal.Decimal) error {
	if sourceID == destID {
		return shared.NewDomainError(shared.CodeSameInstrument, "Source and destination instruments must differ")
	}
	if !amount.IsPositive() {
		return shared.NewDomainError(shared.CodeInvalidAmount, "Transfer amount must be positive")
	}
	return nil
}

// NewTransfer creates a transfer. The source instrument's spending limit caps
// the single movement.
func NewTransfer(source, dest *accounting.PaymentInstrument, amount decimal.Decimal, date time.Time, description string) (*Transfer, error) {
	if source == nil || dest == nil {
		return nil, shared.NewNotFoundError("Payment instrument")
	}
	if err := ValidateTransferRequest(source.ID, dest.ID, amount); err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, shared.NewValidationError("Transfer date is required")
	}
	if !dest.Active {
		return nil, shared.NewDomainError(shared.CodeInvalidState, "Destination instrument is inactive")
	}
	if err := source.CheckOutbound(amount); err != nil {
		return nil, err
	}

	t := &Transfer{
		BaseAggregateRoot:       shared.NewBaseAggregateRoot(),
		Amount:                  amount,
		SourceInstrumentID:      source.ID,
		DestinationInstrumentID: dest.ID,
		Date:                    date,
		Description:             strings.TrimSpace(description),
	}
	t.AddDomainEvent(NewTransferCompletedEvent(t))
	return t, nil
}

// AttachJournalEntry links the transfer to its accounting entry
func (t *Transfer) AttachJournalEntry(entryID uuid.UUID) {
	t.JournalEntryID = &entryID
}
