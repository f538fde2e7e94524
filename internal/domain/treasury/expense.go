package treasury

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/accounting"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Expense is a payment out of an instrument into an expense account
type Expense struct {
	shared.BaseAggregateRoot
	ExpenseTypeID  uuid.UUID       `json:"expense_type_id"`
	AccountID      uuid.UUID       `json:"account_id"`
	InstrumentID   uuid.UUID       `json:"instrument_id"`
	Amount         decimal.Decimal `json:"amount"`
	Date           time.Time       `json:"date"`
	Description    string          `json:"description"`
	DocumentNumber string          `json:"document_number,omitempty"`
	JournalEntryID *uuid.UUID      `json:"journal_entry_id,omitempty"`
}

// ExpenseInput groups the resolved collaborators of an expense
type ExpenseInput struct {
	Type           *accounting.ExpenseType
	GroupAccount   *accounting.Account
	Account        *accounting.Account
	Instrument     *accounting.PaymentInstrument
	Amount         decimal.Decimal
	Date           time.Time
	Description    string
	DocumentNumber string
}

// NewExpense validates account eligibility, the document requirement and the
// instrument spending limit.
func NewExpense(in ExpenseInput) (*Expense, error) {
	if in.Type == nil || in.GroupAccount == nil || in.Account == nil || in.Instrument == nil {
		return nil, shared.NewValidationError("Expense type, account and instrument are required")
	}
	if !in.Type.Active {
		return nil, shared.NewDomainError(shared.CodeInvalidState, "Expense type is inactive")
	}
	if !in.Amount.IsPositive() {
		return nil, shared.NewValidationError("Expense amount must be positive")
	}
	if in.Date.IsZero() {
		return nil, shared.NewValidationError("Expense date is required")
	}
	doc := strings.TrimSpace(in.DocumentNumber)
	if in.Type.RequiresDocumentNumber && doc == "" {
		return nil, shared.NewValidationError(fmt.Sprintf("Expense type %s requires a document number", in.Type.Name))
	}
	if !accounting.IsEligibleAccount(in.GroupAccount.Code, in.Account) {
		return nil, shared.NewDomainError(shared.CodeInvalidAccountBinding,
			fmt.Sprintf("Account %s is not eligible for expense type %s", in.Account.Code, in.Type.Name))
	}
	if err := in.Instrument.CheckOutbound(in.Amount); err != nil {
		return nil, err
	}

	e := &Expense{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ExpenseTypeID:     in.Type.ID,
		AccountID:         in.Account.ID,
		InstrumentID:      in.Instrument.ID,
		Amount:            in.Amount,
		Date:              in.Date,
		Description:       strings.TrimSpace(in.Description),
		DocumentNumber:    doc,
	}
	e.AddDomainEvent(NewExpenseRecordedEvent(e))
	return e, nil
}

// AttachJournalEntry links the expense to its accounting entry
func (e *Expense) AttachJournalEntry(entryID uuid.UUID) {
	e.JournalEntryID = &entryID
}
