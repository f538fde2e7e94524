package accounting

import (
	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Event types raised by the accounting context
const (
	EventTypeAccountCreated     = "AccountCreated"
	EventTypeAccountDeactivated = "AccountDeactivated"
	EventTypeConceptCreated     = "ConceptCreated"
	EventTypeExpenseTypeCreated = "ExpenseTypeCreated"
	EventTypeInstrumentCreated  = "InstrumentCreated"
	EventTypeJournalEntryPosted = "JournalEntryPosted"
)

// AccountCreatedEvent is raised when an account is added to the chart
type AccountCreatedEvent struct {
	shared.BaseDomainEvent
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	AccountType AccountType `json:"account_type"`
	IsGroup     bool        `json:"is_group"`
}

// EventType returns the event type name
func (e *AccountCreatedEvent) EventType() string { return EventTypeAccountCreated }

// NewAccountCreatedEvent creates a new AccountCreatedEvent
func NewAccountCreatedEvent(a *Account) *AccountCreatedEvent {
	return &AccountCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAccountCreated, "Account", a.ID),
		Code:            a.Code,
		Name:            a.Name,
		AccountType:     a.Type,
		IsGroup:         a.IsGroup,
	}
}

// AccountDeactivatedEvent is raised when an account is deactivated
type AccountDeactivatedEvent struct {
	shared.BaseDomainEvent
	Code string `json:"code"`
}

// EventType returns the event type name
func (e *AccountDeactivatedEvent) EventType() string { return EventTypeAccountDeactivated }

// NewAccountDeactivatedEvent creates a new AccountDeactivatedEvent
func NewAccountDeactivatedEvent(a *Account) *AccountDeactivatedEvent {
	return &AccountDeactivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAccountDeactivated, "Account", a.ID),
		Code:            a.Code,
	}
}

// ConceptCreatedEvent is raised when a billing concept is registered
type ConceptCreatedEvent struct {
	shared.BaseDomainEvent
	Name            string    `json:"name"`
	IncomeAccountID uuid.UUID `json:"income_account_id"`
}

// EventType returns the event type name
func (e *ConceptCreatedEvent) EventType() string { return EventTypeConceptCreated }

// NewConceptCreatedEvent creates a new ConceptCreatedEvent
func NewConceptCreatedEvent(c *Concept) *ConceptCreatedEvent {
	return &ConceptCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeConceptCreated, "Concept", c.ID),
		Name:            c.Name,
		IncomeAccountID: c.IncomeAccountID,
	}
}

// ExpenseTypeCreatedEvent is raised when an expense type is registered
type ExpenseTypeCreatedEvent struct {
	shared.BaseDomainEvent
	Name                  string    `json:"name"`
	ExpenseGroupAccountID uuid.UUID `json:"expense_group_account_id"`
}

// EventType returns the event type name
func (e *ExpenseTypeCreatedEvent) EventType() string { return EventTypeExpenseTypeCreated }

// NewExpenseTypeCreatedEvent creates a new ExpenseTypeCreatedEvent
func NewExpenseTypeCreatedEvent(et *ExpenseType) *ExpenseTypeCreatedEvent {
	return &ExpenseTypeCreatedEvent{
		BaseDomainEvent:       shared.NewBaseDomainEvent(EventTypeExpenseTypeCreated, "ExpenseType", et.ID),
		Name:                  et.Name,
		ExpenseGroupAccountID: et.ExpenseGroupAccountID,
	}
}

// InstrumentCreatedEvent is raised when a payment instrument is registered
type InstrumentCreatedEvent struct {
	shared.BaseDomainEvent
	Name string         `json:"name"`
	Kind InstrumentKind `json:"kind"`
}

// EventType returns the event type name
func (e *InstrumentCreatedEvent) EventType() string { return EventTypeInstrumentCreated }

// NewInstrumentCreatedEvent creates a new InstrumentCreatedEvent
func NewInstrumentCreatedEvent(pi *PaymentInstrument) *InstrumentCreatedEvent {
	return &InstrumentCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInstrumentCreated, "PaymentInstrument", pi.ID),
		Name:            pi.Name,
		Kind:            pi.Kind,
	}
}

// JournalEntryPostedEvent is raised for every balanced entry written to the journal
type JournalEntryPostedEvent struct {
	shared.BaseDomainEvent
	SourceType SourceType      `json:"source_type"`
	SourceID   uuid.UUID       `json:"source_id"`
	Total      decimal.Decimal `json:"total"`
}

// EventType returns the event type name
func (e *JournalEntryPostedEvent) EventType() string { return EventTypeJournalEntryPosted }

// NewJournalEntryPostedEvent creates a new JournalEntryPostedEvent
func NewJournalEntryPostedEvent(je *JournalEntry) *JournalEntryPostedEvent {
	debit, _ := je.Totals()
	return &JournalEntryPostedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeJournalEntryPosted, "JournalEntry", je.ID),
		SourceType:      je.SourceType,
		SourceID:        je.SourceID,
		Total:           debit,
	}
}
