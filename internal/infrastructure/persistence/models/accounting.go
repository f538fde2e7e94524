package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/accounting"
	"github.com/shopspring/decimal"
)

// AccountModel is the persistence model for the chart of accounts
type AccountModel struct {
	AggregateModel
	Code     string                 `gorm:"type:varchar(50);not null;uniqueIndex:ux_accounts_code"`
	Name     string                 `gorm:"type:varchar(200);not null"`
	Type     accounting.AccountType `gorm:"column:account_type;type:varchar(20);not null;index"`
	IsGroup  bool                   `gorm:"not null;default:false"`
	Active   bool                   `gorm:"not null;default:true"`
	ParentID *uuid.UUID             `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (AccountModel) TableName() string {
	return "accounts"
}

// ToDomain converts the persistence model to a domain Account
func (m *AccountModel) ToDomain() *accounting.Account {
	return &accounting.Account{
		BaseAggregateRoot: m.ToAggregateRoot(),
		Code:              m.Code,
		Name:              m.Name,
		Type:              m.Type,
		IsGroup:           m.IsGroup,
		Active:            m.Active,
		ParentID:          m.ParentID,
	}
}

// FromDomain populates the persistence model from a domain Account
func (m *AccountModel) FromDomain(a *accounting.Account) {
	m.FromDomainAggregateRoot(a.BaseAggregateRoot)
	m.Code = a.Code
	m.Name = a.Name
	m.Type = a.Type
	m.IsGroup = a.IsGroup
	m.Active = a.Active
	m.ParentID = a.ParentID
}

// AccountModelFromDomain creates a new persistence model from a domain Account
func AccountModelFromDomain(a *accounting.Account) *AccountModel {
	m := &AccountModel{}
	m.FromDomain(a)
	return m
}

// ConceptModel is the persistence model for billing concepts
type ConceptModel struct {
	AggregateModel
	Name            string    `gorm:"type:varchar(200);not null"`
	IncomeAccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	Active          bool      `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (ConceptModel) TableName() string {
	return "concepts"
}

// ToDomain converts the persistence model to a domain Concept
func (m *ConceptModel) ToDomain() *accounting.Concept {
	return &accounting.Concept{
		BaseAggregateRoot: m.ToAggregateRoot(),
		Name:              m.Name,
		IncomeAccountID:   m.IncomeAccountID,
		Active:            m.Active,
	}
}

// ConceptModelFromDomain creates a new persistence model from a domain Concept
func ConceptModelFromDomain(c *accounting.Concept) *ConceptModel {
	m := &ConceptModel{
		Name:            c.Name,
		IncomeAccountID: c.IncomeAccountID,
		Active:          c.Active,
	}
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	return m
}

// ExpenseTypeModel is the persistence model for expense types
type ExpenseTypeModel struct {
	AggregateModel
	Name                   string    `gorm:"type:varchar(200);not null"`
	ExpenseGroupAccountID  uuid.UUID `gorm:"type:uuid;not null;index"`
	RequiresDocumentNumber bool      `gorm:"not null;default:false"`
	Active                 bool      `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (ExpenseTypeModel) TableName() string {
	return "expense_types"
}

// ToDomain converts the persistence model to a domain ExpenseType
func (m *ExpenseTypeModel) ToDomain() *accounting.ExpenseType {
	return &accounting.ExpenseType{
		BaseAggregateRoot:      m.ToAggregateRoot(),
		Name:                   m.Name,
		ExpenseGroupAccountID:  m.ExpenseGroupAccountID,
		RequiresDocumentNumber: m.RequiresDocumentNumber,
		Active:                 m.Active,
	}
}

// ExpenseTypeModelFromDomain creates a new persistence model from a domain ExpenseType
func ExpenseTypeModelFromDomain(t *accounting.ExpenseType) *ExpenseTypeModel {
	m := &ExpenseTypeModel{
		Name:                   t.Name,
		ExpenseGroupAccountID:  t.ExpenseGroupAccountID,
		RequiresDocumentNumber: t.RequiresDocumentNumber,
		Active:                 t.Active,
	}
	m.FromDomainAggregateRoot(t.BaseAggregateRoot)
	return m
}

// PaymentInstrumentModel is the persistence model for payment instruments
type PaymentInstrumentModel struct {
	AggregateModel
	Name              string                    `gorm:"type:varchar(200);not null"`
	Kind              accounting.InstrumentKind `gorm:"type:varchar(10);not null;index"`
	LinkedAccountID   uuid.UUID                 `gorm:"type:uuid;not null;index"`
	RequiresReference bool                      `gorm:"not null;default:false"`
	SpendingLimit     decimal.Decimal           `gorm:"type:decimal(18,4);not null;default:0"`
	Active            bool                      `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (PaymentInstrumentModel) TableName() string {
	return "payment_instruments"
}

// ToDomain converts the persistence model to a domain PaymentInstrument
func (m *PaymentInstrumentModel) ToDomain() *accounting.PaymentInstrument {
	return &accounting.PaymentInstrument{
		BaseAggregateRoot: m.ToAggregateRoot(),
		Name:              m.Name,
		Kind:              m.Kind,
		LinkedAccountID:   m.LinkedAccountID,
		RequiresReference: m.RequiresReference,
		SpendingLimit:     m.SpendingLimit,
		Active:            m.Active,
	}
}

// PaymentInstrumentModelFromDomain creates a new persistence model from a domain PaymentInstrument
func PaymentInstrumentModelFromDomain(p *accounting.PaymentInstrument) *PaymentInstrumentModel {
	m := &PaymentInstrumentModel{
		Name:              p.Name,
		Kind:              p.Kind,
		LinkedAccountID:   p.LinkedAccountID,
		RequiresReference: p.RequiresReference,
		SpendingLimit:     p.SpendingLimit,
		Active:            p.Active,
	}
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	return m
}

// JournalEntryModel is the persistence model for journal entries
type JournalEntryModel struct {
	AggregateModel
	Date        time.Time             `gorm:"type:date;not null;index"`
	Description string                `gorm:"type:varchar(500);not null"`
	SourceType  accounting.SourceType `gorm:"type:varchar(30);not null;index:idx_journal_entries_source,priority:1"`
	SourceID    uuid.UUID             `gorm:"type:uuid;not null;index:idx_journal_entries_source,priority:2"`
	Postings    []PostingModel        `gorm:"foreignKey:EntryID;references:ID"`
}

// TableName returns the table name for GORM
func (JournalEntryModel) TableName() string {
	return "journal_entries"
}

// ToDomain converts the persistence model to a domain JournalEntry
func (m *JournalEntryModel) ToDomain() *accounting.JournalEntry {
	postings := make([]accounting.Posting, len(m.Postings))
	for i := range m.Postings {
		postings[i] = m.Postings[i].ToDomain()
	}
	return &accounting.JournalEntry{
		BaseAggregateRoot: m.ToAggregateRoot(),
		Date:              m.Date,
		Description:       m.Description,
		SourceType:        m.SourceType,
		SourceID:          m.SourceID,
		Postings:          postings,
	}
}

// JournalEntryModelFromDomain creates a new persistence model from a domain JournalEntry
func JournalEntryModelFromDomain(je *accounting.JournalEntry) *JournalEntryModel {
	m := &JournalEntryModel{
		Date:        je.Date,
		Description: je.Description,
		SourceType:  je.SourceType,
		SourceID:    je.SourceID,
		Postings:    make([]PostingModel, len(je.Postings)),
	}
	m.FromDomainAggregateRoot(je.BaseAggregateRoot)
	for i, p := range je.Postings {
		m.Postings[i] = PostingModelFromDomain(p)
	}
	return m
}

// PostingModel is one debit or credit line of a journal entry
type PostingModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	EntryID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountCode string          `gorm:"type:varchar(50);not null"`
	Debit       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Credit      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	LineNo      int             `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PostingModel) TableName() string {
	return "journal_postings"
}

// ToDomain converts the persistence model to a domain Posting
func (m *PostingModel) ToDomain() accounting.Posting {
	return accounting.Posting{
		ID:          m.ID,
		EntryID:     m.EntryID,
		AccountID:   m.AccountID,
		AccountCode: m.AccountCode,
		Debit:       m.Debit,
		Credit:      m.Credit,
		LineNo:      m.LineNo,
	}
}

// PostingModelFromDomain creates a posting model from a domain Posting
func PostingModelFromDomain(p accounting.Posting) PostingModel {
	return PostingModel{
		ID:          p.ID,
		EntryID:     p.EntryID,
		AccountID:   p.AccountID,
		AccountCode: p.AccountCode,
		Debit:       p.Debit,
		Credit:      p.Credit,
		LineNo:      p.LineNo,
	}
}
