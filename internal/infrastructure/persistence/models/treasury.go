package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/treasury"
	"github.com/shopspring/decimal"
)

// CashTransactionModel is the persistence model for receipts
type CashTransactionModel struct {
	AggregateModel
	PayerPersonID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	UnitID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	InstrumentID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount         decimal.Decimal `gorm:"type:decimal(18,4);not null;check:chk_cash_transactions_amount,amount > 0"`
	Reference      string          `gorm:"type:varchar(100)"`
	Timestamp      time.Time       `gorm:"column:recorded_at;not null;index"`
	Cancelled      bool            `gorm:"not null;default:false;index"`
	CancelledAt    *time.Time
	DepositID      *uuid.UUID        `gorm:"type:uuid;index"`
	JournalEntryID *uuid.UUID        `gorm:"type:uuid"`
	Allocations    []AllocationModel `gorm:"foreignKey:CashTransactionID;references:ID"`
}

// TableName returns the table name for GORM
func (CashTransactionModel) TableName() string {
	return "cash_transactions"
}

// ToDomain converts the persistence model to a domain CashTransaction
func (m *CashTransactionModel) ToDomain() *treasury.CashTransaction {
	allocations := make([]treasury.Allocation, len(m.Allocations))
	for i := range m.Allocations {
		allocations[i] = m.Allocations[i].ToDomain()
	}
	return &treasury.CashTransaction{
		BaseAggregateRoot: m.ToAggregateRoot(),
		PayerPersonID:     m.PayerPersonID,
		UnitID:            m.UnitID,
		InstrumentID:      m.InstrumentID,
		Amount:            m.Amount,
		Reference:         m.Reference,
		Allocations:       allocations,
		Timestamp:         m.Timestamp,
		Cancelled:         m.Cancelled,
		CancelledAt:       m.CancelledAt,
		DepositID:         m.DepositID,
		JournalEntryID:    m.JournalEntryID,
	}
}

// FromDomain populates the persistence model from a domain CashTransaction.
// Allocations are copied too; SaveWithLock omits them on update.
func (m *CashTransactionModel) FromDomain(tx *treasury.CashTransaction) {
	m.FromDomainAggregateRoot(tx.BaseAggregateRoot)
	m.PayerPersonID = tx.PayerPersonID
	m.UnitID = tx.UnitID
	m.InstrumentID = tx.InstrumentID
	m.Amount = tx.Amount
	m.Reference = tx.Reference
	m.Timestamp = tx.Timestamp
	m.Cancelled = tx.Cancelled
	m.CancelledAt = tx.CancelledAt
	m.DepositID = tx.DepositID
	m.JournalEntryID = tx.JournalEntryID
	m.Allocations = make([]AllocationModel, len(tx.Allocations))
	for i, a := range tx.Allocations {
		m.Allocations[i] = AllocationModelFromDomain(a)
	}
}

// CashTransactionModelFromDomain creates a new persistence model from a domain CashTransaction
func CashTransactionModelFromDomain(tx *treasury.CashTransaction) *CashTransactionModel {
	m := &CashTransactionModel{}
	m.FromDomain(tx)
	return m
}

// AllocationModel is one (billable item, amount) pair of a receipt
type AllocationModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key"`
	CashTransactionID uuid.UUID       `gorm:"type:uuid;not null;index"`
	BillableItemID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ConceptID         uuid.UUID       `gorm:"type:uuid;not null"`
	Amount            decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Seq               int             `gorm:"not null"`
}

// TableName returns the table name for GORM
func (AllocationModel) TableName() string {
	return "cash_transaction_allocations"
}

// ToDomain converts the persistence model to a domain Allocation
func (m *AllocationModel) ToDomain() treasury.Allocation {
	return treasury.Allocation{
		ID:                m.ID,
		CashTransactionID: m.CashTransactionID,
		BillableItemID:    m.BillableItemID,
		ConceptID:         m.ConceptID,
		Amount:            m.Amount,
		Seq:               m.Seq,
	}
}

// AllocationModelFromDomain creates an allocation model from a domain Allocation
func AllocationModelFromDomain(a treasury.Allocation) AllocationModel {
	return AllocationModel{
		ID:                a.ID,
		CashTransactionID: a.CashTransactionID,
		BillableItemID:    a.BillableItemID,
		ConceptID:         a.ConceptID,
		Amount:            a.Amount,
		Seq:               a.Seq,
	}
}

// DepositModel is the persistence model for deposits. Member receipts are
// the cash_transactions rows stamped with the deposit id.
type DepositModel struct {
	AggregateModel
	Bank                    string                 `gorm:"type:varchar(100);not null"`
	DestinationAccount      string                 `gorm:"type:varchar(100);not null"`
	ReferenceNumber         string                 `gorm:"type:varchar(100)"`
	Date                    time.Time              `gorm:"type:date;not null;index"`
	Amount                  decimal.Decimal        `gorm:"type:decimal(18,4);not null"`
	Status                  treasury.DepositStatus `gorm:"type:varchar(20);not null;default:'CLOSED'"`
	CreatedBy               uuid.UUID              `gorm:"type:uuid;not null"`
	DestinationInstrumentID *uuid.UUID             `gorm:"type:uuid"`
	JournalEntryID          *uuid.UUID             `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (DepositModel) TableName() string {
	return "deposits"
}

// ToDomain converts the persistence model to a domain Deposit with the given members
func (m *DepositModel) ToDomain(memberIDs []uuid.UUID) *treasury.Deposit {
	if memberIDs == nil {
		memberIDs = []uuid.UUID{}
	}
	return &treasury.Deposit{
		BaseAggregateRoot:       m.ToAggregateRoot(),
		Bank:                    m.Bank,
		DestinationAccount:      m.DestinationAccount,
		ReferenceNumber:         m.ReferenceNumber,
		Date:                    m.Date,
		Amount:                  m.Amount,
		MemberTransactionIDs:    memberIDs,
		Status:                  m.Status,
		CreatedBy:               m.CreatedBy,
		DestinationInstrumentID: m.DestinationInstrumentID,
		JournalEntryID:          m.JournalEntryID,
	}
}

// DepositModelFromDomain creates a new persistence model from a domain Deposit
func DepositModelFromDomain(d *treasury.Deposit) *DepositModel {
	m := &DepositModel{
		Bank:                    d.Bank,
		DestinationAccount:      d.DestinationAccount,
		ReferenceNumber:         d.ReferenceNumber,
		Date:                    d.Date,
		Amount:                  d.Amount,
		Status:                  d.Status,
		CreatedBy:               d.CreatedBy,
		DestinationInstrumentID: d.DestinationInstrumentID,
		JournalEntryID:          d.JournalEntryID,
	}
	m.FromDomainAggregateRoot(d.BaseAggregateRoot)
	return m
}

// TransferModel is the persistence model for instrument transfers
type TransferModel struct {
	AggregateModel
	Amount                  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	SourceInstrumentID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	DestinationInstrumentID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date                    time.Time       `gorm:"type:date;not null;index"`
	Description             string          `gorm:"type:varchar(500)"`
	JournalEntryID          *uuid.UUID      `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (TransferModel) TableName() string {
	return "transfers"
}

// ToDomain converts the persistence model to a domain Transfer
func (m *TransferModel) ToDomain() *treasury.Transfer {
	return &treasury.Transfer{
		BaseAggregateRoot:       m.ToAggregateRoot(),
		Amount:                  m.Amount,
		SourceInstrumentID:      m.SourceInstrumentID,
		DestinationInstrumentID: m.DestinationInstrumentID,
		Date:                    m.Date,
		Description:             m.Description,
		JournalEntryID:          m.JournalEntryID,
	}
}

// TransferModelFromDomain creates a new persistence model from a domain Transfer
func TransferModelFromDomain(t *treasury.Transfer) *TransferModel {
	m := &TransferModel{
		Amount:                  t.Amount,
		SourceInstrumentID:      t.SourceInstrumentID,
		DestinationInstrumentID: t.DestinationInstrumentID,
		Date:                    t.Date,
		Description:             t.Description,
		JournalEntryID:          t.JournalEntryID,
	}
	m.FromDomainAggregateRoot(t.BaseAggregateRoot)
	return m
}

// ExpenseModel is the persistence model for expenses
type ExpenseModel struct {
	AggregateModel
	ExpenseTypeID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	InstrumentID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Date           time.Time       `gorm:"type:date;not null;index"`
	Description    string          `gorm:"type:varchar(500)"`
	DocumentNumber string          `gorm:"type:varchar(100)"`
	JournalEntryID *uuid.UUID      `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToDomain converts the persistence model to a domain Expense
func (m *ExpenseModel) ToDomain() *treasury.Expense {
	return &treasury.Expense{
		BaseAggregateRoot: m.ToAggregateRoot(),
		ExpenseTypeID:     m.ExpenseTypeID,
		AccountID:         m.AccountID,
		InstrumentID:      m.InstrumentID,
		Amount:            m.Amount,
		Date:              m.Date,
		Description:       m.Description,
		DocumentNumber:    m.DocumentNumber,
		JournalEntryID:    m.JournalEntryID,
	}
}

// ExpenseModelFromDomain creates a new persistence model from a domain Expense
func ExpenseModelFromDomain(e *treasury.Expense) *ExpenseModel {
	m := &ExpenseModel{
		ExpenseTypeID:  e.ExpenseTypeID,
		AccountID:      e.AccountID,
		InstrumentID:   e.InstrumentID,
		Amount:         e.Amount,
		Date:           e.Date,
		Description:    e.Description,
		DocumentNumber: e.DocumentNumber,
		JournalEntryID: e.JournalEntryID,
	}
	m.FromDomainAggregateRoot(e.BaseAggregateRoot)
	return m
}

// AllModels lists every model in dependency order, used by AutoMigrate in tests
func AllModels() []any {
	return []any{
		&AccountModel{},
		&ConceptModel{},
		&ExpenseTypeModel{},
		&PaymentInstrumentModel{},
		&JournalEntryModel{},
		&PostingModel{},
		&UnitModel{},
		&ContractModel{},
		&BillableItemModel{},
		&CashTransactionModel{},
		&AllocationModel{},
		&DepositModel{},
		&TransferModel{},
		&ExpenseModel{},
	}
}
