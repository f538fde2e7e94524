package treasury

import (
	"context"

	"github.com/propledger/backend/internal/domain/accounting"
	"github.com/propledger/backend/internal/domain/billing"
	"github.com/propledger/backend/internal/domain/treasury"
)

// TransactionScope provides transactional access to the money-movement
// repositories together with the accounting and billing ones they update.
type TransactionScope interface {
	// Execute runs fn within a database transaction. If fn returns an error
	// the transaction is rolled back, otherwise it is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides repositories that share one transaction.
//
// A receipt touches billable items, the receipt itself and the journal, so
// every write of one operation goes through the same transaction.
type TransactionalRepositories interface {
	AccountRepo() accounting.AccountRepository
	ConceptRepo() accounting.ConceptRepository
	ExpenseTypeRepo() accounting.ExpenseTypeRepository
	InstrumentRepo() accounting.InstrumentRepository
	JournalRepo() accounting.JournalRepository
	BillableItemRepo() billing.BillableItemRepository
	CashTransactionRepo() treasury.CashTransactionRepository
	DepositRepo() treasury.DepositRepository
	TransferRepo() treasury.TransferRepository
	ExpenseRepo() treasury.ExpenseRepository
}

// Repositories groups the plain repositories used outside transactions and
// by NoOpTransactionScope
type Repositories struct {
	Accounts         accounting.AccountRepository
	Concepts         accounting.ConceptRepository
	ExpenseTypes     accounting.ExpenseTypeRepository
	Instruments      accounting.InstrumentRepository
	Journal          accounting.JournalRepository
	BillableItems    billing.BillableItemRepository
	CashTransactions treasury.CashTransactionRepository
	Deposits         treasury.DepositRepository
	Transfers        treasury.TransferRepository
	Expenses         treasury.ExpenseRepository
}

// NoOpTransactionScope runs functions against plain repositories without a
// transaction. It is used by unit tests.
type NoOpTransactionScope struct {
	repos Repositories
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(repos Repositories) *NoOpTransactionScope {
	return &NoOpTransactionScope{repos: repos}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) AccountRepo() accounting.AccountRepository {
	return s.repos.Accounts
}

func (s *NoOpTransactionScope) ConceptRepo() accounting.ConceptRepository {
	return s.repos.Concepts
}

func (s *NoOpTransactionScope) ExpenseTypeRepo() accounting.ExpenseTypeRepository {
	return s.repos.ExpenseTypes
}

func (s *NoOpTransactionScope) InstrumentRepo() accounting.InstrumentRepository {
	return s.repos.Instruments
}

func (s *NoOpTransactionScope) JournalRepo() accounting.JournalRepository {
	return s.repos.Journal
}

func (s *NoOpTransactionScope) BillableItemRepo() billing.BillableItemRepository {
	return s.repos.BillableItems
}

func (s *NoOpTransactionScope) CashTransactionRepo() treasury.CashTransactionRepository {
	return s.repos.CashTransactions
}

func (s *NoOpTransactionScope) DepositRepo() treasury.DepositRepository {
	return s.repos.Deposits
}

func (s *NoOpTransactionScope) TransferRepo() treasury.TransferRepository {
	return s.repos.Transfers
}

func (s *NoOpTransactionScope) ExpenseRepo() treasury.ExpenseRepository {
	return s.repos.Expenses
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
