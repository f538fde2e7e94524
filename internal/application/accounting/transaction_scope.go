package accounting

import (
	"context"

	"github.com/propledger/backend/internal/domain/accounting"
)

// TransactionScope provides transactional access to the chart of accounts
// and the registries bound to it.
type TransactionScope interface {
	// Execute runs fn within a database transaction. If fn returns an error
	// the transaction is rolled back, otherwise it is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides repositories that share one transaction
type TransactionalRepositories interface {
	AccountRepo() accounting.AccountRepository
	ConceptRepo() accounting.ConceptRepository
	ExpenseTypeRepo() accounting.ExpenseTypeRepository
	InstrumentRepo() accounting.InstrumentRepository
	JournalRepo() accounting.JournalRepository
}

// NoOpTransactionScope runs functions against plain repositories without a
// transaction. It is used by unit tests.
type NoOpTransactionScope struct {
	accountRepo     accounting.AccountRepository
	conceptRepo     accounting.ConceptRepository
	expenseTypeRepo accounting.ExpenseTypeRepository
	instrumentRepo  accounting.InstrumentRepository
	journalRepo     accounting.JournalRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	accountRepo accounting.AccountRepository,
	conceptRepo accounting.ConceptRepository,
	expenseTypeRepo accounting.ExpenseTypeRepository,
	instrumentRepo accounting.InstrumentRepository,
	journalRepo accounting.JournalRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		accountRepo:     accountRepo,
		conceptRepo:     conceptRepo,
		expenseTypeRepo: expenseTypeRepo,
		instrumentRepo:  instrumentRepo,
		journalRepo:     journalRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) AccountRepo() accounting.AccountRepository { return s.accountRepo }
func (s *NoOpTransactionScope) ConceptRepo() accounting.ConceptRepository { return s.conceptRepo }
func (s *NoOpTransactionScope) ExpenseTypeRepo() accounting.ExpenseTypeRepository { return s.expenseTypeRepo }
func (s *NoOpTransactionScope) InstrumentRepo() accounting.InstrumentRepository { return s.instrumentRepo }
func (s *NoOpTransactionScope) JournalRepo() accounting.JournalRepository { return s.journalRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
