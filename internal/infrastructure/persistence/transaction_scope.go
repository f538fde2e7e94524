package persistence

import (
	"context"

	appaccounting "github.com/propledger/backend/internal/application/accounting"
	appbilling "github.com/propledger/backend/internal/application/billing"
	apptreasury "github.com/propledger/backend/internal/application/treasury"
	"github.com/propledger/backend/internal/domain/accounting"
	"github.com/propledger/backend/internal/domain/billing"
	"github.com/propledger/backend/internal/domain/property"
	"github.com/propledger/backend/internal/domain/treasury"
	"gorm.io/gorm"
)

// GormTransactionScope runs a function inside one GORM transaction. The
// same scope serves the accounting, billing and treasury services; each
// sees the repositories its TransactionalRepositories interface names.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

func (s *GormTransactionScope) run(ctx context.Context, fn func(repos *gormTransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// Accounting adapts the scope to the accounting services.
func (s *GormTransactionScope) Accounting() appaccounting.TransactionScope {
	return accountingScope{s}
}

// Billing adapts the scope to the billing service.
func (s *GormTransactionScope) Billing() appbilling.TransactionScope {
	return billingScope{s}
}

// Treasury adapts the scope to the treasury services.
func (s *GormTransactionScope) Treasury() apptreasury.TransactionScope {
	return treasuryScope{s}
}

type accountingScope struct{ s *GormTransactionScope }

func (a accountingScope) Execute(ctx context.Context, fn func(repos appaccounting.TransactionalRepositories) error) error {
	return a.s.run(ctx, func(repos *gormTransactionalRepositories) error { return fn(repos) })
}

type billingScope struct{ s *GormTransactionScope }

func (b billingScope) Execute(ctx context.Context, fn func(repos appbilling.TransactionalRepositories) error) error {
	return b.s.run(ctx, func(repos *gormTransactionalRepositories) error { return fn(repos) })
}

type treasuryScope struct{ s *GormTransactionScope }

func (t treasuryScope) Execute(ctx context.Context, fn func(repos apptreasury.TransactionalRepositories) error) error {
	return t.s.run(ctx, func(repos *gormTransactionalRepositories) error { return fn(repos) })
}

// gormTransactionalRepositories hands out repositories bound to one transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) AccountRepo() accounting.AccountRepository {
	return NewGormAccountRepository(r.tx)
}

func (r *gormTransactionalRepositories) ConceptRepo() accounting.ConceptRepository {
	return NewGormConceptRepository(r.tx)
}

func (r *gormTransactionalRepositories) ExpenseTypeRepo() accounting.ExpenseTypeRepository {
	return NewGormExpenseTypeRepository(r.tx)
}

func (r *gormTransactionalRepositories) InstrumentRepo() accounting.InstrumentRepository {
	return NewGormInstrumentRepository(r.tx)
}

func (r *gormTransactionalRepositories) JournalRepo() accounting.JournalRepository {
	return NewGormJournalRepository(r.tx)
}

func (r *gormTransactionalRepositories) UnitRepo() property.UnitRepository {
	return NewGormUnitRepository(r.tx)
}

func (r *gormTransactionalRepositories) ContractRepo() property.ContractRepository {
	return NewGormContractRepository(r.tx)
}

func (r *gormTransactionalRepositories) BillableItemRepo() billing.BillableItemRepository {
	return NewGormBillableItemRepository(r.tx)
}

func (r *gormTransactionalRepositories) CashTransactionRepo() treasury.CashTransactionRepository {
	return NewGormCashTransactionRepository(r.tx)
}

func (r *gormTransactionalRepositories) DepositRepo() treasury.DepositRepository {
	return NewGormDepositRepository(r.tx)
}

func (r *gormTransactionalRepositories) TransferRepo() treasury.TransferRepository {
	return NewGormTransferRepository(r.tx)
}

func (r *gormTransactionalRepositories) ExpenseRepo() treasury.ExpenseRepository {
	return NewGormExpenseRepository(r.tx)
}

// Savepoint runs fn in a nested transaction, which GORM issues as a
// SAVEPOINT. A failure rolls back to the savepoint and leaves the outer
// transaction usable.
func (r *gormTransactionalRepositories) Savepoint(ctx context.Context, fn func(repos appbilling.TransactionalRepositories) error) error {
	return r.tx.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

var (
	_ appaccounting.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
	_ appbilling.TransactionalRepositories    = (*gormTransactionalRepositories)(nil)
	_ apptreasury.TransactionalRepositories   = (*gormTransactionalRepositories)(nil)
)
