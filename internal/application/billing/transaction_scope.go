package billing

import (
	"context"

	"github.com/propledger/backend/internal/domain/accounting"
	"github.com/propledger/backend/internal/domain/billing"
	"github.com/propledger/backend/internal/domain/property"
)

// TransactionScope provides transactional access to the billing repositories.
type TransactionScope interface {
	// Execute runs fn within a database transaction. If fn returns an error
	// the transaction is rolled back, otherwise it is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides repositories that share one transaction.
//
// Savepoint runs fn inside a nested savepoint of the current transaction. A
// failure inside fn rolls back only the savepoint, so the caller can recover
// from it (e.g. a unique-index race during generation) and continue.
type TransactionalRepositories interface {
	UnitRepo() property.UnitRepository
	ContractRepo() property.ContractRepository
	ConceptRepo() accounting.ConceptRepository
	BillableItemRepo() billing.BillableItemRepository
	Savepoint(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// NoOpTransactionScope runs functions against plain repositories without a
// transaction. It is used by unit tests.
type NoOpTransactionScope struct {
	unitRepo     property.UnitRepository
	contractRepo property.ContractRepository
	conceptRepo  accounting.ConceptRepository
	itemRepo     billing.BillableItemRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	unitRepo property.UnitRepository,
	contractRepo property.ContractRepository,
	conceptRepo accounting.ConceptRepository,
	itemRepo billing.BillableItemRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		unitRepo:     unitRepo,
		contractRepo: contractRepo,
		conceptRepo:  conceptRepo,
		itemRepo:     itemRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Savepoint runs the function directly.
func (s *NoOpTransactionScope) Savepoint(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) UnitRepo() property.UnitRepository { return s.unitRepo }
func (s *NoOpTransactionScope) ContractRepo() property.ContractRepository { return s.contractRepo }
func (s *NoOpTransactionScope) ConceptRepo() accounting.ConceptRepository { return s.conceptRepo }
func (s *NoOpTransactionScope) BillableItemRepo() billing.BillableItemRepository { return s.itemRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
