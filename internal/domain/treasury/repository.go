package treasury

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/accounting"
	"github.com/propledger/backend/internal/domain/shared"
)

// CashTransactionFilter defines filtering options for receipt queries
type CashTransactionFilter struct {
	shared.Filter
	UnitID         *uuid.UUID
	PayerPersonID  *uuid.UUID
	InstrumentID   *uuid.UUID
	InstrumentKind *accounting.InstrumentKind
	DepositID      *uuid.UUID
	Cancelled      *bool
	Undeposited    bool // only rows with no deposit
	FromDate       *time.Time
	ToDate         *time.Time
}

// CashTransactionRepository defines persistence for receipts
type CashTransactionRepository interface {
	// FindByID loads a receipt with its allocations, nil when absent
	FindByID(ctx context.Context, id uuid.UUID) (*CashTransaction, error)

	// FindByIDs loads receipts with their allocations
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]CashTransaction, error)

	// FindAll lists receipts newest first with the total count
	FindAll(ctx context.Context, filter CashTransactionFilter) ([]CashTransaction, int64, error)

	// Create inserts a receipt and its allocations
	Create(ctx context.Context, tx *CashTransaction) error

	// SaveWithLock saves header changes with optimistic locking
	SaveWithLock(ctx context.Context, tx *CashTransaction) error

	// StampDeposit sets deposit_id on every listed receipt that is still
	// undeposited and not cancelled, returning the number of rows stamped
	StampDeposit(ctx context.Context, depositID uuid.UUID, ids []uuid.UUID) (int64, error)
}

// DepositRepository defines persistence for deposits
type DepositRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Deposit, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Deposit, int64, error)
	Create(ctx context.Context, deposit *Deposit) error
}

// TransferRepository defines persistence for transfers
type TransferRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transfer, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Transfer, int64, error)
	Create(ctx context.Context, transfer *Transfer) error
}

// ExpenseRepository defines persistence for expenses
type ExpenseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Expense, int64, error)
	Create(ctx context.Context, expense *Expense) error
}
