package treasury

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/accounting"
	"github.com/propledger/backend/internal/domain/billing"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/propledger/backend/internal/domain/shared/valueobject"
	"github.com/propledger/backend/internal/domain/treasury"
	"github.com/stretchr/testify/mock"
)

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*accounting.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounting.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByCode(ctx context.Context, code string) (*accounting.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounting.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByCodes(ctx context.Context, codes []string) ([]accounting.Account, error) {
	args := m.Called(ctx, codes)
	return args.Get(0).([]accounting.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]accounting.Account, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]accounting.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAll(ctx context.Context, filter accounting.AccountFilter) ([]accounting.Account, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]accounting.Account), args.Error(1)
}

func (m *MockAccountRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) FindDescendants(ctx context.Context, code string) ([]accounting.Account, error) {
	args := m.Called(ctx, code)
	return args.Get(0).([]accounting.Account), args.Error(1)
}

func (m *MockAccountRepository) CountActiveChildren(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) Save(ctx context.Context, account *accounting.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) SaveWithLock(ctx context.Context, account *accounting.Account) error {
	return m.Called(ctx, account).Error(0)
}

type MockConceptRepository struct {
	mock.Mock
}

func (m *MockConceptRepository) FindByID(ctx context.Context, id uuid.UUID) (*accounting.Concept, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounting.Concept), args.Error(1)
}

func (m *MockConceptRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]accounting.Concept, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]accounting.Concept), args.Error(1)
}

func (m *MockConceptRepository) FindAll(ctx context.Context, activeOnly bool) ([]accounting.Concept, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]accounting.Concept), args.Error(1)
}

func (m *MockConceptRepository) CountByIncomeAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockConceptRepository) Save(ctx context.Context, concept *accounting.Concept) error {
	return m.Called(ctx, concept).Error(0)
}

type MockExpenseTypeRepository struct {
	mock.Mock
}

func (m *MockExpenseTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*accounting.ExpenseType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounting.ExpenseType), args.Error(1)
}

func (m *MockExpenseTypeRepository) FindAll(ctx context.Context, activeOnly bool) ([]accounting.ExpenseType, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]accounting.ExpenseType), args.Error(1)
}

func (m *MockExpenseTypeRepository) CountByGroupAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockExpenseTypeRepository) Save(ctx context.Context, expenseType *accounting.ExpenseType) error {
	return m.Called(ctx, expenseType).Error(0)
}

type MockInstrumentRepository struct {
	mock.Mock
}

func (m *MockInstrumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*accounting.PaymentInstrument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounting.PaymentInstrument), args.Error(1)
}

func (m *MockInstrumentRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]accounting.PaymentInstrument, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]accounting.PaymentInstrument), args.Error(1)
}

func (m *MockInstrumentRepository) FindAll(ctx context.Context, kind *accounting.InstrumentKind, activeOnly bool) ([]accounting.PaymentInstrument, error) {
	args := m.Called(ctx, kind, activeOnly)
	return args.Get(0).([]accounting.PaymentInstrument), args.Error(1)
}

func (m *MockInstrumentRepository) CountByLinkedAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInstrumentRepository) Save(ctx context.Context, instrument *accounting.PaymentInstrument) error {
	return m.Called(ctx, instrument).Error(0)
}

type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) FindByID(ctx context.Context, id uuid.UUID) (*accounting.JournalEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounting.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindAll(ctx context.Context, filter accounting.JournalFilter) ([]accounting.JournalEntry, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]accounting.JournalEntry), args.Get(1).(int64), args.Error(2)
}

func (m *MockJournalRepository) CountPostingsByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJournalRepository) Create(ctx context.Context, entry *accounting.JournalEntry) error {
	return m.Called(ctx, entry).Error(0)
}

type MockBillableItemRepository struct {
	mock.Mock
}

func (m *MockBillableItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.BillableItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.BillableItem), args.Error(1)
}

func (m *MockBillableItemRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]billing.BillableItem, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]billing.BillableItem), args.Error(1)
}

func (m *MockBillableItemRepository) FindAll(ctx context.Context, filter billing.BillableItemFilter) ([]billing.BillableItem, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]billing.BillableItem), args.Get(1).(int64), args.Error(2)
}

func (m *MockBillableItemRepository) FindOutstandingByUnit(ctx context.Context, unitID uuid.UUID) ([]billing.BillableItem, error) {
	args := m.Called(ctx, unitID)
	return args.Get(0).([]billing.BillableItem), args.Error(1)
}

func (m *MockBillableItemRepository) ExistsActive(ctx context.Context, unitID, conceptID uuid.UUID, period valueobject.Period) (bool, error) {
	args := m.Called(ctx, unitID, conceptID, period)
	return args.Bool(0), args.Error(1)
}

func (m *MockBillableItemRepository) Create(ctx context.Context, item *billing.BillableItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockBillableItemRepository) SaveWithLock(ctx context.Context, item *billing.BillableItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockBillableItemRepository) CancelPendingBulk(ctx context.Context, criteria billing.BulkCancelCriteria, reason string, at time.Time) (int64, error) {
	args := m.Called(ctx, criteria, reason, at)
	return args.Get(0).(int64), args.Error(1)
}

type MockCashTransactionRepository struct {
	mock.Mock
}

func (m *MockCashTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*treasury.CashTransaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*treasury.CashTransaction), args.Error(1)
}

func (m *MockCashTransactionRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]treasury.CashTransaction, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]treasury.CashTransaction), args.Error(1)
}

func (m *MockCashTransactionRepository) FindAll(ctx context.Context, filter treasury.CashTransactionFilter) ([]treasury.CashTransaction, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]treasury.CashTransaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockCashTransactionRepository) Create(ctx context.Context, tx *treasury.CashTransaction) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockCashTransactionRepository) SaveWithLock(ctx context.Context, tx *treasury.CashTransaction) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockCashTransactionRepository) StampDeposit(ctx context.Context, depositID uuid.UUID, ids []uuid.UUID) (int64, error) {
	args := m.Called(ctx, depositID, ids)
	return args.Get(0).(int64), args.Error(1)
}

type MockDepositRepository struct {
	mock.Mock
}

func (m *MockDepositRepository) FindByID(ctx context.Context, id uuid.UUID) (*treasury.Deposit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*treasury.Deposit), args.Error(1)
}

func (m *MockDepositRepository) FindAll(ctx context.Context, filter shared.Filter) ([]treasury.Deposit, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]treasury.Deposit), args.Get(1).(int64), args.Error(2)
}

func (m *MockDepositRepository) Create(ctx context.Context, deposit *treasury.Deposit) error {
	return m.Called(ctx, deposit).Error(0)
}

type MockTransferRepository struct {
	mock.Mock
}

func (m *MockTransferRepository) FindByID(ctx context.Context, id uuid.UUID) (*treasury.Transfer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*treasury.Transfer), args.Error(1)
}

func (m *MockTransferRepository) FindAll(ctx context.Context, filter shared.Filter) ([]treasury.Transfer, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]treasury.Transfer), args.Get(1).(int64), args.Error(2)
}

func (m *MockTransferRepository) Create(ctx context.Context, transfer *treasury.Transfer) error {
	return m.Called(ctx, transfer).Error(0)
}

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*treasury.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*treasury.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]treasury.Expense, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]treasury.Expense), args.Get(1).(int64), args.Error(2)
}

func (m *MockExpenseRepository) Create(ctx context.Context, expense *treasury.Expense) error {
	return m.Called(ctx, expense).Error(0)
}

// treasuryMocks bundles one mock per repository
type treasuryMocks struct {
	accounts     *MockAccountRepository
	concepts     *MockConceptRepository
	expenseTypes *MockExpenseTypeRepository
	instruments  *MockInstrumentRepository
	journal      *MockJournalRepository
	items        *MockBillableItemRepository
	cash         *MockCashTransactionRepository
	deposits     *MockDepositRepository
	transfers    *MockTransferRepository
	expenses     *MockExpenseRepository
}

func newTreasuryMocks() *treasuryMocks {
	return &treasuryMocks{
		accounts:     new(MockAccountRepository),
		concepts:     new(MockConceptRepository),
		expenseTypes: new(MockExpenseTypeRepository),
		instruments:  new(MockInstrumentRepository),
		journal:      new(MockJournalRepository),
		items:        new(MockBillableItemRepository),
		cash:         new(MockCashTransactionRepository),
		deposits:     new(MockDepositRepository),
		transfers:    new(MockTransferRepository),
		expenses:     new(MockExpenseRepository),
	}
}

func (m *treasuryMocks) scope() *NoOpTransactionScope {
	return NewNoOpTransactionScope(Repositories{
		Accounts:         m.accounts,
		Concepts:         m.concepts,
		ExpenseTypes:     m.expenseTypes,
		Instruments:      m.instruments,
		Journal:          m.journal,
		BillableItems:    m.items,
		CashTransactions: m.cash,
		Deposits:         m.deposits,
		Transfers:        m.transfers,
		Expenses:         m.expenses,
	})
}
