package accounting

import (
	"context"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/accounting"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock implementation of accounting.AccountRepository
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
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) SaveWithLock(ctx context.Context, account *accounting.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// MockConceptRepository is a mock implementation of accounting.ConceptRepository
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
	args := m.Called(ctx, concept)
	return args.Error(0)
}

// MockExpenseTypeRepository is a mock implementation of accounting.ExpenseTypeRepository
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

func (m *MockExpenseTypeRepository) Save(ctx context.Context, et *accounting.ExpenseType) error {
	args := m.Called(ctx, et)
	return args.Error(0)
}

// MockInstrumentRepository is a mock implementation of accounting.InstrumentRepository
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

func (m *MockInstrumentRepository) Save(ctx context.Context, pi *accounting.PaymentInstrument) error {
	args := m.Called(ctx, pi)
	return args.Error(0)
}

// MockJournalRepository is a mock implementation of accounting.JournalRepository
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
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type accountingMocks struct {
	accounts     *MockAccountRepository
	concepts     *MockConceptRepository
	expenseTypes *MockExpenseTypeRepository
	instruments  *MockInstrumentRepository
	journal      *MockJournalRepository
}

func newAccountingMocks() *accountingMocks {
	return &accountingMocks{
		accounts:     new(MockAccountRepository),
		concepts:     new(MockConceptRepository),
		expenseTypes: new(MockExpenseTypeRepository),
		instruments:  new(MockInstrumentRepository),
		journal:      new(MockJournalRepository),
	}
}

func (m *accountingMocks) scope() *NoOpTransactionScope {
	return NewNoOpTransactionScope(m.accounts, m.concepts, m.expenseTypes, m.instruments, m.journal)
}
