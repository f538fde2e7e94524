package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/accounting"
	"github.com/propledger/backend/internal/domain/billing"
	"github.com/propledger/backend/internal/domain/property"
	"github.com/propledger/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/mock"
)

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
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockBillableItemRepository) SaveWithLock(ctx context.Context, item *billing.BillableItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockBillableItemRepository) CancelPendingBulk(ctx context.Context, criteria billing.BulkCancelCriteria, reason string, at time.Time) (int64, error) {
	args := m.Called(ctx, criteria, reason, at)
	return args.Get(0).(int64), args.Error(1)
}

type MockUnitRepository struct {
	mock.Mock
}

func (m *MockUnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Unit), args.Error(1)
}

func (m *MockUnitRepository) FindAll(ctx context.Context, filter property.UnitFilter) ([]property.Unit, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]property.Unit), args.Error(1)
}

func (m *MockUnitRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockUnitRepository) Save(ctx context.Context, unit *property.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Contract), args.Error(1)
}

func (m *MockContractRepository) FindByUnit(ctx context.Context, unitID uuid.UUID) ([]property.Contract, error) {
	args := m.Called(ctx, unitID)
	return args.Get(0).([]property.Contract), args.Error(1)
}

func (m *MockContractRepository) FindActiveByUnits(ctx context.Context, unitIDs []uuid.UUID) ([]property.Contract, error) {
	args := m.Called(ctx, unitIDs)
	return args.Get(0).([]property.Contract), args.Error(1)
}

func (m *MockContractRepository) Save(ctx context.Context, contract *property.Contract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
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
	args := m.Called(ctx, concept)
	return args.Error(0)
}

type billingMocks struct {
	items     *MockBillableItemRepository
	units     *MockUnitRepository
	contracts *MockContractRepository
	concepts  *MockConceptRepository
}

func newBillingMocks() *billingMocks {
	return &billingMocks{
		items:     new(MockBillableItemRepository),
		units:     new(MockUnitRepository),
		contracts: new(MockContractRepository),
		concepts:  new(MockConceptRepository),
	}
}

func (m *billingMocks) service(now time.Time) *BillingService {
	scope := NewNoOpTransactionScope(m.units, m.contracts, m.concepts, m.items)
	svc := NewBillingService(m.items, m.units, m.concepts, scope, DefaultPolicy(), nil)
	svc.SetClock(func() time.Time { return now })
	return svc
}
