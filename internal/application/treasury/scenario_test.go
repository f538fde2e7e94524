package treasury_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	appbilling "github.com/propledger/backend/internal/application/billing"
	"github.com/propledger/backend/internal/application/treasury"
	"github.com/propledger/backend/internal/domain/accounting"
	"github.com/propledger/backend/internal/domain/billing"
	"github.com/propledger/backend/internal/domain/property"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/propledger/backend/internal/domain/shared/valueobject"
	"github.com/propledger/backend/internal/infrastructure/persistence"
	"github.com/propledger/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ledger wires the real services over an in-memory SQLite database
type ledger struct {
	db       *gorm.DB
	billing  *appbilling.BillingService
	receipts *treasury.ReceiptService
	deposits *treasury.DepositService
	items    *persistence.GormBillableItemRepository
	cash     *persistence.GormCashTransactionRepository
	journal  *persistence.GormJournalRepository

	concept  *accounting.Concept
	drawer   *accounting.PaymentInstrument
	bank     *accounting.PaymentInstrument
	units    []*property.Unit
	clock    time.Time
	actorID  uuid.UUID
	personID uuid.UUID
}

func newLedger(t *testing.T) *ledger {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), persistence.GormConfig(logger.Discard))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection keeps every statement on the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(models.AllModels()...))

	scope := persistence.NewGormTransactionScope(db)
	l := &ledger{
		db:       db,
		items:    persistence.NewGormBillableItemRepository(db),
		cash:     persistence.NewGormCashTransactionRepository(db),
		journal:  persistence.NewGormJournalRepository(db),
		clock:    time.Date(2025, time.March, 5, 9, 0, 0, 0, time.UTC),
		actorID:  uuid.New(),
		personID: uuid.New(),
	}
	l.billing = appbilling.NewBillingService(l.items, persistence.NewGormUnitRepository(db),
		persistence.NewGormConceptRepository(db), scope.Billing(), appbilling.DefaultPolicy(), nil)
	l.billing.SetClock(func() time.Time { return l.clock })
	l.receipts = treasury.NewReceiptService(l.cash, scope.Treasury(), nil)
	l.receipts.SetClock(func() time.Time { return l.clock })
	l.deposits = treasury.NewDepositService(l.cash, persistence.NewGormDepositRepository(db), scope.Treasury(), nil)

	l.seed(t)
	return l
}

func (l *ledger) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	accounts := persistence.NewGormAccountRepository(l.db)
	save := func(code, name string, typ accounting.AccountType) *accounting.Account {
		a, err := accounting.NewAccount(code, name, typ, false, nil)
		require.NoError(t, err)
		require.NoError(t, accounts.Save(ctx, a))
		return a
	}
	income := save("4.1.01", "Expensas", accounting.AccountTypeIncome)
	drawerAcc := save("1.1.01", "Caja", accounting.AccountTypeAsset)
	bankAcc := save("1.1.02", "Banco", accounting.AccountTypeAsset)

	var err error
	l.concept, err = accounting.NewConcept("Expensa", income)
	require.NoError(t, err)
	require.NoError(t, persistence.NewGormConceptRepository(l.db).Save(ctx, l.concept))

	instruments := persistence.NewGormInstrumentRepository(l.db)
	l.drawer, err = accounting.NewPaymentInstrument("Caja", accounting.InstrumentKindCash, drawerAcc, false, decimal.Zero)
	require.NoError(t, err)
	require.NoError(t, instruments.Save(ctx, l.drawer))
	l.bank, err = accounting.NewPaymentInstrument("Banco Union", accounting.InstrumentKindBank, bankAcc, false, decimal.Zero)
	require.NoError(t, err)
	require.NoError(t, instruments.Save(ctx, l.bank))

	units := persistence.NewGormUnitRepository(l.db)
	for _, code := range []string{"A-101", "A-102", "A-103"} {
		u, err := property.NewUnit(code, "APARTMENT", "")
		require.NoError(t, err)
		require.NoError(t, units.Save(ctx, u))
		l.units = append(l.units, u)
	}
}

func (l *ledger) generateMarch(t *testing.T) *appbilling.GenerationResponse {
	t.Helper()
	override := decimal.NewFromInt(220)
	resp, err := l.billing.GenerateGlobal(context.Background(), appbilling.GenerateGlobalRequest{
		Period:         "2025-03",
		ConceptID:      l.concept.ID,
		AmountOverride: &override,
	})
	require.NoError(t, err)
	return resp
}

func (l *ledger) item(t *testing.T, unit *property.Unit) *billing.BillableItem {
	t.Helper()
	period := valueobject.MustParsePeriod("2025-03")
	items, _, err := l.items.FindAll(context.Background(), billing.BillableItemFilter{
		Filter:    shared.Filter{Page: 1, PageSize: 10},
		UnitID:    &unit.ID,
		ConceptID: &l.concept.ID,
		Period:    &period,
		Now:       l.clock,
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	return &items[0]
}

func (l *ledger) pay(t *testing.T, unit *property.Unit, amount string) *treasury.CashTransactionResponse {
	t.Helper()
	resp, err := l.receipts.ApplyReceipt(context.Background(), treasury.ApplyReceiptRequest{
		PayerPersonID: l.personID,
		UnitID:        unit.ID,
		InstrumentID:  l.drawer.ID,
		Amount:        decimal.RequireFromString(amount),
	})
	require.NoError(t, err)
	return resp
}

func (l *ledger) assertJournalBalanced(t *testing.T) {
	t.Helper()
	entries, _, err := l.journal.FindAll(context.Background(), accounting.JournalFilter{
		Filter: shared.Filter{Page: 1, PageSize: shared.MaxPageSize},
	})
	require.NoError(t, err)
	for _, e := range entries {
		assert.NoError(t, e.CheckBalanced(), "entry %s (%s)", e.ID, e.SourceType)
	}
}

func TestScenario_ExpensaMarch(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	gen := l.generateMarch(t)
	assert.Equal(t, 3, gen.Created)
	assert.Zero(t, gen.Skipped)
	for _, u := range l.units {
		item := l.item(t, u)
		assert.Equal(t, billing.ItemStatusPending, item.Status)
		assert.True(t, decimal.NewFromInt(220).Equal(item.BaseAmount))
		assert.True(t, decimal.NewFromInt(220).Equal(item.BalancePending))
	}

	receipt := l.pay(t, l.units[0], "220")
	paid := l.item(t, l.units[0])
	assert.Equal(t, billing.ItemStatusPaid, paid.Status)
	assert.True(t, paid.BalancePending.IsZero())

	deposit, err := l.deposits.CreateDeposit(ctx, l.actorID, treasury.CreateDepositRequest{
		TransactionIDs:          []uuid.UUID{receipt.ID},
		Bank:                    "Banco Union",
		DestinationAccount:      "1000-22",
		Date:                    "2025-03-06",
		DestinationInstrumentID: &l.bank.ID,
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(220).Equal(deposit.Amount))
	require.NotNil(t, deposit.JournalEntryID)

	stored, err := l.cash.FindByID(ctx, receipt.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.DepositID)
	assert.Equal(t, deposit.ID, *stored.DepositID)

	_, err = l.receipts.CancelTransaction(ctx, receipt.ID)
	assert.Equal(t, shared.CodeAlreadyDeposited, shared.ErrorCode(err))

	rollback, err := l.billing.RollbackBulk(ctx, appbilling.RollbackBulkRequest{
		Period:    "2025-03",
		ConceptID: l.concept.ID,
		Reason:    "Wrong amount for March",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), rollback.CancelledCount)

	assert.Equal(t, billing.ItemStatusPaid, l.item(t, l.units[0]).Status)
	for _, u := range l.units[1:] {
		assert.Equal(t, billing.ItemStatusCancelled, l.item(t, u).Status)
	}

	again, err := l.billing.RollbackBulk(ctx, appbilling.RollbackBulkRequest{
		Period:    "2025-03",
		ConceptID: l.concept.ID,
		Reason:    "Wrong amount for March",
	})
	require.NoError(t, err)
	assert.Zero(t, again.CancelledCount)

	l.assertJournalBalanced(t)
}

func TestScenario_RegenerationSkipsExisting(t *testing.T) {
	l := newLedger(t)

	first := l.generateMarch(t)
	require.Equal(t, 3, first.Created)

	second := l.generateMarch(t)
	assert.Zero(t, second.Created)
	assert.Equal(t, 3, second.Skipped)
	for _, s := range second.SkippedUnits {
		assert.Equal(t, billing.SkipDuplicate, s.Reason)
	}
}

func TestScenario_CancelBeforeDepositRestoresBalance(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()
	l.generateMarch(t)

	receipt := l.pay(t, l.units[1], "100")
	partial := l.item(t, l.units[1])
	assert.Equal(t, billing.ItemStatusPending, partial.Status)
	assert.True(t, decimal.NewFromInt(120).Equal(partial.BalancePending))

	cancelled, err := l.receipts.CancelTransaction(ctx, receipt.ID)
	require.NoError(t, err)
	assert.True(t, cancelled.Cancelled)

	restored := l.item(t, l.units[1])
	assert.True(t, decimal.NewFromInt(220).Equal(restored.BalancePending))

	reversals, _, err := l.journal.FindAll(ctx, accounting.JournalFilter{
		Filter:   shared.Filter{Page: 1, PageSize: 10},
		SourceID: &receipt.ID,
	})
	require.NoError(t, err)
	assert.Len(t, reversals, 2)

	// a cancelled receipt can no longer be deposited
	_, err = l.deposits.CreateDeposit(ctx, l.actorID, treasury.CreateDepositRequest{
		TransactionIDs:     []uuid.UUID{receipt.ID},
		Bank:               "Banco Union",
		DestinationAccount: "1000-22",
		Date:               "2025-03-06",
	})
	assert.Equal(t, shared.CodeAlreadyDeposited, shared.ErrorCode(err))

	l.assertJournalBalanced(t)
}

func TestScenario_RollbackWritesOffPartlyPaidItems(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()
	l.generateMarch(t)

	receipt := l.pay(t, l.units[0], "100")
	partial := l.item(t, l.units[0])
	require.Equal(t, billing.ItemStatusPending, partial.Status)
	require.True(t, decimal.NewFromInt(120).Equal(partial.BalancePending))

	rollback, err := l.billing.RollbackBulk(ctx, appbilling.RollbackBulkRequest{
		Period:    "2025-03",
		ConceptID: l.concept.ID,
		Reason:    "Wrong amount for March",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), rollback.CancelledCount)
	for _, u := range l.units {
		item := l.item(t, u)
		assert.Equal(t, billing.ItemStatusCancelled, item.Status)
		assert.True(t, item.BalancePending.IsZero())
	}

	// the receipt can still be cancelled; the written-off item keeps a zero balance
	cancelled, err := l.receipts.CancelTransaction(ctx, receipt.ID)
	require.NoError(t, err)
	assert.True(t, cancelled.Cancelled)

	item := l.item(t, l.units[0])
	assert.Equal(t, billing.ItemStatusCancelled, item.Status)
	assert.True(t, item.BalancePending.IsZero())

	entries, _, err := l.journal.FindAll(ctx, accounting.JournalFilter{
		Filter:   shared.Filter{Page: 1, PageSize: 10},
		SourceID: &receipt.ID,
	})
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	l.assertJournalBalanced(t)
}

func TestScenario_DepositIsAllOrNothing(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()
	l.generateMarch(t)

	r1 := l.pay(t, l.units[0], "220")
	r2 := l.pay(t, l.units[1], "50.25")
	r3 := l.pay(t, l.units[2], "19.75")

	pending, err := l.deposits.ListPending(ctx, "")
	require.NoError(t, err)
	assert.Len(t, pending, 3)

	first, err := l.deposits.CreateDeposit(ctx, l.actorID, treasury.CreateDepositRequest{
		TransactionIDs:     []uuid.UUID{r1.ID, r2.ID},
		Bank:               "Banco Union",
		DestinationAccount: "1000-22",
		Date:               "2025-03-06",
	})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("270.25").Equal(first.Amount))

	// r2 is already taken, so r3 must stay undeposited as well
	_, err = l.deposits.CreateDeposit(ctx, l.actorID, treasury.CreateDepositRequest{
		TransactionIDs:     []uuid.UUID{r2.ID, r3.ID},
		Bank:               "Banco Union",
		DestinationAccount: "1000-22",
		Date:               "2025-03-07",
	})
	assert.Equal(t, shared.CodeAlreadyDeposited, shared.ErrorCode(err))

	stored, err := l.cash.FindByID(ctx, r3.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.DepositID)

	pending, err = l.deposits.ListPending(ctx, "CASH")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, r3.ID, pending[0].ID)
}
