package treasury

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/accounting"
	"github.com/propledger/backend/internal/domain/billing"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/propledger/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helpers
func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func createTestItem(t *testing.T, unitID uuid.UUID, period string, amount string, due time.Time) *billing.BillableItem {
	item, err := billing.NewBillableItem(unitID, nil, uuid.New(), valueobject.MustParsePeriod(period), dec(amount), due)
	require.NoError(t, err)
	return item
}

func createTestReceipt(t *testing.T, amount string) *CashTransaction {
	tx, err := NewCashTransaction(uuid.New(), uuid.New(), uuid.New(), dec(amount), "", time.Now())
	require.NoError(t, err)
	return tx
}

func createTestInstrument(t *testing.T, name string, limit string) *accounting.PaymentInstrument {
	account, err := accounting.NewAccount("1.1."+name, "Cuenta "+name, accounting.AccountTypeAsset, false, nil)
	require.NoError(t, err)
	pi, err := accounting.NewPaymentInstrument(name, accounting.InstrumentKindCash, account, false, dec(limit))
	require.NoError(t, err)
	return pi
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, code, shared.ErrorCode(err))
}

// ============================================
// Allocation planning
// ============================================

func TestPlanSequential(t *testing.T) {
	unitID := uuid.New()
	jan := createTestItem(t, unitID, "2025-01", "220", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
	feb := createTestItem(t, unitID, "2025-02", "220", time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC))
	items := []*billing.BillableItem{jan, feb}

	t.Run("oldest first with partial last", func(t *testing.T) {
		plan, err := PlanSequential(dec("300"), items)
		require.NoError(t, err)
		require.Len(t, plan, 2)
		assert.Equal(t, jan.ID, plan[0].Item.ID)
		assert.True(t, plan[0].Amount.Equal(dec("220")))
		assert.True(t, plan[1].Amount.Equal(dec("80")))
	})

	t.Run("stops once consumed", func(t *testing.T) {
		plan, err := PlanSequential(dec("220"), items)
		require.NoError(t, err)
		assert.Len(t, plan, 1)
	})

	t.Run("amount above outstanding", func(t *testing.T) {
		_, err := PlanSequential(dec("440.01"), items)
		assertCode(t, err, shared.CodeOverApplication)
	})
}

func TestPlanExplicit(t *testing.T) {
	unitID := uuid.New()
	jan := createTestItem(t, unitID, "2025-01", "220", time.Now())
	feb := createTestItem(t, unitID, "2025-02", "220", time.Now())
	items := map[uuid.UUID]*billing.BillableItem{jan.ID: jan, feb.ID: feb}

	t.Run("exact split", func(t *testing.T) {
		plan, err := PlanExplicit(dec("300"), []RequestedAllocation{
			{BillableItemID: feb.ID, Amount: dec("200")},
			{BillableItemID: jan.ID, Amount: dec("100")},
		}, items)
		require.NoError(t, err)
		assert.Equal(t, feb.ID, plan[0].Item.ID)
	})

	t.Run("requested total above amount", func(t *testing.T) {
		_, err := PlanExplicit(dec("100"), []RequestedAllocation{
			{BillableItemID: jan.ID, Amount: dec("60")},
			{BillableItemID: feb.ID, Amount: dec("60")},
		}, items)
		assertCode(t, err, shared.CodeOverApplication)
	})

	t.Run("allocation above item balance", func(t *testing.T) {
		_, err := PlanExplicit(dec("221"), []RequestedAllocation{{BillableItemID: jan.ID, Amount: dec("221")}}, items)
		assertCode(t, err, shared.CodeOverApplication)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := PlanExplicit(dec("1"), []RequestedAllocation{{BillableItemID: uuid.New(), Amount: dec("1")}}, items)
		assertCode(t, err, shared.CodeNotFound)
	})
}

// ============================================
// CashTransaction
// ============================================

func TestCashTransaction_Allocations(t *testing.T) {
	tx := createTestReceipt(t, "300")
	require.NoError(t, tx.AddAllocation(uuid.New(), uuid.New(), dec("220")))
	assertCode(t, tx.AddAllocation(uuid.New(), uuid.New(), dec("81")), shared.CodeOverApplication)
	assertCode(t, tx.Seal(), shared.CodeOverApplication)

	require.NoError(t, tx.AddAllocation(uuid.New(), uuid.New(), dec("80")))
	require.NoError(t, tx.Seal())
	assert.True(t, tx.AllocatedTotal().Equal(tx.Amount))
	assert.Equal(t, 2, tx.Allocations[1].Seq)
}

func TestCashTransaction_Cancel(t *testing.T) {
	t.Run("undeposited", func(t *testing.T) {
		tx := createTestReceipt(t, "10")
		require.NoError(t, tx.Cancel())
		assert.True(t, tx.Cancelled)
		assert.False(t, tx.IsDepositable())
		assertCode(t, tx.Cancel(), shared.CodeInvalidState)
	})

	t.Run("deposited", func(t *testing.T) {
		tx := createTestReceipt(t, "10")
		depositID := uuid.New()
		tx.DepositID = &depositID
		assertCode(t, tx.Cancel(), shared.CodeAlreadyDeposited)
		assert.False(t, tx.Cancelled)
	})
}

// ============================================
// Deposit
// ============================================

func TestNewDeposit(t *testing.T) {
	details := DepositDetails{Bank: "BNB", DestinationAccount: "1000-22", ReferenceNumber: "DEP-1", Date: time.Now()}

	t.Run("amount is the exact member sum", func(t *testing.T) {
		a := createTestReceipt(t, "220")
		b := createTestReceipt(t, "80.55")
		d, err := NewDeposit(uuid.New(), details, []CashTransaction{*a, *b})
		require.NoError(t, err)
		assert.True(t, d.Amount.Equal(dec("300.55")))
		assert.Equal(t, DepositStatusClosed, d.Status)
		assert.ElementsMatch(t, []uuid.UUID{a.ID, b.ID}, d.MemberTransactionIDs)
	})

	t.Run("empty selection", func(t *testing.T) {
		_, err := NewDeposit(uuid.New(), details, nil)
		assertCode(t, err, shared.CodeEmptySelection)
	})

	t.Run("actor required", func(t *testing.T) {
		_, err := NewDeposit(uuid.Nil, details, []CashTransaction{*createTestReceipt(t, "1")})
		assertCode(t, err, shared.CodeValidation)
	})

	t.Run("already deposited member", func(t *testing.T) {
		a := createTestReceipt(t, "220")
		other := uuid.New()
		a.DepositID = &other
		_, err := NewDeposit(uuid.New(), details, []CashTransaction{*a})
		assertCode(t, err, shared.CodeAlreadyDeposited)
	})

	t.Run("cancelled member", func(t *testing.T) {
		a := createTestReceipt(t, "220")
		require.NoError(t, a.Cancel())
		_, err := NewDeposit(uuid.New(), details, []CashTransaction{*a})
		assertCode(t, err, shared.CodeAlreadyDeposited)
	})
}

// ============================================
// Transfer and Expense
// ============================================

func TestNewTransfer(t *testing.T) {
	cash := createTestInstrument(t, "1", "500")
	bank := createTestInstrument(t, "2", "0")

	t.Run("same instrument wins over invalid amount", func(t *testing.T) {
		_, err := NewTransfer(cash, cash, decimal.Zero, time.Now(), "")
		assertCode(t, err, shared.CodeSameInstrument)
		_, err = NewTransfer(cash, cash, dec("100"), time.Now(), "")
		assertCode(t, err, shared.CodeSameInstrument)
	})

	t.Run("invalid amount", func(t *testing.T) {
		_, err := NewTransfer(cash, bank, dec("-1"), time.Now(), "")
		assertCode(t, err, shared.CodeInvalidAmount)
	})

	t.Run("source limit", func(t *testing.T) {
		_, err := NewTransfer(cash, bank, dec("500.01"), time.Now(), "")
		assertCode(t, err, shared.CodeLimitExceeded)
	})

	t.Run("unlimited source", func(t *testing.T) {
		tr, err := NewTransfer(bank, cash, dec("10000"), time.Now(), " Reposición ")
		require.NoError(t, err)
		assert.Equal(t, "Reposición", tr.Description)
	})
}

func TestNewExpense(t *testing.T) {
	group, err := accounting.NewAccount("5.2.1", "Mantenimiento", accounting.AccountTypeExpense, true, nil)
	require.NoError(t, err)
	leaf, err := accounting.NewAccount("5.2.1.01", "Plomería", accounting.AccountTypeExpense, false, group)
	require.NoError(t, err)
	foreign, err := accounting.NewAccount("5.3.1.01", "Sueldos", accounting.AccountTypeExpense, false, nil)
	require.NoError(t, err)
	et, err := accounting.NewExpenseType("Mantenimiento", group, true)
	require.NoError(t, err)
	cash := createTestInstrument(t, "1", "500")

	base := ExpenseInput{Type: et, GroupAccount: group, Account: leaf, Instrument: cash, Amount: dec("100"), Date: time.Now(), DocumentNumber: "F-1"}

	e, err := NewExpense(base)
	require.NoError(t, err)
	assert.Equal(t, leaf.ID, e.AccountID)

	in := base
	in.DocumentNumber = ""
	_, err = NewExpense(in)
	assertCode(t, err, shared.CodeValidation)

	in = base
	in.Account = foreign
	_, err = NewExpense(in)
	assertCode(t, err, shared.CodeInvalidAccountBinding)

	in = base
	in.Amount = dec("501")
	_, err = NewExpense(in)
	assertCode(t, err, shared.CodeLimitExceeded)
}
