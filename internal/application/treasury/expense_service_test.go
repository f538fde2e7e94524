package treasury

import (
	"context"
	"testing"

	"github.com/propledger/backend/internal/domain/accounting"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type expenseFixture struct {
	m          *treasuryMocks
	svc        *ExpenseService
	group      *accounting.Account
	eligible   *accounting.Account
	foreign    *accounting.Account
	cashAcc    *accounting.Account
	instrument *accounting.PaymentInstrument
	typ        *accounting.ExpenseType
}

func newExpenseFixture(t *testing.T, limit string, requiresDoc bool) *expenseFixture {
	m := newTreasuryMocks()
	f := &expenseFixture{
		m:        m,
		group:    mustGroup(t, "5.2.2", accounting.AccountTypeExpense),
		eligible: mustAccount(t, "5.2.2.01", accounting.AccountTypeExpense),
		foreign:  mustAccount(t, "5.3.1.01", accounting.AccountTypeExpense),
		cashAcc:  mustAccount(t, "1.1.01", accounting.AccountTypeAsset),
	}
	f.instrument = mustInstrument(t, "Caja", accounting.InstrumentKindCash, f.cashAcc, limit)
	typ, err := accounting.NewExpenseType("Mantenimiento", f.group, requiresDoc)
	require.NoError(t, err)
	f.typ = typ
	f.svc = NewExpenseService(m.expenses, m.scope(), nil)

	m.expenseTypes.On("FindByID", mock.Anything, typ.ID).Return(typ, nil)
	m.instruments.On("FindByID", mock.Anything, f.instrument.ID).Return(f.instrument, nil)
	m.accounts.On("FindByIDs", mock.Anything, mock.Anything).
		Return([]accounting.Account{*f.group, *f.eligible, *f.foreign, *f.cashAcc}, nil)
	return f
}

func (f *expenseFixture) request(account *accounting.Account, amount string) RecordExpenseRequest {
	return RecordExpenseRequest{
		ExpenseTypeID: f.typ.ID,
		AccountID:     account.ID,
		InstrumentID:  f.instrument.ID,
		Amount:        dec(amount),
		Date:          "2025-03-22",
		Description:   "Bomba de agua",
	}
}

func TestExpenseService_RecordExpense(t *testing.T) {
	ctx := context.Background()

	t.Run("ineligible account", func(t *testing.T) {
		f := newExpenseFixture(t, "0", false)
		_, err := f.svc.RecordExpense(ctx, f.request(f.foreign, "100"))
		assertCode(t, err, shared.CodeInvalidAccountBinding)
	})

	t.Run("document number required", func(t *testing.T) {
		f := newExpenseFixture(t, "0", true)
		_, err := f.svc.RecordExpense(ctx, f.request(f.eligible, "100"))
		assertCode(t, err, shared.CodeValidation)
	})

	t.Run("above the instrument limit records nothing", func(t *testing.T) {
		f := newExpenseFixture(t, "1000", false)
		_, err := f.svc.RecordExpense(ctx, f.request(f.eligible, "1000.01"))
		assertCode(t, err, shared.CodeLimitExceeded)
		f.m.expenses.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.m.journal.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		f := newExpenseFixture(t, "0", false)
		_, err := f.svc.RecordExpense(ctx, f.request(f.eligible, "0"))
		assertCode(t, err, shared.CodeValidation)
	})

	t.Run("debits the expense account and credits the instrument", func(t *testing.T) {
		f := newExpenseFixture(t, "1000", false)
		var entry *accounting.JournalEntry
		f.m.journal.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			entry = args.Get(1).(*accounting.JournalEntry)
		}).Return(nil)
		f.m.expenses.On("Create", mock.Anything, mock.Anything).Return(nil)

		resp, err := f.svc.RecordExpense(ctx, f.request(f.eligible, "1000"))
		require.NoError(t, err)
		assert.Equal(t, f.eligible.ID, resp.AccountID)

		require.NotNil(t, entry)
		assert.Equal(t, accounting.SourceExpense, entry.SourceType)
		assert.Equal(t, f.eligible.ID, entry.Postings[0].AccountID)
		assert.True(t, entry.Postings[0].Debit.Equal(dec("1000")))
		assert.Equal(t, f.cashAcc.ID, entry.Postings[1].AccountID)
		assert.Equal(t, &entry.ID, resp.JournalEntryID)
	})
}
