package treasury

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/accounting"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/propledger/backend/internal/domain/treasury"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func depositRequest(ids ...uuid.UUID) CreateDepositRequest {
	return CreateDepositRequest{
		TransactionIDs:     ids,
		Bank:               "Banco Union",
		DestinationAccount: "1-2345678",
		ReferenceNumber:    "DEP-0001",
		Date:               "2025-03-21",
	}
}

func mustReceipt(t *testing.T, instrumentID uuid.UUID, amount string) treasury.CashTransaction {
	t.Helper()
	tx, err := treasury.NewCashTransaction(uuid.New(), uuid.New(), instrumentID, dec(amount), "", testNow)
	require.NoError(t, err)
	return *tx
}

func TestDepositService_CreateDeposit(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New()
	cashInstrument := uuid.New()

	t.Run("actor is required", func(t *testing.T) {
		m := newTreasuryMocks()
		svc := NewDepositService(m.cash, m.deposits, m.scope(), nil)
		_, err := svc.CreateDeposit(ctx, uuid.Nil, depositRequest(uuid.New()))
		assertCode(t, err, shared.CodeValidation)
	})

	t.Run("empty selection", func(t *testing.T) {
		m := newTreasuryMocks()
		svc := NewDepositService(m.cash, m.deposits, m.scope(), nil)
		_, err := svc.CreateDeposit(ctx, actor, depositRequest())
		assertCode(t, err, shared.CodeEmptySelection)
	})

	t.Run("duplicate ids", func(t *testing.T) {
		m := newTreasuryMocks()
		svc := NewDepositService(m.cash, m.deposits, m.scope(), nil)
		id := uuid.New()
		_, err := svc.CreateDeposit(ctx, actor, depositRequest(id, id))
		assertCode(t, err, shared.CodeValidation)
	})

	t.Run("unknown id", func(t *testing.T) {
		m := newTreasuryMocks()
		svc := NewDepositService(m.cash, m.deposits, m.scope(), nil)
		a := mustReceipt(t, cashInstrument, "100")
		missing := uuid.New()
		m.cash.On("FindByIDs", mock.Anything, []uuid.UUID{a.ID, missing}).Return([]treasury.CashTransaction{a}, nil)

		_, err := svc.CreateDeposit(ctx, actor, depositRequest(a.ID, missing))
		assertCode(t, err, shared.CodeAlreadyDeposited)
		m.deposits.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("already deposited member", func(t *testing.T) {
		m := newTreasuryMocks()
		svc := NewDepositService(m.cash, m.deposits, m.scope(), nil)
		a := mustReceipt(t, cashInstrument, "100")
		prior := uuid.New()
		a.DepositID = &prior
		m.cash.On("FindByIDs", mock.Anything, []uuid.UUID{a.ID}).Return([]treasury.CashTransaction{a}, nil)

		_, err := svc.CreateDeposit(ctx, actor, depositRequest(a.ID))
		assertCode(t, err, shared.CodeAlreadyDeposited)
	})

	t.Run("amount is the server-side sum", func(t *testing.T) {
		m := newTreasuryMocks()
		svc := NewDepositService(m.cash, m.deposits, m.scope(), nil)
		a := mustReceipt(t, cashInstrument, "100.50")
		b := mustReceipt(t, cashInstrument, "220")
		m.cash.On("FindByIDs", mock.Anything, []uuid.UUID{a.ID, b.ID}).Return([]treasury.CashTransaction{a, b}, nil)
		m.deposits.On("Create", mock.Anything, mock.AnythingOfType("*treasury.Deposit")).Return(nil)
		m.cash.On("StampDeposit", mock.Anything, mock.Anything, []uuid.UUID{a.ID, b.ID}).Return(int64(2), nil)

		resp, err := svc.CreateDeposit(ctx, actor, depositRequest(a.ID, b.ID))
		require.NoError(t, err)
		assert.True(t, resp.Amount.Equal(dec("320.50")))
		assert.Equal(t, actor, resp.CreatedBy)
		assert.Equal(t, "CLOSED", resp.Status)
		assert.Nil(t, resp.JournalEntryID, "no destination instrument means no postings")
		m.journal.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("stamp race aborts the deposit", func(t *testing.T) {
		m := newTreasuryMocks()
		svc := NewDepositService(m.cash, m.deposits, m.scope(), nil)
		a := mustReceipt(t, cashInstrument, "100")
		b := mustReceipt(t, cashInstrument, "100")
		m.cash.On("FindByIDs", mock.Anything, []uuid.UUID{a.ID, b.ID}).Return([]treasury.CashTransaction{a, b}, nil)
		m.deposits.On("Create", mock.Anything, mock.Anything).Return(nil)
		m.cash.On("StampDeposit", mock.Anything, mock.Anything, mock.Anything).Return(int64(1), nil)

		_, err := svc.CreateDeposit(ctx, actor, depositRequest(a.ID, b.ID))
		assertCode(t, err, shared.CodeAlreadyDeposited)
	})
}

func TestDepositService_CreateDeposit_Journal(t *testing.T) {
	ctx := context.Background()
	m := newTreasuryMocks()
	svc := NewDepositService(m.cash, m.deposits, m.scope(), nil)

	cashAcc := mustAccount(t, "1.1.01", accounting.AccountTypeAsset)
	qrAcc := mustAccount(t, "1.1.03", accounting.AccountTypeAsset)
	bankAcc := mustAccount(t, "1.1.02", accounting.AccountTypeAsset)
	cash := mustInstrument(t, "Caja", accounting.InstrumentKindCash, cashAcc, "0")
	qr := mustInstrument(t, "QR", accounting.InstrumentKindQR, qrAcc, "0")
	bank := mustInstrument(t, "Banco", accounting.InstrumentKindBank, bankAcc, "0")

	a := mustReceipt(t, cash.ID, "100")
	b := mustReceipt(t, qr.ID, "50")
	c := mustReceipt(t, cash.ID, "25")
	ids := []uuid.UUID{a.ID, b.ID, c.ID}
	m.cash.On("FindByIDs", mock.Anything, ids).Return([]treasury.CashTransaction{a, b, c}, nil)
	m.instruments.On("FindByID", mock.Anything, bank.ID).Return(bank, nil)
	m.instruments.On("FindByIDs", mock.Anything, []uuid.UUID{cash.ID, qr.ID}).
		Return([]accounting.PaymentInstrument{*cash, *qr}, nil)
	m.accounts.On("FindByIDs", mock.Anything, []uuid.UUID{bankAcc.ID, cashAcc.ID, qrAcc.ID}).
		Return([]accounting.Account{*bankAcc, *cashAcc, *qrAcc}, nil)
	var entry *accounting.JournalEntry
	m.journal.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		entry = args.Get(1).(*accounting.JournalEntry)
	}).Return(nil)
	m.deposits.On("Create", mock.Anything, mock.Anything).Return(nil)
	m.cash.On("StampDeposit", mock.Anything, mock.Anything, ids).Return(int64(3), nil)

	req := depositRequest(ids...)
	req.DestinationInstrumentID = &bank.ID
	resp, err := svc.CreateDeposit(ctx, uuid.New(), req)
	require.NoError(t, err)

	require.NotNil(t, entry)
	assert.Equal(t, &entry.ID, resp.JournalEntryID)
	assert.Equal(t, accounting.SourceDeposit, entry.SourceType)
	require.Len(t, entry.Postings, 3)
	assert.Equal(t, bankAcc.ID, entry.Postings[0].AccountID)
	assert.True(t, entry.Postings[0].Debit.Equal(dec("175")))
	assert.Equal(t, cashAcc.ID, entry.Postings[1].AccountID)
	assert.True(t, entry.Postings[1].Credit.Equal(dec("125")), "receipts on one instrument are grouped")
	assert.Equal(t, qrAcc.ID, entry.Postings[2].AccountID)
	require.NoError(t, entry.CheckBalanced())
}

func TestDepositService_ListPending(t *testing.T) {
	ctx := context.Background()
	m := newTreasuryMocks()
	svc := NewDepositService(m.cash, m.deposits, m.scope(), nil)

	m.cash.On("FindAll", mock.Anything, mock.MatchedBy(func(f treasury.CashTransactionFilter) bool {
		return f.Undeposited && f.Cancelled != nil && !*f.Cancelled &&
			f.InstrumentKind != nil && *f.InstrumentKind == accounting.InstrumentKindCash
	})).Return([]treasury.CashTransaction{mustReceipt(t, uuid.New(), "10")}, int64(1), nil)

	pending, err := svc.ListPending(ctx, "")
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	_, err = svc.ListPending(ctx, "WIRE")
	assertCode(t, err, shared.CodeValidation)
}
