package treasury

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/accounting"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransferService_Transfer(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, limit string) (*TransferService, *treasuryMocks, *accounting.PaymentInstrument, *accounting.PaymentInstrument) {
		m := newTreasuryMocks()
		cashAcc := mustAccount(t, "1.1.01", accounting.AccountTypeAsset)
		bankAcc := mustAccount(t, "1.1.02", accounting.AccountTypeAsset)
		source := mustInstrument(t, "Caja", accounting.InstrumentKindCash, cashAcc, limit)
		dest := mustInstrument(t, "Banco", accounting.InstrumentKindBank, bankAcc, "0")
		m.instruments.On("FindByID", mock.Anything, source.ID).Return(source, nil)
		m.instruments.On("FindByID", mock.Anything, dest.ID).Return(dest, nil)
		m.accounts.On("FindByIDs", mock.Anything, mock.Anything).Return([]accounting.Account{*cashAcc, *bankAcc}, nil)
		return NewTransferService(m.transfers, m.scope(), nil), m, source, dest
	}

	t.Run("same instrument wins over a bad amount", func(t *testing.T) {
		svc, m, source, _ := setup(t, "0")
		_, err := svc.Transfer(ctx, CreateTransferRequest{
			SourceInstrumentID:      source.ID,
			DestinationInstrumentID: source.ID,
			Amount:                  dec("-5"),
			Date:                    "2025-03-21",
		})
		assertCode(t, err, shared.CodeSameInstrument)
		m.instruments.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		svc, _, source, dest := setup(t, "0")
		_, err := svc.Transfer(ctx, CreateTransferRequest{
			SourceInstrumentID:      source.ID,
			DestinationInstrumentID: dest.ID,
			Amount:                  dec("0"),
			Date:                    "2025-03-21",
		})
		assertCode(t, err, shared.CodeInvalidAmount)
	})

	t.Run("source spending limit", func(t *testing.T) {
		svc, m, source, dest := setup(t, "500")
		_, err := svc.Transfer(ctx, CreateTransferRequest{
			SourceInstrumentID:      source.ID,
			DestinationInstrumentID: dest.ID,
			Amount:                  dec("500.01"),
			Date:                    "2025-03-21",
		})
		assertCode(t, err, shared.CodeLimitExceeded)
		m.transfers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		m.journal.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown destination", func(t *testing.T) {
		svc, m, source, _ := setup(t, "0")
		missing := uuid.New()
		m.instruments.On("FindByID", mock.Anything, missing).Return(nil, nil)
		_, err := svc.Transfer(ctx, CreateTransferRequest{
			SourceInstrumentID:      source.ID,
			DestinationInstrumentID: missing,
			Amount:                  dec("10"),
			Date:                    "2025-03-21",
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("writes a balanced two-posting entry", func(t *testing.T) {
		svc, m, source, dest := setup(t, "500")
		var entry *accounting.JournalEntry
		m.journal.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			entry = args.Get(1).(*accounting.JournalEntry)
		}).Return(nil)
		m.transfers.On("Create", mock.Anything, mock.Anything).Return(nil)

		resp, err := svc.Transfer(ctx, CreateTransferRequest{
			SourceInstrumentID:      source.ID,
			DestinationInstrumentID: dest.ID,
			Amount:                  dec("500"),
			Date:                    "2025-03-21",
		})
		require.NoError(t, err)
		assert.Equal(t, "2025-03-21", resp.Date)

		require.NotNil(t, entry)
		require.Len(t, entry.Postings, 2)
		assert.Equal(t, dest.LinkedAccountID, entry.Postings[0].AccountID)
		assert.True(t, entry.Postings[0].Debit.Equal(dec("500")))
		assert.Equal(t, source.LinkedAccountID, entry.Postings[1].AccountID)
		assert.True(t, entry.Postings[1].Credit.Equal(dec("500")))
		assert.Equal(t, "Transfer Caja to Banco", entry.Description)
	})
}
