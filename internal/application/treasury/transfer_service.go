package treasury

import (
	"context"

	"github.com/google/uuid"
	appevent "github.com/propledger/backend/internal/application/event"
	"github.com/propledger/backend/internal/domain/accounting"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/propledger/backend/internal/domain/treasury"
	"github.com/propledger/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// TransferService moves money between payment instruments
type TransferService struct {
	transferRepo treasury.TransferRepository
	txScope      TransactionScope
	logger       *zap.Logger

	dispatcher      *appevent.Dispatcher
	businessMetrics *telemetry.BusinessMetrics
}

// NewTransferService creates a new TransferService
func NewTransferService(transferRepo treasury.TransferRepository, txScope TransactionScope, logger *zap.Logger) *TransferService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransferService{
		transferRepo: transferRepo,
		txScope:      txScope,
		logger:       logger,
	}
}

// SetEventDispatcher sets the dispatcher for domain events
func (s *TransferService) SetEventDispatcher(d *appevent.Dispatcher) {
	s.dispatcher = d
}

// SetBusinessMetrics sets the business metrics collector
func (s *TransferService) SetBusinessMetrics(bm *telemetry.BusinessMetrics) {
	s.businessMetrics = bm
}

// Transfer records a movement from the source to the destination instrument
// together with its journal entry
func (s *TransferService) Transfer(ctx context.Context, req CreateTransferRequest) (*TransferResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "transfer", "create")
	defer span.End()
	telemetry.SetAttributes(span,
		"source_instrument_id", req.SourceInstrumentID.String(),
		"destination_instrument_id", req.DestinationInstrumentID.String(),
		"amount", req.Amount.String(),
	)

	if err := treasury.ValidateTransferRequest(req.SourceInstrumentID, req.DestinationInstrumentID, req.Amount); err != nil {
		return nil, err
	}
	date, err := parseDate(req.Date, "date")
	if err != nil {
		return nil, err
	}

	var (
		transfer *treasury.Transfer
		entry    *accounting.JournalEntry
	)
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		source, err := loadInstrument(ctx, repos.InstrumentRepo(), req.SourceInstrumentID, "Source instrument")
		if err != nil {
			return err
		}
		dest, err := loadInstrument(ctx, repos.InstrumentRepo(), req.DestinationInstrumentID, "Destination instrument")
		if err != nil {
			return err
		}
		transfer, err = treasury.NewTransfer(source, dest, req.Amount, date, req.Description)
		if err != nil {
			return err
		}

		accounts, err := accountsByID(ctx, repos.AccountRepo(), []uuid.UUID{source.LinkedAccountID, dest.LinkedAccountID})
		if err != nil {
			return err
		}
		description := transfer.Description
		if description == "" {
			description = "Transfer " + source.Name + " to " + dest.Name
		}
		entry, err = accounting.NewJournalEntry(date, description, accounting.SourceTransfer, transfer.ID,
			accounting.Debit(accounts[dest.LinkedAccountID], transfer.Amount),
			accounting.Credit(accounts[source.LinkedAccountID], transfer.Amount))
		if err != nil {
			return err
		}
		if err := repos.JournalRepo().Create(ctx, entry); err != nil {
			return err
		}
		transfer.AttachJournalEntry(entry.ID)
		return repos.TransferRepo().Create(ctx, transfer)
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.logger.Info("Transfer recorded",
		zap.String("transfer_id", transfer.ID.String()),
		zap.String("amount", transfer.Amount.StringFixed(2)))
	s.dispatcher.Dispatch(ctx, transfer, entry)
	s.businessMetrics.RecordTransfer(ctx, transfer.Amount)
	resp := toTransferResponse(transfer)
	return &resp, nil
}

// List lists transfers newest first
func (s *TransferService) List(ctx context.Context, filter ListFilter) (shared.Paginated[TransferResponse], error) {
	f := shared.Filter{Page: filter.Page, PageSize: filter.PageSize}
	transfers, total, err := s.transferRepo.FindAll(ctx, f)
	if err != nil {
		return shared.Paginated[TransferResponse]{}, err
	}
	out := make([]TransferResponse, len(transfers))
	for i := range transfers {
		out[i] = toTransferResponse(&transfers[i])
	}
	return shared.NewPaginated(out, total, f.Page, f.Limit()), nil
}
