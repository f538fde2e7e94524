package treasury

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	appevent "github.com/propledger/backend/internal/application/event"
	"github.com/propledger/backend/internal/domain/accounting"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/propledger/backend/internal/domain/treasury"
	"github.com/propledger/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// DepositService lists undeposited receipts and closes them into deposits
type DepositService struct {
	cashRepo    treasury.CashTransactionRepository
	depositRepo treasury.DepositRepository
	txScope     TransactionScope
	logger      *zap.Logger

	dispatcher      *appevent.Dispatcher
	businessMetrics *telemetry.BusinessMetrics
}

// NewDepositService creates a new DepositService
func NewDepositService(
	cashRepo treasury.CashTransactionRepository,
	depositRepo treasury.DepositRepository,
	txScope TransactionScope,
	logger *zap.Logger,
) *DepositService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DepositService{
		cashRepo:    cashRepo,
		depositRepo: depositRepo,
		txScope:     txScope,
		logger:      logger,
	}
}

// SetEventDispatcher sets the dispatcher for domain events
func (s *DepositService) SetEventDispatcher(d *appevent.Dispatcher) {
	s.dispatcher = d
}

// SetBusinessMetrics sets the business metrics collector
func (s *DepositService) SetBusinessMetrics(bm *telemetry.BusinessMetrics) {
	s.businessMetrics = bm
}

// ListPending returns every receipt of the given instrument kind that is
// neither deposited nor cancelled, oldest first. The kind defaults to CASH.
func (s *DepositService) ListPending(ctx context.Context, kind string) ([]CashTransactionResponse, error) {
	k := accounting.InstrumentKindCash
	if kind != "" {
		k = accounting.InstrumentKind(kind)
		if !k.IsValid() {
			return nil, shared.NewValidationError(fmt.Sprintf("Unknown instrument kind %q", kind))
		}
	}
	notCancelled := false
	f := treasury.CashTransactionFilter{
		Filter:         shared.Filter{Page: 1, PageSize: shared.MaxPageSize, OrderBy: "timestamp", OrderDir: "asc"},
		InstrumentKind: &k,
		Cancelled:      &notCancelled,
		Undeposited:    true,
	}

	out := make([]CashTransactionResponse, 0)
	for {
		page, _, err := s.cashRepo.FindAll(ctx, f)
		if err != nil {
			return nil, err
		}
		for i := range page {
			out = append(out, toCashTransactionResponse(&page[i]))
		}
		if len(page) < f.Limit() {
			return out, nil
		}
		f.Page++
	}
}

// CreateDeposit closes the selected receipts into one deposit. Either every
// selected receipt is stamped or none is.
func (s *DepositService) CreateDeposit(ctx context.Context, actorID uuid.UUID, req CreateDepositRequest) (*DepositResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "deposit", "create")
	defer span.End()
	telemetry.SetAttributes(span, "actor_id", actorID.String(), "selected", len(req.TransactionIDs))

	if actorID == uuid.Nil {
		return nil, shared.NewValidationError("Acting user is required to create a deposit")
	}
	if len(req.TransactionIDs) == 0 {
		return nil, shared.ErrEmptySelection
	}
	seen := make(map[uuid.UUID]bool, len(req.TransactionIDs))
	for _, id := range req.TransactionIDs {
		if seen[id] {
			return nil, shared.NewValidationError(fmt.Sprintf("Transaction %s selected twice", id))
		}
		seen[id] = true
	}
	date, err := parseDate(req.Date, "date")
	if err != nil {
		return nil, err
	}

	var (
		deposit *treasury.Deposit
		entry   *accounting.JournalEntry
	)
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		members, err := repos.CashTransactionRepo().FindByIDs(ctx, req.TransactionIDs)
		if err != nil {
			return err
		}
		if len(members) != len(req.TransactionIDs) {
			return shared.NewDomainError(shared.CodeAlreadyDeposited,
				"One or more selected transactions do not exist")
		}

		deposit, err = treasury.NewDeposit(actorID, treasury.DepositDetails{
			Bank:                    req.Bank,
			DestinationAccount:      req.DestinationAccount,
			ReferenceNumber:         req.ReferenceNumber,
			Date:                    date,
			DestinationInstrumentID: req.DestinationInstrumentID,
		}, members)
		if err != nil {
			return err
		}

		if req.DestinationInstrumentID != nil {
			entry, err = depositEntry(ctx, repos, deposit, *req.DestinationInstrumentID, members)
			if err != nil {
				return err
			}
			if entry != nil {
				if err := repos.JournalRepo().Create(ctx, entry); err != nil {
					return err
				}
				deposit.AttachJournalEntry(entry.ID)
			}
		}

		if err := repos.DepositRepo().Create(ctx, deposit); err != nil {
			return err
		}
		stamped, err := repos.CashTransactionRepo().StampDeposit(ctx, deposit.ID, deposit.MemberTransactionIDs)
		if err != nil {
			return err
		}
		if stamped != int64(len(deposit.MemberTransactionIDs)) {
			return shared.NewDomainError(shared.CodeAlreadyDeposited,
				fmt.Sprintf("Only %d of %d transactions could be deposited; another deposit claimed the rest",
					stamped, len(deposit.MemberTransactionIDs)))
		}
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.logger.Info("Deposit closed",
		zap.String("deposit_id", deposit.ID.String()),
		zap.String("actor_id", actorID.String()),
		zap.Int("transactions", len(deposit.MemberTransactionIDs)),
		zap.String("amount", deposit.Amount.StringFixed(2)))
	s.dispatcher.Dispatch(ctx, deposit)
	if entry != nil {
		s.dispatcher.Dispatch(ctx, entry)
	}
	s.businessMetrics.RecordDeposit(ctx, len(deposit.MemberTransactionIDs), deposit.Amount)
	resp := toDepositResponse(deposit)
	return &resp, nil
}

// depositEntry debits the destination BANK instrument's account and credits
// the accounts of the instruments the receipts were taken with. Receipts
// already taken on the destination instrument move nothing. It returns nil
// when no money moves between accounts.
func depositEntry(ctx context.Context, repos TransactionalRepositories, deposit *treasury.Deposit, destID uuid.UUID, members []treasury.CashTransaction) (*accounting.JournalEntry, error) {
	dest, err := loadInstrument(ctx, repos.InstrumentRepo(), destID, "Destination instrument")
	if err != nil {
		return nil, err
	}
	if dest.Kind != accounting.InstrumentKindBank {
		return nil, shared.NewValidationError(fmt.Sprintf("Destination instrument %s must be a BANK instrument", dest.Name))
	}
	if !dest.Active {
		return nil, shared.NewDomainError(shared.CodeInvalidState, fmt.Sprintf("Instrument %s is inactive", dest.Name))
	}

	instrumentIDs := make([]uuid.UUID, 0)
	seen := make(map[uuid.UUID]bool)
	for _, m := range members {
		if !seen[m.InstrumentID] {
			seen[m.InstrumentID] = true
			instrumentIDs = append(instrumentIDs, m.InstrumentID)
		}
	}
	instruments, err := repos.InstrumentRepo().FindByIDs(ctx, instrumentIDs)
	if err != nil {
		return nil, err
	}
	accountByInstrument := make(map[uuid.UUID]uuid.UUID, len(instruments))
	for _, pi := range instruments {
		accountByInstrument[pi.ID] = pi.LinkedAccountID
	}

	credits := newCreditGroups()
	for _, m := range members {
		accountID, ok := accountByInstrument[m.InstrumentID]
		if !ok {
			return nil, shared.NewNotFoundError("Payment instrument " + m.InstrumentID.String())
		}
		if accountID == dest.LinkedAccountID {
			continue
		}
		credits.add(accountID, m.Amount)
	}
	if len(credits.order) == 0 {
		return nil, nil
	}

	accounts, err := accountsByID(ctx, repos.AccountRepo(), append([]uuid.UUID{dest.LinkedAccountID}, credits.order...))
	if err != nil {
		return nil, err
	}
	lines := append([]accounting.JournalLine{accounting.Debit(accounts[dest.LinkedAccountID], credits.total())},
		credits.lines(accounts)...)
	return accounting.NewJournalEntry(deposit.Date,
		fmt.Sprintf("Deposit to %s %s", deposit.Bank, deposit.DestinationAccount),
		accounting.SourceDeposit, deposit.ID, lines...)
}

// GetByID gets a deposit with its member transaction ids
func (s *DepositService) GetByID(ctx context.Context, id uuid.UUID) (*DepositResponse, error) {
	d, err := s.depositRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, shared.NewNotFoundError("Deposit")
	}
	resp := toDepositResponse(d)
	return &resp, nil
}

// List lists deposits newest first
func (s *DepositService) List(ctx context.Context, filter ListFilter) (shared.Paginated[DepositResponse], error) {
	f := shared.Filter{Page: filter.Page, PageSize: filter.PageSize}
	deposits, total, err := s.depositRepo.FindAll(ctx, f)
	if err != nil {
		return shared.Paginated[DepositResponse]{}, err
	}
	out := make([]DepositResponse, len(deposits))
	for i := range deposits {
		out[i] = toDepositResponse(&deposits[i])
	}
	return shared.NewPaginated(out, total, f.Page, f.Limit()), nil
}
