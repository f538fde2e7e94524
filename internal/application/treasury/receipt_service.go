package treasury

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	appevent "github.com/propledger/backend/internal/application/event"
	"github.com/propledger/backend/internal/domain/accounting"
	"github.com/propledger/backend/internal/domain/billing"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/propledger/backend/internal/domain/treasury"
	"github.com/propledger/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// ReceiptService records receipts against billable items and cancels them
type ReceiptService struct {
	cashRepo treasury.CashTransactionRepository
	txScope  TransactionScope
	logger   *zap.Logger
	now      func() time.Time

	dispatcher      *appevent.Dispatcher
	businessMetrics *telemetry.BusinessMetrics
}

// NewReceiptService creates a new ReceiptService
func NewReceiptService(cashRepo treasury.CashTransactionRepository, txScope TransactionScope, logger *zap.Logger) *ReceiptService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReceiptService{
		cashRepo: cashRepo,
		txScope:  txScope,
		logger:   logger,
		now:      time.Now,
	}
}

// SetEventDispatcher sets the dispatcher for domain events
func (s *ReceiptService) SetEventDispatcher(d *appevent.Dispatcher) {
	s.dispatcher = d
}

// SetBusinessMetrics sets the business metrics collector
func (s *ReceiptService) SetBusinessMetrics(bm *telemetry.BusinessMetrics) {
	s.businessMetrics = bm
}

// SetClock overrides the receipt timestamp source
func (s *ReceiptService) SetClock(now func() time.Time) {
	s.now = now
}

// ApplyReceipt records a receipt and applies it to billable items of the
// unit. The full amount must be applied: an amount larger than what the
// chosen items owe is rejected with OVER_APPLICATION.
func (s *ReceiptService) ApplyReceipt(ctx context.Context, req ApplyReceiptRequest) (*CashTransactionResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "receipt", "apply")
	defer span.End()
	telemetry.SetAttributes(span,
		"unit_id", req.UnitID.String(),
		"instrument_id", req.InstrumentID.String(),
		"amount", req.Amount.String(),
	)

	if !req.Amount.IsPositive() {
		return nil, shared.NewValidationError("Receipt amount must be positive")
	}
	if len(req.Allocations) > 0 && len(req.TargetItemIDs) > 0 {
		return nil, shared.NewValidationError("Use either allocations or target_item_ids, not both")
	}

	var (
		cash       *treasury.CashTransaction
		instrument *accounting.PaymentInstrument
		touched    []*billing.BillableItem
		entry      *accounting.JournalEntry
	)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		instrument, err = loadInstrument(ctx, repos.InstrumentRepo(), req.InstrumentID, "Payment instrument")
		if err != nil {
			return err
		}
		if !instrument.Active {
			return shared.NewDomainError(shared.CodeInvalidState, fmt.Sprintf("Instrument %s is inactive", instrument.Name))
		}
		if err := instrument.CheckReference(req.Reference); err != nil {
			return err
		}

		cash, err = treasury.NewCashTransaction(req.PayerPersonID, req.UnitID, req.InstrumentID, req.Amount, req.Reference, s.now())
		if err != nil {
			return err
		}

		plan, err := s.planAllocations(ctx, repos.BillableItemRepo(), req)
		if err != nil {
			return err
		}
		for _, step := range plan {
			if err := step.Item.ApplyPayment(step.Amount); err != nil {
				return err
			}
			if err := repos.BillableItemRepo().SaveWithLock(ctx, step.Item); err != nil {
				return err
			}
			if err := cash.AddAllocation(step.Item.ID, step.Item.ConceptID, step.Amount); err != nil {
				return err
			}
			touched = append(touched, step.Item)
		}
		if err := cash.Seal(); err != nil {
			return err
		}

		entry, err = receiptEntry(ctx, repos, cash, instrument)
		if err != nil {
			return err
		}
		if err := repos.JournalRepo().Create(ctx, entry); err != nil {
			return err
		}
		cash.AttachJournalEntry(entry.ID)
		return repos.CashTransactionRepo().Create(ctx, cash)
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	telemetry.SetAttributes(span, "transaction_id", cash.ID.String(), "allocations", len(cash.Allocations))
	s.logger.Info("Receipt recorded",
		zap.String("transaction_id", cash.ID.String()),
		zap.String("unit_id", cash.UnitID.String()),
		zap.String("amount", cash.Amount.StringFixed(2)),
		zap.Int("allocations", len(cash.Allocations)))

	s.dispatcher.Dispatch(ctx, cash, entry)
	for _, item := range touched {
		s.dispatcher.Dispatch(ctx, item)
	}
	s.businessMetrics.RecordReceipt(ctx, string(instrument.Kind), cash.Amount)
	resp := toCashTransactionResponse(cash)
	return &resp, nil
}

// planAllocations resolves which items the receipt pays and how much each gets
func (s *ReceiptService) planAllocations(ctx context.Context, repo billing.BillableItemRepository, req ApplyReceiptRequest) ([]treasury.PlannedAllocation, error) {
	switch {
	case len(req.Allocations) > 0:
		ids := make([]uuid.UUID, len(req.Allocations))
		requested := make([]treasury.RequestedAllocation, len(req.Allocations))
		for i, a := range req.Allocations {
			ids[i] = a.ItemID
			requested[i] = treasury.RequestedAllocation{BillableItemID: a.ItemID, Amount: a.Amount}
		}
		byID, err := s.loadUnitItems(ctx, repo, req.UnitID, ids)
		if err != nil {
			return nil, err
		}
		return treasury.PlanExplicit(req.Amount, requested, byID)

	case len(req.TargetItemIDs) > 0:
		byID, err := s.loadUnitItems(ctx, repo, req.UnitID, req.TargetItemIDs)
		if err != nil {
			return nil, err
		}
		ordered := make([]*billing.BillableItem, 0, len(req.TargetItemIDs))
		seen := make(map[uuid.UUID]bool, len(req.TargetItemIDs))
		for _, id := range req.TargetItemIDs {
			if seen[id] {
				return nil, shared.NewValidationError(fmt.Sprintf("Item %s is targeted twice", id))
			}
			seen[id] = true
			item := byID[id]
			if !item.IsOutstanding() {
				return nil, shared.NewDomainError(shared.CodeInvalidState,
					fmt.Sprintf("Billable item %s is %s and cannot receive payments", item.ID, item.Status))
			}
			ordered = append(ordered, item)
		}
		return treasury.PlanSequential(req.Amount, ordered)

	default:
		outstanding, err := repo.FindOutstandingByUnit(ctx, req.UnitID)
		if err != nil {
			return nil, err
		}
		items := make([]*billing.BillableItem, 0, len(outstanding))
		for i := range outstanding {
			if outstanding[i].IsAutoPayable() {
				items = append(items, &outstanding[i])
			}
		}
		return treasury.PlanSequential(req.Amount, items)
	}
}

// loadUnitItems loads ids and checks that every one exists and belongs to the unit
func (s *ReceiptService) loadUnitItems(ctx context.Context, repo billing.BillableItemRepository, unitID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]*billing.BillableItem, error) {
	items, err := repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*billing.BillableItem, len(items))
	for i := range items {
		byID[items[i].ID] = &items[i]
	}
	for _, id := range ids {
		item, ok := byID[id]
		if !ok {
			return nil, shared.NewNotFoundError(fmt.Sprintf("Billable item %s", id))
		}
		if item.UnitID != unitID {
			return nil, shared.NewValidationError(fmt.Sprintf("Billable item %s belongs to another unit", id))
		}
	}
	return byID, nil
}

// receiptEntry debits the instrument account and credits each concept's
// income account with its share of the receipt
func receiptEntry(ctx context.Context, repos TransactionalRepositories, cash *treasury.CashTransaction, instrument *accounting.PaymentInstrument) (*accounting.JournalEntry, error) {
	conceptIDs := make([]uuid.UUID, 0, len(cash.Allocations))
	for _, a := range cash.Allocations {
		conceptIDs = append(conceptIDs, a.ConceptID)
	}
	concepts, err := repos.ConceptRepo().FindByIDs(ctx, conceptIDs)
	if err != nil {
		return nil, err
	}
	incomeByConcept := make(map[uuid.UUID]uuid.UUID, len(concepts))
	for _, c := range concepts {
		incomeByConcept[c.ID] = c.IncomeAccountID
	}

	credits := newCreditGroups()
	for _, a := range cash.Allocations {
		accountID, ok := incomeByConcept[a.ConceptID]
		if !ok {
			return nil, shared.NewNotFoundError("Concept " + a.ConceptID.String())
		}
		credits.add(accountID, a.Amount)
	}
	accountIDs := append([]uuid.UUID{instrument.LinkedAccountID}, credits.order...)
	accounts, err := accountsByID(ctx, repos.AccountRepo(), accountIDs)
	if err != nil {
		return nil, err
	}

	lines := append([]accounting.JournalLine{accounting.Debit(accounts[instrument.LinkedAccountID], cash.Amount)},
		credits.lines(accounts)...)
	return accounting.NewJournalEntry(cash.Timestamp, "Receipt "+cash.ID.String(), accounting.SourceReceipt, cash.ID, lines...)
}

// CancelTransaction cancels an undeposited receipt, restores the balances it
// paid and posts the reversing journal entry. Allocations to items cancelled
// since then restore nothing, but the journal is still reversed.
func (s *ReceiptService) CancelTransaction(ctx context.Context, id uuid.UUID) (*CashTransactionResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "receipt", "cancel")
	defer span.End()
	telemetry.SetAttributes(span, "transaction_id", id.String())

	var (
		cash     *treasury.CashTransaction
		reversal *accounting.JournalEntry
		restored []*billing.BillableItem
	)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		cash, err = repos.CashTransactionRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if cash == nil {
			return shared.NewNotFoundError("Cash transaction")
		}
		if err := cash.Cancel(); err != nil {
			return err
		}

		ids := make([]uuid.UUID, len(cash.Allocations))
		for i, a := range cash.Allocations {
			ids[i] = a.BillableItemID
		}
		items, err := repos.BillableItemRepo().FindByIDs(ctx, ids)
		if err != nil {
			return err
		}
		byID := make(map[uuid.UUID]*billing.BillableItem, len(items))
		for i := range items {
			byID[items[i].ID] = &items[i]
		}
		for _, a := range cash.Allocations {
			item, ok := byID[a.BillableItemID]
			if !ok {
				return shared.NewNotFoundError(fmt.Sprintf("Billable item %s", a.BillableItemID))
			}
			if item.Status == billing.ItemStatusCancelled {
				// the item was written off after this payment; its balance stays at zero
				continue
			}
			if err := item.ReversePayment(a.Amount); err != nil {
				return err
			}
			if err := repos.BillableItemRepo().SaveWithLock(ctx, item); err != nil {
				return err
			}
			restored = append(restored, item)
		}

		if cash.JournalEntryID != nil {
			original, err := repos.JournalRepo().FindByID(ctx, *cash.JournalEntryID)
			if err != nil {
				return err
			}
			if original != nil {
				reversal = original.Reverse(*cash.CancelledAt, "Reversal of receipt "+cash.ID.String(),
					accounting.SourceReceiptReversal, cash.ID)
				if err := repos.JournalRepo().Create(ctx, reversal); err != nil {
					return err
				}
			}
		}
		return repos.CashTransactionRepo().SaveWithLock(ctx, cash)
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.logger.Info("Receipt cancelled",
		zap.String("transaction_id", cash.ID.String()),
		zap.Int("restored_items", len(restored)))
	s.dispatcher.Dispatch(ctx, cash)
	if reversal != nil {
		s.dispatcher.Dispatch(ctx, reversal)
	}
	s.businessMetrics.RecordReceiptCancelled(ctx)
	resp := toCashTransactionResponse(cash)
	return &resp, nil
}

// GetByID gets a receipt with its allocations
func (s *ReceiptService) GetByID(ctx context.Context, id uuid.UUID) (*CashTransactionResponse, error) {
	cash, err := s.cashRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cash == nil {
		return nil, shared.NewNotFoundError("Cash transaction")
	}
	resp := toCashTransactionResponse(cash)
	return &resp, nil
}

// List lists receipts newest first
func (s *ReceiptService) List(ctx context.Context, filter CashTransactionListFilter) (shared.Paginated[CashTransactionResponse], error) {
	var empty shared.Paginated[CashTransactionResponse]
	f := treasury.CashTransactionFilter{
		Filter:    shared.Filter{Page: filter.Page, PageSize: filter.PageSize},
		Cancelled: filter.Cancelled,
	}
	var err error
	if f.UnitID, err = parseOptionalID(filter.UnitID, "unit_id"); err != nil {
		return empty, err
	}
	if f.PayerPersonID, err = parseOptionalID(filter.PayerPersonID, "payer_person_id"); err != nil {
		return empty, err
	}
	if f.InstrumentID, err = parseOptionalID(filter.InstrumentID, "instrument_id"); err != nil {
		return empty, err
	}
	if f.DepositID, err = parseOptionalID(filter.DepositID, "deposit_id"); err != nil {
		return empty, err
	}
	if filter.InstrumentKind != "" {
		kind := accounting.InstrumentKind(filter.InstrumentKind)
		f.InstrumentKind = &kind
	}
	if filter.FromDate != "" {
		from, err := parseDate(filter.FromDate, "from_date")
		if err != nil {
			return empty, err
		}
		f.FromDate = &from
	}
	if filter.ToDate != "" {
		to, err := parseDate(filter.ToDate, "to_date")
		if err != nil {
			return empty, err
		}
		end := to.AddDate(0, 0, 1)
		f.ToDate = &end
	}

	txs, total, err := s.cashRepo.FindAll(ctx, f)
	if err != nil {
		return empty, err
	}
	out := make([]CashTransactionResponse, len(txs))
	for i := range txs {
		out[i] = toCashTransactionResponse(&txs[i])
	}
	return shared.NewPaginated(out, total, f.Page, f.Limit()), nil
}
