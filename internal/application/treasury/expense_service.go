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

// ExpenseService records payments out of instruments into expense accounts
type ExpenseService struct {
	expenseRepo treasury.ExpenseRepository
	txScope     TransactionScope
	logger      *zap.Logger

	dispatcher      *appevent.Dispatcher
	businessMetrics *telemetry.BusinessMetrics
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo treasury.ExpenseRepository, txScope TransactionScope, logger *zap.Logger) *ExpenseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExpenseService{
		expenseRepo: expenseRepo,
		txScope:     txScope,
		logger:      logger,
	}
}

// SetEventDispatcher sets the dispatcher for domain events
func (s *ExpenseService) SetEventDispatcher(d *appevent.Dispatcher) {
	s.dispatcher = d
}

// SetBusinessMetrics sets the business metrics collector
func (s *ExpenseService) SetBusinessMetrics(bm *telemetry.BusinessMetrics) {
	s.businessMetrics = bm
}

// RecordExpense records an expense and its journal entry. Nothing is written
// when the account is not eligible or the instrument limit is exceeded.
func (s *ExpenseService) RecordExpense(ctx context.Context, req RecordExpenseRequest) (*ExpenseResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "expense", "record")
	defer span.End()
	telemetry.SetAttributes(span,
		"expense_type_id", req.ExpenseTypeID.String(),
		"account_id", req.AccountID.String(),
		"amount", req.Amount.String(),
	)

	date, err := parseDate(req.Date, "date")
	if err != nil {
		return nil, err
	}

	var (
		expense *treasury.Expense
		entry   *accounting.JournalEntry
	)
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		expenseType, err := repos.ExpenseTypeRepo().FindByID(ctx, req.ExpenseTypeID)
		if err != nil {
			return err
		}
		if expenseType == nil {
			return shared.NewNotFoundError("Expense type")
		}
		instrument, err := loadInstrument(ctx, repos.InstrumentRepo(), req.InstrumentID, "Payment instrument")
		if err != nil {
			return err
		}
		accounts, err := accountsByID(ctx, repos.AccountRepo(),
			uniqueIDs(expenseType.ExpenseGroupAccountID, req.AccountID, instrument.LinkedAccountID))
		if err != nil {
			return err
		}

		expense, err = treasury.NewExpense(treasury.ExpenseInput{
			Type:           expenseType,
			GroupAccount:   accounts[expenseType.ExpenseGroupAccountID],
			Account:        accounts[req.AccountID],
			Instrument:     instrument,
			Amount:         req.Amount,
			Date:           date,
			Description:    req.Description,
			DocumentNumber: req.DocumentNumber,
		})
		if err != nil {
			return err
		}

		description := expense.Description
		if description == "" {
			description = "Expense " + expenseType.Name
		}
		entry, err = accounting.NewJournalEntry(date, description, accounting.SourceExpense, expense.ID,
			accounting.Debit(accounts[req.AccountID], expense.Amount),
			accounting.Credit(accounts[instrument.LinkedAccountID], expense.Amount))
		if err != nil {
			return err
		}
		if err := repos.JournalRepo().Create(ctx, entry); err != nil {
			return err
		}
		expense.AttachJournalEntry(entry.ID)
		return repos.ExpenseRepo().Create(ctx, expense)
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.logger.Info("Expense recorded",
		zap.String("expense_id", expense.ID.String()),
		zap.String("amount", expense.Amount.StringFixed(2)))
	s.dispatcher.Dispatch(ctx, expense, entry)
	s.businessMetrics.RecordExpense(ctx, expense.Amount)
	resp := toExpenseResponse(expense)
	return &resp, nil
}

// List lists expenses newest first
func (s *ExpenseService) List(ctx context.Context, filter ListFilter) (shared.Paginated[ExpenseResponse], error) {
	f := shared.Filter{Page: filter.Page, PageSize: filter.PageSize}
	expenses, total, err := s.expenseRepo.FindAll(ctx, f)
	if err != nil {
		return shared.Paginated[ExpenseResponse]{}, err
	}
	out := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		out[i] = toExpenseResponse(&expenses[i])
	}
	return shared.NewPaginated(out, total, f.Page, f.Limit()), nil
}

func uniqueIDs(ids ...uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
