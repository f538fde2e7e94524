package accounting

import (
	"context"
	"strings"

	"github.com/google/uuid"
	appevent "github.com/propledger/backend/internal/application/event"
	"github.com/propledger/backend/internal/domain/accounting"
	"github.com/propledger/backend/internal/domain/shared"
)

// RegistryService manages the registries bound to the chart of accounts:
// billing concepts, expense types and payment instruments.
type RegistryService struct {
	accountRepo     accounting.AccountRepository
	conceptRepo     accounting.ConceptRepository
	expenseTypeRepo accounting.ExpenseTypeRepository
	instrumentRepo  accounting.InstrumentRepository
	dispatcher      *appevent.Dispatcher
}

// NewRegistryService creates a new RegistryService
func NewRegistryService(
	accountRepo accounting.AccountRepository,
	conceptRepo accounting.ConceptRepository,
	expenseTypeRepo accounting.ExpenseTypeRepository,
	instrumentRepo accounting.InstrumentRepository,
) *RegistryService {
	return &RegistryService{
		accountRepo:     accountRepo,
		conceptRepo:     conceptRepo,
		expenseTypeRepo: expenseTypeRepo,
		instrumentRepo:  instrumentRepo,
	}
}

// SetEventDispatcher sets the dispatcher for domain events
func (s *RegistryService) SetEventDispatcher(d *appevent.Dispatcher) {
	s.dispatcher = d
}

func (s *RegistryService) loadAccount(ctx context.Context, id uuid.UUID, label string) (*accounting.Account, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, shared.NewNotFoundError(label)
	}
	return account, nil
}

// accountCodes maps account ids to codes for response enrichment
func (s *RegistryService) accountCodes(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	codes := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return codes, nil
	}
	accounts, err := s.accountRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		codes[a.ID] = a.Code
	}
	return codes, nil
}

// ===================== Concepts =====================

// CreateConcept creates a billing concept bound to an income account
func (s *RegistryService) CreateConcept(ctx context.Context, req CreateConceptRequest) (*ConceptResponse, error) {
	account, err := s.loadAccount(ctx, req.IncomeAccountID, "Income account")
	if err != nil {
		return nil, err
	}
	concept, err := accounting.NewConcept(req.Name, account)
	if err != nil {
		return nil, err
	}
	if err := s.conceptRepo.Save(ctx, concept); err != nil {
		return nil, err
	}
	s.dispatcher.Dispatch(ctx, concept)
	return toConceptResponse(concept, account.Code), nil
}

// ListConcepts lists billing concepts
func (s *RegistryService) ListConcepts(ctx context.Context, activeOnly bool) ([]ConceptResponse, error) {
	concepts, err := s.conceptRepo.FindAll(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, len(concepts))
	for i := range concepts {
		ids[i] = concepts[i].IncomeAccountID
	}
	codes, err := s.accountCodes(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]ConceptResponse, len(concepts))
	for i := range concepts {
		out[i] = *toConceptResponse(&concepts[i], codes[concepts[i].IncomeAccountID])
	}
	return out, nil
}

// DeactivateConcept deactivates a billing concept
func (s *RegistryService) DeactivateConcept(ctx context.Context, id uuid.UUID) (*ConceptResponse, error) {
	concept, err := s.conceptRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if concept == nil {
		return nil, shared.NewNotFoundError("Concept")
	}
	if err := concept.Deactivate(); err != nil {
		return nil, err
	}
	if err := s.conceptRepo.Save(ctx, concept); err != nil {
		return nil, err
	}
	return toConceptResponse(concept, ""), nil
}

// ===================== Expense types =====================

// CreateExpenseType creates an expense type bound to an expense group account
func (s *RegistryService) CreateExpenseType(ctx context.Context, req CreateExpenseTypeRequest) (*ExpenseTypeResponse, error) {
	group, err := s.loadAccount(ctx, req.ExpenseGroupAccountID, "Expense group account")
	if err != nil {
		return nil, err
	}
	et, err := accounting.NewExpenseType(req.Name, group, req.RequiresDocumentNumber)
	if err != nil {
		return nil, err
	}
	if err := s.expenseTypeRepo.Save(ctx, et); err != nil {
		return nil, err
	}
	s.dispatcher.Dispatch(ctx, et)
	return toExpenseTypeResponse(et, group.Code), nil
}

// ListExpenseTypes lists expense types
func (s *RegistryService) ListExpenseTypes(ctx context.Context, activeOnly bool) ([]ExpenseTypeResponse, error) {
	types, err := s.expenseTypeRepo.FindAll(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, len(types))
	for i := range types {
		ids[i] = types[i].ExpenseGroupAccountID
	}
	codes, err := s.accountCodes(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]ExpenseTypeResponse, len(types))
	for i := range types {
		out[i] = *toExpenseTypeResponse(&types[i], codes[types[i].ExpenseGroupAccountID])
	}
	return out, nil
}

// DeactivateExpenseType deactivates an expense type
func (s *RegistryService) DeactivateExpenseType(ctx context.Context, id uuid.UUID) (*ExpenseTypeResponse, error) {
	et, err := s.expenseTypeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if et == nil {
		return nil, shared.NewNotFoundError("Expense type")
	}
	if err := et.Deactivate(); err != nil {
		return nil, err
	}
	if err := s.expenseTypeRepo.Save(ctx, et); err != nil {
		return nil, err
	}
	return toExpenseTypeResponse(et, ""), nil
}

// EligibleExpenseAccounts lists the accounts an expense of the given type
// may be booked to, ordered by code
func (s *RegistryService) EligibleExpenseAccounts(ctx context.Context, expenseTypeID uuid.UUID) ([]AccountResponse, error) {
	et, err := s.expenseTypeRepo.FindByID(ctx, expenseTypeID)
	if err != nil {
		return nil, err
	}
	if et == nil {
		return nil, shared.NewNotFoundError("Expense type")
	}
	group, err := s.loadAccount(ctx, et.ExpenseGroupAccountID, "Expense group account")
	if err != nil {
		return nil, err
	}

	expenseType := accounting.AccountTypeExpense
	leaf, active := false, true
	candidates, err := s.accountRepo.FindAll(ctx, accounting.AccountFilter{
		Filter:  shared.Filter{PageSize: shared.MaxPageSize},
		Type:    &expenseType,
		IsGroup: &leaf,
		Active:  &active,
	})
	if err != nil {
		return nil, err
	}
	return toAccountResponses(accounting.EligibleAccounts(group.Code, candidates)), nil
}

// ===================== Instruments =====================

// CreateInstrument creates a payment instrument backed by an asset account
func (s *RegistryService) CreateInstrument(ctx context.Context, req CreateInstrumentRequest) (*InstrumentResponse, error) {
	account, err := s.loadAccount(ctx, req.LinkedAccountID, "Linked account")
	if err != nil {
		return nil, err
	}
	kind := accounting.InstrumentKind(strings.ToUpper(strings.TrimSpace(req.Kind)))
	pi, err := accounting.NewPaymentInstrument(req.Name, kind, account, req.RequiresReference, req.SpendingLimit)
	if err != nil {
		return nil, err
	}
	if err := s.instrumentRepo.Save(ctx, pi); err != nil {
		return nil, err
	}
	s.dispatcher.Dispatch(ctx, pi)
	return toInstrumentResponse(pi), nil
}

// ListInstruments lists payment instruments, optionally of one kind
func (s *RegistryService) ListInstruments(ctx context.Context, kind string, activeOnly bool) ([]InstrumentResponse, error) {
	var k *accounting.InstrumentKind
	if kind != "" {
		parsed := accounting.InstrumentKind(strings.ToUpper(kind))
		if !parsed.IsValid() {
			return nil, shared.NewValidationError("Unknown instrument kind " + kind)
		}
		k = &parsed
	}
	instruments, err := s.instrumentRepo.FindAll(ctx, k, activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]InstrumentResponse, len(instruments))
	for i := range instruments {
		out[i] = *toInstrumentResponse(&instruments[i])
	}
	return out, nil
}

// DeactivateInstrument deactivates a payment instrument
func (s *RegistryService) DeactivateInstrument(ctx context.Context, id uuid.UUID) (*InstrumentResponse, error) {
	pi, err := s.instrumentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pi == nil {
		return nil, shared.NewNotFoundError("Payment instrument")
	}
	if err := pi.Deactivate(); err != nil {
		return nil, err
	}
	if err := s.instrumentRepo.Save(ctx, pi); err != nil {
		return nil, err
	}
	return toInstrumentResponse(pi), nil
}
