package billing

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	appevent "github.com/propledger/backend/internal/application/event"
	"github.com/propledger/backend/internal/domain/accounting"
	"github.com/propledger/backend/internal/domain/billing"
	"github.com/propledger/backend/internal/domain/property"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/propledger/backend/internal/domain/shared/valueobject"
	"github.com/propledger/backend/internal/infrastructure/telemetry"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Policy holds the configurable rules of billing operations
type Policy struct {
	MinRollbackReasonLength int
	MaxRetroactiveMonths    int
	DefaultDueDay           int
}

// DefaultPolicy returns the default billing rules
func DefaultPolicy() Policy {
	return Policy{
		MinRollbackReasonLength: billing.MinRollbackReasonLength,
		MaxRetroactiveMonths:    billing.MaxRetroactiveMonths,
		DefaultDueDay:           10,
	}
}

// BillingService manages billable items: manual creation, generation runs,
// cancellation and bulk rollback
type BillingService struct {
	itemRepo    billing.BillableItemRepository
	unitRepo    property.UnitRepository
	conceptRepo accounting.ConceptRepository
	txScope     TransactionScope
	policy      Policy
	logger      *zap.Logger
	now         func() time.Time

	dispatcher      *appevent.Dispatcher
	businessMetrics *telemetry.BusinessMetrics
}

// NewBillingService creates a new BillingService
func NewBillingService(
	itemRepo billing.BillableItemRepository,
	unitRepo property.UnitRepository,
	conceptRepo accounting.ConceptRepository,
	txScope TransactionScope,
	policy Policy,
	logger *zap.Logger,
) *BillingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	defaults := DefaultPolicy()
	if policy.MinRollbackReasonLength <= 0 {
		policy.MinRollbackReasonLength = defaults.MinRollbackReasonLength
	}
	if policy.MaxRetroactiveMonths <= 0 {
		policy.MaxRetroactiveMonths = defaults.MaxRetroactiveMonths
	}
	if policy.DefaultDueDay <= 0 {
		policy.DefaultDueDay = defaults.DefaultDueDay
	}
	return &BillingService{
		itemRepo:    itemRepo,
		unitRepo:    unitRepo,
		conceptRepo: conceptRepo,
		txScope:     txScope,
		policy:      policy,
		logger:      logger,
		now:         time.Now,
	}
}

// SetEventDispatcher sets the dispatcher for domain events
func (s *BillingService) SetEventDispatcher(d *appevent.Dispatcher) {
	s.dispatcher = d
}

// SetBusinessMetrics sets the business metrics collector
func (s *BillingService) SetBusinessMetrics(bm *telemetry.BusinessMetrics) {
	s.businessMetrics = bm
}

// SetClock overrides the time source used to derive OVERDUE
func (s *BillingService) SetClock(now func() time.Time) {
	s.now = now
}

// Policy returns the rules in effect
func (s *BillingService) Policy() Policy {
	return s.policy
}

// ===================== Single item operations =====================

// CreateManual creates one billable item by hand
func (s *BillingService) CreateManual(ctx context.Context, req CreateBillableRequest) (*BillableItemResponse, error) {
	period, err := parsePeriod(req.Period)
	if err != nil {
		return nil, err
	}
	dueDate, err := parseDate(req.DueDate, "due_date")
	if err != nil {
		return nil, err
	}

	var item *billing.BillableItem
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		unit, err := loadActiveUnit(ctx, repos.UnitRepo(), req.UnitID)
		if err != nil {
			return err
		}
		if _, err := loadActiveConcept(ctx, repos.ConceptRepo(), req.ConceptID); err != nil {
			return err
		}

		personID := req.PersonID
		if personID == nil {
			contracts, err := repos.ContractRepo().FindByUnit(ctx, unit.ID)
			if err != nil {
				return err
			}
			if c := property.PickActive(contracts, period); c != nil {
				personID = &c.PersonID
			}
		}

		exists, err := repos.BillableItemRepo().ExistsActive(ctx, unit.ID, req.ConceptID, period)
		if err != nil {
			return err
		}
		if exists {
			return duplicateObligation(unit.Code, period)
		}

		item, err = billing.NewBillableItem(unit.ID, personID, req.ConceptID, period, req.BaseAmount, dueDate)
		if err != nil {
			return err
		}
		return repos.BillableItemRepo().Create(ctx, item)
	})
	if err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, item)
	resp := toBillableItemResponse(item, s.now())
	return &resp, nil
}

// GetByID gets a billable item by ID
func (s *BillingService) GetByID(ctx context.Context, id uuid.UUID) (*BillableItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, shared.NewNotFoundError("Billable item")
	}
	resp := toBillableItemResponse(item, s.now())
	return &resp, nil
}

// List lists billable items. The OVERDUE status filter is resolved against
// the current date.
func (s *BillingService) List(ctx context.Context, filter BillableListFilter) (shared.Paginated[BillableItemResponse], error) {
	var empty shared.Paginated[BillableItemResponse]
	now := s.now()

	f := billing.BillableItemFilter{
		Filter: shared.Filter{Page: filter.Page, PageSize: filter.PageSize},
		Now:    now,
	}
	var err error
	if f.UnitID, err = parseOptionalID(filter.UnitID, "unit_id"); err != nil {
		return empty, err
	}
	if f.PersonID, err = parseOptionalID(filter.PersonID, "person_id"); err != nil {
		return empty, err
	}
	if f.ConceptID, err = parseOptionalID(filter.ConceptID, "concept_id"); err != nil {
		return empty, err
	}
	if filter.Period != "" {
		p, err := parsePeriod(filter.Period)
		if err != nil {
			return empty, err
		}
		f.Period = &p
	}
	if filter.Status != "" {
		st := billing.ItemStatus(strings.ToUpper(filter.Status))
		if !st.IsValid() {
			return empty, shared.NewValidationError("Unknown status " + filter.Status)
		}
		f.Status = &st
	}

	items, total, err := s.itemRepo.FindAll(ctx, f)
	if err != nil {
		return empty, err
	}
	out := make([]BillableItemResponse, len(items))
	for i := range items {
		out[i] = toBillableItemResponse(&items[i], now)
	}
	return shared.NewPaginated(out, total, f.Page, f.Limit()), nil
}

// Update changes the due date or the auto-pay block flag of an item
func (s *BillingService) Update(ctx context.Context, id uuid.UUID, req UpdateBillableRequest) (*BillableItemResponse, error) {
	var item *billing.BillableItem
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		item, err = loadItem(ctx, repos.BillableItemRepo(), id)
		if err != nil {
			return err
		}
		if req.DueDate != nil {
			due, err := parseDate(*req.DueDate, "due_date")
			if err != nil {
				return err
			}
			if err := item.UpdateDueDate(due); err != nil {
				return err
			}
		}
		if req.AutoPayBlocked != nil {
			if err := item.SetAutoPayBlocked(*req.AutoPayBlocked); err != nil {
				return err
			}
		}
		if !item.IsModified() {
			return nil
		}
		return repos.BillableItemRepo().SaveWithLock(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	resp := toBillableItemResponse(item, s.now())
	return &resp, nil
}

// Cancel cancels a PENDING or OVERDUE item, partly paid ones included
func (s *BillingService) Cancel(ctx context.Context, id uuid.UUID, req CancelBillableRequest) (*BillableItemResponse, error) {
	var item *billing.BillableItem
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		item, err = loadItem(ctx, repos.BillableItemRepo(), id)
		if err != nil {
			return err
		}
		if err := item.Cancel(req.Reason); err != nil {
			return err
		}
		return repos.BillableItemRepo().SaveWithLock(ctx, item)
	})
	if err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, item)
	s.businessMetrics.RecordBillablesCancelled(ctx, "single", 1)
	resp := toBillableItemResponse(item, s.now())
	return &resp, nil
}

// ===================== Generation =====================

// GenerateGlobal bills every active unit matching the unit type filter for
// one period. Units that already have an item for the concept and period,
// and units with no amount source, are skipped and reported.
func (s *BillingService) GenerateGlobal(ctx context.Context, req GenerateGlobalRequest) (*GenerationResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "billing", "generate_global")
	defer span.End()
	telemetry.SetAttributes(span,
		"period", req.Period,
		"concept_id", req.ConceptID.String(),
		"unit_type", req.UnitType,
	)

	period, err := parsePeriod(req.Period)
	if err != nil {
		return nil, err
	}
	dueDate := period.DayOf(s.policy.DefaultDueDay)
	if req.DueDate != "" {
		if dueDate, err = parseDate(req.DueDate, "due_date"); err != nil {
			return nil, err
		}
	}
	if err := checkOverride(req.AmountOverride); err != nil {
		return nil, err
	}
	unitType := property.NormalizeUnitType(req.UnitType)

	result := &billing.GenerationResult{}
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := loadActiveConcept(ctx, repos.ConceptRepo(), req.ConceptID); err != nil {
			return err
		}
		units, err := listActiveUnits(ctx, repos.UnitRepo(), unitType)
		if err != nil {
			return err
		}
		if len(units) == 0 {
			return nil
		}

		unitIDs := make([]uuid.UUID, len(units))
		for i := range units {
			unitIDs[i] = units[i].ID
		}
		contracts, err := repos.ContractRepo().FindActiveByUnits(ctx, unitIDs)
		if err != nil {
			return err
		}
		byUnit := make(map[uuid.UUID][]property.Contract, len(units))
		for _, c := range contracts {
			byUnit[c.UnitID] = append(byUnit[c.UnitID], c)
		}

		for i := range units {
			contract := property.PickActive(byUnit[units[i].ID], period)
			if err := s.generateOne(ctx, repos, result, units[i].ID, req.ConceptID, period, dueDate, contract, req.AmountOverride); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	telemetry.SetAttributes(span, "created", result.Created, "skipped", result.Skipped)
	s.logger.Info("Billable generation completed",
		zap.String("period", period.String()),
		zap.String("concept_id", req.ConceptID.String()),
		zap.String("unit_type", unitType),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped))
	s.publishGeneration(ctx, req.ConceptID, period, result)
	return toGenerationResponse(result, false, s.now()), nil
}

// GenerateRetroactive back-bills one unit for monthCount consecutive periods
// starting at startPeriod. Existing items are skipped.
func (s *BillingService) GenerateRetroactive(ctx context.Context, req GenerateRetroactiveRequest) (*GenerationResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "billing", "generate_retroactive")
	defer span.End()

	start, err := parsePeriod(req.StartPeriod)
	if err != nil {
		return nil, err
	}
	if req.MonthCount < 1 || req.MonthCount > s.policy.MaxRetroactiveMonths {
		return nil, shared.NewValidationError(
			fmt.Sprintf("month_count must be between 1 and %d", s.policy.MaxRetroactiveMonths))
	}
	dueDay := s.policy.DefaultDueDay
	if req.DueDay != nil {
		if *req.DueDay < 1 || *req.DueDay > 31 {
			return nil, shared.NewValidationError("due_day must be between 1 and 31")
		}
		dueDay = *req.DueDay
	}
	if err := checkOverride(req.AmountOverride); err != nil {
		return nil, err
	}

	result := &billing.GenerationResult{}
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		unit, err := loadUnit(ctx, repos.UnitRepo(), req.UnitID)
		if err != nil {
			return err
		}
		if _, err := loadActiveConcept(ctx, repos.ConceptRepo(), req.ConceptID); err != nil {
			return err
		}
		contracts, err := repos.ContractRepo().FindByUnit(ctx, unit.ID)
		if err != nil {
			return err
		}

		for i := 0; i < req.MonthCount; i++ {
			period := start.AddMonths(i)
			contract := property.PickActive(contracts, period)
			if err := s.generateOne(ctx, repos, result, unit.ID, req.ConceptID, period, period.DayOf(dueDay), contract, req.AmountOverride); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	telemetry.SetAttributes(span, "created", result.Created, "skipped", result.Skipped)
	s.publishGeneration(ctx, req.ConceptID, start, result)
	return toGenerationResponse(result, true, s.now()), nil
}

// generateOne creates the item for one unit and period, recording a skip
// instead of failing for the expected conflicts
func (s *BillingService) generateOne(
	ctx context.Context,
	repos TransactionalRepositories,
	result *billing.GenerationResult,
	unitID, conceptID uuid.UUID,
	period valueobject.Period,
	dueDate time.Time,
	contract *property.Contract,
	override *decimal.Decimal,
) error {
	var (
		amount   decimal.Decimal
		personID *uuid.UUID
	)
	if contract != nil {
		amount = contract.MonthlyAmount
		personID = &contract.PersonID
	}
	if override != nil {
		amount = *override
	}
	if !amount.IsPositive() {
		result.AddSkipped(unitID, period.String(), billing.SkipNoActiveContract)
		return nil
	}

	exists, err := repos.BillableItemRepo().ExistsActive(ctx, unitID, conceptID, period)
	if err != nil {
		return err
	}
	if exists {
		result.AddSkipped(unitID, period.String(), billing.SkipDuplicate)
		return nil
	}

	item, err := billing.NewBillableItem(unitID, personID, conceptID, period, amount, dueDate)
	if err != nil {
		return err
	}
	err = repos.Savepoint(ctx, func(inner TransactionalRepositories) error {
		return inner.BillableItemRepo().Create(ctx, item)
	})
	if shared.ErrorCode(err) == shared.CodeDuplicateObligation {
		result.AddSkipped(unitID, period.String(), billing.SkipDuplicate)
		return nil
	}
	if err != nil {
		return err
	}
	item.ClearDomainEvents()
	result.AddCreated(*item)
	return nil
}

func (s *BillingService) publishGeneration(ctx context.Context, conceptID uuid.UUID, period valueobject.Period, result *billing.GenerationResult) {
	s.businessMetrics.RecordBillablesGenerated(ctx, result.Created, result.Skipped)
	if result.Created == 0 {
		return
	}
	s.dispatcher.DispatchEvents(ctx, billing.NewBillablesGeneratedEvent(conceptID, period.String(), result))
}

// ===================== Rollback =====================

// RollbackBulk cancels every unpaid item of a generation run in one
// statement. Running it again cancels nothing.
func (s *BillingService) RollbackBulk(ctx context.Context, req RollbackBulkRequest) (*RollbackResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "billing", "rollback_bulk")
	defer span.End()

	reason := strings.TrimSpace(req.Reason)
	if utf8.RuneCountInString(reason) < s.policy.MinRollbackReasonLength {
		return nil, shared.NewValidationError(
			fmt.Sprintf("Rollback reason must have at least %d characters", s.policy.MinRollbackReasonLength))
	}
	period, err := parsePeriod(req.Period)
	if err != nil {
		return nil, err
	}
	unitType := property.NormalizeUnitType(req.UnitType)

	var count int64
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		concept, err := repos.ConceptRepo().FindByID(ctx, req.ConceptID)
		if err != nil {
			return err
		}
		if concept == nil {
			return shared.NewNotFoundError("Concept")
		}
		count, err = repos.BillableItemRepo().CancelPendingBulk(ctx, billing.BulkCancelCriteria{
			Period:    period,
			ConceptID: req.ConceptID,
			UnitType:  unitType,
		}, reason, s.now())
		return err
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	telemetry.SetAttributes(span, "cancelled_count", count)
	s.logger.Info("Billable rollback completed",
		zap.String("period", period.String()),
		zap.String("concept_id", req.ConceptID.String()),
		zap.String("unit_type", unitType),
		zap.Int64("cancelled", count))
	s.businessMetrics.RecordBillablesCancelled(ctx, "rollback", count)
	if count > 0 {
		s.dispatcher.DispatchEvents(ctx,
			billing.NewBillablesRolledBackEvent(req.ConceptID, period.String(), unitType, reason, count))
	}
	return &RollbackResponse{CancelledCount: count}, nil
}

// ===================== helpers =====================

func listActiveUnits(ctx context.Context, repo property.UnitRepository, unitType string) ([]property.Unit, error) {
	active := true
	f := property.UnitFilter{
		Filter: shared.Filter{Page: 1, PageSize: shared.MaxPageSize},
		Active: &active,
	}
	if unitType != "" {
		f.UnitType = &unitType
	}
	var all []property.Unit
	for {
		page, err := repo.FindAll(ctx, f)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < f.Limit() {
			return all, nil
		}
		f.Page++
	}
}

func loadUnit(ctx context.Context, repo property.UnitRepository, id uuid.UUID) (*property.Unit, error) {
	unit, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, shared.NewNotFoundError("Unit")
	}
	return unit, nil
}

func loadActiveUnit(ctx context.Context, repo property.UnitRepository, id uuid.UUID) (*property.Unit, error) {
	unit, err := loadUnit(ctx, repo, id)
	if err != nil {
		return nil, err
	}
	if !unit.Active {
		return nil, shared.NewValidationError(fmt.Sprintf("Unit %s is inactive", unit.Code))
	}
	return unit, nil
}

func loadActiveConcept(ctx context.Context, repo accounting.ConceptRepository, id uuid.UUID) (*accounting.Concept, error) {
	concept, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if concept == nil {
		return nil, shared.NewNotFoundError("Concept")
	}
	if !concept.Active {
		return nil, shared.NewValidationError(fmt.Sprintf("Concept %s is inactive", concept.Name))
	}
	return concept, nil
}

func loadItem(ctx context.Context, repo billing.BillableItemRepository, id uuid.UUID) (*billing.BillableItem, error) {
	item, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, shared.NewNotFoundError("Billable item")
	}
	return item, nil
}

func duplicateObligation(unitCode string, period valueobject.Period) error {
	return shared.NewDomainError(shared.CodeDuplicateObligation,
		fmt.Sprintf("Unit %s already has an active item for this concept in %s", unitCode, period))
}

func checkOverride(amount *decimal.Decimal) error {
	if amount != nil && !amount.IsPositive() {
		return shared.NewValidationError("amount_override must be positive")
	}
	return nil
}

func parsePeriod(s string) (valueobject.Period, error) {
	p, err := valueobject.ParsePeriod(strings.TrimSpace(s))
	if err != nil {
		return valueobject.Period{}, shared.NewValidationError(err.Error())
	}
	return p, nil
}

func parseDate(s, field string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, shared.NewValidationError(field + " must be a YYYY-MM-DD date")
	}
	return t, nil
}

func parseOptionalID(s, field string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, shared.NewValidationError(field + " must be a UUID")
	}
	return &id, nil
}
