package handler

import (
	"github.com/gin-gonic/gin"
	accountingapp "github.com/propledger/backend/internal/application/accounting"
)

// RegistryHandler serves concepts, expense types and payment instruments
type RegistryHandler struct {
	BaseHandler
	registryService *accountingapp.RegistryService
}

// NewRegistryHandler creates a new RegistryHandler
func NewRegistryHandler(registryService *accountingapp.RegistryService) *RegistryHandler {
	return &RegistryHandler{registryService: registryService}
}

// CreateConcept godoc
// @Summary      Create billing concept
// @Tags         concepts
// @Accept       json
// @Produce      json
// @Param        request body accountingapp.CreateConceptRequest true "Concept"
// @Success      201 {object} APIResponse[accountingapp.ConceptResponse]
// @Failure      422 {object} ErrorResponse "INVALID_ACCOUNT_BINDING"
// @Router       /concepts [post]
func (h *RegistryHandler) CreateConcept(c *gin.Context) {
	var req accountingapp.CreateConceptRequest
	if !h.bindJSON(c, &req) {
		return
	}
	concept, err := h.registryService.CreateConcept(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, concept)
}

// ListConcepts godoc
// @Summary      List billing concepts
// @Tags         concepts
// @Produce      json
// @Param        active_only query bool false "Only active concepts"
// @Success      200 {object} APIResponse[[]accountingapp.ConceptResponse]
// @Router       /concepts [get]
func (h *RegistryHandler) ListConcepts(c *gin.Context) {
	concepts, err := h.registryService.ListConcepts(c.Request.Context(), activeOnly(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, concepts)
}

// DeactivateConcept godoc
// @Summary      Deactivate billing concept
// @Tags         concepts
// @Param        id path string true "Concept ID"
// @Success      200 {object} APIResponse[accountingapp.ConceptResponse]
// @Router       /concepts/{id}/deactivate [patch]
func (h *RegistryHandler) DeactivateConcept(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	concept, err := h.registryService.DeactivateConcept(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, concept)
}

// CreateExpenseType godoc
// @Summary      Create expense type
// @Tags         expense-types
// @Accept       json
// @Produce      json
// @Param        request body accountingapp.CreateExpenseTypeRequest true "Expense type"
// @Success      201 {object} APIResponse[accountingapp.ExpenseTypeResponse]
// @Failure      422 {object} ErrorResponse "INVALID_ACCOUNT_BINDING"
// @Router       /expense-types [post]
func (h *RegistryHandler) CreateExpenseType(c *gin.Context) {
	var req accountingapp.CreateExpenseTypeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	expenseType, err := h.registryService.CreateExpenseType(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, expenseType)
}

// ListExpenseTypes godoc
// @Summary      List expense types
// @Tags         expense-types
// @Produce      json
// @Param        active_only query bool false "Only active expense types"
// @Success      200 {object} APIResponse[[]accountingapp.ExpenseTypeResponse]
// @Router       /expense-types [get]
func (h *RegistryHandler) ListExpenseTypes(c *gin.Context) {
	expenseTypes, err := h.registryService.ListExpenseTypes(c.Request.Context(), activeOnly(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, expenseTypes)
}

// DeactivateExpenseType godoc
// @Summary      Deactivate expense type
// @Tags         expense-types
// @Param        id path string true "Expense type ID"
// @Success      200 {object} APIResponse[accountingapp.ExpenseTypeResponse]
// @Router       /expense-types/{id}/deactivate [patch]
func (h *RegistryHandler) DeactivateExpenseType(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	expenseType, err := h.registryService.DeactivateExpenseType(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, expenseType)
}

// EligibleAccounts godoc
// @Summary      List accounts an expense of this type may be booked to
// @Tags         expense-types
// @Param        id path string true "Expense type ID"
// @Success      200 {object} APIResponse[[]accountingapp.AccountResponse]
// @Router       /expense-types/{id}/eligible-accounts [get]
func (h *RegistryHandler) EligibleAccounts(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	accounts, err := h.registryService.EligibleExpenseAccounts(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, accounts)
}

// CreateInstrument godoc
// @Summary      Create payment instrument
// @Tags         instruments
// @Accept       json
// @Produce      json
// @Param        request body accountingapp.CreateInstrumentRequest true "Instrument"
// @Success      201 {object} APIResponse[accountingapp.InstrumentResponse]
// @Router       /instruments [post]
func (h *RegistryHandler) CreateInstrument(c *gin.Context) {
	var req accountingapp.CreateInstrumentRequest
	if !h.bindJSON(c, &req) {
		return
	}
	instrument, err := h.registryService.CreateInstrument(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, instrument)
}

// ListInstruments godoc
// @Summary      List payment instruments
// @Tags         instruments
// @Produce      json
// @Param        kind query string false "CASH, BANK, QR or CHECK"
// @Param        active_only query bool false "Only active instruments"
// @Success      200 {object} APIResponse[[]accountingapp.InstrumentResponse]
// @Router       /instruments [get]
func (h *RegistryHandler) ListInstruments(c *gin.Context) {
	instruments, err := h.registryService.ListInstruments(c.Request.Context(), c.Query("kind"), activeOnly(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, instruments)
}

// DeactivateInstrument godoc
// @Summary      Deactivate payment instrument
// @Tags         instruments
// @Param        id path string true "Instrument ID"
// @Success      200 {object} APIResponse[accountingapp.InstrumentResponse]
// @Router       /instruments/{id}/deactivate [patch]
func (h *RegistryHandler) DeactivateInstrument(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	instrument, err := h.registryService.DeactivateInstrument(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, instrument)
}
