package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	propertyapp "github.com/propledger/backend/internal/application/property"
	"github.com/propledger/backend/internal/interfaces/http/dto"
)

// PropertyHandler serves units and their tenancy contracts
type PropertyHandler struct {
	BaseHandler
	propertyService *propertyapp.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler
func NewPropertyHandler(propertyService *propertyapp.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// CreateUnit godoc
// @Summary      Register unit
// @Tags         units
// @Accept       json
// @Produce      json
// @Param        request body propertyapp.CreateUnitRequest true "Unit"
// @Success      201 {object} APIResponse[propertyapp.UnitResponse]
// @Failure      409 {object} ErrorResponse "DUPLICATE_CODE"
// @Router       /units [post]
func (h *PropertyHandler) CreateUnit(c *gin.Context) {
	var req propertyapp.CreateUnitRequest
	if !h.bindJSON(c, &req) {
		return
	}
	unit, err := h.propertyService.CreateUnit(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, unit)
}

// ListUnits godoc
// @Summary      List units
// @Tags         units
// @Produce      json
// @Param        unit_type query string false "Unit type"
// @Param        active query bool false "Active flag"
// @Success      200 {object} APIResponse[[]propertyapp.UnitResponse]
// @Router       /units [get]
func (h *PropertyHandler) ListUnits(c *gin.Context) {
	var filter propertyapp.UnitListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	units, err := h.propertyService.ListUnits(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, units)
}

// GetUnit godoc
// @Summary      Get unit
// @Tags         units
// @Param        id path string true "Unit ID"
// @Success      200 {object} APIResponse[propertyapp.UnitResponse]
// @Router       /units/{id} [get]
func (h *PropertyHandler) GetUnit(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	unit, err := h.propertyService.GetUnit(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, unit)
}

// DeactivateUnit godoc
// @Summary      Deactivate unit
// @Tags         units
// @Param        id path string true "Unit ID"
// @Success      200 {object} APIResponse[propertyapp.UnitResponse]
// @Router       /units/{id}/deactivate [patch]
func (h *PropertyHandler) DeactivateUnit(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	unit, err := h.propertyService.DeactivateUnit(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, unit)
}

// CreateContract godoc
// @Summary      Register contract
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        request body propertyapp.CreateContractRequest true "Contract"
// @Success      201 {object} APIResponse[propertyapp.ContractResponse]
// @Router       /contracts [post]
func (h *PropertyHandler) CreateContract(c *gin.Context) {
	var req propertyapp.CreateContractRequest
	if !h.bindJSON(c, &req) {
		return
	}
	contract, err := h.propertyService.CreateContract(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, contract)
}

// ListContracts godoc
// @Summary      List contracts of a unit
// @Tags         contracts
// @Produce      json
// @Param        unit_id query string true "Unit ID"
// @Success      200 {object} APIResponse[[]propertyapp.ContractResponse]
// @Router       /contracts [get]
func (h *PropertyHandler) ListContracts(c *gin.Context) {
	unitID, err := uuid.Parse(c.Query("unit_id"))
	if err != nil {
		h.ErrorWithCode(c, dto.ErrCodeInvalidID, "unit_id query parameter must be a UUID")
		return
	}
	contracts, err := h.propertyService.ListContracts(c.Request.Context(), unitID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, contracts)
}

// TerminateContract godoc
// @Summary      Terminate contract
// @Tags         contracts
// @Accept       json
// @Param        id path string true "Contract ID"
// @Param        request body propertyapp.TerminateContractRequest true "End date"
// @Success      200 {object} APIResponse[propertyapp.ContractResponse]
// @Router       /contracts/{id}/terminate [patch]
func (h *PropertyHandler) TerminateContract(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req propertyapp.TerminateContractRequest
	if !h.bindJSON(c, &req) {
		return
	}
	contract, err := h.propertyService.TerminateContract(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, contract)
}
