package handler

import (
	"github.com/gin-gonic/gin"
	billingapp "github.com/propledger/backend/internal/application/billing"
)

// BillableHandler serves billable items and the generation engine
type BillableHandler struct {
	BaseHandler
	billingService *billingapp.BillingService
}

// NewBillableHandler creates a new BillableHandler
func NewBillableHandler(billingService *billingapp.BillingService) *BillableHandler {
	return &BillableHandler{billingService: billingService}
}

// Create godoc
// @Summary      Create billable item by hand
// @Tags         billables
// @Accept       json
// @Produce      json
// @Param        request body billingapp.CreateBillableRequest true "Billable item"
// @Success      201 {object} APIResponse[billingapp.BillableItemResponse]
// @Failure      409 {object} ErrorResponse "DUPLICATE_OBLIGATION"
// @Router       /billables [post]
func (h *BillableHandler) Create(c *gin.Context) {
	var req billingapp.CreateBillableRequest
	if !h.bindJSON(c, &req) {
		return
	}
	item, err := h.billingService.CreateManual(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, item)
}

// List godoc
// @Summary      List billable items
// @Tags         billables
// @Produce      json
// @Param        unit_id query string false "Unit ID"
// @Param        period query string false "YYYY-MM"
// @Param        status query string false "PENDING, OVERDUE, PAID or CANCELLED"
// @Param        page query int false "Page"
// @Param        page_size query int false "Page size"
// @Success      200 {object} APIResponse[[]billingapp.BillableItemResponse]
// @Router       /billables [get]
func (h *BillableHandler) List(c *gin.Context) {
	var filter billingapp.BillableListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	page, err := h.billingService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	Paginated(c, page)
}

// GetByID godoc
// @Summary      Get billable item
// @Tags         billables
// @Param        id path string true "Billable item ID"
// @Success      200 {object} APIResponse[billingapp.BillableItemResponse]
// @Router       /billables/{id} [get]
func (h *BillableHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	item, err := h.billingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, item)
}

// Update godoc
// @Summary      Change due date or auto-pay block
// @Tags         billables
// @Accept       json
// @Param        id path string true "Billable item ID"
// @Param        request body billingapp.UpdateBillableRequest true "Changes"
// @Success      200 {object} APIResponse[billingapp.BillableItemResponse]
// @Router       /billables/{id} [patch]
func (h *BillableHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req billingapp.UpdateBillableRequest
	if !h.bindJSON(c, &req) {
		return
	}
	item, err := h.billingService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, item)
}

// Cancel godoc
// @Summary      Cancel billable item
// @Tags         billables
// @Accept       json
// @Param        id path string true "Billable item ID"
// @Param        request body billingapp.CancelBillableRequest false "Reason"
// @Success      200 {object} APIResponse[billingapp.BillableItemResponse]
// @Failure      409 {object} ErrorResponse "INVALID_STATE"
// @Router       /billables/{id}/cancel [patch]
func (h *BillableHandler) Cancel(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req billingapp.CancelBillableRequest
	if c.Request.ContentLength != 0 && !h.bindJSON(c, &req) {
		return
	}
	item, err := h.billingService.Cancel(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, item)
}

// GenerateGlobal godoc
// @Summary      Generate one period of a concept for every matching unit
// @Tags         billables
// @Accept       json
// @Produce      json
// @Param        request body billingapp.GenerateGlobalRequest true "Generation"
// @Success      201 {object} APIResponse[billingapp.GenerationResponse]
// @Router       /billables/generate-global [post]
func (h *BillableHandler) GenerateGlobal(c *gin.Context) {
	var req billingapp.GenerateGlobalRequest
	if !h.bindJSON(c, &req) {
		return
	}
	result, err := h.billingService.GenerateGlobal(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, result)
}

// GenerateRetroactive godoc
// @Summary      Back-bill one unit for consecutive periods
// @Tags         billables
// @Accept       json
// @Produce      json
// @Param        request body billingapp.GenerateRetroactiveRequest true "Generation"
// @Success      201 {object} APIResponse[billingapp.GenerationResponse]
// @Router       /billables/generate-retroactive [post]
func (h *BillableHandler) GenerateRetroactive(c *gin.Context) {
	var req billingapp.GenerateRetroactiveRequest
	if !h.bindJSON(c, &req) {
		return
	}
	result, err := h.billingService.GenerateRetroactive(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, result)
}

// RollbackBulk godoc
// @Summary      Cancel the untouched items of a generation run
// @Tags         billables
// @Accept       json
// @Produce      json
// @Param        request body billingapp.RollbackBulkRequest true "Rollback"
// @Success      200 {object} APIResponse[billingapp.RollbackResponse]
// @Failure      400 {object} ErrorResponse "reason too short"
// @Router       /billables/rollback-bulk [post]
func (h *BillableHandler) RollbackBulk(c *gin.Context) {
	var req billingapp.RollbackBulkRequest
	if !h.bindJSON(c, &req) {
		return
	}
	result, err := h.billingService.RollbackBulk(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}
