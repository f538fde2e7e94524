package handler

import (
	"github.com/gin-gonic/gin"
	treasuryapp "github.com/propledger/backend/internal/application/treasury"
)

// MovementHandler serves transfers between instruments and expenses paid from them
type MovementHandler struct {
	BaseHandler
	transferService *treasuryapp.TransferService
	expenseService  *treasuryapp.ExpenseService
}

// NewMovementHandler creates a new MovementHandler
func NewMovementHandler(transferService *treasuryapp.TransferService, expenseService *treasuryapp.ExpenseService) *MovementHandler {
	return &MovementHandler{
		transferService: transferService,
		expenseService:  expenseService,
	}
}

// CreateTransfer godoc
// @Summary      Move money between instruments
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Replay guard"
// @Param        request body treasuryapp.CreateTransferRequest true "Transfer"
// @Success      201 {object} APIResponse[treasuryapp.TransferResponse]
// @Failure      422 {object} ErrorResponse "SAME_INSTRUMENT or LIMIT_EXCEEDED"
// @Router       /transfers [post]
func (h *MovementHandler) CreateTransfer(c *gin.Context) {
	var req treasuryapp.CreateTransferRequest
	if !h.bindJSON(c, &req) {
		return
	}
	transfer, err := h.transferService.Transfer(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, transfer)
}

// ListTransfers godoc
// @Summary      List transfers
// @Tags         transfers
// @Success      200 {object} APIResponse[[]treasuryapp.TransferResponse]
// @Router       /transfers [get]
func (h *MovementHandler) ListTransfers(c *gin.Context) {
	var filter treasuryapp.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	page, err := h.transferService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	Paginated(c, page)
}

// CreateExpense godoc
// @Summary      Record an expense paid from an instrument
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Replay guard"
// @Param        request body treasuryapp.RecordExpenseRequest true "Expense"
// @Success      201 {object} APIResponse[treasuryapp.ExpenseResponse]
// @Router       /expenses [post]
func (h *MovementHandler) CreateExpense(c *gin.Context) {
	var req treasuryapp.RecordExpenseRequest
	if !h.bindJSON(c, &req) {
		return
	}
	expense, err := h.expenseService.RecordExpense(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, expense)
}

// ListExpenses godoc
// @Summary      List expenses
// @Tags         expenses
// @Success      200 {object} APIResponse[[]treasuryapp.ExpenseResponse]
// @Router       /expenses [get]
func (h *MovementHandler) ListExpenses(c *gin.Context) {
	var filter treasuryapp.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	page, err := h.expenseService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	Paginated(c, page)
}
