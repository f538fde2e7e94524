package handler

import (
	"github.com/gin-gonic/gin"
	treasuryapp "github.com/propledger/backend/internal/application/treasury"
)

// DepositHandler serves deposit reconciliation
type DepositHandler struct {
	BaseHandler
	depositService *treasuryapp.DepositService
}

// NewDepositHandler creates a new DepositHandler
func NewDepositHandler(depositService *treasuryapp.DepositService) *DepositHandler {
	return &DepositHandler{depositService: depositService}
}

// ListPending godoc
// @Summary      List receipts awaiting deposit
// @Tags         deposits
// @Produce      json
// @Param        instrument_kind query string false "Instrument kind, CASH by default"
// @Success      200 {object} APIResponse[[]treasuryapp.CashTransactionResponse]
// @Router       /deposits/pending [get]
func (h *DepositHandler) ListPending(c *gin.Context) {
	pending, err := h.depositService.ListPending(c.Request.Context(), c.DefaultQuery("instrument_kind", "CASH"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, pending)
}

// Create godoc
// @Summary      Group undeposited receipts into a deposit
// @Tags         deposits
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID header string true "Depositing user"
// @Param        Idempotency-Key header string false "Replay guard"
// @Param        request body treasuryapp.CreateDepositRequest true "Deposit"
// @Success      201 {object} APIResponse[treasuryapp.DepositResponse]
// @Failure      409 {object} ErrorResponse "ALREADY_DEPOSITED"
// @Failure      422 {object} ErrorResponse "EMPTY_SELECTION"
// @Router       /deposits [post]
func (h *DepositHandler) Create(c *gin.Context) {
	actorID, ok := h.actorID(c)
	if !ok {
		return
	}
	var req treasuryapp.CreateDepositRequest
	if !h.bindJSON(c, &req) {
		return
	}
	deposit, err := h.depositService.CreateDeposit(c.Request.Context(), actorID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, deposit)
}

// List godoc
// @Summary      List deposits
// @Tags         deposits
// @Produce      json
// @Param        page query int false "Page"
// @Param        page_size query int false "Page size"
// @Success      200 {object} APIResponse[[]treasuryapp.DepositResponse]
// @Router       /deposits [get]
func (h *DepositHandler) List(c *gin.Context) {
	var filter treasuryapp.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	page, err := h.depositService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	Paginated(c, page)
}

// GetByID godoc
// @Summary      Get deposit
// @Tags         deposits
// @Param        id path string true "Deposit ID"
// @Success      200 {object} APIResponse[treasuryapp.DepositResponse]
// @Router       /deposits/{id} [get]
func (h *DepositHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	deposit, err := h.depositService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, deposit)
}
