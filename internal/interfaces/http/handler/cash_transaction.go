package handler

import (
	"github.com/gin-gonic/gin"
	treasuryapp "github.com/propledger/backend/internal/application/treasury"
)

// CashTransactionHandler serves receipts and their cancellation
type CashTransactionHandler struct {
	BaseHandler
	receiptService *treasuryapp.ReceiptService
}

// NewCashTransactionHandler creates a new CashTransactionHandler
func NewCashTransactionHandler(receiptService *treasuryapp.ReceiptService) *CashTransactionHandler {
	return &CashTransactionHandler{receiptService: receiptService}
}

// Create godoc
// @Summary      Record a receipt and apply it to billable items
// @Tags         cash-transactions
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Replay guard"
// @Param        request body treasuryapp.ApplyReceiptRequest true "Receipt"
// @Success      201 {object} APIResponse[treasuryapp.CashTransactionResponse]
// @Failure      422 {object} ErrorResponse "OVER_APPLICATION"
// @Router       /cash-transactions [post]
func (h *CashTransactionHandler) Create(c *gin.Context) {
	var req treasuryapp.ApplyReceiptRequest
	if !h.bindJSON(c, &req) {
		return
	}
	txn, err := h.receiptService.ApplyReceipt(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, txn)
}

// List godoc
// @Summary      List cash transactions
// @Tags         cash-transactions
// @Produce      json
// @Param        unit_id query string false "Unit ID"
// @Param        instrument_kind query string false "CASH, BANK, QR or CHECK"
// @Param        from_date query string false "YYYY-MM-DD"
// @Param        to_date query string false "YYYY-MM-DD, inclusive"
// @Success      200 {object} APIResponse[[]treasuryapp.CashTransactionResponse]
// @Router       /cash-transactions [get]
func (h *CashTransactionHandler) List(c *gin.Context) {
	var filter treasuryapp.CashTransactionListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	page, err := h.receiptService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	Paginated(c, page)
}

// GetByID godoc
// @Summary      Get cash transaction with its allocations
// @Tags         cash-transactions
// @Param        id path string true "Cash transaction ID"
// @Success      200 {object} APIResponse[treasuryapp.CashTransactionResponse]
// @Router       /cash-transactions/{id} [get]
func (h *CashTransactionHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	txn, err := h.receiptService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, txn)
}

// Cancel godoc
// @Summary      Cancel an undeposited cash transaction
// @Tags         cash-transactions
// @Param        id path string true "Cash transaction ID"
// @Success      200 {object} APIResponse[treasuryapp.CashTransactionResponse]
// @Failure      409 {object} ErrorResponse "ALREADY_DEPOSITED"
// @Router       /cash-transactions/{id}/cancel [patch]
func (h *CashTransactionHandler) Cancel(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	txn, err := h.receiptService.CancelTransaction(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, txn)
}
