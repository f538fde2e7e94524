package handler

import (
	"github.com/gin-gonic/gin"
	accountingapp "github.com/propledger/backend/internal/application/accounting"
)

// JournalHandler exposes the read-only journal
type JournalHandler struct {
	BaseHandler
	journalService *accountingapp.JournalService
}

// NewJournalHandler creates a new JournalHandler
func NewJournalHandler(journalService *accountingapp.JournalService) *JournalHandler {
	return &JournalHandler{journalService: journalService}
}

// List godoc
// @Summary      List journal entries
// @Tags         journal
// @Produce      json
// @Param        source_type query string false "RECEIPT, RECEIPT_REVERSAL, DEPOSIT, TRANSFER or EXPENSE"
// @Param        source_id query string false "Source document ID"
// @Param        account_id query string false "Entries touching this account"
// @Success      200 {object} APIResponse[[]accountingapp.JournalEntryResponse]
// @Router       /journal-entries [get]
func (h *JournalHandler) List(c *gin.Context) {
	var filter accountingapp.JournalListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	page, err := h.journalService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	Paginated(c, page)
}

// GetByID godoc
// @Summary      Get journal entry
// @Tags         journal
// @Param        id path string true "Journal entry ID"
// @Success      200 {object} APIResponse[accountingapp.JournalEntryResponse]
// @Router       /journal-entries/{id} [get]
func (h *JournalHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	entry, err := h.journalService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, entry)
}
