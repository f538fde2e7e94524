package handler

import (
	"github.com/gin-gonic/gin"
	accountingapp "github.com/propledger/backend/internal/application/accounting"
)

// AccountHandler serves the chart of accounts
type AccountHandler struct {
	BaseHandler
	accountService *accountingapp.AccountService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService *accountingapp.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// Create godoc
// @Summary      Create account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        request body accountingapp.CreateAccountRequest true "Account"
// @Success      201 {object} APIResponse[accountingapp.AccountResponse]
// @Failure      409 {object} ErrorResponse
// @Router       /accounts [post]
func (h *AccountHandler) Create(c *gin.Context) {
	var req accountingapp.CreateAccountRequest
	if !h.bindJSON(c, &req) {
		return
	}
	account, err := h.accountService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, account)
}

// List godoc
// @Summary      List accounts ordered by code
// @Tags         accounts
// @Produce      json
// @Param        type query string false "ASSET, INCOME or EXPENSE"
// @Param        is_group query bool false "Group accounts only"
// @Param        active query bool false "Active flag"
// @Success      200 {object} APIResponse[[]accountingapp.AccountResponse]
// @Router       /accounts [get]
func (h *AccountHandler) List(c *gin.Context) {
	var filter accountingapp.AccountListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	accounts, err := h.accountService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, accounts)
}

// GetByID godoc
// @Summary      Get account
// @Tags         accounts
// @Produce      json
// @Param        id path string true "Account ID"
// @Success      200 {object} APIResponse[accountingapp.AccountResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /accounts/{id} [get]
func (h *AccountHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	account, err := h.accountService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, account)
}

// Update godoc
// @Summary      Update account name or group flag
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        id path string true "Account ID"
// @Param        request body accountingapp.UpdateAccountRequest true "Changes"
// @Success      200 {object} APIResponse[accountingapp.AccountResponse]
// @Router       /accounts/{id} [put]
func (h *AccountHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req accountingapp.UpdateAccountRequest
	if !h.bindJSON(c, &req) {
		return
	}
	account, err := h.accountService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, account)
}

// Deactivate godoc
// @Summary      Deactivate account
// @Tags         accounts
// @Produce      json
// @Param        id path string true "Account ID"
// @Success      200 {object} APIResponse[accountingapp.AccountResponse]
// @Failure      409 {object} ErrorResponse "HAS_DEPENDENTS"
// @Router       /accounts/{id}/deactivate [patch]
func (h *AccountHandler) Deactivate(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	account, err := h.accountService.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, account)
}
