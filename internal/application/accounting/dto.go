package accounting

import (
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/accounting"
	"github.com/shopspring/decimal"
)

// ===================== Accounts =====================

// CreateAccountRequest represents a request to create a chart account
type CreateAccountRequest struct {
	Code        string `json:"code" binding:"required,max=50"`
	Name        string `json:"name" binding:"required,max=200"`
	AccountType string `json:"account_type" binding:"required,oneof=ASSET INCOME EXPENSE"`
	IsGroup     bool   `json:"is_group"`
}

// UpdateAccountRequest represents a request to update a chart account.
// Code and type are immutable.
type UpdateAccountRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=200"`
	IsGroup *bool   `json:"is_group"`
}

// AccountListFilter defines filtering options for account list queries
type AccountListFilter struct {
	Type     string `form:"type" binding:"omitempty,oneof=ASSET INCOME EXPENSE"`
	IsGroup  *bool  `form:"is_group"`
	Active   *bool  `form:"active"`
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=500"`
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	ID          uuid.UUID  `json:"id"`
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	AccountType string     `json:"account_type"`
	IsGroup     bool       `json:"is_group"`
	Active      bool       `json:"active"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Version     int        `json:"version"`
}

func toAccountResponse(a *accounting.Account) *AccountResponse {
	return &AccountResponse{
		ID:          a.ID,
		Code:        a.Code,
		Name:        a.Name,
		AccountType: string(a.Type),
		IsGroup:     a.IsGroup,
		Active:      a.Active,
		ParentID:    a.ParentID,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		Version:     a.Version,
	}
}

func toAccountResponses(accounts []accounting.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i := range accounts {
		out[i] = *toAccountResponse(&accounts[i])
	}
	return out
}

// ===================== Concepts =====================

// CreateConceptRequest represents a request to create a billing concept
type CreateConceptRequest struct {
	Name            string    `json:"name" binding:"required,max=100"`
	IncomeAccountID uuid.UUID `json:"income_account_id" binding:"required"`
}

// ConceptResponse represents a billing concept in API responses
type ConceptResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	IncomeAccountID   uuid.UUID `json:"income_account_id"`
	IncomeAccountCode string    `json:"income_account_code,omitempty"`
	Active            bool      `json:"active"`
	CreatedAt         time.Time `json:"created_at"`
}

func toConceptResponse(c *accounting.Concept, accountCode string) *ConceptResponse {
	return &ConceptResponse{
		ID:                c.ID,
		Name:              c.Name,
		IncomeAccountID:   c.IncomeAccountID,
		IncomeAccountCode: accountCode,
		Active:            c.Active,
		CreatedAt:         c.CreatedAt,
	}
}

// ===================== Expense types =====================

// CreateExpenseTypeRequest represents a request to create an expense type
type CreateExpenseTypeRequest struct {
	Name                   string    `json:"name" binding:"required,max=100"`
	ExpenseGroupAccountID  uuid.UUID `json:"expense_group_account_id" binding:"required"`
	RequiresDocumentNumber bool      `json:"requires_document_number"`
}

// ExpenseTypeResponse represents an expense type in API responses
type ExpenseTypeResponse struct {
	ID                      uuid.UUID `json:"id"`
	Name                    string    `json:"name"`
	ExpenseGroupAccountID   uuid.UUID `json:"expense_group_account_id"`
	ExpenseGroupAccountCode string    `json:"expense_group_account_code,omitempty"`
	RequiresDocumentNumber  bool      `json:"requires_document_number"`
	Active                  bool      `json:"active"`
	CreatedAt               time.Time `json:"created_at"`
}

func toExpenseTypeResponse(et *accounting.ExpenseType, groupCode string) *ExpenseTypeResponse {
	return &ExpenseTypeResponse{
		ID:                      et.ID,
		Name:                    et.Name,
		ExpenseGroupAccountID:   et.ExpenseGroupAccountID,
		ExpenseGroupAccountCode: groupCode,
		RequiresDocumentNumber:  et.RequiresDocumentNumber,
		Active:                  et.Active,
		CreatedAt:               et.CreatedAt,
	}
}

// ===================== Instruments =====================

// CreateInstrumentRequest represents a request to create a payment instrument
type CreateInstrumentRequest struct {
	Name              string          `json:"name" binding:"required,max=100"`
	Kind              string          `json:"kind" binding:"required,oneof=CASH BANK QR CHECK"`
	LinkedAccountID   uuid.UUID       `json:"linked_account_id" binding:"required"`
	RequiresReference bool            `json:"requires_reference"`
	SpendingLimit     decimal.Decimal `json:"spending_limit"`
}

// InstrumentResponse represents a payment instrument in API responses
type InstrumentResponse struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	Kind              string          `json:"kind"`
	LinkedAccountID   uuid.UUID       `json:"linked_account_id"`
	RequiresReference bool            `json:"requires_reference"`
	SpendingLimit     decimal.Decimal `json:"spending_limit"`
	Active            bool            `json:"active"`
	CreatedAt         time.Time       `json:"created_at"`
}

func toInstrumentResponse(pi *accounting.PaymentInstrument) *InstrumentResponse {
	return &InstrumentResponse{
		ID:                pi.ID,
		Name:              pi.Name,
		Kind:              string(pi.Kind),
		LinkedAccountID:   pi.LinkedAccountID,
		RequiresReference: pi.RequiresReference,
		SpendingLimit:     pi.SpendingLimit,
		Active:            pi.Active,
		CreatedAt:         pi.CreatedAt,
	}
}

// ===================== Journal =====================

// JournalListFilter defines filtering options for journal queries
type JournalListFilter struct {
	SourceType string `form:"source_type" binding:"omitempty,oneof=RECEIPT RECEIPT_REVERSAL DEPOSIT TRANSFER EXPENSE"`
	SourceID   string `form:"source_id" binding:"omitempty,uuid"`
	AccountID  string `form:"account_id" binding:"omitempty,uuid"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=500"`
}

// PostingResponse represents one journal posting
type PostingResponse struct {
	AccountID   uuid.UUID       `json:"account_id"`
	AccountCode string          `json:"account_code"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	LineNo      int             `json:"line_no"`
}

// JournalEntryResponse represents a journal entry in API responses
type JournalEntryResponse struct {
	ID          uuid.UUID         `json:"id"`
	Date        time.Time         `json:"date"`
	Description string            `json:"description"`
	SourceType  string            `json:"source_type"`
	SourceID    uuid.UUID         `json:"source_id"`
	TotalDebit  decimal.Decimal   `json:"total_debit"`
	TotalCredit decimal.Decimal   `json:"total_credit"`
	Postings    []PostingResponse `json:"postings"`
	CreatedAt   time.Time         `json:"created_at"`
}

func toJournalEntryResponse(je *accounting.JournalEntry) JournalEntryResponse {
	debit, credit := je.Totals()
	postings := make([]PostingResponse, len(je.Postings))
	for i, p := range je.Postings {
		postings[i] = PostingResponse{
			AccountID:   p.AccountID,
			AccountCode: p.AccountCode,
			Debit:       p.Debit,
			Credit:      p.Credit,
			LineNo:      p.LineNo,
		}
	}
	return JournalEntryResponse{
		ID:          je.ID,
		Date:        je.Date,
		Description: je.Description,
		SourceType:  string(je.SourceType),
		SourceID:    je.SourceID,
		TotalDebit:  debit,
		TotalCredit: credit,
		Postings:    postings,
		CreatedAt:   je.CreatedAt,
	}
}
