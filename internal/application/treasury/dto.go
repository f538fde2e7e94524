package treasury

import (
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/treasury"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// ===================== Receipts =====================

// AllocationRequest is a caller-chosen amount for one billable item
type AllocationRequest struct {
	ItemID uuid.UUID       `json:"item_id" binding:"required"`
	Amount decimal.Decimal `json:"amount"`
}

// ApplyReceiptRequest represents a request to record a receipt.
//
// With Allocations the caller fixes every (item, amount) pair. With
// TargetItemIDs the amount is spread over those items in the given order.
// With neither, the unit's outstanding items are paid oldest due first.
type ApplyReceiptRequest struct {
	PayerPersonID uuid.UUID           `json:"payer_person_id" binding:"required"`
	UnitID        uuid.UUID           `json:"unit_id" binding:"required"`
	InstrumentID  uuid.UUID           `json:"instrument_id" binding:"required"`
	Amount        decimal.Decimal     `json:"amount"`
	Reference     string              `json:"reference" binding:"max=100"`
	TargetItemIDs []uuid.UUID         `json:"target_item_ids"`
	Allocations   []AllocationRequest `json:"allocations" binding:"omitempty,dive"`
}

// CashTransactionListFilter defines filtering options for receipt queries
type CashTransactionListFilter struct {
	UnitID         string `form:"unit_id" binding:"omitempty,uuid"`
	PayerPersonID  string `form:"payer_person_id" binding:"omitempty,uuid"`
	InstrumentID   string `form:"instrument_id" binding:"omitempty,uuid"`
	InstrumentKind string `form:"instrument_kind" binding:"omitempty,oneof=CASH BANK QR CHECK"`
	DepositID      string `form:"deposit_id" binding:"omitempty,uuid"`
	Cancelled      *bool  `form:"cancelled"`
	FromDate       string `form:"from_date" binding:"omitempty,datetime=2006-01-02"`
	ToDate         string `form:"to_date" binding:"omitempty,datetime=2006-01-02"`
	Page           int    `form:"page" binding:"omitempty,min=1"`
	PageSize       int    `form:"page_size" binding:"omitempty,min=1,max=500"`
}

// AllocationResponse represents one applied (item, amount) pair
type AllocationResponse struct {
	BillableItemID uuid.UUID       `json:"billable_item_id"`
	ConceptID      uuid.UUID       `json:"concept_id"`
	Amount         decimal.Decimal `json:"amount"`
	Seq            int             `json:"seq"`
}

// CashTransactionResponse represents a receipt in API responses
type CashTransactionResponse struct {
	ID             uuid.UUID            `json:"id"`
	PayerPersonID  uuid.UUID            `json:"payer_person_id"`
	UnitID         uuid.UUID            `json:"unit_id"`
	InstrumentID   uuid.UUID            `json:"instrument_id"`
	Amount         decimal.Decimal      `json:"amount"`
	Reference      string               `json:"reference,omitempty"`
	Timestamp      time.Time            `json:"timestamp"`
	Cancelled      bool                 `json:"cancelled"`
	CancelledAt    *time.Time           `json:"cancelled_at,omitempty"`
	DepositID      *uuid.UUID           `json:"deposit_id,omitempty"`
	JournalEntryID *uuid.UUID           `json:"journal_entry_id,omitempty"`
	Allocations    []AllocationResponse `json:"allocations"`
}

func toCashTransactionResponse(tx *treasury.CashTransaction) CashTransactionResponse {
	allocs := make([]AllocationResponse, len(tx.Allocations))
	for i, a := range tx.Allocations {
		allocs[i] = AllocationResponse{
			BillableItemID: a.BillableItemID,
			ConceptID:      a.ConceptID,
			Amount:         a.Amount,
			Seq:            a.Seq,
		}
	}
	return CashTransactionResponse{
		ID:             tx.ID,
		PayerPersonID:  tx.PayerPersonID,
		UnitID:         tx.UnitID,
		InstrumentID:   tx.InstrumentID,
		Amount:         tx.Amount,
		Reference:      tx.Reference,
		Timestamp:      tx.Timestamp,
		Cancelled:      tx.Cancelled,
		CancelledAt:    tx.CancelledAt,
		DepositID:      tx.DepositID,
		JournalEntryID: tx.JournalEntryID,
		Allocations:    allocs,
	}
}

// ===================== Deposits =====================

// CreateDepositRequest represents a request to close a deposit
type CreateDepositRequest struct {
	TransactionIDs          []uuid.UUID `json:"transaction_ids"`
	Bank                    string      `json:"bank" binding:"required,max=100"`
	DestinationAccount      string      `json:"destination_account" binding:"required,max=100"`
	ReferenceNumber         string      `json:"reference_number" binding:"max=100"`
	Date                    string      `json:"date" binding:"required,datetime=2006-01-02"`
	DestinationInstrumentID *uuid.UUID  `json:"destination_instrument_id"`
}

// DepositResponse represents a deposit in API responses
type DepositResponse struct {
	ID                      uuid.UUID       `json:"id"`
	Bank                    string          `json:"bank"`
	DestinationAccount      string          `json:"destination_account"`
	ReferenceNumber         string          `json:"reference_number,omitempty"`
	Date                    string          `json:"date"`
	Amount                  decimal.Decimal `json:"amount"`
	Status                  string          `json:"status"`
	CreatedBy               uuid.UUID       `json:"created_by"`
	DestinationInstrumentID *uuid.UUID      `json:"destination_instrument_id,omitempty"`
	JournalEntryID          *uuid.UUID      `json:"journal_entry_id,omitempty"`
	TransactionIDs          []uuid.UUID     `json:"transaction_ids"`
	CreatedAt               time.Time       `json:"created_at"`
}

func toDepositResponse(d *treasury.Deposit) DepositResponse {
	ids := d.MemberTransactionIDs
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return DepositResponse{
		ID:                      d.ID,
		Bank:                    d.Bank,
		DestinationAccount:      d.DestinationAccount,
		ReferenceNumber:         d.ReferenceNumber,
		Date:                    d.Date.Format(DateLayout),
		Amount:                  d.Amount,
		Status:                  string(d.Status),
		CreatedBy:               d.CreatedBy,
		DestinationInstrumentID: d.DestinationInstrumentID,
		JournalEntryID:          d.JournalEntryID,
		TransactionIDs:          ids,
		CreatedAt:               d.CreatedAt,
	}
}

// ===================== Transfers =====================

// CreateTransferRequest represents a request to move money between instruments
type CreateTransferRequest struct {
	SourceInstrumentID      uuid.UUID       `json:"source_instrument_id" binding:"required"`
	DestinationInstrumentID uuid.UUID       `json:"destination_instrument_id" binding:"required"`
	Amount                  decimal.Decimal `json:"amount"`
	Date                    string          `json:"date" binding:"required,datetime=2006-01-02"`
	Description             string          `json:"description" binding:"max=500"`
}

// TransferResponse represents a transfer in API responses
type TransferResponse struct {
	ID                      uuid.UUID       `json:"id"`
	SourceInstrumentID      uuid.UUID       `json:"source_instrument_id"`
	DestinationInstrumentID uuid.UUID       `json:"destination_instrument_id"`
	Amount                  decimal.Decimal `json:"amount"`
	Date                    string          `json:"date"`
	Description             string          `json:"description,omitempty"`
	JournalEntryID          *uuid.UUID      `json:"journal_entry_id,omitempty"`
	CreatedAt               time.Time       `json:"created_at"`
}

func toTransferResponse(t *treasury.Transfer) TransferResponse {
	return TransferResponse{
		ID:                      t.ID,
		SourceInstrumentID:      t.SourceInstrumentID,
		DestinationInstrumentID: t.DestinationInstrumentID,
		Amount:                  t.Amount,
		Date:                    t.Date.Format(DateLayout),
		Description:             t.Description,
		JournalEntryID:          t.JournalEntryID,
		CreatedAt:               t.CreatedAt,
	}
}

// ===================== Expenses =====================

// RecordExpenseRequest represents a request to record an expense
type RecordExpenseRequest struct {
	ExpenseTypeID  uuid.UUID       `json:"expense_type_id" binding:"required"`
	AccountID      uuid.UUID       `json:"account_id" binding:"required"`
	InstrumentID   uuid.UUID       `json:"instrument_id" binding:"required"`
	Amount         decimal.Decimal `json:"amount"`
	Date           string          `json:"date" binding:"required,datetime=2006-01-02"`
	Description    string          `json:"description" binding:"max=500"`
	DocumentNumber string          `json:"document_number" binding:"max=100"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID             uuid.UUID       `json:"id"`
	ExpenseTypeID  uuid.UUID       `json:"expense_type_id"`
	AccountID      uuid.UUID       `json:"account_id"`
	InstrumentID   uuid.UUID       `json:"instrument_id"`
	Amount         decimal.Decimal `json:"amount"`
	Date           string          `json:"date"`
	Description    string          `json:"description,omitempty"`
	DocumentNumber string          `json:"document_number,omitempty"`
	JournalEntryID *uuid.UUID      `json:"journal_entry_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

func toExpenseResponse(e *treasury.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:             e.ID,
		ExpenseTypeID:  e.ExpenseTypeID,
		AccountID:      e.AccountID,
		InstrumentID:   e.InstrumentID,
		Amount:         e.Amount,
		Date:           e.Date.Format(DateLayout),
		Description:    e.Description,
		DocumentNumber: e.DocumentNumber,
		JournalEntryID: e.JournalEntryID,
		CreatedAt:      e.CreatedAt,
	}
}

// ListFilter is the paging filter shared by deposit, transfer and expense lists
type ListFilter struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=500"`
}
