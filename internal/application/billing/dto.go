package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// CreateBillableRequest represents a request to create a billable item by hand
type CreateBillableRequest struct {
	UnitID     uuid.UUID       `json:"unit_id" binding:"required"`
	PersonID   *uuid.UUID      `json:"person_id"`
	ConceptID  uuid.UUID       `json:"concept_id" binding:"required"`
	Period     string          `json:"period" binding:"required,datetime=2006-01"`
	BaseAmount decimal.Decimal `json:"base_amount"`
	DueDate    string          `json:"due_date" binding:"required,datetime=2006-01-02"`
}

// UpdateBillableRequest represents the editable fields of a billable item
type UpdateBillableRequest struct {
	DueDate        *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	AutoPayBlocked *bool   `json:"auto_pay_blocked"`
}

// CancelBillableRequest represents a request to cancel one item
type CancelBillableRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// BillableListFilter defines filtering options for billable item list queries
type BillableListFilter struct {
	UnitID    string `form:"unit_id" binding:"omitempty,uuid"`
	PersonID  string `form:"person_id" binding:"omitempty,uuid"`
	ConceptID string `form:"concept_id" binding:"omitempty,uuid"`
	Period    string `form:"period" binding:"omitempty,datetime=2006-01"`
	Status    string `form:"status" binding:"omitempty,oneof=PENDING OVERDUE PAID CANCELLED"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=500"`
}

// GenerateGlobalRequest represents a request to bill every matching unit for one period
type GenerateGlobalRequest struct {
	Period         string           `json:"period" binding:"required,datetime=2006-01"`
	ConceptID      uuid.UUID        `json:"concept_id" binding:"required"`
	UnitType       string           `json:"unit_type" binding:"max=30"`
	DueDate        string           `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	AmountOverride *decimal.Decimal `json:"amount_override"`
}

// GenerateRetroactiveRequest represents a request to back-bill one unit
type GenerateRetroactiveRequest struct {
	UnitID         uuid.UUID        `json:"unit_id" binding:"required"`
	ConceptID      uuid.UUID        `json:"concept_id" binding:"required"`
	StartPeriod    string           `json:"start_period" binding:"required,datetime=2006-01"`
	MonthCount     int              `json:"month_count" binding:"required,min=1"`
	DueDay         *int             `json:"due_day" binding:"omitempty,min=1,max=31"`
	AmountOverride *decimal.Decimal `json:"amount_override"`
}

// RollbackBulkRequest represents a request to cancel a generation run
type RollbackBulkRequest struct {
	Period    string    `json:"period" binding:"required,datetime=2006-01"`
	ConceptID uuid.UUID `json:"concept_id" binding:"required"`
	UnitType  string    `json:"unit_type" binding:"max=30"`
	Reason    string    `json:"reason" binding:"required,max=500"`
}

// BillableItemResponse represents a billable item in API responses.
// Status is the effective status, with OVERDUE derived from the due date.
type BillableItemResponse struct {
	ID             uuid.UUID       `json:"id"`
	UnitID         uuid.UUID       `json:"unit_id"`
	PersonID       *uuid.UUID      `json:"person_id,omitempty"`
	ConceptID      uuid.UUID       `json:"concept_id"`
	Period         string          `json:"period"`
	DueDate        string          `json:"due_date"`
	BaseAmount     decimal.Decimal `json:"base_amount"`
	BalancePending decimal.Decimal `json:"balance_pending"`
	Status         string          `json:"status"`
	AutoPayBlocked bool            `json:"auto_pay_blocked"`
	CancelReason   string          `json:"cancel_reason,omitempty"`
	CancelledAt    *time.Time      `json:"cancelled_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Version        int             `json:"version"`
}

// GenerationResponse reports the outcome of a generation run
type GenerationResponse struct {
	Created      int                    `json:"created"`
	Skipped      int                    `json:"skipped"`
	SkippedUnits []billing.SkippedUnit  `json:"skipped_units"`
	Items        []BillableItemResponse `json:"items,omitempty"`
}

// RollbackResponse reports how many items a bulk rollback cancelled
type RollbackResponse struct {
	CancelledCount int64 `json:"cancelled_count"`
}

func toBillableItemResponse(b *billing.BillableItem, now time.Time) BillableItemResponse {
	return BillableItemResponse{
		ID:             b.ID,
		UnitID:         b.UnitID,
		PersonID:       b.PersonID,
		ConceptID:      b.ConceptID,
		Period:         b.Period.String(),
		DueDate:        b.DueDate.Format(DateLayout),
		BaseAmount:     b.BaseAmount,
		BalancePending: b.BalancePending,
		Status:         string(b.EffectiveStatus(now)),
		AutoPayBlocked: b.AutoPayBlocked,
		CancelReason:   b.CancelReason,
		CancelledAt:    b.CancelledAt,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
		Version:        b.Version,
	}
}

func toGenerationResponse(r *billing.GenerationResult, withItems bool, now time.Time) *GenerationResponse {
	resp := &GenerationResponse{
		Created:      r.Created,
		Skipped:      r.Skipped,
		SkippedUnits: r.SkippedUnits,
	}
	if resp.SkippedUnits == nil {
		resp.SkippedUnits = []billing.SkippedUnit{}
	}
	if withItems {
		resp.Items = make([]BillableItemResponse, len(r.CreatedItems))
		for i := range r.CreatedItems {
			resp.Items[i] = toBillableItemResponse(&r.CreatedItems[i], now)
		}
	}
	return resp
}
