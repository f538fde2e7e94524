package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/billing"
	"github.com/propledger/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// BillableItemModel is the persistence model for billable items.
//
// ux_billable_items_active_tuple keeps at most one non-cancelled item per
// (unit, concept, period). OVERDUE is never stored.
type BillableItemModel struct {
	AggregateModel
	PersonID       *uuid.UUID         `gorm:"type:uuid;index"`
	UnitID         uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:ux_billable_items_active_tuple,priority:1,where:status <> 'CANCELLED'"`
	ConceptID      uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:ux_billable_items_active_tuple,priority:2;index"`
	Period         valueobject.Period `gorm:"type:varchar(7);not null;uniqueIndex:ux_billable_items_active_tuple,priority:3;index"`
	DueDate        time.Time          `gorm:"type:date;not null;index"`
	BaseAmount     decimal.Decimal    `gorm:"type:decimal(18,4);not null;check:chk_billable_items_base,base_amount >= 0"`
	BalancePending decimal.Decimal    `gorm:"type:decimal(18,4);not null;check:chk_billable_items_balance,balance_pending >= 0 AND balance_pending <= base_amount"`
	Status         billing.ItemStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	AutoPayBlocked bool               `gorm:"not null;default:false"`
	CancelReason   string             `gorm:"type:varchar(500)"`
	CancelledAt    *time.Time
}

// TableName returns the table name for GORM
func (BillableItemModel) TableName() string {
	return "billable_items"
}

// ToDomain converts the persistence model to a domain BillableItem
func (m *BillableItemModel) ToDomain() *billing.BillableItem {
	return &billing.BillableItem{
		BaseAggregateRoot: m.ToAggregateRoot(),
		PersonID:          m.PersonID,
		UnitID:            m.UnitID,
		ConceptID:         m.ConceptID,
		Period:            m.Period,
		DueDate:           m.DueDate,
		BaseAmount:        m.BaseAmount,
		BalancePending:    m.BalancePending,
		Status:            m.Status,
		AutoPayBlocked:    m.AutoPayBlocked,
		CancelReason:      m.CancelReason,
		CancelledAt:       m.CancelledAt,
	}
}

// FromDomain populates the persistence model from a domain BillableItem.
// A derived OVERDUE status is stored as PENDING.
func (m *BillableItemModel) FromDomain(item *billing.BillableItem) {
	m.FromDomainAggregateRoot(item.BaseAggregateRoot)
	m.PersonID = item.PersonID
	m.UnitID = item.UnitID
	m.ConceptID = item.ConceptID
	m.Period = item.Period
	m.DueDate = item.DueDate
	m.BaseAmount = item.BaseAmount
	m.BalancePending = item.BalancePending
	m.Status = item.Status
	if m.Status == billing.ItemStatusOverdue {
		m.Status = billing.ItemStatusPending
	}
	m.AutoPayBlocked = item.AutoPayBlocked
	m.CancelReason = item.CancelReason
	m.CancelledAt = item.CancelledAt
}

// BillableItemModelFromDomain creates a new persistence model from a domain BillableItem
func BillableItemModelFromDomain(item *billing.BillableItem) *BillableItemModel {
	m := &BillableItemModel{}
	m.FromDomain(item)
	return m
}
