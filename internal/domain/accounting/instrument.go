package accounting

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// InstrumentKind is the medium a payment instrument represents
type InstrumentKind string

const (
	InstrumentKindCash  InstrumentKind = "CASH"
	InstrumentKindBank  InstrumentKind = "BANK"
	InstrumentKindQR    InstrumentKind = "QR"
	InstrumentKindCheck InstrumentKind = "CHECK"
)

// IsValid checks if the kind is known
func (k InstrumentKind) IsValid() bool {
	switch k {
	case InstrumentKindCash, InstrumentKindBank, InstrumentKindQR, InstrumentKindCheck:
		return true
	}
	return false
}

// String returns the string representation of InstrumentKind
func (k InstrumentKind) String() string {
	return string(k)
}

// PaymentInstrument is a cash drawer, bank account, QR wallet or check
// holder backed by an ASSET leaf account.
type PaymentInstrument struct {
	shared.BaseAggregateRoot
	Name              string          `json:"name"`
	Kind              InstrumentKind  `json:"kind"`
	LinkedAccountID   uuid.UUID       `json:"linked_account_id"`
	RequiresReference bool            `json:"requires_reference"`
	SpendingLimit     decimal.Decimal `json:"spending_limit"` // 0 = unlimited
	Active            bool            `json:"active"`
}

// NewPaymentInstrument creates an instrument linked to an active ASSET leaf account
func NewPaymentInstrument(name string, kind InstrumentKind, linkedAccount *Account, requiresReference bool, spendingLimit decimal.Decimal) (*PaymentInstrument, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("Instrument name is required")
	}
	if !kind.IsValid() {
		return nil, shared.NewValidationError(fmt.Sprintf("Unknown instrument kind %q", kind))
	}
	if spendingLimit.IsNegative() {
		return nil, shared.NewValidationError("Spending limit cannot be negative")
	}
	if linkedAccount == nil {
		return nil, shared.NewNotFoundError("Linked account")
	}
	if linkedAccount.Type != AccountTypeAsset || linkedAccount.IsGroup || !linkedAccount.Active {
		return nil, shared.NewDomainError(shared.CodeInvalidAccountBinding,
			fmt.Sprintf("Instrument must reference an active ASSET non-group account, got %s (%s, group=%t)",
				linkedAccount.Code, linkedAccount.Type, linkedAccount.IsGroup))
	}

	pi := &PaymentInstrument{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Kind:              kind,
		LinkedAccountID:   linkedAccount.ID,
		RequiresReference: requiresReference,
		SpendingLimit:     spendingLimit,
		Active:            true,
	}
	pi.AddDomainEvent(NewInstrumentCreatedEvent(pi))
	return pi, nil
}

// HasSpendingLimit reports whether a positive cap is configured
func (pi *PaymentInstrument) HasSpendingLimit() bool {
	return pi.SpendingLimit.IsPositive()
}

// CheckOutbound enforces the per-movement spending cap on money leaving the instrument
func (pi *PaymentInstrument) CheckOutbound(amount decimal.Decimal) error {
	if !pi.Active {
		return shared.NewDomainError(shared.CodeInvalidState, fmt.Sprintf("Instrument %s is inactive", pi.Name))
	}
	if pi.HasSpendingLimit() && amount.GreaterThan(pi.SpendingLimit) {
		return shared.NewDomainError(shared.CodeLimitExceeded,
			fmt.Sprintf("Amount %s exceeds the %s spending limit of %s",
				amount.StringFixed(2), pi.Name, pi.SpendingLimit.StringFixed(2)))
	}
	return nil
}

// CheckReference validates the reference requirement for incoming payments
func (pi *PaymentInstrument) CheckReference(reference string) error {
	if pi.RequiresReference && strings.TrimSpace(reference) == "" {
		return shared.NewValidationError(fmt.Sprintf("Instrument %s requires a reference", pi.Name))
	}
	return nil
}

// Deactivate marks the instrument inactive
func (pi *PaymentInstrument) Deactivate() error {
	if !pi.Active {
		return shared.NewDomainError(shared.CodeInvalidState, "Instrument is already inactive")
	}
	pi.Active = false
	pi.UpdatedAt = time.Now()
	pi.IncrementVersion()
	return nil
}
