package property

import (
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/propledger/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Contract binds a responsible person to a unit with a monthly amount
type Contract struct {
	shared.BaseAggregateRoot
	UnitID        uuid.UUID       `json:"unit_id"`
	PersonID      uuid.UUID       `json:"person_id"`
	MonthlyAmount decimal.Decimal `json:"monthly_amount"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       *time.Time      `json:"end_date,omitempty"`
	Active        bool            `json:"active"`
}

// NewContract creates an active contract
func NewContract(unitID, personID uuid.UUID, monthlyAmount decimal.Decimal, startDate time.Time, endDate *time.Time) (*Contract, error) {
	if unitID == uuid.Nil {
		return nil, shared.NewValidationError("Unit is required")
	}
	if personID == uuid.Nil {
		return nil, shared.NewValidationError("Responsible person is required")
	}
	if !monthlyAmount.IsPositive() {
		return nil, shared.NewValidationError("Monthly amount must be positive")
	}
	if startDate.IsZero() {
		return nil, shared.NewValidationError("Start date is required")
	}
	if endDate != nil && endDate.Before(startDate) {
		return nil, shared.NewValidationError("End date cannot be before start date")
	}
	return &Contract{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UnitID:            unitID,
		PersonID:          personID,
		MonthlyAmount:     monthlyAmount,
		StartDate:         startDate,
		EndDate:           endDate,
		Active:            true,
	}, nil
}

// CoversPeriod reports whether the contract is in force during any day of p
func (c *Contract) CoversPeriod(p valueobject.Period) bool {
	if !c.Active {
		return false
	}
	if c.StartDate.After(p.LastDay().Add(24*time.Hour - time.Nanosecond)) {
		return false
	}
	if c.EndDate != nil && c.EndDate.Before(p.FirstDay()) {
		return false
	}
	return true
}

// Terminate ends the contract at the given date. The contract keeps
// covering the periods before that date for back-billing.
func (c *Contract) Terminate(endDate time.Time) error {
	if !c.Active || c.EndDate != nil {
		return shared.NewDomainError(shared.CodeInvalidState, "Contract is already terminated")
	}
	if endDate.Before(c.StartDate) {
		return shared.NewValidationError("End date cannot be before start date")
	}
	c.EndDate = &endDate
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// PickActive returns the contract in force for p with the latest start date
func PickActive(contracts []Contract, p valueobject.Period) *Contract {
	var best *Contract
	for i := range contracts {
		c := &contracts[i]
		if !c.CoversPeriod(p) {
			continue
		}
		if best == nil || c.StartDate.After(best.StartDate) {
			best = c
		}
	}
	return best
}
