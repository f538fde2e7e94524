package property

import (
	"strings"
	"time"

	"github.com/propledger/backend/internal/domain/shared"
)

// Unit is a billable property unit (apartment, parking lot, store...)
type Unit struct {
	shared.BaseAggregateRoot
	Code        string `json:"code"`
	UnitType    string `json:"unit_type"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// NewUnit creates an active unit. The unit type is normalized to upper case
// so generation filters match regardless of input casing.
func NewUnit(code, unitType, description string) (*Unit, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, shared.NewValidationError("Unit code is required")
	}
	if len(code) > 50 {
		return nil, shared.NewValidationError("Unit code cannot exceed 50 characters")
	}
	unitType = NormalizeUnitType(unitType)
	if unitType == "" {
		return nil, shared.NewValidationError("Unit type is required")
	}
	return &Unit{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		UnitType:          unitType,
		Description:       strings.TrimSpace(description),
		Active:            true,
	}, nil
}

// Deactivate excludes the unit from future generation runs
func (u *Unit) Deactivate() error {
	if !u.Active {
		return shared.NewDomainError(shared.CodeInvalidState, "Unit is already inactive")
	}
	u.Active = false
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// NormalizeUnitType trims and upper-cases a unit type or filter value
func NormalizeUnitType(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
