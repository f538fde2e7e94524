package property

import (
	"context"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/shared"
)

// UnitFilter defines filtering options for unit queries
type UnitFilter struct {
	shared.Filter
	UnitType *string // Filter by normalized unit type
	Active   *bool
}

// UnitRepository defines persistence for units
type UnitRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Unit, error)
	FindAll(ctx context.Context, filter UnitFilter) ([]Unit, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Save(ctx context.Context, unit *Unit) error
}

// ContractRepository defines persistence for contracts
type ContractRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Contract, error)
	// FindByUnit returns every contract of a unit, newest start first
	FindByUnit(ctx context.Context, unitID uuid.UUID) ([]Contract, error)
	// FindActiveByUnits returns active contracts for the given units
	FindActiveByUnits(ctx context.Context, unitIDs []uuid.UUID) ([]Contract, error)
	Save(ctx context.Context, contract *Contract) error
}
