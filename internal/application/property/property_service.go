package property

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/property"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// PropertyService manages units and the contracts that bind people to them
type PropertyService struct {
	unitRepo     property.UnitRepository
	contractRepo property.ContractRepository
}

// NewPropertyService creates a new PropertyService
func NewPropertyService(unitRepo property.UnitRepository, contractRepo property.ContractRepository) *PropertyService {
	return &PropertyService{
		unitRepo:     unitRepo,
		contractRepo: contractRepo,
	}
}

// CreateUnitRequest represents a request to register a unit
type CreateUnitRequest struct {
	Code        string `json:"code" binding:"required,max=50"`
	UnitType    string `json:"unit_type" binding:"required,max=30"`
	Description string `json:"description" binding:"max=500"`
}

// UnitListFilter defines filtering options for unit list queries
type UnitListFilter struct {
	UnitType string `form:"unit_type"`
	Active   *bool  `form:"active"`
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=500"`
}

// UnitResponse represents a unit in API responses
type UnitResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	UnitType    string    `json:"unit_type"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateContractRequest represents a request to register a contract
type CreateContractRequest struct {
	UnitID        uuid.UUID       `json:"unit_id" binding:"required"`
	PersonID      uuid.UUID       `json:"person_id" binding:"required"`
	MonthlyAmount decimal.Decimal `json:"monthly_amount"`
	StartDate     string          `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate       string          `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

// TerminateContractRequest represents a request to end a contract
type TerminateContractRequest struct {
	EndDate string `json:"end_date" binding:"required,datetime=2006-01-02"`
}

// ContractResponse represents a contract in API responses
type ContractResponse struct {
	ID            uuid.UUID       `json:"id"`
	UnitID        uuid.UUID       `json:"unit_id"`
	PersonID      uuid.UUID       `json:"person_id"`
	MonthlyAmount decimal.Decimal `json:"monthly_amount"`
	StartDate     string          `json:"start_date"`
	EndDate       *string         `json:"end_date,omitempty"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CreateUnit registers a unit
func (s *PropertyService) CreateUnit(ctx context.Context, req CreateUnitRequest) (*UnitResponse, error) {
	unit, err := property.NewUnit(req.Code, req.UnitType, req.Description)
	if err != nil {
		return nil, err
	}
	exists, err := s.unitRepo.ExistsByCode(ctx, unit.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError(shared.CodeDuplicateCode,
			fmt.Sprintf("Unit code %s already exists", unit.Code))
	}
	if err := s.unitRepo.Save(ctx, unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// GetUnit gets a unit by ID
func (s *PropertyService) GetUnit(ctx context.Context, id uuid.UUID) (*UnitResponse, error) {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, shared.NewNotFoundError("Unit")
	}
	return toUnitResponse(unit), nil
}

// ListUnits lists units ordered by code
func (s *PropertyService) ListUnits(ctx context.Context, filter UnitListFilter) ([]UnitResponse, error) {
	f := property.UnitFilter{
		Filter: shared.Filter{Page: filter.Page, PageSize: filter.PageSize, Search: filter.Search},
		Active: filter.Active,
	}
	if filter.UnitType != "" {
		t := property.NormalizeUnitType(filter.UnitType)
		f.UnitType = &t
	}
	units, err := s.unitRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]UnitResponse, len(units))
	for i := range units {
		out[i] = *toUnitResponse(&units[i])
	}
	return out, nil
}

// DeactivateUnit excludes a unit from future generation runs
func (s *PropertyService) DeactivateUnit(ctx context.Context, id uuid.UUID) (*UnitResponse, error) {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, shared.NewNotFoundError("Unit")
	}
	if err := unit.Deactivate(); err != nil {
		return nil, err
	}
	if err := s.unitRepo.Save(ctx, unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// CreateContract binds a responsible person to a unit
func (s *PropertyService) CreateContract(ctx context.Context, req CreateContractRequest) (*ContractResponse, error) {
	unit, err := s.unitRepo.FindByID(ctx, req.UnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, shared.NewNotFoundError("Unit")
	}

	start, err := time.Parse(DateLayout, req.StartDate)
	if err != nil {
		return nil, shared.NewValidationError("start_date must be a YYYY-MM-DD date")
	}
	var end *time.Time
	if req.EndDate != "" {
		e, err := time.Parse(DateLayout, req.EndDate)
		if err != nil {
			return nil, shared.NewValidationError("end_date must be a YYYY-MM-DD date")
		}
		end = &e
	}

	contract, err := property.NewContract(unit.ID, req.PersonID, req.MonthlyAmount, start, end)
	if err != nil {
		return nil, err
	}
	if err := s.contractRepo.Save(ctx, contract); err != nil {
		return nil, err
	}
	return toContractResponse(contract), nil
}

// ListContracts lists the contracts of a unit, newest start first
func (s *PropertyService) ListContracts(ctx context.Context, unitID uuid.UUID) ([]ContractResponse, error) {
	contracts, err := s.contractRepo.FindByUnit(ctx, unitID)
	if err != nil {
		return nil, err
	}
	out := make([]ContractResponse, len(contracts))
	for i := range contracts {
		out[i] = *toContractResponse(&contracts[i])
	}
	return out, nil
}

// TerminateContract sets the end date of a contract
func (s *PropertyService) TerminateContract(ctx context.Context, id uuid.UUID, req TerminateContractRequest) (*ContractResponse, error) {
	contract, err := s.contractRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, shared.NewNotFoundError("Contract")
	}
	end, err := time.Parse(DateLayout, req.EndDate)
	if err != nil {
		return nil, shared.NewValidationError("end_date must be a YYYY-MM-DD date")
	}
	if err := contract.Terminate(end); err != nil {
		return nil, err
	}
	if err := s.contractRepo.Save(ctx, contract); err != nil {
		return nil, err
	}
	return toContractResponse(contract), nil
}

func toUnitResponse(u *property.Unit) *UnitResponse {
	return &UnitResponse{
		ID:          u.ID,
		Code:        u.Code,
		UnitType:    u.UnitType,
		Description: u.Description,
		Active:      u.Active,
		CreatedAt:   u.CreatedAt,
	}
}

func toContractResponse(c *property.Contract) *ContractResponse {
	resp := &ContractResponse{
		ID:            c.ID,
		UnitID:        c.UnitID,
		PersonID:      c.PersonID,
		MonthlyAmount: c.MonthlyAmount,
		StartDate:     c.StartDate.Format(DateLayout),
		Active:        c.Active,
		CreatedAt:     c.CreatedAt,
	}
	if c.EndDate != nil {
		end := c.EndDate.Format(DateLayout)
		resp.EndDate = &end
	}
	return resp
}
