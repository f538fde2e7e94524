package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/property"
	"github.com/shopspring/decimal"
)

// UnitModel is the persistence model for units
type UnitModel struct {
	AggregateModel
	Code        string `gorm:"type:varchar(50);not null;uniqueIndex:ux_units_code"`
	UnitType    string `gorm:"type:varchar(50);not null;index"`
	Description string `gorm:"type:varchar(500)"`
	Active      bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (UnitModel) TableName() string {
	return "units"
}

// ToDomain converts the persistence model to a domain Unit
func (m *UnitModel) ToDomain() *property.Unit {
	return &property.Unit{
		BaseAggregateRoot: m.ToAggregateRoot(),
		Code:              m.Code,
		UnitType:          m.UnitType,
		Description:       m.Description,
		Active:            m.Active,
	}
}

// UnitModelFromDomain creates a new persistence model from a domain Unit
func UnitModelFromDomain(u *property.Unit) *UnitModel {
	m := &UnitModel{
		Code:        u.Code,
		UnitType:    u.UnitType,
		Description: u.Description,
		Active:      u.Active,
	}
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	return m
}

// ContractModel is the persistence model for unit contracts
type ContractModel struct {
	AggregateModel
	UnitID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	PersonID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	MonthlyAmount decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	StartDate     time.Time       `gorm:"type:date;not null"`
	EndDate       *time.Time      `gorm:"type:date"`
	Active        bool            `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (ContractModel) TableName() string {
	return "contracts"
}

// ToDomain converts the persistence model to a domain Contract
func (m *ContractModel) ToDomain() *property.Contract {
	return &property.Contract{
		BaseAggregateRoot: m.ToAggregateRoot(),
		UnitID:            m.UnitID,
		PersonID:          m.PersonID,
		MonthlyAmount:     m.MonthlyAmount,
		StartDate:         m.StartDate,
		EndDate:           m.EndDate,
		Active:            m.Active,
	}
}

// ContractModelFromDomain creates a new persistence model from a domain Contract
func ContractModelFromDomain(c *property.Contract) *ContractModel {
	m := &ContractModel{
		UnitID:        c.UnitID,
		PersonID:      c.PersonID,
		MonthlyAmount: c.MonthlyAmount,
		StartDate:     c.StartDate,
		EndDate:       c.EndDate,
		Active:        c.Active,
	}
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	return m
}
