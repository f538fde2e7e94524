package accounting

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/shared"
)

// Concept is a billing concept (e.g. "Expensa") and the income account its
// collections credit.
type Concept struct {
	shared.BaseAggregateRoot
	Name            string    `json:"name"`
	IncomeAccountID uuid.UUID `json:"income_account_id"`
	Active          bool      `json:"active"`
}

// NewConcept binds a concept to an active INCOME leaf account
func NewConcept(name string, incomeAccount *Account) (*Concept, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("Concept name is required")
	}
	if incomeAccount == nil {
		return nil, shared.NewNotFoundError("Income account")
	}
	if incomeAccount.Type != AccountTypeIncome || incomeAccount.IsGroup || !incomeAccount.Active {
		return nil, shared.NewDomainError(shared.CodeInvalidAccountBinding,
			fmt.Sprintf("Concept must reference an active INCOME non-group account, got %s (%s, group=%t)",
				incomeAccount.Code, incomeAccount.Type, incomeAccount.IsGroup))
	}

	c := &Concept{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		IncomeAccountID:   incomeAccount.ID,
		Active:            true,
	}
	c.AddDomainEvent(NewConceptCreatedEvent(c))
	return c, nil
}

// Deactivate marks the concept inactive
func (c *Concept) Deactivate() error {
	if !c.Active {
		return shared.NewDomainError(shared.CodeInvalidState, "Concept is already inactive")
	}
	c.Active = false
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}
