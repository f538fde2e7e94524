package accounting

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/propledger/backend/internal/domain/shared/valueobject"
)

// EligibilitySegments is the number of leading code segments an expense
// account must share with its expense type's group account.
const EligibilitySegments = 3

// ExpenseType routes expenses into a subtree of EXPENSE accounts
type ExpenseType struct {
	shared.BaseAggregateRoot
	Name                   string    `json:"name"`
	ExpenseGroupAccountID  uuid.UUID `json:"expense_group_account_id"`
	RequiresDocumentNumber bool      `json:"requires_document_number"`
	Active                 bool      `json:"active"`
}

// NewExpenseType binds an expense type to an active EXPENSE group account
func NewExpenseType(name string, groupAccount *Account, requiresDocumentNumber bool) (*ExpenseType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("Expense type name is required")
	}
	if groupAccount == nil {
		return nil, shared.NewNotFoundError("Expense group account")
	}
	if groupAccount.Type != AccountTypeExpense || !groupAccount.IsGroup || !groupAccount.Active {
		return nil, shared.NewDomainError(shared.CodeInvalidAccountBinding,
			fmt.Sprintf("Expense type must reference an active EXPENSE group account, got %s (%s, group=%t)",
				groupAccount.Code, groupAccount.Type, groupAccount.IsGroup))
	}

	et := &ExpenseType{
		BaseAggregateRoot:      shared.NewBaseAggregateRoot(),
		Name:                   name,
		ExpenseGroupAccountID:  groupAccount.ID,
		RequiresDocumentNumber: requiresDocumentNumber,
		Active:                 true,
	}
	et.AddDomainEvent(NewExpenseTypeCreatedEvent(et))
	return et, nil
}

// Deactivate marks the expense type inactive
func (et *ExpenseType) Deactivate() error {
	if !et.Active {
		return shared.NewDomainError(shared.CodeInvalidState, "Expense type is already inactive")
	}
	et.Active = false
	et.UpdatedAt = time.Now()
	et.IncrementVersion()
	return nil
}

// IsEligibleAccount reports whether account may receive expenses of a type
// bound to groupCode.
func IsEligibleAccount(groupCode string, account *Account) bool {
	if account == nil || account.Type != AccountTypeExpense || account.IsGroup || !account.Active {
		return false
	}
	group, err := valueobject.ParseAccountCode(groupCode)
	if err != nil {
		return false
	}
	code, err := valueobject.ParseAccountCode(account.Code)
	if err != nil {
		return false
	}
	return group.SharesPrefix(code, EligibilitySegments)
}

// EligibleAccounts filters candidates down to the accounts eligible for
// groupCode, ordered by code.
func EligibleAccounts(groupCode string, candidates []Account) []Account {
	out := make([]Account, 0, len(candidates))
	for i := range candidates {
		if IsEligibleAccount(groupCode, &candidates[i]) {
			out = append(out, candidates[i])
		}
	}
	SortByCode(out)
	return out
}
