package accounting

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/propledger/backend/internal/domain/shared/valueobject"
)

// AccountType classifies a ledger account
type AccountType string

const (
	AccountTypeAsset   AccountType = "ASSET"
	AccountTypeIncome  AccountType = "INCOME"
	AccountTypeExpense AccountType = "EXPENSE"
)

// IsValid checks if the account type is known
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeIncome, AccountTypeExpense:
		return true
	}
	return false
}

// String returns the string representation of AccountType
func (t AccountType) String() string {
	return string(t)
}

// Account is a node of the chart of accounts. Group accounts ("rubros")
// only organize children and never receive postings.
type Account struct {
	shared.BaseAggregateRoot
	Code     string      `json:"code"`
	Name     string      `json:"name"`
	Type     AccountType `json:"account_type"`
	IsGroup  bool        `json:"is_group"`
	Active   bool        `json:"active"`
	ParentID *uuid.UUID  `json:"parent_id,omitempty"`
}

// NewAccount creates an active account. The parent, when one exists in the
// chart, must be a group of the same type; pass nil for a root account.
func NewAccount(code, name string, accountType AccountType, isGroup bool, parent *Account) (*Account, error) {
	parsed, err := valueobject.ParseAccountCode(code)
	if err != nil {
		return nil, shared.NewValidationError(err.Error())
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("Account name is required")
	}
	if len(name) > 200 {
		return nil, shared.NewValidationError("Account name cannot exceed 200 characters")
	}
	if !accountType.IsValid() {
		return nil, shared.NewValidationError(fmt.Sprintf("Unknown account type %q", accountType))
	}

	a := &Account{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              parsed.String(),
		Name:              name,
		Type:              accountType,
		IsGroup:           isGroup,
		Active:            true,
	}

	if parent != nil {
		if !parent.IsGroup {
			return nil, shared.NewDomainError(shared.CodeInvalidAccountBinding,
				fmt.Sprintf("Parent account %s is not a group account", parent.Code))
		}
		if parent.Type != accountType {
			return nil, shared.NewDomainError(shared.CodeInvalidAccountBinding,
				fmt.Sprintf("Parent account %s is %s, child must match", parent.Code, parent.Type))
		}
		a.ParentID = &parent.ID
	}

	a.AddDomainEvent(NewAccountCreatedEvent(a))
	return a, nil
}

// ParsedCode returns the structured code
func (a *Account) ParsedCode() valueobject.AccountCode {
	c, _ := valueobject.ParseAccountCode(a.Code)
	return c
}

// Rename changes the display name
func (a *Account) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("Account name is required")
	}
	a.Name = name
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	return nil
}

// SetGroup toggles the group flag. hasPostings must report whether any
// journal posting targets the account.
func (a *Account) SetGroup(isGroup, hasPostings bool) error {
	if a.IsGroup == isGroup {
		return nil
	}
	if isGroup && hasPostings {
		return shared.NewDomainError(shared.CodeHasDependents, "Account with postings cannot become a group account")
	}
	a.IsGroup = isGroup
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	return nil
}

// Reparent moves the account under parent, which must be a group account of
// the same type. Used when an account is inserted between an existing
// account and its former parent.
func (a *Account) Reparent(parent *Account) error {
	if !parent.IsGroup {
		return shared.NewDomainError(shared.CodeInvalidAccountBinding,
			fmt.Sprintf("Account %s has sub-accounts such as %s and must be a group account", parent.Code, a.Code))
	}
	if parent.Type != a.Type {
		return shared.NewDomainError(shared.CodeInvalidAccountBinding,
			fmt.Sprintf("Account %s is %s, sub-account %s is %s", parent.Code, parent.Type, a.Code, a.Type))
	}
	a.ParentID = &parent.ID
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	return nil
}

// Deactivate marks the account inactive. The caller supplies the dependency
// count gathered from registries, postings and children.
func (a *Account) Deactivate(dependents AccountDependents) error {
	if !a.Active {
		return shared.NewDomainError(shared.CodeInvalidState, "Account is already inactive")
	}
	if dependents.Any() {
		return shared.NewDomainError(shared.CodeHasDependents,
			fmt.Sprintf("Account %s is still referenced: %s", a.Code, dependents))
	}
	a.Active = false
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	a.AddDomainEvent(NewAccountDeactivatedEvent(a))
	return nil
}

// EnsurePostable returns an error unless postings may target the account
func (a *Account) EnsurePostable() error {
	if a.IsGroup {
		return shared.NewDomainError(shared.CodeInvalidAccountBinding,
			fmt.Sprintf("Group account %s cannot receive postings", a.Code))
	}
	if !a.Active {
		return shared.NewDomainError(shared.CodeInvalidAccountBinding,
			fmt.Sprintf("Account %s is inactive", a.Code))
	}
	return nil
}

// AccountDependents counts the things that keep an account alive
type AccountDependents struct {
	Concepts       int64
	ExpenseTypes   int64
	Instruments    int64
	Postings       int64
	ActiveChildren int64
}

// Any reports whether anything still depends on the account
func (d AccountDependents) Any() bool {
	return d.Concepts+d.ExpenseTypes+d.Instruments+d.Postings+d.ActiveChildren > 0
}

func (d AccountDependents) String() string {
	parts := make([]string, 0, 5)
	add := func(n int64, label string) {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, label))
		}
	}
	add(d.Concepts, "concept(s)")
	add(d.ExpenseTypes, "expense type(s)")
	add(d.Instruments, "instrument(s)")
	add(d.Postings, "posting(s)")
	add(d.ActiveChildren, "active child account(s)")
	return strings.Join(parts, ", ")
}

// SortByCode orders accounts with numeric-aware segment comparison
func SortByCode(accounts []Account) {
	sort.SliceStable(accounts, func(i, j int) bool {
		return valueobject.CompareAccountCodes(accounts[i].Code, accounts[j].Code) < 0
	})
}

// ParentCodeCandidates lists the codes that could be the parent of code,
// longest first. The parent is the first candidate present in the chart.
func ParentCodeCandidates(code string) []string {
	parsed, err := valueobject.ParseAccountCode(code)
	if err != nil {
		return nil
	}
	return parsed.ProperPrefixes()
}
