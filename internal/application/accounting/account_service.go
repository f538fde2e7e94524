package accounting

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	appevent "github.com/propledger/backend/internal/application/event"
	"github.com/propledger/backend/internal/domain/accounting"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/propledger/backend/internal/domain/shared/valueobject"
)

// AccountService manages the chart of accounts
type AccountService struct {
	accountRepo accounting.AccountRepository
	txScope     TransactionScope
	dispatcher  *appevent.Dispatcher
}

// NewAccountService creates a new AccountService
func NewAccountService(accountRepo accounting.AccountRepository, txScope TransactionScope) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		txScope:     txScope,
	}
}

// SetEventDispatcher sets the dispatcher for domain events
func (s *AccountService) SetEventDispatcher(d *appevent.Dispatcher) {
	s.dispatcher = d
}

// Create creates an account under the longest existing code prefix
func (s *AccountService) Create(ctx context.Context, req CreateAccountRequest) (*AccountResponse, error) {
	code, err := valueobject.ParseAccountCode(req.Code)
	if err != nil {
		return nil, shared.NewValidationError(err.Error())
	}
	accountType := accounting.AccountType(strings.ToUpper(strings.TrimSpace(req.AccountType)))

	var account *accounting.Account
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		exists, err := repos.AccountRepo().ExistsByCode(ctx, code.String())
		if err != nil {
			return err
		}
		if exists {
			return shared.NewDomainError(shared.CodeDuplicateCode,
				fmt.Sprintf("Account code %s already exists", code))
		}

		parent, err := findParent(ctx, repos.AccountRepo(), code.String())
		if err != nil {
			return err
		}

		account, err = accounting.NewAccount(code.String(), req.Name, accountType, req.IsGroup, parent)
		if err != nil {
			return err
		}
		children, err := adoptedChildren(ctx, repos.AccountRepo(), account)
		if err != nil {
			return err
		}
		if err := repos.AccountRepo().Save(ctx, account); err != nil {
			return err
		}
		for i := range children {
			if err := repos.AccountRepo().SaveWithLock(ctx, &children[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, account)
	return toAccountResponse(account), nil
}

// findParent returns the account whose code is the longest proper prefix of
// code, or nil when the code is a root.
func findParent(ctx context.Context, repo accounting.AccountRepository, code string) (*accounting.Account, error) {
	candidates := accounting.ParentCodeCandidates(code)
	if len(candidates) == 0 {
		return nil, nil
	}
	found, err := repo.FindByCodes(ctx, candidates)
	if err != nil {
		return nil, err
	}
	byCode := make(map[string]*accounting.Account, len(found))
	for i := range found {
		byCode[found[i].Code] = &found[i]
	}
	for _, c := range candidates {
		if a, ok := byCode[c]; ok {
			return a, nil
		}
	}
	return nil, nil
}

// adoptedChildren re-points the existing accounts whose nearest ancestor
// becomes account once it is inserted. Accounts below another descendant
// keep their parent.
func adoptedChildren(ctx context.Context, repo accounting.AccountRepository, account *accounting.Account) ([]accounting.Account, error) {
	descendants, err := repo.FindDescendants(ctx, account.Code)
	if err != nil {
		return nil, err
	}
	code := account.ParsedCode()
	below := make([]accounting.Account, 0, len(descendants))
	for _, d := range descendants {
		if d.ParsedCode().HasPrefix(code) && d.Code != account.Code {
			below = append(below, d)
		}
	}

	children := make([]accounting.Account, 0, len(below))
	for i := range below {
		dc := below[i].ParsedCode()
		nested := false
		for j := range below {
			if i != j && below[j].ParsedCode().Depth() < dc.Depth() && dc.HasPrefix(below[j].ParsedCode()) {
				nested = true
				break
			}
		}
		if nested {
			continue
		}
		child := below[i]
		if err := child.Reparent(account); err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

// GetByID gets an account by ID
func (s *AccountService) GetByID(ctx context.Context, id uuid.UUID) (*AccountResponse, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, shared.NewNotFoundError("Account")
	}
	return toAccountResponse(account), nil
}

// List lists accounts ordered by code
func (s *AccountService) List(ctx context.Context, filter AccountListFilter) ([]AccountResponse, error) {
	if filter.PageSize == 0 {
		filter.PageSize = shared.MaxPageSize
	}
	f := accounting.AccountFilter{
		Filter: shared.Filter{
			Page:     filter.Page,
			PageSize: filter.PageSize,
			Search:   filter.Search,
		},
		IsGroup: filter.IsGroup,
		Active:  filter.Active,
	}
	if filter.Type != "" {
		t := accounting.AccountType(strings.ToUpper(filter.Type))
		f.Type = &t
	}

	accounts, err := s.accountRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	accounting.SortByCode(accounts)
	return toAccountResponses(accounts), nil
}

// Update renames an account or toggles its group flag
func (s *AccountService) Update(ctx context.Context, id uuid.UUID, req UpdateAccountRequest) (*AccountResponse, error) {
	var account *accounting.Account
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		account, err = repos.AccountRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if account == nil {
			return shared.NewNotFoundError("Account")
		}

		if req.Name != nil {
			if err := account.Rename(*req.Name); err != nil {
				return err
			}
		}
		if req.IsGroup != nil && *req.IsGroup != account.IsGroup {
			postings, err := repos.JournalRepo().CountPostingsByAccount(ctx, id)
			if err != nil {
				return err
			}
			if !*req.IsGroup {
				children, err := repos.AccountRepo().CountActiveChildren(ctx, id)
				if err != nil {
					return err
				}
				if children > 0 {
					return shared.NewDomainError(shared.CodeHasDependents,
						fmt.Sprintf("Account %s still has %d active child account(s)", account.Code, children))
				}
			}
			if err := account.SetGroup(*req.IsGroup, postings > 0); err != nil {
				return err
			}
		}
		if !account.IsModified() {
			return nil
		}
		return repos.AccountRepo().SaveWithLock(ctx, account)
	})
	if err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// Deactivate deactivates an account that nothing references anymore
func (s *AccountService) Deactivate(ctx context.Context, id uuid.UUID) (*AccountResponse, error) {
	var account *accounting.Account
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		account, err = repos.AccountRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if account == nil {
			return shared.NewNotFoundError("Account")
		}

		deps, err := countDependents(ctx, repos, id)
		if err != nil {
			return err
		}
		if err := account.Deactivate(deps); err != nil {
			return err
		}
		return repos.AccountRepo().SaveWithLock(ctx, account)
	})
	if err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, account)
	return toAccountResponse(account), nil
}

func countDependents(ctx context.Context, repos TransactionalRepositories, id uuid.UUID) (accounting.AccountDependents, error) {
	var (
		deps accounting.AccountDependents
		err  error
	)
	if deps.Concepts, err = repos.ConceptRepo().CountByIncomeAccount(ctx, id); err != nil {
		return deps, err
	}
	if deps.ExpenseTypes, err = repos.ExpenseTypeRepo().CountByGroupAccount(ctx, id); err != nil {
		return deps, err
	}
	if deps.Instruments, err = repos.InstrumentRepo().CountByLinkedAccount(ctx, id); err != nil {
		return deps, err
	}
	if deps.Postings, err = repos.JournalRepo().CountPostingsByAccount(ctx, id); err != nil {
		return deps, err
	}
	if deps.ActiveChildren, err = repos.AccountRepo().CountActiveChildren(ctx, id); err != nil {
		return deps, err
	}
	return deps, nil
}
