package treasury

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/accounting"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

func loadInstrument(ctx context.Context, repo accounting.InstrumentRepository, id uuid.UUID, label string) (*accounting.PaymentInstrument, error) {
	pi, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pi == nil {
		return nil, shared.NewNotFoundError(label)
	}
	return pi, nil
}

func loadAccount(ctx context.Context, repo accounting.AccountRepository, id uuid.UUID, label string) (*accounting.Account, error) {
	acc, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, shared.NewNotFoundError(label)
	}
	return acc, nil
}

// accountsByID loads the accounts for ids and fails when any is missing
func accountsByID(ctx context.Context, repo accounting.AccountRepository, ids []uuid.UUID) (map[uuid.UUID]*accounting.Account, error) {
	accounts, err := repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]*accounting.Account, len(accounts))
	for i := range accounts {
		out[accounts[i].ID] = &accounts[i]
	}
	for _, id := range ids {
		if out[id] == nil {
			return nil, shared.NewNotFoundError("Account " + id.String())
		}
	}
	return out, nil
}

// creditGroups sums amounts per account, keeping first-seen order so
// postings come out in a stable sequence
type creditGroups struct {
	order  []uuid.UUID
	totals map[uuid.UUID]decimal.Decimal
}

func newCreditGroups() *creditGroups {
	return &creditGroups{totals: make(map[uuid.UUID]decimal.Decimal)}
}

func (g *creditGroups) add(accountID uuid.UUID, amount decimal.Decimal) {
	if _, ok := g.totals[accountID]; !ok {
		g.order = append(g.order, accountID)
		g.totals[accountID] = decimal.Zero
	}
	g.totals[accountID] = g.totals[accountID].Add(amount)
}

func (g *creditGroups) total() decimal.Decimal {
	sum := decimal.Zero
	for _, v := range g.totals {
		sum = sum.Add(v)
	}
	return sum
}

func (g *creditGroups) lines(accounts map[uuid.UUID]*accounting.Account) []accounting.JournalLine {
	lines := make([]accounting.JournalLine, 0, len(g.order))
	for _, id := range g.order {
		lines = append(lines, accounting.Credit(accounts[id], g.totals[id]))
	}
	return lines
}

func parseDate(s, field string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, shared.NewValidationError(field + " must be a date in YYYY-MM-DD format")
	}
	return t, nil
}

func parseOptionalID(s, field string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, shared.NewValidationError(field + " must be a valid UUID")
	}
	return &id, nil
}
