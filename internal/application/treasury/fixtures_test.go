package treasury

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/accounting"
	"github.com/propledger/backend/internal/domain/billing"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/propledger/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.March, 20, 14, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, code, shared.ErrorCode(err), "unexpected error: %v", err)
}

func mustAccount(t *testing.T, code string, typ accounting.AccountType) *accounting.Account {
	t.Helper()
	a, err := accounting.NewAccount(code, "Account "+code, typ, false, nil)
	require.NoError(t, err)
	a.ClearDomainEvents()
	return a
}

func mustGroup(t *testing.T, code string, typ accounting.AccountType) *accounting.Account {
	t.Helper()
	a, err := accounting.NewAccount(code, "Group "+code, typ, true, nil)
	require.NoError(t, err)
	a.ClearDomainEvents()
	return a
}

func mustInstrument(t *testing.T, name string, kind accounting.InstrumentKind, account *accounting.Account, limit string) *accounting.PaymentInstrument {
	t.Helper()
	pi, err := accounting.NewPaymentInstrument(name, kind, account, false, dec(limit))
	require.NoError(t, err)
	pi.ClearDomainEvents()
	return pi
}

func mustConcept(t *testing.T, name string, income *accounting.Account) *accounting.Concept {
	t.Helper()
	c, err := accounting.NewConcept(name, income)
	require.NoError(t, err)
	c.ClearDomainEvents()
	return c
}

func mustItem(t *testing.T, unitID, conceptID uuid.UUID, period string, amount string, due time.Time) billing.BillableItem {
	t.Helper()
	item, err := billing.NewBillableItem(unitID, nil, conceptID, valueobject.MustParsePeriod(period), dec(amount), due)
	require.NoError(t, err)
	item.ClearDomainEvents()
	return *item
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
