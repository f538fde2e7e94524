package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	accountingapp "github.com/propledger/backend/internal/application/accounting"
	billingapp "github.com/propledger/backend/internal/application/billing"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/propledger/backend/internal/infrastructure/persistence"
	"github.com/propledger/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), persistence.GormConfig(logger.Discard))
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(models.AllModels()...))

	b := NewBackend(&persistence.Database{DB: gdb}, billingapp.DefaultPolicy(), zap.NewNop())
	t.Cleanup(func() { _ = sqlDB.Close() })
	return b
}

// run executes args against b; the backend stays open across invocations
func run(t *testing.T, b *Backend, args ...string) (string, error) {
	t.Helper()
	open := func(context.Context) (*Backend, error) {
		return &Backend{Accounts: b.Accounts, Billing: b.Billing, Deposits: b.Deposits}, nil
	}
	var out bytes.Buffer
	cmd := NewRootCommand(open, "test")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func seedAccounts(t *testing.T, b *Backend) {
	t.Helper()
	ctx := context.Background()
	_, err := b.Accounts.Create(ctx, accountingapp.CreateAccountRequest{Code: "4", Name: "Income", AccountType: "INCOME", IsGroup: true})
	require.NoError(t, err)
	_, err = b.Accounts.Create(ctx, accountingapp.CreateAccountRequest{Code: "4.1", Name: "Rent", AccountType: "INCOME"})
	require.NoError(t, err)
}

func TestListAccounts(t *testing.T) {
	b := newTestBackend(t)
	seedAccounts(t, b)

	out, err := run(t, b, "list-accounts")
	require.NoError(t, err)
	assert.Contains(t, out, "CODE")
	assert.Contains(t, out, "4.1")
	assert.Contains(t, out, "Rent")

	out, err = run(t, b, "list-accounts", "--type", "expense")
	require.NoError(t, err)
	assert.NotContains(t, out, "Rent")
}

func TestGenerateGlobal_FlagErrors(t *testing.T) {
	b := newTestBackend(t)

	_, err := run(t, b, "generate-global", "--concept", uuid.NewString())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "period")

	_, err = run(t, b, "generate-global", "--period", "2024-01", "--concept", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--concept")

	_, err = run(t, b, "generate-global", "--period", "2024-01", "--concept", uuid.NewString(), "--amount", "ten")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--amount")
}

func TestGenerateGlobal_UnknownConcept(t *testing.T) {
	b := newTestBackend(t)

	_, err := run(t, b, "generate-global", "--period", "2024-01", "--concept", uuid.NewString())
	assert.Equal(t, "NOT_FOUND", shared.ErrorCode(err))
}

func TestRollbackBulk(t *testing.T) {
	b := newTestBackend(t)
	concept := uuid.NewString()

	_, err := run(t, b, "rollback-bulk", "--period", "2024-01", "--concept", concept)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reason")

	_, err = run(t, b, "rollback-bulk", "--period", "2024-01", "--concept", concept, "--reason", "no")
	assert.Equal(t, "VALIDATION_ERROR", shared.ErrorCode(err))

	_, err = run(t, b, "rollback-bulk", "--period", "2024-01", "--concept", concept, "--reason", "duplicated run")
	assert.Equal(t, "NOT_FOUND", shared.ErrorCode(err))
}

func TestListPending_Empty(t *testing.T) {
	b := newTestBackend(t)

	out, err := run(t, b, "list-pending")
	require.NoError(t, err)
	assert.Contains(t, out, "0.00")
	assert.Contains(t, out, "0 receipts")
}

func TestVersion(t *testing.T) {
	out, err := run(t, newTestBackend(t), "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "ledgerctl version test")
}
