// Package cli implements ledgerctl, the operator command line for billing runs
// and cash reconciliation.
package cli

import (
	"context"
	"fmt"

	accountingapp "github.com/propledger/backend/internal/application/accounting"
	billingapp "github.com/propledger/backend/internal/application/billing"
	treasuryapp "github.com/propledger/backend/internal/application/treasury"
	"github.com/propledger/backend/internal/infrastructure/config"
	"github.com/propledger/backend/internal/infrastructure/logger"
	"github.com/propledger/backend/internal/infrastructure/persistence"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Backend holds the services the commands drive
type Backend struct {
	Accounts *accountingapp.AccountService
	Billing  *billingapp.BillingService
	Deposits *treasuryapp.DepositService

	close func() error
}

// Close releases the backend's database handle
func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// BackendFactory opens a Backend for one command invocation
type BackendFactory func(ctx context.Context) (*Backend, error)

// NewBackend wires the services over an open database
func NewBackend(db *persistence.Database, policy billingapp.Policy, log *zap.Logger) *Backend {
	scope := persistence.NewGormTransactionScope(db.DB)
	items := persistence.NewGormBillableItemRepository(db.DB)
	cash := persistence.NewGormCashTransactionRepository(db.DB)
	return &Backend{
		Accounts: accountingapp.NewAccountService(persistence.NewGormAccountRepository(db.DB), scope.Accounting()),
		Billing: billingapp.NewBillingService(items, persistence.NewGormUnitRepository(db.DB),
			persistence.NewGormConceptRepository(db.DB), scope.Billing(), policy, log),
		Deposits: treasuryapp.NewDepositService(cash, persistence.NewGormDepositRepository(db.DB), scope.Treasury(), log),
		close:    db.Close,
	}
}

// ConfigBackend loads configuration and connects to the configured database
func ConfigBackend(_ context.Context) (*Backend, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	log, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: "console", Output: "stderr"})
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database,
		logger.NewGormLogger(log, logger.MapGormLogLevel("warn"), logger.WithIgnoreRecordNotFoundError(true)))
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return NewBackend(db, billingapp.Policy{
		MinRollbackReasonLength: cfg.Billing.MinRollbackReasonLength,
		MaxRetroactiveMonths:    cfg.Billing.MaxRetroactiveMonths,
		DefaultDueDay:           cfg.Billing.DefaultDueDay,
	}, log), nil
}

// NewRootCommand creates the root command with every subcommand registered
func NewRootCommand(open BackendFactory, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ledgerctl",
		Short:   "Operate the property ledger: billing runs and cash reconciliation",
		Version: version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newGenerateCommand(open),
		newRollbackCommand(open),
		newPendingCommand(open),
		newAccountsCommand(open),
	)
	return rootCmd
}

// withBackend opens a backend, runs fn and closes the backend again
func withBackend(cmd *cobra.Command, open BackendFactory, fn func(ctx context.Context, b *Backend) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	b, err := open(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = b.Close() }()
	return fn(ctx, b)
}
