package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	accountingapp "github.com/propledger/backend/internal/application/accounting"
	billingapp "github.com/propledger/backend/internal/application/billing"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newGenerateCommand(open BackendFactory) *cobra.Command {
	var (
		period, concept, unitType, dueDate, amount string
	)

	cmd := &cobra.Command{
		Use:   "generate-global",
		Short: "Bill every active unit for one period of a concept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conceptID, err := uuid.Parse(concept)
			if err != nil {
				return fmt.Errorf("--concept: %w", err)
			}
			req := billingapp.GenerateGlobalRequest{
				Period:    period,
				ConceptID: conceptID,
				UnitType:  unitType,
				DueDate:   dueDate,
			}
			if amount != "" {
				override, err := decimal.NewFromString(amount)
				if err != nil {
					return fmt.Errorf("--amount: %w", err)
				}
				req.AmountOverride = &override
			}

			return withBackend(cmd, open, func(ctx context.Context, b *Backend) error {
				resp, err := b.Billing.GenerateGlobal(ctx, req)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "period %s: created %d, skipped %d\n", period, resp.Created, resp.Skipped)
				for _, s := range resp.SkippedUnits {
					fmt.Fprintf(out, "  skipped %s (%s)\n", s.UnitID, s.Reason)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&period, "period", "", "billing period, YYYY-MM (required)")
	cmd.Flags().StringVar(&concept, "concept", "", "concept id (required)")
	cmd.Flags().StringVar(&unitType, "unit-type", "", "only units of this type")
	cmd.Flags().StringVar(&dueDate, "due-date", "", "due date, YYYY-MM-DD")
	cmd.Flags().StringVar(&amount, "amount", "", "bill this amount instead of the contract amount")
	_ = cmd.MarkFlagRequired("period")
	_ = cmd.MarkFlagRequired("concept")
	return cmd
}

func newRollbackCommand(open BackendFactory) *cobra.Command {
	var period, concept, unitType, reason string

	cmd := &cobra.Command{
		Use:   "rollback-bulk",
		Short: "Cancel the untouched items of a generation run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conceptID, err := uuid.Parse(concept)
			if err != nil {
				return fmt.Errorf("--concept: %w", err)
			}
			return withBackend(cmd, open, func(ctx context.Context, b *Backend) error {
				resp, err := b.Billing.RollbackBulk(ctx, billingapp.RollbackBulkRequest{
					Period:    period,
					ConceptID: conceptID,
					UnitType:  unitType,
					Reason:    reason,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "cancelled %d items\n", resp.CancelledCount)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&period, "period", "", "billing period, YYYY-MM (required)")
	cmd.Flags().StringVar(&concept, "concept", "", "concept id (required)")
	cmd.Flags().StringVar(&unitType, "unit-type", "", "only units of this type")
	cmd.Flags().StringVar(&reason, "reason", "", "why the run is rolled back (required)")
	_ = cmd.MarkFlagRequired("period")
	_ = cmd.MarkFlagRequired("concept")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}

func newPendingCommand(open BackendFactory) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "list-pending",
		Short: "List receipts waiting for a deposit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withBackend(cmd, open, func(ctx context.Context, b *Backend) error {
				pending, err := b.Deposits.ListPending(ctx, kind)
				if err != nil {
					return err
				}
				total := decimal.Zero
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tUNIT\tAMOUNT\tRECORDED")
				for _, tx := range pending {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", tx.ID, tx.UnitID, tx.Amount.StringFixed(2), tx.Timestamp.Format("2006-01-02 15:04"))
					total = total.Add(tx.Amount)
				}
				fmt.Fprintf(w, "\t\t%s\t%d receipts\n", total.StringFixed(2), len(pending))
				return w.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "CASH", "instrument kind")
	return cmd
}

func newAccountsCommand(open BackendFactory) *cobra.Command {
	var accountType string

	cmd := &cobra.Command{
		Use:   "list-accounts",
		Short: "Print the chart of accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withBackend(cmd, open, func(ctx context.Context, b *Backend) error {
				accounts, err := b.Accounts.List(ctx, accountingapp.AccountListFilter{Type: accountType})
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "CODE\tNAME\tTYPE\tGROUP\tACTIVE")
				for _, a := range accounts {
					fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%t\n", a.Code, a.Name, a.AccountType, a.IsGroup, a.Active)
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&accountType, "type", "", "ASSET, INCOME or EXPENSE")
	return cmd
}
