package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/magabrotheeeer/payments-admin/internal/models"
	"github.com/magabrotheeeer/payments-admin/internal/pages"
	"github.com/magabrotheeeer/payments-admin/internal/query"
)

var transactionFilters = append(append([]filterFlag{
	{name: "status", key: query.Status, usage: "Status: all, pending, completed, failed or cancelled"},
	{name: "user", key: query.UserID, usage: "User ID"},
	{name: "package", key: query.PackageID, usage: "Package ID"},
	{name: "search", key: query.Search, usage: "Search by transaction code or email"},
}, dateFlags...), sortFlags...)

func newTransactionsCmd(c *console) *cobra.Command {
	cmd := &cobra.Command{Use: "transactions", Short: "Manage bank transactions"}

	list := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Args:  cobra.NoArgs,
		RunE: c.run(true, func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			txs := pages.NewTransactions(c.log, c.admin, c.notifier(cmd))
			if err := applyFilters(cmd, txs.Filters(), transactionFilters); err != nil {
				return err
			}
			if err := txs.Load(ctx); err != nil {
				return err
			}
			return printTransactions(cmd.OutOrStdout(), txs.Data())
		}),
	}
	addListFlags(list, transactionFilters)

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show transaction details",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(true, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			page := pages.NewTransactionDetail(c.log, c.admin, args[0])
			if err := page.Load(ctx); err != nil {
				return err
			}
			return printTransactionDetail(cmd.OutOrStdout(), page.Data())
		}),
	}

	var notes string
	status := &cobra.Command{
		Use:   "status <id> <pending|completed|failed|cancelled>",
		Short: "Change transaction status",
		Args:  cobra.ExactArgs(2),
	}
	status.Flags().StringVar(&notes, "notes", "", "Admin notes")
	status.RunE = c.run(true, func(ctx context.Context, cmd *cobra.Command, args []string) error {
		return c.mutateTransactions(cmd, func(t *pages.Transactions) error {
			return t.UpdateStatus(ctx, args[0], args[1], notes)
		})
	})

	var yes bool
	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an unfinished transaction",
		Args:  cobra.ExactArgs(1),
	}
	del.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	del.RunE = c.run(true, func(ctx context.Context, cmd *cobra.Command, args []string) error {
		if !yes {
			ok, err := c.confirm(cmd, fmt.Sprintf("Delete transaction %s?", args[0]))
			if err != nil || !ok {
				return err
			}
		}
		return c.mutateTransactions(cmd, func(t *pages.Transactions) error { return t.Delete(ctx, args[0]) })
	})

	var period string
	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show transaction analytics",
		Args:  cobra.NoArgs,
	}
	stats.Flags().StringVar(&period, "period", "30", "Period in days: 7, 30, 90 or 365")
	stats.RunE = c.run(true, func(ctx context.Context, cmd *cobra.Command, _ []string) error {
		page := pages.NewTransactionStats(c.log, c.admin)
		if err := page.SetPeriod(ctx, period); err != nil {
			return err
		}
		s := page.Data()
		out := cmd.OutOrStdout()
		w := newTable(out)
		row(w, "", "TRANSACTIONS", "AMOUNT", "COMPLETED", "PENDING", "FAILED", "CANCELLED")
		transactionTotals(w, "Overall", s.Overall)
		transactionTotals(w, "Last "+period+" days", s.Period)
		if err := w.Flush(); err != nil {
			return err
		}
		return printDaily(out, s.DailyRevenue)
	})

	cmd.AddCommand(list, show, status, del, stats)
	return cmd
}

// mutateTransactions выполняет действие над транзакцией и печатает обновлённый список.
func (c *console) mutateTransactions(cmd *cobra.Command, fn func(t *pages.Transactions) error) error {
	txs := pages.NewTransactions(c.log, c.admin, c.notifier(cmd))
	if err := fn(txs); err != nil {
		return err
	}
	if data := txs.Data(); data != nil {
		return printTransactions(cmd.OutOrStdout(), data)
	}
	return nil
}

func transactionTotals(w io.Writer, label string, t models.TransactionTotals) {
	row(w, label, fmt.Sprint(t.TotalTransactions), money(t.TotalAmount), fmt.Sprint(t.CompletedTransactions),
		fmt.Sprint(t.PendingTransactions), fmt.Sprint(t.FailedTransactions), fmt.Sprint(t.CancelledTransactions))
}
