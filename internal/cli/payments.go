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

var paymentFilters = append(append([]filterFlag{
	{name: "status", key: query.Status, usage: "Status: all, pending, completed, failed or refunded"},
	{name: "user", key: query.UserID, usage: "User ID"},
}, dateFlags...), sortFlags...)

func newPaymentsCmd(c *console) *cobra.Command {
	cmd := &cobra.Command{Use: "payments", Short: "Manage payments"}

	list := &cobra.Command{
		Use:   "list",
		Short: "List payments",
		Args:  cobra.NoArgs,
		RunE: c.run(true, func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			payments := pages.NewPayments(c.log, c.admin, c.notifier(cmd))
			if err := applyFilters(cmd, payments.Filters(), paymentFilters); err != nil {
				return err
			}
			if err := payments.Load(ctx); err != nil {
				return err
			}
			return printPaymentsPage(cmd.OutOrStdout(), payments.Data())
		}),
	}
	addListFlags(list, paymentFilters)

	var notes string
	status := &cobra.Command{
		Use:   "status <id> <pending|completed|failed|refunded>",
		Short: "Change payment status",
		Args:  cobra.ExactArgs(2),
	}
	status.Flags().StringVar(&notes, "notes", "", "Admin notes")
	status.RunE = c.run(true, func(ctx context.Context, cmd *cobra.Command, args []string) error {
		payments := pages.NewPayments(c.log, c.admin, c.notifier(cmd))
		if err := payments.UpdateStatus(ctx, args[0], args[1], notes); err != nil {
			return err
		}
		if data := payments.Data(); data != nil {
			return printPaymentsPage(cmd.OutOrStdout(), data)
		}
		return nil
	})

	var period string
	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show revenue analytics",
		Args:  cobra.NoArgs,
	}
	stats.Flags().StringVar(&period, "period", "30", "Period in days: 7, 30, 90 or 365")
	stats.RunE = c.run(true, func(ctx context.Context, cmd *cobra.Command, _ []string) error {
		page := pages.NewPaymentStats(c.log, c.admin)
		if err := page.SetPeriod(ctx, period); err != nil {
			return err
		}
		s := page.Data()
		out := cmd.OutOrStdout()
		w := newTable(out)
		row(w, "", "PAYMENTS", "REVENUE", "COMPLETED", "PENDING", "FAILED")
		paymentTotals(w, "Overall", s.Overall)
		paymentTotals(w, "Last "+period+" days", s.Period)
		if err := w.Flush(); err != nil {
			return err
		}
		return printDaily(out, s.DailyRevenue)
	})

	cmd.AddCommand(list, status, stats)
	return cmd
}

func printPaymentsPage(out io.Writer, page *models.PaymentsPage) error {
	if err := printPayments(out, page.Payments); err != nil {
		return err
	}
	printSummary(out, page.Summary)
	printPagination(out, page.Pagination)
	return nil
}

func paymentTotals(w io.Writer, label string, t models.PaymentTotals) {
	row(w, label, fmt.Sprint(t.TotalPayments), money(t.TotalRevenue),
		fmt.Sprint(t.CompletedPayments), fmt.Sprint(t.PendingPayments), fmt.Sprint(t.FailedPayments))
}

func printDaily(out io.Writer, days []models.DailyRevenue) error {
	if len(days) == 0 {
		return nil
	}
	fmt.Fprintln(out)
	w := newTable(out)
	row(w, "DAY", "COUNT", "REVENUE")
	for _, d := range days {
		row(w, d.Day, fmt.Sprint(d.Count), money(d.Revenue))
	}
	return w.Flush()
}
