package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/magabrotheeeer/payments-admin/internal/apiclient"
	"github.com/magabrotheeeer/payments-admin/internal/models"
	"github.com/magabrotheeeer/payments-admin/internal/pages"
)

func newAutomationCmd(c *console) *cobra.Command {
	cmd := &cobra.Command{Use: "automation", Short: "Automation platform statistics"}

	dashboard := &cobra.Command{
		Use:   "dashboard",
		Short: "Show automation counters",
		Args:  cobra.NoArgs,
		RunE: c.run(true, func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			page := pages.NewAutomationDashboard(c.log, c.automation)
			if err := page.Load(ctx); err != nil {
				return err
			}
			d := page.Data()
			w := newTable(cmd.OutOrStdout())
			row(w, "Users", fmt.Sprintf("%d total, %d active", d.Users.TotalUsers, d.Users.ActiveUsers))
			row(w, "Workflows", fmt.Sprintf("%d total, %d active, %d failed",
				d.Workflows.TotalWorkflows, d.Workflows.ActiveWorkflows, d.Workflows.FailedWorkflows))
			row(w, "Jobs", fmt.Sprintf("%d total, %d recent, %d recent succeeded",
				d.Jobs.TotalJobs, d.Jobs.RecentJobs, d.Jobs.RecentSuccess))
			return w.Flush()
		}),
	}

	jobs := periodCmd(c, "jobs", "Show job statistics", pages.NewJobStats,
		func(cmd *cobra.Command, s *models.JobStats) error {
			out := cmd.OutOrStdout()
			w := newTable(out)
			row(w, "", "JOBS", "SUCCESS", "FAILED", "QUEUED")
			for _, t := range []struct {
				label  string
				totals models.JobTotals
			}{{"Overall", s.Overall}, {"Period", s.Period}} {
				row(w, t.label, fmt.Sprint(t.totals.TotalJobs), fmt.Sprint(t.totals.SuccessJobs),
					fmt.Sprint(t.totals.FailedJobs), fmt.Sprint(t.totals.QueuedJobs))
			}
			for _, d := range s.DailyJobs {
				row(w, d.Day, fmt.Sprint(d.Count), fmt.Sprint(d.Success), fmt.Sprint(d.Failed), fmt.Sprint(d.Queued))
			}
			return w.Flush()
		})

	costs := periodCmd(c, "costs", "Show job cost statistics", pages.NewCostStats,
		func(cmd *cobra.Command, s *models.CostStats) error {
			w := newTable(cmd.OutOrStdout())
			row(w, "", "COST", "JOBS", "AVG PER JOB")
			row(w, "Overall", money(s.Overall.TotalCost), fmt.Sprint(s.Overall.TotalJobs), money(s.Overall.AvgCostPerJob))
			row(w, "Period", money(s.Period.TotalCost), fmt.Sprint(s.Period.TotalJobs), money(s.Period.AvgCostPerJob))
			for _, d := range s.DailyCosts {
				row(w, d.Day, money(d.Cost), fmt.Sprint(d.Count), "")
			}
			return w.Flush()
		})

	cmd.AddCommand(dashboard, jobs, costs)
	return cmd
}

// periodCmd строит команду аналитики автоматизации с выбором периода.
func periodCmd[D any](
	c *console,
	use, short string,
	newPage func(*slog.Logger, *apiclient.Client) *pages.AutomationStats[D],
	show func(*cobra.Command, *D) error,
) *cobra.Command {
	var period, from, to string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVar(&period, "period", pages.PeriodCurrentMonth, "Period: current-month, 7, 30, 90, 365 or custom")
	cmd.Flags().StringVar(&from, "from", "", "Custom range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Custom range end (YYYY-MM-DD)")

	cmd.RunE = c.run(true, func(ctx context.Context, cmd *cobra.Command, _ []string) error {
		page := newPage(c.log, c.automation)
		var err error
		if from != "" || to != "" {
			err = page.SetRange(ctx, from, to)
		} else {
			err = page.SetPeriod(ctx, period)
		}
		if err != nil {
			return err
		}
		return show(cmd, page.Data())
	})
	return cmd
}
