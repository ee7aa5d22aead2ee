package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/magabrotheeeer/payments-admin/internal/pages"
)

func newDashboardCmd(c *console) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show platform counters and recent activity",
		Args:  cobra.NoArgs,
		RunE: c.run(true, func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			page := pages.NewDashboard(c.log, c.admin)
			if err := page.Load(ctx); err != nil {
				return err
			}
			d := page.Data()
			out := cmd.OutOrStdout()

			w := newTable(out)
			row(w, "Users", fmt.Sprintf("%d total, %d active, %d verified, %d admins",
				d.Users.TotalUsers, d.Users.ActiveUsers, d.Users.VerifiedUsers, d.Users.AdminUsers))
			row(w, "Payments", fmt.Sprintf("%d total, revenue %s", d.Payments.TotalPayments, money(d.Payments.TotalRevenue)))
			row(w, "Last 30 days", fmt.Sprintf("%d payments, revenue %s", d.Payments.RecentPayments, money(d.Payments.RecentRevenue)))
			if err := w.Flush(); err != nil {
				return err
			}

			if users := d.RecentActivity.Users; len(users) > 0 {
				fmt.Fprintln(out, "\nRecent users")
				w = newTable(out)
				for _, u := range users {
					row(w, u.ID, orDash(u.Email), orDash(u.Name), formatTime(u.CreatedAt))
				}
				if err := w.Flush(); err != nil {
					return err
				}
			}
			if payments := d.RecentActivity.Payments; len(payments) > 0 {
				fmt.Fprintln(out, "\nRecent payments")
				return printPayments(out, payments)
			}
			return nil
		}),
	}
}

func newProfileCmd(c *console) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the current admin profile",
		Args:  cobra.NoArgs,
		RunE: c.run(true, func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			page := pages.NewProfile(c.log, c.admin)
			if err := page.Load(ctx); err != nil {
				return err
			}
			p := page.Data()
			w := newTable(cmd.OutOrStdout())
			row(w, "ID", p.ID)
			row(w, "Name", orDash(p.Name))
			row(w, "Email", orDash(p.Email))
			row(w, "Role", orDash(p.Role))
			row(w, "Active", yesNo(p.IsActive))
			row(w, "Verified", yesNo(p.IsVerified))
			row(w, "Created", formatTime(p.CreatedAt))
			row(w, "Last login", formatTime(p.LastLogin))
			return w.Flush()
		}),
	}
}
