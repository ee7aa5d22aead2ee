package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/magabrotheeeer/payments-admin/internal/pages"
	"github.com/magabrotheeeer/payments-admin/internal/query"
)

var userFilters = append([]filterFlag{
	{name: "search", key: query.Search, usage: "Search by name or email"},
	{name: "role", key: pages.FilterRole, usage: "Role: all, user or admin"},
	{name: "active", key: pages.FilterIsActive, usage: "Active: all, true or false"},
	{name: "verified", key: pages.FilterIsVerified, usage: "Verified: all, true or false"},
}, sortFlags...)

func newUsersCmd(c *console) *cobra.Command {
	cmd := &cobra.Command{Use: "users", Short: "Manage users"}

	list := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: c.run(true, func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			users := pages.NewUsers(c.log, c.admin, c.notifier(cmd))
			if err := applyFilters(cmd, users.Filters(), userFilters); err != nil {
				return err
			}
			if err := users.Load(ctx); err != nil {
				return err
			}
			return printUsers(cmd.OutOrStdout(), users.Data())
		}),
	}
	addListFlags(list, userFilters)

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show user details and payments",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(true, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			page := pages.NewUserDetail(c.log, c.admin, args[0])
			if err := page.Load(ctx); err != nil {
				return err
			}
			return printUserDetail(cmd.OutOrStdout(), page.Data())
		}),
	}

	role := &cobra.Command{
		Use:   "role <id> <user|admin>",
		Short: "Change user role",
		Args:  cobra.ExactArgs(2),
		RunE: c.users(func(ctx context.Context, u *pages.Users, args []string) error {
			return u.SetRole(ctx, args[0], args[1])
		}),
	}

	var yes bool
	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete user and all related data",
		Args:  cobra.ExactArgs(1),
	}
	del.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	del.RunE = c.run(true, func(ctx context.Context, cmd *cobra.Command, args []string) error {
		if !yes {
			ok, err := c.confirm(cmd, fmt.Sprintf("Delete user %s and all related data?", args[0]))
			if err != nil || !ok {
				return err
			}
		}
		return c.mutateUsers(cmd, func(u *pages.Users) error { return u.Delete(ctx, args[0]) })
	})

	cmd.AddCommand(
		list,
		show,
		&cobra.Command{
			Use:   "activate <id>",
			Short: "Activate user account",
			Args:  cobra.ExactArgs(1),
			RunE: c.users(func(ctx context.Context, u *pages.Users, args []string) error {
				return u.SetActive(ctx, args[0], true)
			}),
		},
		&cobra.Command{
			Use:   "deactivate <id>",
			Short: "Deactivate user account",
			Args:  cobra.ExactArgs(1),
			RunE: c.users(func(ctx context.Context, u *pages.Users, args []string) error {
				return u.SetActive(ctx, args[0], false)
			}),
		},
		role,
		del,
	)
	return cmd
}

func (c *console) users(fn func(ctx context.Context, u *pages.Users, args []string) error) func(*cobra.Command, []string) error {
	return c.run(true, func(ctx context.Context, cmd *cobra.Command, args []string) error {
		return c.mutateUsers(cmd, func(u *pages.Users) error { return fn(ctx, u, args) })
	})
}

// mutateUsers выполняет действие над пользователем и печатает обновлённый список.
func (c *console) mutateUsers(cmd *cobra.Command, fn func(u *pages.Users) error) error {
	users := pages.NewUsers(c.log, c.admin, c.notifier(cmd))
	if err := fn(users); err != nil {
		return err
	}
	if data := users.Data(); data != nil {
		return printUsers(cmd.OutOrStdout(), data)
	}
	return nil
}
