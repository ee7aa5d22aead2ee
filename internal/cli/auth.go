package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/magabrotheeeer/payments-admin/internal/pages"
	"github.com/magabrotheeeer/payments-admin/internal/session"
)

func newLoginCmd(c *console) *cobra.Command {
	var (
		email         string
		passwordStdin bool
	)
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login and store the admin token",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVar(&email, "email", "", "Admin email (prompted when empty)")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin instead of the terminal")

	cmd.RunE = c.run(false, func(ctx context.Context, cmd *cobra.Command, _ []string) error {
		var err error
		if email == "" {
			if email, err = c.prompt(cmd, "Email: "); err != nil {
				return err
			}
		}
		password, err := c.password(cmd, passwordStdin)
		if err != nil {
			return err
		}
		return pages.NewLogin(c.log, c.admin, c.notifier(cmd)).Submit(ctx, email, password)
	})
	return cmd
}

func (c *console) password(cmd *cobra.Command, fromStdin bool) (string, error) {
	if fromStdin {
		return c.prompt(cmd, "")
	}
	fmt.Fprint(cmd.OutOrStdout(), "Password: ")
	pass, err := c.readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(cmd.OutOrStdout())
	return string(pass), err
}

func newLogoutCmd(c *console) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored admin token",
		Args:  cobra.NoArgs,
		RunE: c.run(false, func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			if err := pages.Logout(ctx, c.admin); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		}),
	}
}

func newSessionCmd(c *console) *cobra.Command {
	cmd := &cobra.Command{Use: "session", Short: "Session commands"}
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the stored token",
		Args:  cobra.NoArgs,
		RunE: c.run(false, func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			token, ok := c.store.Get(ctx)
			if !ok {
				fmt.Fprintln(out, "Not logged in")
				return nil
			}
			fmt.Fprintf(out, "Logged in (store: %s)\n", c.cfg.TokenStore)

			info, err := session.Describe(token)
			if errors.Is(err, session.ErrOpaqueToken) {
				fmt.Fprintln(out, "Token: opaque")
				return nil
			}
			if err != nil {
				return err
			}
			w := newTable(out)
			row(w, "Subject", info.Subject)
			row(w, "Email", info.Email)
			row(w, "Role", info.Role)
			row(w, "Issued", formatTime(info.IssuedAt))
			expires := formatTime(info.ExpiresAt)
			if info.Expired(time.Now()) {
				expires += " (expired)"
			}
			row(w, "Expires", expires)
			return w.Flush()
		}),
	})
	return cmd
}
