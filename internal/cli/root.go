// Package cli реализует консоль администратора adminctl: команды cobra
// поверх контроллеров страниц.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/magabrotheeeer/payments-admin/internal/apiclient"
	"github.com/magabrotheeeer/payments-admin/internal/config"
	"github.com/magabrotheeeer/payments-admin/internal/navigation"
	"github.com/magabrotheeeer/payments-admin/internal/pages"
	"github.com/magabrotheeeer/payments-admin/internal/session"
)

// deps — внешние зависимости консоли, подменяемые в тестах.
type deps struct {
	store        session.Store
	httpClient   apiclient.Doer
	readPassword func(fd int) ([]byte, error)
}

type console struct {
	deps

	configPath string
	proxyURL   string
	tokenStore string
	verbose    bool

	cfg        *config.Config
	log        *slog.Logger
	nav        *navigation.Recorder
	admin      *apiclient.Client
	automation *apiclient.Client
	ownsStore  bool
	in         *bufio.Reader
}

// NewRootCmd создаёт корневую команду adminctl.
func NewRootCmd(version string) *cobra.Command {
	return newRootCmd(version, deps{})
}

func newRootCmd(version string, d deps) *cobra.Command {
	if d.readPassword == nil {
		d.readPassword = term.ReadPassword
	}
	c := &console{deps: d}

	root := &cobra.Command{
		Use:               "adminctl",
		Short:             "Payments admin console",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return c.close()
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "Path to config file (defaults to $CONFIG_PATH)")
	root.PersistentFlags().StringVar(&c.proxyURL, "proxy", "", "Admin proxy base URL")
	root.PersistentFlags().StringVar(&c.tokenStore, "token-store", "", "Token store: file, memory or redis")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Verbose logging")

	root.AddCommand(newLoginCmd(c))
	root.AddCommand(newLogoutCmd(c))
	root.AddCommand(newSessionCmd(c))
	root.AddCommand(newDashboardCmd(c))
	root.AddCommand(newProfileCmd(c))
	root.AddCommand(newUsersCmd(c))
	root.AddCommand(newPaymentsCmd(c))
	root.AddCommand(newTransactionsCmd(c))
	root.AddCommand(newAutomationCmd(c))
	return root
}

func (c *console) setup(cmd *cobra.Command, _ []string) error {
	const op = "cli.setup"

	path := c.configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if c.proxyURL != "" {
		cfg.ProxyURL = c.proxyURL
	}
	if c.tokenStore != "" {
		cfg.TokenStore = c.tokenStore
	}
	c.cfg = cfg

	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelDebug
	}
	c.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if c.store == nil {
		store, err := session.Open(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		c.store = store
		c.ownsStore = true
	}

	c.nav = navigation.NewRecorder(c.log)
	c.admin = apiclient.New(c.log, cfg.ProxyURL, apiclient.ScopeAdmin, c.store, c.nav, c.httpClient)
	c.automation = apiclient.New(c.log, cfg.ProxyURL, apiclient.ScopeAutomation, c.store, c.nav, c.httpClient)
	c.in = bufio.NewReader(cmd.InOrStdin())
	return nil
}

func (c *console) close() error {
	if !c.ownsStore {
		return nil
	}
	c.ownsStore = false
	store := c.store
	c.store = nil
	if closer, ok := store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// run оборачивает обработчик команды: защищённые команды требуют токен,
// ошибки сессии переводятся в подсказку о повторном входе.
func (c *console) run(protected bool, fn func(ctx context.Context, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if protected {
			if err := pages.Guard(ctx, c.admin); err != nil {
				return errors.New("not logged in, run `adminctl login`")
			}
		}
		err := fn(ctx, cmd, args)
		if errors.Is(err, apiclient.ErrUnauthorized) {
			return fmt.Errorf("session expired or rejected, run `adminctl login`: %w", err)
		}
		return err
	}
}

func (c *console) notifier(cmd *cobra.Command) pages.Notifier {
	return pages.NotifierFunc(func(n pages.Notice) {
		tag := "ok"
		if n.Destructive {
			tag = "error"
		}
		if n.Description != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s: %s\n", tag, n.Title, n.Description)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", tag, n.Title)
	})
}

func (c *console) prompt(cmd *cobra.Command, label string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), label)
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *console) confirm(cmd *cobra.Command, question string) (bool, error) {
	answer, err := c.prompt(cmd, question+" [y/N]: ")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}
