package adminproxy

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/payments-admin/internal/apiclient"
	"github.com/magabrotheeeer/payments-admin/internal/config"
	"github.com/magabrotheeeer/payments-admin/internal/http/proxy"
	"github.com/magabrotheeeer/payments-admin/internal/metrics"
)

// App — прокси-сервер с маршрутами /api/proxy/admin и /api/proxy/automation.
type App struct {
	server *http.Server
	logger *slog.Logger
}

// New собирает роутер и HTTP-сервер по конфигу.
func New(cfg *config.Config, logger *slog.Logger) *App {
	m := metrics.New()
	upstream := &http.Client{}

	proxies := map[string]http.Handler{
		apiclient.ScopeAdmin:      proxy.New(logger, apiclient.ScopeAdmin, cfg.AdminURL, upstream, m, cfg.UpstreamTimeout),
		apiclient.ScopeAutomation: proxy.New(logger, apiclient.ScopeAutomation, cfg.AutomationURL, upstream, m, cfg.UpstreamTimeout),
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, proxies, m)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
	}
}

// Handler возвращает корневой обработчик сервера.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run запускает сервер и останавливает его при отмене ctx.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}
