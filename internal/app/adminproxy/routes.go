// Package adminproxy собирает прокси-сервер консоли администратора.
package adminproxy

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/magabrotheeeer/payments-admin/docs"
	"github.com/magabrotheeeer/payments-admin/internal/apiclient"
	"github.com/magabrotheeeer/payments-admin/internal/http/handlers/health"
	"github.com/magabrotheeeer/payments-admin/internal/metrics"
)

// proxyMethods — методы, которые пересылает прокси.
var proxyMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPatch,
	http.MethodPut,
	http.MethodDelete,
}

// RegisterRoutes регистрирует все маршруты приложения. proxies сопоставляет
// области (admin, automation) их обработчикам.
func RegisterRoutes(r chi.Router, logger *slog.Logger, proxies map[string]http.Handler, m *metrics.Metrics) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
	)

	for scope, h := range proxies {
		pattern := apiclient.ProxyPrefix + scope + "/*"
		for _, method := range proxyMethods {
			r.Method(method, pattern, h)
		}
	}

	r.Get("/healthz", health.New(logger).ServeHTTP)
	r.Handle("/metrics", m.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
