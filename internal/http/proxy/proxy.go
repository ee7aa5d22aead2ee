// Package proxy реализует HTTP-обработчик same-origin прокси к внешнему API.
//
// Обработчик пересылает запрос /api/proxy/<scope>/<path> на <base>/<path>,
// передавая только заголовки authorization и content-type, и возвращает
// ответ внешнего API без изменений. Состояния между запросами нет.
package proxy

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/payments-admin/internal/http/response"
	"github.com/magabrotheeeer/payments-admin/internal/lib/sl"
	"github.com/magabrotheeeer/payments-admin/internal/metrics"
)

// Doer выполняет HTTP-запрос к внешнему API.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Handler пересылает запросы одной области (scope) на её базовый адрес.
type Handler struct {
	log     *slog.Logger
	scope   string
	baseURL string
	client  Doer
	metrics *metrics.Metrics
	timeout time.Duration
}

// New создаёт обработчик области scope. timeout равный нулю отключает
// ограничение времени запроса к внешнему API.
func New(log *slog.Logger, scope, baseURL string, client Doer, m *metrics.Metrics, timeout time.Duration) *Handler {
	if client == nil {
		client = &http.Client{}
	}
	return &Handler{
		log:     log,
		scope:   scope,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		metrics: m,
		timeout: timeout,
	}
}

// Target строит адрес внешнего API для пути path и строки запроса rawQuery.
func (h *Handler) Target(path, rawQuery string) string {
	target := h.baseURL + "/" + strings.TrimLeft(path, "/")
	if rawQuery != "" {
		target += "?" + rawQuery
	}
	return target
}

// ServeHTTP godoc
// @Summary Пересылка запроса во внешний API
// @Description Передаёт запрос на <base>/{path} с заголовками authorization и content-type.
// @Description Код ответа, тело и content-type возвращаются без изменений, добавляется cache-control: no-store.
// @Tags Proxy
// @Accept  json
// @Produce  json
// @Param scope path string true "Область API" Enums(admin, automation)
// @Param path path string true "Путь ресурса, например users или payments/stats"
// @Success 200 {object} response.Response "Ответ внешнего API"
// @Failure 401 {object} response.Response "Ответ внешнего API"
// @Failure 500 {object} response.ErrorResponse "Сбой пересылки"
// @Security BearerAuth
// @Router /api/proxy/{scope}/{path} [get]
// @Router /api/proxy/{scope}/{path} [post]
// @Router /api/proxy/{scope}/{path} [patch]
// @Router /api/proxy/{scope}/{path} [put]
// @Router /api/proxy/{scope}/{path} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "http.proxy.ServeHTTP"

	target := h.Target(chi.URLParam(r, "*"), r.URL.RawQuery)
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("scope", h.scope),
		slog.String("method", r.Method),
		slog.String("target", target),
	)

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := h.forward(ctx, r, target)
	if err != nil {
		log.Error("proxy request failed", sl.Err(err))
		h.metrics.Failed(h.scope, r.Method)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.ProxyFailure(err))
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed to read upstream body", sl.Err(err))
		h.metrics.Failed(h.scope, r.Method)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.ProxyFailure(err))
		return
	}
	h.metrics.Observe(h.scope, r.Method, resp.StatusCode, time.Since(start))
	log.Info("request proxied", slog.Int("status", resp.StatusCode), slog.Duration("duration", time.Since(start)))

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(resp.StatusCode)
	if _, err := w.Write(body); err != nil {
		log.Warn("failed to write response", sl.Err(err))
	}
}

func (h *Handler) forward(ctx context.Context, r *http.Request, target string) (*http.Response, error) {
	var body io.Reader
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		return nil, err
	}
	if auth := r.Header.Get("Authorization"); auth != "" {
		req.Header.Set("Authorization", auth)
	}
	if ct := r.Header.Get("Content-Type"); ct != "" {
		req.Header.Set("Content-Type", ct)
	}
	req.Header.Set("Accept", "application/json")

	return h.client.Do(req)
}
