// Package apiclient реализует аутентифицированную обёртку над запросами к
// same-origin прокси (/api/proxy/<scope>/...).
//
// Обёртка подставляет Bearer-токен из session.Store, проставляет
// Content-Type для тел запросов, интерпретирует коды ответа и приводит
// ошибки к единому виду. Ответ 401 завершает сессию: токен удаляется,
// клиент переходит на страницу входа, повторов нет.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/payments-admin/internal/lib/sl"
	"github.com/magabrotheeeer/payments-admin/internal/models"
	"github.com/magabrotheeeer/payments-admin/internal/navigation"
	"github.com/magabrotheeeer/payments-admin/internal/session"
)

// Области внешнего API.
const (
	ScopeAdmin      = "admin"
	ScopeAutomation = "automation"
)

// ProxyPrefix — префикс маршрута прокси.
const ProxyPrefix = "/api/proxy/"

// ErrUnauthorized возвращается после ответа 401.
var ErrUnauthorized = errors.New("Unauthorized")

// Error — ошибка внешнего API с кодом ответа и сообщением сервера.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Options — параметры одного запроса. Body передаётся уже сериализованным.
type Options struct {
	Method  string
	Body    []byte
	Headers map[string]string
}

// JSONBody сериализует v и возвращает Options с методом method.
func JSONBody(method string, v any) (Options, error) {
	const op = "apiclient.JSONBody"
	b, err := json.Marshal(v)
	if err != nil {
		return Options{}, fmt.Errorf("%s: %w", op, err)
	}
	return Options{Method: method, Body: b}, nil
}

// Doer — минимальный интерфейс HTTP-клиента.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client выполняет запросы к одной области прокси.
type Client struct {
	log        *slog.Logger
	baseURL    string
	scope      string
	store      session.Store
	nav        navigation.Navigator
	httpClient Doer
}

// New создаёт клиент области scope. baseURL — адрес прокси-сервера
// (например, http://localhost:8080). Если httpClient равен nil,
// используется http.Client без таймаута.
func New(log *slog.Logger, baseURL, scope string, store session.Store, nav navigation.Navigator, httpClient Doer) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if log == nil {
		log = sl.Discard()
	}
	return &Client{
		log:        log,
		baseURL:    strings.TrimRight(baseURL, "/"),
		scope:      scope,
		store:      store,
		nav:        nav,
		httpClient: httpClient,
	}
}

// Scope возвращает область клиента.
func (c *Client) Scope() string { return c.scope }

// Session возвращает хранилище токена клиента.
func (c *Client) Session() session.Store { return c.store }

// Navigator возвращает навигатор клиента.
func (c *Client) Navigator() navigation.Navigator { return c.nav }

func (c *Client) newRequest(ctx context.Context, path string, opts Options) (*http.Request, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	url := c.baseURL + ProxyPrefix + c.scope + "/" + strings.TrimLeft(path, "/")

	var body io.Reader
	if len(opts.Body) > 0 {
		body = bytes.NewReader(opts.Body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	if token, ok := c.store.Get(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if len(opts.Body) > 0 && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// Request выполняет ровно один запрос к path (путь ресурса без префикса
// прокси, может содержать query) и возвращает тело ответа как есть.
// Тело, которое не удалось разобрать как JSON, заменяется на {}.
func (c *Client) Request(ctx context.Context, path string, opts Options) (json.RawMessage, error) {
	const op = "apiclient.Request"

	log := c.log.With(
		slog.String("op", op),
		slog.String("scope", c.scope),
		slog.String("fetch_id", uuid.NewString()),
	)

	req, err := c.newRequest(ctx, path, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("request failed", slog.String("method", req.Method), slog.String("path", path), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	log = log.With(
		slog.String("method", req.Method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode == http.StatusUnauthorized {
		log.Warn("unauthorized, dropping session")
		if err := c.store.Clear(ctx); err != nil {
			log.Error("failed to clear session token", sl.Err(err))
		}
		if c.nav != nil {
			c.nav.Replace(navigation.RouteLogin)
		}
		return nil, ErrUnauthorized
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed to read response body", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !json.Valid(raw) {
		raw = []byte("{}")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode, Message: messageOf(raw)}
		if apiErr.Message == "" {
			apiErr.Message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		log.Info("request rejected", slog.String("message", apiErr.Message))
		return nil, apiErr
	}

	log.Debug("request completed")
	return raw, nil
}

func messageOf(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Message
}

// Fetch выполняет запрос и декодирует конверт {success, message, data}.
// Поле data не разворачивается — это делают вызывающие.
func Fetch[T any](ctx context.Context, c *Client, path string, opts Options) (*models.Envelope[T], error) {
	const op = "apiclient.Fetch"

	raw, err := c.Request(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	var env models.Envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%s: decode %s: %w", op, path, err)
	}
	return &env, nil
}
