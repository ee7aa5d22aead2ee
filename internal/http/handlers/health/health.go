// Package health реализует обработчик проверки работоспособности прокси.
package health

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/payments-admin/internal/http/response"
)

// Handler отвечает {success:true, message:"ok"}.
type Handler struct {
	log *slog.Logger
}

// New создаёт обработчик проверки работоспособности.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Проверка работоспособности
// @Tags Service
// @Produce  json
// @Success 200 {object} response.Response "OK"
// @Router /healthz [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.log.Debug("health check", slog.String("request_id", middleware.GetReqID(r.Context())))
	render.JSON(w, r, response.Response{Success: true, Message: "ok"})
}
