// Package navigation заменяет переходы браузера между маршрутами консоли.
package navigation

import (
	"log/slog"
	"sync"
)

// Маршруты, на которые переходит клиент.
const (
	RouteLogin     = "/"
	RouteDashboard = "/dashboard"
)

// Navigator выполняет переход с заменой текущего маршрута.
type Navigator interface {
	Replace(route string)
}

// Recorder запоминает текущий маршрут и историю переходов.
type Recorder struct {
	mu      sync.Mutex
	log     *slog.Logger
	current string
	history []string
}

// NewRecorder создаёт Recorder, стартующий на странице входа.
func NewRecorder(log *slog.Logger) *Recorder {
	return &Recorder{log: log, current: RouteLogin}
}

func (r *Recorder) Replace(route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = route
	r.history = append(r.history, route)
	if r.log != nil {
		r.log.Debug("navigate", slog.String("route", route))
	}
}

// Current возвращает текущий маршрут.
func (r *Recorder) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// History возвращает копию истории переходов.
func (r *Recorder) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.history...)
}
