// Package metrics содержит метрики Prometheus прокси-сервера.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "admin_proxy"

// Metrics — набор метрик пересылки запросов на отдельном реестре.
// Методы безопасны для nil-получателя.
type Metrics struct {
	Registry *prometheus.Registry
	requests *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New создаёт реестр и регистрирует в нём метрики прокси и рантайма Go.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Proxied requests by scope, method and upstream status code.",
		}, []string{"scope", "method", "code"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_failures_total",
			Help:      "Requests that failed before an upstream response was received.",
		}, []string{"scope"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_duration_seconds",
			Help:      "Upstream round-trip latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"scope"}),
	}
	reg.MustRegister(
		m.requests,
		m.failures,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Observe учитывает ответ внешнего API.
func (m *Metrics) Observe(scope, method string, code int, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(scope, method, strconv.Itoa(code)).Inc()
	m.duration.WithLabelValues(scope).Observe(d.Seconds())
}

// Failed учитывает сбой пересылки.
func (m *Metrics) Failed(scope, method string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(scope).Inc()
	m.requests.WithLabelValues(scope, method, strconv.Itoa(http.StatusInternalServerError)).Inc()
}

// Handler отдаёт метрики реестра в формате Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
