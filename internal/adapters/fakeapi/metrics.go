package fakeapi

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the fake provider's counters. Each instance owns its registry
// so several servers can run in one process.
type Metrics struct {
	Registry *prometheus.Registry

	requests          *prometheus.CounterVec
	requestsInflight  prometheus.Gauge
	sessionsCreated   prometheus.Counter
	sessionsCompleted prometheus.Counter
	idempotentReplays prometheus.Counter
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "paylane_fake_requests_total",
			Help: "Total number of processed requests",
		}, []string{"method", "route", "code"}),
		requestsInflight: f.NewGauge(prometheus.GaugeOpts{
			Name: "paylane_fake_requests_inflight",
			Help: "The number of requests currently inflight",
		}),
		sessionsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "paylane_fake_checkout_sessions_created_total",
			Help: "Checkout sessions created",
		}),
		sessionsCompleted: f.NewCounter(prometheus.CounterOpts{
			Name: "paylane_fake_checkout_sessions_completed_total",
			Help: "Checkout sessions moved to succeeded",
		}),
		idempotentReplays: f.NewCounter(prometheus.CounterOpts{
			Name: "paylane_fake_idempotent_replays_total",
			Help: "Responses replayed from the idempotency store",
		}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
