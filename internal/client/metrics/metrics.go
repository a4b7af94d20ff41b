// Package metrics collects Prometheus metrics for session operations and
// exposes them for scraping.
package metrics

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation names.
const (
	OpLogin    = "login"
	OpRegister = "register"
	OpLogout   = "logout"
	OpRestore  = "restore"
)

// Outcomes of an operation.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
	OutcomeAborted  = "aborted"
)

// Recorder is what the session store reports to.
type Recorder interface {
	RecordOperation(op, outcome string, d time.Duration)
	SetAuthenticated(authenticated bool)
}

// Collector is the Prometheus Recorder.
type Collector struct {
	operations    *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	authenticated prometheus.Gauge
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jobhub_session_operations_total",
			Help: "Session operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "jobhub_session_operation_duration_seconds",
			Help:    "Duration of session operations, including API round trips.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		authenticated: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "jobhub_session_authenticated",
			Help: "1 while a session is active, 0 otherwise.",
		}),
	}

	reg.MustRegister(c.operations, c.latency, c.authenticated)

	return c
}

func (c *Collector) RecordOperation(op, outcome string, d time.Duration) {
	c.operations.WithLabelValues(op, outcome).Inc()
	c.latency.WithLabelValues(op).Observe(d.Seconds())
}

func (c *Collector) SetAuthenticated(authenticated bool) {
	if authenticated {
		c.authenticated.Set(1)
		return
	}
	c.authenticated.Set(0)
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordOperation(string, string, time.Duration) {}
func (Nop) SetAuthenticated(bool)                         {}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// SetupMetricsRoute returns a router serving Handler at GET /metrics.
func SetupMetricsRoute(gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Method(http.MethodGet, "/metrics", Handler(gatherer))
	return r
}
