package tick

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus instrumentation for API calls. Wire it into a
// client with WithMetrics; a client without metrics records nothing.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

// NewMetrics creates and registers all metrics on a private registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tick_api_requests_total",
				Help: "Total API requests by resource, method and status.",
			},
			[]string{"resource", "method", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tick_api_request_duration_seconds",
				Help:    "API request duration by resource.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"resource"},
		),
		registry: reg,
	}

	reg.MustRegister(m.requestsTotal)
	reg.MustRegister(m.requestDuration)

	return m
}

// Handler returns an http.Handler exposing the metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) recordRequest(resource, method string, status int) {
	m.requestsTotal.WithLabelValues(resource, method, strconv.Itoa(status)).Inc()
}

func (m *Metrics) observeDuration(resource string, seconds float64) {
	m.requestDuration.WithLabelValues(resource).Observe(seconds)
}
