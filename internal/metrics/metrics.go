package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry owns the Prometheus collectors for the proxy. It is constructed
// once at startup and shared by reference; all recording methods are safe
// for concurrent use by in-flight requests.
type Registry struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	backendUp       *prometheus.GaugeVec
}

func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "proxy_requests_total",
				Help: "Total number of forwarded requests by backend service, endpoint and status code.",
			},
			[]string{"service", "endpoint", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "proxy_request_duration_seconds",
				Help:    "Duration of forwarded requests in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "endpoint"},
		),
		backendUp: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "proxy_backend_up",
				Help: "Backend health as seen by the background probe (1=up, 0=down).",
			},
			[]string{"backend"},
		),
	}

	r.registry.MustRegister(r.requestsTotal, r.requestDuration, r.backendUp)

	return r
}

// ObserveDuration records one latency sample for a forwarded request.
func (r *Registry) ObserveDuration(service, endpoint string, seconds float64) {
	r.requestDuration.WithLabelValues(service, endpoint).Observe(seconds)
}

// IncrementCount counts one completed request under its outcome status.
func (r *Registry) IncrementCount(service, endpoint string, status int) {
	r.requestsTotal.WithLabelValues(service, endpoint, strconv.Itoa(status)).Inc()
}

// SetBackendUp records the latest health probe result for a backend.
func (r *Registry) SetBackendUp(backend string, up bool) {
	value := 0.0
	if up {
		value = 1.0
	}
	r.backendUp.WithLabelValues(backend).Set(value)
}
