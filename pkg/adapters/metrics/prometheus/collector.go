package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector tracks HTTP traffic metrics for the backend
type Collector struct {
	registry *prometheus.Registry

	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	sampleGraphReads *prometheus.CounterVec
	staticRequests   *prometheus.CounterVec
}

// NewCollector creates a new Prometheus metrics collector backed by its own registry
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Collector{
		registry: registry,
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backend_http_requests_total",
				Help: "Total number of HTTP requests handled",
			},
			[]string{"route", "method", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backend_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"route"},
		),
		sampleGraphReads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backend_sample_graph_reads_total",
				Help: "Total number of sample graph reads by outcome",
			},
			[]string{"status"},
		),
		staticRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backend_static_requests_total",
				Help: "Total number of static file requests by HTTP status",
			},
			[]string{"status"},
		),
	}
}

// ObserveRequest records one handled HTTP request
func (c *Collector) ObserveRequest(route, method string, status int, duration time.Duration) {
	c.requestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// RecordSampleGraphRead records a sample graph read outcome ("ok", "missing" or "error")
func (c *Collector) RecordSampleGraphRead(status string) {
	c.sampleGraphReads.WithLabelValues(status).Inc()
}

// RecordStaticRequest records a static file request outcome
func (c *Collector) RecordStaticRequest(status int) {
	c.staticRequests.WithLabelValues(strconv.Itoa(status)).Inc()
}

// Handler returns the HTTP handler exposing this collector's registry
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
