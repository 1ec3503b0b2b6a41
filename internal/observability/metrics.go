package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds all Prometheus metrics for the application
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Provider metrics
	Fetches       *prometheus.CounterVec
	FetchDuration *prometheus.HistogramVec

	// Analysis metrics
	Analyses  *prometheus.CounterVec
	GraphSize *prometheus.HistogramVec
}

// NewCollector creates a collector on its own registry, so tests can build
// as many as they like.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		Fetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "provider_fetches_total",
				Help:      "Interaction fetches by provider and outcome",
			},
			[]string{"provider", "outcome"},
		),
		FetchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "provider_fetch_duration_seconds",
				Help:      "Provider round-trip time in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
		Analyses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "analyses_total",
				Help:      "Pipeline runs by final status",
			},
			[]string{"status"},
		),
		GraphSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "graph_size",
				Help:      "Node and edge counts of built interaction graphs",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"kind"},
		),
	}

	registry.MustRegister(
		c.HTTPRequests,
		c.HTTPDuration,
		c.Fetches,
		c.FetchDuration,
		c.Analyses,
		c.GraphSize,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) ObserveFetch(provider, outcome string, took time.Duration) {
	c.Fetches.WithLabelValues(provider, outcome).Inc()
	c.FetchDuration.WithLabelValues(provider).Observe(took.Seconds())
}

func (c *Collector) ObserveGraph(nodes, edges int) {
	c.GraphSize.WithLabelValues("nodes").Observe(float64(nodes))
	c.GraphSize.WithLabelValues("edges").Observe(float64(edges))
}

func (c *Collector) ObserveAnalysis(status string) {
	c.Analyses.WithLabelValues(status).Inc()
}

func (c *Collector) ObserveRequest(method, route string, status int, took time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, http.StatusText(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(took.Seconds())
}
