// Package metrics exposes Prometheus instruments for the HTTP API and the
// collection store.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fleetkeeper"

// Collector owns a private registry so several instances can coexist in
// tests.
type Collector struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	persists *prometheus.CounterVec
}

// New registers the instruments together with the Go and process collectors.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		persists: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_persists_total",
			Help:      "Collection writes by key and outcome.",
		}, []string{"key", "result"}),
	}
	c.registry.MustRegister(
		c.requests,
		c.latency,
		c.persists,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// ObserveRequest records one served request.
func (c *Collector) ObserveRequest(method, route string, code int, elapsed time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	c.latency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObservePersist counts a collection write. It satisfies kv.Observer.
func (c *Collector) ObservePersist(key string, ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	c.persists.WithLabelValues(key, result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }
