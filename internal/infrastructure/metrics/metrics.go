// Package metrics holds the process's Prometheus collectors.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "smartlock"

type Metrics struct {
	registry *prometheus.Registry

	// RequestCounter counts HTTP requests by status code, method, and route
	RequestCounter *prometheus.CounterVec
	// RequestDuration measures HTTP request duration
	RequestDuration *prometheus.HistogramVec
	// RequestInProgress counts HTTP requests currently being processed
	RequestInProgress *prometheus.GaugeVec
	// DatabaseOperationDuration measures database operation duration
	DatabaseOperationDuration *prometheus.HistogramVec
	// RateLimiterRejections counts requests rejected by the rate limiter
	RateLimiterRejections *prometheus.CounterVec
}

// New builds a registry carrying the service collectors plus the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"status", "method", "path"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"status", "method", "path"},
		),
		RequestInProgress: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_progress",
				Help:      "Number of HTTP requests currently being processed",
			},
			[]string{"method", "path"},
		),
		DatabaseOperationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "db_operation_duration_seconds",
				Help:      "Database operation duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		RateLimiterRejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limiter_rejections_total",
				Help:      "Total number of requests rejected by rate limiter",
			},
			[]string{"path"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestCounter,
		m.RequestDuration,
		m.RequestInProgress,
		m.DatabaseOperationDuration,
		m.RateLimiterRejections,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordDBOperation records the duration of a database operation
func (m *Metrics) RecordDBOperation(operation, table string, startTime time.Time) {
	m.DatabaseOperationDuration.WithLabelValues(operation, table).Observe(time.Since(startTime).Seconds())
}
