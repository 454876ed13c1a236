// Package metrics holds the Prometheus collectors shared by the engine
// wrappers and the HTTP server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SchedulesComputed counts engine runs by depreciation model and outcome.
	SchedulesComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fleet_forecast_schedules_computed_total",
			Help: "Number of schedules computed by the engine",
		},
		[]string{"model", "status"},
	)

	// ComputeDuration observes how long the engine takes per schedule.
	ComputeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fleet_forecast_compute_duration_seconds",
			Help:    "Time spent computing one schedule",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
		[]string{"model"},
	)

	// CacheLookups counts cache lookups by backend and result (hit, miss, error).
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fleet_forecast_cache_lookups_total",
			Help: "Schedule cache lookups",
		},
		[]string{"backend", "result"},
	)

	// HTTPRequests counts API requests by route, method and status code.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fleet_forecast_http_requests_total",
			Help: "HTTP requests served by the API",
		},
		[]string{"route", "method", "status"},
	)
)

// Status labels.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	ResultHit     = "hit"
	ResultMiss    = "miss"
)
