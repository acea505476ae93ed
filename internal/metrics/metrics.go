// Package metrics defines the Prometheus instrumentation for the API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QuoteRequests counts API requests by endpoint and outcome.
	QuoteRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "propcost_requests_total",
			Help: "Total API requests by endpoint and status",
		},
		[]string{"endpoint", "status"},
	)

	// CalculationErrors counts rejected calculations by error type.
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "propcost_calculation_errors_total",
			Help: "Calculation errors by type",
		},
		[]string{"endpoint", "error_type"},
	)

	// CacheLookups counts quote cache lookups by result.
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "propcost_cache_lookups_total",
			Help: "Quote cache lookups by result",
		},
		[]string{"result"},
	)
)
