// Package metrics provides Prometheus metrics for the sage service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ConsultsTotal tracks consult pipeline runs by outcome
	ConsultsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sage",
			Subsystem: "rag",
			Name:      "consults_total",
			Help:      "Total number of consult pipeline runs by outcome",
		},
		[]string{"outcome"},
	)

	// ConsultDuration tracks consult pipeline duration in seconds
	ConsultDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "sage",
			Subsystem: "rag",
			Name:      "consult_duration_seconds",
			Help:      "Duration of consult pipeline runs in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
	)

	// MatchedPersons tracks how many records each consult matched
	MatchedPersons = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "sage",
			Subsystem: "rag",
			Name:      "matched_persons",
			Help:      "Number of person records matched per consult",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 12},
		},
	)

	// HTTPRequestsTotal tracks outbound HTTP requests
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sage",
			Subsystem: "http_client",
			Name:      "requests_total",
			Help:      "Total number of outbound HTTP requests",
		},
		[]string{"method", "status_code"},
	)

	// HTTPRequestDuration tracks outbound HTTP request duration
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "sage",
			Subsystem: "http_client",
			Name:      "request_duration_seconds",
			Help:      "Duration of outbound HTTP requests in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method"},
	)

	// AuditLogsTotal tracks audit log deliveries by status
	AuditLogsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sage",
			Subsystem: "audit",
			Name:      "logs_total",
			Help:      "Total number of audit log deliveries by status",
		},
		[]string{"status"},
	)
)
