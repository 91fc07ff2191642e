// Package metrics provides Prometheus metrics for newsdesk.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts handled HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "newsdesk",
			Name:      "http_requests_total",
			Help:      "Total number of handled HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// RequestDuration measures HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "newsdesk",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// WorkflowRunsTotal counts summarization workflow invocations.
	WorkflowRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "newsdesk",
			Name:      "workflow_runs_total",
			Help:      "Total number of summarization workflow runs",
		},
		[]string{"status"},
	)

	// UpstreamFetchDuration measures article provider fetch duration.
	UpstreamFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "newsdesk",
			Name:      "upstream_fetch_duration_seconds",
			Help:      "Duration of article provider fetches in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

// RecordWorkflowRun records one workflow invocation.
func RecordWorkflowRun(status string) {
	WorkflowRunsTotal.WithLabelValues(status).Inc()
}
