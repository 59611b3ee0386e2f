// Package metrics defines Prometheus metrics for the pipeline checker.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pipelinecheck_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipelinecheck_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipelinecheck_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	PipelinesParsed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipelinecheck_pipelines_parsed_total",
			Help: "Pipelines analysed, by verdict",
		},
		[]string{"verdict"},
	)

	GraphElements = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pipelinecheck_graph_elements",
			Help:    "Nodes plus edges per analysed pipeline",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
	)

	EdgesDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pipelinecheck_edges_dropped_total",
			Help: "Edges ignored because an endpoint is not a known node",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		PipelinesParsed, GraphElements, EdgesDropped,
	)
}

// Verdict returns the label value for a DAG verdict.
func Verdict(isDAG bool) string {
	if isDAG {
		return "dag"
	}

	return "cyclic"
}
