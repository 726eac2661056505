// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "service_requests_total",
			Help: "Total number of HTTP requests handled per service endpoint",
		},
		[]string{"service", "endpoint", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "service_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"service", "endpoint"},
	)

	DispatchesActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "agent_dispatches_active",
			Help: "Number of agent dispatches currently in flight",
		},
	)

	AgentTaskDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "agent_task_duration_seconds",
			Help: "Duration of individual agent task execution in seconds",
		},
		[]string{"agent_id"},
	)

	DependencyFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_dependency_failures_total",
			Help: "Total number of failed enrichment calls per dependency",
		},
		[]string{"service", "dependency"},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_cache_hits_total",
			Help: "Total number of suggestion cache hits",
		},
		[]string{"service"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_cache_misses_total",
			Help: "Total number of suggestion cache misses",
		},
		[]string{"service"},
	)
)
