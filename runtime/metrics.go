package runtime

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/wippyai/script-runtime/engine"
)

var (
	submissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "script_runtime_submissions_total",
			Help: "Total number of scripts accepted into the command queue.",
		},
		[]string{"engine"},
	)

	executionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "script_runtime_executions_total",
			Help: "Total number of scripts the worker finished, by outcome.",
		},
		[]string{"engine", "outcome"},
	)

	executionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "script_runtime_execution_seconds",
			Help:    "Script execution time on the worker, in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"engine"},
	)

	queueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "script_runtime_queue_depth",
			Help: "Number of scripts submitted but not yet executed.",
		},
	)

	activeWorkers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "script_runtime_active_workers",
			Help: "Number of live engine worker goroutines.",
		},
	)
)

func init() {
	prometheus.MustRegister(submissionsTotal)
	prometheus.MustRegister(executionsTotal)
	prometheus.MustRegister(executionDuration)
	prometheus.MustRegister(queueDepth)
	prometheus.MustRegister(activeWorkers)

	// Pre-initialize label combinations for the built-in engines so they
	// appear in /metrics with value 0 from startup, rather than only after
	// first observation.
	for _, eng := range []string{engine.JS, engine.Lua} {
		submissionsTotal.WithLabelValues(eng)
		executionsTotal.WithLabelValues(eng, OutcomeExecuted)
		executionsTotal.WithLabelValues(eng, OutcomeScriptError)
		executionsTotal.WithLabelValues(eng, OutcomeWorkerFault)
	}
}
