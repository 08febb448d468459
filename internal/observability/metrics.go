package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	registry *prometheus.Registry

	// Update-task step outcomes. Watch for: error status on install (likely
	// a wrong password) vs clone/build (likely network or build breakage).
	UpdateStepsTotal *prometheus.CounterVec

	// Per-step wall time. The build step dominates; clone depends on network.
	UpdateStepDuration *prometheus.HistogramVec

	// Repository operation outcomes, labelled by op (create/read) and status.
	RepositoryOpsTotal *prometheus.CounterVec

	// Repository operation latency. The simulated backend pins this to its
	// configured delay; memcached shows real round trips.
	RepositoryOpDuration *prometheus.HistogramVec
)

func init() {
	registry = prometheus.NewRegistry()

	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	UpdateStepsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "updateStepsTotal",
			Help: "Total update-task step executions",
		},
		[]string{"step", "status"},
	)
	UpdateStepDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "updateStepDurationSeconds",
			Help:    "Update-task step wall time in seconds",
			Buckets: []float64{.5, 1, 5, 15, 60, 300, 900},
		},
		[]string{"step"},
	)
	RepositoryOpsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "repositoryOpsTotal",
			Help: "Total repository operations",
		},
		[]string{"op", "status"},
	)
	RepositoryOpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "repositoryOpDurationSeconds",
			Help:    "Repository operation latency in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		},
		[]string{"op"},
	)

	registry.MustRegister(
		UpdateStepsTotal,
		UpdateStepDuration,
		RepositoryOpsTotal,
		RepositoryOpDuration,
	)
}

// Registry exposes the package registry, mainly for tests and future scraping.
func Registry() *prometheus.Registry {
	return registry
}

// RecordUpdateStep records one update-task step outcome and its duration.
func RecordUpdateStep(step string, err error, elapsed time.Duration) {
	UpdateStepsTotal.WithLabelValues(step, statusLabel(err)).Inc()
	UpdateStepDuration.WithLabelValues(step).Observe(elapsed.Seconds())
}

// RecordRepositoryOp records one repository operation outcome and its duration.
func RecordRepositoryOp(op string, err error, elapsed time.Duration) {
	RepositoryOpsTotal.WithLabelValues(op, statusLabel(err)).Inc()
	RepositoryOpDuration.WithLabelValues(op).Observe(elapsed.Seconds())
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
