package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	rosterOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "roster",
		Name:      "operations_total",
		Help:      "Number of roster operations grouped by activity, operation and outcome.",
	}, []string{"activity", "operation", "outcome"})

	rosterSize = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "signup_service",
		Subsystem: "roster",
		Name:      "size",
		Help:      "Current number of participants per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(rosterOperations, rosterSize)
}

// RecordRosterOperation counts one signup or unregister attempt.
func RecordRosterOperation(activity, operation, outcome string) {
	rosterOperations.WithLabelValues(activity, operation, outcome).Inc()
}

// SetRosterSize updates the participant gauge for the activity.
func SetRosterSize(activity string, size int) {
	rosterSize.WithLabelValues(activity).Set(float64(size))
}
