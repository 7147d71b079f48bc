// Package metrics defines the Prometheus collectors exported by the server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Status label values.
const (
	StatusOK      = "ok"
	StatusInvalid = "invalid"
	StatusError   = "error"
)

var (
	// SchedulesComputed counts schedule requests by kind and outcome.
	SchedulesComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mortgage_schedules_total",
			Help: "Number of repayment schedules requested",
		},
		[]string{"schedule", "status"},
	)

	// ScheduleDuration observes how long a schedule computation took.
	ScheduleDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mortgage_schedule_duration_seconds",
			Help:    "Time spent computing a repayment schedule",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
		[]string{"schedule"},
	)
)

// ObserveSchedule records the outcome of one schedule request.
func ObserveSchedule(kind, status string, seconds float64) {
	if kind == "" {
		kind = "unknown"
	}
	SchedulesComputed.WithLabelValues(kind, status).Inc()
	if status == StatusOK {
		ScheduleDuration.WithLabelValues(kind).Observe(seconds)
	}
}
