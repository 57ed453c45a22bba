// Package metrics defines and registers all custom Prometheus metrics for the
// field service API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fieldservice"

// TechniciansCreatedTotal counts successfully created technicians.
var TechniciansCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "technicians_created_total",
		Help:      "Total number of technicians created.",
	},
)

// ConflictsTotal counts uniqueness conflicts rejected by the mutation engine.
// Label:
//   - field: "email", "phone", or "other"
var ConflictsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "conflicts_total",
		Help:      "Total number of uniqueness conflicts, by conflicting field.",
	},
	[]string{"field"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
