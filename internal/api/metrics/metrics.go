// Package metrics defines and registers all custom Prometheus metrics for the
// delivery-system API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default Prometheus registry at init
// time via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "delivery"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Colis metrics ─────────────────────────────────────────────────────────────

// ColisCreatedTotal counts newly created colis.
// Label:
//   - priority: "EXPRESS" or "NORMAL"
var ColisCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "colis_created_total",
		Help:      "Total number of colis created, by priority.",
	},
	[]string{"priority"},
)

// StatusTransitionsTotal counts applied colis status transitions.
// Label:
//   - status: the new colis status (e.g. "EN_COURS")
var StatusTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_transitions_total",
		Help:      "Total number of colis status transitions applied.",
	},
	[]string{"status"},
)

// ── Delivery-event metrics ────────────────────────────────────────────────────

// EventsErrorsTotal counts delivery events that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "invalid_transition", "colis_not_found")
var EventsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_errors_total",
		Help:      "Total number of delivery events that failed processing.",
	},
	[]string{"reason"},
)

// EventProcessingDuration measures how long a single event takes to process end-to-end.
// Label:
//   - status: the resulting colis status, or "error" on failure
var EventProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "event_processing_duration_seconds",
		Help:      "Duration of delivery-event processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"status"},
)
