// Package metrics defines the Prometheus collectors of the restaurant console.
// Collectors register with the default registry on package init (promauto) and
// are scraped through GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "console"

// ── Backend client ───────────────────────────────────────────────────────────

// APIRequestsTotal counts outbound calls to the backend.
// Labels:
//   - method: HTTP verb
//   - endpoint: route template, e.g. "/api/v1/restaurants/{id}"
//   - code: response status, or "error" when nothing was received
var APIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Total number of backend API calls issued by the console.",
	},
	[]string{"method", "endpoint", "code"},
)

// APIRequestDuration measures backend call latency, including body read.
var APIRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Latency of backend API calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "endpoint"},
)

// ── Session guard ────────────────────────────────────────────────────────────

// GuardOutcomesTotal counts settled guard checks.
// Label:
//   - outcome: "authorized", "no_token" or "verification_failed"
var GuardOutcomesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_outcomes_total",
		Help:      "Session guard decisions on protected screen mounts.",
	},
	[]string{"outcome"},
)

// ── List/edit workflow ───────────────────────────────────────────────────────

// WorkflowMutationsTotal counts create/update/delete attempts.
// Labels:
//   - resource: e.g. "restaurants"
//   - op: "create", "update" or "delete"
//   - result: "ok" or "error"
var WorkflowMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "workflow_mutations_total",
		Help:      "Mutations issued by list/edit workflows.",
	},
	[]string{"resource", "op", "result"},
)

// WorkflowLoadsTotal counts collection refetches.
// Labels:
//   - resource: e.g. "restaurants"
//   - result: "ok", "error" or "discarded" (screen unmounted before the reply)
var WorkflowLoadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "workflow_loads_total",
		Help:      "Collection loads issued by list/edit workflows.",
	},
	[]string{"resource", "result"},
)
