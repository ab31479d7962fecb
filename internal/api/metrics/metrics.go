// Package metrics defines and registers the custom Prometheus metrics of the
// portal gateway. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default registry at package init through
// promauto; importing the package is enough.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── Guard metrics ─────────────────────────────────────────────────────────────

// GuardDecisionsTotal counts route guard outcomes.
// Labels:
//   - surface: "page" or "api"
//   - decision: "render", "login" or "unauthorized"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard decisions, by surface and outcome.",
	},
	[]string{"surface", "decision"},
)

// ── Upstream metrics ──────────────────────────────────────────────────────────

// UpstreamRequestDuration measures calls to the grievance API.
// Labels:
//   - method: HTTP method
//   - route: path with identifiers collapsed (e.g. "/complaint/:id/assign")
//   - status: response status code, or "0" on transport failure
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of requests forwarded to the grievance API.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route", "status"},
)

// ObserveUpstream records one grievance API call. Its signature matches
// apiclient.Observer.
func ObserveUpstream(method, route string, status int, elapsed time.Duration) {
	UpstreamRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// ── Complaint metrics ─────────────────────────────────────────────────────────

// WorkflowActionsTotal counts staff actions taken through the gateway.
// Labels:
//   - action: "assign", "submit_proof", "approve", "reject" or "escalate"
//   - outcome: "succeeded", "refused" or "failed"
var WorkflowActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "workflow_actions_total",
		Help:      "Total number of workflow actions, by action and outcome.",
	},
	[]string{"action", "outcome"},
)

// ComplaintsSubmittedTotal counts citizen submissions.
// Label:
//   - outcome: "succeeded", "refused" (precondition or duplicate) or "failed"
var ComplaintsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "complaints_submitted_total",
		Help:      "Total number of complaint submissions, by outcome.",
	},
	[]string{"outcome"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditQueueDepth is the number of audit entries waiting to be written.
var AuditQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit entries pending in the dispatcher.",
	},
)

// AuditWriteFailuresTotal counts audit entries the store refused.
var AuditWriteFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_write_failures_total",
		Help:      "Total number of audit entries that could not be persisted.",
	},
)

// AuditDroppedTotal counts audit entries discarded because the queue was full.
var AuditDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_dropped_total",
		Help:      "Total number of audit entries dropped on a full queue.",
	},
)

// SetAuditDepth matches the dispatcher's depth hook.
func SetAuditDepth(n int) {
	AuditQueueDepth.Set(float64(n))
}
