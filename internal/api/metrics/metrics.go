// Package metrics defines and registers the custom Prometheus metrics for the
// ProRecruit back office. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry at package init through
// promauto, so importing the package is enough.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "prorecruit"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionRestoresTotal counts startup restorations of a persisted snapshot.
// Label:
//   - result: "restored", "absent" or "corrupt"
var SessionRestoresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_restores_total",
		Help:      "Total number of session restore attempts, by result.",
	},
	[]string{"result"},
)

// LogoutsTotal counts logouts, including repeated ones on an empty slot.
var LogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of logouts.",
	},
)

// TwoFactorChecksTotal counts second-factor code checks.
// Label:
//   - result: "accepted" or "rejected"
var TwoFactorChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "two_factor_checks_total",
		Help:      "Total number of two-factor code checks, by result.",
	},
	[]string{"result"},
)

// ── Access gate metrics ───────────────────────────────────────────────────────

// GateDecisionsTotal counts access gate outcomes.
// Labels:
//   - outcome: "render", "redirect", "fallback", "unauthorized" or "loading"
//   - reason: "unauthenticated", "role_mismatch", "missing_permission" or "" when rendered
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of access gate decisions, by outcome and reason.",
	},
	[]string{"outcome", "reason"},
)
