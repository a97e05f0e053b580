// Package metrics defines all custom Prometheus metrics for the cookout
// planner API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cookout"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignInsTotal counts sign-in attempts.
// Label:
//   - result: "success" or "failure"
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sign_ins_total",
		Help:      "Total number of sign-in attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts account registrations.
// Label:
//   - result: "created" or "conflict"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Invite metrics ────────────────────────────────────────────────────────────

// InvitesDeliveredTotal counts invitations that completed delivery.
// Label:
//   - role: the role the invitee was invited with (e.g. "chef")
var InvitesDeliveredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invites_delivered_total",
		Help:      "Total number of invitations successfully delivered.",
	},
	[]string{"role"},
)

// InvitesErrorsTotal counts invitations that failed delivery.
// Label:
//   - reason: short description of the failure (e.g. "delivery_failed")
var InvitesErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invites_errors_total",
		Help:      "Total number of invitations that failed delivery.",
	},
	[]string{"reason"},
)
