// Package metrics holds the Prometheus collectors of the board service.
// Collectors register with the default registry on package init and are
// served by the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "modboard"

// AuthorizationDeniedTotal counts operations rejected for a missing capability.
// Label:
//   - capability: the capability the actor lacked (e.g. "add-post")
var AuthorizationDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_denied_total",
		Help:      "Total number of operations rejected because the actor lacked a capability.",
	},
	[]string{"capability"},
)

// PostMutationsTotal counts successful post writes.
// Label:
//   - action: "create", "edit" or "delete"
var PostMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "post_mutations_total",
		Help:      "Total number of posts created, edited or deleted.",
	},
	[]string{"action"},
)

// EditConflictsTotal counts edits rejected because the post changed underneath.
var EditConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "edit_conflicts_total",
		Help:      "Total number of post edits rejected with a concurrency conflict.",
	},
)

// CommentsAddedTotal counts comments appended to posts.
var CommentsAddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_added_total",
		Help:      "Total number of comments added.",
	},
)

// VideoLinksRejectedTotal counts submitted video links the sanitizer dropped.
var VideoLinksRejectedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "video_links_rejected_total",
		Help:      "Total number of submitted video links that were not YouTube watch links and were dropped.",
	},
)

// RoleChangesTotal counts role switches.
// Label:
//   - role: the role the user was moved into
var RoleChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_changes_total",
		Help:      "Total number of user role switches, by new role.",
	},
	[]string{"role"},
)

// LoginsTotal counts sign-in attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of sign-in attempts, by result.",
	},
	[]string{"result"},
)
