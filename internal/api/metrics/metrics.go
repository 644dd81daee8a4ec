// Package metrics defines and registers the custom Prometheus metrics of the
// admin API. HTTP request metrics come from echoprometheus; this package only
// holds the domain counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "admin_api"

// AuthorizationDecisionsTotal counts guard decisions.
// Labels:
//   - outcome: "allowed", "forbidden" or "unauthenticated"
//   - site: "route" for the HTTP guard, "capability" for the non-terminating check
var AuthorizationDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_decisions_total",
		Help:      "Total number of admin authorization decisions, by outcome and call site.",
	},
	[]string{"outcome", "site"},
)

// UserListingsTotal counts user listing calls.
// Label:
//   - result: "ok" or "error"
var UserListingsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_listings_total",
		Help:      "Total number of admin user listings, by result.",
	},
	[]string{"result"},
)
