// Package metrics defines and registers all custom Prometheus metrics for
// the bloglist API. It sits outside both the core and the api trees so
// services, middleware, and infrastructure can all increment counters
// without importing each other.
//
// Metrics register with the default Prometheus registry at import time;
// the router exposes them on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bloglist"

// BlogsCreatedTotal counts successfully created blog entries.
var BlogsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "blogs_created_total",
		Help:      "Total number of blog entries created.",
	},
)

// BlogsDeletedTotal counts blog entries removed by their owner.
var BlogsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "blogs_deleted_total",
		Help:      "Total number of blog entries deleted.",
	},
)

// LikeUpdatesTotal counts like-counter updates applied via PUT.
var LikeUpdatesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "like_updates_total",
		Help:      "Total number of like-counter updates applied.",
	},
)

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: "invalid_token", "expired_token", or "bad_credentials"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected authentication attempts, by reason.",
	},
	[]string{"reason"},
)

// UserCacheTotal counts identity-resolver cache lookups.
// Label:
//   - result: "hit" (served from redis) or "miss" (fell through to mongo)
var UserCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_cache_total",
		Help:      "Total number of resolved-user cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
