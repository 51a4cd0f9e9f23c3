// Package metrics defines and registers all custom Prometheus metrics for
// the event-management marketplace API. It is the single source of truth
// for metric names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time and
// are exposed together with the echoprometheus HTTP metrics on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// ── Auth metrics ──────────────────────────────────────────────────────────────

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

// RegistrationsTotal counts successful account registrations.
// Label:
//   - role: "user" or "vendor"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful registrations, by role.",
	},
	[]string{"role"},
)

// AuthFailuresTotal counts rejected protected requests.
// Label:
//   - reason: "unauthenticated", "invalid_token", "principal_not_found", "forbidden"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected protected requests, by failure kind.",
	},
	[]string{"reason"},
)

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersCreatedTotal counts newly placed orders.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders placed.",
	},
)

// OrderValue observes the computed total of each placed order.
var OrderValue = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "order_value",
		Help:      "Distribution of order totals at placement time.",
		Buckets:   prometheus.ExponentialBuckets(10, 2.5, 8), // 10 … ~15k
	},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// CatalogCacheTotal counts catalog cache lookups.
// Label:
//   - result: "hit", "miss", or "error"
var CatalogCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_cache_total",
		Help:      "Total number of catalog cache lookups, by result.",
	},
	[]string{"result"},
)
