// Package observability holds the Prometheus metrics for the storefront.
// Metrics are package-level promauto vars so any layer can record without
// carrying a registry around; the api package exposes them on /metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Cart Metrics ───────────────────────────────────────────────────────────

// CartMutations counts cart mutations by operation (add, remove, update, clear).
var CartMutations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "pulpstore",
	Subsystem: "cart",
	Name:      "mutations_total",
	Help:      "Total cart mutations by operation.",
}, []string{"op"})

// CartPersistFailures counts slot writes that failed. The in-memory cart
// stays authoritative for the session, so these are observed, not surfaced.
var CartPersistFailures = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "pulpstore",
	Subsystem: "cart",
	Name:      "persist_failures_total",
	Help:      "Total failed write-through saves to the durable slot.",
})

// CartHydrations counts store hydrations by result (restored, empty).
var CartHydrations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "pulpstore",
	Subsystem: "cart",
	Name:      "hydrations_total",
	Help:      "Total cart hydrations from the durable slot by result.",
}, []string{"result"})

// CartRejectedAdds counts add calls rejected at the validation boundary.
var CartRejectedAdds = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "pulpstore",
	Subsystem: "cart",
	Name:      "rejected_adds_total",
	Help:      "Total add operations rejected for violating the caller contract.",
})

// ─── Session Metrics ────────────────────────────────────────────────────────

// ActiveSessions tracks carts currently held in memory.
var ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "pulpstore",
	Subsystem: "sessions",
	Name:      "active",
	Help:      "Number of cart sessions currently held in memory.",
})

// ─── Storefront Glue Metrics ────────────────────────────────────────────────

// ContactForwards counts contact-form forwards by outcome (ok, upstream_error, invalid).
var ContactForwards = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "pulpstore",
	Subsystem: "contact",
	Name:      "forwards_total",
	Help:      "Total contact form submissions by outcome.",
}, []string{"outcome"})

// IndexNowPings counts IndexNow submissions by outcome.
var IndexNowPings = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "pulpstore",
	Subsystem: "indexnow",
	Name:      "pings_total",
	Help:      "Total IndexNow pings by outcome.",
}, []string{"outcome"})

// AdminLogins counts admin login attempts by outcome (ok, rejected).
var AdminLogins = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "pulpstore",
	Subsystem: "admin",
	Name:      "logins_total",
	Help:      "Total admin login attempts by outcome.",
}, []string{"outcome"})
