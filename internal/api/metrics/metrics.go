// Package metrics defines and registers the custom Prometheus metrics for the
// booking API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics register with the default Prometheus registry at import time; the
// router exposes them on /metrics alongside the echoprometheus request
// metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "booking"

// UsersRegisteredTotal counts account registrations.
// Label:
//   - role: "user" or "artist"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// BookingsCreatedTotal counts bookings that passed all creation preconditions
// (availability, no duplicate pair) and were persisted.
var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created.",
	},
)

// PaymentsProcessedTotal counts successful payment captures.
// Label:
//   - method: "credit_card", "paypal", "bank_transfer", or "cash"
var PaymentsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_processed_total",
		Help:      "Total number of payments captured, by payment method.",
	},
	[]string{"method"},
)

// ReviewsCreatedTotal counts reviews accepted through the completed-booking
// gate.
var ReviewsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_created_total",
		Help:      "Total number of reviews created.",
	},
)
