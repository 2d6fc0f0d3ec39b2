package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPRequestsTotal counts handled requests by method, route and status.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "lifelessons_http_requests_total",
		Help: "Total number of HTTP requests handled, by method, route and status code.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration observes request latency by route.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "lifelessons_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds, by route.",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"route"},
)

// PaymentsRecorded counts successfully recorded premium purchases.
var PaymentsRecorded = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "lifelessons_payments_recorded_total",
		Help: "Total number of payment records persisted.",
	},
)
