package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kushfilms_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kushfilms_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Domain Metrics
	RatingRecomputes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kushfilms_rating_recomputes_total",
			Help: "Number of average-rating recomputations, by target type",
		},
		[]string{"type"},
	)

	OrdersPlaced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kushfilms_orders_placed_total",
			Help: "Number of orders placed",
		},
	)

	OrderStatusChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kushfilms_order_status_changes_total",
			Help: "Number of order status transitions, by new status",
		},
		[]string{"status"},
	)

	WebSocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "kushfilms_websocket_connections",
			Help: "Number of open order-event websocket connections",
		},
	)
)
