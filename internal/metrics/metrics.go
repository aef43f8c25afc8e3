package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Account Metrics
var (
	UsersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUsersRegistered,
			Help: HelpTextUsersRegistered,
		},
	)

	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLoginAttempts,
			Help: HelpTextLoginAttempts,
		},
		[]string{LabelResult},
	)
)

// Relay Metrics
var (
	RelayConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameRelayConnections,
			Help: HelpTextRelayConnections,
		},
	)

	RelayMessagesDelivered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRelayMessagesDelivered,
			Help: HelpTextRelayMessagesDelivered,
		},
	)

	RelayMessagesDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRelayMessagesDropped,
			Help: HelpTextRelayMessagesDropped,
		},
		[]string{LabelReason},
	)
)
