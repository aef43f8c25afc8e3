package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Account metric names
const (
	MetricNameUsersRegistered = "users_registered_total"
	MetricNameLoginAttempts   = "login_attempts_total"
)

// Relay metric names
const (
	MetricNameRelayConnections       = "relay_connections"
	MetricNameRelayMessagesDelivered = "relay_messages_delivered_total"
	MetricNameRelayMessagesDropped   = "relay_messages_dropped_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Account metric help text
const (
	HelpTextUsersRegistered = "Total number of users registered"
	HelpTextLoginAttempts   = "Total number of login attempts by outcome"
)

// Relay metric help text
const (
	HelpTextRelayConnections       = "Current number of live relay connections"
	HelpTextRelayMessagesDelivered = "Total number of relay messages delivered to a connection"
	HelpTextRelayMessagesDropped   = "Total number of relay messages dropped (no recipient or full buffer)"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelResult = "result"
	LabelReason = "reason"
)

// Label values
const (
	LabelValueSuccess = "success"
	LabelValueFailure = "failure"

	ReasonNoRecipient = "no_recipient"
	ReasonFullBuffer  = "full_buffer"
)

// HTTPLatencyBuckets are the histogram buckets for request durations
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
