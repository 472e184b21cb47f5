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

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Game metric names
const (
	MetricNameRoundsStarted     = "joke_rounds_started_total"
	MetricNameRoundsEnded       = "joke_rounds_ended_total"
	MetricNameRoundsForceEnded  = "joke_rounds_force_ended_total"
	MetricNameRoundDuration     = "joke_round_duration_seconds"
	MetricNameRoundCandidates   = "joke_round_candidates"
	MetricNameJokesAdded        = "jokes_added_total"
	MetricNameStaleRoundsSwept  = "joke_rounds_swept_total"
	MetricNameDiscordCommands   = "discord_commands_total"
	MetricNameDiscordDropped    = "discord_messages_dropped_total"
	MetricNameActiveSubscribers = "discord_channel_subscribers"
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

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Game metric help text
const (
	HelpTextRoundsStarted     = "Total number of joke rounds started"
	HelpTextRoundsEnded       = "Total number of joke rounds finalized, by outcome"
	HelpTextRoundsForceEnded  = "Total number of rounds ended by an admin, by source"
	HelpTextRoundDuration     = "Time from round start to finalize in seconds"
	HelpTextRoundCandidates   = "Number of vote candidates collected per round"
	HelpTextJokesAdded        = "Total number of jokes added, by source"
	HelpTextStaleRoundsSwept  = "Total number of abandoned rounds ended by the sweeper"
	HelpTextDiscordCommands   = "Total number of slash commands handled, by command and status"
	HelpTextDiscordDropped    = "Inbound messages dropped because a round subscriber was full"
	HelpTextActiveSubscribers = "Current number of channel subscriptions held by rounds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelOutcome = "outcome"
	LabelSource  = "source"
	LabelCommand = "command"
)

// Command status label values
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// RoundDurationBuckets covers instant wins up to a full guess and vote cycle
var RoundDurationBuckets = []float64{1, 5, 10, 20, 30, 45, 60, 75, 90, 120}

// CandidateBuckets covers the possible number of vote options
var CandidateBuckets = []float64{0, 1, 2, 3, 5, 8, 13, 20, 26}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
