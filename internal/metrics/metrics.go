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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	RoundsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRoundsStarted,
			Help: HelpTextRoundsStarted,
		},
	)

	RoundsEnded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRoundsEnded,
			Help: HelpTextRoundsEnded,
		},
		[]string{LabelOutcome},
	)

	RoundsForceEnded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRoundsForceEnded,
			Help: HelpTextRoundsForceEnded,
		},
		[]string{LabelSource},
	)

	RoundDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameRoundDuration,
			Help:    HelpTextRoundDuration,
			Buckets: RoundDurationBuckets,
		},
	)

	RoundCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameRoundCandidates,
			Help:    HelpTextRoundCandidates,
			Buckets: CandidateBuckets,
		},
	)

	JokesAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameJokesAdded,
			Help: HelpTextJokesAdded,
		},
		[]string{LabelSource},
	)

	StaleRoundsSwept = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStaleRoundsSwept,
			Help: HelpTextStaleRoundsSwept,
		},
	)
)

// Discord Metrics
var (
	DiscordCommands = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDiscordCommands,
			Help: HelpTextDiscordCommands,
		},
		[]string{LabelCommand, LabelStatus},
	)

	DiscordMessagesDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDiscordDropped,
			Help: HelpTextDiscordDropped,
		},
	)

	ActiveSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveSubscribers,
			Help: HelpTextActiveSubscribers,
		},
	)
)
