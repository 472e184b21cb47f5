package metrics

import (
	"context"

	"github.com/osse101/MishkaBot_Go/internal/event"
	"github.com/osse101/MishkaBot_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.RoundStarted,
		event.RoundEnded,
		event.RoundsForceEnded,
		event.JokeAdded,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.RoundStarted:
		RoundsStarted.Inc()

	case event.RoundEnded:
		p, err := event.DecodePayload[event.RoundEndedPayloadV1](evt)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			return nil
		}
		RoundsEnded.WithLabelValues(p.Outcome).Inc()
		RoundDuration.Observe(p.DurationSeconds)
		RoundCandidates.Observe(float64(p.Candidates))

	case event.RoundsForceEnded:
		p, err := event.DecodePayload[event.RoundsForceEndedPayloadV1](evt)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			return nil
		}
		RoundsForceEnded.WithLabelValues(p.Source).Add(float64(p.Count))

	case event.JokeAdded:
		p, err := event.DecodePayload[event.JokeAddedPayloadV1](evt)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			return nil
		}
		JokesAdded.WithLabelValues(p.Source).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
