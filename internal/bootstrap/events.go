package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/MishkaBot_Go/internal/event"
	"github.com/osse101/MishkaBot_Go/internal/metrics"
)

// InitializeEventSystem creates the event bus and registers the metrics collector on it.
func InitializeEventSystem() (event.Bus, error) {
	eventBus := event.NewMemoryBus()

	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(eventBus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)
	slog.Info(LogMsgEventSystemInitialized)

	return eventBus, nil
}
