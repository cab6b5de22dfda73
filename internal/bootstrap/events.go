package bootstrap

import (
	"log/slog"

	"github.com/farmverse/farmverse/internal/event"
	"github.com/farmverse/farmverse/internal/metrics"
)

// InitializeEventSystem creates the in-process event bus and registers the
// metrics observer so every domain event increments its counter.
func InitializeEventSystem() event.Bus {
	eventBus := event.NewMemoryBus()

	metrics.RegisterEventObservers(eventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	slog.Info(LogMsgEventSystemInitialized)
	return eventBus
}
