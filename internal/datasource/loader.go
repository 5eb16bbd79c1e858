package datasource

import (
	"context"

	"go.uber.org/zap"

	"userdeck/internal/eventbus"
)

// Loader fetches the dataset once in the background and reports the
// outcome on the event bus.
type Loader struct {
	source   Source
	bus      eventbus.EventBus
	endpoint string
	logger   *zap.SugaredLogger
}

// NewLoader creates a loader for source
func NewLoader(source Source, bus eventbus.EventBus, endpoint string, logger *zap.SugaredLogger) *Loader {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Loader{source: source, bus: bus, endpoint: endpoint, logger: logger}
}

// Load performs the fetch and publishes DatasetLoadedEvent or
// DatasetFailedEvent. It blocks until the fetch completes.
func (l *Loader) Load(ctx context.Context) {
	l.bus.Publish(eventbus.DatasetRequestedEvent{Endpoint: l.endpoint})

	users, err := l.source.Fetch(ctx)
	if err != nil {
		if ctx.Err() != nil {
			l.logger.Infow("dataset load cancelled", "error", err)
			return
		}
		l.logger.Errorw("dataset load failed", "error", err)
		l.bus.Publish(eventbus.DatasetFailedEvent{Err: err})
		return
	}
	l.bus.Publish(eventbus.DatasetLoadedEvent{Users: users})
}
