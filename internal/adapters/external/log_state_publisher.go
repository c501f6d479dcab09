package external

import (
	"context"
	"encoding/json"

	"myweather.app/internal/ports"
)

// LogStatePublisher writes state snapshots to the structured log
type LogStatePublisher struct {
	logger ports.Logger
}

func NewLogStatePublisher(logger ports.Logger) *LogStatePublisher {
	return &LogStatePublisher{logger: logger}
}

func (l *LogStatePublisher) Publish(ctx context.Context, payload []byte) error {
	l.logger.Debug("State snapshot published",
		ports.F("bytes", len(payload)),
		ports.F("state", json.RawMessage(payload)))
	return nil
}

func (l *LogStatePublisher) Ping(ctx context.Context) error {
	return nil
}

func (l *LogStatePublisher) Close() error {
	return nil
}
