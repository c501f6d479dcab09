package external

import (
	"fmt"

	"myweather.app/internal/config"
	"myweather.app/internal/ports"
	"myweather.app/pkg/errors"
)

type StatePublisherFactory struct{}

func NewStatePublisherFactory() *StatePublisherFactory {
	return &StatePublisherFactory{}
}

func (f *StatePublisherFactory) CreateStatePublisher(cfg *config.PublisherConfig, logger ports.Logger) (ports.StatePublisher, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("publisher config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.PublisherTypeLog:
		return NewLogStatePublisher(logger), nil
	case config.PublisherTypeRedis:
		publisher, err := NewRedisStatePublisher(&cfg.Redis, cfg.Channel)
		if err != nil {
			return nil, err
		}
		return publisher, nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported state publisher type: %s", cfg.Type.String()), nil)
	}
}
