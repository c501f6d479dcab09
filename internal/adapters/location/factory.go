package location

import (
	"fmt"
	"time"

	"myweather.app/internal/config"
	"myweather.app/internal/ports"
	"myweather.app/pkg/errors"
)

type LocationProviderFactory struct{}

func NewLocationProviderFactory() *LocationProviderFactory {
	return &LocationProviderFactory{}
}

func (f *LocationProviderFactory) CreateLocationProvider(cfg *config.LocationConfig, timeout time.Duration) (ports.LocationProvider, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("location config cannot be nil", nil)
	}

	switch cfg.Provider {
	case config.LocationProviderNone:
		return NewNoLocationProvider(), nil
	case config.LocationProviderStatic:
		if cfg.Latitude == nil || cfg.Longitude == nil {
			return nil, errors.NewConfigurationError("static location provider needs latitude and longitude", nil)
		}
		return NewStaticLocationProvider(*cfg.Latitude, *cfg.Longitude), nil
	case config.LocationProviderIP:
		return NewIPLocationProvider(IPLocationProviderParams{BaseURL: cfg.IPBaseURL, Timeout: timeout}), nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported location provider: %s", cfg.Provider.String()), nil)
	}
}
