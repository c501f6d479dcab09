package location

import (
	"context"
	"fmt"

	"myweather.app/internal/ports"
	"myweather.app/pkg/errors"
	"myweather.app/pkg/validation"
)

// Resolver turns a device position source into a LocationGateway
type Resolver struct {
	provider ports.LocationProvider
	logger   ports.Logger
}

func NewResolver(provider ports.LocationProvider, logger ports.Logger) (*Resolver, error) {
	if provider == nil {
		return nil, errors.NewValidationError("location provider is required")
	}
	if logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	return &Resolver{provider: provider, logger: logger}, nil
}

// CurrentPosition returns the last known device position. Every failure,
// including an empty fix, is reported as a LocationUnavailable error.
func (r *Resolver) CurrentPosition(ctx context.Context) (ports.Coordinate, error) {
	position, err := r.provider.LastKnownPosition(ctx)
	if err != nil {
		r.logger.Debug("Location provider failed",
			ports.F("provider", r.provider.GetProviderName()),
			ports.F("error", err))
		return ports.Coordinate{}, errors.NewLocationUnavailableError(err)
	}
	if position == nil {
		return ports.Coordinate{}, errors.NewLocationUnavailableError(
			fmt.Errorf("%s returned no position", r.provider.GetProviderName()))
	}
	if !validation.IsValidCoordinate(position.Latitude, position.Longitude) {
		return ports.Coordinate{}, errors.NewLocationUnavailableError(
			fmt.Errorf("%s returned out of range position %.6f,%.6f", r.provider.GetProviderName(), position.Latitude, position.Longitude))
	}
	return *position, nil
}
