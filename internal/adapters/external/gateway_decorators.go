package external

import (
	"context"
	"time"

	"golang.org/x/time/rate"
	"myweather.app/internal/ports"
	"myweather.app/pkg/errors"
)

// WeatherGatewayLoggingDecorator decorates a weather gateway with structured logging
type WeatherGatewayLoggingDecorator struct {
	gateway ports.WeatherGateway
	logger  ports.Logger
}

// NewWeatherGatewayLoggingDecorator creates a new logging decorator for weather gateways
func NewWeatherGatewayLoggingDecorator(gateway ports.WeatherGateway, logger ports.Logger) ports.WeatherGateway {
	return &WeatherGatewayLoggingDecorator{
		gateway: gateway,
		logger:  logger,
	}
}

// FetchCurrent wraps the gateway call with structured logging
func (d *WeatherGatewayLoggingDecorator) FetchCurrent(ctx context.Context, coord ports.Coordinate) (*ports.WeatherResponse, error) {
	d.logRequest("fetch_current", ports.F("latitude", coord.Latitude), ports.F("longitude", coord.Longitude))
	start := time.Now()

	response, err := d.gateway.FetchCurrent(ctx, coord)
	d.logResult("fetch_current", start, err, response == nil)
	return response, err
}

// FetchForecast wraps the gateway call with structured logging
func (d *WeatherGatewayLoggingDecorator) FetchForecast(ctx context.Context, coord ports.Coordinate) (*ports.ForecastResponse, error) {
	d.logRequest("fetch_forecast", ports.F("latitude", coord.Latitude), ports.F("longitude", coord.Longitude))
	start := time.Now()

	response, err := d.gateway.FetchForecast(ctx, coord)
	d.logResult("fetch_forecast", start, err, response == nil)
	return response, err
}

// SearchByName wraps the gateway call with structured logging
func (d *WeatherGatewayLoggingDecorator) SearchByName(ctx context.Context, query string) ([]ports.DirectLocationResponse, error) {
	d.logRequest("search_by_name", ports.F("query", query))
	start := time.Now()

	response, err := d.gateway.SearchByName(ctx, query)
	d.logResult("search_by_name", start, err, response == nil)
	return response, err
}

// GetGatewayName returns the name of the wrapped gateway with logging indication
func (d *WeatherGatewayLoggingDecorator) GetGatewayName() string {
	return "logged(" + d.gateway.GetGatewayName() + ")"
}

func (d *WeatherGatewayLoggingDecorator) logRequest(operation string, fields ...ports.Field) {
	fields = append([]ports.Field{
		ports.F("gateway", d.gateway.GetGatewayName()),
		ports.F("operation", operation),
		ports.F("event", "request"),
	}, fields...)
	d.logger.Info("Weather API request started", fields...)
}

func (d *WeatherGatewayLoggingDecorator) logResult(operation string, start time.Time, err error, empty bool) {
	duration := time.Since(start)
	if err != nil {
		d.logger.Error("Weather API request failed",
			ports.F("gateway", d.gateway.GetGatewayName()),
			ports.F("operation", operation),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return
	}

	d.logger.Info("Weather API request completed",
		ports.F("gateway", d.gateway.GetGatewayName()),
		ports.F("operation", operation),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("empty", empty))
}

// RateLimitedWeatherGateway throttles calls to the wrapped gateway
type RateLimitedWeatherGateway struct {
	gateway ports.WeatherGateway
	limiter *rate.Limiter
}

// NewRateLimitedWeatherGateway allows rps calls per second with bursts of burst
func NewRateLimitedWeatherGateway(gateway ports.WeatherGateway, rps float64, burst int) *RateLimitedWeatherGateway {
	return &RateLimitedWeatherGateway{
		gateway: gateway,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// FetchCurrent waits for a token, then delegates
func (r *RateLimitedWeatherGateway) FetchCurrent(ctx context.Context, coord ports.Coordinate) (*ports.WeatherResponse, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, errors.NewFetchFailedError(err)
	}
	return r.gateway.FetchCurrent(ctx, coord)
}

// FetchForecast waits for a token, then delegates
func (r *RateLimitedWeatherGateway) FetchForecast(ctx context.Context, coord ports.Coordinate) (*ports.ForecastResponse, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, errors.NewFetchFailedError(err)
	}
	return r.gateway.FetchForecast(ctx, coord)
}

// SearchByName waits for a token, then delegates
func (r *RateLimitedWeatherGateway) SearchByName(ctx context.Context, query string) ([]ports.DirectLocationResponse, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, errors.NewFetchFailedError(err)
	}
	return r.gateway.SearchByName(ctx, query)
}

// GetGatewayName returns the name of the wrapped gateway with rate limit indication
func (r *RateLimitedWeatherGateway) GetGatewayName() string {
	return "rate_limited(" + r.gateway.GetGatewayName() + ")"
}

// InstrumentedWeatherGateway records call outcomes and latency
type InstrumentedWeatherGateway struct {
	gateway ports.WeatherGateway
	metrics ports.MetricsCollector
}

// NewInstrumentedWeatherGateway creates a metrics decorator for weather gateways
func NewInstrumentedWeatherGateway(gateway ports.WeatherGateway, metrics ports.MetricsCollector) *InstrumentedWeatherGateway {
	return &InstrumentedWeatherGateway{gateway: gateway, metrics: metrics}
}

// FetchCurrent delegates and records the outcome
func (i *InstrumentedWeatherGateway) FetchCurrent(ctx context.Context, coord ports.Coordinate) (*ports.WeatherResponse, error) {
	start := time.Now()
	response, err := i.gateway.FetchCurrent(ctx, coord)
	i.metrics.RecordGatewayCall(ctx, "fetch_current", outcome(err, response == nil), time.Since(start))
	return response, err
}

// FetchForecast delegates and records the outcome
func (i *InstrumentedWeatherGateway) FetchForecast(ctx context.Context, coord ports.Coordinate) (*ports.ForecastResponse, error) {
	start := time.Now()
	response, err := i.gateway.FetchForecast(ctx, coord)
	i.metrics.RecordGatewayCall(ctx, "fetch_forecast", outcome(err, response == nil), time.Since(start))
	return response, err
}

// SearchByName delegates and records the outcome
func (i *InstrumentedWeatherGateway) SearchByName(ctx context.Context, query string) ([]ports.DirectLocationResponse, error) {
	start := time.Now()
	response, err := i.gateway.SearchByName(ctx, query)
	i.metrics.RecordGatewayCall(ctx, "search_by_name", outcome(err, response == nil), time.Since(start))
	return response, err
}

// GetGatewayName returns the name of the wrapped gateway
func (i *InstrumentedWeatherGateway) GetGatewayName() string {
	return i.gateway.GetGatewayName()
}

func outcome(err error, empty bool) string {
	switch {
	case err != nil:
		return "failure"
	case empty:
		return "empty"
	default:
		return "success"
	}
}
