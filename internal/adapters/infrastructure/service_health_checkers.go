package infrastructure

import (
	"context"
	"time"

	"myweather.app/internal/ports"
)

// BreakerReporter is implemented by gateways guarded by a circuit breaker
type BreakerReporter interface {
	BreakerState() string
}

// WeatherGatewayHealthChecker reports the weather provider circuit breaker
type WeatherGatewayHealthChecker struct {
	gateway ports.WeatherGateway
	breaker BreakerReporter
}

// NewWeatherGatewayHealthChecker creates a checker. breaker may be nil.
func NewWeatherGatewayHealthChecker(gateway ports.WeatherGateway, breaker BreakerReporter) *WeatherGatewayHealthChecker {
	return &WeatherGatewayHealthChecker{gateway: gateway, breaker: breaker}
}

// Check reports unhealthy while the breaker is open
func (w *WeatherGatewayHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherGateway",
		Status:    "healthy",
		Details:   map[string]interface{}{},
	}

	if w.gateway == nil {
		status.Status = "unhealthy"
		status.Error = "weather gateway is not available"
		return status
	}
	status.Details["gateway"] = w.gateway.GetGatewayName()

	if w.breaker != nil {
		state := w.breaker.BreakerState()
		status.Details["breaker"] = state
		if state == "open" {
			status.Status = "unhealthy"
			status.Error = "circuit breaker is open"
		}
	}

	return status
}

// StatePublisherHealthChecker pings the state publisher
type StatePublisherHealthChecker struct {
	publisher ports.StatePublisher
	timeout   time.Duration
}

func NewStatePublisherHealthChecker(publisher ports.StatePublisher, timeout time.Duration) *StatePublisherHealthChecker {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &StatePublisherHealthChecker{publisher: publisher, timeout: timeout}
}

// Check verifies the publisher answers a ping
func (s *StatePublisherHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "statePublisher",
		Status:    "healthy",
		Details:   map[string]interface{}{"connected": true},
	}

	if s.publisher == nil {
		status.Status = "unhealthy"
		status.Error = "state publisher is not available"
		status.Details["connected"] = false
		return status
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.publisher.Ping(ctx); err != nil {
		status.Status = "unhealthy"
		status.Error = err.Error()
		status.Details["connected"] = false
	}

	return status
}
