package infrastructure

import (
	"context"

	"myweather.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	gatewayChecker   ports.HealthChecker
	publisherChecker ports.HealthChecker
	configProvider   ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	GatewayChecker   ports.HealthChecker
	PublisherChecker ports.HealthChecker
	ConfigProvider   ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		gatewayChecker:   config.GatewayChecker,
		publisherChecker: config.PublisherChecker,
		configProvider:   config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)

	if s.gatewayChecker != nil {
		results["weatherGateway"] = s.gatewayChecker.Check(ctx)
	}

	if s.publisherChecker != nil {
		results["statePublisher"] = s.publisherChecker.Check(ctx)
	}

	if s.configProvider != nil {
		weatherConfig := s.configProvider.GetWeatherConfig()
		details := map[string]interface{}{
			"language": weatherConfig.Language,
			"fallback": weatherConfig.FallbackCoordinate,
		}
		if weatherConfig.Location != nil {
			details["timezone"] = weatherConfig.Location.String()
		}
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    "healthy",
			Details:   details,
		}
	}

	return results
}
