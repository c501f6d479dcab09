package infrastructure

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"myweather.app/internal/mocks"
	"myweather.app/internal/ports"
)

type fakeBreaker struct {
	state string
}

func (f fakeBreaker) BreakerState() string { return f.state }

func TestWeatherGatewayHealthChecker_Check(t *testing.T) {
	tests := []struct {
		name           string
		breakerState   string
		expectedStatus string
	}{
		{name: "Closed", breakerState: "closed", expectedStatus: "healthy"},
		{name: "HalfOpen", breakerState: "half-open", expectedStatus: "healthy"},
		{name: "Open", breakerState: "open", expectedStatus: "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := mocks.NewWeatherGateway(t)
			gateway.EXPECT().GetGatewayName().Return("openweathermap")

			checker := NewWeatherGatewayHealthChecker(gateway, fakeBreaker{state: tt.breakerState})
			status := checker.Check(context.Background())

			assert.Equal(t, "weatherGateway", status.Component)
			assert.Equal(t, tt.expectedStatus, status.Status)
			assert.Equal(t, tt.breakerState, status.Details["breaker"])
			assert.Equal(t, "openweathermap", status.Details["gateway"])
		})
	}
}

func TestWeatherGatewayHealthChecker_NilGateway(t *testing.T) {
	status := NewWeatherGatewayHealthChecker(nil, nil).Check(context.Background())

	assert.Equal(t, "unhealthy", status.Status)
	assert.NotEmpty(t, status.Error)
}

func TestStatePublisherHealthChecker_Check(t *testing.T) {
	healthy := mocks.NewStatePublisher(t)
	healthy.EXPECT().Ping(mock.Anything).Return(nil)

	status := NewStatePublisherHealthChecker(healthy, time.Second).Check(context.Background())
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, true, status.Details["connected"])

	broken := mocks.NewStatePublisher(t)
	broken.EXPECT().Ping(mock.Anything).Return(errors.New("connection refused"))

	status = NewStatePublisherHealthChecker(broken, 0).Check(context.Background())
	assert.Equal(t, "unhealthy", status.Status)
	assert.Equal(t, "connection refused", status.Error)
	assert.Equal(t, false, status.Details["connected"])
}

func TestSystemHealthChecker_CheckAll(t *testing.T) {
	gatewayChecker := mocks.NewHealthChecker(t)
	publisherChecker := mocks.NewHealthChecker(t)
	configProvider := mocks.NewConfigProvider(t)

	gatewayChecker.EXPECT().Check(mock.Anything).Return(ports.HealthStatus{Component: "weatherGateway", Status: "healthy"})
	publisherChecker.EXPECT().Check(mock.Anything).Return(ports.HealthStatus{Component: "statePublisher", Status: "unhealthy"})
	configProvider.EXPECT().GetWeatherConfig().Return(ports.WeatherConfig{
		FallbackCoordinate: ports.Coordinate{Latitude: 1, Longitude: 2},
		Language:           "en",
		Location:           time.UTC,
	})

	checker := NewSystemHealthChecker(SystemHealthCheckerConfig{
		GatewayChecker:   gatewayChecker,
		PublisherChecker: publisherChecker,
		ConfigProvider:   configProvider,
	})
	results := checker.CheckAll(context.Background())

	assert.Len(t, results, 3)
	assert.Equal(t, "healthy", results["weatherGateway"].Status)
	assert.Equal(t, "unhealthy", results["statePublisher"].Status)
	assert.Equal(t, "UTC", results["config"].Details["timezone"])
	assert.Equal(t, "en", results["config"].Details["language"])
}

func TestSystemHealthChecker_SkipsMissingCheckers(t *testing.T) {
	results := NewSystemHealthChecker(SystemHealthCheckerConfig{}).CheckAll(context.Background())
	assert.Empty(t, results)
}
