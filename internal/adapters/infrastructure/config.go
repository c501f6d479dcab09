package infrastructure

import (
	"time"

	"myweather.app/internal/config"
	"myweather.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetWeatherConfig returns settings for the weather use case
func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	weather := c.config.Weather

	location, err := weather.TimeLocation()
	if err != nil {
		location = time.Local
	}

	return ports.WeatherConfig{
		FallbackCoordinate: ports.Coordinate{
			Latitude:  weather.FallbackLatitude,
			Longitude: weather.FallbackLongitude,
		},
		Language: weather.DeviceLanguage(),
		Location: location,
	}
}

// GetGatewayConfig returns weather provider client configuration
func (c *ConfigProviderAdapter) GetGatewayConfig() ports.GatewayConfig {
	weather := c.config.Weather
	return ports.GatewayConfig{
		APIKey:             weather.APIKey,
		BaseURL:            weather.BaseURL,
		SearchLimit:        weather.SearchLimit,
		RequestTimeout:     time.Duration(weather.RequestTimeoutSeconds) * time.Second,
		RateLimitRPS:       weather.RateLimitRPS,
		RateLimitBurst:     weather.RateLimitBurst,
		BreakerMaxFailures: weather.BreakerMaxFailures,
		BreakerTimeout:     time.Duration(weather.BreakerTimeoutSeconds) * time.Second,
		EnableLogging:      weather.EnableLogging,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}
