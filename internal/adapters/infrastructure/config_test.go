package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"myweather.app/internal/config"
	"myweather.app/internal/ports"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 9090},
		Weather: config.WeatherConfig{
			APIKey:                "key",
			BaseURL:               "https://api.openweathermap.org",
			SearchLimit:           5,
			RequestTimeoutSeconds: 7,
			RateLimitRPS:          2.5,
			RateLimitBurst:        4,
			BreakerMaxFailures:    3,
			BreakerTimeoutSeconds: 30,
			EnableLogging:         true,
			SystemLocale:          "th_TH.UTF-8",
			Timezone:              "UTC",
			FallbackLatitude:      13.8461752070497,
			FallbackLongitude:     100.84000360685337,
		},
	}
}

func TestConfigProviderAdapter_GetWeatherConfig(t *testing.T) {
	adapter := NewConfigProviderAdapter(testConfig())

	weather := adapter.GetWeatherConfig()

	assert.Equal(t, ports.Coordinate{Latitude: 13.8461752070497, Longitude: 100.84000360685337}, weather.FallbackCoordinate)
	assert.Equal(t, "th", weather.Language)
	assert.Equal(t, time.UTC, weather.Location)
}

func TestConfigProviderAdapter_UnknownTimezoneFallsBackToLocal(t *testing.T) {
	cfg := testConfig()
	cfg.Weather.Timezone = "Mars/Olympus_Mons"

	weather := NewConfigProviderAdapter(cfg).GetWeatherConfig()

	assert.Equal(t, time.Local, weather.Location)
}

func TestConfigProviderAdapter_GetGatewayConfig(t *testing.T) {
	gateway := NewConfigProviderAdapter(testConfig()).GetGatewayConfig()

	assert.Equal(t, ports.GatewayConfig{
		APIKey:             "key",
		BaseURL:            "https://api.openweathermap.org",
		SearchLimit:        5,
		RequestTimeout:     7 * time.Second,
		RateLimitRPS:       2.5,
		RateLimitBurst:     4,
		BreakerMaxFailures: 3,
		BreakerTimeout:     30 * time.Second,
		EnableLogging:      true,
	}, gateway)
}

func TestConfigProviderAdapter_GetServerConfig(t *testing.T) {
	assert.Equal(t, 9090, NewConfigProviderAdapter(testConfig()).GetServerConfig().Port)
}
