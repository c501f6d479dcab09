package ports

import (
	"context"
	"time"
)

// WeatherConfig represents settings used by the weather use case
type WeatherConfig struct {
	FallbackCoordinate Coordinate
	Language           string
	Location           *time.Location
}

// GatewayConfig represents weather provider client configuration
type GatewayConfig struct {
	APIKey             string
	BaseURL            string
	SearchLimit        int
	RequestTimeout     time.Duration
	RateLimitRPS       float64
	RateLimitBurst     int
	BreakerMaxFailures uint32
	BreakerTimeout     time.Duration
	EnableLogging      bool
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetWeatherConfig() WeatherConfig
	GetGatewayConfig() GatewayConfig
	GetServerConfig() ServerConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordGatewayCall(ctx context.Context, operation, outcome string, duration time.Duration)
	RecordLocationFallback(ctx context.Context)
	RecordStateTransition(ctx context.Context, operation, event string)
}
