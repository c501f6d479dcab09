package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"myweather.app/internal/adapters/external"
	"myweather.app/internal/adapters/infrastructure"
	"myweather.app/internal/adapters/location"
	"myweather.app/internal/config"
	corelocation "myweather.app/internal/core/location"
	"myweather.app/internal/ports"
	"myweather.app/pkg/logger"
)

type DependencyContainer struct {
	config  *config.Config
	ports   *ports.ApplicationPorts
	metrics *infrastructure.PrometheusMetricsCollector
	breaker infrastructure.BreakerReporter
	output  io.Writer
}

// DependencyOption customizes the container, mainly for tests
type DependencyOption func(*DependencyContainer)

// WithLogOutput sends console logs to w instead of stdout
func WithLogOutput(w io.Writer) DependencyOption {
	return func(c *DependencyContainer) {
		c.output = w
	}
}

func NewDependencyContainer(cfg *config.Config, opts ...DependencyOption) (*DependencyContainer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	container := &DependencyContainer{
		config: cfg,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(container)
	}

	if err := container.initializePorts(); err != nil {
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	appLogger := c.initializeLogger()
	configProvider := infrastructure.NewConfigProviderAdapter(c.config)
	c.metrics = infrastructure.NewPrometheusMetricsCollector()

	gateway, err := c.initializeWeatherGateway(configProvider.GetGatewayConfig(), appLogger)
	if err != nil {
		return fmt.Errorf("create weather gateway: %w", err)
	}

	locationProvider, err := location.NewLocationProviderFactory().CreateLocationProvider(
		&c.config.Location, configProvider.GetGatewayConfig().RequestTimeout)
	if err != nil {
		return fmt.Errorf("create location provider: %w", err)
	}
	slog.Info("Location provider initialized", "provider", locationProvider.GetProviderName())

	locator, err := corelocation.NewResolver(locationProvider, appLogger)
	if err != nil {
		return fmt.Errorf("create location resolver: %w", err)
	}

	publisher, err := external.NewStatePublisherFactory().CreateStatePublisher(&c.config.Publisher, appLogger)
	if err != nil {
		return fmt.Errorf("create state publisher: %w", err)
	}
	slog.Info("State publisher initialized",
		"type", c.config.Publisher.Type.String(),
		"channel", c.config.Publisher.Channel)

	c.ports = &ports.ApplicationPorts{
		WeatherGateway:  gateway,
		LocationGateway: locator,
		StatePublisher:  publisher,
		ConfigProvider:  configProvider,
		Logger:          appLogger,
		Metrics:         c.metrics,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) initializeLogger() ports.Logger {
	level := logger.ParseLevel(c.config.Log.Level)
	console := infrastructure.NewSlogLoggerAdapter(logger.NewWithWriter(c.output, level).Logger)

	if c.config.Log.FilePath == "" {
		return console
	}

	fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Log.FilePath, level)
	if err != nil {
		slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		return console
	}
	slog.Info("File logging enabled", "path", c.config.Log.FilePath)
	return infrastructure.NewMultiLogger(console, fileLogger)
}

// initializeWeatherGateway builds provider -> rate limit -> metrics -> logging
func (c *DependencyContainer) initializeWeatherGateway(cfg ports.GatewayConfig, appLogger ports.Logger) (ports.WeatherGateway, error) {
	provider, err := external.NewOpenWeatherMapGateway(external.OpenWeatherMapGatewayParams{
		APIKey:             cfg.APIKey,
		BaseURL:            cfg.BaseURL,
		SearchLimit:        cfg.SearchLimit,
		Timeout:            cfg.RequestTimeout,
		BreakerMaxFailures: cfg.BreakerMaxFailures,
		BreakerTimeout:     cfg.BreakerTimeout,
	})
	if err != nil {
		return nil, err
	}
	c.breaker = provider

	var gateway ports.WeatherGateway = external.NewRateLimitedWeatherGateway(provider, cfg.RateLimitRPS, cfg.RateLimitBurst)
	gateway = external.NewInstrumentedWeatherGateway(gateway, c.metrics)

	if cfg.EnableLogging {
		gateway = external.NewWeatherGatewayLoggingDecorator(gateway, appLogger)
		slog.Info("Weather gateway logging enabled")
	}

	return gateway, nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Metrics returns the Prometheus collector backing the MetricsCollector port
func (c *DependencyContainer) Metrics() *infrastructure.PrometheusMetricsCollector {
	return c.metrics
}

// Breaker reports the provider circuit breaker state
func (c *DependencyContainer) Breaker() infrastructure.BreakerReporter {
	return c.breaker
}

// Cleanup releases external connections
func (c *DependencyContainer) Cleanup() error {
	if c.ports != nil && c.ports.StatePublisher != nil {
		return c.ports.StatePublisher.Close()
	}
	return nil
}
