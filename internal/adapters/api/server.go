// Package api provides HTTP adapters for the hexagonal architecture
// These adapters translate HTTP requests into weather use case operations
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"myweather.app/internal/core/weather"
	"myweather.app/internal/ports"
	"myweather.app/pkg/errors"
	"myweather.app/pkg/validation"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// WeatherUseCase is what the HTTP adapter needs from the weather orchestrator
type WeatherUseCase interface {
	Snapshot() weather.UiState
	Subscribe(buffer int) (<-chan weather.UiState, func())
	LoadIfNeeded(ctx context.Context)
	RefreshCurrentWeather(ctx context.Context, override *ports.Coordinate)
	RefreshForecast(ctx context.Context, override *ports.Coordinate)
	SearchLocations(ctx context.Context, query string)
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router         *gin.Engine
	config         ServerConfig
	weatherUseCase WeatherUseCase
	healthChecker  ports.SystemHealthChecker
	metricsHandler http.Handler

	// dispatch runs fire-and-forget operations; replaced in tests
	dispatch func(task func())
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config              ServerConfig
	WeatherUseCase      WeatherUseCase
	SystemHealthChecker ports.SystemHealthChecker
	MetricsHandler      http.Handler
}

var registerValidatorsOnce sync.Once

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	registerValidatorsOnce.Do(registerValidators)

	server := &HTTPServerAdapter{
		router:         gin.Default(),
		config:         opts.Config,
		weatherUseCase: opts.WeatherUseCase,
		healthChecker:  opts.SystemHealthChecker,
		metricsHandler: opts.MetricsHandler,
		dispatch:       func(task func()) { go task() },
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if opts.SystemHealthChecker == nil {
		return errors.NewValidationError("system health checker is required")
	}
	if opts.MetricsHandler == nil {
		return errors.NewValidationError("metrics handler is required")
	}
	return nil
}

// registerValidators installs the custom binding tags used by request structs
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("cityquery", validateCityQuery); err != nil {
			slog.Warn("Failed to register cityquery validator", "error", err)
		}
	}
}

func validateCityQuery(fl validator.FieldLevel) bool {
	return validation.IsValidCityQuery(fl.Field().String())
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/state", s.getState)
		api.GET("/state/stream", s.streamState)
		api.POST("/weather/load", s.loadIfNeeded)
		api.POST("/weather/current", s.refreshCurrentWeather)
		api.POST("/weather/forecast", s.refreshForecast)
		api.GET("/locations/search", s.searchLocations)
	}

	s.router.GET("/health", s.getHealth)
	s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
