package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"myweather.app/internal/adapters/api"
	"myweather.app/internal/adapters/infrastructure"
	"myweather.app/internal/config"
	"myweather.app/internal/core/weather"
	"myweather.app/internal/ports"
)

const healthCheckTimeout = 2 * time.Second

type Application struct {
	config *config.Config

	// Use Cases
	weatherUseCase *weather.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps      *DependencyContainer
	ports     *ports.ApplicationPorts
	stopRelay context.CancelFunc
	relayDone chan struct{}
	stopOnce  sync.Once
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	return NewApplicationWithDependencies(cfg, deps)
}

// NewApplicationWithDependencies creates an application with provided dependencies
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config:    cfg,
		deps:      deps,
		ports:     deps.ApplicationPorts(),
		relayDone: make(chan struct{}),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Gateway: a.ports.WeatherGateway,
		Locator: a.ports.LocationGateway,
		Config:  a.ports.ConfigProvider,
		Logger:  a.ports.Logger,
		Metrics: a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		GatewayChecker:   infrastructure.NewWeatherGatewayHealthChecker(a.ports.WeatherGateway, a.deps.Breaker()),
		PublisherChecker: infrastructure.NewStatePublisherHealthChecker(a.ports.StatePublisher, healthCheckTimeout),
		ConfigProvider:   a.ports.ConfigProvider,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port: a.config.Server.Port,
		},
		WeatherUseCase:      a.weatherUseCase,
		SystemHealthChecker: systemHealthChecker,
		MetricsHandler:      a.deps.Metrics().Handler(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	// WriteTimeout stays zero so SSE streams are not cut off. Streams end
	// instead when Shutdown cancels the base context of every request.
	requestCtx, cancelRequests := context.WithCancel(context.Background())
	a.httpServer = &http.Server{
		Addr:        fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:     a.router,
		ReadTimeout: 30 * time.Second,
		IdleTimeout: 60 * time.Second,
		BaseContext: func(net.Listener) context.Context { return requestCtx },
	}
	a.httpServer.RegisterOnShutdown(cancelRequests)

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start relays state snapshots, performs the initial load and serves HTTP until shutdown
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	listener, err := net.Listen("tcp", a.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", a.httpServer.Addr, err)
	}

	return a.serve(ctx, listener)
}

func (a *Application) serve(ctx context.Context, listener net.Listener) error {
	a.startBackground(ctx)

	slog.Info("Starting HTTP server", "addr", listener.Addr().String())
	if err := a.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) startBackground(ctx context.Context) {
	relayCtx, cancel := context.WithCancel(ctx)
	a.stopRelay = cancel

	go func() {
		defer close(a.relayDone)
		a.weatherUseCase.Relay(relayCtx, a.ports.StatePublisher)
	}()

	go a.weatherUseCase.LoadIfNeeded(context.WithoutCancel(ctx))
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	var shutdownErr error
	a.stopOnce.Do(func() {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			slog.Error("Error shutting down HTTP server", "error", err)
			shutdownErr = fmt.Errorf("shutdown HTTP server: %w", err)
		}

		if a.stopRelay != nil {
			a.stopRelay()
			select {
			case <-a.relayDone:
			case <-ctx.Done():
				slog.Warn("State relay did not stop before shutdown deadline")
			}
		}

		if err := a.deps.Cleanup(); err != nil {
			slog.Warn("Error closing state publisher", "error", err)
		}
	})
	if shutdownErr != nil {
		return shutdownErr
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetWeatherUseCase returns the weather use case for testing
func (a *Application) GetWeatherUseCase() *weather.UseCase {
	return a.weatherUseCase
}
