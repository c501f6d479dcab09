package weather

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"myweather.app/internal/ports"
	"myweather.app/pkg/errors"
)

type operation int

const (
	operationCurrentWeather operation = iota
	operationForecast
	operationSearch
	operationCount
)

func (o operation) String() string {
	switch o {
	case operationCurrentWeather:
		return "refresh_current_weather"
	case operationForecast:
		return "refresh_forecast"
	case operationSearch:
		return "search_locations"
	default:
		return "unknown"
	}
}

// Outcomes recorded for every finished operation
const (
	OutcomeSuccess    = "success"
	OutcomeFailure    = "failure"
	OutcomeEmpty      = "empty"
	OutcomeSuperseded = "superseded"
)

// UseCase orchestrates location resolution, provider calls and mapping,
// and owns the published UiState.
type UseCase struct {
	gateway ports.WeatherGateway
	locator ports.LocationGateway
	config  ports.ConfigProvider
	logger  ports.Logger
	metrics ports.MetricsCollector

	mapper      *Mapper
	store       *StateStore
	generations [operationCount]atomic.Uint64
	loadOnce    sync.Once
}

type UseCaseDependencies struct {
	Gateway ports.WeatherGateway
	Locator ports.LocationGateway
	Config  ports.ConfigProvider
	Logger  ports.Logger
	Metrics ports.MetricsCollector
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Gateway == nil {
		return nil, errors.NewValidationError("weather gateway is required")
	}
	if deps.Locator == nil {
		return nil, errors.NewValidationError("location gateway is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	cfg := deps.Config.GetWeatherConfig()

	return &UseCase{
		gateway: deps.Gateway,
		locator: deps.Locator,
		config:  deps.Config,
		logger:  deps.Logger,
		metrics: deps.Metrics,
		mapper:  NewMapper(cfg.Location, cfg.Language),
		store:   NewStateStore(InitialState()),
	}, nil
}

// Snapshot returns the latest published state
func (uc *UseCase) Snapshot() UiState {
	return uc.store.Current()
}

// Subscribe streams state snapshots starting with the current one
func (uc *UseCase) Subscribe(buffer int) (<-chan UiState, func()) {
	return uc.store.Subscribe(buffer)
}

// Relay forwards state snapshots to publisher until ctx is done
func (uc *UseCase) Relay(ctx context.Context, publisher ports.StatePublisher) {
	uc.store.Relay(ctx, publisher, uc.logger)
}

// LoadIfNeeded refreshes current weather and forecast together the first time it is called
func (uc *UseCase) LoadIfNeeded(ctx context.Context) {
	uc.loadOnce.Do(func() {
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			uc.RefreshCurrentWeather(ctx, nil)
		}()
		go func() {
			defer wg.Done()
			uc.RefreshForecast(ctx, nil)
		}()
		wg.Wait()
	})
}

// RefreshCurrentWeather replaces DailyWeather with conditions at override,
// or at the device position when override is nil.
func (uc *UseCase) RefreshCurrentWeather(ctx context.Context, override *ports.Coordinate) {
	op := operationCurrentWeather
	opID := uuid.NewString()
	gen := uc.begin(ctx, op, beginCurrentWeather)
	start := time.Now()

	coord, fellBack := uc.resolveCoordinate(ctx, override, opID)
	uc.logger.Debug("Refreshing current weather",
		ports.F("operation_id", opID),
		ports.F("latitude", coord.Latitude),
		ports.F("longitude", coord.Longitude))

	response, err := uc.gateway.FetchCurrent(ctx, coord)
	switch {
	case err != nil:
		uc.fail(ctx, op, gen, opID, err, fellBack)
	case response == nil:
		uc.finish(ctx, op, gen, opID, OutcomeEmpty, withLocationFallback(fellBack))
	default:
		view := uc.mapper.CurrentWeather(response)
		uc.finish(ctx, op, gen, opID, OutcomeSuccess, chain(withDailyWeather(view), withLocationFallback(fellBack)))
		uc.logger.Info("Current weather refreshed",
			ports.F("operation_id", opID),
			ports.F("city", view.City),
			ports.F("temperature", view.TemperatureC),
			ports.F("duration_ms", time.Since(start).Milliseconds()))
	}
}

// RefreshForecast replaces Forecast for override or the device position.
// A previous forecast stays visible until a new one arrives.
func (uc *UseCase) RefreshForecast(ctx context.Context, override *ports.Coordinate) {
	op := operationForecast
	opID := uuid.NewString()
	gen := uc.begin(ctx, op, beginForecast)
	start := time.Now()

	coord, fellBack := uc.resolveCoordinate(ctx, override, opID)
	uc.logger.Debug("Refreshing forecast",
		ports.F("operation_id", opID),
		ports.F("latitude", coord.Latitude),
		ports.F("longitude", coord.Longitude))

	response, err := uc.gateway.FetchForecast(ctx, coord)
	switch {
	case err != nil:
		uc.fail(ctx, op, gen, opID, err, fellBack)
	case response == nil:
		uc.finish(ctx, op, gen, opID, OutcomeEmpty, withLocationFallback(fellBack))
	default:
		view := uc.mapper.Forecast(response)
		uc.finish(ctx, op, gen, opID, OutcomeSuccess, chain(withForecast(view), withLocationFallback(fellBack)))
		uc.logger.Info("Forecast refreshed",
			ports.F("operation_id", opID),
			ports.F("days", len(view.Intervals)),
			ports.F("duration_ms", time.Since(start).Milliseconds()))
	}
}

// SearchLocations replaces SearchResults with matches for query.
// Blank or invalid queries are ignored and provider failures leave the previous results in place.
func (uc *UseCase) SearchLocations(ctx context.Context, query string) {
	request := SearchRequest{Query: query}
	if err := request.IsValid(); err != nil {
		uc.logger.Debug("Ignoring location search", ports.F("query", query), ports.F("reason", err.Error()))
		return
	}
	request.Normalize()

	op := operationSearch
	opID := uuid.NewString()
	gen := uc.begin(ctx, op, begin)

	entries, err := uc.gateway.SearchByName(ctx, request.Query)
	switch {
	case err != nil:
		uc.logger.Warn("Location search failed",
			ports.F("operation_id", opID),
			ports.F("query", request.Query),
			ports.F("error", err))
		uc.finish(ctx, op, gen, opID, OutcomeFailure, identity)
	case entries == nil:
		uc.finish(ctx, op, gen, opID, OutcomeEmpty, identity)
	default:
		results := uc.mapper.SearchResults(entries)
		uc.finish(ctx, op, gen, opID, OutcomeSuccess, withSearchResults(results))
		uc.logger.Debug("Location search completed",
			ports.F("operation_id", opID),
			ports.F("query", request.Query),
			ports.F("matches", len(entries)),
			ports.F("results", len(results)))
	}
}

func (uc *UseCase) resolveCoordinate(ctx context.Context, override *ports.Coordinate, opID string) (ports.Coordinate, bool) {
	if override != nil {
		return *override, false
	}

	coord, err := uc.locator.CurrentPosition(ctx)
	if err == nil {
		return coord, false
	}

	fallback := uc.config.GetWeatherConfig().FallbackCoordinate
	uc.logger.Warn("Device location unavailable, using fallback coordinate",
		ports.F("operation_id", opID),
		ports.F("latitude", fallback.Latitude),
		ports.F("longitude", fallback.Longitude),
		ports.F("error", err))
	uc.metrics.RecordLocationFallback(ctx)
	return fallback, true
}

// begin publishes the loading transition and claims a new generation for op
func (uc *UseCase) begin(ctx context.Context, op operation, r Reducer) uint64 {
	var gen uint64
	uc.store.Update(func(s UiState) UiState {
		gen = uc.generations[op].Add(1)
		return r(s)
	})
	uc.metrics.RecordStateTransition(ctx, op.String(), "begin")
	return gen
}

// finish settles the loading count and applies r only if gen is still the newest request of op
func (uc *UseCase) finish(ctx context.Context, op operation, gen uint64, opID string, outcome string, r Reducer) {
	current := true
	uc.store.Update(func(s UiState) UiState {
		s = settle(s)
		if uc.generations[op].Load() != gen {
			current = false
			return s
		}
		return r(s)
	})

	if !current {
		outcome = OutcomeSuperseded
		uc.logger.Debug("Discarded superseded result",
			ports.F("operation", op.String()),
			ports.F("operation_id", opID))
	}
	uc.metrics.RecordStateTransition(ctx, op.String(), outcome)
}

func (uc *UseCase) fail(ctx context.Context, op operation, gen uint64, opID string, err error, fellBack bool) {
	failure := err
	if !errors.IsFetchFailedError(err) {
		failure = errors.NewFetchFailedError(err)
	}

	uc.logger.Error("Weather fetch failed",
		ports.F("operation", op.String()),
		ports.F("operation_id", opID),
		ports.F("error", failure))
	uc.finish(ctx, op, gen, opID, OutcomeFailure, chain(withError(errors.FetchFailedMessage), withLocationFallback(fellBack)))
}
