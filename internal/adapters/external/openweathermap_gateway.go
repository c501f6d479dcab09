// Package external provides adapters for external services
// These adapters implement ports for the weather provider and state publishers.
package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
	"myweather.app/internal/ports"
	"myweather.app/pkg/errors"
)

const (
	defaultOpenWeatherMapBaseURL = "https://api.openweathermap.org"
	currentWeatherPath           = "/data/2.5/weather"
	forecastPath                 = "/data/2.5/forecast"
	directGeocodingPath          = "/geo/1.0/direct"
	metricUnits                  = "metric"
)

// OpenWeatherMapGateway implements WeatherGateway on top of the OpenWeatherMap REST API
type OpenWeatherMapGateway struct {
	apiKey      string
	searchLimit int
	client      *resty.Client
	breaker     *gobreaker.CircuitBreaker
}

// OpenWeatherMapGatewayParams holds parameters for creating the OpenWeatherMap gateway
type OpenWeatherMapGatewayParams struct {
	APIKey             string
	BaseURL            string
	SearchLimit        int
	Timeout            time.Duration
	BreakerMaxFailures uint32
	BreakerTimeout     time.Duration
}

// NewOpenWeatherMapGateway creates a new OpenWeatherMap gateway
func NewOpenWeatherMapGateway(params OpenWeatherMapGatewayParams) (*OpenWeatherMapGateway, error) {
	if params.APIKey == "" {
		return nil, errors.NewConfigurationError("OpenWeatherMap API key is required", nil)
	}

	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenWeatherMapBaseURL
	}
	searchLimit := params.SearchLimit
	if searchLimit <= 0 {
		searchLimit = 5
	}
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	maxFailures := params.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweathermap",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     params.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
	})

	return &OpenWeatherMapGateway{
		apiKey:      params.APIKey,
		searchLimit: searchLimit,
		client:      resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
		breaker:     breaker,
	}, nil
}

// FetchCurrent retrieves current conditions at coord
func (g *OpenWeatherMapGateway) FetchCurrent(ctx context.Context, coord ports.Coordinate) (*ports.WeatherResponse, error) {
	var response ports.WeatherResponse
	found, err := g.get(ctx, currentWeatherPath, g.coordinateParams(coord), &response)
	if err != nil || !found {
		return nil, err
	}
	return &response, nil
}

// FetchForecast retrieves the 5 day / 3 hour forecast at coord
func (g *OpenWeatherMapGateway) FetchForecast(ctx context.Context, coord ports.Coordinate) (*ports.ForecastResponse, error) {
	var response ports.ForecastResponse
	found, err := g.get(ctx, forecastPath, g.coordinateParams(coord), &response)
	if err != nil || !found {
		return nil, err
	}
	return &response, nil
}

// SearchByName geocodes query into at most searchLimit places
func (g *OpenWeatherMapGateway) SearchByName(ctx context.Context, query string) ([]ports.DirectLocationResponse, error) {
	params := map[string]string{
		"q":     query,
		"limit": strconv.Itoa(g.searchLimit),
		"appid": g.apiKey,
	}

	var response []ports.DirectLocationResponse
	found, err := g.get(ctx, directGeocodingPath, params, &response)
	if err != nil || !found {
		return nil, err
	}
	if response == nil {
		response = []ports.DirectLocationResponse{}
	}
	return response, nil
}

// GetGatewayName returns the name of this weather gateway
func (g *OpenWeatherMapGateway) GetGatewayName() string {
	return "openweathermap"
}

// BreakerState reports the circuit breaker state: closed, half-open or open
func (g *OpenWeatherMapGateway) BreakerState() string {
	return g.breaker.State().String()
}

func (g *OpenWeatherMapGateway) coordinateParams(coord ports.Coordinate) map[string]string {
	return map[string]string{
		"lat":   strconv.FormatFloat(coord.Latitude, 'f', -1, 64),
		"lon":   strconv.FormatFloat(coord.Longitude, 'f', -1, 64),
		"appid": g.apiKey,
		"units": metricUnits,
	}
}

// get decodes the body at path into target. found is false when the
// provider answered successfully with an empty body.
func (g *OpenWeatherMapGateway) get(ctx context.Context, path string, params map[string]string, target interface{}) (bool, error) {
	result, err := g.breaker.Execute(func() (interface{}, error) {
		resp, err := g.client.R().
			SetContext(ctx).
			SetQueryParams(params).
			Get(path)
		if err != nil {
			return nil, err
		}
		if !resp.IsSuccess() {
			return nil, fmt.Errorf("OpenWeatherMap %s returned status %d", path, resp.StatusCode())
		}
		return resp.Body(), nil
	})
	if err != nil {
		return false, errors.NewFetchFailedError(err)
	}

	body := bytes.TrimSpace(result.([]byte))
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return false, nil
	}

	if err := json.Unmarshal(body, target); err != nil {
		return false, errors.NewFetchFailedError(fmt.Errorf("decode OpenWeatherMap %s response: %w", path, err))
	}
	return true, nil
}
