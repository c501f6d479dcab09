package external

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"myweather.app/internal/mocks"
	"myweather.app/internal/ports"
	apperrors "myweather.app/pkg/errors"
)

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

type testLogger struct {
	entries []logEntry
}

func (l *testLogger) log(level, msg string, fields []ports.Field) {
	entry := logEntry{level: level, message: msg, fields: map[string]interface{}{}}
	for _, f := range fields {
		entry.fields[f.Key] = f.Value
	}
	l.entries = append(l.entries, entry)
}

func (l *testLogger) Debug(msg string, fields ...ports.Field) { l.log("DEBUG", msg, fields) }
func (l *testLogger) Info(msg string, fields ...ports.Field)  { l.log("INFO", msg, fields) }
func (l *testLogger) Warn(msg string, fields ...ports.Field)  { l.log("WARN", msg, fields) }
func (l *testLogger) Error(msg string, fields ...ports.Field) { l.log("ERROR", msg, fields) }

func TestWeatherGatewayLoggingDecorator_FetchCurrent(t *testing.T) {
	gateway := mocks.NewWeatherGateway(t)
	logger := &testLogger{}
	coord := ports.Coordinate{Latitude: 13.75, Longitude: 100.5}
	city := "Bangkok"

	gateway.EXPECT().GetGatewayName().Return("openweathermap")
	gateway.EXPECT().FetchCurrent(mock.Anything, coord).Return(&ports.WeatherResponse{Name: &city}, nil)

	decorator := NewWeatherGatewayLoggingDecorator(gateway, logger)
	response, err := decorator.FetchCurrent(context.Background(), coord)

	require.NoError(t, err)
	assert.Equal(t, "Bangkok", *response.Name)
	require.Len(t, logger.entries, 2)

	request := logger.entries[0]
	assert.Equal(t, "INFO", request.level)
	assert.Equal(t, "Weather API request started", request.message)
	assert.Equal(t, "openweathermap", request.fields["gateway"])
	assert.Equal(t, "fetch_current", request.fields["operation"])
	assert.Equal(t, "request", request.fields["event"])
	assert.Equal(t, 13.75, request.fields["latitude"])

	result := logger.entries[1]
	assert.Equal(t, "Weather API request completed", result.message)
	assert.Equal(t, "response", result.fields["event"])
	assert.Equal(t, false, result.fields["empty"])
	assert.Contains(t, result.fields, "duration_ms")

	assert.Equal(t, "logged(openweathermap)", decorator.GetGatewayName())
}

func TestWeatherGatewayLoggingDecorator_Error(t *testing.T) {
	gateway := mocks.NewWeatherGateway(t)
	logger := &testLogger{}

	gateway.EXPECT().GetGatewayName().Return("openweathermap")
	gateway.EXPECT().FetchForecast(mock.Anything, mock.Anything).Return(nil, apperrors.NewFetchFailedError(errors.New("status 500")))

	decorator := NewWeatherGatewayLoggingDecorator(gateway, logger)
	response, err := decorator.FetchForecast(context.Background(), ports.Coordinate{})

	assert.Nil(t, response)
	assert.True(t, apperrors.IsFetchFailedError(err))
	require.Len(t, logger.entries, 2)

	failure := logger.entries[1]
	assert.Equal(t, "ERROR", failure.level)
	assert.Equal(t, "Weather API request failed", failure.message)
	assert.Equal(t, "error", failure.fields["event"])
	assert.Equal(t, "fetch_forecast", failure.fields["operation"])
	assert.Contains(t, failure.fields["error"], "status 500")
}

func TestWeatherGatewayLoggingDecorator_SearchEmptyBody(t *testing.T) {
	gateway := mocks.NewWeatherGateway(t)
	logger := &testLogger{}

	gateway.EXPECT().GetGatewayName().Return("openweathermap")
	gateway.EXPECT().SearchByName(mock.Anything, "Paris").Return(nil, nil)

	decorator := NewWeatherGatewayLoggingDecorator(gateway, logger)
	results, err := decorator.SearchByName(context.Background(), "Paris")

	assert.NoError(t, err)
	assert.Nil(t, results)
	require.Len(t, logger.entries, 2)
	assert.Equal(t, "Paris", logger.entries[0].fields["query"])
	assert.Equal(t, true, logger.entries[1].fields["empty"])
}

func TestRateLimitedWeatherGateway_Delegates(t *testing.T) {
	gateway := mocks.NewWeatherGateway(t)
	coord := ports.Coordinate{Latitude: 1, Longitude: 2}

	gateway.EXPECT().FetchCurrent(mock.Anything, coord).Return(&ports.WeatherResponse{}, nil)
	gateway.EXPECT().FetchForecast(mock.Anything, coord).Return(&ports.ForecastResponse{}, nil)
	gateway.EXPECT().SearchByName(mock.Anything, "Lyon").Return([]ports.DirectLocationResponse{}, nil)
	gateway.EXPECT().GetGatewayName().Return("openweathermap")

	limited := NewRateLimitedWeatherGateway(gateway, 100, 3)
	ctx := context.Background()

	_, err := limited.FetchCurrent(ctx, coord)
	assert.NoError(t, err)
	_, err = limited.FetchForecast(ctx, coord)
	assert.NoError(t, err)
	_, err = limited.SearchByName(ctx, "Lyon")
	assert.NoError(t, err)
	assert.Equal(t, "rate_limited(openweathermap)", limited.GetGatewayName())
}

func TestRateLimitedWeatherGateway_CancelledWaitFails(t *testing.T) {
	gateway := mocks.NewWeatherGateway(t)
	limited := NewRateLimitedWeatherGateway(gateway, 0.001, 1)

	gateway.EXPECT().SearchByName(mock.Anything, "first").Return([]ports.DirectLocationResponse{}, nil).Once()
	_, err := limited.SearchByName(context.Background(), "first")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = limited.SearchByName(ctx, "second")
	assert.True(t, apperrors.IsFetchFailedError(err))
	gateway.AssertNotCalled(t, "SearchByName", mock.Anything, "second")
}

func TestInstrumentedWeatherGateway_RecordsOutcomes(t *testing.T) {
	gateway := mocks.NewWeatherGateway(t)
	metrics := mocks.NewMetricsCollector(t)

	gateway.EXPECT().FetchCurrent(mock.Anything, mock.Anything).Return(&ports.WeatherResponse{}, nil)
	gateway.EXPECT().FetchForecast(mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
	gateway.EXPECT().SearchByName(mock.Anything, mock.Anything).Return(nil, nil)
	gateway.EXPECT().GetGatewayName().Return("openweathermap")

	metrics.EXPECT().RecordGatewayCall(mock.Anything, "fetch_current", "success", mock.Anything).Once()
	metrics.EXPECT().RecordGatewayCall(mock.Anything, "fetch_forecast", "failure", mock.Anything).Once()
	metrics.EXPECT().RecordGatewayCall(mock.Anything, "search_by_name", "empty", mock.Anything).Once()

	instrumented := NewInstrumentedWeatherGateway(gateway, metrics)
	ctx := context.Background()

	_, err := instrumented.FetchCurrent(ctx, ports.Coordinate{})
	assert.NoError(t, err)
	_, err = instrumented.FetchForecast(ctx, ports.Coordinate{})
	assert.Error(t, err)
	_, err = instrumented.SearchByName(ctx, "x")
	assert.NoError(t, err)
	assert.Equal(t, "openweathermap", instrumented.GetGatewayName())
}
