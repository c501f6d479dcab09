package app

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"myweather.app/internal/config"
	"myweather.app/internal/core/weather"
)

const currentWeatherJSON = `{
	"weather": [{"main": "Clouds", "description": "overcast clouds", "icon": "04d"}],
	"main": {"temp": 30.63, "humidity": 78},
	"sys": {"country": "TH", "sunrise": 1756249495, "sunset": 1756294320},
	"name": "Example City"
}`

const forecastJSON = `{
	"cod": "200",
	"list": [{"dt": 1756296000, "main": {"temp": 31.2}, "dt_txt": "2025-08-27 12:00:00"}],
	"city": {"name": "Example City", "country": "TH"}
}`

func testAppConfig(baseURL string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 18080},
		Weather: config.WeatherConfig{
			APIKey:                "test-key",
			BaseURL:               baseURL,
			SearchLimit:           5,
			RequestTimeoutSeconds: 2,
			RateLimitRPS:          100,
			RateLimitBurst:        10,
			BreakerMaxFailures:    5,
			BreakerTimeoutSeconds: 60,
			EnableLogging:         true,
			Language:              "en",
			Timezone:              "UTC",
			FallbackLatitude:      13.8461752070497,
			FallbackLongitude:     100.84000360685337,
		},
		Location:  config.LocationConfig{Provider: config.LocationProviderNone},
		Publisher: config.PublisherConfig{Type: config.PublisherTypeLog, Channel: "myweather:state"},
		Log:       config.LogConfig{Level: "debug"},
	}
}

func newTestApplication(t *testing.T, cfg *config.Config) *Application {
	t.Helper()
	gin.SetMode(gin.TestMode)

	deps, err := NewDependencyContainer(cfg, WithLogOutput(io.Discard))
	require.NoError(t, err)

	application, err := NewApplicationWithDependencies(cfg, deps)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = deps.Cleanup()
	})
	return application
}

func fetchState(t *testing.T, router http.Handler) weather.UiState {
	t.Helper()
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/state", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var state weather.UiState
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &state))
	return state
}

func post(router http.Handler, target string) int {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, target, nil))
	return recorder.Code
}

func TestApplication_ProviderFailureSurfacesFixedMessage(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer provider.Close()

	application := newTestApplication(t, testAppConfig(provider.URL))
	router := application.GetRouter()

	assert.Equal(t, http.StatusAccepted, post(router, "/api/weather/current"))

	require.Eventually(t, func() bool {
		state := fetchState(t, router)
		return !state.IsLoading && state.ErrorMessage != nil
	}, 3*time.Second, 20*time.Millisecond)

	state := fetchState(t, router)
	assert.Equal(t, "Failed to fetch weather data", *state.ErrorMessage)
	assert.Nil(t, state.DailyWeather)
	assert.True(t, state.LocationFallback)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, recorder.Body.String(), `weather_gateway_calls_total{operation="fetch_current",outcome="failure"} 1`)
	assert.Contains(t, recorder.Body.String(), "weather_location_fallbacks_total 1")
}

func TestApplication_RefreshPipeline(t *testing.T) {
	var lastQuery atomic.Value
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastQuery.Store(r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/data/2.5/weather":
			_, _ = w.Write([]byte(currentWeatherJSON))
		case "/data/2.5/forecast":
			_, _ = w.Write([]byte(forecastJSON))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer provider.Close()

	cfg := testAppConfig(provider.URL)
	lat, lon := 18.79, 98.98
	cfg.Location = config.LocationConfig{Provider: config.LocationProviderStatic, Latitude: &lat, Longitude: &lon}

	application := newTestApplication(t, cfg)
	router := application.GetRouter()

	assert.Equal(t, http.StatusAccepted, post(router, "/api/weather/load"))

	require.Eventually(t, func() bool {
		state := fetchState(t, router)
		return !state.IsLoading && state.DailyWeather != nil && state.Forecast != nil
	}, 3*time.Second, 20*time.Millisecond)

	state := fetchState(t, router)
	assert.Nil(t, state.ErrorMessage)
	assert.False(t, state.LocationFallback)
	assert.Equal(t, "Example City", state.DailyWeather.City)
	assert.Equal(t, "30.63", state.DailyWeather.TemperatureC)
	assert.Equal(t, "https://openweathermap.org/img/wn/04d@2x.png", state.DailyWeather.IconURL)
	assert.Equal(t, "23:04", state.DailyWeather.Sunrise)
	require.Len(t, state.Forecast.Intervals, 1)
	assert.Equal(t, "31.2", state.Forecast.Intervals[0].TemperatureC)
	assert.Contains(t, lastQuery.Load().(string), "lat=18.79")
}

func TestApplication_Health(t *testing.T) {
	application := newTestApplication(t, testAppConfig("http://127.0.0.1:1"))

	recorder := httptest.NewRecorder()
	application.GetRouter().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.True(t, strings.Contains(body, `"breaker":"closed"`), body)
	assert.Contains(t, body, "statePublisher")
}

func TestApplication_RelaysStateToRedis(t *testing.T) {
	mockRedis := miniredis.RunT(t)
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer provider.Close()

	cfg := testAppConfig(provider.URL)
	cfg.Publisher = config.PublisherConfig{
		Type:    config.PublisherTypeRedis,
		Channel: "myweather:state",
		Redis: config.RedisConfig{
			Addr:         mockRedis.Addr(),
			DialTimeout:  1,
			ReadTimeout:  1,
			WriteTimeout: 1,
		},
	}

	client := redis.NewClient(&redis.Options{Addr: mockRedis.Addr()})
	defer client.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sub := client.Subscribe(ctx, "myweather:state")
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	application := newTestApplication(t, cfg)
	application.startBackground(ctx)

	var settled weather.UiState
	messages := sub.Channel()
	for {
		select {
		case msg := <-messages:
			var state weather.UiState
			require.NoError(t, json.Unmarshal([]byte(msg.Payload), &state))
			if !state.IsLoading && state.ErrorMessage != nil {
				settled = state
			}
		case <-ctx.Done():
			t.Fatal("no settled state published")
		}
		if settled.ErrorMessage != nil {
			break
		}
	}

	assert.Equal(t, "Failed to fetch weather data", *settled.ErrorMessage)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()
	assert.NoError(t, application.Shutdown(shutdownCtx))
}

func TestApplication_ShutdownEndsOpenStateStreams(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer provider.Close()

	application := newTestApplication(t, testAppConfig(provider.URL))

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	served := make(chan error, 1)
	go func() {
		served <- application.serve(context.Background(), listener)
	}()

	resp, err := http.Get("http://" + listener.Addr().String() + "/api/state/stream")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	reader := bufio.NewReader(resp.Body)
	for {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		if strings.HasPrefix(line, "data:") {
			break
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	started := time.Now()
	require.NoError(t, application.Shutdown(shutdownCtx))
	assert.Less(t, time.Since(started), 2*time.Second)

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("server did not stop serving")
	}

	_, err = io.Copy(io.Discard, reader)
	assert.NoError(t, err)
}

func TestNewDependencyContainer_InvalidConfig(t *testing.T) {
	_, err := NewDependencyContainer(nil)
	assert.Error(t, err)

	cfg := testAppConfig("http://localhost")
	cfg.Weather.APIKey = ""
	_, err = NewDependencyContainer(cfg, WithLogOutput(io.Discard))
	assert.Error(t, err)

	cfg = testAppConfig("http://localhost")
	cfg.Location = config.LocationConfig{Provider: config.LocationProviderStatic}
	_, err = NewDependencyContainer(cfg, WithLogOutput(io.Discard))
	assert.Error(t, err)
}
