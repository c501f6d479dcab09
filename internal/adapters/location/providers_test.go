package location

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"myweather.app/internal/config"
	"myweather.app/internal/ports"
	"myweather.app/pkg/errors"
)

func newIPServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/json", r.URL.Path)
		assert.Equal(t, "status,message,lat,lon", r.URL.Query().Get("fields"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, err := w.Write([]byte(body))
		assert.NoError(t, err)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestStaticLocationProvider(t *testing.T) {
	provider := NewStaticLocationProvider(18.79, 98.98)

	position, err := provider.LastKnownPosition(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &ports.Coordinate{Latitude: 18.79, Longitude: 98.98}, position)
	assert.Equal(t, "static", provider.GetProviderName())

	position.Latitude = 0
	again, _ := provider.LastKnownPosition(context.Background())
	assert.Equal(t, 18.79, again.Latitude)
}

func TestNoLocationProvider(t *testing.T) {
	provider := NewNoLocationProvider()

	position, err := provider.LastKnownPosition(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, position)
	assert.Equal(t, "none", provider.GetProviderName())
}

func TestIPLocationProvider_LastKnownPosition(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		want      *ports.Coordinate
		expectErr bool
	}{
		{name: "Success", status: http.StatusOK, body: `{"status":"success","lat":13.7563,"lon":100.5018}`, want: &ports.Coordinate{Latitude: 13.7563, Longitude: 100.5018}},
		{name: "ReservedRange", status: http.StatusOK, body: `{"status":"fail","message":"reserved range"}`, expectErr: true},
		{name: "ServerError", status: http.StatusInternalServerError, body: `{}`, expectErr: true},
		{name: "MissingCoordinates", status: http.StatusOK, body: `{"status":"success"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newIPServer(t, tt.status, tt.body)
			provider := NewIPLocationProvider(IPLocationProviderParams{BaseURL: server.URL, Timeout: time.Second})

			position, err := provider.LastKnownPosition(context.Background())

			if tt.expectErr {
				require.Error(t, err)
				assert.Equal(t, errors.ErrorTypeExternalAPI, errors.TypeOf(err))
				assert.Nil(t, position)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, position)
		})
	}
}

func TestIPLocationProvider_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	provider := NewIPLocationProvider(IPLocationProviderParams{BaseURL: baseURL, Timeout: time.Second})
	_, err := provider.LastKnownPosition(context.Background())

	assert.Error(t, err)
	assert.Equal(t, "ip", provider.GetProviderName())
}

func TestLocationProviderFactory_CreateLocationProvider(t *testing.T) {
	factory := NewLocationProviderFactory()
	lat, lon := 13.85, 100.84

	tests := []struct {
		name         string
		config       *config.LocationConfig
		expectError  bool
		expectedType string
	}{
		{name: "NilConfig", config: nil, expectError: true},
		{name: "None", config: &config.LocationConfig{Provider: config.LocationProviderNone}, expectedType: "*location.NoLocationProvider"},
		{name: "Static", config: &config.LocationConfig{Provider: config.LocationProviderStatic, Latitude: &lat, Longitude: &lon}, expectedType: "*location.StaticLocationProvider"},
		{name: "StaticWithoutCoordinates", config: &config.LocationConfig{Provider: config.LocationProviderStatic}, expectError: true},
		{name: "IP", config: &config.LocationConfig{Provider: config.LocationProviderIP, IPBaseURL: "http://localhost"}, expectedType: "*location.IPLocationProvider"},
		{name: "Unknown", config: &config.LocationConfig{Provider: config.LocationProviderUnknown}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := factory.CreateLocationProvider(tt.config, time.Second)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, provider)
				assert.True(t, errors.IsConfigurationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedType, fmt.Sprintf("%T", provider))
		})
	}
}
