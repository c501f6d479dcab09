package weather

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchRequest_IsValid(t *testing.T) {
	tests := []struct {
		name    string
		request SearchRequest
		wantErr bool
		errMsg  string
	}{
		{name: "ValidQuery", request: SearchRequest{Query: "Bangkok"}},
		{name: "PaddedQuery", request: SearchRequest{Query: "  Bangkok  "}},
		{name: "EmptyQuery", request: SearchRequest{Query: ""}, wantErr: true, errMsg: "query cannot be empty"},
		{name: "WhitespaceOnly", request: SearchRequest{Query: "   "}, wantErr: true, errMsg: "query cannot be empty"},
		{name: "TooLong", request: SearchRequest{Query: strings.Repeat("x", 101)}, wantErr: true, errMsg: "at most 100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.IsValid()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSearchRequest_Normalize(t *testing.T) {
	request := SearchRequest{Query: "\t Chiang Mai \n"}
	request.Normalize()
	assert.Equal(t, "Chiang Mai", request.Query)
}

func TestInitialState(t *testing.T) {
	state := InitialState()

	assert.True(t, state.IsLoading)
	assert.Nil(t, state.DailyWeather)
	assert.Nil(t, state.Forecast)
	assert.Nil(t, state.SearchResults)
	assert.Nil(t, state.ErrorMessage)
	assert.False(t, state.LocationFallback)
}

func TestUiState_JSONShape(t *testing.T) {
	message := "Failed to fetch weather data"
	state := UiState{
		DailyWeather: &CurrentWeatherView{
			City:                "Example City",
			WeatherIntervalView: WeatherIntervalView{TemperatureC: "30.63"},
		},
		ErrorMessage: &message,
		pending:      2,
	}

	payload, err := json.Marshal(state)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &decoded))

	assert.Equal(t, message, decoded["errorMessage"])
	assert.Nil(t, decoded["forecast"])
	assert.Nil(t, decoded["searchResults"])
	assert.NotContains(t, decoded, "pending")
	daily := decoded["dailyWeather"].(map[string]interface{})
	assert.Equal(t, "Example City", daily["city"])
	assert.Equal(t, "30.63", daily["temperatureC"])
}
