package weather

import (
	"fmt"

	"myweather.app/internal/ports"
	"myweather.app/pkg/validation"
)

// WeatherIntervalView is the display shape of weather at one point in time
type WeatherIntervalView struct {
	ConditionSummary string `json:"conditionSummary"`
	TemperatureC     string `json:"temperatureC"`
	HumidityPct      string `json:"humidityPct"`
	WindSpeedKmh     string `json:"windSpeedKmh"`
	Description      string `json:"description"`
	FeelsLikeC       string `json:"feelsLikeC"`
	TempMaxC         string `json:"tempMaxC"`
	TempMinC         string `json:"tempMinC"`
	IconURL          string `json:"iconUrl"`
}

// CurrentWeatherView is the display shape of the current conditions at a place
type CurrentWeatherView struct {
	City    string `json:"city"`
	Country string `json:"country"`
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
	WeatherIntervalView
}

// ForecastView holds one midday interval per forecast day
type ForecastView struct {
	City      *ports.ForecastCity   `json:"city"`
	Intervals []WeatherIntervalView `json:"intervals"`
}

// SearchResultView is a geocoding match the user can pick
type SearchResultView struct {
	Name          string  `json:"name"`
	LocalizedName string  `json:"localizedName"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Country       string  `json:"country"`
	State         string  `json:"state"`
}

// Coordinate returns the position of the search result
func (s SearchResultView) Coordinate() ports.Coordinate {
	return ports.Coordinate{Latitude: s.Latitude, Longitude: s.Longitude}
}

// UiState is an immutable snapshot of everything the presentation layer renders.
// Values are replaced wholesale by reducers, never mutated in place.
type UiState struct {
	DailyWeather     *CurrentWeatherView `json:"dailyWeather"`
	Forecast         *ForecastView       `json:"forecast"`
	SearchResults    []SearchResultView  `json:"searchResults"`
	IsLoading        bool                `json:"isLoading"`
	ErrorMessage     *string             `json:"errorMessage"`
	LocationFallback bool                `json:"locationFallback"`

	// number of operations between begin and settle
	pending int
}

// InitialState is the state before any operation has run
func InitialState() UiState {
	return UiState{IsLoading: true}
}

// SearchRequest represents a geocoding search by city name
type SearchRequest struct {
	Query string
}

// IsValid validates search request
func (sr *SearchRequest) IsValid() error {
	if !validation.IsNotEmpty(sr.Query) {
		return fmt.Errorf("query cannot be empty")
	}
	if !validation.IsValidCityQuery(sr.Query) {
		return fmt.Errorf("query must be at most %d printable characters", validation.MaxCityQueryLength)
	}
	return nil
}

// Normalize trims the query for consistent processing
func (sr *SearchRequest) Normalize() {
	sr.Query, _ = validation.TrimAndValidate(sr.Query)
}
