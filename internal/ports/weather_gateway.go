package ports

import "context"

// Coordinate is a WGS84 position in decimal degrees
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeoPoint is the provider's coordinate object
type GeoPoint struct {
	Lon *float64 `json:"lon"`
	Lat *float64 `json:"lat"`
}

// WeatherCondition is one entry of the provider's "weather" array
type WeatherCondition struct {
	ID          *int    `json:"id"`
	Main        *string `json:"main"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

// MainMetrics holds temperature, pressure and humidity readings
type MainMetrics struct {
	Temp      *float64 `json:"temp"`
	FeelsLike *float64 `json:"feels_like"`
	TempMin   *float64 `json:"temp_min"`
	TempMax   *float64 `json:"temp_max"`
	Pressure  *float64 `json:"pressure"`
	Humidity  *int     `json:"humidity"`
	SeaLevel  *float64 `json:"sea_level"`
	GrndLevel *float64 `json:"grnd_level"`
	TempKf    *float64 `json:"temp_kf"`
}

// Wind holds wind readings as delivered by the provider
type Wind struct {
	Speed *float64 `json:"speed"`
	Deg   *float64 `json:"deg"`
	Gust  *float64 `json:"gust"`
}

// Clouds holds cloudiness percentage
type Clouds struct {
	All *int `json:"all"`
}

// Precipitation holds rain or snow volume for the last 1h/3h
type Precipitation struct {
	OneHour    *float64 `json:"1h"`
	ThreeHours *float64 `json:"3h"`
}

// WeatherSys holds country and sun times of a current-weather response
type WeatherSys struct {
	Type    *int    `json:"type"`
	ID      *int    `json:"id"`
	Country *string `json:"country"`
	Sunrise *int64  `json:"sunrise"`
	Sunset  *int64  `json:"sunset"`
}

// WeatherResponse is the current-weather payload (data/2.5/weather)
type WeatherResponse struct {
	Coord      *GeoPoint           `json:"coord"`
	Weather    []*WeatherCondition `json:"weather"`
	Base       *string             `json:"base"`
	Main       *MainMetrics        `json:"main"`
	Visibility *int                `json:"visibility"`
	Wind       *Wind               `json:"wind"`
	Clouds     *Clouds             `json:"clouds"`
	Rain       *Precipitation      `json:"rain"`
	Dt         *int64              `json:"dt"`
	Sys        *WeatherSys         `json:"sys"`
	Timezone   *int                `json:"timezone"`
	ID         *int64              `json:"id"`
	Name       *string             `json:"name"`
	Cod        *int                `json:"cod"`
}

// ForecastSys holds the part-of-day marker of a forecast sample
type ForecastSys struct {
	Pod *string `json:"pod"`
}

// ForecastItem is one 3-hour sample of the forecast list
type ForecastItem struct {
	Dt         *int64              `json:"dt"`
	Main       *MainMetrics        `json:"main"`
	Weather    []*WeatherCondition `json:"weather"`
	Clouds     *Clouds             `json:"clouds"`
	Wind       *Wind               `json:"wind"`
	Visibility *int                `json:"visibility"`
	Pop        *float64            `json:"pop"`
	Rain       *Precipitation      `json:"rain"`
	Sys        *ForecastSys        `json:"sys"`
	DtTxt      *string             `json:"dt_txt"`
}

// ForecastCity describes the place a forecast was computed for
type ForecastCity struct {
	ID         *int64    `json:"id,omitempty"`
	Name       *string   `json:"name,omitempty"`
	Coord      *GeoPoint `json:"coord,omitempty"`
	Country    *string   `json:"country,omitempty"`
	Population *int64    `json:"population,omitempty"`
	Timezone   *int      `json:"timezone,omitempty"`
	Sunrise    *int64    `json:"sunrise,omitempty"`
	Sunset     *int64    `json:"sunset,omitempty"`
}

// ForecastResponse is the 5 day / 3 hour payload (data/2.5/forecast)
type ForecastResponse struct {
	Cod     *string         `json:"cod"`
	Message *float64        `json:"message"`
	Cnt     *int            `json:"cnt"`
	List    []*ForecastItem `json:"list"`
	City    *ForecastCity   `json:"city"`
}

// DirectLocationResponse is one entry of the direct geocoding array
type DirectLocationResponse struct {
	Name       *string           `json:"name"`
	LocalNames map[string]string `json:"local_names"`
	Lat        *float64          `json:"lat"`
	Lon        *float64          `json:"lon"`
	Country    *string           `json:"country"`
	State      *string           `json:"state"`
}

// WeatherGateway defines the contract for the weather data provider.
// A nil result with a nil error means the provider answered successfully
// with an empty body.
type WeatherGateway interface {
	FetchCurrent(ctx context.Context, coord Coordinate) (*WeatherResponse, error)
	FetchForecast(ctx context.Context, coord Coordinate) (*ForecastResponse, error)
	SearchByName(ctx context.Context, query string) ([]DirectLocationResponse, error)
	GetGatewayName() string
}
