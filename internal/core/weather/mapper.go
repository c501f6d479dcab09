package weather

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"myweather.app/internal/ports"
)

const (
	iconURLFormat   = "https://openweathermap.org/img/wn/%s@2x.png"
	missingNumber   = "-"
	noonMarker      = "12:00:00"
	unknownName     = "Unknown"
	fallbackLang    = "en"
	clockLayout     = "15:04"
	unresolvedAxis  = -1.0
	excludedCountry = "ID"
)

// Mapper converts provider responses into view models
type Mapper struct {
	location *time.Location
	language string
}

// NewMapper creates a mapper rendering clock times in loc and picking localized names for language
func NewMapper(loc *time.Location, language string) *Mapper {
	if loc == nil {
		loc = time.Local
	}
	return &Mapper{location: loc, language: language}
}

// CurrentWeather maps a current-weather response. Absent fields degrade to sentinels.
func (m *Mapper) CurrentWeather(r *ports.WeatherResponse) CurrentWeatherView {
	if r == nil {
		r = &ports.WeatherResponse{}
	}

	view := CurrentWeatherView{
		City:                stringOrEmpty(r.Name),
		WeatherIntervalView: intervalView(r.Weather, r.Main, r.Wind),
	}
	if r.Sys != nil {
		view.Country = stringOrEmpty(r.Sys.Country)
		view.Sunrise = m.clock(r.Sys.Sunrise)
		view.Sunset = m.clock(r.Sys.Sunset)
	}
	return view
}

// Forecast keeps the noon sample of every day in provider order
func (m *Mapper) Forecast(r *ports.ForecastResponse) ForecastView {
	view := ForecastView{Intervals: []WeatherIntervalView{}}
	if r == nil {
		return view
	}

	view.City = r.City
	for _, item := range r.List {
		if item == nil || item.DtTxt == nil || !strings.Contains(*item.DtTxt, noonMarker) {
			continue
		}
		view.Intervals = append(view.Intervals, intervalView(item.Weather, item.Main, item.Wind))
	}
	return view
}

// SearchResults maps geocoding matches, dropping unresolved coordinates and excluded countries
func (m *Mapper) SearchResults(entries []ports.DirectLocationResponse) []SearchResultView {
	results := make([]SearchResultView, 0, len(entries))
	for _, e := range entries {
		view := SearchResultView{
			Name:          stringOrEmpty(e.Name),
			LocalizedName: LocalName(e.LocalNames, m.language),
			Latitude:      floatOr(e.Lat, unresolvedAxis),
			Longitude:     floatOr(e.Lon, unresolvedAxis),
			Country:       stringOrEmpty(e.Country),
			State:         stringOrEmpty(e.State),
		}
		if view.Latitude == unresolvedAxis || view.Longitude == unresolvedAxis {
			continue
		}
		if view.Country == excludedCountry {
			continue
		}
		results = append(results, view)
	}
	return results
}

// LocalName picks the name for language, then English, then "Unknown"
func LocalName(names map[string]string, language string) string {
	if name, ok := names[language]; ok {
		return name
	}
	if name, ok := names[fallbackLang]; ok {
		return name
	}
	return unknownName
}

// IconURL builds the provider icon address; a missing code is rendered literally as "null"
func IconURL(icon *string) string {
	code := "null"
	if icon != nil {
		code = *icon
	}
	return fmt.Sprintf(iconURLFormat, code)
}

func intervalView(conditions []*ports.WeatherCondition, main *ports.MainMetrics, wind *ports.Wind) WeatherIntervalView {
	var first *ports.WeatherCondition
	if len(conditions) > 0 {
		first = conditions[0]
	}
	if first == nil {
		first = &ports.WeatherCondition{}
	}
	if main == nil {
		main = &ports.MainMetrics{}
	}
	if wind == nil {
		wind = &ports.Wind{}
	}

	return WeatherIntervalView{
		ConditionSummary: stringOrEmpty(first.Main),
		TemperatureC:     number(main.Temp),
		HumidityPct:      integer(main.Humidity),
		WindSpeedKmh:     number(wind.Speed),
		Description:      stringOrEmpty(first.Description),
		FeelsLikeC:       number(main.FeelsLike),
		TempMaxC:         number(main.TempMax),
		TempMinC:         number(main.TempMin),
		IconURL:          IconURL(first.Icon),
	}
}

func (m *Mapper) clock(unix *int64) string {
	if unix == nil {
		return ""
	}
	return time.Unix(*unix, 0).In(m.location).Format(clockLayout)
}

// number renders a reading in its shortest form, keeping one decimal for
// whole values so 30 reads "30.0".
func number(v *float64) string {
	if v == nil {
		return missingNumber
	}
	formatted := strconv.FormatFloat(*v, 'f', -1, 64)
	if math.IsNaN(*v) || math.IsInf(*v, 0) || math.Trunc(*v) != *v {
		return formatted
	}
	return formatted + ".0"
}

func integer(v *int) string {
	if v == nil {
		return missingNumber
	}
	return strconv.Itoa(*v)
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
