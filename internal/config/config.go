package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/text/language"
	"myweather.app/pkg/errors"
	"myweather.app/pkg/validation"
)

const (
	maxRedisDB        = 15
	maxPortNumber     = 65535
	maxSearchLimit    = 5
	maxTimeoutSeconds = 120
	defaultLanguage   = "en"
)

// Config represents the application configuration structure
type Config struct {
	Server    ServerConfig    `split_words:"true"`
	Weather   WeatherConfig   `split_words:"true"`
	Location  LocationConfig  `split_words:"true"`
	Publisher PublisherConfig `split_words:"true"`
	Log       LogConfig       `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type WeatherConfig struct {
	APIKey                string  `envconfig:"OPENWEATHERMAP_API_KEY" required:"true"`
	BaseURL               string  `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org"`
	SearchLimit           int     `envconfig:"WEATHER_SEARCH_LIMIT" default:"5"`
	RequestTimeoutSeconds int     `envconfig:"WEATHER_REQUEST_TIMEOUT_SECONDS" default:"10"`
	RateLimitRPS          float64 `envconfig:"WEATHER_RATE_LIMIT_RPS" default:"5"`
	RateLimitBurst        int     `envconfig:"WEATHER_RATE_LIMIT_BURST" default:"5"`
	BreakerMaxFailures    uint32  `envconfig:"WEATHER_BREAKER_MAX_FAILURES" default:"5"`
	BreakerTimeoutSeconds int     `envconfig:"WEATHER_BREAKER_TIMEOUT_SECONDS" default:"60"`
	EnableLogging         bool    `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	Language              string  `envconfig:"WEATHER_LANGUAGE"`
	SystemLocale          string  `envconfig:"LANG"`
	Timezone              string  `envconfig:"WEATHER_TIMEZONE" default:"Local"`
	FallbackLatitude      float64 `envconfig:"WEATHER_FALLBACK_LATITUDE" default:"13.8461752070497"`
	FallbackLongitude     float64 `envconfig:"WEATHER_FALLBACK_LONGITUDE" default:"100.84000360685337"`
}

// DeviceLanguage returns the base language code used to pick localized names.
// WEATHER_LANGUAGE wins over the system locale; both fall back to "en".
func (w WeatherConfig) DeviceLanguage() string {
	if lang := ResolveLanguage(w.Language); lang != "" {
		return lang
	}
	if lang := ResolveLanguage(w.SystemLocale); lang != "" {
		return lang
	}
	return defaultLanguage
}

// TimeLocation returns the zone used to render sunrise and sunset
func (w WeatherConfig) TimeLocation() (*time.Location, error) {
	if w.Timezone == "" || w.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(w.Timezone)
}

// ResolveLanguage turns a locale such as "th_TH.UTF-8" or "pt-BR" into its
// base language code. Unparseable or POSIX "C" locales yield "".
func ResolveLanguage(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || strings.EqualFold(locale, "C") || strings.EqualFold(locale, "POSIX") {
		return ""
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return ""
	}
	return base.String()
}

// LocationProviderType selects the device location source
type LocationProviderType int

const (
	LocationProviderUnknown LocationProviderType = iota
	LocationProviderNone
	LocationProviderStatic
	LocationProviderIP
)

// String returns the string representation of the provider type
func (l LocationProviderType) String() string {
	switch l {
	case LocationProviderNone:
		return "none"
	case LocationProviderStatic:
		return "static"
	case LocationProviderIP:
		return "ip"
	default:
		return "unknown"
	}
}

// IsValid checks if the provider type is valid
func (l LocationProviderType) IsValid() bool {
	return l == LocationProviderNone || l == LocationProviderStatic || l == LocationProviderIP
}

// LocationProviderTypeFromString converts string to LocationProviderType enum
func LocationProviderTypeFromString(s string) LocationProviderType {
	switch strings.ToLower(s) {
	case "none":
		return LocationProviderNone
	case "static":
		return LocationProviderStatic
	case "ip":
		return LocationProviderIP
	default:
		return LocationProviderUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (l *LocationProviderType) UnmarshalText(text []byte) error {
	*l = LocationProviderTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (l LocationProviderType) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

type LocationConfig struct {
	Provider  LocationProviderType `envconfig:"LOCATION_PROVIDER" default:"none"`
	Latitude  *float64             `envconfig:"LOCATION_LATITUDE"`
	Longitude *float64             `envconfig:"LOCATION_LONGITUDE"`
	IPBaseURL string               `envconfig:"LOCATION_IP_BASE_URL" default:"http://ip-api.com"`
}

// PublisherType selects where state snapshots are relayed
type PublisherType int

const (
	PublisherTypeUnknown PublisherType = iota
	PublisherTypeLog
	PublisherTypeRedis
)

// String returns the string representation of publisher type
func (p PublisherType) String() string {
	switch p {
	case PublisherTypeLog:
		return "log"
	case PublisherTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the publisher type is valid
func (p PublisherType) IsValid() bool {
	return p == PublisherTypeLog || p == PublisherTypeRedis
}

// PublisherTypeFromString converts string to PublisherType enum
func PublisherTypeFromString(s string) PublisherType {
	switch strings.ToLower(s) {
	case "log":
		return PublisherTypeLog
	case "redis":
		return PublisherTypeRedis
	default:
		return PublisherTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (p *PublisherType) UnmarshalText(text []byte) error {
	*p = PublisherTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (p PublisherType) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

type PublisherConfig struct {
	Type    PublisherType `envconfig:"STATE_PUBLISHER" default:"log"`
	Channel string        `envconfig:"STATE_CHANNEL" default:"myweather:state"`
	Redis   RedisConfig   `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type LogConfig struct {
	Level    string `envconfig:"LOG_LEVEL" default:"info"`
	FilePath string `envconfig:"LOG_FILE_PATH"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Location.Validate(); err != nil {
		return err
	}
	if err := c.Publisher.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if strings.TrimSpace(w.APIKey) == "" {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_KEY cannot be empty", nil)
	}
	if !isHTTPURL(w.BaseURL) {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_BASE_URL must start with http:// or https://", nil)
	}
	if w.SearchLimit < 1 || w.SearchLimit > maxSearchLimit {
		return errors.NewConfigurationError(fmt.Sprintf("WEATHER_SEARCH_LIMIT must be between 1 and %d", maxSearchLimit), nil)
	}
	if w.RequestTimeoutSeconds < 1 || w.RequestTimeoutSeconds > maxTimeoutSeconds {
		return errors.NewConfigurationError("WEATHER_REQUEST_TIMEOUT_SECONDS must be between 1 and 120", nil)
	}
	if w.RateLimitRPS <= 0 {
		return errors.NewConfigurationError("WEATHER_RATE_LIMIT_RPS must be positive", nil)
	}
	if w.RateLimitBurst < 1 {
		return errors.NewConfigurationError("WEATHER_RATE_LIMIT_BURST must be at least 1", nil)
	}
	if w.BreakerMaxFailures < 1 {
		return errors.NewConfigurationError("WEATHER_BREAKER_MAX_FAILURES must be at least 1", nil)
	}
	if w.BreakerTimeoutSeconds < 1 {
		return errors.NewConfigurationError("WEATHER_BREAKER_TIMEOUT_SECONDS must be at least 1 second", nil)
	}
	if !validation.IsValidCoordinate(w.FallbackLatitude, w.FallbackLongitude) {
		return errors.NewConfigurationError("WEATHER_FALLBACK_LATITUDE/LONGITUDE must be a valid coordinate", nil)
	}
	if _, err := w.TimeLocation(); err != nil {
		return errors.NewConfigurationError(fmt.Sprintf("WEATHER_TIMEZONE %q is not a known zone", w.Timezone), err)
	}
	return nil
}

func (l *LocationConfig) Validate() error {
	if !l.Provider.IsValid() {
		return errors.NewConfigurationError("LOCATION_PROVIDER must be one of: none, static, ip", nil)
	}

	switch l.Provider {
	case LocationProviderStatic:
		if l.Latitude == nil || l.Longitude == nil {
			return errors.NewConfigurationError("LOCATION_LATITUDE and LOCATION_LONGITUDE are required for the static provider", nil)
		}
		if !validation.IsValidCoordinate(*l.Latitude, *l.Longitude) {
			return errors.NewConfigurationError("LOCATION_LATITUDE/LONGITUDE must be a valid coordinate", nil)
		}
	case LocationProviderIP:
		if !isHTTPURL(l.IPBaseURL) {
			return errors.NewConfigurationError("LOCATION_IP_BASE_URL must start with http:// or https://", nil)
		}
	}
	return nil
}

func (p *PublisherConfig) Validate() error {
	if !p.Type.IsValid() {
		return errors.NewConfigurationError("STATE_PUBLISHER must be one of: log, redis", nil)
	}
	if strings.TrimSpace(p.Channel) == "" {
		return errors.NewConfigurationError("STATE_CHANNEL cannot be empty", nil)
	}
	if p.Type == PublisherTypeRedis {
		return p.Redis.Validate()
	}
	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using the Redis publisher", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
}

func isHTTPURL(u string) bool {
	return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
}
