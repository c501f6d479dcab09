// Package location provides device position sources for the location gateway
package location

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"myweather.app/internal/ports"
	"myweather.app/pkg/errors"
)

// StaticLocationProvider always reports a configured position
type StaticLocationProvider struct {
	position ports.Coordinate
}

func NewStaticLocationProvider(latitude, longitude float64) *StaticLocationProvider {
	return &StaticLocationProvider{position: ports.Coordinate{Latitude: latitude, Longitude: longitude}}
}

func (p *StaticLocationProvider) LastKnownPosition(ctx context.Context) (*ports.Coordinate, error) {
	position := p.position
	return &position, nil
}

func (p *StaticLocationProvider) GetProviderName() string {
	return "static"
}

// NoLocationProvider models a device without a position fix
type NoLocationProvider struct{}

func NewNoLocationProvider() *NoLocationProvider {
	return &NoLocationProvider{}
}

func (p *NoLocationProvider) LastKnownPosition(ctx context.Context) (*ports.Coordinate, error) {
	return nil, nil
}

func (p *NoLocationProvider) GetProviderName() string {
	return "none"
}

// ipAPIResponse is the subset of the ip-api.com JSON answer we read
type ipAPIResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
}

// IPLocationProvider estimates the position from the public IP address
type IPLocationProvider struct {
	client *resty.Client
}

// IPLocationProviderParams holds parameters for creating the IP location provider
type IPLocationProviderParams struct {
	BaseURL string
	Timeout time.Duration
}

func NewIPLocationProvider(params IPLocationProviderParams) *IPLocationProvider {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "http://ip-api.com"
	}
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &IPLocationProvider{
		client: resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
	}
}

func (p *IPLocationProvider) LastKnownPosition(ctx context.Context) (*ports.Coordinate, error) {
	var result ipAPIResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("fields", "status,message,lat,lon").
		SetResult(&result).
		Get("/json")
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to call IP geolocation service", err)
	}
	if !resp.IsSuccess() {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("IP geolocation service returned status %d", resp.StatusCode()), nil)
	}
	if result.Status != "success" {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("IP geolocation failed: %s", result.Message), nil)
	}
	if result.Lat == nil || result.Lon == nil {
		return nil, nil
	}

	return &ports.Coordinate{Latitude: *result.Lat, Longitude: *result.Lon}, nil
}

func (p *IPLocationProvider) GetProviderName() string {
	return "ip"
}
