package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"myweather.app/internal/ports"
	"myweather.app/pkg/errors"
)

// streamBuffer is how many snapshots a slow SSE client may lag behind
const streamBuffer = 4

// CoordinateRequest is the optional body of a refresh request
type CoordinateRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required,latitude"`
	Longitude *float64 `json:"longitude" binding:"required,longitude"`
}

// SearchRequest represents the query string of a location search
type SearchRequest struct {
	Query string `form:"q" binding:"required,cityquery"`
}

// AcceptedResponse acknowledges an operation whose result arrives through the state
type AcceptedResponse struct {
	Operation string `json:"operation"`
	Status    string `json:"status"`
}

// getState handles GET /api/state requests
func (s *HTTPServerAdapter) getState(c *gin.Context) {
	c.JSON(http.StatusOK, s.weatherUseCase.Snapshot())
}

// streamState handles GET /api/state/stream as server-sent events
func (s *HTTPServerAdapter) streamState(c *gin.Context) {
	updates, cancel := s.weatherUseCase.Subscribe(streamBuffer)
	defer cancel()

	slog.Debug("State stream opened", "remote", c.ClientIP())

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case state, ok := <-updates:
			if !ok {
				return false
			}
			c.SSEvent("state", state)
			return true
		}
	})

	slog.Debug("State stream closed", "remote", c.ClientIP())
}

// loadIfNeeded handles POST /api/weather/load requests
func (s *HTTPServerAdapter) loadIfNeeded(c *gin.Context) {
	ctx := context.WithoutCancel(c.Request.Context())
	s.dispatch(func() { s.weatherUseCase.LoadIfNeeded(ctx) })
	c.JSON(http.StatusAccepted, AcceptedResponse{Operation: "load_if_needed", Status: "accepted"})
}

// refreshCurrentWeather handles POST /api/weather/current requests
func (s *HTTPServerAdapter) refreshCurrentWeather(c *gin.Context) {
	override, ok := s.bindOverride(c)
	if !ok {
		return
	}

	ctx := context.WithoutCancel(c.Request.Context())
	s.dispatch(func() { s.weatherUseCase.RefreshCurrentWeather(ctx, override) })
	c.JSON(http.StatusAccepted, AcceptedResponse{Operation: "refresh_current_weather", Status: "accepted"})
}

// refreshForecast handles POST /api/weather/forecast requests
func (s *HTTPServerAdapter) refreshForecast(c *gin.Context) {
	override, ok := s.bindOverride(c)
	if !ok {
		return
	}

	ctx := context.WithoutCancel(c.Request.Context())
	s.dispatch(func() { s.weatherUseCase.RefreshForecast(ctx, override) })
	c.JSON(http.StatusAccepted, AcceptedResponse{Operation: "refresh_forecast", Status: "accepted"})
}

// searchLocations handles GET /api/locations/search requests
func (s *HTTPServerAdapter) searchLocations(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		slog.Debug("Search request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("q must be a non-empty city name of at most 100 characters"))
		return
	}

	ctx := context.WithoutCancel(c.Request.Context())
	s.dispatch(func() { s.weatherUseCase.SearchLocations(ctx, req.Query) })
	c.JSON(http.StatusAccepted, AcceptedResponse{Operation: "search_locations", Status: "accepted"})
}

// bindOverride reads an optional coordinate body. An empty body means
// "use the device position".
func (s *HTTPServerAdapter) bindOverride(c *gin.Context) (*ports.Coordinate, bool) {
	if c.Request.ContentLength == 0 {
		return nil, true
	}

	var req CoordinateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Debug("Coordinate binding error", "error", err)
		s.handleError(c, errors.NewValidationError("latitude and longitude must be a valid coordinate"))
		return nil, false
	}
	return &ports.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}, true
}

// getHealth handles GET /health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())

	status := "healthy"
	for _, result := range results {
		if result.Status != "healthy" {
			status = "degraded"
			break
		}
	}

	code := http.StatusOK
	if status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": status, "components": results})
}
