package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	errorspkg "myweather.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleError maps application errors onto HTTP status codes
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errorspkg.AppError
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	var statusCode int
	var message string

	switch appErr.Type {
	case errorspkg.ErrorTypeValidation:
		statusCode = http.StatusBadRequest
		message = appErr.Message
	case errorspkg.ErrorTypeNotFound:
		statusCode = http.StatusNotFound
		message = appErr.Message
	case errorspkg.ErrorTypeFetchFailed:
		statusCode = http.StatusBadGateway
		message = errorspkg.FetchFailedMessage
	case errorspkg.ErrorTypeExternalAPI:
		statusCode = http.StatusServiceUnavailable
		message = "External service unavailable"
	case errorspkg.ErrorTypeLocationUnavailable:
		statusCode = http.StatusServiceUnavailable
		message = "Device location unavailable"
	default:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	c.JSON(statusCode, ErrorResponse{Error: message})
}
