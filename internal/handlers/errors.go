package handlers

import (
	"errors"
	"log"
	"net/http"

	"horizons/internal/middleware"
	"horizons/internal/models"

	"github.com/gin-gonic/gin"
)

// statusClientClosedRequest is nginx's code for a client that went away.
const statusClientClosedRequest = 499

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidQuery):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrMalformedResponse), errors.Is(err, models.ErrService):
		return http.StatusBadGateway
	case errors.Is(err, models.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, models.ErrCancelled):
		return statusClientClosedRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Printf("request %s failed: %v", c.GetString(middleware.RequestIDKey), err)
	}
	text := http.StatusText(status)
	if status == statusClientClosedRequest {
		text = "Client Closed Request"
	}
	c.JSON(status, gin.H{
		"error":      text,
		"message":    err.Error(),
		"request_id": c.GetString(middleware.RequestIDKey),
	})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "bad request",
		"message": message,
	})
}
