package handlers

import (
	"net/http"
	"time"

	"horizons/internal/service"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	status service.StatusService
}

func NewHealthHandler(status service.StatusService) *HealthHandler {
	return &HealthHandler{status: status}
}

func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"horizons":  h.status.Last(),
	})
}
