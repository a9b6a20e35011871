package handlers

import (
	"net/http"

	"horizons/internal/models"
	"horizons/internal/service"

	"github.com/gin-gonic/gin"
)

type NAIFHandler struct {
	service service.EphemerisService
}

func NewNAIFHandler(service service.EphemerisService) *NAIFHandler {
	return &NAIFHandler{service: service}
}

// GetDesignator resolves /naif/:id in either direction: a name yields its
// code, a code yields its canonical name.
func (h *NAIFHandler) GetDesignator(c *gin.Context) {
	entry, err := h.service.Describe(models.ParseBody(c.Param("id")))
	if err == nil && entry.Name == "" {
		_, err = h.service.ResolveName(entry.Code)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    entry,
	})
}

func (h *NAIFHandler) ListBodies(c *gin.Context) {
	bodies := h.service.Bodies()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    bodies,
		"count":   len(bodies),
	})
}
