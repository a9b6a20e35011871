package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the API under group, e.g. /api/v1.
func RegisterRoutes(group *gin.RouterGroup, eph *EphemerisHandler, naif *NAIFHandler, health *HealthHandler) {
	group.GET("/ephemeris", eph.GetEphemeris)
	group.GET("/naif/:id", naif.GetDesignator)
	group.GET("/bodies", naif.ListBodies)
	group.GET("/health", health.GetHealth)
}
