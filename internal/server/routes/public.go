package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupPublicRoutes configures the liveness endpoints
func SetupPublicRoutes(router *gin.Engine, h *Handlers) {
	router.GET("/", h.Health.Root)
	router.HEAD("/", h.Health.Root)
	router.GET("/health", h.Health.Check)
}
