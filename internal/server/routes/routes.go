package routes

import (
	"github.com/technaptix/site-api/internal/api/middleware"
	"github.com/technaptix/site-api/internal/config"
	"github.com/technaptix/site-api/internal/logging"
	"github.com/technaptix/site-api/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, cfg *config.Config, h *Handlers, m *Middleware) {
	SetupPublicRoutes(router, h)

	api := router.Group("/api")
	api.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		RPS:   cfg.RateLimitRPS,
		Burst: cfg.RateLimitBurst,
	}))

	SetupApplyRoutes(api, h.Apply, m)
	SetupContactRoutes(api, h.Contact, m)

	logging.GetGlobalLogger().Debug("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(otelgin.Middleware(telemetry.ServiceName))
	router.Use(middleware.RequestLogger(cfg.LogRequests))
	router.Use(middleware.CORS(cfg.CORSOrigin))
	router.Use(middleware.SecurityHeaders())
}
