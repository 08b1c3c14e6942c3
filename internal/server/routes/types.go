package routes

import (
	"github.com/technaptix/site-api/internal/api/handlers"
	"github.com/technaptix/site-api/internal/api/middleware"
)

// Handlers contains all the route handlers
type Handlers struct {
	Health  *handlers.HealthHandler
	Apply   *handlers.ApplyHandler
	Contact *handlers.ContactHandler
}

// Middleware contains all the middleware
type Middleware struct {
	Validation *middleware.ValidationMiddleware
}
