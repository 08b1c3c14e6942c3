package routes

import (
	"github.com/technaptix/site-api/internal/api/handlers"
	"github.com/technaptix/site-api/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// maxContactBody bounds the JSON body of a contact inquiry
const maxContactBody = 1 << 20

// SetupContactRoutes configures contact form routes
func SetupContactRoutes(router *gin.RouterGroup, contact *handlers.ContactHandler, m *Middleware) {
	router.POST("/contact",
		middleware.MaxBodySize(maxContactBody),
		m.Validation.ValidateContactRequest(),
		contact.Submit,
	)
}
