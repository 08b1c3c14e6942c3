package routes

import (
	"github.com/technaptix/site-api/internal/api/dto/v1/apply"
	"github.com/technaptix/site-api/internal/api/handlers"
	"github.com/technaptix/site-api/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// multipartOverhead leaves room for the text fields and part headers
const multipartOverhead = 1 << 20

// SetupApplyRoutes configures the careers application route
func SetupApplyRoutes(router *gin.RouterGroup, handler *handlers.ApplyHandler, m *Middleware) {
	router.POST("/apply",
		middleware.MaxBodySize(apply.MaxCoverLetterSize+multipartOverhead),
		m.Validation.ValidateApplyRequest(),
		handler.Submit,
	)
}
