package middleware

import (
	"time"

	"github.com/technaptix/site-api/internal/api/constants"
	"github.com/technaptix/site-api/internal/logging"
	"github.com/technaptix/site-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request when enabled (LOG_REQUESTS=true)
func RequestLogger(enabled bool) gin.HandlerFunc {
	if !enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	logger := logging.GetGlobalLogger()

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.LogHTTPRequest(
			c.Request.Method,
			path,
			utils.GetRealIP(c),
			c.GetString(constants.ContextKeyRequestID),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}
