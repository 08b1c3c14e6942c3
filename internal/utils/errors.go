package utils

import (
	"net/http"

	"github.com/technaptix/site-api/internal/logging"

	"github.com/gin-gonic/gin"
)

// HandleAPIError logs the failure and writes message as a plain-text body.
// The underlying error never reaches the client.
func HandleAPIError(c *gin.Context, err error, status int, message string) {
	logger := logging.GetGlobalLogger()

	if status >= http.StatusInternalServerError {
		logger.LogHTTPError(
			c.Request.Method,
			c.Request.URL.Path,
			GetRealIP(c),
			status,
			message,
			err,
		)
	} else {
		logger.Debug("%s %s rejected with %d: %s (%v)", c.Request.Method, c.Request.URL.Path, status, message, err)
	}

	HandleText(c, status, message)
}

// AbortWithAPIError is HandleAPIError for middleware: it also stops the chain
func AbortWithAPIError(c *gin.Context, err error, status int, message string) {
	HandleAPIError(c, err, status, message)
	c.Abort()
}
