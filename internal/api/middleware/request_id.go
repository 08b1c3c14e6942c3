package middleware

import (
	"github.com/technaptix/site-api/internal/api/constants"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Check for existing request ID in header
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" || len(requestID) > 128 {
			requestID = uuid.New().String()
		}

		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header(requestIDHeader, requestID)

		c.Next()
	}
}
