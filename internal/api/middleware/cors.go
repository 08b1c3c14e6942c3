package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORS allows cross-origin calls from allowedOrigins, a comma separated
// list. An empty list or "*" reflects any origin.
func CORS(allowedOrigins string) gin.HandlerFunc {
	var origins []string
	allowAll := strings.TrimSpace(allowedOrigins) == ""
	for _, o := range strings.Split(allowedOrigins, ",") {
		o = strings.TrimSpace(o)
		if o == "*" {
			allowAll = true
		}
		if o != "" {
			origins = append(origins, o)
		}
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		c.Writer.Header().Add("Vary", "Origin")

		switch {
		case allowAll && origin != "":
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		case allowAll:
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		default:
			for _, allowed := range origins {
				if origin == allowed {
					c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
					break
				}
			}
		}

		if c.Request.Method == http.MethodOptions {
			headers := c.Request.Header.Get("Access-Control-Request-Headers")
			if headers == "" {
				headers = "Content-Type, X-Request-ID"
			}
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, HEAD, POST, OPTIONS")
			c.Writer.Header().Set("Access-Control-Allow-Headers", headers)
			c.Writer.Header().Set("Access-Control-Max-Age", "86400") // 24 hours
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
