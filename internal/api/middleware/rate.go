package middleware

import (
	"net/http"
	"strconv"

	"github.com/technaptix/site-api/internal/api/dto/common"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines configuration for the rate limiter
type RateLimitConfig struct {
	// Requests per second; zero or negative disables limiting
	RPS int
	// Burst size (number of requests that can be made in a single burst)
	Burst int
}

// RateLimitMiddleware creates a new rate limiting middleware with the given configuration
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	if config.RPS <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	if config.Burst < 1 {
		config.Burst = 1
	}

	limiter := rate.NewLimiter(rate.Limit(config.RPS), config.Burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.String(http.StatusTooManyRequests, common.MsgRateLimited)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.RPS))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))

		c.Next()
	}
}
