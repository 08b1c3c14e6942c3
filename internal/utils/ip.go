package utils

import (
	"github.com/gin-gonic/gin"
)

// GetRealIP returns the client address used in logs. Forwarding headers
// (X-Forwarded-For, X-Real-IP) are honored only when the direct peer is in
// the engine's trusted proxies (TRUSTED_PROXIES); otherwise the socket
// address wins, so clients cannot spoof their IP.
func GetRealIP(c *gin.Context) string {
	return c.ClientIP()
}
