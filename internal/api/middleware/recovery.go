package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/technaptix/site-api/internal/api/constants"
	"github.com/technaptix/site-api/internal/api/dto/common"
	"github.com/technaptix/site-api/internal/logging"

	"github.com/gin-gonic/gin"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logging.GetGlobalLogger().Error("[PANIC] %s %s | %s | %v\n%s",
					c.Request.Method,
					c.Request.URL.Path,
					c.GetString(constants.ContextKeyRequestID),
					fmt.Sprint(err),
					debug.Stack(),
				)

				c.String(http.StatusInternalServerError, common.MsgInternalServerError)
				c.Abort()
			}
		}()

		c.Next()
	}
}
