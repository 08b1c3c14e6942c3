package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleSuccess sends a 200 JSON response
func HandleSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// HandleText sends a plain-text response
func HandleText(c *gin.Context, status int, message string) {
	c.String(status, message)
}
