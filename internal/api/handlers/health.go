package handlers

import (
	"net/http"

	"github.com/technaptix/site-api/internal/api/dto/common"
	"github.com/technaptix/site-api/internal/config"
	"github.com/technaptix/site-api/internal/version"

	"github.com/gin-gonic/gin"
)

// Banner is the liveness text served on GET /
const Banner = "Technaptix Careers API Running 🚀"

type HealthHandler struct {
	mode config.DeliveryMode
}

func NewHealthHandler(mode config.DeliveryMode) *HealthHandler {
	return &HealthHandler{mode: mode}
}

// Root serves the plain-text liveness banner
func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, Banner)
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, common.HealthResponse{
		Status:  "ok",
		Mode:    string(h.mode),
		Version: version.Version,
	})
}
