package handlers

import (
	"net/http"

	"github.com/technaptix/site-api/internal/api/constants"
	"github.com/technaptix/site-api/internal/api/dto/common"
	"github.com/technaptix/site-api/internal/models"
	"github.com/technaptix/site-api/internal/service"
	"github.com/technaptix/site-api/internal/utils"

	"github.com/gin-gonic/gin"
)

type ApplyHandler struct {
	applicationService *service.ApplicationService
}

func NewApplyHandler(applicationService *service.ApplicationService) *ApplyHandler {
	return &ApplyHandler{
		applicationService: applicationService,
	}
}

func (h *ApplyHandler) Submit(c *gin.Context) {
	// Get application from context (set by validation middleware)
	data, exists := c.Get(constants.ContextKeyApplication)
	if !exists {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, common.MsgApplicationFailed)
		return
	}

	app, ok := data.(*models.Application)
	if !ok {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, common.MsgApplicationFailed)
		return
	}

	result, err := h.applicationService.Submit(c.Request.Context(), app)
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.MsgApplicationFailed)
		return
	}

	if !result.Emailed {
		utils.HandleSuccess(c, common.NewFallbackResponse(result.SavedTo))
		return
	}

	utils.HandleSuccess(c, common.NewMessageResponse(common.MsgApplicationEmailed))
}
