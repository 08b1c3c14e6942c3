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

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	// Get contact data from context (set by validation middleware)
	contactData, exists := c.Get(constants.ContextKeyContact)
	if !exists {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, common.MsgContactFailed)
		return
	}

	msg, ok := contactData.(*models.ContactMessage)
	if !ok {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, common.MsgContactFailed)
		return
	}

	if err := h.contactService.Submit(c.Request.Context(), msg); err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.MsgContactFailed)
		return
	}

	utils.HandleSuccess(c, common.NewMessageResponse(common.MsgContactSent))
}
