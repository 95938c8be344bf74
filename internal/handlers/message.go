// internal/handlers/message.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/codetrade/backend/internal/i18n"
	"github.com/codetrade/backend/internal/services"
	"github.com/codetrade/backend/internal/utils"
)

type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
	}
}

// POST /api/messages
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	senderID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	message, err := h.messageService.CreateMessage(senderID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, i18n.KeyProjectNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": message,
	})
}

// GET /api/messages/:projectId
func (h *MessageHandler) GetProjectMessages(c *gin.Context) {
	if _, exists := utils.GetUserIDFromContext(c); !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	projectID, err := parseIDParam(c, "projectId")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid project ID", nil)
		return
	}

	messages, err := h.messageService.GetProjectMessages(projectID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"messages": messages,
	})
}
