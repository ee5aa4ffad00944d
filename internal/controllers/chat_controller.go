package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sentineldesk/backend/internal/models"
	"github.com/sentineldesk/backend/internal/services"
)

type ChatController struct {
	chat *services.ChatService
}

func NewChatController(chat *services.ChatService) *ChatController {
	return &ChatController{chat: chat}
}

type CreateChatMessageRequest struct {
	Channel           string `json:"channel" binding:"required,min=2"`
	UserName          string `json:"user_name" binding:"required,min=2"`
	UserRole          string `json:"user_role"`
	Message           string `json:"message" binding:"required"`
	IncidentReference string `json:"incident_reference"`
}

func (cc *ChatController) GetMessages(c *gin.Context) {
	channel := c.DefaultQuery("channel", "general")

	limit := 0
	if parsed, err := strconv.Atoi(c.DefaultQuery("limit", "100")); err == nil && parsed > 0 {
		limit = parsed
	}

	messages, err := cc.chat.List(channel, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch chat messages",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": messages})
}

func (cc *ChatController) CreateMessage(c *gin.Context) {
	var req CreateChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid payload",
			"details": validationDetails(err),
		})
		return
	}

	message := models.ChatMessage{
		Channel:           req.Channel,
		UserName:          req.UserName,
		UserRole:          req.UserRole,
		Message:           req.Message,
		IncidentReference: req.IncidentReference,
	}

	if err := cc.chat.Create(&message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create chat message",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": message})
}
