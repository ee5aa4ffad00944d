package services

import (
	"github.com/sentineldesk/backend/internal/models"
	"gorm.io/gorm"
)

const (
	defaultChatChannel = "general"
	defaultChatLimit   = 100
)

type ChatService struct {
	db *gorm.DB
}

func NewChatService(db *gorm.DB) *ChatService {
	return &ChatService{db: db}
}

// List returns a channel's messages oldest first, the order the chat view
// renders them in.
func (s *ChatService) List(channel string, limit int) ([]models.ChatMessage, error) {
	if channel == "" {
		channel = defaultChatChannel
	}
	if limit <= 0 {
		limit = defaultChatLimit
	}

	messages := []models.ChatMessage{}
	err := s.db.Where("channel = ?", channel).
		Order("created_at asc").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *ChatService) Create(message *models.ChatMessage) error {
	return s.db.Create(message).Error
}
