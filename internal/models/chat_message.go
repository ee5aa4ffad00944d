package models

import (
	"time"
)

// ChatMessage is a single message in an incident-response channel. The
// incident reference is free text, not a foreign key.
type ChatMessage struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Channel           string    `json:"channel" gorm:"not null;index"`
	UserName          string    `json:"user_name" gorm:"not null"`
	UserRole          string    `json:"user_role"`
	Message           string    `json:"message" gorm:"type:text;not null"`
	IncidentReference string    `json:"incident_reference"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
