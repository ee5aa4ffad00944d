package models

import (
	"time"
)

type ToolEffectiveness string

const (
	EffectivenessCritical ToolEffectiveness = "Critical"
	EffectivenessHigh     ToolEffectiveness = "High"
	EffectivenessMedium   ToolEffectiveness = "Medium"
	EffectivenessLow      ToolEffectiveness = "Low"
)

func (e ToolEffectiveness) IsValid() bool {
	switch e {
	case EffectivenessCritical, EffectivenessHigh, EffectivenessMedium, EffectivenessLow:
		return true
	}
	return false
}

// Tool is a catalog entry for software used during investigations, ranked
// by how often analysts reach for it.
type Tool struct {
	ID            uint              `json:"id" gorm:"primaryKey"`
	Name          string            `json:"name" gorm:"not null"`
	Description   string            `json:"description" gorm:"type:text;not null"`
	Impact        string            `json:"impact"`
	Category      string            `json:"category"`
	Screenshot    string            `json:"screenshot"`
	Effectiveness ToolEffectiveness `json:"effectiveness"`
	UsageCount    int               `json:"usage_count" gorm:"default:0"`
	LastUsed      *time.Time        `json:"last_used"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func (Tool) TableName() string {
	return "tools"
}
