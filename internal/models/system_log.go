package models

import (
	"time"
)

type LogSeverity string

const (
	LogSeverityInfo     LogSeverity = "Info"
	LogSeverityWarning  LogSeverity = "Warning"
	LogSeverityError    LogSeverity = "Error"
	LogSeverityCritical LogSeverity = "Critical"
)

func (s LogSeverity) IsValid() bool {
	switch s {
	case LogSeverityInfo, LogSeverityWarning, LogSeverityError, LogSeverityCritical:
		return true
	}
	return false
}

// SystemLog is a flat security event record from monitored infrastructure.
type SystemLog struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	EventTime   time.Time   `json:"event_time" gorm:"index"`
	Severity    LogSeverity `json:"severity" gorm:"not null"`
	Source      string      `json:"source" gorm:"not null"`
	SourceIP    string      `json:"source_ip" gorm:"not null"`
	Action      string      `json:"action" gorm:"not null"`
	Description string      `json:"description" gorm:"type:text;not null"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (SystemLog) TableName() string {
	return "system_logs"
}
