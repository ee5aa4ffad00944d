package models

import (
	"time"
)

type IncidentSeverity string
type IncidentStatus string
type EvidenceType string
type TimelineEventType string

const (
	SeverityLow      IncidentSeverity = "Low"
	SeverityMedium   IncidentSeverity = "Medium"
	SeverityHigh     IncidentSeverity = "High"
	SeverityCritical IncidentSeverity = "Critical"
)

const (
	StatusOpen          IncidentStatus = "Open"
	StatusInvestigating IncidentStatus = "Investigating"
	StatusContained     IncidentStatus = "Contained"
	StatusResolved      IncidentStatus = "Resolved"
	StatusClosed        IncidentStatus = "Closed"
)

const (
	EvidenceImage    EvidenceType = "image"
	EvidenceDocument EvidenceType = "document"
	EvidenceLog      EvidenceType = "log"
)

const (
	TimelineDetection   TimelineEventType = "detection"
	TimelineAnalysis    TimelineEventType = "analysis"
	TimelineContainment TimelineEventType = "containment"
	TimelineEradication TimelineEventType = "eradication"
	TimelineRecovery    TimelineEventType = "recovery"
)

func (s IncidentSeverity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

func (s IncidentStatus) IsValid() bool {
	switch s {
	case StatusOpen, StatusInvestigating, StatusContained, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// ToolUsage records a tool applied during an investigation. It is embedded
// in the incident row, not a reference into the tools table.
type ToolUsage struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

type Evidence struct {
	ID   string       `json:"id"`
	Type EvidenceType `json:"type"`
	Name string       `json:"name"`
	URL  string       `json:"url"`
}

type TimelineEvent struct {
	ID          string            `json:"id"`
	Timestamp   string            `json:"timestamp"`
	Action      string            `json:"action"`
	Description string            `json:"description"`
	User        string            `json:"user"`
	Type        TimelineEventType `json:"type"`
}

type Incident struct {
	ID          uint             `json:"id" gorm:"primaryKey"`
	ReferenceID string           `json:"reference_id" gorm:"uniqueIndex;not null"`
	Title       string           `json:"title" gorm:"not null"`
	Type        string           `json:"type" gorm:"not null"`
	Severity    IncidentSeverity `json:"severity" gorm:"not null"`
	Status      IncidentStatus   `json:"status" gorm:"not null;default:'Open'"`
	Description string           `json:"description" gorm:"type:text;not null"`
	Reporter    string           `json:"reporter" gorm:"not null"`
	Assignee    *string          `json:"assignee"`
	ToolsUsed   []ToolUsage      `json:"tools_used" gorm:"serializer:json;type:jsonb"`
	Evidence    []Evidence       `json:"evidence" gorm:"serializer:json;type:jsonb"`
	Timeline    []TimelineEvent  `json:"timeline" gorm:"serializer:json;type:jsonb"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func (Incident) TableName() string {
	return "incidents"
}
