package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sentineldesk/backend/internal/models"
	"github.com/sentineldesk/backend/internal/services"
	"gorm.io/gorm"
)

type IncidentController struct {
	incidents *services.IncidentService
}

func NewIncidentController(incidents *services.IncidentService) *IncidentController {
	return &IncidentController{incidents: incidents}
}

type ToolUsageRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Impact      string `json:"impact" binding:"required"`
}

type EvidenceRequest struct {
	ID   string              `json:"id" binding:"required"`
	Type models.EvidenceType `json:"type" binding:"required,oneof=image document log"`
	Name string              `json:"name" binding:"required"`
	URL  string              `json:"url" binding:"required"`
}

type TimelineEventRequest struct {
	ID          string                   `json:"id" binding:"required"`
	Timestamp   string                   `json:"timestamp" binding:"required"`
	Action      string                   `json:"action" binding:"required"`
	Description string                   `json:"description" binding:"required"`
	User        string                   `json:"user" binding:"required"`
	Type        models.TimelineEventType `json:"type" binding:"required,oneof=detection analysis containment eradication recovery"`
}

// CreateIncidentRequest is the creation payload. Field names are camelCase
// here; the stored entity serializes snake_case.
type CreateIncidentRequest struct {
	ReferenceID string                  `json:"referenceId"`
	Title       string                  `json:"title" binding:"required,min=3"`
	Type        string                  `json:"type" binding:"required,min=2"`
	Severity    models.IncidentSeverity `json:"severity" binding:"required,oneof=Low Medium High Critical"`
	Status      models.IncidentStatus   `json:"status" binding:"omitempty,oneof=Open Investigating Contained Resolved Closed"`
	Description string                  `json:"description" binding:"required,min=10"`
	Reporter    string                  `json:"reporter" binding:"required"`
	Assignee    *string                 `json:"assignee"`
	ToolsUsed   []ToolUsageRequest      `json:"toolsUsed" binding:"omitempty,dive"`
	Evidence    []EvidenceRequest       `json:"evidence" binding:"omitempty,dive"`
	Timeline    []TimelineEventRequest  `json:"timeline" binding:"omitempty,dive"`
}

// UpdateIncidentRequest is the PATCH payload. Every field is optional; nil
// means untouched, a supplied array replaces the stored one wholesale. The
// array fields are snake_case, matching the stored entity. There is no
// reference id field: reference ids are immutable.
type UpdateIncidentRequest struct {
	Title       *string                  `json:"title" binding:"omitempty,min=3"`
	Type        *string                  `json:"type" binding:"omitempty,min=2"`
	Severity    *models.IncidentSeverity `json:"severity" binding:"omitempty,oneof=Low Medium High Critical"`
	Status      *models.IncidentStatus   `json:"status" binding:"omitempty,oneof=Open Investigating Contained Resolved Closed"`
	Description *string                  `json:"description" binding:"omitempty,min=10"`
	Reporter    *string                  `json:"reporter"`
	Assignee    *string                  `json:"assignee"`
	ToolsUsed   []ToolUsageRequest       `json:"tools_used" binding:"omitempty,dive"`
	Evidence    []EvidenceRequest        `json:"evidence" binding:"omitempty,dive"`
	Timeline    []TimelineEventRequest   `json:"timeline" binding:"omitempty,dive"`
}

// The conversion helpers keep nil distinct from empty: an absent array stays
// nil so updates leave the stored value alone.

func toolUsagesFromRequest(reqs []ToolUsageRequest) []models.ToolUsage {
	if reqs == nil {
		return nil
	}
	out := make([]models.ToolUsage, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, models.ToolUsage{Name: r.Name, Description: r.Description, Impact: r.Impact})
	}
	return out
}

func evidenceFromRequest(reqs []EvidenceRequest) []models.Evidence {
	if reqs == nil {
		return nil
	}
	out := make([]models.Evidence, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, models.Evidence{ID: r.ID, Type: r.Type, Name: r.Name, URL: r.URL})
	}
	return out
}

func timelineFromRequest(reqs []TimelineEventRequest) []models.TimelineEvent {
	if reqs == nil {
		return nil
	}
	out := make([]models.TimelineEvent, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, models.TimelineEvent{
			ID:          r.ID,
			Timestamp:   r.Timestamp,
			Action:      r.Action,
			Description: r.Description,
			User:        r.User,
			Type:        r.Type,
		})
	}
	return out
}

// GetIncidents lists incidents filtered by severity, status, and a free-text
// search over title, reference id, and reporter.
func (ic *IncidentController) GetIncidents(c *gin.Context) {
	filter := services.IncidentFilter{
		Severity: c.Query("severity"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "50")); err == nil && limit > 0 {
		filter.Limit = limit
	}

	incidents, err := ic.incidents.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch incidents",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": incidents})
}

func (ic *IncidentController) GetIncident(c *gin.Context) {
	incident, err := ic.incidents.Get(c.Param("reference"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Incident not found",
				"details": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch incident",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": incident})
}

func (ic *IncidentController) CreateIncident(c *gin.Context) {
	var req CreateIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid payload",
			"details": validationDetails(err),
		})
		return
	}
	if req.ReferenceID != "" && !models.ValidReferenceID(req.ReferenceID) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid payload",
			"details": gin.H{"referenceId": "must match INC-<year>-<3-digit-number>"},
		})
		return
	}

	incident := models.Incident{
		ReferenceID: req.ReferenceID,
		Title:       req.Title,
		Type:        req.Type,
		Severity:    req.Severity,
		Status:      req.Status,
		Description: req.Description,
		Reporter:    req.Reporter,
		Assignee:    req.Assignee,
		ToolsUsed:   toolUsagesFromRequest(req.ToolsUsed),
		Evidence:    evidenceFromRequest(req.Evidence),
		Timeline:    timelineFromRequest(req.Timeline),
	}

	if err := ic.incidents.Create(&incident); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create incident",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": incident})
}

func (ic *IncidentController) UpdateIncident(c *gin.Context) {
	var req UpdateIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid payload",
			"details": validationDetails(err),
		})
		return
	}

	update := services.IncidentUpdate{
		Title:       req.Title,
		Type:        req.Type,
		Severity:    req.Severity,
		Status:      req.Status,
		Description: req.Description,
		Reporter:    req.Reporter,
		Assignee:    req.Assignee,
		ToolsUsed:   toolUsagesFromRequest(req.ToolsUsed),
		Evidence:    evidenceFromRequest(req.Evidence),
		Timeline:    timelineFromRequest(req.Timeline),
	}

	incident, err := ic.incidents.Update(c.Param("reference"), update)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Incident not found",
				"details": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to update incident",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": incident})
}

func (ic *IncidentController) DeleteIncident(c *gin.Context) {
	if err := ic.incidents.Delete(c.Param("reference")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to delete incident",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetDashboard returns the metric counters over the newest 25 incidents plus
// the 6 most recent, recomputed on every call.
func (ic *IncidentController) GetDashboard(c *gin.Context) {
	metrics, recent, err := ic.incidents.Dashboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch dashboard data",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"metrics":         metrics,
		"recentIncidents": recent,
	})
}
