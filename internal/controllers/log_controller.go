package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sentineldesk/backend/internal/models"
	"github.com/sentineldesk/backend/internal/services"
)

type LogController struct {
	logs *services.LogService
}

func NewLogController(logs *services.LogService) *LogController {
	return &LogController{logs: logs}
}

type CreateLogRequest struct {
	EventTime   *time.Time         `json:"event_time"`
	Severity    models.LogSeverity `json:"severity" binding:"required,oneof=Info Warning Error Critical"`
	Source      string             `json:"source" binding:"required"`
	SourceIP    string             `json:"source_ip" binding:"required"`
	Action      string             `json:"action" binding:"required"`
	Description string             `json:"description" binding:"required"`
}

func (lc *LogController) GetLogs(c *gin.Context) {
	filter := services.LogFilter{
		Severity: c.Query("severity"),
		Source:   c.Query("source"),
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "100")); err == nil && limit > 0 {
		filter.Limit = limit
	}

	logs, err := lc.logs.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch logs",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": logs})
}

func (lc *LogController) CreateLog(c *gin.Context) {
	var req CreateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid payload",
			"details": validationDetails(err),
		})
		return
	}

	entry := models.SystemLog{
		Severity:    req.Severity,
		Source:      req.Source,
		SourceIP:    req.SourceIP,
		Action:      req.Action,
		Description: req.Description,
	}
	if req.EventTime != nil {
		entry.EventTime = *req.EventTime
	}

	if err := lc.logs.Create(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create log entry",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": entry})
}
