package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sentineldesk/backend/internal/models"
	"github.com/sentineldesk/backend/internal/services"
)

type ToolController struct {
	tools *services.ToolService
}

func NewToolController(tools *services.ToolService) *ToolController {
	return &ToolController{tools: tools}
}

type CreateToolRequest struct {
	Name          string                   `json:"name" binding:"required"`
	Description   string                   `json:"description" binding:"required"`
	Impact        string                   `json:"impact"`
	Category      string                   `json:"category"`
	Screenshot    string                   `json:"screenshot" binding:"omitempty,url"`
	Effectiveness models.ToolEffectiveness `json:"effectiveness" binding:"omitempty,oneof=Critical High Medium Low"`
	UsageCount    int                      `json:"usage_count"`
	LastUsed      *time.Time               `json:"last_used"`
}

func (tc *ToolController) GetTools(c *gin.Context) {
	tools, err := tc.tools.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch tools",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": tools})
}

func (tc *ToolController) CreateTool(c *gin.Context) {
	var req CreateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid payload",
			"details": validationDetails(err),
		})
		return
	}

	tool := models.Tool{
		Name:          req.Name,
		Description:   req.Description,
		Impact:        req.Impact,
		Category:      req.Category,
		Screenshot:    req.Screenshot,
		Effectiveness: req.Effectiveness,
		UsageCount:    req.UsageCount,
		LastUsed:      req.LastUsed,
	}

	if err := tc.tools.Create(&tool); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create tool",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": tool})
}

// GetToolSummary reports the most-used tool and the distinct category count.
func (tc *ToolController) GetToolSummary(c *gin.Context) {
	summary, err := tc.tools.Summary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch tool summary",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": summary})
}
