package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sentineldesk/backend/internal/controllers"
	"github.com/sentineldesk/backend/internal/services"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize services
	incidentService := services.NewIncidentService(db)
	toolService := services.NewToolService(db)
	logService := services.NewLogService(db)
	chatService := services.NewChatService(db)

	// Initialize controllers
	incidentController := controllers.NewIncidentController(incidentService)
	toolController := controllers.NewToolController(toolService)
	logController := controllers.NewLogController(logService)
	chatController := controllers.NewChatController(chatService)

	// API routes
	api := r.Group("/api")
	{
		incidents := api.Group("/incidents")
		{
			incidents.GET("", incidentController.GetIncidents)
			incidents.POST("", incidentController.CreateIncident)
			incidents.GET("/:reference", incidentController.GetIncident)
			incidents.PATCH("/:reference", incidentController.UpdateIncident)
			incidents.DELETE("/:reference", incidentController.DeleteIncident)
		}

		api.GET("/dashboard", incidentController.GetDashboard)

		tools := api.Group("/tools")
		{
			tools.GET("", toolController.GetTools)
			tools.POST("", toolController.CreateTool)
			tools.GET("/summary", toolController.GetToolSummary)
		}

		logs := api.Group("/logs")
		{
			logs.GET("", logController.GetLogs)
			logs.POST("", logController.CreateLog)
		}

		chat := api.Group("/chat")
		{
			chat.GET("", chatController.GetMessages)
			chat.POST("", chatController.CreateMessage)
		}
	}
}
