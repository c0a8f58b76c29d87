package routes

import (
	"parma-backoffice/internal/api/handlers"
	"parma-backoffice/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterLeadRoutes registers all routes related to the sales pipeline
func RegisterLeadRoutes(rg *gin.RouterGroup, leadHandler handlers.LeadHandlerInterface, authMiddleware gin.HandlerFunc) {
	// Define the sub-group for leads (e.g., /api/v1/leads)
	leads := rg.Group("/leads")
	leads.Use(authMiddleware, middleware.RequirePermission("comercial"))
	{
		leads.GET("/", leadHandler.GetLeads)
		leads.GET("/funnel", leadHandler.GetFunnel)
		leads.GET("/export", leadHandler.ExportLeads)
		leads.GET("/:id", leadHandler.GetLeadByID)
		leads.POST("/", leadHandler.CreateLead)
		leads.POST("/import", leadHandler.ImportLeads)
		leads.POST("/:id/move", leadHandler.MoveLeadStage)
		leads.PUT("/:id", leadHandler.UpdateLead)
		leads.DELETE("/:id", leadHandler.DeleteLead)
	}
}
