package routes

import (
	"parma-backoffice/internal/api/handlers"
	"parma-backoffice/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAuditRoutes registers the action-log routes
func RegisterAuditRoutes(rg *gin.RouterGroup, auditHandler handlers.AuditHandlerInterface, authMiddleware gin.HandlerFunc) {
	// Define the sub-group for the action log (e.g., /api/v1/audit)
	audit := rg.Group("/audit")
	audit.Use(authMiddleware, middleware.RequirePermission("logs"))
	{
		audit.GET("/", auditHandler.GetAuditLog)
		audit.GET("/export", auditHandler.ExportAuditLog)
	}
}
