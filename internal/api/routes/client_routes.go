package routes

import (
	"parma-backoffice/internal/api/handlers"
	"parma-backoffice/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterClientRoutes registers all routes related to clients
func RegisterClientRoutes(rg *gin.RouterGroup, clientHandler handlers.ClientHandlerInterface, authMiddleware gin.HandlerFunc) {
	// Define the sub-group for clients (e.g., /api/v1/clients)
	clients := rg.Group("/clients")
	clients.Use(authMiddleware, middleware.RequirePermission("clientes"))
	{
		clients.GET("/", clientHandler.GetClients)
		clients.GET("/export", clientHandler.ExportClients)
		clients.GET("/:id", clientHandler.GetClientByID)
		clients.POST("/", clientHandler.CreateClient)
		clients.POST("/import", clientHandler.ImportClients)
		clients.PUT("/:id", clientHandler.UpdateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
	}
}
