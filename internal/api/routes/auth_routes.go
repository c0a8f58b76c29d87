package routes

import (
	"parma-backoffice/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the session routes
func RegisterAuthRoutes(rg *gin.RouterGroup, userHandler handlers.UserHandlerInterface, authMiddleware gin.HandlerFunc) {
	// --- Authentication Routes ---
	// Create a sub-group for authentication (e.g., /api/v1/auth)
	auth := rg.Group("/auth")
	{
		auth.POST("/login", userHandler.Login) // Route for user login
		auth.POST("/logout", authMiddleware, userHandler.Logout)
	}
}
