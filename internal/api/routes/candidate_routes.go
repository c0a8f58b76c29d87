package routes

import (
	"parma-backoffice/internal/api/handlers"
	"parma-backoffice/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterCandidateRoutes registers all routes related to candidates
func RegisterCandidateRoutes(rg *gin.RouterGroup, candidateHandler handlers.CandidateHandlerInterface, authMiddleware gin.HandlerFunc) {
	// Define the sub-group for candidates (e.g., /api/v1/candidates)
	candidates := rg.Group("/candidates")
	candidates.Use(authMiddleware, middleware.RequirePermission("candidatos"))
	{
		candidates.GET("/", candidateHandler.GetCandidates)
		candidates.GET("/export", candidateHandler.ExportCandidates)
		candidates.GET("/:id", candidateHandler.GetCandidateByID)
		candidates.POST("/", candidateHandler.CreateCandidate)
		candidates.POST("/import", candidateHandler.ImportCandidates)
		candidates.PUT("/:id", candidateHandler.UpdateCandidate)
		candidates.DELETE("/:id", candidateHandler.DeleteCandidate)
	}
}
