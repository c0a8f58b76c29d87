package routes

import (
	"parma-backoffice/internal/api/handlers"
	"parma-backoffice/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to job openings
func RegisterJobRoutes(rg *gin.RouterGroup, jobHandler handlers.JobHandlerInterface, authMiddleware gin.HandlerFunc) {
	// Define the sub-group for jobs (e.g., /api/v1/jobs)
	jobs := rg.Group("/jobs")
	jobs.Use(authMiddleware, middleware.RequirePermission("vagas"))
	{
		jobs.GET("/", jobHandler.GetJobs)
		jobs.GET("/export", jobHandler.ExportJobs)
		jobs.GET("/:id", jobHandler.GetJobByID)
		jobs.POST("/", jobHandler.CreateJob)
		jobs.POST("/import", jobHandler.ImportJobs)
		jobs.PUT("/:id", jobHandler.UpdateJob)
		jobs.DELETE("/:id", jobHandler.DeleteJob)
	}
}
