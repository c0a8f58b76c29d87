// internal/api/routes/routes.go
package routes

import (
	"log"

	"parma-backoffice/internal/api/handlers"
	"parma-backoffice/internal/api/middleware"
	"parma-backoffice/internal/app"
	"parma-backoffice/internal/services"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	//Create services
	clientService := services.NewClientService(app.ClientRepo, app.JobRepo, app.CandidateRepo, app.AuditRepo)
	jobService := services.NewJobService(app.JobRepo, app.ClientRepo, app.CandidateRepo, app.AuditRepo)
	candidateService := services.NewCandidateService(app.CandidateRepo, app.JobRepo, app.ClientRepo, app.AuditRepo, app.Config.Propagation)
	leadService := services.NewLeadService(app.LeadRepo, app.AuditRepo)
	auditService := services.NewAuditService(app.AuditRepo)
	userService := services.NewUserService(app.Config, app.AuditRepo)

	//Create handlers
	clientHandler := handlers.NewClientHandler(clientService, app.Validator)
	jobHandler := handlers.NewJobHandler(jobService, app.Validator)
	candidateHandler := handlers.NewCandidateHandler(candidateService, app.Validator)
	leadHandler := handlers.NewLeadHandler(leadService, app.Validator)
	auditHandler := handlers.NewAuditHandler(auditService)
	userHandler := handlers.NewUserHandler(userService, app.Validator)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret)

	// --- Register Resource Routes ---
	RegisterAuthRoutes(apiV1, userHandler, authMiddleware)
	RegisterClientRoutes(apiV1, clientHandler, authMiddleware)
	RegisterJobRoutes(apiV1, jobHandler, authMiddleware)
	RegisterCandidateRoutes(apiV1, candidateHandler, authMiddleware)
	RegisterLeadRoutes(apiV1, leadHandler, authMiddleware)
	RegisterAuditRoutes(apiV1, auditHandler, authMiddleware)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	log.Println("Configuring Swagger UI handler")
	// Register the Swagger UI handler WITHOUT the explicit URL option.
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
