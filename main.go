package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"parma-backoffice/config"
	"parma-backoffice/internal/app"
	"parma-backoffice/internal/server"
	"parma-backoffice/internal/storage/csvfile"

	"github.com/go-playground/validator/v10"
)

// @title           Parma Back-Office API
// @version         1.0
// @description     Login-gated back office for a recruitment agency: clients, job openings, candidates, the sales pipeline and an append-only action log, persisted as CSV tables.

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Initialize the CSV data directory ---
	if err := os.MkdirAll(cfg.Data.Dir, 0o755); err != nil {
		log.Fatalf("Failed to create data directory %s: %v", cfg.Data.Dir, err)
	}

	validate := validator.New()

	application := &app.Application{
		Config:        cfg,
		Validator:     validate,
		ClientRepo:    csvfile.NewClientRepo(cfg.Data.Dir),
		JobRepo:       csvfile.NewJobRepo(cfg.Data.Dir),
		CandidateRepo: csvfile.NewCandidateRepo(cfg.Data.Dir),
		LeadRepo:      csvfile.NewLeadRepo(cfg.Data.Dir),
		AuditRepo:     csvfile.NewAuditRepo(cfg.Data.Dir),
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down server...")

	//Gin shutdowns on its own

	log.Println("Application gracefully stopped.")
}
