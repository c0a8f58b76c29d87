// internal/app/app.go (or similar package)
package app

import (
	"parma-backoffice/config"
	"parma-backoffice/internal/storage"

	"github.com/go-playground/validator/v10"
)

// Application holds core application dependencies.
type Application struct {
	Config    *config.Config
	Validator *validator.Validate

	ClientRepo    storage.ClientRepository
	JobRepo       storage.JobRepository
	CandidateRepo storage.CandidateRepository
	LeadRepo      storage.LeadRepository
	AuditRepo     storage.AuditLogRepository
}
