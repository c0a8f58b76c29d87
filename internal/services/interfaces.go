package services

import (
	"context"
	"io"

	"parma-backoffice/internal/models"
	"parma-backoffice/internal/transport/dto"
)

// ClientService defines the interface for client-related business logic.
type ClientService interface {
	List(ctx context.Context, req *dto.ListClientsRequest) ([]models.Client, error)
	GetByID(ctx context.Context, id string) (*models.Client, error)
	Create(ctx context.Context, req *dto.CreateClientRequest) (*models.Client, error)
	Update(ctx context.Context, req *dto.UpdateClientRequest) (*models.Client, error)
	// Delete removes the client and cascades to its jobs and their
	// candidates, audit-logging each cascade group.
	Delete(ctx context.Context, id, actor string) error
	Import(ctx context.Context, actor, filename string, file io.Reader) (int, error)
	ExportCSV(ctx context.Context) ([]byte, error)
}

// JobService defines the interface for job-opening business logic. Reads
// return responses with the client display name joined in.
type JobService interface {
	List(ctx context.Context, req *dto.ListJobsRequest) ([]dto.JobResponse, error)
	GetByID(ctx context.Context, id string) (*dto.JobResponse, error)
	Create(ctx context.Context, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	Update(ctx context.Context, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	// Delete removes the job and cascades to its candidates.
	Delete(ctx context.Context, id, actor string) error
	Import(ctx context.Context, actor, filename string, file io.Reader) (int, error)
	ExportCSV(ctx context.Context) ([]byte, error)
}

// CandidateService defines the interface for candidate business logic.
// Update runs the job-status propagation engine after persisting the edit.
type CandidateService interface {
	List(ctx context.Context, req *dto.ListCandidatesRequest) ([]dto.CandidateResponse, error)
	GetByID(ctx context.Context, id string) (*dto.CandidateResponse, error)
	Create(ctx context.Context, req *dto.CreateCandidateRequest) (*dto.CandidateResponse, error)
	Update(ctx context.Context, req *dto.UpdateCandidateRequest) (*dto.CandidateResponse, error)
	Delete(ctx context.Context, id, actor string) error
	Import(ctx context.Context, actor, filename string, file io.Reader) (int, error)
	ExportCSV(ctx context.Context) ([]byte, error)
}

// LeadService defines the interface for sales-pipeline business logic.
type LeadService interface {
	List(ctx context.Context, req *dto.ListLeadsRequest) ([]models.Lead, error)
	Funnel(ctx context.Context) ([]dto.FunnelColumn, error)
	GetByID(ctx context.Context, id string) (*models.Lead, error)
	Create(ctx context.Context, req *dto.CreateLeadRequest) (*models.Lead, error)
	Update(ctx context.Context, req *dto.UpdateLeadRequest) (*models.Lead, error)
	// MoveStage walks the lead one funnel position; out-of-bounds moves
	// and non-canonical current stages fail with ErrInvalidStage.
	MoveStage(ctx context.Context, req *dto.MoveStageRequest) (*models.Lead, error)
	Delete(ctx context.Context, id, actor string) error
	Import(ctx context.Context, actor, filename string, file io.Reader) (int, error)
	ExportCSV(ctx context.Context) ([]byte, error)
}

// AuditService defines the interface for reading the action log.
type AuditService interface {
	List(ctx context.Context, req *dto.ListAuditRequest) ([]models.AuditEntry, error)
	ExportCSV(ctx context.Context) ([]byte, error)
}

// UserService defines the interface for session business logic.
type UserService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, req *dto.LogoutRequest) error
}
