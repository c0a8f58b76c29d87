package storage

import (
	"context"

	"parma-backoffice/internal/models"
)

// TableStore is the capability set every delimited-file table shares:
// schema introspection, bulk merge and full-table export.
type TableStore interface {
	Columns() []string
	// ImportRows merges uploaded rows into the table, deduplicating by ID
	// with the first occurrence winning (existing rows win over imported
	// ones). Returns the number of rows actually added.
	ImportRows(ctx context.Context, rows []map[string]string) (int, error)
	// ExportCSV serializes the current table state, header row included.
	ExportCSV(ctx context.Context) ([]byte, error)
}

// ClientRepository defines the interface for client data operations.
type ClientRepository interface {
	TableStore
	List(ctx context.Context) ([]models.Client, error)
	GetByID(ctx context.Context, id string) (*models.Client, error)
	Create(ctx context.Context, client *models.Client) (*models.Client, error)
	Update(ctx context.Context, client *models.Client) (*models.Client, error)
	Delete(ctx context.Context, id string) error
}

// JobRepository defines the interface for job-opening data operations.
type JobRepository interface {
	TableStore
	List(ctx context.Context) ([]models.Job, error)
	GetByID(ctx context.Context, id string) (*models.Job, error)
	ListByClient(ctx context.Context, clientID string) ([]models.Job, error)
	Create(ctx context.Context, job *models.Job) (*models.Job, error)
	Update(ctx context.Context, job *models.Job) (*models.Job, error)
	Delete(ctx context.Context, id string) error
	// DeleteByClient removes every job referencing the client and returns
	// the IDs of the removed rows.
	DeleteByClient(ctx context.Context, clientID string) ([]string, error)
}

// CandidateRepository defines the interface for candidate data operations.
type CandidateRepository interface {
	TableStore
	List(ctx context.Context) ([]models.Candidate, error)
	GetByID(ctx context.Context, id string) (*models.Candidate, error)
	ListByJob(ctx context.Context, jobID string) ([]models.Candidate, error)
	Create(ctx context.Context, cand *models.Candidate) (*models.Candidate, error)
	Update(ctx context.Context, cand *models.Candidate) (*models.Candidate, error)
	Delete(ctx context.Context, id string) error
	// DeleteByJobs removes every candidate whose job reference is in the
	// given set and returns the IDs of the removed rows.
	DeleteByJobs(ctx context.Context, jobIDs []string) ([]string, error)
}

// LeadRepository defines the interface for sales-pipeline data operations.
type LeadRepository interface {
	TableStore
	List(ctx context.Context) ([]models.Lead, error)
	GetByID(ctx context.Context, id string) (*models.Lead, error)
	Create(ctx context.Context, lead *models.Lead) (*models.Lead, error)
	Update(ctx context.Context, lead *models.Lead) (*models.Lead, error)
	Delete(ctx context.Context, id string) error
}

// AuditLogRepository is the append-only action log. Append never mutates
// or removes prior entries.
type AuditLogRepository interface {
	Append(ctx context.Context, entry *models.AuditEntry) error
	List(ctx context.Context) ([]models.AuditEntry, error)
	ExportCSV(ctx context.Context) ([]byte, error)
}
