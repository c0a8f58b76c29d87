package services_test

import (
	"context"
	"testing"

	"parma-backoffice/config"
	"parma-backoffice/internal/models"
	"parma-backoffice/internal/services"
	"parma-backoffice/internal/storage/csvfile"

	"github.com/stretchr/testify/require"
)

// env wires every service against real CSV repositories in a temp dir, the
// same topology main builds.
type env struct {
	ctx context.Context

	clientRepo *csvfile.ClientRepo
	jobRepo    *csvfile.JobRepo
	candRepo   *csvfile.CandidateRepo
	leadRepo   *csvfile.LeadRepo
	auditRepo  *csvfile.AuditRepo

	clientSvc services.ClientService
	jobSvc    services.JobService
	candSvc   services.CandidateService
	leadSvc   services.LeadService
	auditSvc  services.AuditService
}

func defaultPolicy() config.PropagationConfig {
	return config.PropagationConfig{OnCreate: false, ReopenStatus: "Reaberta"}
}

func newEnv(t *testing.T) *env {
	return newEnvWithPolicy(t, defaultPolicy())
}

func newEnvWithPolicy(t *testing.T, policy config.PropagationConfig) *env {
	t.Helper()
	dir := t.TempDir()
	e := &env{
		ctx:        context.Background(),
		clientRepo: csvfile.NewClientRepo(dir),
		jobRepo:    csvfile.NewJobRepo(dir),
		candRepo:   csvfile.NewCandidateRepo(dir),
		leadRepo:   csvfile.NewLeadRepo(dir),
		auditRepo:  csvfile.NewAuditRepo(dir),
	}
	e.clientSvc = services.NewClientService(e.clientRepo, e.jobRepo, e.candRepo, e.auditRepo)
	e.jobSvc = services.NewJobService(e.jobRepo, e.clientRepo, e.candRepo, e.auditRepo)
	e.candSvc = services.NewCandidateService(e.candRepo, e.jobRepo, e.clientRepo, e.auditRepo, policy)
	e.leadSvc = services.NewLeadService(e.leadRepo, e.auditRepo)
	e.auditSvc = services.NewAuditService(e.auditRepo)
	return e
}

// Seeding goes through the repositories directly so the action log only
// carries the entries the test under scrutiny produced.

func seedClient(t *testing.T, e *env, company string) *models.Client {
	t.Helper()
	client, err := e.clientRepo.Create(e.ctx, &models.Client{
		Date: "01/01/2025", Company: company, Name: "Contato",
		City: "São Paulo", State: "SP", Phone: "11 99999-0000", Email: "c@x.com",
	})
	require.NoError(t, err)
	return client
}

func seedJob(t *testing.T, e *env, clientID string, status models.JobStatus) *models.Job {
	t.Helper()
	job, err := e.jobRepo.Create(e.ctx, &models.Job{
		ClientID: clientID, Status: status, OpeningDate: "01/01/2025",
		Role: "Analista", Recruiter: "Lorrayne",
	})
	require.NoError(t, err)
	return job
}

func seedCandidate(t *testing.T, e *env, jobID string, status models.CandidateStatus, startDate string) *models.Candidate {
	t.Helper()
	cand, err := e.candRepo.Create(e.ctx, &models.Candidate{
		JobID: jobID, Name: "Fulano", Phone: "11 98888-0000",
		Recruiter: "Lorrayne", Status: status, StartDate: startDate,
	})
	require.NoError(t, err)
	return cand
}

// auditEntries filters the persisted log by tab and action.
func auditEntries(t *testing.T, e *env, tab, action string) []models.AuditEntry {
	t.Helper()
	entries, err := e.auditRepo.List(e.ctx)
	require.NoError(t, err)
	var out []models.AuditEntry
	for _, entry := range entries {
		if entry.Tab == tab && entry.Action == action {
			out = append(out, entry)
		}
	}
	return out
}

func ptr(s string) *string { return &s }
