package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"parma-backoffice/internal/models"
	"parma-backoffice/internal/storage"
	"parma-backoffice/internal/transport/dto"
)

type jobService struct {
	jobRepo    storage.JobRepository
	clientRepo storage.ClientRepository
	candRepo   storage.CandidateRepository
	auditRepo  storage.AuditLogRepository
}

// NewJobService creates a new instance of JobService.
func NewJobService(
	jobRepo storage.JobRepository,
	clientRepo storage.ClientRepository,
	candRepo storage.CandidateRepository,
	auditRepo storage.AuditLogRepository,
) JobService {
	return &jobService{
		jobRepo:    jobRepo,
		clientRepo: clientRepo,
		candRepo:   candRepo,
		auditRepo:  auditRepo,
	}
}

func (s *jobService) audit(ctx context.Context, entry models.AuditEntry) {
	if err := s.auditRepo.Append(ctx, &entry); err != nil {
		log.Printf("JobService: Error writing audit entry: %v", err)
	}
}

// clientNames builds the ID -> company-name join map for responses.
func (s *jobService) clientNames(ctx context.Context) map[string]string {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		log.Printf("JobService: Error loading clients for name join: %v", err)
		return map[string]string{}
	}
	names := make(map[string]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.Company
	}
	return names
}

func jobToResponse(j *models.Job, clientName string) dto.JobResponse {
	return dto.JobResponse{
		ID:          j.ID,
		ClientID:    j.ClientID,
		Client:      clientName,
		Status:      string(j.Status),
		OpeningDate: j.OpeningDate,
		Role:        j.Role,
		Recruiter:   j.Recruiter,
		UpdatedAt:   j.UpdatedAt,
		SalaryFrom:  j.SalaryFrom,
		SalaryTo:    j.SalaryTo,
		Description: j.Description,
	}
}

func (s *jobService) List(ctx context.Context, req *dto.ListJobsRequest) ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.List(ctx)
	if err != nil {
		log.Printf("JobService: Error listing jobs: %v", err)
		return nil, fmt.Errorf("internal error listing jobs: %w", err)
	}
	names := s.clientNames(ctx)

	responses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		j := &jobs[i]
		if req != nil {
			if req.ClientID != "" && j.ClientID != req.ClientID {
				continue
			}
			if req.Role != "" && !strings.EqualFold(j.Role, req.Role) {
				continue
			}
			if req.Recruiter != "" && !strings.EqualFold(j.Recruiter, req.Recruiter) {
				continue
			}
			if req.Status != "" && string(j.Status) != req.Status {
				continue
			}
		}
		responses = append(responses, jobToResponse(j, names[j.ClientID]))
	}
	return responses, nil
}

func (s *jobService) GetByID(ctx context.Context, id string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "getting job by ID")
	}
	resp := jobToResponse(job, s.clientNames(ctx)[job.ClientID])
	return &resp, nil
}

func (s *jobService) Create(ctx context.Context, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	// The client reference must resolve; orphan jobs are rejected at
	// write time rather than filtered at load time.
	client, err := s.clientRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		return nil, mapRepoError(err, "resolving client for new job")
	}

	job := &models.Job{
		ClientID:    client.ID,
		Status:      models.JobStatusOpen,
		OpeningDate: today(),
		Role:        req.Role,
		Recruiter:   req.Recruiter,
		SalaryFrom:  req.SalaryFrom,
		SalaryTo:    req.SalaryTo,
		Description: req.Description,
	}
	created, err := s.jobRepo.Create(ctx, job)
	if err != nil {
		log.Printf("JobService: Error creating job: %v", err)
		return nil, fmt.Errorf("internal error creating job: %w", err)
	}
	s.audit(ctx, models.AuditEntry{
		Actor:  req.Actor,
		Tab:    models.AuditTabJobs,
		Action: models.AuditActionCreate,
		ItemID: created.ID,
		Detail: fmt.Sprintf("Vaga criada (ID %s, cliente %s).", created.ID, client.Company),
	})
	resp := jobToResponse(created, client.Company)
	return &resp, nil
}

func (s *jobService) Update(ctx context.Context, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	existing, err := s.jobRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, "fetching job for update")
	}

	if req.Status != nil && !models.JobStatus(*req.Status).Valid() {
		return nil, fmt.Errorf("%w: invalid job status %q", ErrValidation, *req.Status)
	}
	if req.ClientID != nil {
		if _, err := s.clientRepo.GetByID(ctx, *req.ClientID); err != nil {
			return nil, mapRepoError(err, "resolving client for job update")
		}
	}

	var changes []fieldChange
	applyChange(&existing.ClientID, req.ClientID, "ClienteID", &changes)
	status := string(existing.Status)
	applyChange(&status, req.Status, "Status", &changes)
	existing.Status = models.JobStatus(status)
	applyChange(&existing.Role, req.Role, "Cargo", &changes)
	applyChange(&existing.Recruiter, req.Recruiter, "Recrutador", &changes)
	applyChange(&existing.SalaryFrom, req.SalaryFrom, "Salário 1", &changes)
	applyChange(&existing.SalaryTo, req.SalaryTo, "Salário 2", &changes)
	applyChange(&existing.Description, req.Description, "Descrição", &changes)
	if len(changes) == 0 {
		resp := jobToResponse(existing, s.clientNames(ctx)[existing.ClientID])
		return &resp, nil
	}
	existing.UpdatedAt = today()

	updated, err := s.jobRepo.Update(ctx, existing)
	if err != nil {
		return nil, mapRepoError(err, "updating job")
	}
	for _, ch := range changes {
		s.audit(ctx, models.AuditEntry{
			Actor:    req.Actor,
			Tab:      models.AuditTabJobs,
			Action:   models.AuditActionEdit,
			ItemID:   updated.ID,
			Field:    ch.field,
			OldValue: ch.old,
			NewValue: ch.new,
		})
	}
	resp := jobToResponse(updated, s.clientNames(ctx)[updated.ClientID])
	return &resp, nil
}

// Delete removes the job and cascades to its candidates, logging the job
// deletion and one group-level entry for the candidate cascade.
func (s *jobService) Delete(ctx context.Context, id, actor string) error {
	if _, err := s.jobRepo.GetByID(ctx, id); err != nil {
		return mapRepoError(err, "fetching job for delete")
	}

	if err := s.jobRepo.Delete(ctx, id); err != nil {
		return mapRepoError(err, "deleting job")
	}
	candIDs, err := s.candRepo.DeleteByJobs(ctx, []string{id})
	if err != nil {
		log.Printf("JobService: Error cascading candidates for job %s: %v", id, err)
		return fmt.Errorf("internal error cascading candidate deletion: %w", err)
	}

	s.audit(ctx, models.AuditEntry{
		Actor:  actor,
		Tab:    models.AuditTabJobs,
		Action: models.AuditActionDelete,
		ItemID: id,
		Detail: fmt.Sprintf("Vaga excluída. Candidatos removidos: %s", joinOrNone(candIDs)),
	})
	if len(candIDs) > 0 {
		s.audit(ctx, models.AuditEntry{
			Actor:  actor,
			Tab:    models.AuditTabCandidates,
			Action: models.AuditActionCascadeDelete,
			ItemID: id,
			Detail: fmt.Sprintf("%d candidato(s) removido(s) junto com a vaga %s: %s", len(candIDs), id, strings.Join(candIDs, ", ")),
		})
	}
	return nil
}

func (s *jobService) Import(ctx context.Context, actor, filename string, file io.Reader) (int, error) {
	added, err := importTable(ctx, s.jobRepo, filename, file)
	if err != nil {
		return 0, err
	}
	s.audit(ctx, models.AuditEntry{
		Actor:  actor,
		Tab:    models.AuditTabJobs,
		Action: models.AuditActionImport,
		Detail: fmt.Sprintf("%d vaga(s) importada(s) de %s.", added, filename),
	})
	return added, nil
}

func (s *jobService) ExportCSV(ctx context.Context) ([]byte, error) {
	return s.jobRepo.ExportCSV(ctx)
}
