package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"parma-backoffice/config"
	"parma-backoffice/internal/models"
	"parma-backoffice/internal/storage"
	"parma-backoffice/internal/transport/dto"
)

type candidateService struct {
	candRepo   storage.CandidateRepository
	jobRepo    storage.JobRepository
	clientRepo storage.ClientRepository
	auditRepo  storage.AuditLogRepository

	propagateOnCreate bool
	reopenStatus      models.JobStatus
}

// NewCandidateService creates a new instance of CandidateService. The
// propagation policy settles the two behaviors that vary by deployment.
func NewCandidateService(
	candRepo storage.CandidateRepository,
	jobRepo storage.JobRepository,
	clientRepo storage.ClientRepository,
	auditRepo storage.AuditLogRepository,
	policy config.PropagationConfig,
) CandidateService {
	reopen := models.JobStatus(policy.ReopenStatus)
	if !reopen.Valid() {
		reopen = models.JobStatusReopened
	}
	return &candidateService{
		candRepo:          candRepo,
		jobRepo:           jobRepo,
		clientRepo:        clientRepo,
		auditRepo:         auditRepo,
		propagateOnCreate: policy.OnCreate,
		reopenStatus:      reopen,
	}
}

func (s *candidateService) audit(ctx context.Context, entry models.AuditEntry) {
	if err := s.auditRepo.Append(ctx, &entry); err != nil {
		log.Printf("CandidateService: Error writing audit entry: %v", err)
	}
}

// jobJoin resolves a candidate's job into the (client name, role) pair
// shown on the candidate screen.
func (s *candidateService) jobJoin(ctx context.Context) (map[string]models.Job, map[string]string) {
	jobs := map[string]models.Job{}
	names := map[string]string{}
	list, err := s.jobRepo.List(ctx)
	if err != nil {
		log.Printf("CandidateService: Error loading jobs for join: %v", err)
		return jobs, names
	}
	for _, j := range list {
		jobs[j.ID] = j
	}
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		log.Printf("CandidateService: Error loading clients for join: %v", err)
		return jobs, names
	}
	for _, c := range clients {
		names[c.ID] = c.Company
	}
	return jobs, names
}

func candidateToResponse(c *models.Candidate, job models.Job, clientName string) dto.CandidateResponse {
	return dto.CandidateResponse{
		ID:        c.ID,
		JobID:     c.JobID,
		Client:    clientName,
		Role:      job.Role,
		Name:      c.Name,
		Phone:     c.Phone,
		Recruiter: c.Recruiter,
		Status:    string(c.Status),
		StartDate: c.StartDate,
	}
}

func (s *candidateService) List(ctx context.Context, req *dto.ListCandidatesRequest) ([]dto.CandidateResponse, error) {
	cands, err := s.candRepo.List(ctx)
	if err != nil {
		log.Printf("CandidateService: Error listing candidates: %v", err)
		return nil, fmt.Errorf("internal error listing candidates: %w", err)
	}
	jobs, names := s.jobJoin(ctx)

	responses := make([]dto.CandidateResponse, 0, len(cands))
	for i := range cands {
		c := &cands[i]
		job := jobs[c.JobID]
		if req != nil {
			if req.JobID != "" && c.JobID != req.JobID {
				continue
			}
			if req.ClientID != "" && job.ClientID != req.ClientID {
				continue
			}
			if req.Role != "" && !strings.EqualFold(job.Role, req.Role) {
				continue
			}
			if req.Recruiter != "" && !strings.EqualFold(c.Recruiter, req.Recruiter) {
				continue
			}
			if req.Status != "" && string(c.Status) != req.Status {
				continue
			}
		}
		responses = append(responses, candidateToResponse(c, job, names[job.ClientID]))
	}
	return responses, nil
}

func (s *candidateService) GetByID(ctx context.Context, id string) (*dto.CandidateResponse, error) {
	cand, err := s.candRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "getting candidate by ID")
	}
	jobs, names := s.jobJoin(ctx)
	job := jobs[cand.JobID]
	resp := candidateToResponse(cand, job, names[job.ClientID])
	return &resp, nil
}

func (s *candidateService) Create(ctx context.Context, req *dto.CreateCandidateRequest) (*dto.CandidateResponse, error) {
	// The job reference must resolve; orphan candidates are rejected at
	// write time rather than filtered at load time.
	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, mapRepoError(err, "resolving job for new candidate")
	}

	cand := &models.Candidate{
		JobID:     job.ID,
		Name:      req.Name,
		Phone:     req.Phone,
		Recruiter: req.Recruiter,
		Status:    models.CandidateStatusSubmitted,
	}
	created, err := s.candRepo.Create(ctx, cand)
	if err != nil {
		log.Printf("CandidateService: Error creating candidate: %v", err)
		return nil, fmt.Errorf("internal error creating candidate: %w", err)
	}
	s.audit(ctx, models.AuditEntry{
		Actor:  req.Actor,
		Tab:    models.AuditTabCandidates,
		Action: models.AuditActionCreate,
		ItemID: created.ID,
		Detail: fmt.Sprintf("Candidato criado (ID %s, vaga %s).", created.ID, job.ID),
	})

	// The engine fires on edit; the policy flag extends it to creation.
	if s.propagateOnCreate {
		s.propagateJobStatus(ctx, created, req.Actor)
	}

	_, names := s.jobJoin(ctx)
	resp := candidateToResponse(created, *job, names[job.ClientID])
	return &resp, nil
}

func (s *candidateService) Update(ctx context.Context, req *dto.UpdateCandidateRequest) (*dto.CandidateResponse, error) {
	existing, err := s.candRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, "fetching candidate for update")
	}

	if req.Status != nil && !models.CandidateStatus(*req.Status).Valid() {
		return nil, fmt.Errorf("%w: invalid candidate status %q", ErrValidation, *req.Status)
	}
	// A malformed start date rejects the whole edit before any write.
	if req.StartDate != nil && *req.StartDate != "" {
		if _, err := parseDate(*req.StartDate); err != nil {
			return nil, fmt.Errorf("%w: start date %q is not in dd/mm/yyyy format", ErrValidation, *req.StartDate)
		}
	}

	var changes []fieldChange
	applyChange(&existing.Name, req.Name, "Nome", &changes)
	applyChange(&existing.Phone, req.Phone, "Telefone", &changes)
	applyChange(&existing.Recruiter, req.Recruiter, "Recrutador", &changes)
	status := string(existing.Status)
	applyChange(&status, req.Status, "Status", &changes)
	existing.Status = models.CandidateStatus(status)
	applyChange(&existing.StartDate, req.StartDate, "Data de Início", &changes)
	if len(changes) == 0 {
		jobs, names := s.jobJoin(ctx)
		job := jobs[existing.JobID]
		resp := candidateToResponse(existing, job, names[job.ClientID])
		return &resp, nil
	}

	updated, err := s.candRepo.Update(ctx, existing)
	if err != nil {
		return nil, mapRepoError(err, "updating candidate")
	}
	for _, ch := range changes {
		s.audit(ctx, models.AuditEntry{
			Actor:    req.Actor,
			Tab:      models.AuditTabCandidates,
			Action:   models.AuditActionEdit,
			ItemID:   updated.ID,
			Field:    ch.field,
			OldValue: ch.old,
			NewValue: ch.new,
		})
	}

	s.propagateJobStatus(ctx, updated, req.Actor)

	jobs, names := s.jobJoin(ctx)
	job := jobs[updated.JobID]
	resp := candidateToResponse(updated, job, names[job.ClientID])
	return &resp, nil
}

// propagateJobStatus inspects the linked job after a candidate change and
// may transition it. Every propagated mutation is its own audit entry,
// attributed to the automatic-update action rather than a manual edit.
//
// Rules, in order:
//  1. Validado with no start date moves an open job to awaiting start.
//  2. Validado with a start date on or before today closes the job
//     unless it is already closed. Calendar dates only.
//  3. Any other status on a job that is awaiting start or closed reopens
//     it to the configured reopen status.
func (s *candidateService) propagateJobStatus(ctx context.Context, cand *models.Candidate, actor string) {
	job, err := s.jobRepo.GetByID(ctx, cand.JobID)
	if err != nil {
		// Unresolvable job reference: skip propagation, never fail the edit.
		return
	}

	var next models.JobStatus
	switch {
	case cand.Status == models.CandidateStatusValidated && cand.StartDate == "":
		if job.Status == models.JobStatusOpen {
			next = models.JobStatusAwaitingStart
		}
	case cand.Status == models.CandidateStatusValidated:
		start, err := parseDate(cand.StartDate)
		if err != nil {
			return
		}
		if onOrBeforeToday(start) && job.Status != models.JobStatusClosed {
			next = models.JobStatusClosed
		}
	default:
		if job.Status == models.JobStatusAwaitingStart || job.Status == models.JobStatusClosed {
			next = s.reopenStatus
		}
	}
	if next == "" || next == job.Status {
		return
	}

	old := job.Status
	job.Status = next
	job.UpdatedAt = today()
	if _, err := s.jobRepo.Update(ctx, job); err != nil {
		log.Printf("CandidateService: Error propagating status to job %s: %v", job.ID, err)
		return
	}
	s.audit(ctx, models.AuditEntry{
		Actor:    actor,
		Tab:      models.AuditTabJobs,
		Action:   models.AuditActionAutoUpdate,
		ItemID:   job.ID,
		Field:    "Status",
		OldValue: string(old),
		NewValue: string(next),
		Detail:   fmt.Sprintf("Atualização automática disparada pelo candidato %s (%s).", cand.ID, cand.Name),
	})
}

func (s *candidateService) Delete(ctx context.Context, id, actor string) error {
	if err := s.candRepo.Delete(ctx, id); err != nil {
		return mapRepoError(err, "deleting candidate")
	}
	s.audit(ctx, models.AuditEntry{
		Actor:  actor,
		Tab:    models.AuditTabCandidates,
		Action: models.AuditActionDelete,
		ItemID: id,
		Detail: fmt.Sprintf("Candidato excluído (ID %s).", id),
	})
	return nil
}

func (s *candidateService) Import(ctx context.Context, actor, filename string, file io.Reader) (int, error) {
	added, err := importTable(ctx, s.candRepo, filename, file)
	if err != nil {
		return 0, err
	}
	s.audit(ctx, models.AuditEntry{
		Actor:  actor,
		Tab:    models.AuditTabCandidates,
		Action: models.AuditActionImport,
		Detail: fmt.Sprintf("%d candidato(s) importado(s) de %s.", added, filename),
	})
	return added, nil
}

func (s *candidateService) ExportCSV(ctx context.Context) ([]byte, error) {
	return s.candRepo.ExportCSV(ctx)
}
