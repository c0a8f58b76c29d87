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

type clientService struct {
	clientRepo storage.ClientRepository
	jobRepo    storage.JobRepository
	candRepo   storage.CandidateRepository
	auditRepo  storage.AuditLogRepository
}

// NewClientService creates a new instance of ClientService.
func NewClientService(
	clientRepo storage.ClientRepository,
	jobRepo storage.JobRepository,
	candRepo storage.CandidateRepository,
	auditRepo storage.AuditLogRepository,
) ClientService {
	return &clientService{
		clientRepo: clientRepo,
		jobRepo:    jobRepo,
		candRepo:   candRepo,
		auditRepo:  auditRepo,
	}
}

func (s *clientService) audit(ctx context.Context, entry models.AuditEntry) {
	if err := s.auditRepo.Append(ctx, &entry); err != nil {
		log.Printf("ClientService: Error writing audit entry: %v", err)
	}
}

func (s *clientService) List(ctx context.Context, req *dto.ListClientsRequest) ([]models.Client, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		log.Printf("ClientService: Error listing clients: %v", err)
		return nil, fmt.Errorf("internal error listing clients: %w", err)
	}
	if req == nil || req.Company == "" {
		return clients, nil
	}
	needle := strings.ToLower(req.Company)
	filtered := make([]models.Client, 0, len(clients))
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Company), needle) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

func (s *clientService) GetByID(ctx context.Context, id string) (*models.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "getting client by ID")
	}
	return client, nil
}

func (s *clientService) Create(ctx context.Context, req *dto.CreateClientRequest) (*models.Client, error) {
	client := &models.Client{
		Date:    today(),
		Company: req.Company,
		Name:    req.Name,
		City:    req.City,
		State:   strings.ToUpper(req.State),
		Phone:   req.Phone,
		Email:   req.Email,
	}
	created, err := s.clientRepo.Create(ctx, client)
	if err != nil {
		log.Printf("ClientService: Error creating client: %v", err)
		return nil, fmt.Errorf("internal error creating client: %w", err)
	}
	s.audit(ctx, models.AuditEntry{
		Actor:  req.Actor,
		Tab:    models.AuditTabClients,
		Action: models.AuditActionCreate,
		ItemID: created.ID,
		Detail: fmt.Sprintf("Cliente criado (ID %s).", created.ID),
	})
	return created, nil
}

func (s *clientService) Update(ctx context.Context, req *dto.UpdateClientRequest) (*models.Client, error) {
	existing, err := s.clientRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, "fetching client for update")
	}

	if req.State != nil {
		upper := strings.ToUpper(*req.State)
		req.State = &upper
	}

	var changes []fieldChange
	applyChange(&existing.Company, req.Company, "Cliente", &changes)
	applyChange(&existing.Name, req.Name, "Nome", &changes)
	applyChange(&existing.City, req.City, "Cidade", &changes)
	applyChange(&existing.State, req.State, "UF", &changes)
	applyChange(&existing.Phone, req.Phone, "Telefone", &changes)
	applyChange(&existing.Email, req.Email, "E-mail", &changes)
	if len(changes) == 0 {
		return existing, nil
	}

	updated, err := s.clientRepo.Update(ctx, existing)
	if err != nil {
		return nil, mapRepoError(err, "updating client")
	}
	for _, ch := range changes {
		s.audit(ctx, models.AuditEntry{
			Actor:    req.Actor,
			Tab:      models.AuditTabClients,
			Action:   models.AuditActionEdit,
			ItemID:   updated.ID,
			Field:    ch.field,
			OldValue: ch.old,
			NewValue: ch.new,
		})
	}
	return updated, nil
}

// Delete removes the client plus, transitively, its jobs and their
// candidates. The client deletion entry lists the removed job IDs and the
// two cascades get one group-level entry each, not one per row.
func (s *clientService) Delete(ctx context.Context, id, actor string) error {
	if _, err := s.clientRepo.GetByID(ctx, id); err != nil {
		return mapRepoError(err, "fetching client for delete")
	}

	if err := s.clientRepo.Delete(ctx, id); err != nil {
		return mapRepoError(err, "deleting client")
	}

	jobIDs, err := s.jobRepo.DeleteByClient(ctx, id)
	if err != nil {
		log.Printf("ClientService: Error cascading jobs for client %s: %v", id, err)
		return fmt.Errorf("internal error cascading job deletion: %w", err)
	}
	candIDs, err := s.candRepo.DeleteByJobs(ctx, jobIDs)
	if err != nil {
		log.Printf("ClientService: Error cascading candidates for client %s: %v", id, err)
		return fmt.Errorf("internal error cascading candidate deletion: %w", err)
	}

	s.audit(ctx, models.AuditEntry{
		Actor:  actor,
		Tab:    models.AuditTabClients,
		Action: models.AuditActionDelete,
		ItemID: id,
		Detail: fmt.Sprintf("Cliente excluído. Vagas removidas: %s", joinOrNone(jobIDs)),
	})
	if len(jobIDs) > 0 {
		s.audit(ctx, models.AuditEntry{
			Actor:  actor,
			Tab:    models.AuditTabJobs,
			Action: models.AuditActionCascadeDelete,
			ItemID: id,
			Detail: fmt.Sprintf("%d vaga(s) removida(s) junto com o cliente %s: %s", len(jobIDs), id, strings.Join(jobIDs, ", ")),
		})
	}
	if len(candIDs) > 0 {
		s.audit(ctx, models.AuditEntry{
			Actor:  actor,
			Tab:    models.AuditTabCandidates,
			Action: models.AuditActionCascadeDelete,
			ItemID: id,
			Detail: fmt.Sprintf("%d candidato(s) removido(s) junto com o cliente %s: %s", len(candIDs), id, strings.Join(candIDs, ", ")),
		})
	}
	return nil
}

func (s *clientService) Import(ctx context.Context, actor, filename string, file io.Reader) (int, error) {
	added, err := importTable(ctx, s.clientRepo, filename, file)
	if err != nil {
		return 0, err
	}
	s.audit(ctx, models.AuditEntry{
		Actor:  actor,
		Tab:    models.AuditTabClients,
		Action: models.AuditActionImport,
		Detail: fmt.Sprintf("%d cliente(s) importado(s) de %s.", added, filename),
	})
	return added, nil
}

func (s *clientService) ExportCSV(ctx context.Context) ([]byte, error) {
	return s.clientRepo.ExportCSV(ctx)
}

func joinOrNone(ids []string) string {
	if len(ids) == 0 {
		return "nenhuma"
	}
	return strings.Join(ids, ", ")
}
