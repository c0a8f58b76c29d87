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

type leadService struct {
	leadRepo  storage.LeadRepository
	auditRepo storage.AuditLogRepository
}

// NewLeadService creates a new instance of LeadService.
func NewLeadService(leadRepo storage.LeadRepository, auditRepo storage.AuditLogRepository) LeadService {
	return &leadService{leadRepo: leadRepo, auditRepo: auditRepo}
}

func (s *leadService) audit(ctx context.Context, entry models.AuditEntry) {
	if err := s.auditRepo.Append(ctx, &entry); err != nil {
		log.Printf("LeadService: Error writing audit entry: %v", err)
	}
}

func (s *leadService) List(ctx context.Context, req *dto.ListLeadsRequest) ([]models.Lead, error) {
	leads, err := s.leadRepo.List(ctx)
	if err != nil {
		log.Printf("LeadService: Error listing leads: %v", err)
		return nil, fmt.Errorf("internal error listing leads: %w", err)
	}
	if req == nil || req.Status == "" {
		return leads, nil
	}
	filtered := make([]models.Lead, 0, len(leads))
	for _, l := range leads {
		if l.Status == req.Status {
			filtered = append(filtered, l)
		}
	}
	return filtered, nil
}

// Funnel groups every lead into the fixed stage order for the Kanban view.
// Leads carrying a non-canonical status are left out of the board.
func (s *leadService) Funnel(ctx context.Context) ([]dto.FunnelColumn, error) {
	leads, err := s.leadRepo.List(ctx)
	if err != nil {
		log.Printf("LeadService: Error loading leads for funnel: %v", err)
		return nil, fmt.Errorf("internal error building funnel: %w", err)
	}

	columns := make([]dto.FunnelColumn, len(models.LeadStages))
	for i, stage := range models.LeadStages {
		columns[i] = dto.FunnelColumn{Stage: stage, Leads: []dto.LeadResponse{}}
	}
	for _, l := range leads {
		idx := models.LeadStageIndex(l.Status)
		if idx < 0 {
			continue
		}
		columns[idx].Leads = append(columns[idx].Leads, leadToResponse(&l))
	}
	return columns, nil
}

func leadToResponse(l *models.Lead) dto.LeadResponse {
	return dto.LeadResponse{
		ID:      l.ID,
		Date:    l.Date,
		Company: l.Company,
		City:    l.City,
		State:   l.State,
		Name:    l.Name,
		Phone:   l.Phone,
		Email:   l.Email,
		Product: l.Product,
		Channel: l.Channel,
		Status:  l.Status,
	}
}

func (s *leadService) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "getting lead by ID")
	}
	return lead, nil
}

func (s *leadService) Create(ctx context.Context, req *dto.CreateLeadRequest) (*models.Lead, error) {
	lead := &models.Lead{
		Date:    today(),
		Company: req.Company,
		City:    req.City,
		State:   strings.ToUpper(req.State),
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Product: req.Product,
		Channel: req.Channel,
		Status:  models.LeadStageInitial,
	}
	created, err := s.leadRepo.Create(ctx, lead)
	if err != nil {
		log.Printf("LeadService: Error creating lead: %v", err)
		return nil, fmt.Errorf("internal error creating lead: %w", err)
	}
	s.audit(ctx, models.AuditEntry{
		Actor:  req.Actor,
		Tab:    models.AuditTabLeads,
		Action: models.AuditActionCreate,
		ItemID: created.ID,
		Detail: fmt.Sprintf("Lead criado (ID %s, empresa %s).", created.ID, created.Company),
	})
	return created, nil
}

func (s *leadService) Update(ctx context.Context, req *dto.UpdateLeadRequest) (*models.Lead, error) {
	existing, err := s.leadRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, "fetching lead for update")
	}

	// Direct status edits may jump stages, but only to canonical ones.
	if req.Status != nil && models.LeadStageIndex(*req.Status) < 0 {
		return nil, fmt.Errorf("%w: invalid funnel stage %q", ErrValidation, *req.Status)
	}
	if req.State != nil {
		upper := strings.ToUpper(*req.State)
		req.State = &upper
	}

	var changes []fieldChange
	applyChange(&existing.Company, req.Company, "Empresa", &changes)
	applyChange(&existing.City, req.City, "Cidade", &changes)
	applyChange(&existing.State, req.State, "UF", &changes)
	applyChange(&existing.Name, req.Name, "Nome", &changes)
	applyChange(&existing.Phone, req.Phone, "Telefone", &changes)
	applyChange(&existing.Email, req.Email, "E-mail", &changes)
	applyChange(&existing.Product, req.Product, "Produto", &changes)
	applyChange(&existing.Channel, req.Channel, "Canal", &changes)
	applyChange(&existing.Status, req.Status, "Status", &changes)
	if len(changes) == 0 {
		return existing, nil
	}

	updated, err := s.leadRepo.Update(ctx, existing)
	if err != nil {
		return nil, mapRepoError(err, "updating lead")
	}
	for _, ch := range changes {
		s.audit(ctx, models.AuditEntry{
			Actor:    req.Actor,
			Tab:      models.AuditTabLeads,
			Action:   models.AuditActionEdit,
			ItemID:   updated.ID,
			Field:    ch.field,
			OldValue: ch.old,
			NewValue: ch.new,
		})
	}
	return updated, nil
}

// MoveStage advances or regresses the lead exactly one funnel position. A
// move past either end, or from a status that is not a canonical stage,
// fails with ErrInvalidStage and leaves the record untouched.
func (s *leadService) MoveStage(ctx context.Context, req *dto.MoveStageRequest) (*models.Lead, error) {
	existing, err := s.leadRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, "fetching lead for stage move")
	}

	idx := models.LeadStageIndex(existing.Status)
	if idx < 0 {
		return nil, fmt.Errorf("%w: lead %s has non-canonical stage %q", ErrInvalidStage, existing.ID, existing.Status)
	}
	next := idx + 1
	if req.Direction == "backward" {
		next = idx - 1
	}
	if next < 0 || next >= len(models.LeadStages) {
		return nil, fmt.Errorf("%w: cannot move %s from %q", ErrInvalidStage, req.Direction, existing.Status)
	}

	old := existing.Status
	existing.Status = models.LeadStages[next]
	updated, err := s.leadRepo.Update(ctx, existing)
	if err != nil {
		return nil, mapRepoError(err, "updating lead stage")
	}
	s.audit(ctx, models.AuditEntry{
		Actor:    req.Actor,
		Tab:      models.AuditTabLeads,
		Action:   models.AuditActionEdit,
		ItemID:   updated.ID,
		Field:    "Status",
		OldValue: old,
		NewValue: updated.Status,
		Detail:   "Movido no funil",
	})
	return updated, nil
}

func (s *leadService) Delete(ctx context.Context, id, actor string) error {
	if err := s.leadRepo.Delete(ctx, id); err != nil {
		return mapRepoError(err, "deleting lead")
	}
	s.audit(ctx, models.AuditEntry{
		Actor:  actor,
		Tab:    models.AuditTabLeads,
		Action: models.AuditActionDelete,
		ItemID: id,
		Detail: fmt.Sprintf("Lead excluído (ID %s).", id),
	})
	return nil
}

func (s *leadService) Import(ctx context.Context, actor, filename string, file io.Reader) (int, error) {
	added, err := importTable(ctx, s.leadRepo, filename, file)
	if err != nil {
		return 0, err
	}
	s.audit(ctx, models.AuditEntry{
		Actor:  actor,
		Tab:    models.AuditTabLeads,
		Action: models.AuditActionImport,
		Detail: fmt.Sprintf("%d lead(s) importado(s) de %s.", added, filename),
	})
	return added, nil
}

func (s *leadService) ExportCSV(ctx context.Context) ([]byte, error) {
	return s.leadRepo.ExportCSV(ctx)
}
