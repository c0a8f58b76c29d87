package csvfile

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strconv"

	"parma-backoffice/internal/models"
	"parma-backoffice/internal/storage"
)

const leadsFile = "comercial.csv"

var leadColumns = []string{
	"ID", "Data", "Empresa", "Cidade", "UF", "Nome", "Telefone",
	"E-mail", "Produto", "Canal", "Status",
}

// LeadRepo implements storage.LeadRepository on top of comercial.csv.
type LeadRepo struct {
	tableStore
}

// NewLeadRepo creates a new LeadRepo rooted at the data directory.
func NewLeadRepo(dataDir string) *LeadRepo {
	return &LeadRepo{tableStore{path: filepath.Join(dataDir, leadsFile), columns: leadColumns}}
}

// Compile-time check to ensure LeadRepo implements LeadRepository
var _ storage.LeadRepository = (*LeadRepo)(nil)

func leadFromRow(row map[string]string) models.Lead {
	return models.Lead{
		ID:      row["ID"],
		Date:    row["Data"],
		Company: row["Empresa"],
		City:    row["Cidade"],
		State:   row["UF"],
		Name:    row["Nome"],
		Phone:   row["Telefone"],
		Email:   row["E-mail"],
		Product: row["Produto"],
		Channel: row["Canal"],
		Status:  row["Status"],
	}
}

func leadToRow(l *models.Lead) map[string]string {
	return map[string]string{
		"ID":       l.ID,
		"Data":     l.Date,
		"Empresa":  l.Company,
		"Cidade":   l.City,
		"UF":       l.State,
		"Nome":     l.Name,
		"Telefone": l.Phone,
		"E-mail":   l.Email,
		"Produto":  l.Product,
		"Canal":    l.Channel,
		"Status":   l.Status,
	}
}

// List returns every lead in file order.
func (r *LeadRepo) List(ctx context.Context) ([]models.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.load()
	leads := make([]models.Lead, 0, len(t.Rows))
	for _, row := range t.Rows {
		leads = append(leads, leadFromRow(row))
	}
	return leads, nil
}

// GetByID retrieves a specific lead by its ID.
func (r *LeadRepo) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.load()
	i := t.IndexByID(id)
	if i < 0 {
		return nil, storage.ErrNotFound
	}
	l := leadFromRow(t.Rows[i])
	return &l, nil
}

// Create saves a new lead, assigning the next available ID.
func (r *LeadRepo) Create(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.load()
	created := *lead
	created.ID = strconv.Itoa(t.NextID())
	t.Rows = append(t.Rows, leadToRow(&created))
	if err := t.Save(r.path); err != nil {
		log.Printf("Error saving lead %s: %v", created.ID, err)
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}
	return &created, nil
}

// Update replaces the stored row for the lead's ID.
func (r *LeadRepo) Update(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.load()
	i := t.IndexByID(lead.ID)
	if i < 0 {
		return nil, storage.ErrNotFound
	}
	t.Rows[i] = leadToRow(lead)
	if err := t.Save(r.path); err != nil {
		log.Printf("Error updating lead %s: %v", lead.ID, err)
		return nil, fmt.Errorf("failed to update lead %s: %w", lead.ID, err)
	}
	updated := *lead
	return &updated, nil
}

// Delete removes a lead row by its ID.
func (r *LeadRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.load()
	i := t.IndexByID(id)
	if i < 0 {
		return storage.ErrNotFound
	}
	t.Rows = append(t.Rows[:i], t.Rows[i+1:]...)
	if err := t.Save(r.path); err != nil {
		log.Printf("Error deleting lead %s: %v", id, err)
		return fmt.Errorf("failed to delete lead %s: %w", id, err)
	}
	return nil
}
