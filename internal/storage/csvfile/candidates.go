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

const candidatesFile = "candidatos.csv"

var candidateColumns = []string{
	"ID", "VagaID", "Nome", "Telefone", "Recrutador", "Status", "Data de Início",
}

// CandidateRepo implements storage.CandidateRepository on top of candidatos.csv.
type CandidateRepo struct {
	tableStore
}

// NewCandidateRepo creates a new CandidateRepo rooted at the data directory.
func NewCandidateRepo(dataDir string) *CandidateRepo {
	return &CandidateRepo{tableStore{path: filepath.Join(dataDir, candidatesFile), columns: candidateColumns}}
}

// Compile-time check to ensure CandidateRepo implements CandidateRepository
var _ storage.CandidateRepository = (*CandidateRepo)(nil)

func candidateFromRow(row map[string]string) models.Candidate {
	return models.Candidate{
		ID:        row["ID"],
		JobID:     CanonicalID(row["VagaID"]),
		Name:      row["Nome"],
		Phone:     row["Telefone"],
		Recruiter: row["Recrutador"],
		Status:    models.CandidateStatus(row["Status"]),
		StartDate: row["Data de Início"],
	}
}

func candidateToRow(c *models.Candidate) map[string]string {
	return map[string]string{
		"ID":             c.ID,
		"VagaID":         c.JobID,
		"Nome":           c.Name,
		"Telefone":       c.Phone,
		"Recrutador":     c.Recruiter,
		"Status":         string(c.Status),
		"Data de Início": c.StartDate,
	}
}

// List returns every candidate in file order.
func (r *CandidateRepo) List(ctx context.Context) ([]models.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.load()
	cands := make([]models.Candidate, 0, len(t.Rows))
	for _, row := range t.Rows {
		cands = append(cands, candidateFromRow(row))
	}
	return cands, nil
}

// GetByID retrieves a specific candidate by its ID.
func (r *CandidateRepo) GetByID(ctx context.Context, id string) (*models.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.load()
	i := t.IndexByID(id)
	if i < 0 {
		return nil, storage.ErrNotFound
	}
	c := candidateFromRow(t.Rows[i])
	return &c, nil
}

// ListByJob returns the candidates submitted against a job.
func (r *CandidateRepo) ListByJob(ctx context.Context, jobID string) ([]models.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	jobID = CanonicalID(jobID)
	t := r.load()
	cands := []models.Candidate{}
	for _, row := range t.Rows {
		if CanonicalID(row["VagaID"]) == jobID {
			cands = append(cands, candidateFromRow(row))
		}
	}
	return cands, nil
}

// Create saves a new candidate, assigning the next available ID.
func (r *CandidateRepo) Create(ctx context.Context, cand *models.Candidate) (*models.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.load()
	created := *cand
	created.ID = strconv.Itoa(t.NextID())
	t.Rows = append(t.Rows, candidateToRow(&created))
	if err := t.Save(r.path); err != nil {
		log.Printf("Error saving candidate %s: %v", created.ID, err)
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	return &created, nil
}

// Update replaces the stored row for the candidate's ID.
func (r *CandidateRepo) Update(ctx context.Context, cand *models.Candidate) (*models.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.load()
	i := t.IndexByID(cand.ID)
	if i < 0 {
		return nil, storage.ErrNotFound
	}
	t.Rows[i] = candidateToRow(cand)
	if err := t.Save(r.path); err != nil {
		log.Printf("Error updating candidate %s: %v", cand.ID, err)
		return nil, fmt.Errorf("failed to update candidate %s: %w", cand.ID, err)
	}
	updated := *cand
	return &updated, nil
}

// Delete removes a candidate row by its ID.
func (r *CandidateRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.load()
	i := t.IndexByID(id)
	if i < 0 {
		return storage.ErrNotFound
	}
	t.Rows = append(t.Rows[:i], t.Rows[i+1:]...)
	if err := t.Save(r.path); err != nil {
		log.Printf("Error deleting candidate %s: %v", id, err)
		return fmt.Errorf("failed to delete candidate %s: %w", id, err)
	}
	return nil
}

// DeleteByJobs removes every candidate whose job reference is in the given
// set and returns the removed IDs. Removing nothing is not an error.
func (r *CandidateRepo) DeleteByJobs(ctx context.Context, jobIDs []string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set := make(map[string]bool, len(jobIDs))
	for _, id := range jobIDs {
		set[CanonicalID(id)] = true
	}

	t := r.load()
	removed := []string{}
	kept := t.Rows[:0]
	for _, row := range t.Rows {
		if set[CanonicalID(row["VagaID"])] {
			removed = append(removed, row["ID"])
			continue
		}
		kept = append(kept, row)
	}
	if len(removed) == 0 {
		return removed, nil
	}
	t.Rows = kept
	if err := t.Save(r.path); err != nil {
		log.Printf("Error cascading candidate deletion for jobs %v: %v", jobIDs, err)
		return nil, fmt.Errorf("failed to delete candidates for jobs: %w", err)
	}
	return removed, nil
}
