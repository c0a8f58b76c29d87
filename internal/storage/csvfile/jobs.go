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

const jobsFile = "vagas.csv"

var jobColumns = []string{
	"ID", "ClienteID", "Status", "Data de Abertura", "Cargo",
	"Recrutador", "Atualização", "Salário 1", "Salário 2", "Descrição",
}

// JobRepo implements storage.JobRepository on top of vagas.csv.
type JobRepo struct {
	tableStore
}

// NewJobRepo creates a new JobRepo rooted at the data directory.
func NewJobRepo(dataDir string) *JobRepo {
	return &JobRepo{tableStore{path: filepath.Join(dataDir, jobsFile), columns: jobColumns}}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

func jobFromRow(row map[string]string) models.Job {
	return models.Job{
		ID:          row["ID"],
		ClientID:    CanonicalID(row["ClienteID"]),
		Status:      models.JobStatus(row["Status"]),
		OpeningDate: row["Data de Abertura"],
		Role:        row["Cargo"],
		Recruiter:   row["Recrutador"],
		UpdatedAt:   row["Atualização"],
		SalaryFrom:  row["Salário 1"],
		SalaryTo:    row["Salário 2"],
		Description: row["Descrição"],
	}
}

func jobToRow(j *models.Job) map[string]string {
	return map[string]string{
		"ID":               j.ID,
		"ClienteID":        j.ClientID,
		"Status":           string(j.Status),
		"Data de Abertura": j.OpeningDate,
		"Cargo":            j.Role,
		"Recrutador":       j.Recruiter,
		"Atualização":      j.UpdatedAt,
		"Salário 1":        j.SalaryFrom,
		"Salário 2":        j.SalaryTo,
		"Descrição":        j.Description,
	}
}

// List returns every job in file order.
func (r *JobRepo) List(ctx context.Context) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.load()
	jobs := make([]models.Job, 0, len(t.Rows))
	for _, row := range t.Rows {
		jobs = append(jobs, jobFromRow(row))
	}
	return jobs, nil
}

// GetByID retrieves a specific job by its ID.
func (r *JobRepo) GetByID(ctx context.Context, id string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.load()
	i := t.IndexByID(id)
	if i < 0 {
		return nil, storage.ErrNotFound
	}
	j := jobFromRow(t.Rows[i])
	return &j, nil
}

// ListByClient returns the jobs referencing a client.
func (r *JobRepo) ListByClient(ctx context.Context, clientID string) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clientID = CanonicalID(clientID)
	t := r.load()
	jobs := []models.Job{}
	for _, row := range t.Rows {
		if CanonicalID(row["ClienteID"]) == clientID {
			jobs = append(jobs, jobFromRow(row))
		}
	}
	return jobs, nil
}

// Create saves a new job opening, assigning the next available ID.
func (r *JobRepo) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.load()
	created := *job
	created.ID = strconv.Itoa(t.NextID())
	t.Rows = append(t.Rows, jobToRow(&created))
	if err := t.Save(r.path); err != nil {
		log.Printf("Error saving job %s: %v", created.ID, err)
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return &created, nil
}

// Update replaces the stored row for the job's ID.
func (r *JobRepo) Update(ctx context.Context, job *models.Job) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.load()
	i := t.IndexByID(job.ID)
	if i < 0 {
		return nil, storage.ErrNotFound
	}
	t.Rows[i] = jobToRow(job)
	if err := t.Save(r.path); err != nil {
		log.Printf("Error updating job %s: %v", job.ID, err)
		return nil, fmt.Errorf("failed to update job %s: %w", job.ID, err)
	}
	updated := *job
	return &updated, nil
}

// Delete removes a job row by its ID.
func (r *JobRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.load()
	i := t.IndexByID(id)
	if i < 0 {
		return storage.ErrNotFound
	}
	t.Rows = append(t.Rows[:i], t.Rows[i+1:]...)
	if err := t.Save(r.path); err != nil {
		log.Printf("Error deleting job %s: %v", id, err)
		return fmt.Errorf("failed to delete job %s: %w", id, err)
	}
	return nil
}

// DeleteByClient removes every job referencing the client and returns the
// removed IDs. Removing nothing is not an error.
func (r *JobRepo) DeleteByClient(ctx context.Context, clientID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clientID = CanonicalID(clientID)
	t := r.load()
	removed := []string{}
	kept := t.Rows[:0]
	for _, row := range t.Rows {
		if CanonicalID(row["ClienteID"]) == clientID {
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
		log.Printf("Error cascading job deletion for client %s: %v", clientID, err)
		return nil, fmt.Errorf("failed to delete jobs for client %s: %w", clientID, err)
	}
	return removed, nil
}
