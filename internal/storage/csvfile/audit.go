package csvfile

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"parma-backoffice/internal/models"
	"parma-backoffice/internal/storage"
)

const auditFile = "logs.csv"

var auditColumns = []string{
	"DataHora", "Usuario", "Aba", "Acao", "ItemID", "Campo",
	"ValorAnterior", "ValorNovo", "Detalhe",
}

// fallbackActor is recorded when an entry arrives without a session user.
const fallbackActor = "admin"

// AuditRepo implements storage.AuditLogRepository on top of logs.csv.
// The file is functionally append-only: Append reads the whole log, adds
// one row and rewrites it, and nothing ever edits or removes prior rows.
type AuditRepo struct {
	path string
	mu   sync.Mutex
}

// NewAuditRepo creates a new AuditRepo rooted at the data directory.
func NewAuditRepo(dataDir string) *AuditRepo {
	return &AuditRepo{path: filepath.Join(dataDir, auditFile)}
}

// Compile-time check to ensure AuditRepo implements AuditLogRepository
var _ storage.AuditLogRepository = (*AuditRepo)(nil)

func auditFromRow(row map[string]string) models.AuditEntry {
	return models.AuditEntry{
		Timestamp: row["DataHora"],
		Actor:     row["Usuario"],
		Tab:       row["Aba"],
		Action:    row["Acao"],
		ItemID:    row["ItemID"],
		Field:     row["Campo"],
		OldValue:  row["ValorAnterior"],
		NewValue:  row["ValorNovo"],
		Detail:    row["Detalhe"],
	}
}

func auditToRow(e *models.AuditEntry) map[string]string {
	return map[string]string{
		"DataHora":      e.Timestamp,
		"Usuario":       e.Actor,
		"Aba":           e.Tab,
		"Acao":          e.Action,
		"ItemID":        e.ItemID,
		"Campo":         e.Field,
		"ValorAnterior": e.OldValue,
		"ValorNovo":     e.NewValue,
		"Detalhe":       e.Detail,
	}
}

// ensureFile writes an empty log with the canonical header when absent.
func (r *AuditRepo) ensureFile() error {
	if _, err := os.Stat(r.path); err == nil {
		return nil
	}
	t := &Table{Columns: auditColumns}
	return t.Save(r.path)
}

// Append stamps and persists one log entry. The timestamp is the local
// clock at the moment of the call; a missing actor falls back to the
// default identity. All optional fields are already plain strings, so
// nothing is ever written as a null marker.
func (r *AuditRepo) Append(ctx context.Context, entry *models.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureFile(); err != nil {
		log.Printf("Error creating audit log file: %v", err)
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	stamped := *entry
	if stamped.Timestamp == "" {
		stamped.Timestamp = time.Now().Format(models.TimestampLayout)
	}
	if stamped.Actor == "" {
		stamped.Actor = fallbackActor
	}

	t := LoadTable(r.path, auditColumns)
	t.Rows = append(t.Rows, auditToRow(&stamped))
	if err := t.Save(r.path); err != nil {
		log.Printf("Error appending audit entry: %v", err)
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

// List loads the entire log in file (chronological) order.
func (r *AuditRepo) List(ctx context.Context) ([]models.AuditEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := LoadTable(r.path, auditColumns)
	entries := make([]models.AuditEntry, 0, len(t.Rows))
	for _, row := range t.Rows {
		entries = append(entries, auditFromRow(row))
	}
	return entries, nil
}

// ExportCSV serializes the full log, header row included.
func (r *AuditRepo) ExportCSV(ctx context.Context) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return LoadTable(r.path, auditColumns).Bytes()
}
