package csvfile

import (
	"context"
	"sync"
)

// tableStore carries the pieces every typed repository shares: the file
// path, the expected schema and a mutex serializing read-modify-write
// cycles within this process. Writes are last-write-wins across
// processes; the lock keeps one process's handlers from interleaving.
type tableStore struct {
	path    string
	columns []string
	mu      sync.Mutex
}

func (s *tableStore) load() *Table {
	return LoadTable(s.path, s.columns)
}

// Columns returns the table schema in persisted order.
func (s *tableStore) Columns() []string {
	return append([]string(nil), s.columns...)
}

// ImportRows merges uploaded rows into the table. Deduplication is by ID
// with the first occurrence winning, so existing rows are never
// overwritten and duplicate IDs inside the upload keep their first row.
func (s *tableStore) ImportRows(ctx context.Context, rows []map[string]string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.load()
	seen := make(map[string]bool, len(t.Rows))
	for _, row := range t.Rows {
		seen[row["ID"]] = true
	}

	added := 0
	for _, row := range rows {
		norm := make(map[string]string, len(s.columns))
		for _, col := range s.columns {
			norm[col] = row[col]
		}
		norm["ID"] = CanonicalID(norm["ID"])
		if norm["ID"] != "" && seen[norm["ID"]] {
			continue
		}
		seen[norm["ID"]] = true
		t.Rows = append(t.Rows, norm)
		added++
	}

	if err := t.Save(s.path); err != nil {
		return 0, err
	}
	return added, nil
}

// ExportCSV serializes the current table state, header row included.
func (s *tableStore) ExportCSV(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().Bytes()
}
