// Package csvfile persists each entity table as a UTF-8 delimited text file
// with a header row. The tables stay interchangeable with the spreadsheet
// workflow they came from.
package csvfile

import (
	"bytes"
	"encoding/csv"
	"os"
	"strconv"
	"strings"
)

// Table is an in-memory snapshot of one delimited file: a fixed column
// order plus rows of string fields keyed by column name.
type Table struct {
	Columns []string
	Rows    []map[string]string
}

// LoadTable reads a table from disk and normalizes it against the expected
// schema: missing columns are backfilled with empty strings, column order
// is coerced to expected, and the ID column is canonicalized to a plain
// decimal string. A missing file or any parse failure yields an empty
// table with the expected columns; load never surfaces an error.
func LoadTable(path string, expected []string) *Table {
	empty := &Table{Columns: append([]string(nil), expected...)}

	f, err := os.Open(path)
	if err != nil {
		return empty
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil || len(records) == 0 {
		return empty
	}

	header := records[0]
	t := &Table{Columns: append([]string(nil), expected...)}
	for _, rec := range records[1:] {
		row := make(map[string]string, len(expected))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		// Backfill and drop anything outside the expected schema.
		norm := make(map[string]string, len(expected))
		for _, col := range expected {
			norm[col] = row[col]
		}
		if _, ok := norm["ID"]; ok {
			norm["ID"] = CanonicalID(norm["ID"])
		}
		t.Rows = append(t.Rows, norm)
	}
	return t
}

// Save serializes the table in column order and rewrites the file in full.
// There is no partial or transactional write; the deployment is
// single-process and log volume stays small.
func (t *Table) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		return err
	}
	for _, row := range t.Rows {
		rec := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			rec[i] = row[col]
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// Bytes serializes the table the same way Save does, for downloads.
func (t *Table) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Columns); err != nil {
		return nil, err
	}
	for _, row := range t.Rows {
		rec := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			rec[i] = row[col]
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// NextID derives the next primary key: max numeric ID plus one, with
// non-numeric or missing values treated as 0. An empty table yields 1.
func (t *Table) NextID() int {
	max := 0
	for _, row := range t.Rows {
		n, err := strconv.Atoi(strings.TrimSpace(row["ID"]))
		if err != nil {
			continue // counts as 0
		}
		if n > max {
			max = n
		}
	}
	return max + 1
}

// IndexByID returns the position of the row with the given ID, or -1.
func (t *Table) IndexByID(id string) int {
	id = CanonicalID(id)
	for i, row := range t.Rows {
		if row["ID"] == id {
			return i
		}
	}
	return -1
}

// CanonicalID normalizes a primary-key value to a plain decimal string.
// Spreadsheet round trips tend to retype integer keys as floats, so a
// trailing ".0" on an otherwise numeric value is stripped.
func CanonicalID(id string) string {
	id = strings.TrimSpace(id)
	if rest, ok := strings.CutSuffix(id, ".0"); ok {
		if _, err := strconv.Atoi(rest); err == nil {
			return rest
		}
	}
	return id
}
