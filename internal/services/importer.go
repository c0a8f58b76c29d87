package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"parma-backoffice/internal/storage"

	"github.com/xuri/excelize/v2"
)

// parseUpload reads an uploaded table as header plus rows. CSV and Excel
// workbooks (first sheet) are accepted; anything else is a validation
// error.
func parseUpload(filename string, file io.Reader) ([]string, []map[string]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return parseCSVUpload(file)
	case ".xlsx", ".xlsm":
		return parseExcelUpload(file)
	default:
		return nil, nil, fmt.Errorf("%w: unsupported file type %q (use .csv or .xlsx)", ErrValidation, filepath.Ext(filename))
	}
}

func parseCSVUpload(file io.Reader) ([]string, []map[string]string, error) {
	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: could not parse CSV file: %v", ErrValidation, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%w: uploaded file is empty", ErrValidation)
	}
	return recordsToRows(records)
}

func parseExcelUpload(file io.Reader) ([]string, []map[string]string, error) {
	wb, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: could not open spreadsheet: %v", ErrValidation, err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("%w: spreadsheet has no sheets", ErrValidation)
	}
	records, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: could not read spreadsheet rows: %v", ErrValidation, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%w: uploaded file is empty", ErrValidation)
	}
	return recordsToRows(records)
}

func recordsToRows(records [][]string) ([]string, []map[string]string, error) {
	header := make([]string, len(records[0]))
	for i, col := range records[0] {
		header[i] = strings.TrimSpace(col)
	}
	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

// importTable validates the uploaded column set against the target table
// and merges the rows. The column set must match exactly: every missing
// column is reported and the whole import aborts before any write.
func importTable(ctx context.Context, store storage.TableStore, filename string, file io.Reader) (int, error) {
	header, rows, err := parseUpload(filename, file)
	if err != nil {
		return 0, err
	}

	expected := store.Columns()
	got := make(map[string]bool, len(header))
	for _, col := range header {
		got[col] = true
	}

	var missing []string
	for _, col := range expected {
		if !got[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return 0, fmt.Errorf("%w: uploaded file is missing required columns: %s", ErrValidation, strings.Join(missing, ", "))
	}
	want := make(map[string]bool, len(expected))
	for _, col := range expected {
		want[col] = true
	}
	var extra []string
	for _, col := range header {
		if !want[col] {
			extra = append(extra, col)
		}
	}
	if len(extra) > 0 {
		return 0, fmt.Errorf("%w: uploaded file has unexpected columns: %s", ErrValidation, strings.Join(extra, ", "))
	}

	added, err := store.ImportRows(ctx, rows)
	if err != nil {
		return 0, mapRepoError(err, "importing rows")
	}
	return added, nil
}
