package csvfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testColumns = []string{"ID", "Nome", "Cidade"}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadTableMissingFile(t *testing.T) {
	table := LoadTable(filepath.Join(t.TempDir(), "nope.csv"), testColumns)

	assert.Equal(t, testColumns, table.Columns)
	assert.Empty(t, table.Rows)
}

func TestLoadTableCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	writeFile(t, path, "ID,Nome\n\"unterminated\n")

	table := LoadTable(path, testColumns)

	assert.Equal(t, testColumns, table.Columns)
	assert.Empty(t, table.Rows, "a corrupt file should load as an empty table")
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.csv")
	original := &Table{
		Columns: testColumns,
		Rows: []map[string]string{
			{"ID": "1", "Nome": "Ana, Ltda", "Cidade": "São Paulo"},
			{"ID": "2", "Nome": "Linha\ncom quebra", "Cidade": "Recife"},
		},
	}
	require.NoError(t, original.Save(path))

	loaded := LoadTable(path, testColumns)
	assert.Equal(t, original.Rows, loaded.Rows)
}

func TestLoadTableBackfillsAndReordersColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.csv")
	// Cidade missing, columns in a different order, plus an unknown column.
	writeFile(t, path, "Nome,ID,Extra\nAna,1,x\n")

	table := LoadTable(path, testColumns)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, testColumns, table.Columns)
	assert.Equal(t, map[string]string{"ID": "1", "Nome": "Ana", "Cidade": ""}, table.Rows[0])
}

func TestLoadTableCanonicalizesFloatIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.csv")
	writeFile(t, path, "ID,Nome,Cidade\n7.0,Ana,Natal\n")

	table := LoadTable(path, testColumns)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, "7", table.Rows[0]["ID"])
}

func TestNextID(t *testing.T) {
	table := &Table{Columns: testColumns}
	assert.Equal(t, 1, table.NextID(), "an empty table starts at 1")

	table.Rows = []map[string]string{
		{"ID": "1"},
		{"ID": "3"},
		{"ID": "3"},
		{"ID": "x"},
	}
	assert.Equal(t, 4, table.NextID(), "non-numeric IDs count as 0")
}

func TestIndexByID(t *testing.T) {
	table := &Table{
		Columns: testColumns,
		Rows:    []map[string]string{{"ID": "1"}, {"ID": "12"}},
	}

	assert.Equal(t, 1, table.IndexByID("12"))
	assert.Equal(t, 1, table.IndexByID("12.0"), "float-typed keys match their integer row")
	assert.Equal(t, -1, table.IndexByID("99"))
}

func TestCanonicalID(t *testing.T) {
	assert.Equal(t, "12", CanonicalID("12.0"))
	assert.Equal(t, "12", CanonicalID(" 12 "))
	assert.Equal(t, "v1.0", CanonicalID("v1.0"), "non-numeric values keep their suffix")
	assert.Equal(t, "", CanonicalID(""))
}
