package csvfile

import (
	"context"
	"testing"

	"parma-backoffice/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportRowsSkipsExistingAndDuplicateIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepo(t.TempDir())

	_, err := repo.Create(ctx, &models.Client{Company: "Existente"})
	require.NoError(t, err)

	added, err := repo.ImportRows(ctx, []map[string]string{
		{"ID": "1", "Cliente": "Sobrescrita"}, // collides with the existing row
		{"ID": "2", "Cliente": "Nova"},
		{"ID": "2", "Cliente": "Duplicada"}, // first occurrence wins
		{"ID": "3.0", "Cliente": "Planilha"}, // float-typed key
	})
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	clients, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 3)
	assert.Equal(t, "Existente", clients[0].Company)
	assert.Equal(t, "Nova", clients[1].Company)
	assert.Equal(t, "3", clients[2].ID)
	assert.Equal(t, "Planilha", clients[2].Company)
}

func TestDeleteByClientCascadesJobIDs(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	jobRepo := NewJobRepo(dir)

	_, err := jobRepo.Create(ctx, &models.Job{ClientID: "1", Role: "Dev"})
	require.NoError(t, err)
	_, err = jobRepo.Create(ctx, &models.Job{ClientID: "2", Role: "QA"})
	require.NoError(t, err)
	_, err = jobRepo.Create(ctx, &models.Job{ClientID: "1", Role: "PM"})
	require.NoError(t, err)

	removed, err := jobRepo.DeleteByClient(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, removed)

	jobs, err := jobRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "QA", jobs[0].Role)
}

func TestDeleteByJobsEmptyRemovalIsNotAnError(t *testing.T) {
	ctx := context.Background()
	candRepo := NewCandidateRepo(t.TempDir())

	removed, err := candRepo.DeleteByJobs(ctx, []string{"42"})
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestAuditAppendStampsDefaults(t *testing.T) {
	ctx := context.Background()
	repo := NewAuditRepo(t.TempDir())

	require.NoError(t, repo.Append(ctx, &models.AuditEntry{
		Tab:    models.AuditTabSystem,
		Action: models.AuditActionLogin,
	}))

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "admin", entries[0].Actor)
	assert.NotEmpty(t, entries[0].Timestamp)
}

func TestAuditListIsChronological(t *testing.T) {
	ctx := context.Background()
	repo := NewAuditRepo(t.TempDir())

	first := models.AuditEntry{Timestamp: "01/01/2025 10:00:00", Actor: "a", Tab: models.AuditTabClients, Action: models.AuditActionCreate}
	second := models.AuditEntry{Timestamp: "02/01/2025 10:00:00", Actor: "b", Tab: models.AuditTabClients, Action: models.AuditActionEdit}
	require.NoError(t, repo.Append(ctx, &first))
	require.NoError(t, repo.Append(ctx, &second))

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Actor)
	assert.Equal(t, "b", entries[1].Actor)
}
