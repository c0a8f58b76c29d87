package services_test

import (
	"testing"

	"parma-backoffice/internal/models"
	"parma-backoffice/internal/services"
	"parma-backoffice/internal/storage"
	"parma-backoffice/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientCreateStampsDateAndUppercasesState(t *testing.T) {
	e := newEnv(t)

	created, err := e.clientSvc.Create(e.ctx, &dto.CreateClientRequest{
		Company: "Acme", Name: "Contato", City: "Natal", State: "rn",
		Phone: "84 9", Email: "a@acme.com", Actor: "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "RN", created.State)
	assert.NotEmpty(t, created.Date)
	assert.Equal(t, "1", created.ID)

	creates := auditEntries(t, e, models.AuditTabClients, models.AuditActionCreate)
	require.Len(t, creates, 1)
	assert.Equal(t, created.ID, creates[0].ItemID)
}

func TestClientUpdateLogsOneEntryPerChangedField(t *testing.T) {
	e := newEnv(t)
	client := seedClient(t, e, "Acme")

	_, err := e.clientSvc.Update(e.ctx, &dto.UpdateClientRequest{
		ID: client.ID, Company: ptr("Acme Ltda"), City: ptr("Recife"),
		Phone: ptr(client.Phone), // unchanged, must not be logged
		Actor: "admin",
	})
	require.NoError(t, err)

	edits := auditEntries(t, e, models.AuditTabClients, models.AuditActionEdit)
	require.Len(t, edits, 2)
	fields := []string{edits[0].Field, edits[1].Field}
	assert.ElementsMatch(t, []string{"Cliente", "Cidade"}, fields)
	for _, entry := range edits {
		if entry.Field == "Cliente" {
			assert.Equal(t, "Acme", entry.OldValue)
			assert.Equal(t, "Acme Ltda", entry.NewValue)
		}
	}
}

func TestClientDeleteCascadesThroughJobsAndCandidates(t *testing.T) {
	e := newEnv(t)
	client := seedClient(t, e, "Acme")
	other := seedClient(t, e, "Beta")
	job1 := seedJob(t, e, client.ID, models.JobStatusOpen)
	job2 := seedJob(t, e, client.ID, models.JobStatusClosed)
	keptJob := seedJob(t, e, other.ID, models.JobStatusOpen)
	seedCandidate(t, e, job1.ID, models.CandidateStatusSubmitted, "")
	seedCandidate(t, e, job2.ID, models.CandidateStatusValidated, "")
	kept := seedCandidate(t, e, keptJob.ID, models.CandidateStatusSubmitted, "")

	require.NoError(t, e.clientSvc.Delete(e.ctx, client.ID, "admin"))

	_, err := e.clientRepo.GetByID(e.ctx, client.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	jobs, err := e.jobRepo.List(e.ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, keptJob.ID, jobs[0].ID)

	cands, err := e.candRepo.List(e.ctx)
	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.Equal(t, kept.ID, cands[0].ID)

	// One delete entry naming the removed jobs, plus one group entry per
	// cascade level. Never one entry per removed row.
	deletes := auditEntries(t, e, models.AuditTabClients, models.AuditActionDelete)
	require.Len(t, deletes, 1)
	assert.Contains(t, deletes[0].Detail, job1.ID)
	assert.Contains(t, deletes[0].Detail, job2.ID)

	assert.Len(t, auditEntries(t, e, models.AuditTabJobs, models.AuditActionCascadeDelete), 1)
	assert.Len(t, auditEntries(t, e, models.AuditTabCandidates, models.AuditActionCascadeDelete), 1)
}

func TestClientDeleteWithoutChildrenLogsNoCascadeEntries(t *testing.T) {
	e := newEnv(t)
	client := seedClient(t, e, "Acme")

	require.NoError(t, e.clientSvc.Delete(e.ctx, client.ID, "admin"))

	deletes := auditEntries(t, e, models.AuditTabClients, models.AuditActionDelete)
	require.Len(t, deletes, 1)
	assert.Contains(t, deletes[0].Detail, "nenhuma")
	assert.Empty(t, auditEntries(t, e, models.AuditTabJobs, models.AuditActionCascadeDelete))
	assert.Empty(t, auditEntries(t, e, models.AuditTabCandidates, models.AuditActionCascadeDelete))
}

func TestClientDeleteMissingIsNotFound(t *testing.T) {
	e := newEnv(t)
	err := e.clientSvc.Delete(e.ctx, "42", "admin")
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestClientListFiltersByCompanySubstring(t *testing.T) {
	e := newEnv(t)
	seedClient(t, e, "Acme Mineração")
	seedClient(t, e, "Beta Logística")

	found, err := e.clientSvc.List(e.ctx, &dto.ListClientsRequest{Company: "mineraç"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Acme Mineração", found[0].Company)

	all, err := e.clientSvc.List(e.ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
