package services_test

import (
	"testing"

	"parma-backoffice/internal/models"
	"parma-backoffice/internal/services"
	"parma-backoffice/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobCreateStartsOpenAndJoinsClientName(t *testing.T) {
	e := newEnv(t)
	client := seedClient(t, e, "Acme")

	created, err := e.jobSvc.Create(e.ctx, &dto.CreateJobRequest{
		ClientID: client.ID, Role: "Dev", Recruiter: "Nikole", Actor: "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "Aberta", created.Status)
	assert.NotEmpty(t, created.OpeningDate)
	assert.Equal(t, "Acme", created.Client)
}

func TestJobCreateRejectsUnknownClient(t *testing.T) {
	e := newEnv(t)

	_, err := e.jobSvc.Create(e.ctx, &dto.CreateJobRequest{
		ClientID: "42", Role: "Dev", Recruiter: "Nikole", Actor: "admin",
	})
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestJobUpdateValidatesStatusAndStampsUpdatedAt(t *testing.T) {
	e := newEnv(t)
	client := seedClient(t, e, "Acme")
	job := seedJob(t, e, client.ID, models.JobStatusOpen)

	_, err := e.jobSvc.Update(e.ctx, &dto.UpdateJobRequest{
		ID: job.ID, Status: ptr("Em Espera"), Actor: "admin",
	})
	require.ErrorIs(t, err, services.ErrValidation)

	updated, err := e.jobSvc.Update(e.ctx, &dto.UpdateJobRequest{
		ID: job.ID, Status: ptr("Pausada"), Actor: "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "Pausada", updated.Status)
	assert.NotEmpty(t, updated.UpdatedAt)

	edits := auditEntries(t, e, models.AuditTabJobs, models.AuditActionEdit)
	require.Len(t, edits, 1)
	assert.Equal(t, "Aberta", edits[0].OldValue)
	assert.Equal(t, "Pausada", edits[0].NewValue)
}

func TestJobDeleteCascadesToCandidates(t *testing.T) {
	e := newEnv(t)
	client := seedClient(t, e, "Acme")
	job := seedJob(t, e, client.ID, models.JobStatusOpen)
	otherJob := seedJob(t, e, client.ID, models.JobStatusOpen)
	seedCandidate(t, e, job.ID, models.CandidateStatusSubmitted, "")
	kept := seedCandidate(t, e, otherJob.ID, models.CandidateStatusSubmitted, "")

	require.NoError(t, e.jobSvc.Delete(e.ctx, job.ID, "admin"))

	cands, err := e.candRepo.List(e.ctx)
	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.Equal(t, kept.ID, cands[0].ID)

	require.Len(t, auditEntries(t, e, models.AuditTabJobs, models.AuditActionDelete), 1)
	assert.Len(t, auditEntries(t, e, models.AuditTabCandidates, models.AuditActionCascadeDelete), 1)
}

func TestJobListFilters(t *testing.T) {
	e := newEnv(t)
	acme := seedClient(t, e, "Acme")
	beta := seedClient(t, e, "Beta")
	seedJob(t, e, acme.ID, models.JobStatusOpen)
	seedJob(t, e, beta.ID, models.JobStatusClosed)

	open, err := e.jobSvc.List(e.ctx, &dto.ListJobsRequest{Status: "Aberta"})
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, acme.ID, open[0].ClientID)
	assert.Equal(t, "Acme", open[0].Client)

	byRecruiter, err := e.jobSvc.List(e.ctx, &dto.ListJobsRequest{Recruiter: "lorrayne"})
	require.NoError(t, err)
	assert.Len(t, byRecruiter, 2, "recruiter filter is case-insensitive")
}
