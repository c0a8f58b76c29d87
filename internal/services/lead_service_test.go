package services_test

import (
	"testing"

	"parma-backoffice/internal/models"
	"parma-backoffice/internal/services"
	"parma-backoffice/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createLead(t *testing.T, e *env, company string) *models.Lead {
	t.Helper()
	lead, err := e.leadSvc.Create(e.ctx, &dto.CreateLeadRequest{
		Company: company, City: "Natal", State: "RN", Name: "Contato",
		Phone: "84 9", Email: "x@y.com", Product: "R&S", Channel: "Indicação",
		Actor: "andre",
	})
	require.NoError(t, err)
	return lead
}

func TestLeadCreateStartsAtProspect(t *testing.T) {
	e := newEnv(t)
	lead := createLead(t, e, "Acme")

	assert.Equal(t, "Prospect", lead.Status)
	assert.NotEmpty(t, lead.Date)
}

func TestMoveStageWalksTheFullFunnel(t *testing.T) {
	e := newEnv(t)
	lead := createLead(t, e, "Acme")

	for _, want := range models.LeadStages[1:] {
		moved, err := e.leadSvc.MoveStage(e.ctx, &dto.MoveStageRequest{
			ID: lead.ID, Direction: "forward", Actor: "andre",
		})
		require.NoError(t, err)
		assert.Equal(t, want, moved.Status)
	}

	// Past the last stage the move fails and the lead stays put.
	_, err := e.leadSvc.MoveStage(e.ctx, &dto.MoveStageRequest{
		ID: lead.ID, Direction: "forward", Actor: "andre",
	})
	require.ErrorIs(t, err, services.ErrInvalidStage)
	stored, err := e.leadRepo.GetByID(e.ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "Declinado", stored.Status)
}

func TestMoveStageBackwardFromProspectFails(t *testing.T) {
	e := newEnv(t)
	lead := createLead(t, e, "Acme")

	_, err := e.leadSvc.MoveStage(e.ctx, &dto.MoveStageRequest{
		ID: lead.ID, Direction: "backward", Actor: "andre",
	})
	require.ErrorIs(t, err, services.ErrInvalidStage)
}

func TestMoveStageFromNonCanonicalStatusFails(t *testing.T) {
	e := newEnv(t)
	lead, err := e.leadRepo.Create(e.ctx, &models.Lead{Company: "Acme", Status: "Qualquer"})
	require.NoError(t, err)

	_, err = e.leadSvc.MoveStage(e.ctx, &dto.MoveStageRequest{
		ID: lead.ID, Direction: "forward", Actor: "andre",
	})
	require.ErrorIs(t, err, services.ErrInvalidStage)
}

func TestMoveStageWritesFunnelAuditEntry(t *testing.T) {
	e := newEnv(t)
	lead := createLead(t, e, "Acme")

	_, err := e.leadSvc.MoveStage(e.ctx, &dto.MoveStageRequest{
		ID: lead.ID, Direction: "forward", Actor: "andre",
	})
	require.NoError(t, err)

	edits := auditEntries(t, e, models.AuditTabLeads, models.AuditActionEdit)
	require.Len(t, edits, 1)
	assert.Equal(t, "Status", edits[0].Field)
	assert.Equal(t, "Prospect", edits[0].OldValue)
	assert.Equal(t, "Lead Qualificado", edits[0].NewValue)
	assert.Equal(t, "Movido no funil", edits[0].Detail)
}

func TestLeadUpdateAllowsDirectStageJumps(t *testing.T) {
	e := newEnv(t)
	lead := createLead(t, e, "Acme")

	updated, err := e.leadSvc.Update(e.ctx, &dto.UpdateLeadRequest{
		ID: lead.ID, Status: ptr("Reunião"), Actor: "andre",
	})
	require.NoError(t, err)
	assert.Equal(t, "Reunião", updated.Status)

	_, err = e.leadSvc.Update(e.ctx, &dto.UpdateLeadRequest{
		ID: lead.ID, Status: ptr("Fechado"), Actor: "andre",
	})
	require.ErrorIs(t, err, services.ErrValidation)
}

func TestFunnelGroupsLeadsInStageOrder(t *testing.T) {
	e := newEnv(t)
	createLead(t, e, "Acme")
	second := createLead(t, e, "Beta")
	_, err := e.leadSvc.MoveStage(e.ctx, &dto.MoveStageRequest{
		ID: second.ID, Direction: "forward", Actor: "andre",
	})
	require.NoError(t, err)
	// Leads off the canonical stages stay off the board.
	_, err = e.leadRepo.Create(e.ctx, &models.Lead{Company: "Gama", Status: "???"})
	require.NoError(t, err)

	columns, err := e.leadSvc.Funnel(e.ctx)
	require.NoError(t, err)
	require.Len(t, columns, len(models.LeadStages))
	assert.Equal(t, "Prospect", columns[0].Stage)
	assert.Len(t, columns[0].Leads, 1)
	assert.Len(t, columns[1].Leads, 1)
	assert.Equal(t, "Beta", columns[1].Leads[0].Company)
	for _, col := range columns[2:] {
		assert.Empty(t, col.Leads)
	}
}
