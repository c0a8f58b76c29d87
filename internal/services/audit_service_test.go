package services_test

import (
	"testing"

	"parma-backoffice/internal/models"
	"parma-backoffice/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appendEntry(t *testing.T, e *env, ts, tab, action string) {
	t.Helper()
	require.NoError(t, e.auditRepo.Append(e.ctx, &models.AuditEntry{
		Timestamp: ts, Actor: "admin", Tab: tab, Action: action,
	}))
}

func TestAuditListNewestFirst(t *testing.T) {
	e := newEnv(t)
	appendEntry(t, e, "01/01/2025 08:00:00", models.AuditTabClients, models.AuditActionCreate)
	appendEntry(t, e, "15/02/2025 09:30:00", models.AuditTabJobs, models.AuditActionEdit)
	appendEntry(t, e, "03/01/2025 23:59:59", models.AuditTabSystem, models.AuditActionLogin)

	entries, err := e.auditSvc.List(e.ctx, nil)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "15/02/2025 09:30:00", entries[0].Timestamp)
	assert.Equal(t, "03/01/2025 23:59:59", entries[1].Timestamp)
	assert.Equal(t, "01/01/2025 08:00:00", entries[2].Timestamp)
}

func TestAuditListFiltersByTabAndAction(t *testing.T) {
	e := newEnv(t)
	appendEntry(t, e, "01/01/2025 08:00:00", models.AuditTabClients, models.AuditActionCreate)
	appendEntry(t, e, "01/01/2025 09:00:00", models.AuditTabClients, models.AuditActionEdit)
	appendEntry(t, e, "01/01/2025 10:00:00", models.AuditTabJobs, models.AuditActionEdit)

	byTab, err := e.auditSvc.List(e.ctx, &dto.ListAuditRequest{Tab: models.AuditTabClients})
	require.NoError(t, err)
	assert.Len(t, byTab, 2)

	both, err := e.auditSvc.List(e.ctx, &dto.ListAuditRequest{Tab: models.AuditTabClients, Action: models.AuditActionEdit})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "01/01/2025 09:00:00", both[0].Timestamp)
}

func TestAuditExportIncludesHeader(t *testing.T) {
	e := newEnv(t)
	appendEntry(t, e, "01/01/2025 08:00:00", models.AuditTabClients, models.AuditActionCreate)

	data, err := e.auditSvc.ExportCSV(e.ctx)
	require.NoError(t, err)
	assert.Contains(t, string(data), "DataHora,Usuario,Aba,Acao")
	assert.Contains(t, string(data), "01/01/2025 08:00:00")
}
