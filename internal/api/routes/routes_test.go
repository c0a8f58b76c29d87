package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"parma-backoffice/config"
	"parma-backoffice/internal/api/routes"
	"parma-backoffice/internal/app"
	"parma-backoffice/internal/storage/csvfile"
	"parma-backoffice/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpirationMinutes: 60},
		Auth: config.AuthConfig{Users: []config.UserCredential{
			{Username: "admin", Password: "Parma!123@", Permissions: []string{"clientes", "vagas", "candidatos", "comercial", "logs"}},
			{Username: "lorrayne", Password: "Lrn!123@", Permissions: []string{"vagas", "candidatos"}},
		}},
		Propagation: config.PropagationConfig{ReopenStatus: "Reaberta"},
	}

	application := &app.Application{
		Config:        cfg,
		Validator:     validator.New(),
		ClientRepo:    csvfile.NewClientRepo(dir),
		JobRepo:       csvfile.NewJobRepo(dir),
		CandidateRepo: csvfile.NewCandidateRepo(dir),
		LeadRepo:      csvfile.NewLeadRepo(dir),
		AuditRepo:     csvfile.NewAuditRepo(dir),
	}

	router := gin.New()
	routes.RegisterRoutes(router, application)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, router *gin.Engine, username, password string) dto.LoginResponse {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Username: username, Password: password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var session dto.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	return session
}

func TestHealthIsPublic(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Username: "admin", Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestResourcesRequireAuthentication(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/api/v1/clients/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPermissionsGateScreens(t *testing.T) {
	router := newTestRouter(t)
	session := login(t, router, "lorrayne", "Lrn!123@")

	// Recruiting profile: jobs yes, clients no.
	rec := doJSON(t, router, http.MethodGet, "/api/v1/jobs/", session.Token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/clients/", session.Token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestClientLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	session := login(t, router, "admin", "Parma!123@")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/clients/", session.Token, dto.CreateClientRequest{
		Company: "Acme", Name: "Contato", City: "Natal", State: "RN",
		Phone: "84 9", Email: "a@acme.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	id := created["id"].(string)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/clients/"+id, session.Token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/clients/"+id, session.Token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/clients/"+id, session.Token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateClientValidatesPayload(t *testing.T) {
	router := newTestRouter(t)
	session := login(t, router, "admin", "Parma!123@")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/clients/", session.Token, dto.CreateClientRequest{
		Company: "Acme", Name: "Contato", City: "Natal", State: "Rio Grande do Norte",
		Phone: "84 9", Email: "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Validation failed")
}

func TestExportReturnsCSVAttachment(t *testing.T) {
	router := newTestRouter(t)
	session := login(t, router, "admin", "Parma!123@")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/clients/export", session.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "clientes.csv")
	assert.Contains(t, rec.Body.String(), "ID,Data,Cliente")
}

func TestAuditLogRecordsLoginOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	session := login(t, router, "admin", "Parma!123@")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/audit/?tab=Sistema&action=Login", session.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "admin", entries[0]["actor"])
}
