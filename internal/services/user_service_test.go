package services_test

import (
	"context"
	"testing"

	"parma-backoffice/config"
	"parma-backoffice/internal/auth"
	"parma-backoffice/internal/models"
	"parma-backoffice/internal/services"
	"parma-backoffice/internal/storage/csvfile"
	"parma-backoffice/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(t *testing.T, users []config.UserCredential) (services.UserService, *csvfile.AuditRepo) {
	t.Helper()
	auditRepo := csvfile.NewAuditRepo(t.TempDir())
	cfg := &config.Config{
		JWT:  config.JWTConfig{Secret: "test-secret", ExpirationMinutes: 60},
		Auth: config.AuthConfig{Users: users},
	}
	return services.NewUserService(cfg, auditRepo), auditRepo
}

func TestLoginIssuesTokenWithPermissions(t *testing.T) {
	svc, auditRepo := newUserService(t, []config.UserCredential{
		{Username: "admin", Password: "Parma!123@", Permissions: []string{"clientes", "logs"}},
	})

	session, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "Parma!123@"})
	require.NoError(t, err)
	assert.Equal(t, "admin", session.Username)
	assert.Equal(t, []string{"clientes", "logs"}, session.Permissions)

	claims := &auth.SessionClaims{}
	token, err := jwt.ParseWithClaims(session.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, []string{"clientes", "logs"}, claims.Permissions)

	entries, err := auditRepo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.AuditTabSystem, entries[0].Tab)
	assert.Equal(t, models.AuditActionLogin, entries[0].Action)
	assert.Equal(t, "admin", entries[0].Actor)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, auditRepo := newUserService(t, []config.UserCredential{
		{Username: "admin", Password: "Parma!123@"},
	})
	ctx := context.Background()

	_, err := svc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "wrong"})
	require.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "nobody", Password: "Parma!123@"})
	require.ErrorIs(t, err, services.ErrInvalidCredentials)

	// Failed attempts never reach the action log.
	entries, err := auditRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoginAcceptsBcryptHashedPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	svc, _ := newUserService(t, []config.UserCredential{
		{Username: "ricardo", Password: string(hash), Permissions: []string{"comercial"}},
	})
	ctx := context.Background()

	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "ricardo", Password: "s3cret"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "ricardo", Password: string(hash)})
	require.ErrorIs(t, err, services.ErrInvalidCredentials, "the hash itself is not a valid password")
}

func TestLogoutWritesSystemEntry(t *testing.T) {
	svc, auditRepo := newUserService(t, nil)
	ctx := context.Background()

	require.NoError(t, svc.Logout(ctx, &dto.LogoutRequest{Actor: "andre"}))

	entries, err := auditRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.AuditActionLogout, entries[0].Action)
	assert.Equal(t, "andre", entries[0].Actor)
}
