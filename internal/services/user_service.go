package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"parma-backoffice/config"
	"parma-backoffice/internal/auth"
	"parma-backoffice/internal/models"
	"parma-backoffice/internal/storage"
	"parma-backoffice/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	users     []config.UserCredential
	jwtSecret string
	tokenTTL  time.Duration
	auditRepo storage.AuditLogRepository
}

// NewUserService creates a new instance of UserService backed by the
// configured credential table.
func NewUserService(cfg *config.Config, auditRepo storage.AuditLogRepository) UserService {
	return &userService{
		users:     cfg.Auth.Users,
		jwtSecret: cfg.JWT.Secret,
		tokenTTL:  cfg.JWT.Expiration(),
		auditRepo: auditRepo,
	}
}

func (s *userService) audit(ctx context.Context, entry models.AuditEntry) {
	if err := s.auditRepo.Append(ctx, &entry); err != nil {
		log.Printf("UserService: Error writing audit entry: %v", err)
	}
}

// Login checks the credentials and issues a session token carrying the
// user's screen permissions. Successful logins land in the action log.
func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, ok := s.lookup(req.Username)
	if !ok || !passwordMatches(user.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}

	claims := auth.SessionClaims{
		Permissions: user.Permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		log.Printf("UserService: Error signing token for %s: %v", user.Username, err)
		return nil, fmt.Errorf("internal error issuing token: %w", err)
	}

	s.audit(ctx, models.AuditEntry{
		Actor:  user.Username,
		Tab:    models.AuditTabSystem,
		Action: models.AuditActionLogin,
		Detail: fmt.Sprintf("Usuário %s entrou no sistema.", user.Username),
	})
	return &dto.LoginResponse{
		Token:       token,
		Username:    user.Username,
		Permissions: user.Permissions,
	}, nil
}

func (s *userService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	s.audit(ctx, models.AuditEntry{
		Actor:  req.Actor,
		Tab:    models.AuditTabSystem,
		Action: models.AuditActionLogout,
		Detail: fmt.Sprintf("Usuário %s saiu do sistema.", req.Actor),
	})
	return nil
}

func (s *userService) lookup(username string) (config.UserCredential, bool) {
	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			return u, true
		}
	}
	return config.UserCredential{}, false
}

// passwordMatches accepts bcrypt hashes and plain-text entries in the
// credential table, detected by the "$2" hash prefix.
func passwordMatches(stored, given string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return stored == given
}
