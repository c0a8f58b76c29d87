// internal/transport/dto/user_dto.go
package dto

// LoginRequest carries the credentials for a login attempt.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the issued token and the session's permissions.
type LoginResponse struct {
	Token       string   `json:"token"`
	Username    string   `json:"username"`
	Permissions []string `json:"permissions"`
}

// LogoutRequest identifies the session being closed; the actor comes from
// the auth context.
type LogoutRequest struct {
	Actor string `json:"-"`
}
