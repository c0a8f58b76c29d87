package handlers

import (
	"net/http"

	"parma-backoffice/internal/services"
	"parma-backoffice/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// UserHandler holds the service dependency for session operations
type UserHandler struct {
	service   services.UserService
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler with the given service
func NewUserHandler(service services.UserService, validate *validator.Validate) *UserHandler {
	return &UserHandler{service: service, validator: validate}
}

// Login godoc
// @Summary      Log in
// @Description  Checks the credentials and returns a session token carrying the user's screen permissions.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body dto.LoginRequest true "Username and password"
// @Success      200  {object}  dto.LoginResponse "Session issued"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - Invalid input"
// @Failure      401  {object}  map[string]string{error=string} "Invalid username or password"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	session, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "log in")
		return
	}
	c.JSON(http.StatusOK, session)
}

// Logout godoc
// @Summary      Log out
// @Description  Records the end of the session in the action log. The token itself simply expires.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string{status=string} "Logout recorded"
// @Failure      401  {object}  map[string]string{error=string} "Authentication required"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /auth/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	req := dto.LogoutRequest{Actor: actorFromContext(c)}
	if err := h.service.Logout(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err, "log out")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}
