package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "cryptodash/internal/errors"
	"cryptodash/internal/models"
	"cryptodash/internal/services"
)

// AuthHandler handles the simulated login session.
type AuthHandler struct {
	sessionService services.SessionServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(sessionService services.SessionServicer) *AuthHandler {
	return &AuthHandler{sessionService: sessionService}
}

// RegisterRoutes mounts the session routes on rg. Logout goes through
// requireSession so only the holder of the session token can end it.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup, requireSession gin.HandlerFunc) {
	rg.POST("/login", h.Login)
	rg.POST("/logout", requireSession, h.Logout)
	rg.GET("/session", h.GetSession)
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents the authentication response with token
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// SessionResponse represents the current session state.
type SessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *models.User `json:"user"`
}

// Login handles the simulated login.
// @Summary     Login
// @Description Forward the credentials to the auth endpoint and, on success, start a session
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "User login credentials"
// @Success     200 {object} AuthResponse "Session started"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Login failed"
// @Failure     500 {object} ErrorResponse "Session could not be saved"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, token, err := h.sessionService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, User: *user})
}

// Logout handles ending the session.
// @Summary     Logout
// @Description Delete the saved user and token
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]string "Logged out"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Session could not be cleared"
// @Router      /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessionService.Logout(c.Request.Context()); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetSession returns the current session.
// @Summary     Current session
// @Description Get the logged-in user, if any
// @Tags        auth
// @Produce     json
// @Success     200 {object} SessionResponse "Session state"
// @Router      /auth/session [get]
func (h *AuthHandler) GetSession(c *gin.Context) {
	user, _ := h.sessionService.Current()
	c.JSON(http.StatusOK, SessionResponse{
		Authenticated: h.sessionService.IsAuthenticated(),
		User:          user,
	})
}
