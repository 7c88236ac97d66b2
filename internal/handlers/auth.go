package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tasktracker/internal/dto"
	apierrors "tasktracker/internal/errors"
	"tasktracker/internal/middleware"
	"tasktracker/internal/password"
	"tasktracker/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
	logger      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register creates a new user account.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, apierrors.ErrCodeMissingData, "Username and password are required")
		return
	}

	err := h.authService.Register(services.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "USER_REGISTERED"})
}

// Login authenticates a user and returns a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, apierrors.ErrCodeMissingData, "Username and password are required")
		return
	}

	token, err := h.authService.Login(services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "LOGIN_OK",
		"token":   token,
	})
}

// GetProfile returns the authenticated user's identity.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	username, exists := middleware.GetUsername(c)
	if !exists {
		apierrors.Unauthorized(c, apierrors.ErrCodeTokenRequired, "Not authenticated")
		return
	}

	c.JSON(http.StatusOK, dto.ProfileDTO{
		Message:  "ACCESS_GRANTED",
		Username: username,
	})
}

func (h *AuthHandler) respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingFields):
		apierrors.BadRequest(c, apierrors.ErrCodeMissingData, "Username and password are required")
	case errors.Is(err, password.ErrTooShort):
		apierrors.BadRequest(c, apierrors.ErrCodePasswordTooShort, "Password must be at least 8 characters")
	case errors.Is(err, password.ErrNoLower):
		apierrors.BadRequest(c, apierrors.ErrCodePasswordNoLower, "Password must contain a lowercase letter")
	case errors.Is(err, password.ErrNoUpper):
		apierrors.BadRequest(c, apierrors.ErrCodePasswordNoUpper, "Password must contain an uppercase letter")
	case errors.Is(err, password.ErrNoDigit):
		apierrors.BadRequest(c, apierrors.ErrCodePasswordNoDigit, "Password must contain a digit")
	case errors.Is(err, password.ErrNoSpecial):
		apierrors.BadRequest(c, apierrors.ErrCodePasswordNoSpecial, "Password must contain a special character")
	case errors.Is(err, services.ErrUsernameTaken):
		apierrors.BadRequest(c, apierrors.ErrCodeUserExists, "Username already exists")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.BadRequest(c, apierrors.ErrCodeUserNotFound, "User not found")
	case errors.Is(err, services.ErrPasswordIncorrect):
		apierrors.BadRequest(c, apierrors.ErrCodePasswordIncorrect, "Password incorrect")
	default:
		h.logger.Error("auth operation failed", zap.Error(err))
		apierrors.InternalError(c)
	}
}
