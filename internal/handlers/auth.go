package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/auth"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/constants"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/dto"
	apierrors "github.com/reanestrella/cell-growth-hub-sub000/internal/errors"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/middleware"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
	tokens      *auth.TokenManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokens:      tokens,
	}
}

// Signup opens a new church with its first admin and signs the admin in.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.authService.Signup(c.Request.Context(), services.SignupInput{
		ChurchName: req.ChurchName,
		FullName:   req.FullName,
		Email:      req.Email,
		Password:   req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	if err := signIn(c, session.Profile.ID); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusCreated, session)
}

// Login authenticates a profile and initializes the session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	profile, err := h.authService.Login(ctx, services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	session, err := h.authService.SessionContext(ctx, profile.ID)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	token, err := h.tokens.Generate(profile.ID, session.ChurchID())
	if err != nil {
		slog.Error("failed to issue access token", "profile_id", profile.ID, "error", err)
		apierrors.InternalError(c, "Failed to issue access token")
		return
	}

	if err := signIn(c, profile.ID); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		SessionContext: session,
		AccessToken:    token,
		TokenType:      "Bearer",
	})
}

// Logout removes the authentication session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// Me returns the session context of the authenticated profile.
func (h *AuthHandler) Me(c *gin.Context) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}
	c.JSON(http.StatusOK, session)
}

func signIn(c *gin.Context, profileID uint64) error {
	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, profileID)
	return session.Save()
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequest(c, fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength))
	case errors.Is(err, services.ErrPasswordTooLong):
		apierrors.BadRequest(c, fmt.Sprintf("Password must be at most %d bytes", constants.MaxPasswordLength))
	case errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrEmailRequired),
		errors.Is(err, services.ErrInvalidRole):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c, err.Error())
	case errors.Is(err, services.ErrProfileNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNoChurchAccess),
		errors.Is(err, services.ErrChurchInactive):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrFailedToHashPassword),
		errors.Is(err, services.ErrFailedToCreateChurch),
		errors.Is(err, services.ErrFailedToCreateUser),
		errors.Is(err, services.ErrFailedToAssignRole):
		apierrors.InternalError(c, err.Error())
	default:
		slog.Error("auth request failed", "error", err)
		apierrors.InternalError(c, "Internal server error")
	}
}

// sessionOf returns the session context or answers 401.
func sessionOf(c *gin.Context) (*models.SessionContext, bool) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		apierrors.Unauthorized(c, "")
	}
	return session, ok
}
