package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/dto"
	apierrors "github.com/reanestrella/cell-growth-hub-sub000/internal/errors"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/services"
)

// ProfileHandler manages the login profiles of the session church.
type ProfileHandler struct {
	profiles *services.ProfileService
}

func NewProfileHandler(profiles *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// List returns every profile of the church with its role
func (h *ProfileHandler) List(c *gin.Context) {
	session, ok := sessionOf(c)
	if !ok {
		return
	}

	profiles, err := h.profiles.List(c.Request.Context(), session.ChurchID())
	if err != nil {
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profiles": profiles,
	})
}

// ChangeRole assigns a new role to another profile
func (h *ProfileHandler) ChangeRole(c *gin.Context) {
	session, ok := sessionOf(c)
	if !ok {
		return
	}
	profileID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ChangeRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.profiles.ChangeRole(c.Request.Context(), session, profileID, models.Role(req.Role)); err != nil {
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile_id": profileID,
		"role":       req.Role,
	})
}

// LinkMember links a profile to a member record. A null member_id unlinks it.
func (h *ProfileHandler) LinkMember(c *gin.Context) {
	session, ok := sessionOf(c)
	if !ok {
		return
	}
	profileID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.LinkMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.profiles.LinkMember(c.Request.Context(), session.ChurchID(), profileID, req.MemberID); err != nil {
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile_id": profileID,
		"member_id":  req.MemberID,
	})
}

func respondProfileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProfileNotFound),
		errors.Is(err, services.ErrMemberNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidRole):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrCannotChangeOwnRole):
		apierrors.InvalidOperation(c, "", err.Error())
	default:
		slog.Error("profile request failed", "error", err)
		apierrors.InternalError(c, "")
	}
}
