package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/constants"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/dto"
	apierrors "github.com/reanestrella/cell-growth-hub-sub000/internal/errors"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/repository"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/services"
)

type InvitationHandler struct {
	invitations *services.InvitationService
	churches    repository.ChurchRepository
}

func NewInvitationHandler(invitations *services.InvitationService, churches repository.ChurchRepository) *InvitationHandler {
	return &InvitationHandler{
		invitations: invitations,
		churches:    churches,
	}
}

// Create issues an invitation for the session church
func (h *InvitationHandler) Create(c *gin.Context) {
	session, ok := sessionOf(c)
	if !ok {
		return
	}

	var req dto.CreateInvitationRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.invitations.Create(c.Request.Context(), session.ChurchID(), services.CreateInvitationInput{
		Email:     req.Email,
		Role:      models.Role(req.Role),
		CreatedBy: session.Profile.ID,
	})
	if err != nil {
		respondInvitationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// List returns the invitations of the session church
func (h *InvitationHandler) List(c *gin.Context) {
	session, ok := sessionOf(c)
	if !ok {
		return
	}

	views, err := h.invitations.List(c.Request.Context(), session.ChurchID())
	if err != nil {
		respondInvitationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"invitations": views,
	})
}

// Delete revokes an unused invitation
func (h *InvitationHandler) Delete(c *gin.Context) {
	session, ok := sessionOf(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.invitations.Delete(c.Request.Context(), session.ChurchID(), id); err != nil {
		respondInvitationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Invitation deleted successfully",
	})
}

// Lookup shows an invitation to the unauthenticated visitor holding its token
func (h *InvitationHandler) Lookup(c *gin.Context) {
	ctx := c.Request.Context()
	view, err := h.invitations.Lookup(ctx, c.Param("token"))
	if err != nil {
		respondInvitationError(c, err)
		return
	}

	church, err := h.churches.FindByID(ctx, view.ChurchID)
	if err != nil {
		slog.Error("failed to load invitation church", "church_id", view.ChurchID, "error", err)
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.PublicInvitationDTO{
		Email:      view.Email,
		Role:       view.Role,
		ChurchName: church.Name,
		State:      view.State,
	})
}

// Redeem creates the invited profile and signs it in
func (h *InvitationHandler) Redeem(c *gin.Context) {
	var req dto.RedeemInvitationRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.invitations.Redeem(c.Request.Context(), services.RedeemInput{
		Token:    c.Param("token"),
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		respondInvitationError(c, err)
		return
	}

	if err := signIn(c, session.Profile.ID); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusCreated, dto.RedeemResponse{
		SessionContext: session,
		Redirect:       constants.AppLandingPath,
	})
}

func respondInvitationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvitationNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidInvitation):
		apierrors.InvalidOperation(c, apierrors.ErrCodeInvalidInvitation, err.Error())
	case errors.Is(err, services.ErrInvitationUsed):
		apierrors.Conflict(c, err.Error())
	default:
		respondAuthError(c, err)
	}
}
