package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/reanestrella/cell-growth-hub-sub000/internal/errors"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/services"
)

// PortalHandler serves the member-facing view of the session profile.
type PortalHandler struct {
	portal *services.PortalService
}

func NewPortalHandler(portal *services.PortalService) *PortalHandler {
	return &PortalHandler{portal: portal}
}

func (h *PortalHandler) Me(c *gin.Context) {
	session, ok := sessionOf(c)
	if !ok {
		return
	}

	view, err := h.portal.ForSession(c.Request.Context(), session)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoLinkedMember):
			apierrors.NotFound(c, err.Error())
		default:
			slog.Error("failed to build portal", "profile_id", session.Profile.ID, "error", err)
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, view)
}
