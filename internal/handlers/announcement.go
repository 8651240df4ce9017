package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/dto"
	apierrors "github.com/reanestrella/cell-growth-hub-sub000/internal/errors"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/services"
)

// AnnouncementHandler drafts announcements with the AI service.
type AnnouncementHandler struct {
	ai *services.AIService
}

func NewAnnouncementHandler(ai *services.AIService) *AnnouncementHandler {
	return &AnnouncementHandler{ai: ai}
}

// Draft returns a suggested title and text. Nothing is stored.
func (h *AnnouncementHandler) Draft(c *gin.Context) {
	session, ok := sessionOf(c)
	if !ok {
		return
	}

	if !h.ai.Enabled() {
		apierrors.ServiceUnavailable(c, services.ErrAIServiceNotConfigured.Error())
		return
	}

	var req dto.DraftAnnouncementRequest
	if !bindJSON(c, &req) {
		return
	}

	draft, err := h.ai.DraftAnnouncement(c.Request.Context(), session.Church.Name, req.Topic)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAIEmptyDraft):
			apierrors.InvalidOperation(c, apierrors.ErrCodeOperationFailed, err.Error())
		default:
			slog.Error("failed to draft announcement", "church_id", session.ChurchID(), "error", err)
			apierrors.ServiceUnavailable(c, "Failed to draft announcement")
		}
		return
	}

	c.JSON(http.StatusOK, draft)
}
