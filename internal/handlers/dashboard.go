package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/reanestrella/cell-growth-hub-sub000/internal/errors"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/services"
)

type DashboardHandler struct {
	dashboard *services.DashboardService
}

func NewDashboardHandler(dashboard *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	session, ok := sessionOf(c)
	if !ok {
		return
	}

	dashboard, err := h.dashboard.Dashboard(c.Request.Context(), session.ChurchID())
	if err != nil {
		slog.Error("failed to build dashboard", "church_id", session.ChurchID(), "error", err)
		apierrors.InternalError(c, "Failed to build dashboard")
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
