package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/reanestrella/cell-growth-hub-sub000/internal/errors"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/services"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/stats"
)

type FinanceHandler struct {
	finance *services.FinanceService
}

func NewFinanceHandler(finance *services.FinanceService) *FinanceHandler {
	return &FinanceHandler{finance: finance}
}

// Overview summarizes the ledger of one month (?month=YYYY-MM, current month by default).
func (h *FinanceHandler) Overview(c *gin.Context) {
	session, ok := sessionOf(c)
	if !ok {
		return
	}

	window := stats.MonthOf(time.Now().UTC())
	if month := c.Query("month"); month != "" {
		w, err := stats.ParseMonth(month, time.UTC)
		if err != nil {
			apierrors.BadRequest(c, "month must be formatted as YYYY-MM")
			return
		}
		window = w
	}

	overview, err := h.finance.Overview(c.Request.Context(), session.ChurchID(), window)
	if err != nil {
		slog.Error("failed to build finance overview", "church_id", session.ChurchID(), "error", err)
		apierrors.InternalError(c, "Failed to build finance overview")
		return
	}

	c.JSON(http.StatusOK, overview)
}
