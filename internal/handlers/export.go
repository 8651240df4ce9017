package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/reanestrella/cell-growth-hub-sub000/internal/errors"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/export"
)

// ExportHandler serves whole tables of the session church as CSV.
type ExportHandler struct {
	exporter *export.Exporter
}

func NewExportHandler(exporter *export.Exporter) *ExportHandler {
	return &ExportHandler{exporter: exporter}
}

func (h *ExportHandler) Tables(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tables": export.TableNames(),
	})
}

func (h *ExportHandler) Schema(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="schema.sql"`)
	c.Data(http.StatusOK, "application/sql; charset=utf-8", []byte(export.Schema))
}

// Table streams one table. Unknown tables are rejected before anything is written.
func (h *ExportHandler) Table(c *gin.Context) {
	session, ok := sessionOf(c)
	if !ok {
		return
	}

	table := c.Param("table")
	if _, ok := export.Lookup(table); !ok {
		apierrors.NotFound(c, fmt.Sprintf("unknown table %q", table))
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.csv"`, table))
	c.Status(http.StatusOK)

	if err := h.exporter.Export(c.Request.Context(), session.ChurchID(), table, c.Writer); err != nil {
		if errors.Is(err, export.ErrUnknownTable) {
			apierrors.NotFound(c, err.Error())
			return
		}
		// Headers are already sent; the truncated body is all the client gets.
		slog.Error("export failed", "church_id", session.ChurchID(), "table", table, "error", err)
		c.Abort()
	}
}
