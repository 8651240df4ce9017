package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/dto"
	apierrors "github.com/reanestrella/cell-growth-hub-sub000/internal/errors"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/services"
)

// CellHandler serves cell membership, meeting reports and the cell overview.
type CellHandler struct {
	cells *services.CellService
}

func NewCellHandler(cells *services.CellService) *CellHandler {
	return &CellHandler{cells: cells}
}

// ListMembers returns the members of a cell.
func (h *CellHandler) ListMembers(c *gin.Context) {
	session, ok := sessionOf(c)
	if !ok {
		return
	}
	cellID, ok := pathID(c, "id")
	if !ok {
		return
	}

	members, err := h.cells.ListMembers(c.Request.Context(), session.ChurchID(), cellID)
	if err != nil {
		respondCellError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"members": members,
	})
}

// AddMember puts a member in a cell. Repeating the call changes nothing.
func (h *CellHandler) AddMember(c *gin.Context) {
	session, ok := sessionOf(c)
	if !ok {
		return
	}
	cellID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.AddCellMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cells.AddMember(c.Request.Context(), session.ChurchID(), cellID, req.MemberID); err != nil {
		respondCellError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Member added to cell",
	})
}

// RemoveMember takes a member out of a cell.
func (h *CellHandler) RemoveMember(c *gin.Context) {
	session, ok := sessionOf(c)
	if !ok {
		return
	}
	cellID, ok := pathID(c, "id")
	if !ok {
		return
	}
	memberID, ok := pathID(c, "member_id")
	if !ok {
		return
	}

	if err := h.cells.RemoveMember(c.Request.Context(), session.ChurchID(), cellID, memberID); err != nil {
		respondCellError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Member removed from cell",
	})
}

// SubmitReport stores a meeting report with its presence roster.
func (h *CellHandler) SubmitReport(c *gin.Context) {
	session, ok := sessionOf(c)
	if !ok {
		return
	}
	cellID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.SubmitCellReportRequest
	if !bindJSON(c, &req) {
		return
	}
	reportDate, err := dto.ParseDate(req.ReportDate)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	submittedBy := session.Profile.ID
	report, err := h.cells.SubmitReport(c.Request.Context(), session.ChurchID(), cellID, services.SubmitReportInput{
		ReportDate:  reportDate,
		Present:     req.PresentMemberIDs,
		Absent:      req.AbsentMemberIDs,
		Visitors:    req.Visitors,
		Conversions: req.Conversions,
		Offering:    req.Offering,
		Notes:       req.Notes,
		SubmittedBy: &submittedBy,
	})
	if err != nil {
		respondCellError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

// ListReports returns the reports of a cell, newest first.
func (h *CellHandler) ListReports(c *gin.Context) {
	session, ok := sessionOf(c)
	if !ok {
		return
	}
	cellID, ok := pathID(c, "id")
	if !ok {
		return
	}

	reports, err := h.cells.ListReports(c.Request.Context(), session.ChurchID(), cellID)
	if err != nil {
		respondCellError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reports": reports,
	})
}

// Overview totals the reports of every active cell for the window
// [from, to). Both bounds are optional dates.
func (h *CellHandler) Overview(c *gin.Context) {
	session, ok := sessionOf(c)
	if !ok {
		return
	}

	from, err := queryDate(c, "from")
	if err != nil {
		apierrors.BadRequest(c, "Invalid from date")
		return
	}
	to, err := queryDate(c, "to")
	if err != nil {
		apierrors.BadRequest(c, "Invalid to date")
		return
	}

	cells, err := h.cells.Overview(c.Request.Context(), session.ChurchID(), from, to)
	if err != nil {
		respondCellError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cells": cells,
	})
}

func queryDate(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	d, err := dto.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	t := time.Time(d)
	return &t, nil
}

func respondCellError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCellNotFound),
		errors.Is(err, services.ErrMemberNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrRosterNotInCell),
		errors.Is(err, services.ErrRosterOverlap),
		errors.Is(err, services.ErrNegativeCount):
		apierrors.InvalidOperation(c, "", err.Error())
	default:
		slog.Error("cell request failed", "error", err)
		apierrors.InternalError(c, "")
	}
}
