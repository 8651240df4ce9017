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

// ScheduleHandler manages the volunteers of ministry schedules.
type ScheduleHandler struct {
	ministries *services.MinistryService
}

func NewScheduleHandler(ministries *services.MinistryService) *ScheduleHandler {
	return &ScheduleHandler{ministries: ministries}
}

func (h *ScheduleHandler) ListVolunteers(c *gin.Context) {
	session, ok := sessionOf(c)
	if !ok {
		return
	}
	scheduleID, ok := pathID(c, "id")
	if !ok {
		return
	}

	rows, err := h.ministries.ListVolunteers(c.Request.Context(), session.ChurchID(), scheduleID)
	if err != nil {
		respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"volunteers": rows,
	})
}

func (h *ScheduleHandler) AddVolunteer(c *gin.Context) {
	session, ok := sessionOf(c)
	if !ok {
		return
	}
	scheduleID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.AddScheduleVolunteerRequest
	if !bindJSON(c, &req) {
		return
	}

	v, err := h.ministries.AddVolunteer(c.Request.Context(), session.ChurchID(), scheduleID, req.MemberID, req.Role)
	if err != nil {
		respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, v)
}

// ConfirmVolunteer records the volunteer's answer to the assignment.
func (h *ScheduleHandler) ConfirmVolunteer(c *gin.Context) {
	session, ok := sessionOf(c)
	if !ok {
		return
	}
	scheduleID, ok := pathID(c, "id")
	if !ok {
		return
	}
	volunteerID, ok := pathID(c, "volunteer_id")
	if !ok {
		return
	}

	var req dto.ConfirmVolunteerRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.ministries.SetConfirmed(c.Request.Context(), session.ChurchID(), scheduleID, volunteerID, *req.Confirmed); err != nil {
		respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"confirmed": *req.Confirmed,
	})
}

func (h *ScheduleHandler) RemoveVolunteer(c *gin.Context) {
	session, ok := sessionOf(c)
	if !ok {
		return
	}
	scheduleID, ok := pathID(c, "id")
	if !ok {
		return
	}
	volunteerID, ok := pathID(c, "volunteer_id")
	if !ok {
		return
	}

	if err := h.ministries.RemoveVolunteer(c.Request.Context(), session.ChurchID(), scheduleID, volunteerID); err != nil {
		respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Volunteer removed from schedule",
	})
}

func respondScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrScheduleNotFound),
		errors.Is(err, services.ErrVolunteerNotFound),
		errors.Is(err, services.ErrMemberNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		slog.Error("schedule request failed", "error", err)
		apierrors.InternalError(c, "")
	}
}
