package repository

import (
	"fmt"
	"time"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/validation"
)

// CellSummaryRow is a cell joined with its leader and member count.
type CellSummaryRow struct {
	ID          uint64  `json:"id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	LeaderID    *uint64 `json:"leader_id"`
	LeaderName  *string `json:"leader_name" validate:"required_with=LeaderID"`
	IsActive    bool    `json:"is_active"`
	MemberCount int64   `json:"member_count" validate:"gte=0"`
}

// ScheduleVolunteerRow is a schedule assignment joined with the member name.
type ScheduleVolunteerRow struct {
	ID         uint64  `json:"id" validate:"required"`
	ScheduleID uint64  `json:"schedule_id" validate:"required"`
	MemberID   uint64  `json:"member_id" validate:"required"`
	MemberName *string `json:"member_name" validate:"required"`
	Role       string  `json:"role"`
	Confirmed  bool    `json:"confirmed"`
}

// MemberScheduleRow is a schedule a member volunteers in, with its ministry name.
type MemberScheduleRow struct {
	ScheduleID    uint64    `json:"schedule_id" validate:"required"`
	MinistryID    uint64    `json:"ministry_id" validate:"required"`
	MinistryName  *string   `json:"ministry_name" validate:"required"`
	Title         string    `json:"title" validate:"required"`
	ScheduledDate time.Time `json:"scheduled_date" validate:"required"`
	Role          string    `json:"role"`
	Confirmed     bool      `json:"confirmed"`
}

// validateRows rejects joined rows that do not match their schema instead
// of handing half-populated values to callers.
func validateRows[T any](rows []T) error {
	for i := range rows {
		if err := validation.Struct(rows[i]); err != nil {
			return fmt.Errorf("%w: row %d: %v", ErrMalformedRow, i, err)
		}
	}
	return nil
}
