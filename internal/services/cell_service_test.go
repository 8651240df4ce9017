package services

import (
	"errors"
	"testing"
	"time"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/constants"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCellService(env serviceTestEnv) *CellService {
	return NewCellService(env.cells, env.members, repository.NewCellRepository(env.db))
}

func TestCellService_ReportWithoutLeader(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := newCellService(env)

	cell := &models.Cell{Name: "Célula Teste"}
	require.NoError(t, env.cells.Create(env.ctx, env.churchID(), cell))

	var present, absent []uint64
	for _, name := range []string{"Ana", "Bruno", "Carla", "Davi", "Eva", "Fábio", "Gil"} {
		m := env.addMember(t, name)
		require.NoError(t, svc.AddMember(env.ctx, env.churchID(), cell.ID, m.ID))
		if len(present) < 5 {
			present = append(present, m.ID)
		} else {
			absent = append(absent, m.ID)
		}
	}

	report, err := svc.SubmitReport(env.ctx, env.churchID(), cell.ID, SubmitReportInput{
		ReportDate: civilDate(2026, time.October, 14),
		Present:    present,
		Absent:     absent,
		Visitors:   3,
		Offering:   models.NewMoney(42.5),
	})
	require.NoError(t, err)
	assert.Equal(t, 8, report.Attendance)
	assert.Equal(t, 5, report.MembersPresent)
	assert.Len(t, report.Roster, 7)

	reports, err := svc.ListReports(env.ctx, env.churchID(), cell.ID)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, 8, reports[0].Attendance)
	assert.Len(t, reports[0].Roster, 7)

	overview, err := svc.Overview(env.ctx, env.churchID(), nil, nil)
	require.NoError(t, err)
	require.Len(t, overview, 1)
	assert.Equal(t, "Célula Teste", overview[0].Name)
	assert.Equal(t, constants.LeaderlessCellLabel, overview[0].LeaderStatus)
	assert.Equal(t, 1, overview[0].Reports)
	assert.Equal(t, 8, overview[0].TotalAttendance)
	assert.Equal(t, 3, overview[0].Visitors)
	assert.Equal(t, models.Money(4250), overview[0].Offering)

	require.NoError(t, svc.DeleteReport(env.ctx, env.churchID(), report.ID))
	assert.True(t, errors.Is(svc.DeleteReport(env.ctx, env.churchID(), report.ID), ErrReportNotFound))
	reports, err = svc.ListReports(env.ctx, env.churchID(), cell.ID)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestCellService_RosterValidation(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := newCellService(env)

	cell := &models.Cell{Name: "Célula Norte"}
	require.NoError(t, env.cells.Create(env.ctx, env.churchID(), cell))
	inside := env.addMember(t, "Dentro")
	outside := env.addMember(t, "Fora")
	require.NoError(t, svc.AddMember(env.ctx, env.churchID(), cell.ID, inside.ID))
	// Adding twice is a no-op.
	require.NoError(t, svc.AddMember(env.ctx, env.churchID(), cell.ID, inside.ID))

	members, err := svc.ListMembers(env.ctx, env.churchID(), cell.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Dentro", members[0].Member.FullName)

	date := civilDate(2026, time.October, 14)
	_, err = svc.SubmitReport(env.ctx, env.churchID(), cell.ID, SubmitReportInput{
		ReportDate: date, Present: []uint64{inside.ID}, Absent: []uint64{inside.ID},
	})
	assert.True(t, errors.Is(err, ErrRosterOverlap))

	_, err = svc.SubmitReport(env.ctx, env.churchID(), cell.ID, SubmitReportInput{
		ReportDate: date, Present: []uint64{outside.ID},
	})
	assert.True(t, errors.Is(err, ErrRosterNotInCell))

	_, err = svc.SubmitReport(env.ctx, env.churchID(), cell.ID, SubmitReportInput{ReportDate: date, Visitors: -1})
	assert.True(t, errors.Is(err, ErrNegativeCount))

	_, err = svc.SubmitReport(env.ctx, env.churchID(), 9999, SubmitReportInput{ReportDate: date})
	assert.True(t, errors.Is(err, ErrCellNotFound))

	report, err := svc.SubmitReport(env.ctx, env.churchID(), cell.ID, SubmitReportInput{
		ReportDate: date, Present: []uint64{inside.ID, inside.ID}, Visitors: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Attendance)
	assert.Len(t, report.Roster, 1)

	assert.True(t, errors.Is(svc.AddMember(env.ctx, env.churchID(), cell.ID, 9999), ErrMemberNotFound))
	require.NoError(t, svc.RemoveMember(env.ctx, env.churchID(), cell.ID, inside.ID))
	assert.True(t, errors.Is(svc.RemoveMember(env.ctx, env.churchID(), cell.ID, inside.ID), ErrMemberNotFound))
}

func TestCellService_OverviewWindow(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := newCellService(env)

	leader := env.addMember(t, "Líder Paulo")
	cell := &models.Cell{Name: "Célula Sul", LeaderID: &leader.ID}
	require.NoError(t, env.cells.Create(env.ctx, env.churchID(), cell))

	for _, day := range []int{1, 8, 30} {
		_, err := svc.SubmitReport(env.ctx, env.churchID(), cell.ID, SubmitReportInput{
			ReportDate: civilDate(2026, time.September, day),
			Visitors:   day,
		})
		require.NoError(t, err)
	}

	from := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC)
	overview, err := svc.Overview(env.ctx, env.churchID(), &from, &to)
	require.NoError(t, err)
	require.Len(t, overview, 1)
	assert.Equal(t, "Líder Paulo", overview[0].LeaderStatus)
	assert.Equal(t, 2, overview[0].Reports)
	assert.Equal(t, 9, overview[0].TotalAttendance)
	assert.InDelta(t, 4.5, overview[0].AverageAttendance, 0.001)
}
