package services

import (
	"testing"
	"time"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Dashboard(t *testing.T) {
	env := setupServiceTestEnv(t)
	now := time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)

	cellRepo := repository.NewCellRepository(env.db)
	financeRepo := repository.NewFinanceRepository(env.db)
	events := repository.NewTenantRepository[models.Event](env.db)
	svc := NewDashboardService(env.members, env.cells, events, cellRepo, financeRepo).WithClock(fixedClock(now))

	birth := civilDate(1990, time.October, 3)
	converted := civilDate(2026, time.October, 5)
	convert := &models.Member{FullName: "Nova", SpiritualStatus: models.StatusNewConvert, BirthDate: &birth, ConversionDate: &converted}
	require.NoError(t, env.members.Create(env.ctx, env.churchID(), convert))
	gone := env.addMember(t, "Saiu")
	require.NoError(t, env.members.Deactivate(env.ctx, env.churchID(), gone.ID))

	cell := &models.Cell{Name: "Célula Centro"}
	require.NoError(t, env.cells.Create(env.ctx, env.churchID(), cell))
	cells := newCellService(env)
	require.NoError(t, cells.AddMember(env.ctx, env.churchID(), cell.ID, convert.ID))
	_, err := cells.SubmitReport(env.ctx, env.churchID(), cell.ID, SubmitReportInput{
		ReportDate: civilDate(2026, time.October, 12),
		Present:    []uint64{convert.ID},
		Visitors:   2,
	})
	require.NoError(t, err)
	_, err = cells.SubmitReport(env.ctx, env.churchID(), cell.ID, SubmitReportInput{
		ReportDate: civilDate(2026, time.September, 30),
		Visitors:   10,
	})
	require.NoError(t, err)

	for _, tx := range []models.FinancialTransaction{
		{Type: models.TransactionIncome, Amount: models.NewMoney(150), TransactionDate: civilDate(2026, time.October, 2)},
		{Type: models.TransactionExpense, Amount: models.NewMoney(50), TransactionDate: civilDate(2026, time.October, 3)},
		{Type: models.TransactionIncome, Amount: models.NewMoney(900), TransactionDate: civilDate(2026, time.September, 3)},
	} {
		tx := tx
		tx.ChurchID = env.churchID()
		require.NoError(t, financeRepo.CreateTransaction(env.ctx, &tx))
	}

	require.NoError(t, events.Create(env.ctx, env.churchID(), &models.Event{Title: "Conferência", EventDate: now.Add(6 * 24 * time.Hour)}))
	require.NoError(t, events.Create(env.ctx, env.churchID(), &models.Event{Title: "Retiro passado", EventDate: now.Add(-24 * time.Hour)}))
	require.NoError(t, events.Create(env.ctx, env.churchID(), &models.Event{Title: "Natal", EventDate: now.Add(60 * 24 * time.Hour)}))

	d, err := svc.Dashboard(env.ctx, env.churchID())
	require.NoError(t, err)

	assert.Equal(t, 2, d.Members.Total)
	assert.Equal(t, 1, d.Members.Active)
	assert.Equal(t, 1, d.Members.ByStatus[models.StatusNewConvert])
	assert.Equal(t, 0, d.Members.ByStatus[models.StatusMember])
	assert.Equal(t, 1, d.Members.NewConvertsThisMonth)

	assert.Equal(t, 1, d.Cells.ActiveCells)
	assert.Equal(t, 1, d.Cells.ReportsThisWeek)
	assert.Equal(t, 1, d.Cells.ReportsThisMonth)
	assert.InDelta(t, 3.0, d.Cells.AverageAttendance, 0.001)
	assert.Equal(t, 2, d.Cells.VisitorsThisMonth)

	assert.Equal(t, models.NewMoney(150), d.Finance.Income)
	assert.Equal(t, models.NewMoney(50), d.Finance.Expense)
	assert.Equal(t, models.NewMoney(100), d.Finance.Balance)

	require.Len(t, d.UpcomingEvents, 1)
	assert.Equal(t, "Conferência", d.UpcomingEvents[0].Title)

	require.Len(t, d.Birthdays, 1)
	assert.Equal(t, 3, d.Birthdays[0].Day)
	assert.Equal(t, now, d.GeneratedAt)
}
