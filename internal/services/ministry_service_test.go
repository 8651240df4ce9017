package services

import (
	"errors"
	"testing"
	"time"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinistryService_Volunteers(t *testing.T) {
	env := setupServiceTestEnv(t)
	schedules := repository.NewTenantRepository[models.MinistrySchedule](env.db)
	ministries := repository.NewTenantRepository[models.Ministry](env.db)
	svc := NewMinistryService(schedules, env.members, repository.NewMinistryRepository(env.db))

	ministry := &models.Ministry{Name: "Louvor"}
	require.NoError(t, ministries.Create(env.ctx, env.churchID(), ministry))
	schedule := &models.MinistrySchedule{MinistryID: ministry.ID, Title: "Culto de domingo", ScheduledDate: civilDate(2026, time.October, 18)}
	require.NoError(t, schedules.Create(env.ctx, env.churchID(), schedule))

	bruno := env.addMember(t, "Bruno")
	ana := env.addMember(t, "Ana")

	vb, err := svc.AddVolunteer(env.ctx, env.churchID(), schedule.ID, bruno.ID, "bateria")
	require.NoError(t, err)
	assert.False(t, vb.Confirmed)
	va, err := svc.AddVolunteer(env.ctx, env.churchID(), schedule.ID, ana.ID, "voz")
	require.NoError(t, err)

	require.NoError(t, svc.SetConfirmed(env.ctx, env.churchID(), schedule.ID, va.ID, true))

	rows, err := svc.ListVolunteers(env.ctx, env.churchID(), schedule.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ana", *rows[0].MemberName)
	assert.True(t, rows[0].Confirmed)
	assert.Equal(t, "Bruno", *rows[1].MemberName)
	assert.False(t, rows[1].Confirmed)

	require.NoError(t, svc.RemoveVolunteer(env.ctx, env.churchID(), schedule.ID, vb.ID))
	assert.True(t, errors.Is(svc.RemoveVolunteer(env.ctx, env.churchID(), schedule.ID, vb.ID), ErrVolunteerNotFound))
	assert.True(t, errors.Is(svc.SetConfirmed(env.ctx, env.churchID(), schedule.ID, vb.ID, true), ErrVolunteerNotFound))

	_, err = svc.AddVolunteer(env.ctx, env.churchID(), 9999, ana.ID, "")
	assert.True(t, errors.Is(err, ErrScheduleNotFound))
	_, err = svc.AddVolunteer(env.ctx, env.churchID(), schedule.ID, 9999, "")
	assert.True(t, errors.Is(err, ErrMemberNotFound))
	_, err = svc.ListVolunteers(env.ctx, env.churchID(), 9999)
	assert.True(t, errors.Is(err, ErrScheduleNotFound))
}
