package services

import (
	"errors"
	"testing"
	"time"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newInvitationService(env serviceTestEnv, now time.Time) *InvitationService {
	return NewInvitationService(repository.NewInvitationRepository(env.db), env.profiles, 0, "https://app.example.org/").
		WithClock(fixedClock(now))
}

func TestInvitationService_CreateAndRedeem(t *testing.T) {
	env := setupServiceTestEnv(t)
	now := time.Date(2026, time.October, 17, 10, 0, 0, 0, time.UTC)
	svc := newInvitationService(env, now)

	inv, err := svc.Create(env.ctx, env.churchID(), CreateInvitationInput{
		Email:     "Novo@Central.org",
		Role:      models.RoleMember,
		CreatedBy: env.session.Profile.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "novo@central.org", inv.Email)
	assert.Len(t, inv.Token, 32)
	assert.Equal(t, now.Add(7*24*time.Hour), inv.ExpiresAt)
	assert.Nil(t, inv.UsedAt)
	assert.Equal(t, models.InvitationValid, inv.State)
	assert.Equal(t, "https://app.example.org/convite/"+inv.Token, inv.Link)

	looked, err := svc.Lookup(env.ctx, inv.Token)
	require.NoError(t, err)
	assert.Equal(t, models.InvitationValid, looked.State)

	session, err := svc.Redeem(env.ctx, RedeemInput{Token: inv.Token, FullName: "Novo Membro", Password: "senha123"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleMember, session.Role)
	assert.Equal(t, env.churchID(), session.ChurchID())
	assert.Equal(t, "novo@central.org", session.Profile.Email)

	used, err := svc.Lookup(env.ctx, inv.Token)
	require.NoError(t, err)
	assert.Equal(t, models.InvitationUsed, used.State)
	require.NotNil(t, used.UsedAt)

	_, err = svc.Redeem(env.ctx, RedeemInput{Token: inv.Token, FullName: "De Novo", Password: "senha123"})
	assert.True(t, errors.Is(err, ErrInvalidInvitation))

	assert.True(t, errors.Is(svc.Delete(env.ctx, env.churchID(), inv.ID), ErrInvitationUsed))
}

func TestInvitationService_RejectsExpired(t *testing.T) {
	env := setupServiceTestEnv(t)
	issued := time.Date(2026, time.October, 1, 10, 0, 0, 0, time.UTC)

	inv, err := newInvitationService(env, issued).Create(env.ctx, env.churchID(), CreateInvitationInput{
		Email: "tarde@central.org", Role: models.RoleLeader, CreatedBy: env.session.Profile.ID,
	})
	require.NoError(t, err)

	later := newInvitationService(env, issued.Add(7*24*time.Hour))
	looked, err := later.Lookup(env.ctx, inv.Token)
	require.NoError(t, err)
	assert.Equal(t, models.InvitationExpired, looked.State)

	_, err = later.Redeem(env.ctx, RedeemInput{Token: inv.Token, FullName: "Tarde", Password: "senha123"})
	assert.True(t, errors.Is(err, ErrInvalidInvitation))

	_, err = env.profiles.FindByEmail(env.ctx, "tarde@central.org")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestInvitationService_Validation(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := newInvitationService(env, time.Now())

	_, err := svc.Create(env.ctx, env.churchID(), CreateInvitationInput{Email: "a@b.c", Role: "bispo"})
	assert.True(t, errors.Is(err, ErrInvalidRole))

	_, err = svc.Lookup(env.ctx, "nope")
	assert.True(t, errors.Is(err, ErrInvitationNotFound))

	_, err = svc.Redeem(env.ctx, RedeemInput{Token: "nope", FullName: "X", Password: "senha123"})
	assert.True(t, errors.Is(err, ErrInvitationNotFound))

	inv, err := svc.Create(env.ctx, env.churchID(), CreateInvitationInput{Email: "curta@central.org", Role: models.RoleMember})
	require.NoError(t, err)
	_, err = svc.Redeem(env.ctx, RedeemInput{Token: inv.Token, FullName: "X", Password: "123"})
	assert.True(t, errors.Is(err, ErrPasswordTooShort))

	// The failed attempt did not consume the token.
	looked, err := svc.Lookup(env.ctx, inv.Token)
	require.NoError(t, err)
	assert.Equal(t, models.InvitationValid, looked.State)

	taken, err := svc.Create(env.ctx, env.churchID(), CreateInvitationInput{Email: "admin@central.org", Role: models.RoleMember})
	require.NoError(t, err)
	_, err = svc.Redeem(env.ctx, RedeemInput{Token: taken.Token, FullName: "X", Password: "senha123"})
	assert.True(t, errors.Is(err, ErrEmailTaken))

	list, err := svc.List(env.ctx, env.churchID())
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, svc.Delete(env.ctx, env.churchID(), inv.ID))
	assert.True(t, errors.Is(svc.Delete(env.ctx, env.churchID(), inv.ID), ErrInvitationNotFound))
}
