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

func TestProfileService_ChangeRole(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := NewProfileService(env.profiles, env.members)
	invitations := newInvitationService(env, time.Now())

	inv, err := invitations.Create(env.ctx, env.churchID(), CreateInvitationInput{Email: "lider@central.org", Role: models.RoleMember})
	require.NoError(t, err)
	invited, err := invitations.Redeem(env.ctx, RedeemInput{Token: inv.Token, FullName: "Lider", Password: "senha123"})
	require.NoError(t, err)

	require.NoError(t, svc.ChangeRole(env.ctx, env.session, invited.Profile.ID, models.RoleLeader))
	session, err := env.auth.SessionContext(env.ctx, invited.Profile.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleLeader, session.Role)

	assert.True(t, errors.Is(svc.ChangeRole(env.ctx, env.session, env.session.Profile.ID, models.RoleMember), ErrCannotChangeOwnRole))
	assert.True(t, errors.Is(svc.ChangeRole(env.ctx, env.session, invited.Profile.ID, "bispo"), ErrInvalidRole))
	assert.True(t, errors.Is(svc.ChangeRole(env.ctx, env.session, 9999, models.RoleMember), ErrProfileNotFound))

	list, err := svc.List(env.ctx, env.churchID())
	require.NoError(t, err)
	require.Len(t, list, 2)
	roles := map[string]models.Role{}
	for _, p := range list {
		roles[p.Email] = p.Role
	}
	assert.Equal(t, models.RoleAdmin, roles["admin@central.org"])
	assert.Equal(t, models.RoleLeader, roles["lider@central.org"])
}

func TestProfileService_LinkMember(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := NewProfileService(env.profiles, env.members)
	m := env.addMember(t, "Pastor Admin")

	require.NoError(t, svc.LinkMember(env.ctx, env.churchID(), env.session.Profile.ID, &m.ID))
	profile, err := env.profiles.FindByID(env.ctx, env.session.Profile.ID)
	require.NoError(t, err)
	require.NotNil(t, profile.MemberID)
	assert.Equal(t, m.ID, *profile.MemberID)

	missing := uint64(9999)
	assert.True(t, errors.Is(svc.LinkMember(env.ctx, env.churchID(), env.session.Profile.ID, &missing), ErrMemberNotFound))
	assert.True(t, errors.Is(svc.LinkMember(env.ctx, env.churchID(), 9999, nil), ErrProfileNotFound))

	other := repository.NewTenantRepository[models.Member](env.db)
	stranger := &models.Member{FullName: "Outra Igreja"}
	require.NoError(t, other.Create(env.ctx, env.churchID()+100, stranger))
	assert.True(t, errors.Is(svc.LinkMember(env.ctx, env.churchID(), env.session.Profile.ID, &stranger.ID), ErrMemberNotFound))

	require.NoError(t, svc.LinkMember(env.ctx, env.churchID(), env.session.Profile.ID, nil))
	profile, err = env.profiles.FindByID(env.ctx, env.session.Profile.ID)
	require.NoError(t, err)
	assert.Nil(t, profile.MemberID)
}
