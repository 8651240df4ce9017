package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Signup(t *testing.T) {
	env := setupServiceTestEnv(t)

	assert.Equal(t, models.RoleAdmin, env.session.Role)
	assert.Equal(t, "igreja-central", env.session.Church.Slug)
	assert.Equal(t, models.PlanFree, env.session.Church.Plan)
	assert.Equal(t, env.session.Church.ID, env.session.Profile.ChurchID)
	assert.NotEqual(t, "secret1", env.session.Profile.PasswordHash)

	second, err := env.auth.Signup(env.ctx, SignupInput{
		ChurchName: "Igreja  Central!",
		FullName:   "Outro Admin",
		Email:      "outro@central.org",
		Password:   "secret1",
	})
	require.NoError(t, err)
	assert.NotEqual(t, env.session.Church.Slug, second.Church.Slug)
	assert.Contains(t, second.Church.Slug, "igreja-central-")
}

func TestAuthService_SignupRejections(t *testing.T) {
	env := setupServiceTestEnv(t)

	_, err := env.auth.Signup(env.ctx, SignupInput{
		ChurchName: "Nova", FullName: "X", Email: " ADMIN@central.org ", Password: "secret1",
	})
	assert.True(t, errors.Is(err, ErrEmailTaken))

	_, err = env.auth.Signup(env.ctx, SignupInput{
		ChurchName: "Nova", FullName: "X", Email: "x@nova.org", Password: "12345",
	})
	assert.True(t, errors.Is(err, ErrPasswordTooShort))

	_, err = env.auth.Signup(env.ctx, SignupInput{
		ChurchName: "Nova", FullName: "X", Email: "x@nova.org", Password: strings.Repeat("a", 73),
	})
	assert.True(t, errors.Is(err, ErrPasswordTooLong))

	hash, err := HashPassword(strings.Repeat("a", 72))
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	_, err = env.auth.Signup(env.ctx, SignupInput{
		ChurchName: " ", FullName: "X", Email: "y@nova.org", Password: "secret1",
	})
	assert.Error(t, err)
}

func TestAuthService_Login(t *testing.T) {
	env := setupServiceTestEnv(t)

	profile, err := env.auth.Login(env.ctx, LoginInput{Email: "Admin@Central.org", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, env.session.Profile.ID, profile.ID)

	_, err = env.auth.Login(env.ctx, LoginInput{Email: "admin@central.org", Password: "wrong-password"})
	assert.True(t, errors.Is(err, ErrInvalidCredentials))

	_, err = env.auth.Login(env.ctx, LoginInput{Email: "ghost@central.org", Password: "secret1"})
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestAuthService_SessionContext(t *testing.T) {
	env := setupServiceTestEnv(t)

	session, err := env.auth.SessionContext(env.ctx, env.session.Profile.ID)
	require.NoError(t, err)
	assert.Equal(t, env.churchID(), session.ChurchID())
	assert.Equal(t, models.RoleAdmin, session.Role)
	assert.True(t, session.HasRole(models.RolePastor, models.RoleAdmin))

	_, err = env.auth.SessionContext(env.ctx, 9999)
	assert.True(t, errors.Is(err, ErrProfileNotFound))

	require.NoError(t, env.db.Model(&models.Church{}).Where("id = ?", env.churchID()).Update("is_active", false).Error)
	_, err = env.auth.SessionContext(env.ctx, env.session.Profile.ID)
	assert.True(t, errors.Is(err, ErrChurchInactive))
}
