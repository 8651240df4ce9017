package services

import (
	"context"
	"testing"
	"time"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/database"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type serviceTestEnv struct {
	db       *gorm.DB
	ctx      context.Context
	auth     *AuthService
	session  *models.SessionContext
	churches repository.ChurchRepository
	profiles repository.ProfileRepository
	members  repository.TenantRepository[models.Member]
	cells    repository.TenantRepository[models.Cell]
}

func setupServiceTestEnv(t *testing.T) serviceTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})
	require.NoError(t, database.Migrate(db))

	env := serviceTestEnv{
		db:       db,
		ctx:      context.Background(),
		churches: repository.NewChurchRepository(db),
		profiles: repository.NewProfileRepository(db),
		members:  repository.NewTenantRepository[models.Member](db),
		cells:    repository.NewTenantRepository[models.Cell](db),
	}
	env.auth = NewAuthService(env.profiles, env.churches)

	session, err := env.auth.Signup(env.ctx, SignupInput{
		ChurchName: "Igreja Central",
		FullName:   "Pastor Admin",
		Email:      "admin@central.org",
		Password:   "secret1",
	})
	require.NoError(t, err)
	env.session = session
	return env
}

func (env serviceTestEnv) churchID() uint64 {
	return env.session.ChurchID()
}

func (env serviceTestEnv) addMember(t *testing.T, name string) *models.Member {
	t.Helper()
	m := &models.Member{FullName: name, SpiritualStatus: models.StatusMember}
	require.NoError(t, env.members.Create(env.ctx, env.churchID(), m))
	return m
}

func civilDate(y int, m time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
