package database

import (
	"testing"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/config"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestDialector_Unsupported(t *testing.T) {
	_, err := Dialector(&config.Config{DBDriver: "oracle"})
	require.Error(t, err)
}

func TestDialector_Names(t *testing.T) {
	for _, driver := range []string{"postgres", "mysql", "sqlite"} {
		d, err := Dialector(&config.Config{DBDriver: driver, DBSQLitePath: ":memory:"})
		require.NoError(t, err)
		require.Equal(t, driver, d.Name())
	}
}

func TestMigrate_CreatesTablesAndIndexes(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, Migrate(db))
	// Running twice must be a no-op.
	require.NoError(t, Migrate(db))

	require.True(t, db.Migrator().HasTable(&models.CellReport{}))
	require.True(t, db.Migrator().HasTable("cell_pastoral_care"))
	require.True(t, db.Migrator().HasIndex("members", "idx_members_church_name"))
}

func TestScopes(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&models.Member{}))

	for i, churchID := range []uint64{1, 1, 1, 2} {
		m := models.Member{FullName: string(rune('A' + i))}
		m.ChurchID = churchID
		require.NoError(t, db.Create(&m).Error)
	}
	require.NoError(t, db.Model(&models.Member{}).Where("full_name = ?", "A").Update("is_active", false).Error)

	var members []models.Member
	require.NoError(t, db.Scopes(ForChurch(1), ActiveOnly).Order("full_name").Find(&members).Error)
	require.Len(t, members, 2)
	require.Equal(t, "B", members[0].FullName)

	members = nil
	require.NoError(t, db.Scopes(ForChurch(1), Paginate(1, 1)).Order("full_name").Find(&members).Error)
	require.Len(t, members, 1)
	require.Equal(t, "B", members[0].FullName)
}
