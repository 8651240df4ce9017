package database

import (
	"fmt"
	"log/slog"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/config"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector builds the gorm dialector selected by cfg.DBDriver.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBName,
		)
		return postgres.Open(dsn), nil
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBName,
		)
		return mysql.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(cfg.DBSQLitePath), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

func Connect(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Warn
	if cfg.GinMode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	slog.Info("database connection established", "driver", cfg.DBDriver)
	return db, nil
}

// AllModels lists every table of the schema in dependency order.
func AllModels() []interface{} {
	return []interface{}{
		&models.Church{},
		&models.Profile{},
		&models.UserRole{},
		&models.Invitation{},
		&models.Congregation{},
		&models.Member{},
		&models.Cell{},
		&models.CellMember{},
		&models.CellReport{},
		&models.CellReportAttendance{},
		&models.CellVisitor{},
		&models.CellPrayerRequest{},
		&models.CellPastoralCare{},
		&models.CellLeadershipDevelopment{},
		&models.Ministry{},
		&models.MinistryVolunteer{},
		&models.MinistrySchedule{},
		&models.ScheduleVolunteer{},
		&models.FinancialCategory{},
		&models.FinancialAccount{},
		&models.FinancialCampaign{},
		&models.FinancialTransaction{},
		&models.Event{},
		&models.EventRegistration{},
		&models.Course{},
		&models.CourseStudent{},
		&models.ConsolidationRecord{},
		&models.Discipleship{},
		&models.PastoralVisit{},
		&models.PastoralCounseling{},
		&models.Reminder{},
		&models.Announcement{},
		&models.PrayerRequest{},
	}
}

func Migrate(db *gorm.DB) error {
	slog.Info("running database migrations")
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := AddIndexes(db); err != nil {
		return err
	}
	slog.Info("database migrations completed")
	return nil
}
