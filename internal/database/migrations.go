package database

import (
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/gorm"
)

type tenantIndex struct {
	table   string
	name    string
	columns []string
}

// tenantIndexes are the composite indexes backing the church-scoped
// listings (church_id first, then the natural ordering key).
var tenantIndexes = []tenantIndex{
	{"members", "idx_members_church_name", []string{"church_id", "full_name"}},
	{"members", "idx_members_church_status", []string{"church_id", "spiritual_status"}},
	{"cells", "idx_cells_church_name", []string{"church_id", "name"}},
	{"cell_reports", "idx_cell_reports_church_date", []string{"church_id", "report_date"}},
	{"cell_members", "idx_cell_members_church_cell", []string{"church_id", "cell_id"}},
	{"ministry_schedules", "idx_ministry_schedules_church_date", []string{"church_id", "scheduled_date"}},
	{"financial_transactions", "idx_fin_tx_church_date", []string{"church_id", "transaction_date"}},
	{"events", "idx_events_church_date", []string{"church_id", "event_date"}},
	{"reminders", "idx_reminders_church_due", []string{"church_id", "due_date"}},
	{"invitations", "idx_invitations_church_email", []string{"church_id", "email"}},
}

// AddIndexes creates the composite tenant indexes that AutoMigrate does not declare.
func AddIndexes(db *gorm.DB) error {
	migrator := db.Migrator()
	for _, idx := range tenantIndexes {
		if migrator.HasIndex(idx.table, idx.name) {
			slog.Debug("index already exists, skipping", "index", idx.name)
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, strings.Join(idx.columns, ", "))
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
		slog.Debug("created index", "index", idx.name, "table", idx.table)
	}
	return nil
}
