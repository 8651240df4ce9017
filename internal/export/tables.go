package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"gorm.io/gorm"
)

// ErrUnknownTable is returned for tables outside the export whitelist.
var ErrUnknownTable = errors.New("export: unknown table")

// Table describes one exportable table.
type Table struct {
	Name string
	// TenantColumn is compared against the church id.
	TenantColumn string
	// Omit lists columns never written to a file.
	Omit []string
}

var tables = map[string]Table{}

func init() {
	register(Table{Name: "churches", TenantColumn: "id"})
	register(Table{Name: "profiles", TenantColumn: "church_id", Omit: []string{"password_hash", "deleted_at"}})
	register(Table{Name: "invitations", TenantColumn: "church_id", Omit: []string{"token"}})
	for _, name := range []string{
		"user_roles",
		"congregations",
		"members",
		"cells",
		"cell_members",
		"cell_reports",
		"cell_report_attendances",
		"cell_visitors",
		"cell_prayer_requests",
		"cell_pastoral_care",
		"cell_leadership_development",
		"ministries",
		"ministry_volunteers",
		"ministry_schedules",
		"schedule_volunteers",
		"financial_categories",
		"financial_accounts",
		"financial_campaigns",
		"financial_transactions",
		"events",
		"event_registrations",
		"courses",
		"course_students",
		"consolidation_records",
		"discipleships",
		"pastoral_visits",
		"pastoral_counseling",
		"reminders",
		"announcements",
		"prayer_requests",
	} {
		register(Table{Name: name, TenantColumn: "church_id"})
	}
}

func register(t Table) {
	tables[t.Name] = t
}

// TableNames returns the exportable tables in alphabetical order.
func TableNames() []string {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the table registered under name.
func Lookup(name string) (Table, bool) {
	t, ok := tables[name]
	return t, ok
}

// Exporter reads whole tables of one church.
type Exporter struct {
	db *gorm.DB
}

func NewExporter(db *gorm.DB) *Exporter {
	return &Exporter{db: db}
}

// Export writes every row of table belonging to churchID to w as CSV.
func (e *Exporter) Export(ctx context.Context, churchID uint64, table string, w io.Writer) error {
	t, ok := Lookup(table)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}

	rows, err := e.db.WithContext(ctx).
		Table(t.Name).
		Where(fmt.Sprintf("%s = ?", t.TenantColumn), churchID).
		Order("id ASC").
		Rows()
	if err != nil {
		return fmt.Errorf("export %s: %w", t.Name, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("export %s: %w", t.Name, err)
	}

	omit := make(map[string]bool, len(t.Omit))
	for _, c := range t.Omit {
		omit[c] = true
	}
	var header []string
	var keep []int
	for i, c := range columns {
		if omit[c] {
			continue
		}
		header = append(header, c)
		keep = append(keep, i)
	}

	out := NewWriter(w)
	if err := out.WriteHeader(header); err != nil {
		return err
	}

	values := make([]interface{}, len(columns))
	ptrs := make([]interface{}, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}
	record := make([]string, len(keep))
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return fmt.Errorf("export %s: %w", t.Name, err)
		}
		for j, i := range keep {
			record[j] = FormatValue(values[i])
		}
		if err := out.WriteRow(record); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("export %s: %w", t.Name, err)
	}
	return out.Flush()
}
