// Package stats derives the summary numbers shown on overview screens.
// Every function is pure: rows are fetched by the caller and the current
// time is passed in explicitly.
package stats

import (
	"sort"
	"strings"
	"time"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/constants"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
)

// Attendance is the total head count of a cell meeting.
func Attendance(present, visitors int) int {
	return present + visitors
}

// CampaignProgress returns the percentage of goal reached, capped at 100.
// ok is false when the campaign has no goal.
func CampaignProgress(current, goal models.Money) (progress float64, ok bool) {
	if goal <= 0 {
		return 0, false
	}
	progress = float64(current) / float64(goal) * 100
	if progress > 100 {
		progress = 100
	}
	return progress, true
}

// LeaderStatus is the leader name of a cell or the leaderless label.
func LeaderStatus(leaderName *string) string {
	if leaderName == nil || strings.TrimSpace(*leaderName) == "" {
		return constants.LeaderlessCellLabel
	}
	return *leaderName
}

type MemberStats struct {
	Total                int                            `json:"total"`
	Active               int                            `json:"active"`
	ByStatus             map[models.SpiritualStatus]int `json:"by_status"`
	NewConvertsThisMonth int                            `json:"new_converts_this_month"`
}

// Members counts members overall and, among active ones, by spiritual status.
func Members(members []models.Member, now time.Time) MemberStats {
	month := MonthOf(now)
	out := MemberStats{
		Total:    len(members),
		ByStatus: make(map[models.SpiritualStatus]int, len(models.SpiritualStatuses)),
	}
	for _, status := range models.SpiritualStatuses {
		out.ByStatus[status] = 0
	}

	for _, m := range members {
		if !m.IsActive {
			continue
		}
		out.Active++
		out.ByStatus[m.SpiritualStatus]++
		if m.ConversionDate != nil && month.ContainsDate(*m.ConversionDate) {
			out.NewConvertsThisMonth++
		}
	}
	return out
}

type CellStats struct {
	ActiveCells          int     `json:"active_cells"`
	ReportsThisWeek      int     `json:"reports_this_week"`
	ReportsThisMonth     int     `json:"reports_this_month"`
	AverageAttendance    float64 `json:"average_attendance"`
	VisitorsThisMonth    int     `json:"visitors_this_month"`
	ConversionsThisMonth int     `json:"conversions_this_month"`
}

// Cells summarizes cell activity. Averages cover the reports of the current month.
func Cells(cells []models.Cell, reports []models.CellReport, now time.Time) CellStats {
	month, week := MonthOf(now), WeekOf(now)

	var out CellStats
	for _, c := range cells {
		if c.IsActive {
			out.ActiveCells++
		}
	}

	attendance := 0
	for _, r := range reports {
		if week.ContainsDate(r.ReportDate) {
			out.ReportsThisWeek++
		}
		if !month.ContainsDate(r.ReportDate) {
			continue
		}
		out.ReportsThisMonth++
		attendance += r.Attendance
		out.VisitorsThisMonth += r.Visitors
		out.ConversionsThisMonth += r.Conversions
	}
	out.AverageAttendance = average(attendance, out.ReportsThisMonth)
	return out
}

type Totals struct {
	Income  models.Money `json:"income"`
	Expense models.Money `json:"expense"`
	Balance models.Money `json:"balance"`
}

// FinanceTotals sums income and expense of the transactions dated inside w.
func FinanceTotals(transactions []models.FinancialTransaction, w Window) Totals {
	var out Totals
	for _, t := range transactions {
		if !w.ContainsDate(t.TransactionDate) {
			continue
		}
		switch t.Type {
		case models.TransactionIncome:
			out.Income += t.Amount
		case models.TransactionExpense:
			out.Expense += t.Amount
		}
	}
	out.Balance = out.Income - out.Expense
	return out
}

// UpcomingEvents returns events starting within the next window after now,
// earliest first, at most limit of them.
func UpcomingEvents(events []models.Event, now time.Time, window time.Duration, limit int) []models.Event {
	upcoming := Window{From: now, To: now.Add(window)}
	out := []models.Event{}
	for _, e := range events {
		if upcoming.Contains(e.EventDate) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EventDate.Before(out[j].EventDate)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

type Birthday struct {
	MemberID uint64 `json:"member_id"`
	FullName string `json:"full_name"`
	Day      int    `json:"day"`
}

// BirthdaysInMonth lists active members born in the month of now, by day.
func BirthdaysInMonth(members []models.Member, now time.Time) []Birthday {
	out := []Birthday{}
	for _, m := range members {
		if !m.IsActive || m.BirthDate == nil {
			continue
		}
		birth := time.Time(*m.BirthDate)
		if birth.Month() != now.Month() {
			continue
		}
		out = append(out, Birthday{MemberID: m.ID, FullName: m.FullName, Day: birth.Day()})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		return out[i].FullName < out[j].FullName
	})
	return out
}

type Dashboard struct {
	Members        MemberStats    `json:"members"`
	Cells          CellStats      `json:"cells"`
	Finance        Totals         `json:"finance"`
	UpcomingEvents []models.Event `json:"upcoming_events"`
	Birthdays      []Birthday     `json:"birthdays"`
	GeneratedAt    time.Time      `json:"generated_at"`
}

// DashboardInput holds the rows the dashboard is computed from.
type DashboardInput struct {
	Members      []models.Member
	Cells        []models.Cell
	Reports      []models.CellReport
	Transactions []models.FinancialTransaction
	Events       []models.Event
}

// BuildDashboard computes every dashboard figure at now.
func BuildDashboard(in DashboardInput, now time.Time) Dashboard {
	return Dashboard{
		Members:        Members(in.Members, now),
		Cells:          Cells(in.Cells, in.Reports, now),
		Finance:        FinanceTotals(in.Transactions, MonthOf(now)),
		UpcomingEvents: UpcomingEvents(in.Events, now, constants.UpcomingEventsWindow, constants.MaxUpcomingEvents),
		Birthdays:      BirthdaysInMonth(in.Members, now),
		GeneratedAt:    now,
	}
}

func average(total, count int) float64 {
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}
