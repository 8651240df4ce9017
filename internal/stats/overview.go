package stats

import (
	"sort"

	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
)

// CellRef identifies a cell on overview screens.
type CellRef struct {
	ID         uint64
	Name       string
	LeaderName *string
}

type CellTotals struct {
	CellID            uint64       `json:"cell_id"`
	Name              string       `json:"name"`
	LeaderStatus      string       `json:"leader_status"`
	Reports           int          `json:"reports"`
	TotalAttendance   int          `json:"total_attendance"`
	AverageAttendance float64      `json:"average_attendance"`
	Visitors          int          `json:"visitors"`
	Conversions       int          `json:"conversions"`
	Offering          models.Money `json:"offering"`
}

// CellOverview aggregates reports per cell. Cells without reports are kept
// with zero totals; reports of unknown cells are ignored.
func CellOverview(cells []CellRef, reports []models.CellReport) []CellTotals {
	index := make(map[uint64]int, len(cells))
	out := make([]CellTotals, 0, len(cells))
	for _, c := range cells {
		index[c.ID] = len(out)
		out = append(out, CellTotals{
			CellID:       c.ID,
			Name:         c.Name,
			LeaderStatus: LeaderStatus(c.LeaderName),
		})
	}

	for _, r := range reports {
		i, ok := index[r.CellID]
		if !ok {
			continue
		}
		t := &out[i]
		t.Reports++
		t.TotalAttendance += r.Attendance
		t.Visitors += r.Visitors
		t.Conversions += r.Conversions
		t.Offering += r.Offering
	}

	for i := range out {
		out[i].AverageAttendance = average(out[i].TotalAttendance, out[i].Reports)
	}
	return out
}

type CategoryTotal struct {
	CategoryID *uint64                `json:"category_id"`
	Name       string                 `json:"name"`
	Type       models.TransactionType `json:"type"`
	Total      models.Money           `json:"total"`
}

type CampaignStatus struct {
	CampaignID uint64       `json:"campaign_id"`
	Name       string       `json:"name"`
	Goal       models.Money `json:"goal_amount"`
	Current    models.Money `json:"current_amount"`
	Progress   *float64     `json:"progress,omitempty"`
}

type FinanceOverview struct {
	Window     Window           `json:"window"`
	Totals     Totals           `json:"totals"`
	ByCategory []CategoryTotal  `json:"by_category"`
	Campaigns  []CampaignStatus `json:"campaigns"`
}

// BuildFinanceOverview summarizes the transactions of w by category and
// reports the progress of every active campaign.
func BuildFinanceOverview(transactions []models.FinancialTransaction, campaigns []models.FinancialCampaign, w Window) FinanceOverview {
	type key struct {
		id  uint64
		typ models.TransactionType
	}
	totals := map[key]*CategoryTotal{}
	var order []key

	for _, t := range transactions {
		if !w.ContainsDate(t.TransactionDate) {
			continue
		}
		k := key{typ: t.Type}
		name := "Sem categoria"
		if t.CategoryID != nil {
			k.id = *t.CategoryID
		}
		if t.Category != nil {
			name = t.Category.Name
		}
		ct, ok := totals[k]
		if !ok {
			ct = &CategoryTotal{CategoryID: t.CategoryID, Name: name, Type: t.Type}
			totals[k] = ct
			order = append(order, k)
		}
		ct.Total += t.Amount
	}

	byCategory := make([]CategoryTotal, 0, len(order))
	for _, k := range order {
		byCategory = append(byCategory, *totals[k])
	}
	sort.SliceStable(byCategory, func(i, j int) bool {
		if byCategory[i].Type != byCategory[j].Type {
			return byCategory[i].Type < byCategory[j].Type
		}
		return byCategory[i].Total > byCategory[j].Total
	})

	statuses := make([]CampaignStatus, 0, len(campaigns))
	for _, c := range campaigns {
		if !c.IsActive {
			continue
		}
		s := CampaignStatus{CampaignID: c.ID, Name: c.Name, Goal: c.GoalAmount, Current: c.CurrentAmount}
		if p, ok := CampaignProgress(c.CurrentAmount, c.GoalAmount); ok {
			s.Progress = &p
		}
		statuses = append(statuses, s)
	}

	return FinanceOverview{
		Window:     w,
		Totals:     FinanceTotals(transactions, w),
		ByCategory: byCategory,
		Campaigns:  statuses,
	}
}
