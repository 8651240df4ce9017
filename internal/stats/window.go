package stats

import (
	"time"

	"gorm.io/datatypes"
)

// Window is the half-open interval [From, To).
type Window struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && t.Before(w.To)
}

// ContainsDate compares the calendar date of d against the window,
// ignoring the zone the date was stored with.
func (w Window) ContainsDate(d datatypes.Date) bool {
	return w.Contains(civil(time.Time(d), w.From.Location()))
}

// MonthOf returns the calendar month containing now.
func MonthOf(now time.Time) Window {
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return Window{From: from, To: from.AddDate(0, 1, 0)}
}

// WeekOf returns the Monday-based week containing now.
func WeekOf(now time.Time) Window {
	offset := (int(now.Weekday()) + 6) % 7
	from := time.Date(now.Year(), now.Month(), now.Day()-offset, 0, 0, 0, 0, now.Location())
	return Window{From: from, To: from.AddDate(0, 0, 7)}
}

// ParseMonth parses a YYYY-MM value into its month window.
func ParseMonth(value string, loc *time.Location) (Window, error) {
	t, err := time.ParseInLocation("2006-01", value, loc)
	if err != nil {
		return Window{}, err
	}
	return MonthOf(t), nil
}

func civil(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
