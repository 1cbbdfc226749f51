package calendar

import (
	"fmt"
	"time"
)

// ViewMode selects how many days the calendar shows at once.
type ViewMode string

const (
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

func (m ViewMode) Valid() bool {
	return m == ViewWeek || m == ViewMonth
}

// monthNames are the Romanian month names used in period titles.
var monthNames = [12]string{
	"Ianuarie", "Februarie", "Martie", "Aprilie", "Mai", "Iunie",
	"Iulie", "August", "Septembrie", "Octombrie", "Noiembrie", "Decembrie",
}

// DayNames are the short Romanian day labels, Monday first to match the grid.
var DayNames = [7]string{"Lun", "Mar", "Mie", "Joi", "Vin", "Sâm", "Dum"}

// DateKey renders the canonical YYYY-MM-DD bucket key for a date, in the
// date's own location. Posts bucket by exact string equality on this key.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDateKey parses a canonical YYYY-MM-DD key back into a date.
func ParseDateKey(key string) (time.Time, error) {
	return time.Parse("2006-01-02", key)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Monday of the week containing t. Sunday counts as
// the last day of its week, so for a Sunday the result is six days earlier,
// not one day later.
func StartOfWeek(t time.Time) time.Time {
	offset := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		offset = 6
	}
	return midnight(t).AddDate(0, 0, -offset)
}

// WeekDays returns the seven consecutive dates of the Monday-to-Sunday week
// containing ref.
func WeekDays(ref time.Time) []time.Time {
	monday := StartOfWeek(ref)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

// MonthGrid returns the 42 dates (six full weeks) shown for ref's month,
// starting at the Monday on or before the 1st. The grid always has exactly
// 42 cells regardless of the month's length, so up to two weeks of
// adjacent-month padding may appear.
func MonthGrid(ref time.Time) []time.Time {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	start := StartOfWeek(first)
	days := make([]time.Time, 42)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// Days returns the visible dates for the given reference date and view mode.
func Days(ref time.Time, mode ViewMode) []time.Time {
	if mode == ViewMonth {
		return MonthGrid(ref)
	}
	return WeekDays(ref)
}

// Previous shifts the reference date one period back: seven days in week
// mode, one calendar month (clamped to day 1) in month mode.
func Previous(ref time.Time, mode ViewMode) time.Time {
	if mode == ViewMonth {
		return time.Date(ref.Year(), ref.Month()-1, 1, 0, 0, 0, 0, ref.Location())
	}
	return ref.AddDate(0, 0, -7)
}

// Next shifts the reference date one period forward.
func Next(ref time.Time, mode ViewMode) time.Time {
	if mode == ViewMonth {
		return time.Date(ref.Year(), ref.Month()+1, 1, 0, 0, 0, 0, ref.Location())
	}
	return ref.AddDate(0, 0, 7)
}

// SameDay reports whether two times fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// InPeriod reports whether date belongs to the current period: the
// Monday-to-Sunday week of ref in week mode, ref's calendar month in month
// mode. Grid cells outside the period are still valid, clickable dates; they
// are only rendered dimmed.
func InPeriod(date, ref time.Time, mode ViewMode) bool {
	if mode == ViewMonth {
		return date.Month() == ref.Month() && date.Year() == ref.Year()
	}
	start := StartOfWeek(ref)
	end := start.AddDate(0, 0, 6)
	d := midnight(date)
	return !d.Before(start) && !d.After(end)
}

// PeriodTitle renders the human-readable label for the visible period, e.g.
// "3 - 9 Martie 2025" for a week inside one month, "24 Februarie - 2 Martie
// 2025" for a week spanning two, and "Martie 2025" in month mode.
func PeriodTitle(ref time.Time, mode ViewMode) string {
	if mode == ViewMonth {
		return fmt.Sprintf("%s %d", monthNames[ref.Month()-1], ref.Year())
	}

	start := StartOfWeek(ref)
	end := start.AddDate(0, 0, 6)
	if start.Month() == end.Month() {
		return fmt.Sprintf("%d - %d %s %d",
			start.Day(), end.Day(), monthNames[start.Month()-1], start.Year())
	}
	return fmt.Sprintf("%d %s - %d %s %d",
		start.Day(), monthNames[start.Month()-1],
		end.Day(), monthNames[end.Month()-1], start.Year())
}
