// Package calendar implements calendar span math and ingredient
// aggregation for scheduled recipes. Everything here is pure; stores
// and services feed it data.
package calendar

import (
	"fmt"
	"time"

	"github.com/mealboardapp/mealboard-server/internal/domain"
)

// ViewMode selects the span a calendar view covers.
type ViewMode string

const (
	ModeDay   ViewMode = "day"
	ModeWeek  ViewMode = "week"
	ModeMonth ViewMode = "month"
)

// ParseViewMode validates a mode string.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ModeDay, ModeWeek, ModeMonth:
		return ViewMode(s), nil
	default:
		return "", fmt.Errorf("unknown view mode %q", s)
	}
}

// Span is an inclusive date range.
type Span struct {
	Start domain.Date
	End   domain.Date
}

// Contains reports whether d falls within the span.
func (s Span) Contains(d domain.Date) bool {
	return !d.Before(s.Start) && !d.After(s.End)
}

// Days returns every date in the span in order.
func (s Span) Days() []domain.Date {
	n := s.End.DaysSince(s.Start) + 1
	if n <= 0 {
		return nil
	}
	days := make([]domain.Date, n)
	for i := range days {
		days[i] = s.Start.AddDays(i)
	}
	return days
}

// weekStart returns the Monday on or before d. Weeks run Monday
// through Sunday.
func weekStart(d domain.Date) domain.Date {
	offset := int(d.Weekday()-time.Monday+7) % 7
	return d.AddDays(-offset)
}

// SpanFor computes the span covering anchor under the given mode.
//
// Day spans are the anchor itself. Week spans run Monday to Sunday.
// Month spans cover the full grid shown on a month view: the calendar
// month padded out to whole weeks on both sides, so a month starting
// on a Wednesday includes the trailing days of the previous month.
func SpanFor(mode ViewMode, anchor domain.Date) Span {
	switch mode {
	case ModeDay:
		return Span{Start: anchor, End: anchor}
	case ModeWeek:
		start := weekStart(anchor)
		return Span{Start: start, End: start.AddDays(6)}
	case ModeMonth:
		monthStart := domain.Date{Year: anchor.Year, Month: anchor.Month, Day: 1}
		monthEnd := domain.DateOf(monthStart.Time().AddDate(0, 1, -1))
		gridStart := weekStart(monthStart)
		gridEnd := weekStart(monthEnd).AddDays(6)
		return Span{Start: gridStart, End: gridEnd}
	default:
		return Span{Start: anchor, End: anchor}
	}
}

// MonthSpan returns just the calendar month of anchor, without grid
// padding. Used to decide which grid days belong to the viewed month.
func MonthSpan(anchor domain.Date) Span {
	start := domain.Date{Year: anchor.Year, Month: anchor.Month, Day: 1}
	return Span{Start: start, End: domain.DateOf(start.Time().AddDate(0, 1, -1))}
}

// Day is one cell of a calendar view with the entries scheduled on it.
type Day struct {
	Date            domain.Date            `json:"date"`
	Entries         []domain.CalendarEntry `json:"entries"`
	IsToday         bool                   `json:"isToday"`
	IsCurrentPeriod bool                   `json:"isCurrentPeriod"`
}

// BuildView buckets entries into the days of the span for mode/anchor.
// Entries outside the span are dropped. today is passed in so callers
// (and tests) control the clock.
//
// IsCurrentPeriod marks days inside the viewed period proper: for
// month mode that is the calendar month of the anchor, excluding grid
// padding days; for day and week mode every day of the span qualifies.
func BuildView(mode ViewMode, anchor, today domain.Date, entries []domain.CalendarEntry) []Day {
	span := SpanFor(mode, anchor)

	byDate := make(map[domain.Date][]domain.CalendarEntry)
	for _, e := range entries {
		if span.Contains(e.Date) {
			byDate[e.Date] = append(byDate[e.Date], e)
		}
	}

	period := span
	if mode == ModeMonth {
		period = MonthSpan(anchor)
	}

	dates := span.Days()
	days := make([]Day, 0, len(dates))
	for _, d := range dates {
		days = append(days, Day{
			Date:            d,
			Entries:         byDate[d],
			IsToday:         d == today,
			IsCurrentPeriod: period.Contains(d),
		})
	}
	return days
}
