package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealboardapp/mealboard-server/internal/domain"
)

func mustDate(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestParseViewMode(t *testing.T) {
	for _, valid := range []string{"day", "week", "month"} {
		mode, err := ParseViewMode(valid)
		require.NoError(t, err)
		assert.Equal(t, ViewMode(valid), mode)
	}

	_, err := ParseViewMode("fortnight")
	assert.Error(t, err)
}

func TestSpanForDay(t *testing.T) {
	anchor := mustDate(t, "2026-09-01")
	span := SpanFor(ModeDay, anchor)
	assert.Equal(t, anchor, span.Start)
	assert.Equal(t, anchor, span.End)
	assert.Len(t, span.Days(), 1)
}

func TestSpanForWeek(t *testing.T) {
	// 2026-09-03 is a Thursday; its week runs Mon 08-31 to Sun 09-06.
	span := SpanFor(ModeWeek, mustDate(t, "2026-09-03"))
	assert.Equal(t, "2026-08-31", span.Start.String())
	assert.Equal(t, "2026-09-06", span.End.String())
	assert.Len(t, span.Days(), 7)

	// A Monday anchor starts its own week.
	span = SpanFor(ModeWeek, mustDate(t, "2026-08-31"))
	assert.Equal(t, "2026-08-31", span.Start.String())

	// A Sunday anchor ends its week.
	span = SpanFor(ModeWeek, mustDate(t, "2026-09-06"))
	assert.Equal(t, "2026-08-31", span.Start.String())
	assert.Equal(t, "2026-09-06", span.End.String())
}

func TestSpanForMonthPadsToWholeWeeks(t *testing.T) {
	// July 2026 starts on a Wednesday and ends on a Friday. The grid
	// reaches back to Monday June 29 and forward to Sunday August 2.
	span := SpanFor(ModeMonth, mustDate(t, "2026-07-15"))
	assert.Equal(t, "2026-06-29", span.Start.String())
	assert.Equal(t, "2026-08-02", span.End.String())
	assert.Equal(t, 0, len(span.Days())%7, "grid is whole weeks")
	assert.Len(t, span.Days(), 35)
}

func TestSpanForMonthAlreadyAligned(t *testing.T) {
	// June 2026 starts on a Monday; February 2027 ends on a Sunday.
	span := SpanFor(ModeMonth, mustDate(t, "2026-06-10"))
	assert.Equal(t, "2026-06-01", span.Start.String())

	span = SpanFor(ModeMonth, mustDate(t, "2027-02-14"))
	assert.Equal(t, "2027-02-28", span.End.String())
}

func TestBuildViewBucketsEntries(t *testing.T) {
	anchor := mustDate(t, "2026-09-03")
	today := mustDate(t, "2026-09-01")
	entries := []domain.CalendarEntry{
		{ID: "entry-1", RecipeID: "recipe-a", Date: mustDate(t, "2026-09-01")},
		{ID: "entry-2", RecipeID: "recipe-b", Date: mustDate(t, "2026-09-01")},
		{ID: "entry-3", RecipeID: "recipe-c", Date: mustDate(t, "2026-09-06")},
		{ID: "entry-4", RecipeID: "recipe-d", Date: mustDate(t, "2026-09-10")}, // outside span
	}

	days := BuildView(ModeWeek, anchor, today, entries)
	require.Len(t, days, 7)

	byDate := make(map[string]Day)
	for _, d := range days {
		byDate[d.Date.String()] = d
	}

	assert.Len(t, byDate["2026-09-01"].Entries, 2)
	assert.Len(t, byDate["2026-09-06"].Entries, 1)
	assert.Empty(t, byDate["2026-09-02"].Entries)
	_, has := byDate["2026-09-10"]
	assert.False(t, has, "entry outside the week is dropped")

	assert.True(t, byDate["2026-09-01"].IsToday)
	assert.False(t, byDate["2026-09-02"].IsToday)
	for _, d := range days {
		assert.True(t, d.IsCurrentPeriod, "every week day is in the current period")
	}
}

func TestBuildViewMonthMarksPaddingDays(t *testing.T) {
	anchor := mustDate(t, "2026-07-15")
	today := mustDate(t, "2026-07-15")

	days := BuildView(ModeMonth, anchor, today, nil)
	require.Len(t, days, 35)

	assert.Equal(t, "2026-06-29", days[0].Date.String())
	assert.False(t, days[0].IsCurrentPeriod, "June padding day")
	assert.Equal(t, "2026-08-02", days[34].Date.String())
	assert.False(t, days[34].IsCurrentPeriod, "August padding day")

	for _, d := range days {
		inJuly := d.Date.Month == 7
		assert.Equal(t, inJuly, d.IsCurrentPeriod, d.Date.String())
		assert.Equal(t, d.Date.String() == "2026-07-15", d.IsToday)
	}
}
