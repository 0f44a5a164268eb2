package domain

import (
	"encoding/json/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year)
	assert.Equal(t, time.September, d.Month)
	assert.Equal(t, 1, d.Day)

	_, err = ParseDate("09/01/2026")
	assert.Error(t, err)

	_, err = ParseDate("2026-02-30")
	assert.Error(t, err)
}

func TestDateOrdering(t *testing.T) {
	earlier, _ := ParseDate("2026-08-31")
	later, _ := ParseDate("2026-09-01")

	assert.True(t, earlier.Before(later))
	assert.True(t, later.After(earlier))
	assert.False(t, earlier.Before(earlier))
}

func TestDateAddDays(t *testing.T) {
	d, _ := ParseDate("2026-02-27")
	assert.Equal(t, "2026-03-01", d.AddDays(2).String(), "non-leap year rollover")
	assert.Equal(t, "2026-02-25", d.AddDays(-2).String())

	leap, _ := ParseDate("2028-02-28")
	assert.Equal(t, "2028-02-29", leap.AddDays(1).String(), "leap year")
}

func TestDateDaysSince(t *testing.T) {
	a, _ := ParseDate("2026-09-01")
	b, _ := ParseDate("2026-08-25")
	assert.Equal(t, 7, a.DaysSince(b))
	assert.Equal(t, -7, b.DaysSince(a))
}

func TestDateJSON(t *testing.T) {
	type payload struct {
		Date Date `json:"date"`
	}

	d, _ := ParseDate("2026-07-04")
	out, err := json.Marshal(payload{Date: d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2026-07-04"}`, string(out))

	var in payload
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2026-07-04"}`), &in))
	assert.Equal(t, d, in.Date)

	assert.Error(t, json.Unmarshal([]byte(`{"date":"tomorrow"}`), &in))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2026-01-15"))
	assert.Equal(t, "2026-01-15", d.String())

	require.NoError(t, d.Scan([]byte("2026-01-16")))
	assert.Equal(t, "2026-01-16", d.String())

	assert.Error(t, d.Scan(42))
}

func TestDateOfUsesLocalCalendarDay(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	// 23:30 New York time is already the next day in UTC; DateOf keeps
	// the civil date of the time's own location.
	ts := time.Date(2026, 3, 10, 23, 30, 0, 0, loc)
	assert.Equal(t, "2026-03-10", DateOf(ts).String())
	assert.Equal(t, "2026-03-11", DateOf(ts.UTC()).String())
}
