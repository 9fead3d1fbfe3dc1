package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekOf_CrossesYearBoundary(t *testing.T) {
	week := WeekOf(MustParseDate("2024-12-31"))

	assert.Equal(t, "2024-12-30", week.Start().String())
	assert.Equal(t, "2025-01-05", week.End().String())
	assert.Equal(t, time.Monday, week.Start().Weekday())
	assert.Equal(t, time.Sunday, week.End().Weekday())
}

func TestWeekOf_AnchorOnEveryWeekday(t *testing.T) {
	// 2024-02-26 (Mon) .. 2024-03-03 (Sun), високосный февраль
	for i := 0; i < 7; i++ {
		anchor := MustParseDate("2024-02-26").AddDays(i)
		week := WeekOf(anchor)
		assert.Equal(t, "2024-02-26", week.Start().String(), "anchor %s", anchor)
		assert.Equal(t, "2024-03-03", week.End().String(), "anchor %s", anchor)
	}
}

func TestWeekOf_Properties(t *testing.T) {
	start := MustParseDate("2023-01-01")
	for i := 0; i < 4*366; i++ {
		anchor := start.AddDays(i)
		week := WeekOf(anchor)

		require.Equal(t, time.Monday, week[0].Weekday(), "anchor %s", anchor)
		require.True(t, week.Contains(anchor), "anchor %s", anchor)
		for j := 1; j < len(week); j++ {
			require.Equal(t, week[j-1].AddDays(1), week[j], "anchor %s", anchor)
		}
	}
}

func TestPreviousNextWeek(t *testing.T) {
	anchor := MustParseDate("2025-01-02")

	assert.Equal(t, "2024-12-26", PreviousWeek(anchor).String())
	assert.Equal(t, "2025-01-09", NextWeek(anchor).String())
	assert.Equal(t, "2024-12-23", WeekOf(PreviousWeek(anchor)).Start().String())
}

func TestDayRange(t *testing.T) {
	anchor := MustParseDate("2025-03-01")
	assert.Equal(t, []Date{anchor}, DayRange(anchor))
}

func TestDateOf_UsesWallCalendarNotUTC(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)
	justAfterMidnight := time.Date(2025, 1, 1, 0, 30, 0, 0, msk)

	// в UTC это ещё 2024-12-31 21:30
	require.Equal(t, 2024, justAfterMidnight.UTC().Year())
	assert.Equal(t, "2025-01-01", DateOf(justAfterMidnight).String())

	pst := time.FixedZone("PST", -8*60*60)
	lateEvening := time.Date(2024, 12, 31, 23, 30, 0, 0, pst)
	assert.Equal(t, "2024-12-31", DateOf(lateEvening).String())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-09")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 9, d.Day())

	_, err = ParseDate("09.03.2025")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestNewDate_Normalizes(t *testing.T) {
	assert.Equal(t, MustParseDate("2025-01-01"), NewDate(2024, time.December, 32))
	assert.Equal(t, MustParseDate("2024-02-29"), NewDate(2024, time.March, 0))
}

func TestDate_Compare(t *testing.T) {
	a := MustParseDate("2024-12-31")
	b := MustParseDate("2025-01-01")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Equal(b))
	assert.Equal(t, 0, a.Compare(MustParseDate("2024-12-31")))
}

func TestDate_JSON(t *testing.T) {
	var got struct {
		Date Date `json:"date"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"date":"2025-06-01"}`), &got))
	assert.Equal(t, "2025-06-01", got.Date.String())

	require.NoError(t, json.Unmarshal([]byte(`{"date":"2025-06-01T00:00:00+03:00"}`), &got))
	assert.Equal(t, "2025-06-01", got.Date.String())

	assert.Error(t, json.Unmarshal([]byte(`{"date":"tomorrow"}`), &got))

	data, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2025-06-01"}`, string(data))
}

func TestDate_Zero(t *testing.T) {
	var d Date
	assert.True(t, d.IsZero())
	assert.Equal(t, "", d.String())
	assert.False(t, MustParseDate("2025-01-01").IsZero())
}

func TestToday_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+14", 14*60*60)
	before := DateOf(time.Now().In(loc))
	got := Today(loc)
	after := DateOf(time.Now().In(loc))
	assert.True(t, got == before || got == after)
}
