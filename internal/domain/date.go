package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Date calendar date without time-of-day or zone.
// Holds plain calendar fields, so String() never depends on the host timezone
// and the value is safe to use as a map key.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate builds a Date from calendar fields; out-of-range fields are normalized
// the same way time.Date does (e.g. Dec 32 -> Jan 1).
func NewDate(year int, month time.Month, day int) Date {
	y, m, d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	return Date{year: y, month: m, day: d}
}

// DateOf projects t onto the calendar day it shows in its own location.
// 2025-01-01T00:30+03:00 is 2025-01-01, not the UTC 2024-12-31.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// Today returns the current calendar date in loc.
func Today(loc *time.Location) Date {
	return DateOf(time.Now().In(loc))
}

// ParseDate parses YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateFormat, s, time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

// MustParseDate panics on malformed input. For fixtures.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns UTC midnight of the date.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d Date) Year() int { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int { return d.day }
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

func (d Date) AddDays(n int) Date {
	return NewDate(d.year, d.month, d.day+n)
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }
func (d Date) Equal(other Date) bool { return d == other }

// Compare returns -1, 0 or +1.
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return sign(d.year - other.year)
	case d.month != other.month:
		return sign(int(d.month) - int(other.month))
	default:
		return sign(d.day - other.day)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts YYYY-MM-DD and full RFC3339 timestamps; for the latter
// the calendar day of the timestamp's own offset is kept.
func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	parsed, err := ParseDate(raw)
	if err == nil {
		*d = parsed
		return nil
	}
	ts, tsErr := time.Parse(time.RFC3339, raw)
	if tsErr != nil {
		return err
	}
	*d = DateOf(ts)
	return nil
}

// WeekRange seven consecutive dates, Monday through Sunday.
type WeekRange [DaysPerWeek]Date

// WeekOf returns the Monday-anchored week containing anchor.
func WeekOf(anchor Date) WeekRange {
	// time.Weekday: Sunday=0 ... Saturday=6; shift so Monday=0 ... Sunday=6
	offset := (int(anchor.Weekday()) + DaysPerWeek - 1) % DaysPerWeek
	monday := anchor.AddDays(-offset)

	var week WeekRange
	for i := range week {
		week[i] = monday.AddDays(i)
	}
	return week
}

// DayRange the single-date range of the daily view.
func DayRange(anchor Date) []Date {
	return []Date{anchor}
}

// PreviousWeek shifts the anchor back by seven days.
func PreviousWeek(anchor Date) Date {
	return anchor.AddDays(-DaysPerWeek)
}

// NextWeek shifts the anchor forward by seven days.
func NextWeek(anchor Date) Date {
	return anchor.AddDays(DaysPerWeek)
}

func (w WeekRange) Start() Date { return w[0] }
func (w WeekRange) End() Date { return w[DaysPerWeek-1] }

// Dates returns the week as a slice.
func (w WeekRange) Dates() []Date {
	out := make([]Date, len(w))
	copy(out, w[:])
	return out
}

// Contains reports whether d falls inside the week.
func (w WeekRange) Contains(d Date) bool {
	return !d.Before(w.Start()) && !d.After(w.End())
}
