package calendar

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const layout = "2006-01-02"

// Day is a calendar date without a time-of-day component. It is the key for
// every attendance lookup and range iteration.
type Day struct {
	Year  int
	Month time.Month
	Dom   int
}

// New builds a normalized Day (e.g. Feb 30 becomes Mar 1 or 2).
func New(year int, month time.Month, dom int) Day {
	return FromTime(time.Date(year, month, dom, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the calendar day of t in t's own location.
func FromTime(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Dom: d}
}

// In returns the calendar day of t as observed in loc.
func In(t time.Time, loc *time.Location) Day {
	if loc == nil {
		loc = time.UTC
	}
	return FromTime(t.In(loc))
}

// Parse parses a YYYY-MM-DD string.
func Parse(s string) (Day, error) {
	t, err := time.Parse(layout, strings.TrimSpace(s))
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return FromTime(t), nil
}

// Time returns midnight of the day in loc.
func (d Day) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Dom, 0, 0, 0, 0, loc)
}

// At returns the wall-clock instant hour:minute on the day in loc.
func (d Day) At(hour, minute int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Dom, hour, minute, 0, 0, loc)
}

func (d Day) IsZero() bool {
	return d == Day{}
}

func (d Day) AddDays(n int) Day {
	return FromTime(d.Time(time.UTC).AddDate(0, 0, n))
}

func (d Day) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

func (d Day) Before(o Day) bool {
	return d.Compare(o) < 0
}

func (d Day) After(o Day) bool {
	return d.Compare(o) > 0
}

// Compare returns -1, 0 or +1.
func (d Day) Compare(o Day) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Dom, o.Dom)
	}
}

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Dom)
}

func (d Day) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Day) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Day{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DaysBetween counts the days in the inclusive range [start, end]; zero when end < start.
func DaysBetween(start, end Day) int {
	if end.Before(start) {
		return 0
	}
	diff := end.Time(time.UTC).Sub(start.Time(time.UTC))
	return int(diff.Hours()/24) + 1
}

// Range returns every day in the inclusive range [start, end] in ascending order.
func Range(start, end Day) []Day {
	n := DaysBetween(start, end)
	days := make([]Day, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, start.AddDays(i))
	}
	return days
}

// MonthBounds returns the first and last day of a month.
func MonthBounds(year int, month time.Month) (Day, Day) {
	first := New(year, month, 1)
	last := FromTime(first.Time(time.UTC).AddDate(0, 1, -1))
	return first, last
}

// DaysInMonth returns the number of days of a month.
func DaysInMonth(year int, month time.Month) int {
	_, last := MonthBounds(year, month)
	return last.Dom
}

// Max returns the later of two days.
func Max(a, b Day) Day {
	if a.After(b) {
		return a
	}
	return b
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
