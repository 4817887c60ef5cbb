package utils

import (
	"math"
	"time"

	"github.com/julianstephens/routinely/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// ClockIn returns a wall clock that reports time in loc.
func ClockIn(loc *time.Location) func() time.Time {
	return func() time.Time {
		return time.Now().In(loc)
	}
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	_, err := LoadLocation(timezone)
	return err == nil
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfMonth returns midnight of the first day of t's month in t's location.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// DayKey returns the YYYY-MM-DD calendar day of t as seen from loc.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(constants.DateFormat)
}

// SameDay reports whether t falls on the same calendar day as ref, judged in ref's location.
func SameDay(t, ref time.Time) bool {
	loc := ref.Location()
	return DayKey(t, loc) == DayKey(ref, loc)
}

// AddDays moves t by n calendar days, keeping the wall-clock time.
// Unlike t.Add(n*24h) this is stable across DST transitions.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysBetween returns the number of calendar days from a to b (b - a), judged in a's location.
func DaysBetween(a, b time.Time) int {
	loc := a.Location()
	start := StartOfDay(a)
	bb := b.In(loc)
	end := time.Date(bb.Year(), bb.Month(), bb.Day(), 0, 0, 0, 0, loc)
	// Round to absorb 23h/25h DST days.
	return int(math.Round(end.Sub(start).Hours() / 24))
}

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ParseMonth parses a YYYY-MM string into the first day of that month in loc.
func ParseMonth(monthStr string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.MonthFormat, monthStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc), nil
}
