package models

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/julianstephens/routinely/internal/constants"
)

// Weekdays is a set of days on which a reminder is active
type Weekdays []time.Weekday

// EveryDay returns the full Sunday..Saturday set.
func EveryDay() Weekdays {
	return Weekdays{time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday}
}

// WorkWeek returns Monday..Friday.
func WorkWeek() Weekdays {
	return Weekdays{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
}

func (w Weekdays) Contains(day time.Weekday) bool {
	return slices.Contains(w, day)
}

// Normalized returns a sorted copy without duplicates or out-of-range values.
func (w Weekdays) Normalized() Weekdays {
	out := make(Weekdays, 0, len(w))
	for _, d := range w {
		if d < time.Sunday || d > time.Saturday || slices.Contains(out, d) {
			continue
		}
		out = append(out, d)
	}
	slices.Sort(out)
	return out
}

func (w Weekdays) String() string {
	n := w.Normalized()
	switch len(n) {
	case 0:
		return "no days"
	case 7:
		return "every day"
	}
	days := make([]string, len(n))
	for i, d := range n {
		days[i] = d.String()[:3]
	}
	return strings.Join(days, ",")
}

// NotificationSetting is the reminder configuration for a routine.
// Delivery is handled elsewhere; this type only describes when.
type NotificationSetting struct {
	Hour     int      `json:"hour" yaml:"hour"`
	Minute   int      `json:"minute" yaml:"minute"`
	Weekdays Weekdays `json:"weekdays" yaml:"weekdays"`
}

// TimeString renders the reminder as HH:MM. It returns false if hour or minute
// is out of range.
func (n NotificationSetting) TimeString() (string, bool) {
	if n.Hour < 0 || n.Hour > 23 || n.Minute < 0 || n.Minute > 59 {
		return "", false
	}
	t := time.Date(0, time.January, 1, n.Hour, n.Minute, 0, 0, time.UTC)
	return t.Format(constants.TimeFormat), true
}

// ActiveOn reports whether the reminder is configured for the given weekday.
func (n NotificationSetting) ActiveOn(day time.Weekday) bool {
	return n.Weekdays.Contains(day)
}

func (n NotificationSetting) Clone() NotificationSetting {
	n.Weekdays = slices.Clone(n.Weekdays)
	return n
}

func (n NotificationSetting) String() string {
	ts, ok := n.TimeString()
	if !ok {
		ts = fmt.Sprintf("%d:%d", n.Hour, n.Minute)
	}
	return fmt.Sprintf("%s %s", ts, n.Weekdays)
}
