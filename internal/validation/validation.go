// Package validation guards user input before it reaches the task store.
// The store accepts whatever it is given, so every presentation layer runs
// titles and reminder settings through here first.
package validation

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/routinely/internal/errors"
	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/utils"
)

var (
	ErrEmptyTitle     = stderrors.New("title must not be empty")
	ErrHourRange      = stderrors.New("hour must be between 0 and 23")
	ErrMinuteRange    = stderrors.New("minute must be between 0 and 59")
	ErrUnknownWeekday = stderrors.New("unknown weekday")
)

var weekdayNames = map[string]time.Weekday{
	"sun":       time.Sunday,
	"sunday":    time.Sunday,
	"mon":       time.Monday,
	"monday":    time.Monday,
	"tue":       time.Tuesday,
	"tuesday":   time.Tuesday,
	"wed":       time.Wednesday,
	"wednesday": time.Wednesday,
	"thu":       time.Thursday,
	"thursday":  time.Thursday,
	"fri":       time.Friday,
	"friday":    time.Friday,
	"sat":       time.Saturday,
	"saturday":  time.Saturday,
}

// ValidateTitle rejects titles that are empty after trimming.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.Invalid("title", ErrEmptyTitle)
	}
	return nil
}

// ValidateNotification checks the hour and minute ranges.
func ValidateNotification(n models.NotificationSetting) error {
	if n.Hour < 0 || n.Hour > 23 {
		return errors.Invalid("hour", ErrHourRange)
	}
	if n.Minute < 0 || n.Minute > 59 {
		return errors.Invalid("minute", ErrMinuteRange)
	}
	return nil
}

// ParseWeekdays parses a comma-separated weekday list. Names ("mon",
// "monday"), numbers (0=Sunday..6=Saturday) and the shorthands "daily" and
// "weekdays" are accepted. An empty string yields an empty set.
func ParseWeekdays(s string) (models.Weekdays, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "":
		return models.Weekdays{}, nil
	case "daily", "all", "every day":
		return models.EveryDay(), nil
	case "weekdays":
		return models.WorkWeek(), nil
	case "weekends":
		return models.Weekdays{time.Sunday, time.Saturday}, nil
	}

	var weekdays models.Weekdays
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if wd, ok := weekdayNames[part]; ok {
			weekdays = append(weekdays, wd)
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 || num > 6 {
			return nil, errors.Invalid("weekdays", fmt.Errorf("%w: %s", ErrUnknownWeekday, part))
		}
		weekdays = append(weekdays, time.Weekday(num))
	}

	return weekdays.Normalized(), nil
}

// ParseNotification builds a reminder from an HH:MM time and a weekday list.
// An empty time means no reminder and returns nil.
func ParseNotification(at, weekdays string) (*models.NotificationSetting, error) {
	at = strings.TrimSpace(at)
	if at == "" {
		return nil, nil
	}

	t, err := utils.ParseTime(at)
	if err != nil {
		return nil, errors.Invalid("time", fmt.Errorf("expected HH:MM, got %q", at))
	}

	days, err := ParseWeekdays(weekdays)
	if err != nil {
		return nil, err
	}

	n := models.NotificationSetting{Hour: t.Hour(), Minute: t.Minute(), Weekdays: days}
	if err := ValidateNotification(n); err != nil {
		return nil, err
	}
	return &n, nil
}
