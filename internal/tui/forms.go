package tui

import (
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/validation"
)

type RoutineFormModel struct {
	Title    string
	Time     string
	Weekdays []time.Weekday
}

// Notification converts the form's reminder fields. An empty time means no reminder.
func (fm RoutineFormModel) Notification() (*models.NotificationSetting, error) {
	n, err := validation.ParseNotification(fm.Time, "")
	if err != nil || n == nil {
		return nil, err
	}
	n.Weekdays = models.Weekdays(fm.Weekdays).Normalized()
	return n, nil
}

// NewRoutineForm creates the form for adding a routine
func NewRoutineForm(fm *RoutineFormModel) *huh.Form {
	days := make([]huh.Option[time.Weekday], 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		days = append(days, huh.NewOption(d.String(), d))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Routine").
				Placeholder("Morning stretch").
				Value(&fm.Title).
				Validate(validation.ValidateTitle),
			huh.NewInput().
				Title("Reminder (HH:MM)").
				Description("Leave empty for no reminder").
				Value(&fm.Time).
				Validate(func(s string) error {
					_, err := validation.ParseNotification(s, "")
					return err
				}),
			huh.NewMultiSelect[time.Weekday]().
				Title("Reminder days").
				Options(days...).
				Value(&fm.Weekdays),
		),
	).WithTheme(huh.ThemeDracula())
}
