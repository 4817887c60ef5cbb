package stats

import (
	"time"

	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/utils"
)

// Day is one cell of a month calendar
type Day struct {
	Date    time.Time
	InMonth bool
	IsToday bool
	Rate    float64
	Band    constants.RateBand
}

// MonthGrid returns whole weeks covering month, starting on WeekStart.
// Days outside the month are included with InMonth false so the grid is
// always a multiple of seven.
func MonthGrid(tasks []models.RoutineTask, month, now time.Time) []Day {
	month = month.In(now.Location())
	first := utils.StartOfMonth(month)
	last := utils.AddDays(first.AddDate(0, 1, 0), -1)

	lead := (int(first.Weekday()) - int(constants.WeekStart) + 7) % 7
	trail := (int(constants.WeekStart) + 6 - int(last.Weekday()) + 7) % 7

	start := utils.AddDays(first, -lead)
	total := lead + last.Day() + trail

	days := make([]Day, 0, total)
	for i := 0; i < total; i++ {
		d := utils.AddDays(start, i)
		rate := CompletionRate(tasks, d)
		days = append(days, Day{
			Date:    d,
			InMonth: d.Month() == first.Month(),
			IsToday: utils.SameDay(d, now),
			Rate:    rate,
			Band:    BandFor(rate),
		})
	}
	return days
}

// Weeks splits a grid into rows of seven.
func Weeks(days []Day) [][]Day {
	var weeks [][]Day
	for i := 0; i+7 <= len(days); i += 7 {
		weeks = append(weeks, days[i:i+7])
	}
	return weeks
}
