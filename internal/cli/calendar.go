package cli

import (
	"fmt"

	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/errors"
	"github.com/julianstephens/routinely/internal/report"
	"github.com/julianstephens/routinely/internal/stats"
	"github.com/julianstephens/routinely/internal/utils"
)

type CalendarCmd struct {
	Month string `short:"m" help:"Month to show (YYYY-MM). Defaults to the current month." placeholder:"YYYY-MM"`
}

func (c *CalendarCmd) Run(ctx *Context) error {
	now := ctx.Store.Now()
	month := utils.StartOfMonth(now)
	if c.Month != "" {
		m, err := utils.ParseMonth(c.Month, now.Location())
		if err != nil {
			return errors.Invalid("month", fmt.Errorf("%q is not YYYY-MM", c.Month))
		}
		month = m
	}

	tasks := ctx.Store.TodayTasks()
	grid := stats.MonthGrid(tasks, month, now)

	out := ctx.out()
	fmt.Fprintln(out, report.Calendar(grid, month))
	if month.Format(constants.MonthFormat) == now.Format(constants.MonthFormat) {
		fmt.Fprintf(out, "\nMonthly completion: %s\n", report.Percent(stats.MonthlyCompletionRate(tasks, now)))
		fmt.Fprintf(out, "Best streak (last %d days): %d\n", constants.StreakWindowDays, stats.CurrentStreak(tasks, now))
	}
	return nil
}
