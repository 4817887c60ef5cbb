package cli

import (
	"fmt"

	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/report"
	"github.com/julianstephens/routinely/internal/stats"
)

type TodayCmd struct {
	Scheduled bool `short:"s" help:"Only show routines whose reminder days include today."`
}

func (c *TodayCmd) Run(ctx *Context) error {
	now := ctx.Store.Now()
	out := ctx.out()

	tasks := ctx.Store.TodayTasks()
	if c.Scheduled {
		tasks = ctx.Store.TasksScheduledOn(now)
	}

	if len(tasks) == 0 {
		fmt.Fprintln(out, "No routines for today")
		return nil
	}

	fmt.Fprintf(out, "Routines for %s:\n", now.Format(constants.DateFormat))
	for _, r := range stats.Summarize(tasks, now).Routines {
		fmt.Fprintf(out, "  %s\n", report.RoutineLine(r))
	}
	return nil
}
