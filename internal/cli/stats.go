package cli

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/logger"
	"github.com/julianstephens/routinely/internal/report"
	"github.com/julianstephens/routinely/internal/stats"
)

type StatsCmd struct {
	Format string `short:"f" help:"Output format (text|markdown|yaml)." enum:"text,markdown,yaml" default:"text"`
	Copy   bool   `short:"c" help:"Also copy the report to the clipboard."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	now := ctx.Store.Now()
	summary := stats.Summarize(ctx.Store.TodayTasks(), now)
	format := constants.ReportFormat(c.Format)

	rendered, err := report.Render(summary, format)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.out(), rendered)

	if !c.Copy {
		return nil
	}

	plain, err := clipboardText(summary, format)
	if err != nil {
		return err
	}
	if err := clipboard.WriteAll(plain); err != nil {
		return fmt.Errorf("copying report to clipboard: %w", err)
	}
	logger.Debug("Copied report to clipboard", "format", c.Format, "bytes", len(plain))
	fmt.Fprintln(ctx.out(), "Copied to clipboard")
	return nil
}

// clipboardText is the unstyled form of a report: YAML stays YAML, the
// terminal formats fall back to markdown source.
func clipboardText(s stats.Summary, format constants.ReportFormat) (string, error) {
	if format == constants.ReportYAML {
		return report.YAML(s)
	}
	return report.Markdown(s), nil
}
