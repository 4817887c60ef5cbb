package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/stats"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	valueStyle  = lipgloss.NewStyle().Bold(true)
	streakStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Percent renders a rate the way the achievement screen shows it: truncated, no decimals.
func Percent(rate float64) string {
	return fmt.Sprintf("%d%%", int(rate*100))
}

// Render formats the summary in the requested format.
func Render(s stats.Summary, format constants.ReportFormat) (string, error) {
	switch format {
	case constants.ReportText, "":
		return Text(s), nil
	case constants.ReportMarkdown:
		return renderMarkdown(Markdown(s)), nil
	case constants.ReportYAML:
		return YAML(s)
	default:
		return "", fmt.Errorf("unknown report format %q", format)
	}
}

// Text renders the summary as a styled terminal panel.
func Text(s stats.Summary) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Routines for "+s.Date) + "\n\n")
	if len(s.Routines) == 0 {
		b.WriteString(mutedStyle.Render("No routines yet.") + "\n")
	}
	for _, r := range s.Routines {
		b.WriteString(RoutineLine(r) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Today") + "          " + valueStyle.Render(Percent(s.TodayRate)) + "\n")
	b.WriteString(labelStyle.Render("This month") + "     " + valueStyle.Render(Percent(s.MonthlyRate)) + "\n")
	b.WriteString(labelStyle.Render("Best streak") + "    " + streakStyle.Render(fmt.Sprintf("%d days", s.CurrentStreak)))

	return panelStyle.Render(b.String())
}

// RoutineLine renders one routine as "✓ Title  07:00  3d".
func RoutineLine(r stats.RoutineSummary) string {
	mark := mutedStyle.Render("○")
	if r.CompletedToday {
		mark = doneStyle.Render("✓")
	}

	parts := []string{mark + " " + r.Title}
	if r.NotifyAt != "" {
		parts = append(parts, mutedStyle.Render("⏰ "+r.NotifyAt))
	}
	if r.Streak > 0 {
		parts = append(parts, streakStyle.Render(fmt.Sprintf("%dd", r.Streak)))
	}
	return strings.Join(parts, "  ")
}

// Markdown renders the summary as a markdown document.
func Markdown(s stats.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Routines for %s\n\n", s.Date)
	if len(s.Routines) == 0 {
		b.WriteString("_No routines yet._\n\n")
	} else {
		b.WriteString("| | Routine | Reminder | Streak |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, r := range s.Routines {
			mark := " "
			if r.CompletedToday {
				mark = "x"
			}
			reminder := "-"
			if r.NotifyAt != "" {
				reminder = fmt.Sprintf("%s (%s)", r.NotifyAt, r.NotifyDays)
			}
			fmt.Fprintf(&b, "| [%s] | %s | %s | %d |\n", mark, escapeCell(r.Title), reminder, r.Streak)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Statistics\n\n")
	fmt.Fprintf(&b, "- **Today:** %s\n", Percent(s.TodayRate))
	fmt.Fprintf(&b, "- **This month (%s):** %s\n", s.Month, Percent(s.MonthlyRate))
	fmt.Fprintf(&b, "- **Best streak (last %d days):** %d days\n", constants.StreakWindowDays, s.CurrentStreak)

	return b.String()
}

// YAML renders the summary as a YAML document.
func YAML(s stats.Summary) (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encoding summary: %w", err)
	}
	return string(out), nil
}

func renderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
