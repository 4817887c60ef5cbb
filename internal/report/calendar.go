package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/stats"
)

var (
	cellStyle    = lipgloss.NewStyle().Width(4).Align(lipgloss.Right)
	todayStyle   = lipgloss.NewStyle().Reverse(true)
	weekdayStyle = lipgloss.NewStyle().Width(4).Align(lipgloss.Right).Foreground(lipgloss.Color("240")).Bold(true)

	bandColors = map[constants.RateBand]lipgloss.Color{
		constants.BandComplete: lipgloss.Color("42"),  // green
		constants.BandPartial:  lipgloss.Color("220"), // yellow
		constants.BandStarted:  lipgloss.Color("214"), // orange
		constants.BandNone:     lipgloss.Color("238"), // gray
	}
)

// BandGlyph is the dot shown under a calendar day for its rate band.
func BandGlyph(band constants.RateBand) string {
	color, ok := bandColors[band]
	if !ok {
		color = bandColors[constants.BandNone]
	}
	return lipgloss.NewStyle().Foreground(color).Render("●")
}

// Calendar renders a month grid with one row of day numbers and one row of
// rate dots per week.
func Calendar(grid []stats.Day, month time.Time) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(month.Format("January 2006")) + "\n")

	var header []string
	for i := 0; i < 7; i++ {
		wd := time.Weekday((int(constants.WeekStart) + i) % 7)
		header = append(header, weekdayStyle.Render(wd.String()[:2]))
	}
	b.WriteString(strings.Join(header, "") + "\n")

	for _, week := range stats.Weeks(grid) {
		var nums, dots []string
		for _, d := range week {
			if !d.InMonth {
				nums = append(nums, cellStyle.Render(""))
				dots = append(dots, cellStyle.Render(""))
				continue
			}
			num := fmt.Sprintf("%d", d.Date.Day())
			if d.IsToday {
				num = todayStyle.Render(num)
			}
			nums = append(nums, cellStyle.Render(num))
			dots = append(dots, cellStyle.Render(BandGlyph(d.Band)))
		}
		b.WriteString(strings.Join(nums, "") + "\n")
		b.WriteString(strings.Join(dots, "") + "\n")
	}

	b.WriteString(mutedStyle.Render(fmt.Sprintf("%s ≥%d%%  %s ≥%d%%  %s >0%%  %s none",
		BandGlyph(constants.BandComplete), int(constants.BandCompleteRate*100),
		BandGlyph(constants.BandPartial), int(constants.BandPartialRate*100),
		BandGlyph(constants.BandStarted),
		BandGlyph(constants.BandNone),
	)))

	return b.String()
}
