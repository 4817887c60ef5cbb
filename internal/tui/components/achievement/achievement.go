package achievement

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/report"
	"github.com/julianstephens/routinely/internal/stats"
	"github.com/julianstephens/routinely/internal/utils"
)

var (
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	streakStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	cardStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
)

type KeyMap struct {
	PrevMonth key.Binding
	NextMonth key.Binding
	ThisMonth key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevMonth: key.NewBinding(
			key.WithKeys("left", "["),
			key.WithHelp("←/[", "prev month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("right", "]"),
			key.WithHelp("→/]", "next month"),
		),
		ThisMonth: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "this month"),
		),
	}
}

// Model shows the monthly completion calendar with the rate and streak cards.
type Model struct {
	keys   KeyMap
	tasks  []models.RoutineTask
	now    time.Time
	offset int // months relative to now, never positive
	width  int
	height int
}

func New(tasks []models.RoutineTask, now time.Time) Model {
	return Model{keys: DefaultKeyMap(), tasks: tasks, now: now}
}

func (m *Model) SetTasks(tasks []models.RoutineTask, now time.Time) {
	m.tasks = tasks
	m.now = now
}

func (m Model) Keys() []key.Binding {
	return []key.Binding{m.keys.PrevMonth, m.keys.NextMonth, m.keys.ThisMonth}
}

// Month is the first day of the month on screen.
func (m Model) Month() time.Time {
	return utils.StartOfMonth(m.now).AddDate(0, m.offset, 0)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.PrevMonth):
			m.offset--
		case key.Matches(msg, m.keys.NextMonth):
			if m.offset < 0 {
				m.offset++
			}
		case key.Matches(msg, m.keys.ThisMonth):
			m.offset = 0
		}
	}
	return m, nil
}

func (m Model) View() string {
	month := m.Month()
	calendar := report.Calendar(stats.MonthGrid(m.tasks, month, m.now), month)

	rate := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		labelStyle.Render("This month"),
		valueStyle.Render(report.Percent(stats.MonthlyCompletionRate(m.tasks, m.now))),
	))
	streak := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		labelStyle.Render(fmt.Sprintf("Best streak (%dd)", constants.StreakWindowDays)),
		streakStyle.Render(fmt.Sprintf("%d days", stats.CurrentStreak(m.tasks, m.now))),
	))

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rate, " ", streak))
	b.WriteString("\n\n")
	b.WriteString(calendar)
	return b.String()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
