package daily

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/report"
	"github.com/julianstephens/routinely/internal/stats"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginLeft(2)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type ToggleMsg struct {
	ID string
}

type AddMsg struct{}

type DeleteMsg struct {
	ID    string
	Title string
}

type Item struct {
	Task models.RoutineTask
	Now  time.Time
}

func (i Item) Title() string {
	if i.Task.IsCompletedToday(i.Now) {
		return "✓ " + i.Task.Title
	}
	return "○ " + i.Task.Title
}

func (i Item) Description() string {
	var parts []string
	if at, ok := i.Task.NotifyTimeString(); ok {
		parts = append(parts, fmt.Sprintf("⏰ %s %s", at, i.Task.Notification.Weekdays))
	} else {
		parts = append(parts, "no reminder")
	}
	if streak := i.Task.StreakCount(i.Now); streak > 0 {
		parts = append(parts, fmt.Sprintf("🔥 %d day streak", streak))
	}
	return strings.Join(parts, " · ")
}

func (i Item) FilterValue() string { return i.Task.Title }

type KeyMap struct {
	Toggle key.Binding
	Add    key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle done"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

// Model is the checklist of today's routines.
type Model struct {
	list  list.Model
	keys  KeyMap
	tasks []models.RoutineTask
	now   time.Time
}

func New(tasks []models.RoutineTask, now time.Time, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Today"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Add, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Add, keys.Delete}
	}

	m := Model{list: l, keys: keys}
	m.SetTasks(tasks, now)
	return m
}

// SetTasks replaces the list contents, keeping the cursor where it was.
func (m *Model) SetTasks(tasks []models.RoutineTask, now time.Time) {
	m.tasks = tasks
	m.now = now

	items := make([]list.Item, len(tasks))
	for i, t := range tasks {
		items[i] = Item{Task: t, Now: now}
	}
	idx := m.list.Index()
	m.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
}

// Selected returns the routine under the cursor.
func (m Model) Selected() (models.RoutineTask, bool) {
	if i, ok := m.list.SelectedItem().(Item); ok {
		return i.Task, true
	}
	return models.RoutineTask{}, false
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Toggle):
			if t, ok := m.Selected(); ok {
				return m, func() tea.Msg { return ToggleMsg{ID: t.ID} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddMsg{} }
		case key.Matches(msg, m.keys.Delete):
			if t, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteMsg{ID: t.ID, Title: t.Title} }
			}
			return m, nil
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := headerStyle.Render(fmt.Sprintf("%s  %s done",
		m.now.Format("Monday, Jan 2"), report.Percent(stats.CompletionRate(m.tasks, m.now))))

	if len(m.tasks) == 0 {
		return header + "\n\n" + mutedStyle.Render("  No routines yet.\n  Press 'a' to add one.")
	}
	return header + "\n\n" + m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height-2)
}
