package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/store"
	"github.com/julianstephens/routinely/internal/tui/components/achievement"
	"github.com/julianstephens/routinely/internal/tui/components/daily"
)

// refreshInterval re-reads the store so the views roll over at midnight.
const refreshInterval = time.Minute

// storeChangedMsg is delivered after the task store reports a mutation.
type storeChangedMsg struct{}

type tickMsg time.Time

type Model struct {
	store       *store.TaskStore
	changes     chan struct{}
	unsubscribe func()

	state       constants.SessionState
	keys        KeyMap
	help        help.Model
	daily       daily.Model
	achievement achievement.Model

	form        *huh.Form
	routineForm *RoutineFormModel

	deleteID    string
	deleteTitle string
	status      string

	quitting bool
	width    int
	height   int
}

func NewModel(s *store.TaskStore) Model {
	// One pending signal is enough; the view re-reads the whole store.
	changes := make(chan struct{}, 1)
	unsubscribe := s.Subscribe(func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})

	now := s.Now()
	tasks := s.TodayTasks()

	return Model{
		store:       s,
		changes:     changes,
		unsubscribe: unsubscribe,
		state:       constants.StateDaily,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		daily:       daily.New(tasks, now, 0, 0),
		achievement: achievement.New(tasks, now),
	}
}

// Close detaches the model from the task store.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForChange(m.changes), tick())
}

func waitForChange(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-changes
		return storeChangedMsg{}
	}
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) refresh() {
	now := m.store.Now()
	tasks := m.store.TodayTasks()
	m.daily.SetTasks(tasks, now)
	m.achievement.SetTasks(tasks, now)
}

func (m Model) ShortHelp() []key.Binding {
	switch m.state {
	case constants.StateConfirmDelete:
		return []key.Binding{m.keys.Confirm, m.keys.Cancel}
	case constants.StateAchievement:
		return append([]key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}, m.achievement.Keys()...)
	}
	dk := daily.DefaultKeyMap()
	return []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help, dk.Toggle, dk.Add, dk.Delete}
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}

	var actions []key.Binding
	switch m.state {
	case constants.StateDaily:
		dk := daily.DefaultKeyMap()
		actions = []key.Binding{dk.Toggle, dk.Add, dk.Delete}
	case constants.StateAchievement:
		actions = m.achievement.Keys()
	case constants.StateConfirmDelete:
		actions = []key.Binding{m.keys.Confirm, m.keys.Cancel}
	}

	return [][]key.Binding{global, actions}
}
