package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/logger"
	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/tui/components/daily"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		h, v := docStyle.GetFrameSize()
		// tabs, status and help lines
		m.daily.SetSize(msg.Width-h, msg.Height-v-4)
		m.achievement.SetSize(msg.Width-h, msg.Height-v-4)
		return m, nil

	case storeChangedMsg:
		m.refresh()
		return m, waitForChange(m.changes)

	case tickMsg:
		m.refresh()
		return m, tick()
	}

	switch m.state {
	case constants.StateAddRoutine:
		return m.updateAddRoutine(msg)
	case constants.StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	switch msg := msg.(type) {
	case daily.ToggleMsg:
		m.store.ToggleComplete(msg.ID)
		m.status = ""
		return m, nil

	case daily.AddMsg:
		m.routineForm = &RoutineFormModel{Weekdays: models.EveryDay()}
		m.form = NewRoutineForm(m.routineForm)
		m.state = constants.StateAddRoutine
		m.status = ""
		return m, m.form.Init()

	case daily.DeleteMsg:
		m.deleteID = msg.ID
		m.deleteTitle = msg.Title
		m.state = constants.StateConfirmDelete
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % constants.TabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + constants.TabCount) % constants.TabCount
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateDaily:
		m.daily, cmd = m.daily.Update(msg)
	case constants.StateAchievement:
		m.achievement, cmd = m.achievement.Update(msg)
	}
	return m, cmd
}

func (m Model) updateAddRoutine(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateDaily
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		n, err := m.routineForm.Notification()
		if err != nil {
			// Stay in the form so the user can fix the reminder
			logger.Warn("Rejected routine form", "error", err)
			m.status = err.Error()
			m.form.State = huh.StateNormal
			return m, cmd
		}
		task := m.store.AddTask(m.routineForm.Title, n)
		m.status = fmt.Sprintf("Added %q", task.Title)
		m.state = constants.StateDaily
	case huh.StateAborted:
		m.state = constants.StateDaily
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Confirm):
		m.store.DeleteTask(m.deleteID)
		m.status = fmt.Sprintf("Deleted %q", m.deleteTitle)
		m.deleteID, m.deleteTitle = "", ""
		m.state = constants.StateDaily
	case key.Matches(keyMsg, m.keys.Cancel):
		m.deleteID, m.deleteTitle = "", ""
		m.state = constants.StateDaily
	}
	return m, nil
}
