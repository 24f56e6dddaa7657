package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/routinely/internal/constants"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// tabs, header, help and padding
		m.dayModel.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Summary):
			if m.state == constants.StateSummary {
				m.state = constants.StateDays
			} else {
				m.state = constants.StateSummary
			}
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.selectDay(m.index - 1)
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.selectDay(m.index + 1)
			return m, nil
		}
	}

	if m.state == constants.StateDays {
		var cmd tea.Cmd
		m.dayModel, cmd = m.dayModel.Update(msg)
		return m, cmd
	}
	return m, nil
}
