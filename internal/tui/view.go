package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/routinely/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateSummary:
		content = m.viewSummary()
	default:
		content = m.viewDays()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for _, tab := range []struct {
		title string
		state constants.SessionState
	}{
		{"Days", constants.StateDays},
		{"Summary", constants.StateSummary},
	} {
		if m.state == tab.state {
			tabs = append(tabs, activeTabStyle.Render(tab.title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(tab.title))
		}
	}
	if len(m.plan.Days) > 0 {
		tabs = append(tabs, inactiveTabStyle.Render(fmt.Sprintf("%d/%d", m.index+1, len(m.plan.Days))))
	}
	if m.validationWarning != "" {
		tabs = append(tabs, warningStyle.Render(m.validationWarning))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDays() string {
	return docStyle.Render(m.dayModel.View())
}

func (m Model) viewSummary() string {
	summary := m.plan.Summary
	if summary == "" {
		summary = "No summary for this routine."
	}
	style := summaryStyle
	if m.width > 8 {
		style = style.Width(m.width - 8)
	}
	return docStyle.Render(style.Render(summary))
}
