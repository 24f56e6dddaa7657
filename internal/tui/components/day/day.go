package day

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/routinely/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(14)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			PaddingLeft(14)
)

type Model struct {
	viewport viewport.Model
	Day      *models.DayRecord
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.Day == nil {
		return "No days in this routine."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetDay(day models.DayRecord) {
	m.Day = &day
	m.Render()
	m.viewport.GotoTop()
}

func (m *Model) Render() {
	if m.Day == nil {
		m.viewport.SetContent("No day loaded.")
		return
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Day %d · %s", m.Day.Day, m.Day.Date)))
	b.WriteString("\n\n")

	if len(m.Day.Schedules) == 0 {
		b.WriteString("Nothing scheduled.\n")
	}
	for _, block := range m.Day.Schedules {
		timeStr := fmt.Sprintf("%s - %s", block.StartTime, block.EndTime)
		b.WriteString(fmt.Sprintf("%s %s\n", timeStyle.Render(timeStr), titleStyle.Render(block.Title)))
		if block.Notes != "" {
			b.WriteString(noteStyle.Render(block.Notes))
			b.WriteString("\n")
		}
	}
	m.viewport.SetContent(b.String())
}
