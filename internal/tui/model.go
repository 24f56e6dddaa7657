package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/tui/components/day"
	"github.com/julianstephens/routinely/internal/validation"
)

type Model struct {
	plan              models.RoutinePlan
	index             int
	state             constants.SessionState
	keys              KeyMap
	help              help.Model
	dayModel          day.Model
	dayEnd            string
	validationWarning string
	quitting          bool
	width             int
	height            int
}

// NewModel returns a day browser over plan. dayEnd feeds the per-day
// validation warning shown in the header.
func NewModel(plan models.RoutinePlan, dayEnd string) Model {
	m := Model{
		plan:     plan,
		state:    constants.StateDays,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		dayModel: day.New(0, 0),
		dayEnd:   dayEnd,
	}
	m.selectDay(0)
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) ShortHelp() []key.Binding {
	return m.keys.ShortHelp()
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

// Index returns the zero-based position of the day being shown.
func (m Model) Index() int {
	return m.index
}

func (m *Model) selectDay(i int) {
	if len(m.plan.Days) == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(m.plan.Days) {
		i = len(m.plan.Days) - 1
	}
	m.index = i
	m.dayModel.SetDay(m.plan.Days[i])
	m.updateValidationStatus()
}

func (m *Model) updateValidationStatus() {
	result := validation.New().ValidateDay(m.plan.Days[m.index], m.dayEnd)
	if result.HasConflicts() {
		m.validationWarning = fmt.Sprintf("⚠ %d validation warning(s)", len(result.Conflicts))
	} else {
		m.validationWarning = ""
	}
}
