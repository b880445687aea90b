package profile

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/nourish/internal/constants"
	"github.com/julianstephens/nourish/internal/engine"
	"github.com/julianstephens/nourish/internal/models"
)

var (
	streakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(12)

	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

type Model struct {
	viewport viewport.Model
	snapshot engine.Snapshot
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetDay(s engine.Snapshot) {
	m.snapshot = s
	m.Render()
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
	return m.viewport.View()
}

func (m *Model) Render() {
	var b strings.Builder
	s := m.snapshot

	b.WriteString(streakStyle.Render(fmt.Sprintf("🔥 %d day streak", s.Streak.Count)))
	b.WriteString("\n")
	if s.Streak.LastDate != nil {
		b.WriteString(statStyle.Render("Last full day: " + *s.Streak.LastDate))
		b.WriteString("\n")
	}
	if s.WakeUp != nil {
		b.WriteString(statStyle.Render("Woke up at " + s.WakeUp.String()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(s.History) == 0 {
		b.WriteString(statStyle.Render("No history yet. Days are archived when you plan the next one."))
		m.viewport.SetContent(b.String())
		return
	}

	b.WriteString(statStyle.Render("Recent days"))
	b.WriteString("\n")
	for _, h := range s.History {
		b.WriteString(fmt.Sprintf("%s %s\n",
			dateStyle.Render(h.Date),
			statStyle.Render(fmt.Sprintf("🍽 %d/%d  💧 %d/%d", h.Meals, len(models.Meals), h.Water, constants.WaterTarget)),
		))
	}
	m.viewport.SetContent(b.String())
}
