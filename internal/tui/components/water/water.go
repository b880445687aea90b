package water

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/nourish/internal/constants"
)

var (
	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true).
			Padding(1, 0)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

type DrinkMsg struct{}

type ResetMsg struct{}

type KeyMap struct {
	Drink key.Binding
	Reset key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Drink: key.NewBinding(
			key.WithKeys("enter", "w", "+"),
			key.WithHelp("w", "drink a glass"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
	}
}

type Model struct {
	bar   progress.Model
	keys  KeyMap
	count int
}

func New() Model {
	return Model{
		bar:  progress.New(progress.WithScaledGradient("#7dd3fc", "#0369a1"), progress.WithoutPercentage()),
		keys: DefaultKeyMap(),
	}
}

func (m *Model) SetCount(n int) {
	m.count = n
}

func (m *Model) SetWidth(width int) {
	m.bar.Width = max(min(width-4, 60), 10)
}

// Percent is the progress towards the daily target, capped at 1.
func (m Model) Percent() float64 {
	return min(float64(m.count)/float64(constants.WaterTarget), 1)
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Full reports whether the daily target is met. Drinking is disabled from then on.
func (m Model) Full() bool {
	return m.count >= constants.WaterTarget
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Drink):
			if m.Full() {
				return m, nil
			}
			return m, func() tea.Msg { return DrinkMsg{} }
		case key.Matches(msg, m.keys.Reset):
			return m, func() tea.Msg { return ResetMsg{} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	status := fmt.Sprintf("%d / %d glasses", m.count, constants.WaterTarget)
	hint := fmt.Sprintf("%d to go", max(constants.WaterTarget-m.count, 0))
	if m.Full() {
		hint = "Daily target reached!"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		countStyle.Render(status),
		m.bar.ViewAs(m.Percent()),
		"",
		hintStyle.Render(hint),
	)
}

// Keys returns the bindings currently accepted. Drink is disabled once full.
func (m Model) Keys() KeyMap {
	keys := m.keys
	keys.Drink.SetEnabled(!m.Full())
	return keys
}
