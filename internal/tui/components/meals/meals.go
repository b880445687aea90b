package meals

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/nourish/internal/engine"
	"github.com/julianstephens/nourish/internal/models"
)

type EatMealMsg struct {
	Meal models.MealID
}

type PlanDayMsg struct{}

type Item struct {
	Meal  models.MealID
	Slot  models.MealSlot
	Eaten bool
}

func (i Item) Title() string {
	if i.Eaten {
		return "✓ " + i.Slot.Name
	}
	return "○ " + i.Slot.Name
}

func (i Item) Description() string {
	if i.Eaten {
		return fmt.Sprintf("%s | eaten", i.Slot.Time)
	}
	return fmt.Sprintf("%s | not eaten yet", i.Slot.Time)
}

func (i Item) FilterValue() string { return string(i.Meal) }

type KeyMap struct {
	Eat  key.Binding
	Plan key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Eat: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("e", "ate it"),
		),
		Plan: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "plan day"),
		),
	}
}

type Model struct {
	list    list.Model
	keys    KeyMap
	planned bool
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Meals"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Eat, keys.Plan}
	}

	return Model{list: l, keys: keys}
}

// SetDay rebuilds the list from s, in breakfast, lunch, dinner order.
func (m *Model) SetDay(s engine.Snapshot) {
	m.planned = s.HasPlan()
	var items []list.Item
	for _, meal := range models.Meals {
		slot, ok := s.Schedule[meal]
		if !ok {
			continue
		}
		items = append(items, Item{Meal: meal, Slot: slot, Eaten: s.Eaten[meal]})
	}
	m.list.SetItems(items)
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Plan):
			return m, func() tea.Msg { return PlanDayMsg{} }
		case key.Matches(msg, m.keys.Eat):
			if !m.planned {
				return m, func() tea.Msg { return PlanDayMsg{} }
			}
			if i, ok := m.list.SelectedItem().(Item); ok && !i.Eaten {
				return m, func() tea.Msg { return EatMealMsg{Meal: i.Meal} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.planned {
		return "No plan yet. Press 'p' and enter your wake-up time."
	}
	return m.list.View()
}

func (m Model) Keys() KeyMap {
	return m.keys
}
